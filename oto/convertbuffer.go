package oto

import (
	"encoding/binary"
	"math"
)

// FloatBufferTo32BitLE appends the samples to out as little-endian float32,
// the sample format of the oto context. Samples outside [-1, 1] are clipped.
func FloatBufferTo32BitLE(buff []float32, out []byte) []byte {
	for _, v := range buff {
		v = max(min(v, 1), -1)
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
	}
	return out
}
