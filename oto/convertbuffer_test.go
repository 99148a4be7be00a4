package oto_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/pickupplot/pickupplot/oto"
)

func TestFloatBufferTo32BitLE(t *testing.T) {
	in := []float32{0, 0.5, -0.25, 2, -3}
	want := []float32{0, 0.5, -0.25, 1, -1}
	out := oto.FloatBufferTo32BitLE(in, []byte{42})
	if len(out) != 1+4*len(in) || out[0] != 42 {
		t.Fatalf("got %d bytes, want the prefix and %d samples", len(out), len(in))
	}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(out[1+4*i:]))
		if got != w {
			t.Errorf("sample %d = %v, want %v", i, got, w)
		}
	}
}
