package oto

import (
	"bytes"
	"fmt"

	"github.com/ebitengine/oto/v3"
	"github.com/pickupplot/pickupplot/plotter"
)

// Context plays rendered notes on the default audio device. A new note
// replaces the one still playing.
type Context struct {
	context *oto.Context
	player  *oto.Player
}

const otoBufferSize = 8192

// NewContext opens the audio device and waits until it is ready.
func NewContext() (*Context, error) {
	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   plotter.AuditionSampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &Context{context: context}, nil
}

// Play implements plotter.AudioSink. It returns as soon as the samples have
// been queued.
func (c *Context) Play(samples []float32) error {
	if err := c.stop(); err != nil {
		return err
	}
	c.player = c.context.NewPlayer(bytes.NewReader(FloatBufferTo32BitLE(samples, nil)))
	c.player.SetBufferSize(otoBufferSize)
	c.player.Play()
	return nil
}

func (c *Context) stop() error {
	if c.player == nil {
		return nil
	}
	err := c.player.Close()
	c.player = nil
	if err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

// Close stops the playing note and suspends the device.
func (c *Context) Close() error {
	if err := c.stop(); err != nil {
		return err
	}
	if err := c.context.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}
