// Package audio probes and plays the optional voice clip of a story.
//
// Probing decodes the whole file up front, so a missing or corrupt asset is
// detected before any control is shown. Playback goes through a single
// process-wide ebiten audio context created on first use.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 48000

// 16-bit little endian stereo
const bytesPerFrame = 4

var ErrUnsupportedFormat = errors.New("audio: unsupported format")

type stream interface {
	io.ReadSeeker
	Length() int64
}

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

func sharedContext() *audio.Context {
	contextOnce.Do(func() {
		if ctx := audio.CurrentContext(); ctx != nil {
			audioContext = ctx
			return
		}
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// Clip is a decoded audio asset.
type Clip struct {
	path       string
	sampleRate int
	stream     stream
	player     *audio.Player
}

// Probe reads and decodes the file at path. The format is chosen by
// extension: .mp3, .wav or .ogg.
func Probe(path string, sampleRate int) (*Clip, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := decode(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	return &Clip{path: path, sampleRate: sampleRate, stream: s}, nil
}

func decoderFor(path string) (func(int, io.Reader) (stream, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return func(rate int, r io.Reader) (stream, error) { return mp3.DecodeWithSampleRate(rate, r) }, nil
	case ".wav":
		return func(rate int, r io.Reader) (stream, error) { return wav.DecodeWithSampleRate(rate, r) }, nil
	case ".ogg":
		return func(rate int, r io.Reader) (stream, error) { return vorbis.DecodeWithSampleRate(rate, r) }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Path returns the probed file.
func (c *Clip) Path() string { return c.path }

// Duration returns the decoded length.
func (c *Clip) Duration() time.Duration {
	frames := c.stream.Length() / bytesPerFrame
	return time.Duration(frames) * time.Second / time.Duration(c.sampleRate)
}

// Play starts playback, opening the audio device on first use.
func (c *Clip) Play() error {
	if c.player == nil {
		if c.sampleRate != SampleRate {
			return fmt.Errorf("audio: clip decoded at %d Hz, device runs at %d Hz", c.sampleRate, SampleRate)
		}
		p, err := sharedContext().NewPlayer(c.stream)
		if err != nil {
			return err
		}
		c.player = p
	}
	c.player.Play()
	return nil
}

func (c *Clip) Pause() {
	if c.player != nil {
		c.player.Pause()
	}
}

// Rewind moves playback back to the start.
func (c *Clip) Rewind() error {
	if c.player == nil {
		_, err := c.stream.Seek(0, io.SeekStart)
		return err
	}
	return c.player.Rewind()
}

func (c *Clip) IsPlaying() bool {
	return c.player != nil && c.player.IsPlaying()
}

// Close releases the player.
func (c *Clip) Close() error {
	if c.player == nil {
		return nil
	}
	err := c.player.Close()
	c.player = nil
	return err
}
