package narrative

import (
	"io"

	"go.uber.org/zap"
)

// ChooseFinal shows the reveal panel for a final option, prepares the
// optional audio clip and requests a particle burst.
func (c *Controller) ChooseFinal(option string) Outcome {
	c.reveal.Visible = true
	if final, ok := c.story.Final(); ok {
		if o, ok := final.Option(option); ok {
			c.reveal.Text = o.Reveal
		} else {
			c.logger.Debug("unrecognized final option", zap.String("option", option))
		}
	}
	c.prepareAudio()
	return Outcome{Burst: true, ScrollToReveal: true}
}

func (c *Controller) prepareAudio() {
	switch {
	case c.player != nil:
		c.reveal.AudioVisible = true
	case c.probe == nil || c.audioFailed:
		c.reveal.AudioVisible = false
	default:
		p, err := c.probe()
		if err != nil {
			c.audioFailed = true
			c.reveal.AudioVisible = false
			c.logger.Debug("audio unavailable", zap.Error(err))
			return
		}
		c.player = p
		c.reveal.AudioVisible = true
	}
}

// ToggleAudio starts or pauses the clip. A clip that finished on its own
// starts again from the beginning. Playback errors are ignored.
func (c *Controller) ToggleAudio() {
	if c.player == nil || !c.reveal.AudioVisible {
		return
	}
	if c.player.IsPlaying() {
		c.player.Pause()
		c.reveal.AudioLabel = LabelPlay
		return
	}
	if c.reveal.AudioLabel == LabelPause {
		c.rewind()
	}
	if err := c.player.Play(); err != nil {
		c.logger.Debug("playback refused", zap.Error(err))
		return
	}
	c.reveal.AudioLabel = LabelPause
}

// SyncAudio rewinds the clip and resets the label once it has finished on
// its own.
func (c *Controller) SyncAudio() {
	if c.player == nil || c.reveal.AudioLabel != LabelPause {
		return
	}
	if !c.player.IsPlaying() {
		c.rewind()
		c.reveal.AudioLabel = LabelPlay
	}
}

func (c *Controller) rewind() {
	if err := c.player.Rewind(); err != nil {
		c.logger.Debug("rewind failed", zap.Error(err))
	}
}

// Playing reports whether the clip is currently playing.
func (c *Controller) Playing() bool {
	return c.player != nil && c.player.IsPlaying()
}

// Release closes the clip if its player holds device resources. A later
// reveal probes the clip again.
func (c *Controller) Release() error {
	closer, ok := c.player.(io.Closer)
	if !ok {
		return nil
	}
	c.player = nil
	return closer.Close()
}

// Close shows the closing message.
func (c *Controller) Close() {
	c.farewell = c.story.Farewell
	if c.farewell == "" {
		c.farewell = "❤"
	}
}
