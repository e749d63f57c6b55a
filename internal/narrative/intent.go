package narrative

import "fmt"

// IntentKind enumerates the user intents a host can dispatch.
type IntentKind int

const (
	IntentBegin IntentKind = iota
	IntentBack
	IntentAdvance
	IntentSelect
	IntentChooseFinal
	IntentToggleAudio
	IntentClose
	IntentRestart
)

var intentNames = [...]string{"begin", "back", "advance", "select", "choose-final", "toggle-audio", "close", "restart"}

func (k IntentKind) String() string {
	if int(k) < 0 || int(k) >= len(intentNames) {
		return fmt.Sprintf("intent(%d)", int(k))
	}
	return intentNames[k]
}

// Intent is a single user action. Screen and Option are only used by
// IntentSelect (both) and IntentChooseFinal (Option).
type Intent struct {
	Kind   IntentKind
	Screen string
	Option string
}

type handler func(c *Controller, in Intent) Outcome

func defaultHandlers() map[IntentKind]handler {
	return map[IntentKind]handler{
		IntentBegin: func(c *Controller, _ Intent) Outcome {
			return Outcome{ScrollTop: c.Begin()}
		},
		IntentBack: func(c *Controller, _ Intent) Outcome {
			c.GoBack()
			return Outcome{ScrollTop: true}
		},
		IntentAdvance: func(c *Controller, _ Intent) Outcome {
			if !c.ForwardEnabled(c.active) {
				return Outcome{}
			}
			return Outcome{ScrollTop: c.Advance()}
		},
		IntentSelect: func(c *Controller, in Intent) Outcome {
			c.Select(in.Screen, in.Option)
			return Outcome{}
		},
		IntentChooseFinal: func(c *Controller, in Intent) Outcome {
			if !c.Active().Final {
				return Outcome{}
			}
			return c.ChooseFinal(in.Option)
		},
		IntentToggleAudio: func(c *Controller, _ Intent) Outcome {
			c.ToggleAudio()
			return Outcome{}
		},
		IntentClose: func(c *Controller, _ Intent) Outcome {
			c.Close()
			return Outcome{}
		},
		IntentRestart: func(c *Controller, _ Intent) Outcome {
			c.Reset()
			return Outcome{ScrollTop: true}
		},
	}
}

// Dispatch routes an intent to its handler. Unknown kinds are ignored.
func (c *Controller) Dispatch(in Intent) Outcome {
	h, ok := c.handlers[in.Kind]
	if !ok {
		return Outcome{}
	}
	if in.Kind != IntentClose {
		c.farewell = ""
	}
	return h(c, in)
}
