package story

import "errors"

// Content errors reported by Validate.
var (
	// ErrNoScreens indicates a story without any screen.
	ErrNoScreens = errors.New("story: no screens defined")

	// ErrDuplicateScreen indicates two screens sharing a name.
	ErrDuplicateScreen = errors.New("story: duplicate screen name")

	// ErrUnknownScreen indicates a reference to a screen that does not exist.
	ErrUnknownScreen = errors.New("story: reference to unknown screen")

	// ErrInvalidStep indicates a non-positive or out of range step ordinal.
	ErrInvalidStep = errors.New("story: invalid step ordinal")

	// ErrDuplicateOption indicates two options on one screen sharing an id.
	ErrDuplicateOption = errors.New("story: duplicate option id")

	// ErrNoFinal indicates that no screen is marked final.
	ErrNoFinal = errors.New("story: no final screen")

	// ErrMultipleFinal indicates more than one screen marked final.
	ErrMultipleFinal = errors.New("story: more than one final screen")

	// ErrUnreachableFinal indicates a final screen that no successor chain
	// from the initial or start screen leads to.
	ErrUnreachableFinal = errors.New("story: final screen is unreachable")
)
