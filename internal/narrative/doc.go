// Package narrative implements the presentation state machine of a story:
// screen navigation with a visit history, per-screen choice capture, the
// final reveal and a global reset.
//
// All mutable state lives in a single [Controller]. Hosts translate user
// input into an [Intent] and hand it to [Controller.Dispatch], which returns
// an [Outcome] describing the side effects the host should perform
// (scrolling, starting a particle burst).
//
// # Thread Safety
//
// A Controller is NOT safe for concurrent use. It is meant to be driven from
// a single event loop.
package narrative
