// Package dynamo provides the numerical primitives behind the particle
// animation: packed state vectors, the [System] and [Integrator] interfaces
// and a precomputed sine/cosine table used when rasterizing rotated shapes.
//
// # Thread Safety
//
// States are plain slices and are NOT safe for concurrent mutation.
package dynamo
