// Package viz provides drawing surfaces and terminal styling for storycards.
//
//   - [Canvas]: Braille-based colored canvas, 2x4 dots per terminal cell
//   - [Raster]: anti-aliased image surface for PNG and GIF previews
//   - [Theme]: color schemes shared by the TUI and the previews
//   - [Overlay]: composites a canvas over an already rendered view
//
// Both surfaces satisfy confetti.Surface: sizes are given in logical
// pixels and a scale converts them to device dots.
package viz
