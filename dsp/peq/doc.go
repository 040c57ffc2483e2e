// Package peq is the per-instance processing wrapper of a single-band
// Orfanidis parametric equalizer.
//
// A Processor owns one orfanidis.Converter, one orfanidis.Calculator and one
// biquad.Engine per channel. Every call to Process reads a Snapshot once,
// redesigns the section, configures all engines and filters the block.
// Coefficients therefore change at block boundaries only.
//
// Parameters holds lock-free parameter cells that a control thread can write
// while the audio thread takes snapshots. Layout declares ranges and
// defaults for hosts that need to validate values before they reach the
// processor.
package peq
