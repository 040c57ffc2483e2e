// Package biquad provides the second-order IIR runtime used by the
// parametric equalizer.
//
// An [Engine] holds the registers of one audio channel and runs one of four
// structurally different recursions ([Topology]) over the installed
// [Coefficients]. All four realize the same transfer function; they differ
// in register count and round-off behavior.
//
// Coefficient design lives in dsp/filter/design/orfanidis.
package biquad
