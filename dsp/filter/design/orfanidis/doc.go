// Package orfanidis designs Orfanidis-style parametric peaking sections.
//
// The design is split in two stages that the audio path runs once per block:
//
//   - Converter maps the musical controls (gain in dB, center frequency in
//     Hz, resonance) to the pre-warped analog prototype quantities
//     G, GB, W0 and DW.
//   - Calculator turns those quantities into the six coefficients of a
//     second-order section with unity gain at DC and Nyquist, gain G at the
//     center and gain GB at both band edges.
//
// Neither stage validates or allocates. PeakingFromFreqQGain composes both
// and checks its inputs for offline callers.
package orfanidis
