// Package response measures the frequency response of a filter from its
// impulse response.
//
// An Analyzer renders a fixed number of impulse-response samples, takes
// their FFT and reports the magnitude per bin. The tail of the impulse
// response is checked for decay; a filter whose response has not died out
// within the analysis length is reported as ErrNoDecay, since its spectrum
// would be smeared by truncation.
//
// # Usage
//
//	a := response.NewAnalyzer(48000, 8192)
//	res, err := a.Measure(engine)
//	fmt.Printf("%.2f dB at 1 kHz\n", res.AtDB(1000))
package response
