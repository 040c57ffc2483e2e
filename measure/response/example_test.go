package response_test

import (
	"fmt"

	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad"
	"github.com/cwbudde/orfanidis-biquad/dsp/filter/design/orfanidis"
	"github.com/cwbudde/orfanidis-biquad/measure/response"
)

func ExampleAnalyzer_Measure() {
	c, err := orfanidis.PeakingFromFreqQGain(48000, 1000, 1, 12)
	if err != nil {
		panic(err)
	}

	e := biquad.NewEngine()
	e.SetCoefficients(c)

	res, err := response.NewAnalyzer(48000, 8192).Measure(e)
	if err != nil {
		panic(err)
	}

	for _, f := range []float64{100, 1000, 10000} {
		fmt.Printf("%5.0f Hz: %+.2f dB\n", f, res.AtDB(f))
	}
	peak, _ := res.Peak()
	fmt.Printf("peak bin: %.1f Hz\n", peak)
	// Output:
	//   100 Hz: +0.16 dB
	//  1000 Hz: +12.00 dB
	// 10000 Hz: +0.12 dB
	// peak bin: 1002.0 Hz
}
