package peq_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/orfanidis-biquad/dsp/core"
	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad"
	"github.com/cwbudde/orfanidis-biquad/dsp/peq"
)

func ExampleProcessor() {
	p := peq.New(core.WithSampleRate(48000), core.WithBlockSize(256), core.WithChannels(1))

	params := peq.NewParameters(peq.DefaultLayout())
	params.SetFrequency(1000)
	params.SetGainDB(-6)
	params.SetTransform(biquad.DirectFormI)

	// One second of a 1 kHz tone.
	buf := [][]float64{make([]float64, 48000)}
	for i := range buf[0] {
		buf[0][i] = math.Sin(2 * math.Pi * 1000 * float64(i) / 48000)
	}

	for start := 0; start < len(buf[0]); start += 256 {
		block := [][]float64{buf[0][start:min(start+256, len(buf[0]))]}
		p.Process(block, params.Snapshot())
	}

	var peak float64
	for _, v := range buf[0][47000:] {
		peak = max(peak, math.Abs(v))
	}
	fmt.Printf("steady-state level: %.2f dB\n", core.LinearToDB(peak))
	// Output:
	// steady-state level: -6.00 dB
}

func ExampleLayout_Clamp() {
	s := peq.DefaultSnapshot()
	s.Frequency = 20000
	s.GainDB = 40

	c := peq.DefaultLayout().Clamp(s, 22050)
	fmt.Printf("%.1f Hz, %+.0f dB\n", c.Frequency, c.GainDB)
	// Output:
	// 10804.5 Hz, +30 dB
}
