package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/orfanidis-biquad/dsp/core"
	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad"
	"github.com/cwbudde/orfanidis-biquad/dsp/filter/design/orfanidis"
)

// row is one designed section with its derived figures.
type row struct {
	freq, q, gainDB float64
	sampleRate      float64

	scalars orfanidis.Scalars
	coeffs  biquad.Coefficients

	poleRadius float64
	edgesHz    [2]float64
	centerDB   float64
	edgeDB     float64
}

func design(sampleRate, freq, q, gainDB float64) (row, error) {
	if _, err := orfanidis.PeakingFromFreqQGain(sampleRate, freq, q, gainDB); err != nil {
		return row{}, err
	}

	var (
		conv orfanidis.Converter
		calc orfanidis.Calculator
	)
	conv.Prepare(sampleRate)
	s := conv.Calculate(gainDB, freq, q)
	c := calc.Design(s)

	lo, hi := s.BandEdges()
	toHz := sampleRate / (2 * math.Pi)

	return row{
		freq:       freq,
		q:          q,
		gainDB:     gainDB,
		sampleRate: sampleRate,
		scalars:    s,
		coeffs:     c,
		poleRadius: c.PoleRadius(),
		edgesHz:    [2]float64{lo * toHz, hi * toHz},
		centerDB:   c.MagnitudeDB(freq, sampleRate),
		edgeDB:     core.LinearToDB(math.Sqrt(c.MagnitudeSquaredAt(lo))),
	}, nil
}

func (r row) format() string {
	n := r.coeffs.Normalized()
	return fmt.Sprintf("%.2f\t%.3g\t%+.2f\t%.6f\t%.6f\t%.9f\t%.9f\t%.9f\t%.9f\t%.9f\t%.6f\t%.1f-%.1f\t%+.3f\t%+.3f",
		r.freq, r.q, r.gainDB,
		r.scalars.W0, r.scalars.DW,
		n.B0, n.B1, n.B2, n.A1, n.A2,
		r.poleRadius,
		r.edgesHz[0], r.edgesHz[1],
		r.centerDB, r.edgeDB,
	)
}
