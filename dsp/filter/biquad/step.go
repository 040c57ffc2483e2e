package biquad

import archregistry "github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad/internal/arch/registry"

// stepFn advances one sample. The register layout per topology is
// documented on archregistry.State.
type stepFn func(c *archregistry.Coefficients, s *archregistry.State, x float64) float64

var steps = [numTopologies]stepFn{
	DirectFormI:            stepDF1,
	DirectFormII:           stepDF2,
	DirectFormITransposed:  stepDF1T,
	DirectFormIITransposed: stepDF2T,
}

func stepDF1(c *archregistry.Coefficients, s *archregistry.State, x float64) float64 {
	y := c.B0*x + c.B1*s[0] + c.B2*s[1] - c.A1*s[2] - c.A2*s[3]
	s[1], s[0] = s[0], x
	s[3], s[2] = s[2], y
	return y
}

func stepDF2(c *archregistry.Coefficients, s *archregistry.State, x float64) float64 {
	w := x - c.A1*s[0] - c.A2*s[1]
	y := c.B0*w + c.B1*s[0] + c.B2*s[1]
	s[1], s[0] = s[0], w
	return y
}

func stepDF1T(c *archregistry.Coefficients, s *archregistry.State, x float64) float64 {
	v := x + s[0]
	s[0] = s[1] - c.A1*v
	s[1] = -c.A2 * v
	y := c.B0*v + s[2]
	s[2] = c.B1*v + s[3]
	s[3] = c.B2 * v
	return y
}

func stepDF2T(c *archregistry.Coefficients, s *archregistry.State, x float64) float64 {
	y := c.B0*x + s[0]
	s[0] = c.B1*x - c.A1*y + s[1]
	s[1] = c.B2*x - c.A2*y
	return y
}
