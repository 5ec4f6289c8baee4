package profile

import (
	"fmt"

	"github.com/powerbalance/libtimetable/timetable"
)

const PFCoilCount = 6

// pfCoil gives the current at 0 and at each time range point as fractions of the peak.
type pfCoil struct {
	defaultCurrent float64
	knots          [5]float64
}

var pfCoils = [PFCoilCount]pfCoil{
	{10e3, [5]float64{0, 0.9, 1, 0.9, 0}},
	{5e3, [5]float64{0, 1, 0.9, 0.8, 0}},
	{2e3, [5]float64{0, 0, 0.9, 1, 0}},
	{5e3, [5]float64{0, 0, 1, 0.8, 0}},
	{3e3, [5]float64{0, 0, 1, 0.9, 0}},
	{5e3, [5]float64{0, -0.45, 0.9, 1, 0}},
}

// piecewise interpolates linearly between knots placed at 0 and the four
// time range points, and is zero from ramp-down end on.
func piecewise(timeRange []float64, knots [5]float64) valueAt {
	at := [5]float64{0, timeRange[0], timeRange[1], timeRange[2], timeRange[3]}

	return func(t float64) float64 {
		for idx := 1; idx < len(at); idx++ {
			if t < at[idx] {
				return knots[idx-1] + (t-at[idx-1])*(knots[idx]-knots[idx-1])/(at[idx]-at[idx-1])
			}
		}

		return 0
	}
}

// PFCoilCurrent builds the current of poloidal field coil n, 1 to PFCoilCount.
func PFCoilCurrent(cfg *Config, n int) (*timetable.Table, error) {
	if n < 1 || n > PFCoilCount {
		return nil, fmt.Errorf("%w: no PF coil %d", ErrInvalidConfig, n)
	}

	c, err := prepare(cfg)
	if err != nil {
		return nil, err
	}

	coil := pfCoils[n-1]
	peak := c.maxValue(fmt.Sprintf("pf%d", n), coil.defaultCurrent)
	fn := piecewise(c.TimeRange, coil.knots)

	return build(c, fmt.Sprintf("currentPF%d", n), func(t float64) float64 {
		return peak * fn(t)
	})
}

// CSCoilCurrent ramps the central solenoid up to the peak during premagnetization,
// swings it towards the negative peak through ramp-up and flat top and brings
// it back to zero by the end of the pulse.
func CSCoilCurrent(cfg *Config) (*timetable.Table, error) {
	c, err := prepare(cfg)
	if err != nil {
		return nil, err
	}

	const peakFraction = 0.8

	peak := c.maxValue(MaxValueCS, defaultCSCurrent)
	tr := c.TimeRange
	tail := c.StopTime - tr[2]

	return build(c, "currentCS", func(t float64) float64 {
		switch {
		case t < tr[0]:
			return t * peak / tr[0]
		case t < tr[1]:
			return peak - (t-tr[0])*(1+peakFraction)*peak/(tr[1]-tr[0])
		case t < tr[2]:
			return -peakFraction*peak - (t-tr[1])*(1-peakFraction)*peak/(tr[2]-tr[1])
		case tail > 0:
			return (t-tr[2])*peak/tail - peak
		default:
			return -peak
		}
	})
}
