package profile

import (
	"github.com/powerbalance/libtimetable/timetable"
)

// NBIHeat is the neutral beam injection heating power.
func NBIHeat(cfg *Config) (*timetable.Table, error) {
	return heating(cfg, MaxValueNBI, "NBI_Heat")
}

// RFHeat is the radio frequency heating power.
func RFHeat(cfg *Config) (*timetable.Table, error) {
	return heating(cfg, MaxValueRF, "RF_Heat")
}

// lastBefore returns the last grid point in [from, to), or from when there is none.
func lastBefore(ts []float64, from, to float64) float64 {
	last := from

	for _, t := range ts {
		if t >= from && t < to {
			last = t
		}
	}

	return last
}

// heating steps up through ramp-up to 1.5 times the nominal power (MW), holds
// the nominal power over the flat top with overshoots at both ends, and steps
// down during ramp-down. It is zero outside the pulse.
func heating(cfg *Config, maxValueKey, fileName string) (*timetable.Table, error) {
	c, err := prepare(cfg)
	if err != nil {
		return nil, err
	}

	power := c.maxValue(maxValueKey, defaultHeating) * 1e6
	tr := c.TimeRange

	ts := TimeArray(c.StopTime, c.TimeStep)
	rampUp := 0.9 * (lastBefore(ts, tr[0], tr[1]) - tr[0])
	rampDown := lastBefore(ts, tr[2], tr[3]) - tr[2]
	d1, d2 := tr[1]-tr[0], tr[2]-tr[1]

	return build(c, fileName, func(t float64) float64 {
		switch {
		case t < tr[0]:
			return 0
		case t < tr[1]:
			s := t - tr[0]

			switch {
			case s < rampUp/3:
				return 0.3 * power
			case s < 2*rampUp/3:
				return 0.75 * power
			case s < 1.2*2*rampUp/3:
				return 1.2 * power
			case s < 1.4*2*rampUp/3:
				return 1.35 * power
			case s < rampUp:
				return 1.4 * power
			default:
				return 1.5 * power
			}
		case t < tr[2]:
			s := t - tr[1]

			switch {
			case s <= 0.05*d1:
				return 1.5 * power
			case s <= 0.1*d1:
				return 1.3 * power
			case s <= 0.15*d1:
				return 1.2 * power
			case s < 0.95*d2:
				return power
			case s < 0.975*d2:
				return 1.3 * power
			default:
				return 1.5 * power
			}
		case t < tr[3]:
			s := t - tr[2]

			switch {
			case s < 0.2*rampDown:
				return 1.5 * power
			case s < 2*0.9*rampDown/3:
				return 1.3 * power
			case s < 1.4*2*0.9*rampDown/3:
				return 0.9 * power
			case s < 1.5*2*0.9*rampDown/3:
				return 0.7 * power
			case s < 0.9*rampDown:
				return 0.5 * power
			default:
				return 0.2 * power
			}
		default:
			return 0
		}
	})
}
