package profile

import (
	"github.com/powerbalance/libtimetable/registry"
	"github.com/powerbalance/libtimetable/timetable"
	"github.com/sgostarter/i/l"
)

const (
	TableName = "data"

	MaxValueThermal = "thermal"
	MaxValueTF      = "tf"
	MaxValueCS      = "cs"
	MaxValueNBI     = "nbi"
	MaxValueRF      = "rf"
)

// TimeArray returns stopTime/timeStep+1 evenly spaced points from 0 to stopTime.
func TimeArray(stopTime, timeStep float64) []float64 {
	n := int(stopTime/timeStep) + 1
	if n < 2 {
		return []float64{0}
	}

	ts := make([]float64, n)
	for idx := range ts {
		ts[idx] = stopTime * float64(idx) / float64(n-1)
	}

	return ts
}

type valueAt func(t float64) float64

func build(cfg *Config, fileName string, fn valueAt) (*timetable.Table, error) {
	ts := TimeArray(cfg.StopTime, cfg.TimeStep)

	values := make([]float64, 0, len(ts)*2)
	for _, t := range ts {
		values = append(values, t, fn(t))
	}

	return timetable.NewTable(fileName+cfg.Label+".txt", TableName, values, len(ts), 2)
}

func prepare(cfg *Config) (*Config, error) {
	c := Config{}
	if cfg != nil {
		c = *cfg
		c.TimeRange = append([]float64{}, cfg.TimeRange...)
	}

	if err := c.fix(); err != nil {
		return nil, err
	}

	return &c, nil
}

// ThermalPowerOut is 1 W outside the flat top and the peak power (MW) during it.
func ThermalPowerOut(cfg *Config) (*timetable.Table, error) {
	c, err := prepare(cfg)
	if err != nil {
		return nil, err
	}

	peak := c.maxValue(MaxValueThermal, defaultPeakPower) * 1e6

	return build(c, "ThermalPowerOut", func(t float64) float64 {
		if t >= c.TimeRange[1] && t < c.TimeRange[2] {
			return peak
		}

		return 1
	})
}

// TFCoilCurrent ramps linearly up to the peak current before ramp-up start,
// holds it until ramp-down end and ramps down at the same rate.
func TFCoilCurrent(cfg *Config) (*timetable.Table, error) {
	c, err := prepare(cfg)
	if err != nil {
		return nil, err
	}

	peak := c.maxValue(MaxValueTF, defaultTFCurrent)
	rate := peak / c.TimeRange[0]

	return build(c, "currentTF", func(t float64) float64 {
		switch {
		case t < c.TimeRange[0]:
			return t * rate
		case t < c.TimeRange[3]:
			return peak
		default:
			return peak - (t-c.TimeRange[3])*rate
		}
	})
}

// Flattop is base everywhere except the flat top, where it is peak.
func Flattop(cfg *Config, fileName string, base, peak float64) (*timetable.Table, error) {
	c, err := prepare(cfg)
	if err != nil {
		return nil, err
	}

	return build(c, fileName, func(t float64) float64 {
		if t >= c.TimeRange[1] && t < c.TimeRange[2] {
			return peak
		}

		return base
	})
}

// GenerateAll builds every profile and saves it to storage when one is given.
func GenerateAll(cfg *Config, storage registry.Storage, logger l.Wrapper) (tables []*timetable.Table, err error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	gens := []func(*Config) (*timetable.Table, error){ThermalPowerOut, TFCoilCurrent, CSCoilCurrent, NBIHeat, RFHeat}

	for n := 1; n <= PFCoilCount; n++ {
		n := n
		gens = append(gens, func(cfg *Config) (*timetable.Table, error) {
			return PFCoilCurrent(cfg, n)
		})
	}

	for _, gen := range gens {
		var t *timetable.Table

		t, err = gen(cfg)
		if err != nil {
			return
		}

		if storage != nil {
			err = storage.Save(t)
			if err != nil {
				logger.WithFields(l.ErrorField(err), l.StringField("fileName", t.FileName())).Error("save profile failed")

				return
			}
		}

		logger.WithFields(l.StringField("fileName", t.FileName()), l.IntField("rows", t.Rows())).Debug("profile generated")

		tables = append(tables, t)
	}

	return
}
