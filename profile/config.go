package profile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid profile config")

const (
	defaultStopTime  = 60
	defaultTimeStep  = 0.1
	defaultPeakPower = 1000 // MW
	defaultTFCurrent = 60e3 // A
	defaultCSCurrent = 50e3 // A
	defaultHeating   = 60   // MW
)

var defaultTimeRange = []float64{10, 20, 40, 50}

// Config describes a plasma pulse. TimeRange is
// (ramp-up start, flat-top start, flat-top end, ramp-down end) in seconds.
type Config struct {
	StopTime  float64            `yaml:"stopTime" json:"stopTime"`
	TimeStep  float64            `yaml:"timeStep" json:"timeStep"`
	TimeRange []float64          `yaml:"timeRange" json:"timeRange"`
	MaxValues map[string]float64 `yaml:"maxValues" json:"maxValues"`
	Label     string             `yaml:"label" json:"label"`
}

func LoadConfig(fileName string) (cfg *Config, err error) {
	d, err := os.ReadFile(fileName)
	if err != nil {
		return
	}

	cfg = &Config{}

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		cfg = nil

		return
	}

	err = cfg.fix()
	if err != nil {
		cfg = nil
	}

	return
}

func (cfg *Config) fix() error {
	if cfg.StopTime <= 0 || cfg.TimeStep <= 0 {
		cfg.StopTime, cfg.TimeStep = defaultStopTime, defaultTimeStep
	}

	if len(cfg.TimeRange) == 0 {
		cfg.TimeRange = append([]float64{}, defaultTimeRange...)
	}

	if len(cfg.TimeRange) != 4 {
		return fmt.Errorf("%w: time range needs 4 values, got %d", ErrInvalidConfig, len(cfg.TimeRange))
	}

	if cfg.TimeRange[0] <= 0 {
		return fmt.Errorf("%w: ramp-up start must be positive", ErrInvalidConfig)
	}

	for idx := 1; idx < len(cfg.TimeRange); idx++ {
		if cfg.TimeRange[idx] < cfg.TimeRange[idx-1] {
			return fmt.Errorf("%w: time range not ascending", ErrInvalidConfig)
		}
	}

	return nil
}

func (cfg *Config) maxValue(name string, def float64) float64 {
	if v, ok := cfg.MaxValues[name]; ok && v != 0 {
		return v
	}

	return def
}
