package registry

import (
	"time"

	"github.com/sgostarter/i/l"
)

type Config struct {
	// CacheExpiration unloads a table this long after it was put; zero keeps it forever.
	CacheExpiration time.Duration `yaml:"cacheExpiration" json:"cacheExpiration"`
	// ReloadInterval re-reads every table from storage; zero disables reloading.
	ReloadInterval time.Duration `yaml:"reloadInterval" json:"reloadInterval"`
}

type Options struct {
	cfg     Config
	storage Storage
	logger  l.Wrapper
	metrics *Metrics
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	return opts
}

func WithConfig(cfg Config) Option {
	return func(o *Options) {
		o.cfg = cfg
	}
}

func WithStorage(storage Storage) Option {
	return func(o *Options) {
		o.storage = storage
	}
}

func WithLogger(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(o *Options) {
		o.metrics = metrics
	}
}
