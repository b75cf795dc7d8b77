package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsub/functional"
)

// Config is the YAML-backed run description shared by the subcommands.
type Config struct {
	Samples    int    `yaml:"samples"`    // M
	Dim        int    `yaml:"dim"`        // m
	Eigen      int    `yaml:"eigen"`      // eigenvalues of interest
	Active     int    `yaml:"active"`     // active dimension n
	Replicates int    `yaml:"replicates"` // bootstrap replicates B
	Clusters   int    `yaml:"clusters"`   // k-means cluster count
	Seed       uint64 `yaml:"seed"`
	Function   string `yaml:"function"` // sphere | ridge | rosenbrock
	OutDir     string `yaml:"outdir"`
}

// DefaultConfig is the runnable out-of-the-box demo setup.
func DefaultConfig() Config {
	return Config{
		Samples:    300,
		Dim:        4,
		Eigen:      2,
		Active:     1,
		Replicates: 100,
		Clusters:   3,
		Seed:       42,
		Function:   "sphere",
		OutDir:     "out",
	}
}

// LoadConfig reads a YAML config file over the defaults; an empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// BuildFunctional maps the configured function name onto a quantity of
// interest. The rosenbrock case carries no analytic gradient and exercises
// the central-difference fallback.
func (c Config) BuildFunctional() (*functional.Functional, error) {
	switch c.Function {
	case "sphere":
		return functional.New(c.Dim,
			func(x []float64) float64 {
				var s float64
				for _, v := range x {
					s += v * v
				}

				return s
			},
			functional.WithGradient(func(x []float64) []float64 {
				g := make([]float64, len(x))
				for j, v := range x {
					g[j] = 2 * v
				}

				return g
			}),
		)
	case "ridge":
		return functional.New(c.Dim,
			func(x []float64) float64 {
				var s float64
				for _, v := range x {
					s += v
				}

				return s * s / 2
			},
			functional.WithGradient(func(x []float64) []float64 {
				var s float64
				for _, v := range x {
					s += v
				}
				g := make([]float64, len(x))
				for j := range g {
					g[j] = s
				}

				return g
			}),
		)
	case "rosenbrock":
		return functional.New(c.Dim, func(x []float64) float64 {
			var s float64
			for i := 0; i+1 < len(x); i++ {
				a := x[i+1] - x[i]*x[i]
				b := 1 - x[i]
				s += 100*a*a + b*b
			}

			return s
		})
	default:
		return nil, fmt.Errorf("unknown function %q", c.Function)
	}
}
