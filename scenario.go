package olsbench

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Scenario is a YAML-serializable description of a simulation run, so an
// end-to-end experiment can live in a file next to the results it produced.
//
// Example:
//
//	sample_size: 100
//	replications: 50
//	seed: 1809
//	beta: [2, -3, 1, 0.5]
//	regressors:
//	  - {dist: normal, mu: -1, sigma: 1}
//	  - {dist: bernoulli, p: 0.3}
//	  - {dist: exponential, rate: 1}
//	noise: {dist: uniform, min: -1, max: 1}
type Scenario struct {
	SampleSize   int        `yaml:"sample_size"`
	Replications int        `yaml:"replications"`
	Beta         []float64  `yaml:"beta"`
	Regressors   []Marginal `yaml:"regressors"`
	Noise        Marginal   `yaml:"noise"`
	Seed         uint64     `yaml:"seed"`
	Workers      int        `yaml:"workers"`
}

// Marginal names a one-dimensional distribution and its parameters. Only the
// fields relevant to the named dist are read.
type Marginal struct {
	Dist  string  `yaml:"dist"` // normal | bernoulli | exponential | uniform | constant
	Mu    float64 `yaml:"mu"`
	Sigma float64 `yaml:"sigma"`
	P     float64 `yaml:"p"`
	Rate  float64 `yaml:"rate"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Value float64 `yaml:"value"`
}

func (m Marginal) distribution() (Distribution, error) {
	switch m.Dist {
	case "normal":
		return Normal(m.Mu, m.Sigma), nil
	case "bernoulli":
		return Bernoulli(m.P), nil
	case "exponential":
		return Exponential(m.Rate), nil
	case "uniform":
		return Uniform(m.Min, m.Max), nil
	case "constant":
		return Constant(m.Value), nil
	default:
		return nil, fmt.Errorf("olsbench: unknown distribution %q", m.Dist)
	}
}

// Config translates the scenario into a runnable Config.
func (sc Scenario) Config() (Config, error) {
	regs := make([]Distribution, len(sc.Regressors))
	for i, m := range sc.Regressors {
		d, err := m.distribution()
		if err != nil {
			return Config{}, fmt.Errorf("regressor %d: %w", i, err)
		}
		regs[i] = d
	}

	noise, err := sc.Noise.distribution()
	if err != nil {
		return Config{}, fmt.Errorf("noise: %w", err)
	}

	return Config{
		SampleSize:   sc.SampleSize,
		Replications: sc.Replications,
		Beta:         append([]float64(nil), sc.Beta...),
		Regressors:   regs,
		Noise:        noise,
		Seed:         sc.Seed,
		Workers:      sc.Workers,
	}, nil
}

// ParseScenario decodes a YAML scenario into a Config.
func ParseScenario(data []byte) (Config, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Config{}, fmt.Errorf("olsbench: decoding scenario: %w", err)
	}
	return sc.Config()
}
