package olsbench

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator produces one random draw per call.
// The distuv distributions satisfy this interface directly.
type Generator interface {
	Rand() float64
}

// Distribution binds a marginal distribution to a random source.
//
// The simulator instantiates fresh generators per replication from
// per-replication sources, so replications never share RNG state. That is
// what keeps Run deterministic under parallel execution.
type Distribution func(src rand.Source) Generator

// Normal returns a Gaussian marginal with mean mu and standard deviation sigma.
func Normal(mu, sigma float64) Distribution {
	return func(src rand.Source) Generator {
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	}
}

// Bernoulli returns a {0,1} marginal with success probability p.
func Bernoulli(p float64) Distribution {
	return func(src rand.Source) Generator {
		return distuv.Bernoulli{P: p, Src: src}
	}
}

// Exponential returns an exponential marginal with the given rate (mean 1/rate).
func Exponential(rate float64) Distribution {
	return func(src rand.Source) Generator {
		return distuv.Exponential{Rate: rate, Src: src}
	}
}

// Uniform returns a continuous uniform marginal on [min, max).
func Uniform(min, max float64) Distribution {
	return func(src rand.Source) Generator {
		return distuv.Uniform{Min: min, Max: max, Src: src}
	}
}

// Constant returns a degenerate marginal that always yields v.
// A Constant(0) noise term makes the OLS fit reproduce β exactly.
func Constant(v float64) Distribution {
	return func(rand.Source) Generator { return constant(v) }
}

type constant float64

func (c constant) Rand() float64 { return float64(c) }
