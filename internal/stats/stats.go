// Package stats computes the summary statistics reported for a sample:
// the arithmetic mean, the population variance and the standard deviation.
package stats

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// ErrEmptySample is returned by Compute when there are no values to
// summarize.
var ErrEmptySample = errors.New("sample must contain at least one value")

// Result holds the statistics derived from one sample.
type Result struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}

// Mean returns sum(xs) / len(xs). It returns NaN for an empty slice.
func Mean(xs []float64) float64 {
	return orNaN(stats.Mean(xs))
}

// Variance returns the population variance of xs: the mean of the squared
// deviations from the mean, divided by n rather than n-1.
// It returns NaN for an empty slice.
func Variance(xs []float64) float64 {
	return orNaN(stats.PopulationVariance(xs))
}

// StdDev returns the square root of the population variance of xs.
func StdDev(xs []float64) float64 {
	return orNaN(stats.StandardDeviationPopulation(xs))
}

func orNaN(v float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}
	return v
}

// Compute derives the mean, population variance and standard deviation of
// xs. xs is not modified.
func Compute(xs []float64) (Result, error) {
	if len(xs) == 0 {
		return Result{}, ErrEmptySample
	}

	mean, err := stats.Mean(xs)
	if err != nil {
		return Result{}, errors.Wrap(err, "mean computation failed")
	}
	variance, err := stats.PopulationVariance(xs)
	if err != nil {
		return Result{}, errors.Wrap(err, "variance computation failed")
	}
	return Result{
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}
