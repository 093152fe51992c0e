package stats

import (
	"math"
	"testing"

	moremath "github.com/aclements/go-moremath/stats"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_KnownSample(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9, 9, 9}

	res, err := Compute(xs)
	require.NoError(t, err)

	assert.InDelta(t, 5.8, res.Mean, 1e-12)
	assert.InDelta(t, 5.76, res.Variance, 1e-12)
	assert.InDelta(t, 2.4, res.StdDev, 1e-12)
}

func TestCompute_AllEqual(t *testing.T) {
	xs := make([]float64, 10)
	for i := range xs {
		xs[i] = 5.0
	}

	res, err := Compute(xs)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Mean)
	assert.Equal(t, 0.0, res.Variance)
	assert.Equal(t, 0.0, res.StdDev)
}

func TestVariance_UsesPopulationDivisor(t *testing.T) {
	cases := [][]float64{
		{2, 4, 4, 4, 5, 5, 7, 9, 9, 9},
		{-1.5, 0, 3.25, 10, -7, 2, 2, 8.5, 100, -0.001},
		{1, 2},
	}
	for _, xs := range cases {
		n := float64(len(xs))
		unbiased := moremath.Sample{Xs: xs}.Variance()
		assert.InDelta(t, unbiased*(n-1)/n, Variance(xs), 1e-9, "xs=%v", xs)
	}
}

func TestStdDev_IsSqrtOfVariance(t *testing.T) {
	xs := []float64{-3, 0.5, 12, 7, 7, 1e3, -2e2, 4, 4, 0}

	res, err := Compute(xs)
	require.NoError(t, err)
	assert.Equal(t, math.Sqrt(res.Variance), res.StdDev)
	assert.Equal(t, StdDev(xs), res.StdDev)
	assert.GreaterOrEqual(t, res.StdDev, 0.0)
}

func TestCompute_SingleValue(t *testing.T) {
	res, err := Compute([]float64{-42})
	require.NoError(t, err)
	assert.Equal(t, -42.0, res.Mean)
	assert.Equal(t, 0.0, res.StdDev)
}

func TestCompute_Empty(t *testing.T) {
	_, err := Compute(nil)
	assert.True(t, errors.Is(err, ErrEmptySample))

	assert.True(t, math.IsNaN(Mean(nil)))
	assert.True(t, math.IsNaN(Variance(nil)))
	assert.True(t, math.IsNaN(StdDev(nil)))
}

func TestCompute_Idempotent(t *testing.T) {
	xs := []float64{1.1, 2.2, 3.3, 4.4, 5.5, 6.6, 7.7, 8.8, 9.9, 10.0}
	orig := append([]float64(nil), xs...)

	first, err := Compute(xs)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Compute(xs)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, orig, xs, "Compute must not modify its input")
}

func TestCompute_HugeMagnitude(t *testing.T) {
	xs := []float64{1e308, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	var res Result
	var err error
	require.NotPanics(t, func() { res, err = Compute(xs) })
	require.NoError(t, err)
	assert.InEpsilon(t, 1e307, res.Mean, 1e-12)
	assert.True(t, math.IsInf(res.StdDev, 1), "squared deviation of 1e308 overflows, got %v", res.StdDev)
}
