// Package stats provides the numeric primitives shared by the forecasting
// and alerting pipelines. All functions are total: empty input yields a
// neutral zero value. The only error cases are the pairwise functions
// (covariance, correlation, R², MAE, RMSE) on mismatched-length inputs.
//
// Variance is population-style throughout (mean of squared deviations,
// divide by n) — the alert thresholds are tuned against that convention.
package stats

import (
	"fmt"
	"math"
	"sort"
)

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance returns the population variance, or 0 for an empty slice.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		diff := v - mean
		sum += diff * diff
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Covariance returns the population covariance of two equal-length series.
func Covariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("covariance: length mismatch (%d vs %d)", len(x), len(y))
	}
	if len(x) == 0 {
		return 0, nil
	}
	meanX := Mean(x)
	meanY := Mean(y)
	var sum float64
	for i := range x {
		sum += (x[i] - meanX) * (y[i] - meanY)
	}
	return sum / float64(len(x)), nil
}

// Correlation returns the Pearson correlation coefficient. A series with
// zero variance correlates 0 with everything.
func Correlation(x, y []float64) (float64, error) {
	cov, err := Covariance(x, y)
	if err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}
	sx := StdDev(x)
	sy := StdDev(y)
	if sx == 0 || sy == 0 {
		return 0, nil
	}
	return cov / (sx * sy), nil
}

// LinearRegression fits y = slope*x + intercept by ordinary least squares
// over (x, y) pairs where x is the index 0..n-1. Degenerate inputs
// (fewer than 2 points, zero x-variance) yield (0, mean).
func LinearRegression(values []float64) (slope, intercept float64) {
	n := float64(len(values))
	if n < 2 {
		return 0, Mean(values)
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// zScores maps supported confidence levels to their two-sided z values.
var zScores = map[int]float64{
	90: 1.645,
	95: 1.96,
	99: 2.576,
}

// ConfidenceInterval returns the (lower, upper) bounds of the mean at the
// given confidence level (90, 95 or 99 percent; anything else falls back
// to 95). Empty input yields (0, 0).
func ConfidenceInterval(values []float64, confidence int) (lower, upper float64) {
	if len(values) == 0 {
		return 0, 0
	}
	z, ok := zScores[confidence]
	if !ok {
		z = zScores[95]
	}
	mean := Mean(values)
	margin := z * StdDev(values) / math.Sqrt(float64(len(values)))
	return mean - margin, mean + margin
}

// RSquared returns the coefficient of determination of predictions against
// observations. A zero-variance observed series fits perfectly (1).
func RSquared(observed, predicted []float64) (float64, error) {
	if len(observed) != len(predicted) {
		return 0, fmt.Errorf("r-squared: length mismatch (%d vs %d)", len(observed), len(predicted))
	}
	if len(observed) == 0 {
		return 0, nil
	}
	mean := Mean(observed)
	var ssRes, ssTot float64
	for i := range observed {
		res := observed[i] - predicted[i]
		tot := observed[i] - mean
		ssRes += res * res
		ssTot += tot * tot
	}
	if ssTot == 0 {
		return 1, nil
	}
	return 1 - ssRes/ssTot, nil
}

// MAE returns the mean absolute error of predictions against observations.
func MAE(observed, predicted []float64) (float64, error) {
	if len(observed) != len(predicted) {
		return 0, fmt.Errorf("mae: length mismatch (%d vs %d)", len(observed), len(predicted))
	}
	if len(observed) == 0 {
		return 0, nil
	}
	var sum float64
	for i := range observed {
		sum += math.Abs(observed[i] - predicted[i])
	}
	return sum / float64(len(observed)), nil
}

// RMSE returns the root mean squared error of predictions against observations.
func RMSE(observed, predicted []float64) (float64, error) {
	if len(observed) != len(predicted) {
		return 0, fmt.Errorf("rmse: length mismatch (%d vs %d)", len(observed), len(predicted))
	}
	if len(observed) == 0 {
		return 0, nil
	}
	var sum float64
	for i := range observed {
		diff := observed[i] - predicted[i]
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(observed))), nil
}

// Autocorrelation returns the lag-k autocorrelation, or 0 when the lag
// leaves fewer than two overlapping points or the series has no variance.
func Autocorrelation(values []float64, lag int) float64 {
	n := len(values)
	if lag <= 0 || lag >= n {
		return 0
	}
	mean := Mean(values)
	var num, denom float64
	for i := 0; i < n; i++ {
		diff := values[i] - mean
		denom += diff * diff
	}
	if denom == 0 {
		return 0
	}
	for i := 0; i < n-lag; i++ {
		num += (values[i] - mean) * (values[i+lag] - mean)
	}
	return num / denom
}

// Percentile returns the p-th percentile (0..100) using linear
// interpolation between closest ranks.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Median returns the 50th percentile.
func Median(values []float64) float64 {
	return Percentile(values, 50)
}

// MovingAverage returns the series smoothed with a trailing window. Until
// the window fills, each point averages everything seen so far.
func MovingAverage(values []float64, window int) []float64 {
	if len(values) == 0 {
		return nil
	}
	if window <= 1 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
			out[i] = sum / float64(window)
		} else {
			out[i] = sum / float64(i+1)
		}
	}
	return out
}

// ExponentialSmoothing returns the series smoothed with decay factor
// alpha in (0, 1]: s[0] = v[0], s[i] = alpha*v[i] + (1-alpha)*s[i-1].
func ExponentialSmoothing(values []float64, alpha float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	if alpha <= 0 || alpha > 1 {
		alpha = 0.3
	}
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}
