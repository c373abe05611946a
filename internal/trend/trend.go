// Package trend provides higher-level analysis over a value series:
// direction classification, seasonality scanning, change-point detection
// and classical decomposition.
package trend

import (
	"math"

	"github.com/finwatch/insights/internal/stats"
)

// Direction classifies where a series is heading.
type Direction string

const (
	DirectionIncreasing Direction = "increasing"
	DirectionDecreasing Direction = "decreasing"
	DirectionStable     Direction = "stable"
)

const (
	// slopeThresholdRatio: a slope smaller than 1% of the series mean
	// counts as stable.
	slopeThresholdRatio = 0.01
	// seasonalityMinCorrelation is the autocorrelation a candidate period
	// must exceed to be reported.
	seasonalityMinCorrelation = 0.3
	// changePointMinShift is the pooled-stddev-normalized mean shift that
	// flags a change point.
	changePointMinShift = 2.0
)

// TrendResult describes the fitted direction of a series.
type TrendResult struct {
	Direction Direction
	Slope     float64
	Strength  float64 // |R²| of the linear fit
}

// SeasonalityResult reports the best repeating period found, if any.
type SeasonalityResult struct {
	Detected bool
	Period   int
	Strength float64 // autocorrelation at the winning lag
}

// Decomposition splits a series into trend, seasonal and residual parts.
type Decomposition struct {
	Trend    []float64
	Seasonal []float64
	Residual []float64
}

// Report bundles the individual analyses for presentation.
type Report struct {
	Trend        *TrendResult
	GrowthRate   float64
	Seasonality  *SeasonalityResult
	ChangePoints []int
	Outliers     []int
}

// Analyzer runs trend analyses over plain value series. Stateless; the
// zero value is ready to use.
type Analyzer struct{}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// DetectTrend regresses the series against its index and classifies the
// slope as increasing, decreasing or stable relative to 1% of the mean.
func (a *Analyzer) DetectTrend(values []float64) *TrendResult {
	if len(values) < 2 {
		return &TrendResult{Direction: DirectionStable}
	}

	slope, intercept := stats.LinearRegression(values)
	predicted := make([]float64, len(values))
	for i := range values {
		predicted[i] = slope*float64(i) + intercept
	}
	r2, err := stats.RSquared(values, predicted)
	if err != nil {
		r2 = 0
	}

	threshold := slopeThresholdRatio * math.Abs(stats.Mean(values))
	direction := DirectionStable
	if slope > threshold {
		direction = DirectionIncreasing
	} else if slope < -threshold {
		direction = DirectionDecreasing
	}

	return &TrendResult{
		Direction: direction,
		Slope:     slope,
		Strength:  math.Abs(r2),
	}
}

// CalculateGrowthRate returns the percentage change from the first to the
// last value, or 0 when the first value is 0.
func (a *Analyzer) CalculateGrowthRate(values []float64) float64 {
	if len(values) < 2 || values[0] == 0 {
		return 0
	}
	return (values[len(values)-1] - values[0]) / values[0] * 100
}

// DetectSeasonality scans candidate periods 2..maxPeriod and reports the
// lag with the highest autocorrelation, provided it exceeds 0.3.
func (a *Analyzer) DetectSeasonality(values []float64, maxPeriod int) *SeasonalityResult {
	result := &SeasonalityResult{}
	if len(values) < 4 || maxPeriod < 2 {
		return result
	}
	if maxPeriod > len(values)/2 {
		maxPeriod = len(values) / 2
	}

	bestPeriod := 0
	bestCorr := 0.0
	for period := 2; period <= maxPeriod; period++ {
		corr := stats.Autocorrelation(values, period)
		if corr > bestCorr {
			bestCorr = corr
			bestPeriod = period
		}
	}

	if bestCorr > seasonalityMinCorrelation {
		result.Detected = true
		result.Period = bestPeriod
		result.Strength = bestCorr
	}
	return result
}

// FindChangePoints compares the mean of a sliding window before and after
// each index and flags indices where the pooled-stddev-normalized shift
// exceeds 2.0. Requires at least 10 points; window is max(5, n/10).
func (a *Analyzer) FindChangePoints(values []float64) []int {
	n := len(values)
	if n < 10 {
		return nil
	}
	window := n / 10
	if window < 5 {
		window = 5
	}

	var points []int
	for i := window; i <= n-window; i++ {
		before := values[i-window : i]
		after := values[i : i+window]

		pooled := math.Sqrt((stats.Variance(before) + stats.Variance(after)) / 2)
		if pooled == 0 {
			continue
		}
		shift := math.Abs(stats.Mean(after)-stats.Mean(before)) / pooled
		if shift > changePointMinShift {
			points = append(points, i)
		}
	}
	return points
}

// Decompose splits the series into a moving-average trend, a mean-centered
// period-indexed seasonal component, and the residual remainder.
func (a *Analyzer) Decompose(values []float64, period int) *Decomposition {
	n := len(values)
	if n == 0 || period < 2 || period > n {
		return &Decomposition{
			Trend:    append([]float64(nil), values...),
			Seasonal: make([]float64, n),
			Residual: make([]float64, n),
		}
	}

	trendPart := stats.MovingAverage(values, period)

	detrended := make([]float64, n)
	for i := range values {
		detrended[i] = values[i] - trendPart[i]
	}

	// Average detrended residuals per position within the period.
	sums := make([]float64, period)
	counts := make([]int, period)
	for i, v := range detrended {
		idx := i % period
		sums[idx] += v
		counts[idx]++
	}
	indices := make([]float64, period)
	var total float64
	for i := range indices {
		if counts[i] > 0 {
			indices[i] = sums[i] / float64(counts[i])
		}
		total += indices[i]
	}
	// Mean-center so the seasonal component sums to zero over one period.
	center := total / float64(period)
	for i := range indices {
		indices[i] -= center
	}

	seasonal := make([]float64, n)
	residual := make([]float64, n)
	for i := range values {
		seasonal[i] = indices[i%period]
		residual[i] = values[i] - trendPart[i] - seasonal[i]
	}

	return &Decomposition{Trend: trendPart, Seasonal: seasonal, Residual: residual}
}

// IdentifyOutlierPeriods returns indices whose values fall outside the
// Tukey fences. Fewer than 4 points: none.
func (a *Analyzer) IdentifyOutlierPeriods(values []float64) []int {
	if len(values) < 4 {
		return nil
	}
	q1 := stats.Percentile(values, 25)
	q3 := stats.Percentile(values, 75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	var outliers []int
	for i, v := range values {
		if v < lower || v > upper {
			outliers = append(outliers, i)
		}
	}
	return outliers
}

// SmoothSeries exponentially smooths the series with the given decay factor.
func (a *Analyzer) SmoothSeries(values []float64, alpha float64) []float64 {
	return stats.ExponentialSmoothing(values, alpha)
}

// Analyze runs every analysis and bundles the results. maxPeriod bounds
// the seasonality scan.
func (a *Analyzer) Analyze(values []float64, maxPeriod int) *Report {
	return &Report{
		Trend:        a.DetectTrend(values),
		GrowthRate:   a.CalculateGrowthRate(values),
		Seasonality:  a.DetectSeasonality(values, maxPeriod),
		ChangePoints: a.FindChangePoints(values),
		Outliers:     a.IdentifyOutlierPeriods(values),
	}
}
