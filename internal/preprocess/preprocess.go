// Package preprocess turns irregular raw observations into the clean,
// evenly-bucketed series the prediction models train on.
package preprocess

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/finwatch/insights/internal/model"
	"github.com/finwatch/insights/internal/stats"
)

// Period selects the aggregation bucket size.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// iqrMultiplier is the standard Tukey fence factor.
const iqrMultiplier = 1.5

// Preprocessor cleans, aggregates and reshapes raw data points. It is
// stateless; the zero value is ready to use.
type Preprocessor struct{}

// NewPreprocessor creates a Preprocessor.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{}
}

// CleanData drops points with a zero date, a non-finite value, or a
// negative value.
func (p *Preprocessor) CleanData(data []model.DataPoint) []model.DataPoint {
	cleaned := make([]model.DataPoint, 0, len(data))
	for _, d := range data {
		if d.Date.IsZero() {
			continue
		}
		if math.IsNaN(d.Value) || math.IsInf(d.Value, 0) {
			continue
		}
		if d.Value < 0 {
			continue
		}
		cleaned = append(cleaned, d)
	}
	return cleaned
}

// DetectOutliers returns the indices of points outside the Tukey fences
// (Q1 - 1.5*IQR, Q3 + 1.5*IQR). Fewer than 4 points: no outliers.
func (p *Preprocessor) DetectOutliers(data []model.DataPoint) []int {
	if len(data) < 4 {
		return nil
	}
	values := make([]float64, len(data))
	for i, d := range data {
		values[i] = d.Value
	}
	q1 := stats.Percentile(values, 25)
	q3 := stats.Percentile(values, 75)
	iqr := q3 - q1
	lower := q1 - iqrMultiplier*iqr
	upper := q3 + iqrMultiplier*iqr

	var outliers []int
	for i, v := range values {
		if v < lower || v > upper {
			outliers = append(outliers, i)
		}
	}
	return outliers
}

// RemoveOutliers returns a copy of the data with IQR outliers removed.
func (p *Preprocessor) RemoveOutliers(data []model.DataPoint) []model.DataPoint {
	outliers := p.DetectOutliers(data)
	if len(outliers) == 0 {
		out := make([]model.DataPoint, len(data))
		copy(out, data)
		return out
	}
	skip := make(map[int]bool, len(outliers))
	for _, idx := range outliers {
		skip[idx] = true
	}
	kept := make([]model.DataPoint, 0, len(data)-len(outliers))
	for i, d := range data {
		if !skip[i] {
			kept = append(kept, d)
		}
	}
	return kept
}

// AggregateByPeriod groups points into day, ISO-week or calendar-month
// buckets and replaces each bucket with the mean of its values. The
// representative date is the bucket start: midnight for days, Monday for
// ISO weeks, day 1 for months. Output is sorted by date ascending.
func (p *Preprocessor) AggregateByPeriod(data []model.DataPoint, period Period) []model.DataPoint {
	if len(data) == 0 {
		return nil
	}

	type bucket struct {
		date   time.Time
		values []float64
	}
	buckets := make(map[string]*bucket)

	for _, d := range data {
		key, repDate := bucketKey(d.Date, period)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{date: repDate}
			buckets[key] = b
		}
		b.values = append(b.values, d.Value)
	}

	out := make([]model.DataPoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, model.DataPoint{Date: b.date, Value: stats.Mean(b.values)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// bucketKey returns the grouping key and representative date for a point.
func bucketKey(date time.Time, period Period) (string, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	switch period {
	case PeriodWeek:
		year, week := day.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week), isoWeekStart(day)
	case PeriodMonth:
		return day.Format("2006-01"), time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day.Format("2006-01-02"), day
	}
}

// isoWeekStart returns the Monday of the ISO-8601 week containing t.
func isoWeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the preceding ISO week
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// FillMissingDates fills gaps in a daily series: every missing day between
// two observed points receives the mean of the two bounding values. Input
// need not be sorted; output is sorted ascending.
func (p *Preprocessor) FillMissingDates(data []model.DataPoint) []model.DataPoint {
	if len(data) < 2 {
		out := make([]model.DataPoint, len(data))
		copy(out, data)
		return out
	}

	sorted := make([]model.DataPoint, len(data))
	copy(sorted, data)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	out := []model.DataPoint{sorted[0]}
	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1]
		curr := sorted[i]
		gapFill := (prev.Value + curr.Value) / 2

		for d := prev.Date.AddDate(0, 0, 1); d.Before(curr.Date); d = d.AddDate(0, 0, 1) {
			out = append(out, model.DataPoint{Date: d, Value: gapFill})
		}
		out = append(out, curr)
	}
	return out
}

// ToTimeSeries sorts points by date ascending and splits them into
// parallel date/value slices.
func (p *Preprocessor) ToTimeSeries(data []model.DataPoint) *model.TimeSeriesData {
	sorted := make([]model.DataPoint, len(data))
	copy(sorted, data)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	ts := &model.TimeSeriesData{
		Dates:  make([]time.Time, len(sorted)),
		Values: make([]float64, len(sorted)),
	}
	for i, d := range sorted {
		ts.Dates[i] = d.Date
		ts.Values[i] = d.Value
	}
	return ts
}

// NormalizeData min-max scales values into [0, 1] and returns the observed
// min and max for later denormalization. An all-equal series maps to 0.5.
func (p *Preprocessor) NormalizeData(values []float64) (normalized []float64, min, max float64) {
	if len(values) == 0 {
		return nil, 0, 0
	}
	min, max = values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	normalized = make([]float64, len(values))
	if min == max {
		for i := range normalized {
			normalized[i] = 0.5
		}
		return normalized, min, max
	}
	span := max - min
	for i, v := range values {
		normalized[i] = (v - min) / span
	}
	return normalized, min, max
}

// Denormalize reverses NormalizeData with the same min/max. When min equals
// max every normalized value maps back to that constant.
func (p *Preprocessor) Denormalize(normalized []float64, min, max float64) []float64 {
	out := make([]float64, len(normalized))
	if min == max {
		for i := range out {
			out[i] = min
		}
		return out
	}
	span := max - min
	for i, v := range normalized {
		out[i] = v*span + min
	}
	return out
}
