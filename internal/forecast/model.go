// Package forecast trains regression models on a time series and produces
// bounded forecasts.
package forecast

import "github.com/finwatch/insights/internal/model"

// PredictionModel is the contract every forecasting model implements.
type PredictionModel interface {
	// Train fits the model to the series. Fails with INSUFFICIENT_DATA
	// when the series has fewer than 2 points.
	Train(data *model.TimeSeriesData) error

	// Predict forecasts the given number of future periods. Fails with
	// UNTRAINED_MODEL before a successful Train.
	Predict(periods int) ([]*model.PredictionResult, error)

	// Confidence returns the model's fit quality (R²) clamped to [0, 1].
	Confidence() float64

	// Metadata exposes the trained parameters and fit metrics of the
	// last training run.
	Metadata() *model.ModelMetadata
}
