// Package engine orchestrates the forecasting pipeline end-to-end:
// preprocessing, model training, forecast generation, caching and
// persistence.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finwatch/insights/internal/forecast"
	"github.com/finwatch/insights/internal/model"
	"github.com/finwatch/insights/internal/preprocess"
	"github.com/finwatch/insights/internal/store"
)

// minForecastTransactions is the minimum history required before a
// forecast is worth computing.
const minForecastTransactions = 30

// ForecastResult is what the engine returns to callers: the forecast
// itself plus everything needed to judge it.
type ForecastResult struct {
	UserID      string
	ModelType   string
	Horizon     int
	Predictions []*model.PredictionResult
	Confidence  float64
	Metadata    *model.ModelMetadata
	GeneratedAt time.Time
}

// PredictionEngine runs the forecasting pipeline for one user at a time.
type PredictionEngine struct {
	store    store.Store
	cache    *PredictionCache
	pre      *preprocess.Preprocessor
	newModel func() forecast.PredictionModel
	now      func() time.Time
}

// NewPredictionEngine creates an engine using the given store and cache.
// The cache must be the application-wide instance so invalidation on
// transaction writes reaches it.
func NewPredictionEngine(st store.Store, cache *PredictionCache) *PredictionEngine {
	return &PredictionEngine{
		store: st,
		cache: cache,
		pre:   preprocess.NewPreprocessor(),
		newModel: func() forecast.PredictionModel {
			return forecast.NewLinearRegressionModel()
		},
		now: time.Now,
	}
}

// Forecast predicts the user's monthly net-flow magnitude for the next
// `horizon` months. Results are cached for the cache TTL and persisted as
// a prediction document for audit history.
func (e *PredictionEngine) Forecast(ctx context.Context, userID string, horizon int) (*ForecastResult, error) {
	if horizon <= 0 {
		horizon = 1
	}

	if cached, ok := e.cache.Get(userID, forecast.ModelTypeLinearRegression, horizon); ok {
		return cached, nil
	}

	transactions, err := e.store.ListTransactions(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if len(transactions) < minForecastTransactions {
		return nil, forecast.NewError(forecast.ErrInsufficientData,
			"not enough data: forecasting requires at least %d transactions, got %d",
			minForecastTransactions, len(transactions))
	}

	points := monthlyNetFlow(transactions)
	points = e.pre.CleanData(points)
	points = e.pre.AggregateByPeriod(points, preprocess.PeriodMonth)
	series := e.pre.ToTimeSeries(points)

	mdl := e.newModel()
	if err := mdl.Train(series); err != nil {
		return nil, err
	}
	predictions, err := mdl.Predict(horizon)
	if err != nil {
		return nil, err
	}

	generatedAt := e.now()
	result := &ForecastResult{
		UserID:      userID,
		ModelType:   forecast.ModelTypeLinearRegression,
		Horizon:     horizon,
		Predictions: predictions,
		Confidence:  mdl.Confidence(),
		Metadata:    mdl.Metadata(),
		GeneratedAt: generatedAt,
	}

	doc := &model.PredictionDocument{
		ID:          uuid.New().String(),
		UserID:      userID,
		ModelType:   result.ModelType,
		Horizon:     horizon,
		Predictions: predictions,
		Confidence:  result.Confidence,
		Metadata:    result.Metadata,
		GeneratedAt: generatedAt,
		ExpiresAt:   generatedAt.Add(e.cache.ttl),
	}
	if err := e.store.SavePrediction(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to persist prediction: %w", err)
	}

	e.cache.Set(userID, result.ModelType, horizon, result)
	return result, nil
}

// InvalidateCache drops the user's cached forecasts. Call on every
// transaction create/update/delete for that user.
func (e *PredictionEngine) InvalidateCache(userID string) {
	e.cache.InvalidateUser(userID)
}

// monthlyNetFlow folds transactions into one point per calendar month:
// income adds, expense subtracts, and the model forecasts the magnitude
// of the monthly net, so the absolute value is taken.
func monthlyNetFlow(transactions []*model.Transaction) []model.DataPoint {
	type monthKey struct {
		year  int
		month time.Month
	}
	nets := make(map[monthKey]float64)
	for _, txn := range transactions {
		key := monthKey{year: txn.Date.Year(), month: txn.Date.Month()}
		if txn.Type == model.TransactionTypeIncome {
			nets[key] += txn.Amount
		} else {
			nets[key] -= txn.Amount
		}
	}

	points := make([]model.DataPoint, 0, len(nets))
	for key, net := range nets {
		if net < 0 {
			net = -net
		}
		points = append(points, model.DataPoint{
			Date:  time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC),
			Value: net,
		})
	}
	return points
}
