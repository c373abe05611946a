package forecast

import (
	"math"
	"time"

	"github.com/finwatch/insights/internal/model"
	"github.com/finwatch/insights/internal/stats"
)

// ModelTypeLinearRegression names the quadratic least-squares model.
const ModelTypeLinearRegression = "linear_regression"

// LinearRegressionModel fits a quadratic trend by ordinary least squares
// over the time index and forecasts with a widening confidence band.
type LinearRegressionModel struct {
	trained      bool
	coefficients []float64 // b0, b1, b2
	values       []float64
	lastDate     time.Time
	rSquared     float64
	mae          float64
	rmse         float64
}

// NewLinearRegressionModel creates an untrained model.
func NewLinearRegressionModel() *LinearRegressionModel {
	return &LinearRegressionModel{}
}

// Train fits the quadratic via the normal equations: beta = (XᵗX)⁻¹ Xᵗy
// with design matrix rows [1, x, x²] for x = 0..n-1.
func (m *LinearRegressionModel) Train(data *model.TimeSeriesData) error {
	if data == nil || data.Len() < 2 {
		n := 0
		if data != nil {
			n = data.Len()
		}
		return NewError(ErrInsufficientData, "training requires at least 2 data points, got %d", n)
	}

	n := data.Len()
	design := make([][]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i)
		design[i] = []float64{1, x, x * x}
	}

	xt := transpose(design)
	xtx := multiply(xt, design)
	xty := multiplyVector(xt, data.Values)

	inv, err := invertMatrix(xtx)
	if err != nil {
		return err
	}
	m.coefficients = multiplyVector(inv, xty)

	// Fit metrics against the training data.
	fitted := make([]float64, n)
	for i := 0; i < n; i++ {
		fitted[i] = m.evaluate(float64(i))
	}
	// Lengths match by construction; the metric errors cannot fire here.
	m.rSquared, _ = stats.RSquared(data.Values, fitted)
	m.mae, _ = stats.MAE(data.Values, fitted)
	m.rmse, _ = stats.RMSE(data.Values, fitted)

	m.values = append([]float64(nil), data.Values...)
	m.lastDate = data.Dates[n-1]
	m.trained = true
	return nil
}

// evaluate computes the fitted quadratic at x.
func (m *LinearRegressionModel) evaluate(x float64) float64 {
	return m.coefficients[0] + m.coefficients[1]*x + m.coefficients[2]*x*x
}

// Predict forecasts the next `periods` steps. Each amount is the quadratic
// evaluated past the training range, clamped to >= 0; the uncertainty band
// is the training data's 95% confidence half-width scaled by sqrt(1+i/n),
// so it widens monotonically with the horizon. Dates advance one calendar
// month per step from the last training date.
func (m *LinearRegressionModel) Predict(periods int) ([]*model.PredictionResult, error) {
	if !m.trained {
		return nil, NewError(ErrUntrainedModel, "predict called before train")
	}
	if periods <= 0 {
		return nil, nil
	}

	n := len(m.values)
	ciLower, ciUpper := stats.ConfidenceInterval(m.values, 95)
	halfWidth := (ciUpper - ciLower) / 2

	results := make([]*model.PredictionResult, 0, periods)
	for i := 1; i <= periods; i++ {
		x := float64(n + i - 1)
		amount := m.evaluate(x)
		if amount < 0 {
			amount = 0
		}

		margin := halfWidth * math.Sqrt(1+float64(i)/float64(n))
		lower := amount - margin
		if lower < 0 {
			lower = 0
		}

		results = append(results, &model.PredictionResult{
			Date:       m.lastDate.AddDate(0, i, 0),
			Amount:     amount,
			LowerBound: lower,
			UpperBound: amount + margin,
		})
	}
	return results, nil
}

// Confidence returns the fit R² clamped to [0, 1]. An untrained model
// reports 0.
func (m *LinearRegressionModel) Confidence() float64 {
	if !m.trained {
		return 0
	}
	if m.rSquared < 0 {
		return 0
	}
	if m.rSquared > 1 {
		return 1
	}
	return m.rSquared
}

// Metadata returns the trained parameters and fit metrics, or nil before
// training.
func (m *LinearRegressionModel) Metadata() *model.ModelMetadata {
	if !m.trained {
		return nil
	}
	return &model.ModelMetadata{
		Name:         ModelTypeLinearRegression,
		Coefficients: append([]float64(nil), m.coefficients[1:]...),
		Intercept:    m.coefficients[0],
		SampleCount:  len(m.values),
		RSquared:     m.rSquared,
		MAE:          m.mae,
		RMSE:         m.rmse,
	}
}
