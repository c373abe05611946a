package model

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a single dated money movement for a user.
type Transaction struct {
	ID          string
	UserID      string
	Type        TransactionType
	Amount      float64
	Date        time.Time
	CategoryID  string
	Description string
}

// Goal is a savings target with a deadline.
type Goal struct {
	ID            string
	UserID        string
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	TargetDate    time.Time
	CreatedAt     time.Time
	IsActive      bool
}

// Category labels transactions; only the name is needed to enrich alert messages.
type Category struct {
	ID   string
	Name string
}

// AlertType identifies which rule family produced an alert.
type AlertType string

const (
	AlertTypeOverspending   AlertType = "overspending"
	AlertTypeGoalProgress   AlertType = "goal_progress"
	AlertTypeUnusualPattern AlertType = "unusual_pattern"
	AlertTypeRecommendation AlertType = "recommendation"
)

// AlertSeverity orders alerts by urgency.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is a generated finding about a user's finances. Alerts are immutable
// after creation except for the read flag, which the store owns.
type Alert struct {
	ID          string
	UserID      string
	Type        AlertType
	Severity    AlertSeverity
	Title       string
	Message     string
	RelatedData map[string]string
	IsRead      bool
	CreatedAt   time.Time
}

// DataPoint is one dated observation. Values must be finite and non-negative;
// cleaning drops anything else.
type DataPoint struct {
	Date  time.Time
	Value float64
}

// TimeSeriesData holds parallel date/value slices in ascending date order.
type TimeSeriesData struct {
	Dates  []time.Time
	Values []float64
}

// Len returns the number of observations in the series.
func (t *TimeSeriesData) Len() int {
	return len(t.Values)
}

// PredictionResult is one forecast step with its uncertainty band.
// Invariant: LowerBound <= Amount <= UpperBound and LowerBound >= 0.
type PredictionResult struct {
	Date       time.Time
	Amount     float64
	LowerBound float64
	UpperBound float64
}

// ModelMetadata describes a completed training run. It is regenerated on
// every retrain and never mutated afterwards.
type ModelMetadata struct {
	Name         string
	Coefficients []float64
	Intercept    float64
	SampleCount  int
	RSquared     float64
	MAE          float64
	RMSE         float64
}

// PredictionDocument is the persisted audit record of a forecast run.
type PredictionDocument struct {
	ID          string
	UserID      string
	ModelType   string
	Horizon     int
	Predictions []*PredictionResult
	Confidence  float64
	Metadata    *ModelMetadata
	GeneratedAt time.Time
	ExpiresAt   time.Time
}

// Insights is a quick statistical summary of a user's recent activity,
// independent of the forecasting pipeline.
type Insights struct {
	UserID             string
	HasEnoughData      bool
	TotalIncome        float64
	TotalExpense       float64
	AvgIncome          float64
	AvgExpense         float64
	Net                float64
	Deficit            bool
	HighExpenseRatio   bool
	ExpenseHeavyRecent bool
	Messages           []string
	Confidence         float64
	GeneratedAt        time.Time
}
