// Package store defines the persistence boundary the analysis core calls
// through, plus its in-memory and Firestore implementations.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/finwatch/insights/internal/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Store defines every database operation the analysis core uses. The core
// only reads transactions, goals and categories; it owns writes for alerts
// and prediction documents.
type Store interface {
	// Transaction operations
	CreateTransaction(ctx context.Context, txn *model.Transaction) error
	// ListTransactions returns a user's transactions sorted by date
	// ascending. Nil bounds are open-ended; both nil lists everything.
	ListTransactions(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*model.Transaction, error)

	// Goal operations
	CreateGoal(ctx context.Context, goal *model.Goal) error
	ListActiveGoals(ctx context.Context, userID string) ([]*model.Goal, error)

	// Category operations
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategory(ctx context.Context, categoryID string) (*model.Category, error)

	// Alert operations
	CreateAlert(ctx context.Context, alert *model.Alert) error
	ListAlerts(ctx context.Context, userID string, unreadOnly bool) ([]*model.Alert, error)
	MarkAlertRead(ctx context.Context, alertID string) error
	MarkAllAlertsRead(ctx context.Context, userID string) error
	CountUnreadAlerts(ctx context.Context, userID string) (int, error)

	// Prediction operations
	SavePrediction(ctx context.Context, doc *model.PredictionDocument) error
	ListPredictions(ctx context.Context, userID string) ([]*model.PredictionDocument, error)
}
