// Package alerts implements the rule-based alert checkers and the
// orchestrator that fans them out. Each checker inspects a window of the
// user's transactions or goals and persists an alert per rule violation.
package alerts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finwatch/insights/internal/model"
)

// Checker is one alert rule family. Check inspects the user's data and
// persists any alerts it finds; it returns an error only when the
// inspection itself fails, not when no rule fires.
type Checker interface {
	Type() model.AlertType
	Check(ctx context.Context, userID string) error
}

// newAlert builds an unread alert stamped with a fresh ID.
func newAlert(userID string, alertType model.AlertType, severity model.AlertSeverity, title, message string, related map[string]string) *model.Alert {
	return &model.Alert{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        alertType,
		Severity:    severity,
		Title:       title,
		Message:     message,
		RelatedData: related,
		CreatedAt:   time.Now(),
	}
}
