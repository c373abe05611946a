package alerts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finwatch/insights/internal/model"
	"github.com/finwatch/insights/internal/store"
)

func TestRunAllChecksIsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)

	// The goal checker's query fails; every transaction-based checker
	// still runs. Ten same-weekday-heavy transactions make the unusual
	// pattern checker persist its alert despite the failure elsewhere.
	var txns []*model.Transaction
	for _, daysAgo := range []int{1, 8, 15, 22, 29, 2, 3, 4, 5, 6} {
		txns = append(txns, &model.Transaction{
			UserID: "user-1",
			Type:   model.TransactionTypeIncome,
			Amount: 100,
			Date:   checkTime.AddDate(0, 0, -daysAgo),
		})
	}

	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		Return(txns, nil).
		AnyTimes()
	mockStore.EXPECT().
		ListActiveGoals(gomock.Any(), "user-1").
		Return(nil, errors.New("firestore unavailable"))
	mockStore.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *model.Alert) error {
			assert.Equal(t, model.AlertTypeUnusualPattern, alert.Type)
			return nil
		})

	orchestrator := NewOrchestrator(mockStore)
	// Pin the checkers' clocks so the fixture dates stay in-window.
	for _, checker := range orchestrator.checkers {
		switch c := checker.(type) {
		case *OverspendingChecker:
			c.now = func() time.Time { return checkTime }
		case *GoalProgressChecker:
			c.now = func() time.Time { return checkTime }
		case *UnusualPatternChecker:
			c.now = func() time.Time { return checkTime }
		case *RecommendationChecker:
			c.now = func() time.Time { return checkTime }
		}
	}

	warnings := orchestrator.RunAllChecks(context.Background(), "user-1")
	require.Len(t, warnings, 1)
	assert.Equal(t, model.AlertTypeGoalProgress, warnings[0].Type)
	assert.Contains(t, warnings[0].Err.Error(), "firestore unavailable")
}

func TestRunAllChecksAllHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)

	// Nothing to report anywhere: no warnings and no alerts.
	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	mockStore.EXPECT().
		ListActiveGoals(gomock.Any(), "user-1").
		Return(nil, nil)

	orchestrator := NewOrchestrator(mockStore)
	warnings := orchestrator.RunAllChecks(context.Background(), "user-1")
	assert.Empty(t, warnings)
}

func TestRunSpecificCheckUnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	orchestrator := NewOrchestrator(store.NewMockStore(ctrl))

	err := orchestrator.RunSpecificCheck(context.Background(), "user-1", model.AlertType("bogus"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no checker for type")
}

func TestRunSpecificCheckPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)

	mockStore.EXPECT().
		ListActiveGoals(gomock.Any(), "user-1").
		Return(nil, errors.New("firestore unavailable"))

	orchestrator := NewOrchestrator(mockStore)
	err := orchestrator.RunSpecificCheck(context.Background(), "user-1", model.AlertTypeGoalProgress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "firestore unavailable")
}

func TestAvailableTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	orchestrator := NewOrchestrator(store.NewMockStore(ctrl))

	assert.Equal(t, []model.AlertType{
		model.AlertTypeGoalProgress,
		model.AlertTypeOverspending,
		model.AlertTypeRecommendation,
		model.AlertTypeUnusualPattern,
	}, orchestrator.AvailableTypes())
}
