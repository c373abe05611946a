package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finwatch/insights/internal/model"
	"github.com/finwatch/insights/internal/store"
)

func goalChecker(t *testing.T) (*GoalProgressChecker, *store.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)
	checker := NewGoalProgressChecker(mockStore)
	checker.now = func() time.Time { return checkTime }
	return checker, mockStore
}

func TestGoalProgressExpired(t *testing.T) {
	checker, mockStore := goalChecker(t)

	goal := &model.Goal{
		ID:            "goal-1",
		UserID:        "user-1",
		Name:          "Emergency fund",
		TargetAmount:  10000,
		CurrentAmount: 5000,
		CreatedAt:     checkTime.AddDate(0, -6, 0),
		TargetDate:    checkTime.AddDate(0, 0, -10),
		IsActive:      true,
	}

	mockStore.EXPECT().
		ListActiveGoals(gomock.Any(), "user-1").
		Return([]*model.Goal{goal}, nil)

	var created *model.Alert
	mockStore.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *model.Alert) error {
			created = alert
			return nil
		})

	require.NoError(t, checker.Check(context.Background(), "user-1"))
	require.NotNil(t, created)
	assert.Equal(t, model.AlertTypeGoalProgress, created.Type)
	assert.Equal(t, model.SeverityCritical, created.Severity)
	assert.Contains(t, created.Message, "Emergency fund")
	assert.Equal(t, "50.0", created.RelatedData["progress_percent"])
}

func TestGoalProgressBehindSchedule(t *testing.T) {
	checker, mockStore := goalChecker(t)

	// Halfway through the timeline but only 20% saved; 100 days remain,
	// so the nudge stays informational.
	relaxed := &model.Goal{
		ID:            "goal-1",
		UserID:        "user-1",
		Name:          "Vacation",
		TargetAmount:  5000,
		CurrentAmount: 1000,
		CreatedAt:     checkTime.AddDate(0, 0, -100),
		TargetDate:    checkTime.AddDate(0, 0, 100),
		IsActive:      true,
	}
	// Same lag but only 10 days left: escalates to warning.
	urgent := &model.Goal{
		ID:            "goal-2",
		UserID:        "user-1",
		Name:          "New laptop",
		TargetAmount:  5000,
		CurrentAmount: 1000,
		CreatedAt:     checkTime.AddDate(0, 0, -190),
		TargetDate:    checkTime.AddDate(0, 0, 10),
		IsActive:      true,
	}

	mockStore.EXPECT().
		ListActiveGoals(gomock.Any(), "user-1").
		Return([]*model.Goal{relaxed, urgent}, nil)

	var created []*model.Alert
	mockStore.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *model.Alert) error {
			created = append(created, alert)
			return nil
		}).
		Times(2)

	require.NoError(t, checker.Check(context.Background(), "user-1"))
	require.Len(t, created, 2)
	assert.Equal(t, model.SeverityInfo, created[0].Severity)
	assert.Contains(t, created[0].Title, "behind schedule")
	assert.Equal(t, model.SeverityWarning, created[1].Severity)
}

func TestGoalProgressNearCompletion(t *testing.T) {
	checker, mockStore := goalChecker(t)

	goal := &model.Goal{
		ID:            "goal-1",
		UserID:        "user-1",
		Name:          "Bike",
		TargetAmount:  1000,
		CurrentAmount: 950,
		CreatedAt:     checkTime.AddDate(0, 0, -10),
		TargetDate:    checkTime.AddDate(0, 0, 90),
		IsActive:      true,
	}

	mockStore.EXPECT().
		ListActiveGoals(gomock.Any(), "user-1").
		Return([]*model.Goal{goal}, nil)

	var created *model.Alert
	mockStore.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *model.Alert) error {
			created = alert
			return nil
		})

	require.NoError(t, checker.Check(context.Background(), "user-1"))
	require.NotNil(t, created)
	assert.Equal(t, model.SeverityInfo, created.Severity)
	assert.Contains(t, created.Title, "almost complete")
}

func TestGoalProgressOnTrackNoAlert(t *testing.T) {
	checker, mockStore := goalChecker(t)

	// 60% saved at the halfway mark: ahead of the 0.7× pace floor and
	// not yet in the home stretch.
	goal := &model.Goal{
		ID:            "goal-1",
		UserID:        "user-1",
		Name:          "Car",
		TargetAmount:  10000,
		CurrentAmount: 6000,
		CreatedAt:     checkTime.AddDate(0, 0, -100),
		TargetDate:    checkTime.AddDate(0, 0, 100),
		IsActive:      true,
	}

	mockStore.EXPECT().
		ListActiveGoals(gomock.Any(), "user-1").
		Return([]*model.Goal{goal}, nil)

	require.NoError(t, checker.Check(context.Background(), "user-1"))
}
