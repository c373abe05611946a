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

var checkTime = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

// expenses builds count expense transactions of the given amount, one
// per day starting daysAgo days before checkTime.
func expenses(userID string, count int, amount float64, daysAgo int, categoryID string) []*model.Transaction {
	txns := make([]*model.Transaction, count)
	for i := range txns {
		txns[i] = &model.Transaction{
			UserID:     userID,
			Type:       model.TransactionTypeExpense,
			Amount:     amount,
			Date:       checkTime.AddDate(0, 0, -(daysAgo + i)),
			CategoryID: categoryID,
		}
	}
	return txns
}

func TestOverspendingCriticalIncrease(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)

	// Recent window spends 1500 (50/day), previous 600 (20/day): a 150%
	// increase, well past the critical threshold.
	txns := append(
		expenses("user-1", 10, 150, 1, ""),
		expenses("user-1", 10, 60, 35, "")...,
	)

	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		Return(txns, nil)

	var created *model.Alert
	mockStore.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *model.Alert) error {
			created = alert
			return nil
		})

	checker := NewOverspendingChecker(mockStore)
	checker.now = func() time.Time { return checkTime }

	require.NoError(t, checker.Check(context.Background(), "user-1"))
	require.NotNil(t, created)
	assert.Equal(t, model.AlertTypeOverspending, created.Type)
	assert.Equal(t, model.SeverityCritical, created.Severity)
	assert.Contains(t, created.Message, "150.0")
	assert.Equal(t, "150.0", created.RelatedData["increase_percent"])
}

func TestOverspendingModerateIncreaseIsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)

	// 1300 vs 1000: a 30% increase. Above the 20% trigger but below the
	// 50% critical escalation.
	txns := append(
		expenses("user-1", 10, 130, 1, ""),
		expenses("user-1", 10, 100, 35, "")...,
	)

	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		Return(txns, nil)

	var created *model.Alert
	mockStore.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *model.Alert) error {
			created = alert
			return nil
		})

	checker := NewOverspendingChecker(mockStore)
	checker.now = func() time.Time { return checkTime }

	require.NoError(t, checker.Check(context.Background(), "user-1"))
	require.NotNil(t, created)
	assert.Equal(t, model.SeverityWarning, created.Severity)
}

func TestOverspendingStableSpendingNoAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)

	// 1000 vs 950 is only a ~5.3% increase; no alert is created.
	txns := append(
		expenses("user-1", 10, 100, 1, ""),
		expenses("user-1", 10, 95, 35, "")...,
	)

	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		Return(txns, nil)

	checker := NewOverspendingChecker(mockStore)
	checker.now = func() time.Time { return checkTime }

	require.NoError(t, checker.Check(context.Background(), "user-1"))
}

func TestOverspendingSkipsSparseWindows(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)

	// Only 3 expenses per window; below the minimum of 5, so no
	// comparison happens even though the increase is huge.
	txns := append(
		expenses("user-1", 3, 500, 1, ""),
		expenses("user-1", 3, 10, 35, "")...,
	)

	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		Return(txns, nil)

	checker := NewOverspendingChecker(mockStore)
	checker.now = func() time.Time { return checkTime }

	require.NoError(t, checker.Check(context.Background(), "user-1"))
}

func TestOverspendingCategoryOutlier(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)

	// Nine routine grocery runs of 50 and one of 500. The outlier sits
	// above mean+2·stddev for the category.
	txns := append(
		expenses("user-1", 9, 50, 1, "cat-groceries"),
		expenses("user-1", 1, 500, 15, "cat-groceries")...,
	)

	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		Return(txns, nil)
	mockStore.EXPECT().
		GetCategory(gomock.Any(), "cat-groceries").
		Return(&model.Category{ID: "cat-groceries", Name: "Groceries"}, nil)

	var created *model.Alert
	mockStore.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *model.Alert) error {
			created = alert
			return nil
		})

	checker := NewOverspendingChecker(mockStore)
	checker.now = func() time.Time { return checkTime }

	require.NoError(t, checker.Check(context.Background(), "user-1"))
	require.NotNil(t, created)
	assert.Equal(t, model.AlertTypeUnusualPattern, created.Type)
	assert.Equal(t, model.SeverityWarning, created.Severity)
	assert.Contains(t, created.Title, "Groceries")
	assert.Equal(t, "500.00", created.RelatedData["amount"])
}
