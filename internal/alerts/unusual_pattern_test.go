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

func patternChecker(t *testing.T) (*UnusualPatternChecker, *store.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)
	checker := NewUnusualPatternChecker(mockStore)
	checker.now = func() time.Time { return checkTime }
	return checker, mockStore
}

func TestUnusualPatternTooFewTransactions(t *testing.T) {
	checker, mockStore := patternChecker(t)

	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		Return(expenses("user-1", 5, 100, 1, ""), nil)

	require.NoError(t, checker.Check(context.Background(), "user-1"))
}

func TestUnusualPatternOutlierAmounts(t *testing.T) {
	checker, mockStore := patternChecker(t)

	// Eleven routine transactions of 50 and one of 500, spread over
	// consecutive days so no weekday dominates.
	txns := append(
		expenses("user-1", 11, 50, 1, ""),
		expenses("user-1", 1, 500, 12, "")...,
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

	require.NoError(t, checker.Check(context.Background(), "user-1"))
	require.NotNil(t, created)
	assert.Equal(t, model.AlertTypeUnusualPattern, created.Type)
	assert.Equal(t, model.SeverityInfo, created.Severity)
	assert.Equal(t, "1", created.RelatedData["outlier_count"])
	assert.Equal(t, "500.00", created.RelatedData["largest_amount"])
}

func TestUnusualPatternWeekdayConcentration(t *testing.T) {
	checker, mockStore := patternChecker(t)

	// Five transactions land on the same weekday (half of all activity),
	// the other five spread across distinct weekdays. Equal amounts keep
	// the outlier scan quiet.
	var txns []*model.Transaction
	for _, daysAgo := range []int{1, 8, 15, 22, 29, 2, 3, 4, 5, 6} {
		txns = append(txns, &model.Transaction{
			UserID: "user-1",
			Type:   model.TransactionTypeExpense,
			Amount: 100,
			Date:   checkTime.AddDate(0, 0, -daysAgo),
		})
	}
	topDay := checkTime.AddDate(0, 0, -1).Weekday().String()

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

	require.NoError(t, checker.Check(context.Background(), "user-1"))
	require.NotNil(t, created)
	assert.Equal(t, model.SeverityInfo, created.Severity)
	assert.Contains(t, created.Title, topDay)
	assert.Equal(t, "50", created.RelatedData["share_percent"])
}
