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

func recommendationChecker(t *testing.T) (*RecommendationChecker, *store.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)
	checker := NewRecommendationChecker(mockStore)
	checker.now = func() time.Time { return checkTime }
	return checker, mockStore
}

func incomes(userID string, count int, amount float64, daysAgo int) []*model.Transaction {
	txns := make([]*model.Transaction, count)
	for i := range txns {
		txns[i] = &model.Transaction{
			UserID: userID,
			Type:   model.TransactionTypeIncome,
			Amount: amount,
			Date:   checkTime.AddDate(0, 0, -(daysAgo + i)),
		}
	}
	return txns
}

func TestRecommendationLowSavingsRate(t *testing.T) {
	checker, mockStore := recommendationChecker(t)

	// Income 4000, expenses 3800: a 5% savings rate. Expenses spread
	// across three categories so none dominates.
	txns := incomes("user-1", 4, 1000, 1)
	txns = append(txns, expenses("user-1", 6, 200, 5, "cat-a")...)
	txns = append(txns, expenses("user-1", 6, 200, 12, "cat-b")...)
	txns = append(txns, expenses("user-1", 5, 280, 20, "cat-c")...)

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
	assert.Equal(t, model.AlertTypeRecommendation, created.Type)
	assert.Equal(t, model.SeverityInfo, created.Severity)
	assert.Equal(t, "5.0", created.RelatedData["savings_rate_percent"])
	assert.Contains(t, created.Message, "20%")
}

func TestRecommendationCategoryDominance(t *testing.T) {
	checker, mockStore := recommendationChecker(t)

	// Income 10000 against 9000 of expenses: exactly a 10% savings rate,
	// so no savings alert. Rent eats 5000 of the 9000 (56%).
	txns := incomes("user-1", 2, 5000, 1)
	txns = append(txns, expenses("user-1", 10, 500, 5, "cat-rent")...)
	txns = append(txns, expenses("user-1", 4, 500, 20, "cat-x")...)
	txns = append(txns, expenses("user-1", 4, 500, 30, "cat-y")...)

	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		Return(txns, nil)
	mockStore.EXPECT().
		GetCategory(gomock.Any(), "cat-rent").
		Return(&model.Category{ID: "cat-rent", Name: "Rent"}, nil)

	var created *model.Alert
	mockStore.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *model.Alert) error {
			created = alert
			return nil
		})

	require.NoError(t, checker.Check(context.Background(), "user-1"))
	require.NotNil(t, created)
	assert.Equal(t, model.AlertTypeRecommendation, created.Type)
	assert.Contains(t, created.Message, "Rent")
	assert.Equal(t, "56", created.RelatedData["share_percent"])
}

func TestRecommendationTooFewTransactions(t *testing.T) {
	checker, mockStore := recommendationChecker(t)

	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		Return(expenses("user-1", 10, 100, 1, "cat-a"), nil)

	require.NoError(t, checker.Check(context.Background(), "user-1"))
}
