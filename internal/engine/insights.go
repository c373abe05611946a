package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/finwatch/insights/internal/model"
)

const (
	// minInsightTransactions gates the full insight computation.
	minInsightTransactions = 10
	// highExpenseRatio flags users spending most of what they earn.
	highExpenseRatio = 0.8
	// recentWindow and recentExpenseShare flag expense-heavy recent
	// activity: more than 80% of the last 10 transactions being expenses.
	recentWindow       = 10
	recentExpenseShare = 0.8
)

// GenerateInsights summarizes a user's overall financial position. It is
// independent of the forecast pipeline and its cache. With fewer than 10
// transactions it returns a low-confidence placeholder instead of failing.
func (e *PredictionEngine) GenerateInsights(ctx context.Context, userID string) (*model.Insights, error) {
	transactions, err := e.store.ListTransactions(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	insights := &model.Insights{
		UserID:      userID,
		GeneratedAt: e.now(),
	}

	if len(transactions) < minInsightTransactions {
		insights.HasEnoughData = false
		insights.Confidence = 0.1
		insights.Messages = []string{
			"Not enough transaction history yet to generate meaningful insights. Keep tracking your income and expenses.",
		}
		return insights, nil
	}

	var totalIncome, totalExpense float64
	var incomeCount, expenseCount int
	for _, txn := range transactions {
		if txn.Type == model.TransactionTypeIncome {
			totalIncome += txn.Amount
			incomeCount++
		} else {
			totalExpense += txn.Amount
			expenseCount++
		}
	}

	insights.HasEnoughData = true
	insights.TotalIncome = totalIncome
	insights.TotalExpense = totalExpense
	insights.Net = totalIncome - totalExpense
	if incomeCount > 0 {
		insights.AvgIncome = totalIncome / float64(incomeCount)
	}
	if expenseCount > 0 {
		insights.AvgExpense = totalExpense / float64(expenseCount)
	}
	insights.Confidence = math.Min(1, float64(len(transactions))/100)

	if insights.Net < 0 {
		insights.Deficit = true
		insights.Messages = append(insights.Messages,
			fmt.Sprintf("You are running a deficit: expenses exceed income by %.2f.", -insights.Net))
	} else {
		insights.Messages = append(insights.Messages,
			fmt.Sprintf("You are running a surplus of %.2f.", insights.Net))
	}

	if totalIncome > 0 && totalExpense/totalIncome > highExpenseRatio {
		insights.HighExpenseRatio = true
		insights.Messages = append(insights.Messages,
			fmt.Sprintf("Your expenses are %.0f%% of your income; consider trimming recurring costs.",
				totalExpense/totalIncome*100))
	}

	// Transactions are sorted by date ascending; the tail is the most
	// recent activity.
	recent := transactions
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}
	recentExpenses := 0
	for _, txn := range recent {
		if txn.Type == model.TransactionTypeExpense {
			recentExpenses++
		}
	}
	if float64(recentExpenses)/float64(len(recent)) > recentExpenseShare {
		insights.ExpenseHeavyRecent = true
		insights.Messages = append(insights.Messages,
			"Most of your recent activity is spending; no recent income was recorded.")
	}

	return insights, nil
}
