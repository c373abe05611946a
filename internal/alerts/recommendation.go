package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/finwatch/insights/internal/model"
	"github.com/finwatch/insights/internal/store"
)

const (
	// minRecommendationTransactions gates the recommendation scan.
	minRecommendationTransactions = 20
	// recommendationWindowDays is the lookback window.
	recommendationWindowDays = 60
	// lowSavingsRate triggers the savings recommendation.
	lowSavingsRate = 0.10
	// targetSavingsRate is the standard target quoted to the user.
	targetSavingsRate = 0.20
	// categoryDominance flags a single category eating more than 40% of
	// total expenses.
	categoryDominance = 0.40
)

// RecommendationChecker looks at the last 60 days and suggests savings
// or budget adjustments. All of its alerts are informational.
type RecommendationChecker struct {
	store store.Store
	now   func() time.Time
}

func NewRecommendationChecker(st store.Store) *RecommendationChecker {
	return &RecommendationChecker{store: st, now: time.Now}
}

func (c *RecommendationChecker) Type() model.AlertType {
	return model.AlertTypeRecommendation
}

func (c *RecommendationChecker) Check(ctx context.Context, userID string) error {
	now := c.now()
	start := now.AddDate(0, 0, -recommendationWindowDays)

	transactions, err := c.store.ListTransactions(ctx, userID, &start, &now)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	if len(transactions) < minRecommendationTransactions {
		return nil
	}

	var income, expense float64
	expenseByCategory := make(map[string]float64)
	for _, txn := range transactions {
		if txn.Type == model.TransactionTypeIncome {
			income += txn.Amount
		} else {
			expense += txn.Amount
			if txn.CategoryID != "" {
				expenseByCategory[txn.CategoryID] += txn.Amount
			}
		}
	}

	if err := c.checkSavingsRate(ctx, userID, income, expense); err != nil {
		return err
	}
	return c.checkCategoryDominance(ctx, userID, expense, expenseByCategory)
}

func (c *RecommendationChecker) checkSavingsRate(ctx context.Context, userID string, income, expense float64) error {
	if income <= 0 {
		return nil
	}
	rate := (income - expense) / income
	if rate >= lowSavingsRate {
		return nil
	}

	alert := newAlert(userID, model.AlertTypeRecommendation, model.SeverityInfo,
		"Low savings rate",
		fmt.Sprintf("You saved %.1f%% of your income over the last %d days. Aiming for %.0f%% builds a healthy buffer.",
			rate*100, recommendationWindowDays, targetSavingsRate*100),
		map[string]string{
			"savings_rate_percent": fmt.Sprintf("%.1f", rate*100),
			"target_percent":       fmt.Sprintf("%.0f", targetSavingsRate*100),
		})
	if err := c.store.CreateAlert(ctx, alert); err != nil {
		return fmt.Errorf("failed to create savings alert: %w", err)
	}
	return nil
}

func (c *RecommendationChecker) checkCategoryDominance(ctx context.Context, userID string, totalExpense float64, byCategory map[string]float64) error {
	if totalExpense <= 0 {
		return nil
	}

	for categoryID, amount := range byCategory {
		share := amount / totalExpense
		if share <= categoryDominance {
			continue
		}

		name := categoryID
		if category, err := c.store.GetCategory(ctx, categoryID); err == nil {
			name = category.Name
		}

		alert := newAlert(userID, model.AlertTypeRecommendation, model.SeverityInfo,
			"One category dominates your spending",
			fmt.Sprintf("%s accounts for %.0f%% of your expenses over the last %d days. Reviewing it may free up the most room in your budget.",
				name, share*100, recommendationWindowDays),
			map[string]string{
				"category_id":   categoryID,
				"share_percent": fmt.Sprintf("%.0f", share*100),
			})
		if err := c.store.CreateAlert(ctx, alert); err != nil {
			return fmt.Errorf("failed to create category dominance alert: %w", err)
		}
	}
	return nil
}
