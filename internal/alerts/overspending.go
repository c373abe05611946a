package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/finwatch/insights/internal/model"
	"github.com/finwatch/insights/internal/stats"
	"github.com/finwatch/insights/internal/store"
)

const (
	// spendingWindowDays is the comparison window on each side.
	spendingWindowDays = 30
	// minExpensesPerWindow gates the average comparison.
	minExpensesPerWindow = 5
	// overspendingRatio triggers when recent daily spend exceeds the
	// previous window's by more than 20%.
	overspendingRatio = 1.2
	// criticalIncreasePercent escalates the alert from warning to critical.
	criticalIncreasePercent = 50
	// minCategoryExpenses gates the per-category outlier scan.
	minCategoryExpenses = 3
)

// OverspendingChecker compares the last 30 days of spending against the
// 30 days before that, and additionally scans each spending category in
// the recent window for individual outlier expenses.
type OverspendingChecker struct {
	store store.Store
	now   func() time.Time
}

func NewOverspendingChecker(st store.Store) *OverspendingChecker {
	return &OverspendingChecker{store: st, now: time.Now}
}

func (c *OverspendingChecker) Type() model.AlertType {
	return model.AlertTypeOverspending
}

func (c *OverspendingChecker) Check(ctx context.Context, userID string) error {
	now := c.now()
	recentStart := now.AddDate(0, 0, -spendingWindowDays)
	previousStart := now.AddDate(0, 0, -2*spendingWindowDays)

	transactions, err := c.store.ListTransactions(ctx, userID, &previousStart, &now)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	var recent, previous []*model.Transaction
	for _, txn := range transactions {
		if txn.Type != model.TransactionTypeExpense {
			continue
		}
		if txn.Date.Before(recentStart) {
			previous = append(previous, txn)
		} else {
			recent = append(recent, txn)
		}
	}

	if len(recent) >= minExpensesPerWindow && len(previous) >= minExpensesPerWindow {
		if err := c.compareWindows(ctx, userID, recent, previous); err != nil {
			return err
		}
	}

	return c.checkCategoryOutliers(ctx, userID, recent)
}

// compareWindows emits an overspending alert when the recent daily
// average exceeds the previous one by more than the threshold ratio.
func (c *OverspendingChecker) compareWindows(ctx context.Context, userID string, recent, previous []*model.Transaction) error {
	recentAvg := sumAmounts(recent) / spendingWindowDays
	previousAvg := sumAmounts(previous) / spendingWindowDays
	if previousAvg <= 0 || recentAvg <= previousAvg*overspendingRatio {
		return nil
	}

	increase := (recentAvg - previousAvg) / previousAvg * 100
	severity := model.SeverityWarning
	if increase > criticalIncreasePercent {
		severity = model.SeverityCritical
	}

	alert := newAlert(userID, model.AlertTypeOverspending, severity,
		"Spending increase detected",
		fmt.Sprintf("Your daily spending rose by %.1f%% over the last %d days (%.2f/day vs %.2f/day before).",
			increase, spendingWindowDays, recentAvg, previousAvg),
		map[string]string{
			"recent_avg_per_day":   fmt.Sprintf("%.2f", recentAvg),
			"previous_avg_per_day": fmt.Sprintf("%.2f", previousAvg),
			"increase_percent":     fmt.Sprintf("%.1f", increase),
		})
	if err := c.store.CreateAlert(ctx, alert); err != nil {
		return fmt.Errorf("failed to create overspending alert: %w", err)
	}
	return nil
}

// checkCategoryOutliers flags categories in the recent window where any
// single expense exceeds that category's mean by more than two standard
// deviations. One alert per flagged category.
func (c *OverspendingChecker) checkCategoryOutliers(ctx context.Context, userID string, recent []*model.Transaction) error {
	byCategory := make(map[string][]float64)
	for _, txn := range recent {
		if txn.CategoryID == "" {
			continue
		}
		byCategory[txn.CategoryID] = append(byCategory[txn.CategoryID], txn.Amount)
	}

	for categoryID, amounts := range byCategory {
		if len(amounts) < minCategoryExpenses {
			continue
		}
		threshold := stats.Mean(amounts) + 2*stats.StdDev(amounts)

		var largest float64
		for _, amount := range amounts {
			if amount > threshold && amount > largest {
				largest = amount
			}
		}
		if largest == 0 {
			continue
		}

		name := c.categoryName(ctx, categoryID)
		alert := newAlert(userID, model.AlertTypeUnusualPattern, model.SeverityWarning,
			"Unusual expense in "+name,
			fmt.Sprintf("An expense of %.2f in %s is well above your usual spending in that category (threshold %.2f).",
				largest, name, threshold),
			map[string]string{
				"category_id": categoryID,
				"amount":      fmt.Sprintf("%.2f", largest),
				"threshold":   fmt.Sprintf("%.2f", threshold),
			})
		if err := c.store.CreateAlert(ctx, alert); err != nil {
			return fmt.Errorf("failed to create category outlier alert: %w", err)
		}
	}
	return nil
}

// categoryName resolves a display name, falling back to the raw ID when
// the category lookup fails.
func (c *OverspendingChecker) categoryName(ctx context.Context, categoryID string) string {
	category, err := c.store.GetCategory(ctx, categoryID)
	if err != nil {
		return categoryID
	}
	return category.Name
}

func sumAmounts(transactions []*model.Transaction) float64 {
	var total float64
	for _, txn := range transactions {
		total += txn.Amount
	}
	return total
}
