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
	// minPatternTransactions gates the whole pattern scan.
	minPatternTransactions = 10
	// patternWindowDays is the lookback window.
	patternWindowDays = 30
	// weekdayConcentration flags a single weekday carrying more than 30%
	// of all transactions.
	weekdayConcentration = 0.3
)

// UnusualPatternChecker scans the last 30 days of activity for outlier
// amounts and for an unusually high concentration of activity on a
// single weekday.
type UnusualPatternChecker struct {
	store store.Store
	now   func() time.Time
}

func NewUnusualPatternChecker(st store.Store) *UnusualPatternChecker {
	return &UnusualPatternChecker{store: st, now: time.Now}
}

func (c *UnusualPatternChecker) Type() model.AlertType {
	return model.AlertTypeUnusualPattern
}

func (c *UnusualPatternChecker) Check(ctx context.Context, userID string) error {
	now := c.now()
	start := now.AddDate(0, 0, -patternWindowDays)

	transactions, err := c.store.ListTransactions(ctx, userID, &start, &now)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	if len(transactions) < minPatternTransactions {
		return nil
	}

	if err := c.checkOutlierAmounts(ctx, userID, transactions); err != nil {
		return err
	}
	return c.checkWeekdayConcentration(ctx, userID, transactions)
}

// checkOutlierAmounts aggregates every transaction above mean+2·stddev
// into one alert rather than flooding the user with one alert each.
func (c *UnusualPatternChecker) checkOutlierAmounts(ctx context.Context, userID string, transactions []*model.Transaction) error {
	amounts := make([]float64, len(transactions))
	for i, txn := range transactions {
		amounts[i] = txn.Amount
	}
	threshold := stats.Mean(amounts) + 2*stats.StdDev(amounts)

	var count int
	var largest float64
	for _, amount := range amounts {
		if amount > threshold {
			count++
			if amount > largest {
				largest = amount
			}
		}
	}
	if count == 0 {
		return nil
	}

	alert := newAlert(userID, model.AlertTypeUnusualPattern, model.SeverityInfo,
		"Unusually large transactions",
		fmt.Sprintf("%d transaction(s) in the last %d days were well above your typical amount, the largest being %.2f.",
			count, patternWindowDays, largest),
		map[string]string{
			"outlier_count":  fmt.Sprintf("%d", count),
			"largest_amount": fmt.Sprintf("%.2f", largest),
			"threshold":      fmt.Sprintf("%.2f", threshold),
		})
	if err := c.store.CreateAlert(ctx, alert); err != nil {
		return fmt.Errorf("failed to create outlier alert: %w", err)
	}
	return nil
}

// checkWeekdayConcentration emits an alert when one day of the week
// accounts for more than 30% of all transactions in the window.
func (c *UnusualPatternChecker) checkWeekdayConcentration(ctx context.Context, userID string, transactions []*model.Transaction) error {
	counts := make(map[time.Weekday]int)
	for _, txn := range transactions {
		counts[txn.Date.Weekday()]++
	}

	var topDay time.Weekday
	var topCount int
	for day, count := range counts {
		if count > topCount || (count == topCount && day < topDay) {
			topDay = day
			topCount = count
		}
	}

	share := float64(topCount) / float64(len(transactions))
	if share <= weekdayConcentration {
		return nil
	}

	alert := newAlert(userID, model.AlertTypeUnusualPattern, model.SeverityInfo,
		"Activity concentrated on "+topDay.String(),
		fmt.Sprintf("%.0f%% of your transactions in the last %d days happened on a %s.",
			share*100, patternWindowDays, topDay),
		map[string]string{
			"weekday":       topDay.String(),
			"share_percent": fmt.Sprintf("%.0f", share*100),
		})
	if err := c.store.CreateAlert(ctx, alert); err != nil {
		return fmt.Errorf("failed to create weekday alert: %w", err)
	}
	return nil
}
