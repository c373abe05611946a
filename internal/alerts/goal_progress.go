package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/finwatch/insights/internal/model"
	"github.com/finwatch/insights/internal/store"
)

const (
	// behindScheduleRatio: progress below 70% of the expected pace counts
	// as behind schedule.
	behindScheduleRatio = 0.7
	// urgentDaysRemaining escalates behind-schedule goals with a close
	// deadline from info to warning.
	urgentDaysRemaining = 30
	// nearCompletionPercent is the lower edge of the home-stretch band.
	nearCompletionPercent = 90
)

// GoalProgressChecker classifies each active goal as expired, behind
// schedule or near completion, emitting at most one alert per goal.
type GoalProgressChecker struct {
	store store.Store
	now   func() time.Time
}

func NewGoalProgressChecker(st store.Store) *GoalProgressChecker {
	return &GoalProgressChecker{store: st, now: time.Now}
}

func (c *GoalProgressChecker) Type() model.AlertType {
	return model.AlertTypeGoalProgress
}

func (c *GoalProgressChecker) Check(ctx context.Context, userID string) error {
	goals, err := c.store.ListActiveGoals(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}

	now := c.now()
	for _, goal := range goals {
		alert := c.classify(goal, now)
		if alert == nil {
			continue
		}
		if err := c.store.CreateAlert(ctx, alert); err != nil {
			return fmt.Errorf("failed to create goal alert: %w", err)
		}
	}
	return nil
}

// classify returns the alert for the goal's current state, or nil when
// the goal is on track. States are checked in priority order: expired
// beats behind-schedule beats near-completion.
func (c *GoalProgressChecker) classify(goal *model.Goal, now time.Time) *model.Alert {
	if goal.TargetAmount <= 0 {
		return nil
	}

	progress := goal.CurrentAmount / goal.TargetAmount * 100
	daysUntil := goal.TargetDate.Sub(now).Hours() / 24

	related := map[string]string{
		"goal_id":          goal.ID,
		"progress_percent": fmt.Sprintf("%.1f", progress),
	}

	if daysUntil <= 0 && progress < 100 {
		return newAlert(goal.UserID, model.AlertTypeGoalProgress, model.SeverityCritical,
			fmt.Sprintf("Goal %q has expired", goal.Name),
			fmt.Sprintf("The target date for %q has passed with only %.1f%% of the target saved.",
				goal.Name, progress),
			related)
	}

	totalDays := goal.TargetDate.Sub(goal.CreatedAt).Hours() / 24
	if totalDays > 0 && daysUntil > 0 {
		expected := goal.TargetDate.Sub(goal.CreatedAt)
		elapsed := now.Sub(goal.CreatedAt)
		expectedPercent := float64(elapsed) / float64(expected) * 100

		if progress < behindScheduleRatio*expectedPercent {
			severity := model.SeverityInfo
			if daysUntil < urgentDaysRemaining {
				severity = model.SeverityWarning
			}
			return newAlert(goal.UserID, model.AlertTypeGoalProgress, severity,
				fmt.Sprintf("Goal %q is behind schedule", goal.Name),
				fmt.Sprintf("%q is at %.1f%% while %.1f%% was expected by now, with %.0f days remaining.",
					goal.Name, progress, expectedPercent, daysUntil),
				related)
		}
	}

	if progress >= nearCompletionPercent && progress < 100 {
		return newAlert(goal.UserID, model.AlertTypeGoalProgress, model.SeverityInfo,
			fmt.Sprintf("Goal %q is almost complete", goal.Name),
			fmt.Sprintf("%q is at %.1f%% of its target. One final push.", goal.Name, progress),
			related)
	}

	return nil
}
