package alerts

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/finwatch/insights/internal/model"
	"github.com/finwatch/insights/internal/store"
)

// CheckWarning records one checker's failure during a full run. Failures
// are reported as warnings so a broken checker never hides the results
// of the healthy ones.
type CheckWarning struct {
	Type model.AlertType
	Err  error
}

// Orchestrator owns the checker registry. The registry is built once at
// construction and read-only afterwards.
type Orchestrator struct {
	checkers map[model.AlertType]Checker
}

// NewOrchestrator registers the full checker set against the store.
func NewOrchestrator(st store.Store) *Orchestrator {
	return newOrchestrator(
		NewOverspendingChecker(st),
		NewGoalProgressChecker(st),
		NewUnusualPatternChecker(st),
		NewRecommendationChecker(st),
	)
}

func newOrchestrator(checkers ...Checker) *Orchestrator {
	registry := make(map[model.AlertType]Checker, len(checkers))
	for _, c := range checkers {
		registry[c.Type()] = c
	}
	return &Orchestrator{checkers: registry}
}

// RunAllChecks fans every registered checker out concurrently. Each
// checker's failure is captured and logged individually; the run itself
// never fails, it returns the warnings collected.
func (o *Orchestrator) RunAllChecks(ctx context.Context, userID string) []CheckWarning {
	var mu sync.Mutex
	var warnings []CheckWarning

	g, ctx := errgroup.WithContext(ctx)
	for _, checker := range o.checkers {
		g.Go(func() error {
			if err := checker.Check(ctx, userID); err != nil {
				log.Printf("[AlertOrchestrator] checker %s failed for user %s: %v", checker.Type(), userID, err)
				mu.Lock()
				warnings = append(warnings, CheckWarning{Type: checker.Type(), Err: err})
				mu.Unlock()
			}
			return nil
		})
	}
	// The group never sees an error; Wait only synchronizes the fan-out.
	_ = g.Wait()

	sort.Slice(warnings, func(i, j int) bool { return warnings[i].Type < warnings[j].Type })
	return warnings
}

// RunSpecificCheck runs a single checker by type, propagating its error
// untouched.
func (o *Orchestrator) RunSpecificCheck(ctx context.Context, userID string, alertType model.AlertType) error {
	checker, ok := o.checkers[alertType]
	if !ok {
		return fmt.Errorf("no checker for type %q", alertType)
	}
	return checker.Check(ctx, userID)
}

// AvailableTypes lists the registered alert types in stable order.
func (o *Orchestrator) AvailableTypes() []model.AlertType {
	types := make([]model.AlertType, 0, len(o.checkers))
	for alertType := range o.checkers {
		types = append(types, alertType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
