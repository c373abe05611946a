package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/finwatch/insights/internal/alerts"
	"github.com/finwatch/insights/internal/engine"
	"github.com/finwatch/insights/internal/model"
	"github.com/finwatch/insights/internal/preprocess"
	"github.com/finwatch/insights/internal/store"
	"github.com/finwatch/insights/internal/trend"
)

func main() {
	ctx := context.Background()

	// Determine if we're running locally
	useMemoryStore := os.Getenv("USE_MEMORY_STORE") == "true" || os.Getenv("ENV") == "local"

	userID := os.Getenv("DEMO_USER_ID")
	if userID == "" {
		userID = "local-dev-user"
	}

	var storeImpl store.Store
	if useMemoryStore {
		log.Println("Using in-memory store for local development")
		storeImpl = store.NewMemoryStore()
	} else {
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			log.Fatal("GOOGLE_CLOUD_PROJECT must be set when not using the memory store")
		}

		firestoreClient, err := firestore.NewClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		storeImpl = store.NewFirestoreStore(firestoreClient)
	}

	if useMemoryStore {
		if err := seedDemoData(ctx, storeImpl, userID); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	cache := engine.NewPredictionCache(engine.DefaultCacheTTL)
	predictionEngine := engine.NewPredictionEngine(storeImpl, cache)
	orchestrator := alerts.NewOrchestrator(storeImpl)

	runDemo(ctx, predictionEngine, orchestrator, storeImpl, userID)
}

func runDemo(ctx context.Context, predictionEngine *engine.PredictionEngine, orchestrator *alerts.Orchestrator, storeImpl store.Store, userID string) {
	log.Printf("Running insights demo for user: %s", userID)

	forecast, err := predictionEngine.Forecast(ctx, userID, 3)
	if err != nil {
		log.Printf("Forecast failed: %v", err)
	} else {
		log.Printf("Forecast (%s, confidence %.2f):", forecast.ModelType, forecast.Confidence)
		for _, p := range forecast.Predictions {
			log.Printf("  %s: %.2f [%.2f, %.2f]",
				p.Date.Format("2006-01"), p.Amount, p.LowerBound, p.UpperBound)
		}
	}

	insights, err := predictionEngine.GenerateInsights(ctx, userID)
	if err != nil {
		log.Printf("Insights failed: %v", err)
	} else {
		log.Printf("Insights (confidence %.2f): income %.2f, expenses %.2f, net %.2f",
			insights.Confidence, insights.TotalIncome, insights.TotalExpense, insights.Net)
		for _, msg := range insights.Messages {
			log.Printf("  - %s", msg)
		}
	}

	history, err := storeImpl.ListPredictions(ctx, userID)
	if err != nil {
		log.Printf("Failed to list prediction history: %v", err)
	} else {
		log.Printf("Prediction history: %d document(s)", len(history))
	}

	logSpendingTrends(ctx, storeImpl, userID)

	warnings := orchestrator.RunAllChecks(ctx, userID)
	for _, w := range warnings {
		log.Printf("Checker %s failed: %v", w.Type, w.Err)
	}

	unread, err := storeImpl.CountUnreadAlerts(ctx, userID)
	if err != nil {
		log.Printf("Failed to count alerts: %v", err)
		return
	}
	log.Printf("Generated %d unread alert(s):", unread)

	generated, err := storeImpl.ListAlerts(ctx, userID, true)
	if err != nil {
		log.Printf("Failed to list alerts: %v", err)
		return
	}
	for _, alert := range generated {
		log.Printf("  [%s/%s] %s: %s", alert.Type, alert.Severity, alert.Title, alert.Message)
	}
}

// logSpendingTrends aggregates the user's expenses per month and prints
// the trend analysis over that series.
func logSpendingTrends(ctx context.Context, storeImpl store.Store, userID string) {
	transactions, err := storeImpl.ListTransactions(ctx, userID, nil, nil)
	if err != nil {
		log.Printf("Trend analysis failed: %v", err)
		return
	}

	var points []model.DataPoint
	for _, txn := range transactions {
		if txn.Type == model.TransactionTypeExpense {
			points = append(points, model.DataPoint{Date: txn.Date, Value: txn.Amount})
		}
	}

	pre := preprocess.NewPreprocessor()
	series := pre.ToTimeSeries(pre.AggregateByPeriod(pre.CleanData(points), preprocess.PeriodMonth))
	if series.Len() < 2 {
		log.Println("Not enough expense history for trend analysis")
		return
	}

	report := trend.NewAnalyzer().Analyze(series.Values, series.Len()/2)
	log.Printf("Spending trend: %s (slope %.2f, growth %.1f%%)",
		report.Trend.Direction, report.Trend.Slope, report.GrowthRate)
	if report.Seasonality.Detected {
		log.Printf("  seasonality: period %d (strength %.2f)",
			report.Seasonality.Period, report.Seasonality.Strength)
	}
	if len(report.ChangePoints) > 0 {
		log.Printf("  change points at month indices %v", report.ChangePoints)
	}
}

// seedDemoData writes six months of deterministic synthetic history:
// steady salary, gently rising spending with a grocery spike, and two
// savings goals in different states.
func seedDemoData(ctx context.Context, storeImpl store.Store, userID string) error {
	rng := rand.New(rand.NewSource(42))
	now := time.Now()

	categories := []*model.Category{
		{ID: "cat-groceries", Name: "Groceries"},
		{ID: "cat-rent", Name: "Rent"},
		{ID: "cat-transport", Name: "Transport"},
		{ID: "cat-entertainment", Name: "Entertainment"},
	}
	for _, category := range categories {
		if err := storeImpl.CreateCategory(ctx, category); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", category.ID, err)
		}
	}

	for monthsAgo := 6; monthsAgo >= 1; monthsAgo-- {
		monthStart := now.AddDate(0, -monthsAgo, 0)

		salary := &model.Transaction{
			ID:          uuid.New().String(),
			UserID:      userID,
			Type:        model.TransactionTypeIncome,
			Amount:      5200,
			Date:        monthStart,
			Description: "Monthly salary",
		}
		if err := storeImpl.CreateTransaction(ctx, salary); err != nil {
			return fmt.Errorf("failed to seed salary: %w", err)
		}

		rent := &model.Transaction{
			ID:         uuid.New().String(),
			UserID:     userID,
			Type:       model.TransactionTypeExpense,
			Amount:     1600,
			Date:       monthStart.AddDate(0, 0, 1),
			CategoryID: "cat-rent",
		}
		if err := storeImpl.CreateTransaction(ctx, rent); err != nil {
			return fmt.Errorf("failed to seed rent: %w", err)
		}

		// Spending drifts upward month over month so the recent window
		// trips the overspending comparison.
		drift := float64(6-monthsAgo) * 15
		for day := 2; day <= 26; day += 3 {
			categoryID := categories[rng.Intn(len(categories))].ID
			amount := 40 + drift + rng.Float64()*60
			if monthsAgo == 1 && day == 14 {
				// A single grocery splurge for the outlier scan.
				categoryID = "cat-groceries"
				amount = 600
			}
			txn := &model.Transaction{
				ID:         uuid.New().String(),
				UserID:     userID,
				Type:       model.TransactionTypeExpense,
				Amount:     amount,
				Date:       monthStart.AddDate(0, 0, day),
				CategoryID: categoryID,
			}
			if err := storeImpl.CreateTransaction(ctx, txn); err != nil {
				return fmt.Errorf("failed to seed expense: %w", err)
			}
		}
	}

	goals := []*model.Goal{
		{
			ID:            uuid.New().String(),
			UserID:        userID,
			Name:          "Emergency fund",
			TargetAmount:  10000,
			CurrentAmount: 2000,
			CreatedAt:     now.AddDate(0, -5, 0),
			TargetDate:    now.AddDate(0, 1, 0),
			IsActive:      true,
		},
		{
			ID:            uuid.New().String(),
			UserID:        userID,
			Name:          "Holiday trip",
			TargetAmount:  3000,
			CurrentAmount: 2850,
			CreatedAt:     now.AddDate(0, -4, 0),
			TargetDate:    now.AddDate(0, 2, 0),
			IsActive:      true,
		},
	}
	for _, goal := range goals {
		if err := storeImpl.CreateGoal(ctx, goal); err != nil {
			return fmt.Errorf("failed to seed goal %s: %w", goal.Name, err)
		}
	}

	log.Printf("Seeded demo data for user: %s", userID)
	return nil
}
