package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/finwatch/insights/internal/model"
)

// FirestoreStore implements the Store interface using Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{
		client: client,
	}
}

// Transaction operations

func (s *FirestoreStore) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	_, err := s.client.Collection("transactions").Doc(txn.ID).Set(ctx, txn)
	return err
}

func (s *FirestoreStore) ListTransactions(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*model.Transaction, error) {
	// NOTE: Field names must match Go struct field names (PascalCase) as
	// that's how Firestore serializes the structs.
	query := s.client.Collection("transactions").Query.Where("UserID", "==", userID)
	if startDate != nil {
		query = query.Where("Date", ">=", *startDate)
	}
	if endDate != nil {
		query = query.Where("Date", "<=", *endDate)
	}
	query = query.OrderBy("Date", firestore.Asc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]*model.Transaction, 0, len(docs))
	for _, doc := range docs {
		var txn model.Transaction
		if err := doc.DataTo(&txn); err != nil {
			return nil, fmt.Errorf("failed to parse transaction: %w", err)
		}
		transactions = append(transactions, &txn)
	}
	return transactions, nil
}

// Goal operations

func (s *FirestoreStore) CreateGoal(ctx context.Context, goal *model.Goal) error {
	_, err := s.client.Collection("goals").Doc(goal.ID).Set(ctx, goal)
	return err
}

func (s *FirestoreStore) ListActiveGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	docs, err := s.client.Collection("goals").
		Where("UserID", "==", userID).
		Where("IsActive", "==", true).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	goals := make([]*model.Goal, 0, len(docs))
	for _, doc := range docs {
		var goal model.Goal
		if err := doc.DataTo(&goal); err != nil {
			return nil, fmt.Errorf("failed to parse goal: %w", err)
		}
		goals = append(goals, &goal)
	}
	return goals, nil
}

// Category operations

func (s *FirestoreStore) CreateCategory(ctx context.Context, category *model.Category) error {
	_, err := s.client.Collection("categories").Doc(category.ID).Set(ctx, category)
	return err
}

func (s *FirestoreStore) GetCategory(ctx context.Context, categoryID string) (*model.Category, error) {
	doc, err := s.client.Collection("categories").Doc(categoryID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("category not found: %w", err)
	}

	var category model.Category
	if err := doc.DataTo(&category); err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}
	return &category, nil
}

// Alert operations

func (s *FirestoreStore) CreateAlert(ctx context.Context, alert *model.Alert) error {
	_, err := s.client.Collection("alerts").Doc(alert.ID).Set(ctx, alert)
	return err
}

func (s *FirestoreStore) ListAlerts(ctx context.Context, userID string, unreadOnly bool) ([]*model.Alert, error) {
	query := s.client.Collection("alerts").Query.Where("UserID", "==", userID)
	if unreadOnly {
		query = query.Where("IsRead", "==", false)
	}
	query = query.OrderBy("CreatedAt", firestore.Desc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	alerts := make([]*model.Alert, 0, len(docs))
	for _, doc := range docs {
		var alert model.Alert
		if err := doc.DataTo(&alert); err != nil {
			return nil, fmt.Errorf("failed to parse alert: %w", err)
		}
		alerts = append(alerts, &alert)
	}
	return alerts, nil
}

func (s *FirestoreStore) MarkAlertRead(ctx context.Context, alertID string) error {
	_, err := s.client.Collection("alerts").Doc(alertID).Update(ctx, []firestore.Update{
		{Path: "IsRead", Value: true},
	})
	if err != nil {
		return fmt.Errorf("alert not found: %w", err)
	}
	return nil
}

func (s *FirestoreStore) MarkAllAlertsRead(ctx context.Context, userID string) error {
	docs, err := s.client.Collection("alerts").
		Where("UserID", "==", userID).
		Where("IsRead", "==", false).
		Documents(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("failed to query unread alerts: %w", err)
	}

	batch := s.client.Batch()
	for _, doc := range docs {
		batch.Update(doc.Ref, []firestore.Update{
			{Path: "IsRead", Value: true},
		})
	}

	_, err = batch.Commit(ctx)
	return err
}

func (s *FirestoreStore) CountUnreadAlerts(ctx context.Context, userID string) (int, error) {
	docs, err := s.client.Collection("alerts").
		Where("UserID", "==", userID).
		Where("IsRead", "==", false).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to count unread alerts: %w", err)
	}
	return len(docs), nil
}

// Prediction operations

func (s *FirestoreStore) SavePrediction(ctx context.Context, doc *model.PredictionDocument) error {
	_, err := s.client.Collection("predictions").Doc(doc.ID).Set(ctx, doc)
	return err
}

func (s *FirestoreStore) ListPredictions(ctx context.Context, userID string) ([]*model.PredictionDocument, error) {
	docs, err := s.client.Collection("predictions").
		Where("UserID", "==", userID).
		OrderBy("GeneratedAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}

	predictions := make([]*model.PredictionDocument, 0, len(docs))
	for _, doc := range docs {
		var pred model.PredictionDocument
		if err := doc.DataTo(&pred); err != nil {
			return nil, fmt.Errorf("failed to parse prediction: %w", err)
		}
		predictions = append(predictions, &pred)
	}
	return predictions, nil
}
