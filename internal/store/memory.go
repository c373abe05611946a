package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finwatch/insights/internal/model"
)

// MemoryStore implements Store with in-memory maps. Used for local
// development and as a lightweight test double.
type MemoryStore struct {
	mu sync.RWMutex

	transactions map[string]*model.Transaction
	goals        map[string]*model.Goal
	categories   map[string]*model.Category
	alerts       map[string]*model.Alert
	predictions  map[string]*model.PredictionDocument
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions: make(map[string]*model.Transaction),
		goals:        make(map[string]*model.Goal),
		categories:   make(map[string]*model.Category),
		alerts:       make(map[string]*model.Alert),
		predictions:  make(map[string]*model.PredictionDocument),
	}
}

// Transaction operations

func (m *MemoryStore) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	m.transactions[txn.ID] = txn
	return nil
}

func (m *MemoryStore) ListTransactions(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*model.Transaction
	for _, txn := range m.transactions {
		if txn.UserID != userID {
			continue
		}
		if startDate != nil && txn.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && txn.Date.After(*endDate) {
			continue
		}
		out = append(out, txn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// Goal operations

func (m *MemoryStore) CreateGoal(ctx context.Context, goal *model.Goal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	m.goals[goal.ID] = goal
	return nil
}

func (m *MemoryStore) ListActiveGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*model.Goal
	for _, goal := range m.goals {
		if goal.UserID == userID && goal.IsActive {
			out = append(out, goal)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Category operations

func (m *MemoryStore) CreateCategory(ctx context.Context, category *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	m.categories[category.ID] = category
	return nil
}

func (m *MemoryStore) GetCategory(ctx context.Context, categoryID string) (*model.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	category, ok := m.categories[categoryID]
	if !ok {
		return nil, ErrNotFound
	}
	return category, nil
}

// Alert operations

func (m *MemoryStore) CreateAlert(ctx context.Context, alert *model.Alert) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	m.alerts[alert.ID] = alert
	return nil
}

func (m *MemoryStore) ListAlerts(ctx context.Context, userID string, unreadOnly bool) ([]*model.Alert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*model.Alert
	for _, alert := range m.alerts {
		if alert.UserID != userID {
			continue
		}
		if unreadOnly && alert.IsRead {
			continue
		}
		out = append(out, alert)
	}
	// Newest first, matching how alert feeds are consumed.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) MarkAlertRead(ctx context.Context, alertID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	alert, ok := m.alerts[alertID]
	if !ok {
		return ErrNotFound
	}
	alert.IsRead = true
	return nil
}

func (m *MemoryStore) MarkAllAlertsRead(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, alert := range m.alerts {
		if alert.UserID == userID {
			alert.IsRead = true
		}
	}
	return nil
}

func (m *MemoryStore) CountUnreadAlerts(ctx context.Context, userID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, alert := range m.alerts {
		if alert.UserID == userID && !alert.IsRead {
			count++
		}
	}
	return count, nil
}

// Prediction operations

func (m *MemoryStore) SavePrediction(ctx context.Context, doc *model.PredictionDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	m.predictions[doc.ID] = doc
	return nil
}

func (m *MemoryStore) ListPredictions(ctx context.Context, userID string) ([]*model.PredictionDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*model.PredictionDocument
	for _, doc := range m.predictions {
		if doc.UserID == userID {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GeneratedAt.After(out[j].GeneratedAt) })
	return out, nil
}
