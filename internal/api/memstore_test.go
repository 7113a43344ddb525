package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"fintrack/internal/civil"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory stand-in for the Mongo repository. It applies
// the same filter, sort and grouping semantics so handler tests exercise
// the full request path without a database.
type memStore struct {
	mu  sync.Mutex
	txs map[primitive.ObjectID]*models.Transaction
}

func newMemStore() *memStore {
	return &memStore{txs: make(map[primitive.ObjectID]*models.Transaction)}
}

func (m *memStore) Create(_ context.Context, tx *models.Transaction) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := primitive.NewObjectID()
	stored := *tx
	stored.ID = id
	m.txs[id] = &stored
	return id, nil
}

func (m *memStore) Update(_ context.Context, id primitive.ObjectID, tx *models.Transaction) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.txs[id]
	if !ok {
		return false, nil
	}
	existing.Description = tx.Description
	existing.Amount = tx.Amount
	existing.Category = tx.Category
	existing.Date = tx.Date
	existing.Type = tx.Type
	existing.UpdatedAt = tx.UpdatedAt
	return true, nil
}

func (m *memStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.txs[id]; !ok {
		return false, nil
	}
	delete(m.txs, id)
	return true, nil
}

func (m *memStore) matching(filter repository.ListFilter) []*models.Transaction {
	var rows []*models.Transaction
	for _, tx := range m.txs {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Category != "" && tx.Category != filter.Category {
			continue
		}
		if !filter.StartDate.IsZero() && tx.Date.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && tx.Date.After(filter.EndDate) {
			continue
		}
		rows = append(rows, tx)
	}
	return rows
}

func (m *memStore) Find(_ context.Context, filter repository.ListFilter, skip, limit int64) ([]*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.matching(filter)
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	if skip >= int64(len(rows)) {
		return nil, nil
	}
	rows = rows[skip:]
	if limit > 0 && limit < int64(len(rows)) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (m *memStore) Count(_ context.Context, filter repository.ListFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.matching(filter))), nil
}

func (m *memStore) SumByType(_ context.Context, start, end time.Time) ([]repository.TypeTotal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byType := make(map[models.TransactionType]*repository.TypeTotal)
	for _, tx := range m.matching(repository.ListFilter{StartDate: start, EndDate: end}) {
		total, ok := byType[tx.Type]
		if !ok {
			total = &repository.TypeTotal{Type: tx.Type}
			byType[tx.Type] = total
		}
		total.Total += tx.Amount
		total.Count++
	}

	var totals []repository.TypeTotal
	for _, t := range byType {
		totals = append(totals, *t)
	}
	return totals, nil
}

func (m *memStore) MonthlyExpenses(_ context.Context, since time.Time) ([]repository.MonthTotal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byMonth := make(map[civil.Month]float64)
	for _, tx := range m.matching(repository.ListFilter{Type: models.TypeExpense, StartDate: since}) {
		local := tx.Date.In(civil.Zone)
		byMonth[civil.Month{Year: local.Year(), Month: local.Month()}] += tx.Amount
	}

	var totals []repository.MonthTotal
	for month, sum := range byMonth {
		var row repository.MonthTotal
		row.ID.Year = month.Year
		row.ID.Month = int(month.Month)
		row.Expenses = sum
		totals = append(totals, row)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].ID.Year != totals[j].ID.Year {
			return totals[i].ID.Year < totals[j].ID.Year
		}
		return totals[i].ID.Month < totals[j].ID.Month
	})
	return totals, nil
}

func (m *memStore) ExpensesByCategory(_ context.Context, start, end time.Time) ([]repository.CategoryTotal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byCategory := make(map[string]float64)
	filter := repository.ListFilter{Type: models.TypeExpense, StartDate: start, EndDate: end}
	for _, tx := range m.matching(filter) {
		byCategory[tx.Category] += tx.Amount
	}

	var totals []repository.CategoryTotal
	for name, value := range byCategory {
		totals = append(totals, repository.CategoryTotal{Name: name, Value: value})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Value > totals[j].Value
	})
	return totals, nil
}
