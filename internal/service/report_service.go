package service

import (
	"context"
	"time"

	"fintrack/internal/civil"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"go.uber.org/zap"
)

const trendMonths = 6

// ReportStore is the storage surface the report operations need.
// *repository.TransactionRepository implements it.
type ReportStore interface {
	SumByType(ctx context.Context, start, end time.Time) ([]repository.TypeTotal, error)
	MonthlyExpenses(ctx context.Context, since time.Time) ([]repository.MonthTotal, error)
	ExpensesByCategory(ctx context.Context, start, end time.Time) ([]repository.CategoryTotal, error)
}

type ReportService struct {
	store  ReportStore
	logger *zap.Logger
	now    func() time.Time
}

func NewReportService(store ReportStore, logger *zap.Logger) *ReportService {
	return &ReportService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Summary totals the current civil month by type and derives the balance.
func (s *ReportService) Summary(ctx context.Context) (*dto.Summary, error) {
	start, end := civil.MonthWindow(s.now(), 0)

	totals, err := s.store.SumByType(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var summary dto.Summary
	for _, t := range totals {
		switch t.Type {
		case models.TypeExpense:
			summary.TotalExpenses = t.Total
			summary.TransactionCount += t.Count
		case models.TypeIncome:
			summary.TotalIncome = t.Total
			summary.TransactionCount += t.Count
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpenses
	// MonthlyChange stays 0: prior-period comparison is not implemented.

	return &summary, nil
}

// MonthlyTrend sums expenses per civil month over the trailing six months.
// Months without expenses are zero-filled so the result always holds
// exactly six points, oldest first, ending at the current month.
func (s *ReportService) MonthlyTrend(ctx context.Context) ([]dto.MonthlyPoint, error) {
	now := s.now()
	since, _ := civil.MonthWindow(now, trendMonths-1)

	rows, err := s.store.MonthlyExpenses(ctx, since)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[civil.Month]float64, len(rows))
	for _, row := range rows {
		key := civil.Month{Year: row.ID.Year, Month: time.Month(row.ID.Month)}
		byMonth[key] = row.Expenses
	}

	months := civil.TrailingMonths(now, trendMonths)
	points := make([]dto.MonthlyPoint, 0, len(months))
	for _, m := range months {
		points = append(points, dto.MonthlyPoint{
			Month:    m.Label(),
			Expenses: byMonth[m],
		})
	}
	return points, nil
}

// CategoryBreakdown sums current-month expenses per category, largest
// first. Categories without expenses are simply absent.
func (s *ReportService) CategoryBreakdown(ctx context.Context) ([]dto.CategoryTotal, error) {
	start, end := civil.MonthWindow(s.now(), 0)

	rows, err := s.store.ExpensesByCategory(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totals := make([]dto.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, dto.CategoryTotal{Name: row.Name, Value: row.Value})
	}
	return totals, nil
}
