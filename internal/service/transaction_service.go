package service

import (
	"context"
	"strings"
	"time"

	"fintrack/internal/civil"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const defaultPageSize = 10

// TransactionStore is the storage surface the mutation and list operations
// need. *repository.TransactionRepository implements it.
type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, tx *models.Transaction) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	Find(ctx context.Context, filter repository.ListFilter, skip, limit int64) ([]*models.Transaction, error)
	Count(ctx context.Context, filter repository.ListFilter) (int64, error)
}

type ListParams struct {
	Type      string
	Category  string
	StartDate string
	EndDate   string
	Page      int
	PageSize  int
}

type ListResult struct {
	Transactions []*models.Transaction
	Pagination   dto.Pagination
}

type TransactionService struct {
	store  TransactionStore
	logger *zap.Logger
	now    func() time.Time
}

func NewTransactionService(store TransactionStore, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// buildTransaction validates the shared input shape and converts it into a
// record. Rules are checked in a fixed order and the first violation wins:
// presence of all five fields, amount positivity, type enumeration, date
// format.
func buildTransaction(in *dto.TransactionInput) (*models.Transaction, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" || in.Amount == nil || in.Category == "" || in.Date == "" || in.Type == "" {
		return nil, invalid("All fields are required")
	}
	if *in.Amount <= 0 {
		return nil, invalid("Amount must be greater than 0")
	}
	txType := models.TransactionType(in.Type)
	if !txType.Valid() {
		return nil, invalid("Type must be either income or expense")
	}
	date, err := civil.Date(in.Date)
	if err != nil {
		return nil, invalid("Date must be a valid YYYY-MM-DD value")
	}

	return &models.Transaction{
		Description: description,
		Amount:      *in.Amount,
		Category:    in.Category,
		Date:        date,
		Type:        txType,
	}, nil
}

// Create validates the input and persists a new transaction, returning the
// server-assigned identifier.
func (s *TransactionService) Create(ctx context.Context, in *dto.TransactionInput) (string, error) {
	tx, err := buildTransaction(in)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	id, err := s.store.Create(ctx, tx)
	if err != nil {
		return "", err
	}

	s.logger.Info("Transaction created",
		zap.String("id", id.Hex()),
		zap.String("type", string(tx.Type)),
	)
	return id.Hex(), nil
}

// Update replaces the five editable fields of an existing transaction. The
// input is validated with the same rules as Create.
func (s *TransactionService) Update(ctx context.Context, id string, in *dto.TransactionInput) error {
	tx, err := buildTransaction(in)
	if err != nil {
		return err
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	tx.UpdatedAt = s.now().UTC()

	matched, err := s.store.Update(ctx, objectID, tx)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

func (s *TransactionService) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	deleted, err := s.store.Delete(ctx, objectID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// List returns one page of transactions plus pagination totals. An
// unrecognized type filter is ignored rather than rejected. Date-only
// bounds are anchored to local midnight and local end-of-day in the fixed
// zone; malformed dates are ignored like an unrecognized type.
func (s *TransactionService) List(ctx context.Context, p ListParams) (*ListResult, error) {
	filter := repository.ListFilter{Category: p.Category}

	if t := models.TransactionType(p.Type); t.Valid() {
		filter.Type = t
	}
	if p.StartDate != "" {
		if start, err := civil.Date(p.StartDate); err == nil {
			filter.StartDate = start
		}
	}
	if p.EndDate != "" {
		if end, err := civil.EndOfDay(p.EndDate); err == nil {
			filter.EndDate = end
		}
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	skip := int64(page-1) * int64(pageSize)
	transactions, err := s.store.Find(ctx, filter, skip, int64(pageSize))
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []*models.Transaction{}
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return &ListResult{
		Transactions: transactions,
		Pagination: dto.Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}
