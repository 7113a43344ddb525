// Seeds the transactions collection with a deterministic spread of sample
// records across the trailing six months so the dashboard has data to
// render. Running it against a non-empty collection is a no-op.
package main

import (
	"context"
	"log"
	"time"

	"fintrack/internal/civil"
	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/mongodb"

	"go.uber.org/zap"
)

type sample struct {
	day         int
	description string
	amount      float64
	category    string
	txType      models.TransactionType
}

// One month's worth of household activity, repeated for every trailing
// month with the salary varying slightly by month index.
var monthlySamples = []sample{
	{1, "Monthly salary", 55000, "Income", models.TypeIncome},
	{2, "Rent", 18000, "Bills & Utilities", models.TypeExpense},
	{4, "Groceries", 3200, "Food & Dining", models.TypeExpense},
	{7, "Metro card top-up", 500, "Transportation", models.TypeExpense},
	{10, "Electricity bill", 1450, "Bills & Utilities", models.TypeExpense},
	{12, "Dinner out", 1800, "Food & Dining", models.TypeExpense},
	{15, "Streaming subscription", 499, "Entertainment", models.TypeExpense},
	{18, "Pharmacy", 640, "Healthcare", models.TypeExpense},
	{21, "Online shopping", 2300, "Shopping", models.TypeExpense},
	{25, "Freelance payment", 8000, "Business", models.TypeIncome},
	{27, "Fuel", 1200, "Transportation", models.TypeExpense},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	txRepo := repository.NewTransactionRepository(client.Database(cfg.Database.Name), appLogger)

	existing, err := txRepo.Count(ctx, repository.ListFilter{})
	if err != nil {
		appLogger.Fatal("Failed to count transactions", zap.Error(err))
	}
	if existing > 0 {
		appLogger.Info("Collection already has data, skipping seed",
			zap.Int64("count", existing))
		return
	}

	appLogger.Info("Starting database seeding...")

	now := time.Now()
	inserted := 0
	for i, month := range civil.TrailingMonths(now, 6) {
		for _, s := range monthlySamples {
			date := time.Date(month.Year, month.Month, s.day, 0, 0, 0, 0, civil.Zone)
			if date.After(now) {
				continue
			}

			amount := s.amount
			if s.description == "Monthly salary" {
				amount += float64(i) * 250
			}

			tx := &models.Transaction{
				Description: s.description,
				Amount:      amount,
				Category:    s.category,
				Date:        date.UTC(),
				Type:        s.txType,
				CreatedAt:   now.UTC(),
				UpdatedAt:   now.UTC(),
			}
			if _, err := txRepo.Create(ctx, tx); err != nil {
				appLogger.Fatal("Failed to insert sample transaction", zap.Error(err))
			}
			inserted++
		}
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.Int("transactions", inserted))
}
