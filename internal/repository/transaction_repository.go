package repository

import (
	"context"
	"time"

	"fintrack/internal/civil"
	"fintrack/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "transactions"

// ListFilter narrows a list query. Zero-valued fields are left out of the
// generated filter document.
type ListFilter struct {
	Type      models.TransactionType
	Category  string
	StartDate time.Time
	EndDate   time.Time
}

func (f ListFilter) query() bson.M {
	q := bson.M{}
	if f.Type != "" {
		q["type"] = f.Type
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	dateRange := bson.M{}
	if !f.StartDate.IsZero() {
		dateRange["$gte"] = f.StartDate
	}
	if !f.EndDate.IsZero() {
		dateRange["$lte"] = f.EndDate
	}
	if len(dateRange) > 0 {
		q["date"] = dateRange
	}
	return q
}

// TypeTotal is one $group row of the summary pipeline.
type TypeTotal struct {
	Type  models.TransactionType `bson:"_id"`
	Total float64                `bson:"total"`
	Count int64                  `bson:"count"`
}

// MonthTotal is one $group row of the monthly-trend pipeline. Year and
// month are extracted from the zone-shifted date.
type MonthTotal struct {
	ID struct {
		Year  int `bson:"year"`
		Month int `bson:"month"`
	} `bson:"_id"`
	Expenses float64 `bson:"expenses"`
}

// CategoryTotal is one $group row of the category-breakdown pipeline.
type CategoryTotal struct {
	Name  string  `bson:"_id"`
	Value float64 `bson:"value"`
}

type TransactionRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewTransactionRepository(db *mongo.Database, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		coll:   db.Collection(collectionName),
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, tx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// Update replaces the five editable fields plus updatedAt. It reports
// whether a document matched the id.
func (r *TransactionRepository) Update(ctx context.Context, id primitive.ObjectID, tx *models.Transaction) (bool, error) {
	update := bson.M{"$set": bson.M{
		"description": tx.Description,
		"amount":      tx.Amount,
		"category":    tx.Category,
		"date":        tx.Date,
		"type":        tx.Type,
		"updatedAt":   tx.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Find returns one page of transactions sorted by date descending with
// createdAt as the tie-break.
func (r *TransactionRepository) Find(ctx context.Context, filter ListFilter, skip, limit int64) ([]*models.Transaction, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var transactions []*models.Transaction
	if err := cur.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *TransactionRepository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, filter.query())
}

// SumByType groups all transactions in [start, end] by type, summing
// amounts and counting documents per group.
func (r *TransactionRepository) SumByType(ctx context.Context, start, end time.Time) ([]TypeTotal, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"date": bson.M{"$gte": start, "$lte": end},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"total": bson.M{"$sum": "$amount"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var totals []TypeTotal
	if err := cur.All(ctx, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

// MonthlyExpenses sums expenses per civil month since the given instant.
// The stored UTC date is shifted by the fixed offset before $year/$month
// extraction so buckets follow the civil calendar, not UTC.
func (r *TransactionRepository) MonthlyExpenses(ctx context.Context, since time.Time) ([]MonthTotal, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"type": models.TypeExpense,
			"date": bson.M{"$gte": since},
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"localDate": bson.M{"$add": bson.A{"$date", civil.Offset.Milliseconds()}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$localDate"},
				"month": bson.M{"$month": "$localDate"},
			},
			"expenses": bson.M{"$sum": "$amount"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var totals []MonthTotal
	if err := cur.All(ctx, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

// ExpensesByCategory sums expenses per category in [start, end], largest
// category first.
func (r *TransactionRepository) ExpensesByCategory(ctx context.Context, start, end time.Time) ([]CategoryTotal, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"type": models.TypeExpense,
			"date": bson.M{"$gte": start, "$lte": end},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$category",
			"value": bson.M{"$sum": "$amount"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "value", Value: -1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var totals []CategoryTotal
	if err := cur.All(ctx, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}
