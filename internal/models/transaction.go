package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Categories is the label set offered by the dashboard. It is informational
// only; the storage layer accepts any non-empty category string.
var Categories = []string{
	"Food & Dining",
	"Shopping",
	"Transportation",
	"Bills & Utilities",
	"Entertainment",
	"Travel",
	"Education",
	"Healthcare",
	"Income",
	"Gifts",
	"Business",
	"Investment",
	"Personal Care",
	"Other",
}

// Transaction is one income or expense record. Amount is always positive;
// direction is carried solely by Type. Date is a UTC instant anchored to
// local midnight of the civil day in the fixed zone.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Description string             `bson:"description" json:"description"`
	Amount      float64            `bson:"amount" json:"amount"`
	Category    string             `bson:"category" json:"category"`
	Date        time.Time          `bson:"date" json:"date"`
	Type        TransactionType    `bson:"type" json:"type"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
