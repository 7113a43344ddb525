package handlers

import (
	"errors"

	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// List returns one page of transactions. Optional query filters: type
// (income|expense, anything else is ignored), category (exact match),
// startDate/endDate (inclusive YYYY-MM-DD range in the fixed zone), page
// (1-based) and limit (page size, default 10).
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	params := service.ListParams{
		Type:      c.Query("type"),
		Category:  c.Query("category"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Page:      c.QueryInt("page", 1),
		PageSize:  c.QueryInt("limit", 0),
	}

	result, err := h.txService.List(c.Context(), params)
	if err != nil {
		h.logger.Error("Failed to fetch transactions", zap.Error(err))
		return respond(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    "Transactions fetched successfully",
		"data":       result.Transactions,
		"pagination": result.Pagination,
	})
}

// Create validates the request body and persists a new transaction.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.TransactionInput
	if err := c.BodyParser(&in); err != nil {
		return respond(c, fiber.StatusBadRequest, false, "Invalid request body")
	}

	id, err := h.txService.Create(c.Context(), &in)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return respond(c, fiber.StatusBadRequest, false, verr.Reason)
		}
		h.logger.Error("Failed to create transaction", zap.Error(err))
		return respond(c, fiber.StatusInternalServerError, false, "Failed to create transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Transaction created successfully",
		"id":      id,
	})
}

// Update replaces the five editable fields of the transaction at :id.
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.TransactionInput
	if err := c.BodyParser(&in); err != nil {
		return respond(c, fiber.StatusBadRequest, false, "Invalid request body")
	}

	if err := h.txService.Update(c.Context(), c.Params("id"), &in); err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return respond(c, fiber.StatusBadRequest, false, verr.Reason)
		case errors.Is(err, service.ErrInvalidID):
			return respond(c, fiber.StatusBadRequest, false, "Invalid transaction ID")
		case errors.Is(err, service.ErrNotFound):
			return respond(c, fiber.StatusNotFound, false, "Transaction not found")
		}
		h.logger.Error("Failed to update transaction", zap.Error(err))
		return respond(c, fiber.StatusInternalServerError, false, "Failed to update transaction")
	}

	return respond(c, fiber.StatusOK, true, "Transaction updated successfully")
}

// Delete removes the transaction at :id outright.
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.txService.Delete(c.Context(), c.Params("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			return respond(c, fiber.StatusBadRequest, false, "Invalid transaction ID")
		case errors.Is(err, service.ErrNotFound):
			return respond(c, fiber.StatusNotFound, false, "Transaction not found")
		}
		h.logger.Error("Failed to delete transaction", zap.Error(err))
		return respond(c, fiber.StatusInternalServerError, false, "Failed to delete transaction")
	}

	return respond(c, fiber.StatusOK, true, "Transaction deleted successfully")
}
