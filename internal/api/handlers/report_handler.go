package handlers

import (
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// Summary returns current-month totals per type, the derived balance and
// the transaction count.
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.reportService.Summary(c.Context())
	if err != nil {
		h.logger.Error("Failed to fetch summary data", zap.Error(err))
		return respond(c, fiber.StatusInternalServerError, false, "Failed to fetch summary data")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":          true,
		"totalExpenses":    summary.TotalExpenses,
		"totalIncome":      summary.TotalIncome,
		"balance":          summary.Balance,
		"transactionCount": summary.TransactionCount,
		"monthlyChange":    summary.MonthlyChange,
		"message":          "Summary data fetched successfully",
	})
}

// Monthly returns the trailing six-month expense trend, zero-filled.
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	points, err := h.reportService.MonthlyTrend(c.Context())
	if err != nil {
		h.logger.Error("Failed to fetch monthly data", zap.Error(err))
		return respond(c, fiber.StatusInternalServerError, false, "Failed to fetch monthly data")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    points,
		"message": "Monthly data fetched successfully",
	})
}

// Categories returns the current-month expense breakdown by category.
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	totals, err := h.reportService.CategoryBreakdown(c.Context())
	if err != nil {
		h.logger.Error("Failed to fetch category data", zap.Error(err))
		return respond(c, fiber.StatusInternalServerError, false, "Failed to fetch category data")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    totals,
		"message": "Category data fetched successfully",
	})
}
