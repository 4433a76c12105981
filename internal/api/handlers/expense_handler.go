package handlers

import (
	"errors"
	"time"

	"expenso/internal/dto"
	"expenso/internal/models"
	"expenso/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
	logger         *zap.Logger
}

func NewExpenseHandler(expenseService *service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Submit an expense
// @Description Classify the description with the LLM and persist the expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Security Bearer
// @Success 201 {object} dto.CreateExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /expense [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	identity, err := getIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	expense, err := h.expenseService.Submit(c.Context(), identity, &req)
	if err != nil {
		h.logger.Error("Failed to create expense", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errorMessage(err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateExpenseResponse{
		Message: "Expense added",
		Data:    toExpenseResponse(expense),
	})
}

// CreateManual godoc
// @Summary Submit an expense without classification
// @Description Persist an expense with a caller-supplied category; the user_id override is admin-only
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body dto.ManualExpenseRequest true "Expense"
// @Security Bearer
// @Success 201 {object} dto.ManualExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /add-expense [post]
func (h *ExpenseHandler) CreateManual(c *fiber.Ctx) error {
	identity, err := getIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	var req dto.ManualExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	expense, err := h.expenseService.SubmitManual(c.Context(), identity, &req)
	if err != nil {
		h.logger.Error("Failed to create expense", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errorMessage(err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ManualExpenseResponse{
		Success: true,
		Data:    toExpenseResponse(expense),
	})
}

// List godoc
// @Summary List expenses
// @Description List the caller's expenses, newest first
// @Tags expenses
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ExpenseResponse
// @Failure 401 {object} map[string]string
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	identity, err := getIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	expenses, err := h.expenseService.List(c.Context(), identity)
	if err != nil {
		h.logger.Error("Failed to list expenses", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errorMessage(err),
		})
	}

	resp := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, toExpenseResponse(e))
	}

	return c.JSON(resp)
}

// Summary godoc
// @Summary Spending summary
// @Description Per-category totals for the caller
// @Tags expenses
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CategorySummaryResponse
// @Failure 401 {object} map[string]string
// @Router /expenses/summary [get]
func (h *ExpenseHandler) Summary(c *fiber.Ctx) error {
	identity, err := getIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	totals, err := h.expenseService.Summary(c.Context(), identity)
	if err != nil {
		h.logger.Error("Failed to summarize expenses", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errorMessage(err),
		})
	}

	resp := make([]dto.CategorySummaryResponse, 0, len(totals))
	for _, t := range totals {
		resp = append(resp, dto.CategorySummaryResponse{
			Category: string(t.Category),
			Total:    t.Total,
		})
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete an expense
// @Description Delete one of the caller's expenses; deleting a missing or foreign expense is a no-op
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Security Bearer
// @Success 200 {object} dto.DeleteExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /expense/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	identity, err := getIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense ID",
		})
	}

	if err := h.expenseService.Remove(c.Context(), identity, expenseID); err != nil {
		h.logger.Error("Failed to delete expense", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errorMessage(err),
		})
	}

	return c.JSON(dto.DeleteExpenseResponse{Message: "Expense deleted"})
}

func getIdentity(c *fiber.Ctx) (service.Identity, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return service.Identity{}, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return service.Identity{}, err
	}

	email, _ := c.Locals("email").(string)
	role, _ := c.Locals("role").(string)

	return service.Identity{ID: userID, Email: email, Role: role}, nil
}

func toExpenseResponse(e *models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:             e.ID.String(),
		UserID:         e.UserID.String(),
		Amount:         e.Amount,
		Description:    e.Description,
		Category:       string(e.Category),
		Currency:       e.Currency,
		CurrencySymbol: e.CurrencySymbol,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

// errorMessage keeps client-facing text fixed per failure class; the real
// error stays in the log.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrClassifier):
		return "Failed to categorize expense"
	case errors.Is(err, service.ErrInvalidCategory):
		return "Unknown category"
	case errors.Is(err, service.ErrInvalidUserID):
		return "Invalid user id"
	default:
		return "Store operation failed"
	}
}
