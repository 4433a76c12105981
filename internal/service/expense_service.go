package service

import (
	"context"
	"errors"

	"expenso/internal/dto"
	"expenso/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrClassifier      = errors.New("classification failed")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidUserID   = errors.New("invalid user id")
)

// Identity is the authenticated caller, decoded from the bearer token.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  string
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// ExpenseStore is the slice of the expense repository the workflow needs.
type ExpenseStore interface {
	Create(ctx context.Context, expense *models.Expense) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Expense, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)
	SumByCategory(ctx context.Context, userID uuid.UUID) ([]models.CategoryTotal, error)
}

// Classifier assigns a free-text label to an expense description.
type Classifier interface {
	Classify(ctx context.Context, description string) (string, error)
}

type ExpenseService struct {
	expenseRepo ExpenseStore
	classifier  Classifier
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo ExpenseStore, classifier Classifier, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		classifier:  classifier,
		logger:      logger,
	}
}

// Submit classifies the description and persists the expense under the
// caller's identity. The store write waits for the classifier: the category
// is part of the row. A classifier failure fails the whole request, there is
// no retry and no fallback label.
func (s *ExpenseService) Submit(ctx context.Context, identity Identity, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	label, err := s.classifier.Classify(ctx, req.Description)
	if err != nil {
		s.logger.Error("Classifier call failed", zap.Error(err))
		return nil, ErrClassifier
	}

	expense := &models.Expense{
		UserID:         identity.ID,
		Amount:         req.Amount,
		Description:    req.Description,
		Category:       models.ParseCategory(label),
		Currency:       models.DefaultCurrency,
		CurrencySymbol: models.DefaultCurrencySymbol,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		s.logger.Error("Failed to persist expense", zap.Error(err))
		return nil, ErrStore
	}

	return expense, nil
}

// SubmitManual persists an expense without consulting the classifier. The
// category defaults to Other and must otherwise be one of the known labels.
// Writing under a foreign user id requires the admin role; for everyone else
// the override is ignored and the row lands under the caller's own identity.
func (s *ExpenseService) SubmitManual(ctx context.Context, identity Identity, req *dto.ManualExpenseRequest) (*models.Expense, error) {
	category := models.CategoryOther
	if req.Category != "" {
		var ok bool
		if category, ok = models.LookupCategory(req.Category); !ok {
			return nil, ErrInvalidCategory
		}
	}

	userID := identity.ID
	if req.UserID != "" && identity.IsAdmin() {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, ErrInvalidUserID
		}
		userID = id
	}

	expense := &models.Expense{
		UserID:         userID,
		Amount:         req.Amount,
		Description:    req.Description,
		Category:       category,
		Currency:       models.DefaultCurrency,
		CurrencySymbol: models.DefaultCurrencySymbol,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		s.logger.Error("Failed to persist expense", zap.Error(err))
		return nil, ErrStore
	}

	return expense, nil
}

// List returns the caller's expenses, newest first. No expenses is an empty
// slice, not an error.
func (s *ExpenseService) List(ctx context.Context, identity Identity) ([]*models.Expense, error) {
	expenses, err := s.expenseRepo.ListByUser(ctx, identity.ID)
	if err != nil {
		s.logger.Error("Failed to list expenses", zap.Error(err))
		return nil, ErrStore
	}
	return expenses, nil
}

// Remove deletes the expense when it exists and belongs to the caller.
// A miss (unknown id, or somebody else's expense) is indistinguishable from
// success: the delete is scoped by owner and treated as idempotent.
func (s *ExpenseService) Remove(ctx context.Context, identity Identity, expenseID uuid.UUID) error {
	affected, err := s.expenseRepo.Delete(ctx, expenseID, identity.ID)
	if err != nil {
		s.logger.Error("Failed to delete expense", zap.Error(err))
		return ErrStore
	}
	if affected == 0 {
		s.logger.Debug("Delete matched no rows",
			zap.String("expense_id", expenseID.String()),
			zap.String("user_id", identity.ID.String()),
		)
	}
	return nil
}

// Summary returns the caller's spending totals grouped by category.
func (s *ExpenseService) Summary(ctx context.Context, identity Identity) ([]models.CategoryTotal, error) {
	totals, err := s.expenseRepo.SumByCategory(ctx, identity.ID)
	if err != nil {
		s.logger.Error("Failed to summarize expenses", zap.Error(err))
		return nil, ErrStore
	}
	return totals, nil
}
