package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/bunkbites/stallbook/internal/domain/models"
	"github.com/bunkbites/stallbook/internal/repository/mongodb"
)

// ErrNotFound indicates the targeted record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the persistence operations required by the ledger.
type Store interface {
	ListDishes(ctx context.Context) ([]models.Dish, error)
	InsertDish(ctx context.Context, dish models.Dish) (models.Dish, error)
	UpdateDish(ctx context.Context, id string, patch models.DishPatch) (models.Dish, error)
	DeleteDish(ctx context.Context, id string) error

	ListSales(ctx context.Context) ([]models.Sale, error)
	InsertSale(ctx context.Context, sale models.Sale) (models.Sale, error)

	ListInvestors(ctx context.Context) ([]models.Investor, error)
	InsertInvestor(ctx context.Context, investor models.Investor) (models.Investor, error)
	UpdateInvestor(ctx context.Context, id string, patch models.InvestorPatch) (models.Investor, error)
	DeleteInvestor(ctx context.Context, id string) error

	ListExpenses(ctx context.Context) ([]models.Expense, error)
	InsertExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// Sequencer provides the atomic order-number counter. NextOrderSeq hands out
// the next number; EnsureOrderSeqAtLeast lets explicitly numbered sales pull
// the sequence forward.
type Sequencer interface {
	NextOrderSeq(ctx context.Context) (int64, error)
	EnsureOrderSeqAtLeast(ctx context.Context, n int64) error
}

// Service implements the four CRUD resources of the stall ledger.
type Service struct {
	store  Store
	seq    Sequencer
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a ledger service instance.
func NewService(store Store, seq Sequencer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		seq:    seq,
		logger: logger,
		now:    time.Now,
	}
}

// ListDishes returns the full menu.
func (s *Service) ListDishes(ctx context.Context) ([]models.Dish, error) {
	return s.store.ListDishes(ctx)
}

// CreateDish persists a new menu item, defaulting the category.
func (s *Service) CreateDish(ctx context.Context, in models.NewDishInput) (models.Dish, error) {
	dish := models.Dish{
		Name:      in.Name,
		Price:     in.Price,
		Category:  in.Category,
		CreatedAt: s.now(),
	}
	if dish.Category == "" {
		dish.Category = models.DefaultDishCategory
	}

	created, err := s.store.InsertDish(ctx, dish)
	if err != nil {
		return models.Dish{}, err
	}
	s.logger.Info("dish created", zap.String("id", created.ID.Hex()), zap.String("name", created.Name))
	return created, nil
}

// UpdateDish merges the provided fields into an existing dish.
func (s *Service) UpdateDish(ctx context.Context, id string, patch models.DishPatch) (models.Dish, error) {
	updated, err := s.store.UpdateDish(ctx, id, patch)
	if errors.Is(err, mongodb.ErrNotFound) {
		return models.Dish{}, ErrNotFound
	}
	return updated, err
}

// DeleteDish removes a dish. Deleting an unknown id succeeds; historical
// sales keep their item snapshots either way.
func (s *Service) DeleteDish(ctx context.Context, id string) error {
	return s.store.DeleteDish(ctx, id)
}

// ListSales returns every sale, newest first.
func (s *Service) ListSales(ctx context.Context) ([]models.Sale, error) {
	return s.store.ListSales(ctx)
}

// CreateSale records a sale. When no order number is supplied the atomic
// counter assigns the next one; an explicit numeric order number pulls the
// counter forward so later auto-assigned numbers continue after it.
func (s *Service) CreateSale(ctx context.Context, in models.NewSaleInput) (models.Sale, error) {
	sale := models.Sale{
		Date:        in.Date,
		Items:       in.Items,
		TotalAmount: in.TotalAmount,
		OrderNo:     in.OrderNo,
		Timestamp:   s.now(),
	}
	if sale.Items == nil {
		sale.Items = []models.SaleItem{}
	}

	if sale.OrderNo == "" {
		next, err := s.seq.NextOrderSeq(ctx)
		if err != nil {
			return models.Sale{}, fmt.Errorf("assign order number: %w", err)
		}
		sale.OrderNo = strconv.FormatInt(next, 10)
	} else if n, err := strconv.ParseInt(sale.OrderNo, 10, 64); err == nil {
		// Non-numeric order numbers are stored verbatim and leave the
		// sequence untouched.
		if err := s.seq.EnsureOrderSeqAtLeast(ctx, n); err != nil {
			return models.Sale{}, fmt.Errorf("advance order counter: %w", err)
		}
	}

	created, err := s.store.InsertSale(ctx, sale)
	if err != nil {
		return models.Sale{}, err
	}
	s.logger.Info("sale recorded",
		zap.String("id", created.ID.Hex()),
		zap.String("order_no", created.OrderNo),
		zap.Float64("total", created.TotalAmount))
	return created, nil
}

// ListInvestors returns every capital contribution.
func (s *Service) ListInvestors(ctx context.Context) ([]models.Investor, error) {
	return s.store.ListInvestors(ctx)
}

// CreateInvestor records a capital contribution, defaulting the date to now.
func (s *Service) CreateInvestor(ctx context.Context, in models.NewInvestorInput) (models.Investor, error) {
	investor := models.Investor{
		Name:   in.Name,
		Amount: in.Amount,
		Date:   in.Date,
	}
	if investor.Date.IsZero() {
		investor.Date = s.now()
	}

	created, err := s.store.InsertInvestor(ctx, investor)
	if err != nil {
		return models.Investor{}, err
	}
	s.logger.Info("investor recorded", zap.String("id", created.ID.Hex()), zap.String("name", created.Name))
	return created, nil
}

// UpdateInvestor merges the provided fields into an existing contribution.
func (s *Service) UpdateInvestor(ctx context.Context, id string, patch models.InvestorPatch) (models.Investor, error) {
	updated, err := s.store.UpdateInvestor(ctx, id, patch)
	if errors.Is(err, mongodb.ErrNotFound) {
		return models.Investor{}, ErrNotFound
	}
	return updated, err
}

// DeleteInvestor removes a contribution. Deleting an unknown id succeeds.
func (s *Service) DeleteInvestor(ctx context.Context, id string) error {
	return s.store.DeleteInvestor(ctx, id)
}

// ListExpenses returns every expense, newest first.
func (s *Service) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.store.ListExpenses(ctx)
}

// CreateExpense records an operational cost, defaulting the category.
func (s *Service) CreateExpense(ctx context.Context, in models.NewExpenseInput) (models.Expense, error) {
	expense := models.Expense{
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        in.Date,
		Timestamp:   s.now(),
	}
	if expense.Category == "" {
		expense.Category = models.DefaultExpenseCategory
	}

	created, err := s.store.InsertExpense(ctx, expense)
	if err != nil {
		return models.Expense{}, err
	}
	s.logger.Info("expense recorded", zap.String("id", created.ID.Hex()), zap.Float64("amount", created.Amount))
	return created, nil
}

// DeleteExpense removes an expense. Deleting an unknown id succeeds.
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	return s.store.DeleteExpense(ctx, id)
}
