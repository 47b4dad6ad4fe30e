package service

import (
	"context"

	"camerashop-be/internal/models"
	"camerashop-be/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{repo: repo, log: log}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	lines, err := s.repo.Carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &CartView{Items: lines, Subtotal: decimal.Zero}
	for _, l := range lines {
		view.Subtotal = view.Subtotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		view.ItemCount += l.Quantity
	}
	return view, nil
}

// AddItem checks stock against the quantity already in the cart plus qty.
func (s *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, qty int) (*CartView, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if qty < 1 {
		return nil, ErrQuantityInvalid
	}

	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		p, err := tx.Products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil || !p.IsActive {
			return ErrProductNotFound
		}
		existing, err := tx.Carts.GetLine(ctx, userID, productID)
		if err != nil {
			return err
		}
		total := qty
		if existing != nil {
			total += existing.Quantity
		}
		if total > p.StockQuantity {
			return &InsufficientStockError{ProductID: p.ID, ProductName: p.Name, Available: p.StockQuantity, Requested: total}
		}
		return tx.Carts.AddQuantity(ctx, userID, productID, qty, p.Price)
	})
	if err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) ownedLine(ctx context.Context, repo *repository.Repository, userID, itemID uuid.UUID) (*models.CartItem, error) {
	line, err := repo.Carts.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, ErrCartItemNotFound
	}
	if line.UserID != userID {
		return nil, ErrForbidden
	}
	return line, nil
}

// UpdateItem sets the line quantity; zero removes the line.
func (s *cartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, qty int) (*CartView, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if qty < 0 {
		return nil, ErrQuantityInvalid
	}

	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		line, err := s.ownedLine(ctx, tx, userID, itemID)
		if err != nil {
			return err
		}
		if qty == 0 {
			return tx.Carts.Delete(ctx, itemID)
		}
		p := line.Product
		if p == nil {
			return ErrProductNotFound
		}
		if qty > p.StockQuantity {
			return &InsufficientStockError{ProductID: p.ID, ProductName: p.Name, Available: p.StockQuantity, Requested: qty}
		}
		return tx.Carts.SetQuantity(ctx, itemID, qty, p.Price)
	})
	if err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartView, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if _, err := s.ownedLine(ctx, s.repo, userID, itemID); err != nil {
		return nil, err
	}
	if err := s.repo.Carts.Delete(ctx, itemID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	n, err := s.repo.Carts.ClearByUser(ctx, userID)
	if err != nil {
		return err
	}
	s.log.Debug("cart cleared", zap.String("user_id", userID.String()), zap.Int64("lines", n))
	return nil
}
