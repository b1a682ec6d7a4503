package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthybite-ma/storefront-backend/pkg/config"
	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
)

type productLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type snapshotter interface {
	Load(ctx context.Context, sessionID string) (State, error)
	Save(ctx context.Context, sessionID string, state State) error
	Delete(ctx context.Context, sessionID string) error
}

// Service exposes the session cart operations. Every mutation loads the
// persisted snapshot, applies the change, and writes the snapshot back.
type Service interface {
	Get(ctx context.Context, sessionID string) (*CartDTO, error)
	AddItem(ctx context.Context, sessionID string, productID uuid.UUID) (*CartDTO, error)
	SetQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*CartDTO, error)
	RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*CartDTO, error)
	Clear(ctx context.Context, sessionID string) error
	Checkout(ctx context.Context, sessionID string) (State, error)
}

type service struct {
	snapshots  snapshotter
	products   productLoader
	openDrawer bool
}

// NewService builds the cart service.
func NewService(snapshots snapshotter, products productLoader, cfg config.CartConfig) (Service, error) {
	if snapshots == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{
		snapshots:  snapshots,
		products:   products,
		openDrawer: cfg.OpenDrawer,
	}, nil
}

// NewSessionToken issues an opaque cart session token.
func NewSessionToken() string {
	return uuid.NewString()
}

// Get returns the current cart for the session. An unknown session reads as
// an empty cart.
func (s *service) Get(ctx context.Context, sessionID string) (*CartDTO, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	state, err := s.snapshots.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toCartDTO(state), nil
}

// AddItem merges one unit of the product into the cart. The stored line
// carries a snapshot of the product's name and price at add time.
func (s *service) AddItem(ctx context.Context, sessionID string, productID uuid.UUID) (*CartDTO, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}

	state, err := s.snapshots.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Add(LineProduct{
		ID:    product.ID,
		Slug:  product.Slug,
		Name:  product.Name,
		Price: product.Price,
		Image: product.Image,
	})
	if s.openDrawer {
		state.OpenDrawer()
	}

	if err := s.snapshots.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return toCartDTO(state), nil
}

// SetQuantity pins the line's quantity; zero or less removes the line.
func (s *service) SetQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*CartDTO, error) {
	return s.mutate(ctx, sessionID, func(state *State) {
		state.SetQuantity(productID, quantity)
	})
}

// RemoveItem drops the line for the product. Absent products are a no-op.
func (s *service) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*CartDTO, error) {
	return s.mutate(ctx, sessionID, func(state *State) {
		state.Remove(productID)
	})
}

// Clear empties the cart and drops the snapshot.
func (s *service) Clear(ctx context.Context, sessionID string) error {
	if err := requireSession(sessionID); err != nil {
		return err
	}
	return s.snapshots.Delete(ctx, sessionID)
}

// Checkout returns the current lines and totals for the hand-off and then
// clears the cart. An empty cart cannot be checked out.
func (s *service) Checkout(ctx context.Context, sessionID string) (State, error) {
	if err := requireSession(sessionID); err != nil {
		return State{}, err
	}
	state, err := s.snapshots.Load(ctx, sessionID)
	if err != nil {
		return State{}, err
	}
	if state.IsEmpty() {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	if err := s.snapshots.Delete(ctx, sessionID); err != nil {
		return State{}, err
	}
	return state, nil
}

func (s *service) mutate(ctx context.Context, sessionID string, fn func(*State)) (*CartDTO, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	state, err := s.snapshots.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fn(&state)
	if err := s.snapshots.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return toCartDTO(state), nil
}

func requireSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}
	return nil
}
