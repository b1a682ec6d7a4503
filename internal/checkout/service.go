package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthybite-ma/storefront-backend/internal/cart"
	"github.com/healthybite-ma/storefront-backend/pkg/config"
	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
)

type cartCheckouter interface {
	Checkout(ctx context.Context, sessionID string) (cart.State, error)
}

type programLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Program, error)
}

// HandOffDTO carries the rendered order message and the wa.me deep link.
type HandOffDTO struct {
	Message string `json:"message"`
	Link    string `json:"link"`
	Count   int    `json:"count,omitempty"`
	Total   int    `json:"total,omitempty"`
}

// Service renders checkout hand-offs. The cart variant drains the session
// cart; the program variant only names the program.
type Service interface {
	CartHandOff(ctx context.Context, sessionID string) (*HandOffDTO, error)
	ProgramHandOff(ctx context.Context, programID uuid.UUID) (*HandOffDTO, error)
}

type service struct {
	carts    cartCheckouter
	programs programLoader
	phone    string
}

// NewService builds the checkout service.
func NewService(carts cartCheckouter, programs programLoader, cfg config.WhatsAppConfig) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if programs == nil {
		return nil, fmt.Errorf("program loader required")
	}
	if cfg.PhoneNumber == "" {
		return nil, fmt.Errorf("whatsapp phone number required")
	}
	return &service{
		carts:    carts,
		programs: programs,
		phone:    cfg.PhoneNumber,
	}, nil
}

// CartHandOff snapshots the cart, renders the order message, and clears the
// cart. The clear happens only once the snapshot is secured.
func (s *service) CartHandOff(ctx context.Context, sessionID string) (*HandOffDTO, error) {
	state, err := s.carts.Checkout(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	message := OrderMessage(state)
	return &HandOffDTO{
		Message: message,
		Link:    Link(s.phone, message),
		Count:   state.Count(),
		Total:   state.Total(),
	}, nil
}

// ProgramHandOff renders the one-line program order message.
func (s *service) ProgramHandOff(ctx context.Context, programID uuid.UUID) (*HandOffDTO, error) {
	if programID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "program id is required")
	}
	program, err := s.programs.FindByID(ctx, programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "program not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading program")
	}
	message := ProgramOrderMessage(program.Name)
	return &HandOffDTO{
		Message: message,
		Link:    Link(s.phone, message),
	}, nil
}
