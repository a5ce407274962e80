package request

import (
	"errors"
	"strings"
	"time"

	"mecanica_xpto_quotes/internal/domain/entities"
	"mecanica_xpto_quotes/internal/usecase"
)

var ErrInvalidTTL = errors.New("invalid ttl_minutes")

// maxTTLMinutes bounds how long a session may wait for suppliers (one day).
const maxTTLMinutes = 24 * 60

type SupplierRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// StartQuoteRequest opens a quote session for one part of an order. Without
// suppliers, the active supplier directory is used.
type StartQuoteRequest struct {
	OrderID         string            `json:"order_id" binding:"required"`
	PartDescription string            `json:"part_description" binding:"required"`
	Suppliers       []SupplierRequest `json:"suppliers"`
	TTLMinutes      int               `json:"ttl_minutes"`
}

func (r StartQuoteRequest) ToCommand() (usecase.StartQuoteCommand, error) {
	if r.TTLMinutes < 0 || r.TTLMinutes > maxTTLMinutes {
		return usecase.StartQuoteCommand{}, ErrInvalidTTL
	}
	suppliers := make([]entities.SupplierTarget, 0, len(r.Suppliers))
	for _, s := range r.Suppliers {
		suppliers = append(suppliers, entities.SupplierTarget{ID: s.ID, Name: s.Name, Phone: s.Phone})
	}
	return usecase.StartQuoteCommand{
		OrderID:         strings.TrimSpace(r.OrderID),
		PartDescription: strings.TrimSpace(r.PartDescription),
		Suppliers:       suppliers,
		TTL:             time.Duration(r.TTLMinutes) * time.Minute,
	}, nil
}

type OfferRequest struct {
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

// ApproveQuoteRequest picks the winner. ChosenOffer is required only when the
// supplier's reply lists more than one offer.
type ApproveQuoteRequest struct {
	SupplierID  string        `json:"supplier_id" binding:"required"`
	ChosenOffer *OfferRequest `json:"chosen_offer"`
}

func (r ApproveQuoteRequest) ResolveOffer() *entities.PriceOffer {
	if r.ChosenOffer == nil {
		return nil
	}
	return &entities.PriceOffer{
		Description: strings.TrimSpace(r.ChosenOffer.Description),
		Price:       r.ChosenOffer.Price,
	}
}

// SupplierReplyRequest is the inbound webhook payload of a supplier message.
type SupplierReplyRequest struct {
	SupplierID string     `json:"supplier_id" binding:"required"`
	Message    string     `json:"message" binding:"required"`
	ReceivedAt *time.Time `json:"received_at"`
}

func (r SupplierReplyRequest) ResolveReceivedAt() time.Time {
	if r.ReceivedAt == nil {
		return time.Time{}
	}
	return *r.ReceivedAt
}
