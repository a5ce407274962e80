package response

import (
	"time"

	"mecanica_xpto_quotes/internal/domain/entities"
	"mecanica_xpto_quotes/internal/domain/quoting"
)

type SupplierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type OfferResponse struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type QuoteSessionResponse struct {
	ID               string             `json:"id"`
	OrderID          string             `json:"order_id"`
	PartDescription  string             `json:"part_description"`
	Status           string             `json:"status"`
	ExpiresAt        time.Time          `json:"expires_at"`
	WinnerSupplierID string             `json:"winner_supplier_id,omitempty"`
	WinnerOffer      *OfferResponse     `json:"winner_offer,omitempty"`
	Suppliers        []SupplierResponse `json:"suppliers"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromQuoteSession(s entities.QuoteSession) QuoteSessionResponse {
	suppliers := make([]SupplierResponse, 0, len(s.Suppliers))
	for _, t := range s.Suppliers {
		suppliers = append(suppliers, fromTarget(t))
	}
	return QuoteSessionResponse{
		ID:               s.ID,
		OrderID:          s.OrderID,
		PartDescription:  s.PartDescription,
		Status:           string(s.Status),
		ExpiresAt:        s.ExpiresAt,
		WinnerSupplierID: s.WinnerSupplierID,
		WinnerOffer:      fromOfferPtr(s.WinnerOffer),
		Suppliers:        suppliers,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func FromQuoteSessions(in []entities.QuoteSession) []QuoteSessionResponse {
	out := make([]QuoteSessionResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromQuoteSession(s))
	}
	return out
}

func FromOffers(in []entities.PriceOffer) []OfferResponse {
	out := make([]OfferResponse, 0, len(in))
	for _, o := range in {
		out = append(out, OfferResponse{Description: o.Description, Price: o.Price})
	}
	return out
}

// ReplyEntryResponse is one supplier line of a group.
type ReplyEntryResponse struct {
	Supplier   SupplierResponse `json:"supplier"`
	RawMessage string           `json:"raw_message,omitempty"`
	ReceivedAt *time.Time       `json:"received_at,omitempty"`
}

type PricedEntryResponse struct {
	ReplyEntryResponse
	Price  float64         `json:"price"`
	IsBest bool            `json:"is_best"`
	Offers []OfferResponse `json:"offers"`
}

type GroupsResponse struct {
	Priced       []PricedEntryResponse `json:"priced"`
	NoStock      []ReplyEntryResponse  `json:"no_stock"`
	Acknowledged []ReplyEntryResponse  `json:"acknowledged"`
	Waiting      []ReplyEntryResponse  `json:"waiting"`
}

// QuoteProjectionResponse is the live view of a session the operator screen
// renders.
type QuoteProjectionResponse struct {
	SessionID        string         `json:"session_id"`
	OrderID          string         `json:"order_id"`
	PartDescription  string         `json:"part_description"`
	Status           string         `json:"status"`
	ExpiresInMinutes int            `json:"expires_in_minutes"`
	Groups           GroupsResponse `json:"groups"`
	BestPrice        *float64       `json:"best_price"`
	IsCompleted      bool           `json:"is_completed"`
	WinnerSupplierID string         `json:"winner_supplier_id,omitempty"`
	WinnerOffer      *OfferResponse `json:"winner_offer,omitempty"`
	Stale            bool           `json:"stale"`
	FetchedAt        time.Time      `json:"fetched_at"`
}

func FromProjection(p quoting.Projection) QuoteProjectionResponse {
	g := GroupsResponse{
		Priced:       make([]PricedEntryResponse, 0, len(p.Groups.Priced)),
		NoStock:      fromReplies(p.Groups.NoStock),
		Acknowledged: fromReplies(p.Groups.Acknowledged),
		Waiting:      fromReplies(p.Groups.Waiting),
	}
	for _, e := range p.Groups.Priced {
		g.Priced = append(g.Priced, PricedEntryResponse{
			ReplyEntryResponse: fromReply(e.Response),
			Price:              e.Price,
			IsBest:             e.IsBest,
			Offers:             FromOffers(e.Offers),
		})
	}
	return QuoteProjectionResponse{
		SessionID:        p.SessionID,
		OrderID:          p.OrderID,
		PartDescription:  p.PartDescription,
		Status:           string(p.Status),
		ExpiresInMinutes: p.ExpiresInMinutes,
		Groups:           g,
		BestPrice:        p.BestPrice,
		IsCompleted:      p.IsCompleted,
		WinnerSupplierID: p.WinnerSupplierID,
		WinnerOffer:      fromOfferPtr(p.WinnerOffer),
		Stale:            p.Stale,
		FetchedAt:        p.FetchedAt,
	}
}

type SupplierReplyResponse struct {
	SessionID  string     `json:"session_id"`
	SupplierID string     `json:"supplier_id"`
	Kind       string     `json:"kind"`
	Price      *float64   `json:"price,omitempty"`
	ReceivedAt *time.Time `json:"received_at,omitempty"`
}

func FromSupplierReply(r entities.SupplierResponse) SupplierReplyResponse {
	out := SupplierReplyResponse{
		SessionID:  r.SessionID,
		SupplierID: r.Supplier.ID,
		Kind:       string(r.Reply.Kind),
		ReceivedAt: r.ReceivedAt,
	}
	if r.Reply.Kind == entities.ReplyPriced {
		price := r.Reply.Amount
		out.Price = &price
	}
	return out
}

func fromReplies(in []entities.SupplierResponse) []ReplyEntryResponse {
	out := make([]ReplyEntryResponse, 0, len(in))
	for _, r := range in {
		out = append(out, fromReply(r))
	}
	return out
}

func fromReply(r entities.SupplierResponse) ReplyEntryResponse {
	return ReplyEntryResponse{
		Supplier:   fromTarget(r.Supplier),
		RawMessage: r.RawMessage,
		ReceivedAt: r.ReceivedAt,
	}
}

func fromTarget(t entities.SupplierTarget) SupplierResponse {
	return SupplierResponse{ID: t.ID, Name: t.Name, Phone: t.Phone}
}

func fromOfferPtr(o *entities.PriceOffer) *OfferResponse {
	if o == nil {
		return nil
	}
	return &OfferResponse{Description: o.Description, Price: o.Price}
}
