package quoting

import (
	"sort"
	"time"

	"mecanica_xpto_quotes/internal/domain/entities"
)

// Category is the UI bucket of a supplier response.
type Category string

const (
	CategoryWaiting      Category = "WAITING"
	CategoryPriced       Category = "PRICED"
	CategoryNoStock      Category = "NO_STOCK"
	CategoryAcknowledged Category = "ACKNOWLEDGED"
)

// Classify puts a response in exactly one category. The reply variant carries
// the decision; NotResponded is checked first so a stale price on an empty
// slot never leaks into Priced.
func Classify(r entities.SupplierResponse) Category {
	switch r.Reply.Kind {
	case entities.ReplyNotResponded, "":
		return CategoryWaiting
	case entities.ReplyPriced:
		if r.Reply.Amount > 0 {
			return CategoryPriced
		}
		return CategoryAcknowledged
	case entities.ReplyNoStock:
		return CategoryNoStock
	default:
		return CategoryAcknowledged
	}
}

type PricedEntry struct {
	Response entities.SupplierResponse
	Price    float64
	IsBest   bool
	Offers   []entities.PriceOffer
}

// Groups partitions a session's responses. Every response lands in exactly
// one slice.
type Groups struct {
	Priced       []PricedEntry
	NoStock      []entities.SupplierResponse
	Acknowledged []entities.SupplierResponse
	Waiting      []entities.SupplierResponse
}

func (g Groups) Len() int {
	return len(g.Priced) + len(g.NoStock) + len(g.Acknowledged) + len(g.Waiting)
}

// BestPrice is the lowest priced offer, or nil when nobody sent a usable price.
func (g Groups) BestPrice() *float64 {
	if len(g.Priced) == 0 {
		return nil
	}
	best := g.Priced[0].Price
	for _, e := range g.Priced[1:] {
		if e.Price < best {
			best = e.Price
		}
	}
	return &best
}

// GroupResponses classifies every response. The priced group is sorted by
// price ascending, then earliest reply, then supplier id; every entry whose
// price equals the best price exactly is flagged.
func GroupResponses(responses []entities.SupplierResponse) Groups {
	g := Groups{
		Priced:       make([]PricedEntry, 0),
		NoStock:      make([]entities.SupplierResponse, 0),
		Acknowledged: make([]entities.SupplierResponse, 0),
		Waiting:      make([]entities.SupplierResponse, 0),
	}

	for _, r := range responses {
		switch Classify(r) {
		case CategoryPriced:
			g.Priced = append(g.Priced, PricedEntry{
				Response: r,
				Price:    r.Reply.Amount,
				Offers:   ParseOffers(r.RawMessage),
			})
		case CategoryNoStock:
			g.NoStock = append(g.NoStock, r)
		case CategoryAcknowledged:
			g.Acknowledged = append(g.Acknowledged, r)
		default:
			g.Waiting = append(g.Waiting, r)
		}
	}

	sort.SliceStable(g.Priced, func(i, j int) bool {
		a, b := g.Priced[i], g.Priced[j]
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		if !sameTime(a.Response.ReceivedAt, b.Response.ReceivedAt) {
			return receivedBefore(a.Response.ReceivedAt, b.Response.ReceivedAt)
		}
		return a.Response.Supplier.ID < b.Response.Supplier.ID
	})

	if best := g.BestPrice(); best != nil {
		for i := range g.Priced {
			g.Priced[i].IsBest = g.Priced[i].Price == *best
		}
	}
	return g
}

// receivedBefore orders unknown timestamps last.
func receivedBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
