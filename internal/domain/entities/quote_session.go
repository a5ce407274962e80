package entities

import (
	"errors"
	"math"
	"time"
)

// QuoteStatus represents the lifecycle of a supplier quote session (cotação).
//
// Domain notes:
//   - PENDING is the only non-terminal status.
//   - EXPIRED is usually observed, not persisted: a PENDING session read after
//     ExpiresAt is presented as EXPIRED (see EffectiveStatus).
//   - A terminal session is never resumed; a new session is started instead.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "PENDING"
	QuoteStatusCompleted QuoteStatus = "COMPLETED"
	QuoteStatusCancelled QuoteStatus = "CANCELLED"
	QuoteStatusExpired   QuoteStatus = "EXPIRED"
)

var ErrWinnerStatusMismatch = errors.New("winner must be set iff session is completed")

// IsTerminal reports whether no automatic transition can leave the status.
func (s QuoteStatus) IsTerminal() bool {
	switch s {
	case QuoteStatusCompleted, QuoteStatusCancelled, QuoteStatusExpired:
		return true
	}
	return false
}

func (s QuoteStatus) IsValid() bool {
	return s == QuoteStatusPending || s.IsTerminal()
}

// QuoteSession is one outstanding multi-supplier price request tied to one
// order/part.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Suppliers is fixed at start; a session cannot be retargeted.
type QuoteSession struct {
	ID               string           `json:"id"`
	OrderID          string           `json:"order_id"`
	PartDescription  string           `json:"part_description"`
	Status           QuoteStatus      `json:"status"`
	ExpiresAt        time.Time        `json:"expires_at"`
	WinnerSupplierID string           `json:"winner_supplier_id,omitempty"`
	WinnerOffer      *PriceOffer      `json:"winner_offer,omitempty"`
	Suppliers        []SupplierTarget `json:"suppliers"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// EffectiveStatus is the status callers must act on: a PENDING session past
// its expiry reads as EXPIRED even if the store was never updated.
func (s QuoteSession) EffectiveStatus(now time.Time) QuoteStatus {
	if s.Status == QuoteStatusPending && !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt) {
		return QuoteStatusExpired
	}
	return s.Status
}

func (s QuoteSession) IsTerminal(now time.Time) bool {
	return s.EffectiveStatus(now).IsTerminal()
}

// CanApprove reports whether a winner may be (re)committed. Completed and
// expired sessions accept a new winner so the operator can switch after the
// fact; cancelled sessions never do.
func (s QuoteSession) CanApprove(now time.Time) bool {
	return s.EffectiveStatus(now) != QuoteStatusCancelled
}

// ExpiresInMinutes rounds up, and is 0 once the session is no longer pending.
func (s QuoteSession) ExpiresInMinutes(now time.Time) int {
	if s.EffectiveStatus(now) != QuoteStatusPending || s.ExpiresAt.IsZero() {
		return 0
	}
	return int(math.Ceil(s.ExpiresAt.Sub(now).Minutes()))
}

func (s QuoteSession) HasSupplier(supplierID string) bool {
	for _, t := range s.Suppliers {
		if t.ID == supplierID {
			return true
		}
	}
	return false
}

// Validate checks the winner/status invariant.
func (s QuoteSession) Validate() error {
	if (s.WinnerSupplierID != "") != (s.Status == QuoteStatusCompleted) {
		return ErrWinnerStatusMismatch
	}
	return nil
}
