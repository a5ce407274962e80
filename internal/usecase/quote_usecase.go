package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mecanica_xpto_quotes/internal/domain/entities"
	"mecanica_xpto_quotes/internal/domain/quoting"
	"mecanica_xpto_quotes/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderID            = errors.New("invalid order_id")
	ErrInvalidPartDescription    = errors.New("invalid part description")
	ErrInvalidSessionID          = errors.New("invalid session id")
	ErrInvalidSupplierID         = errors.New("invalid supplier id")
	ErrInvalidReplyMessage       = errors.New("invalid reply message")
	ErrNoSuppliers               = errors.New("no suppliers to quote")
	ErrTooManySuppliers          = errors.New("too many suppliers for one quote session")
	ErrSessionNotFound           = errors.New("quote session not found")
	ErrSessionAlreadyActive      = errors.New("quote session already pending for this order")
	ErrSessionCancelled          = errors.New("quote session cancelled")
	ErrSupplierNotInSession      = errors.New("supplier not part of quote session")
	ErrSupplierNotResponded      = errors.New("supplier has not responded")
	ErrAmbiguousOfferNotResolved = errors.New("reply has several offers and none was chosen")
	ErrOfferNotInReply           = errors.New("chosen offer not found in supplier reply")
	ErrCommitFailed              = errors.New("quote approval commit failed")
)

const (
	DefaultSessionTTL = 60 * time.Minute
	// MaxSuppliersPerSession keeps the session and its slots within one store transaction.
	MaxSuppliersPerSession = 99
)

// AmbiguousOfferError carries the parsed offers the caller must choose from.
type AmbiguousOfferError struct {
	SupplierID string
	Offers     []entities.PriceOffer
}

func (e *AmbiguousOfferError) Error() string {
	return fmt.Sprintf("%s: supplier_id=%s offers=%d", ErrAmbiguousOfferNotResolved, e.SupplierID, len(e.Offers))
}

func (e *AmbiguousOfferError) Unwrap() error {
	return ErrAmbiguousOfferNotResolved
}

// StartQuoteCommand is the input of Start. Suppliers and TTL are optional.
type StartQuoteCommand struct {
	OrderID         string
	PartDescription string
	Suppliers       []entities.SupplierTarget
	TTL             time.Duration
}

// IQuoteUseCase exposes the supplier quote workflow.
//
// Operations:
//   - start / cancel / history of quote sessions of an order
//   - Snapshot: one authoritative read used by the reconciliation loop
//   - Approve: commit a winner (with offer disambiguation)
//   - RecordReply: store a supplier's free-text reply in its slot

type IQuoteUseCase interface {
	Start(ctx context.Context, cmd StartQuoteCommand) (entities.QuoteSession, error)
	GetCurrentByOrderID(ctx context.Context, orderID string) (entities.QuoteSession, error)
	History(ctx context.Context, orderID string) ([]entities.QuoteSession, error)
	Snapshot(ctx context.Context, sessionID string) (quoting.Snapshot, error)
	Offers(ctx context.Context, sessionID, supplierID string) ([]entities.PriceOffer, error)
	Approve(ctx context.Context, sessionID, supplierID string, chosen *entities.PriceOffer) (entities.QuoteSession, error)
	Cancel(ctx context.Context, sessionID string) (entities.QuoteSession, error)
	RecordReply(ctx context.Context, sessionID, supplierID, message string, receivedAt time.Time) (entities.SupplierResponse, error)
}

type QuoteUseCase struct {
	sessions   interfaces.IQuoteSessionRepository
	responses  interfaces.ISupplierResponseRepository
	suppliers  interfaces.ISupplierRepository
	defaultTTL time.Duration

	now func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	sessions interfaces.IQuoteSessionRepository,
	responses interfaces.ISupplierResponseRepository,
	suppliers interfaces.ISupplierRepository,
	defaultTTL time.Duration,
) *QuoteUseCase {
	if defaultTTL <= 0 {
		defaultTTL = DefaultSessionTTL
	}
	return &QuoteUseCase{
		sessions:   sessions,
		responses:  responses,
		suppliers:  suppliers,
		defaultTTL: defaultTTL,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (u *QuoteUseCase) Start(ctx context.Context, cmd StartQuoteCommand) (entities.QuoteSession, error) {
	orderID := strings.TrimSpace(cmd.OrderID)
	if orderID == "" {
		return entities.QuoteSession{}, ErrInvalidOrderID
	}
	part := strings.TrimSpace(cmd.PartDescription)
	if part == "" {
		return entities.QuoteSession{}, ErrInvalidPartDescription
	}

	targets := dedupeTargets(cmd.Suppliers)
	if len(targets) == 0 && u.suppliers != nil {
		active, err := u.suppliers.ListActive(ctx)
		if err != nil {
			log.Printf("[quote][usecase] supplier directory failed order_id=%s err=%v", orderID, err)
			return entities.QuoteSession{}, err
		}
		targets = dedupeTargets(active)
	}
	if len(targets) == 0 {
		return entities.QuoteSession{}, ErrNoSuppliers
	}
	if len(targets) > MaxSuppliersPerSession {
		return entities.QuoteSession{}, ErrTooManySuppliers
	}

	now := u.now()

	// Enforce: at most one pending session per order. Terminal sessions are
	// superseded, never resumed.
	if latest, err := u.sessions.GetLatestByOrderID(ctx, orderID); err != nil {
		return entities.QuoteSession{}, err
	} else if latest.ID != "" && latest.EffectiveStatus(now) == entities.QuoteStatusPending {
		log.Printf("[quote][usecase] start rejected order_id=%s pending_session_id=%s", orderID, latest.ID)
		return entities.QuoteSession{}, ErrSessionAlreadyActive
	}

	ttl := cmd.TTL
	if ttl <= 0 {
		ttl = u.defaultTTL
	}
	s := entities.QuoteSession{
		ID:              uuid.NewString(),
		OrderID:         orderID,
		PartDescription: part,
		Status:          entities.QuoteStatusPending,
		ExpiresAt:       now.Add(ttl),
		Suppliers:       targets,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.sessions.Start(ctx, s)
	if err != nil {
		log.Printf("[quote][usecase] start failed order_id=%s err=%v", orderID, err)
		return entities.QuoteSession{}, err
	}
	log.Printf("[quote][usecase] start success order_id=%s session_id=%s suppliers=%d expires_at=%s", orderID, created.ID, len(created.Suppliers), created.ExpiresAt.Format(time.RFC3339))
	return created, nil
}

func (u *QuoteUseCase) GetCurrentByOrderID(ctx context.Context, orderID string) (entities.QuoteSession, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.QuoteSession{}, ErrInvalidOrderID
	}

	s, err := u.sessions.GetLatestByOrderID(ctx, orderID)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if s.ID == "" {
		return entities.QuoteSession{}, ErrSessionNotFound
	}
	s.Status = s.EffectiveStatus(u.now())
	return s, nil
}

// History lists the terminal sessions of an order, newest first, with their
// observed status.
func (u *QuoteUseCase) History(ctx context.Context, orderID string) ([]entities.QuoteSession, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	all, err := u.sessions.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	out := make([]entities.QuoteSession, 0, len(all))
	for _, s := range all {
		if !s.IsTerminal(now) {
			continue
		}
		s.Status = s.EffectiveStatus(now)
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Snapshot reads the session and its response slots. Every supplier of the
// session appears exactly once; a missing slot reads as not responded.
func (u *QuoteUseCase) Snapshot(ctx context.Context, sessionID string) (quoting.Snapshot, error) {
	s, err := u.getSession(ctx, sessionID)
	if err != nil {
		return quoting.Snapshot{}, err
	}

	stored, err := u.responses.ListBySessionID(ctx, s.ID)
	if err != nil {
		return quoting.Snapshot{}, err
	}
	return quoting.Snapshot{Session: s, Responses: joinResponses(s, stored)}, nil
}

func (u *QuoteUseCase) Offers(ctx context.Context, sessionID, supplierID string) ([]entities.PriceOffer, error) {
	_, resp, err := u.loadSupplierResponse(ctx, sessionID, supplierID)
	if err != nil {
		return nil, err
	}
	return quoting.ParseOffers(resp.RawMessage), nil
}

// Approve commits supplierID as the winner of the session. When the reply
// holds several offers the caller must pick one; nothing is guessed.
func (u *QuoteUseCase) Approve(ctx context.Context, sessionID, supplierID string, chosen *entities.PriceOffer) (entities.QuoteSession, error) {
	log.Printf("[quote][usecase] approve start session_id=%q supplier_id=%q chosen=%t", sessionID, supplierID, chosen != nil)

	s, resp, err := u.loadSupplierResponse(ctx, sessionID, supplierID)
	if err != nil {
		log.Printf("[quote][usecase] approve rejected session_id=%s supplier_id=%s err=%v", sessionID, supplierID, err)
		return entities.QuoteSession{}, err
	}
	if !s.CanApprove(u.now()) {
		log.Printf("[quote][usecase] approve rejected session_id=%s status=%s", s.ID, s.Status)
		return entities.QuoteSession{}, ErrSessionCancelled
	}
	if !resp.Responded() {
		return entities.QuoteSession{}, ErrSupplierNotResponded
	}

	offer, err := resolveOffer(resp, chosen)
	if err != nil {
		log.Printf("[quote][usecase] approve unresolved offer session_id=%s supplier_id=%s err=%v", s.ID, resp.Supplier.ID, err)
		return entities.QuoteSession{}, err
	}

	committed, err := u.sessions.CommitApproval(ctx, s.ID, resp.Supplier.ID, offer)
	if err != nil {
		log.Printf("[quote][usecase] approve commit failed session_id=%s supplier_id=%s err=%v", s.ID, resp.Supplier.ID, err)
		return entities.QuoteSession{}, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}
	if committed.ID == "" {
		// The conditional write was refused; find out why.
		current, gErr := u.sessions.GetByID(ctx, s.ID)
		switch {
		case gErr != nil:
			return entities.QuoteSession{}, fmt.Errorf("%w: %v", ErrCommitFailed, gErr)
		case current.ID == "":
			return entities.QuoteSession{}, ErrSessionNotFound
		case current.Status == entities.QuoteStatusCancelled:
			return entities.QuoteSession{}, ErrSessionCancelled
		default:
			return entities.QuoteSession{}, ErrCommitFailed
		}
	}

	log.Printf("[quote][usecase] approve success session_id=%s winner_supplier_id=%s has_offer=%t", committed.ID, committed.WinnerSupplierID, committed.WinnerOffer != nil)
	return committed, nil
}

// Cancel is idempotent: cancelling a cancelled session returns it unchanged.
func (u *QuoteUseCase) Cancel(ctx context.Context, sessionID string) (entities.QuoteSession, error) {
	s, err := u.getSession(ctx, sessionID)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if s.Status == entities.QuoteStatusCancelled {
		log.Printf("[quote][usecase] cancel no-op session_id=%s already cancelled", s.ID)
		return s, nil
	}

	cancelled, err := u.sessions.Cancel(ctx, s.ID)
	if err != nil {
		log.Printf("[quote][usecase] cancel failed session_id=%s err=%v", s.ID, err)
		return entities.QuoteSession{}, err
	}
	if cancelled.ID == "" {
		// Lost a race against another cancel (or a delete).
		return u.getSession(ctx, s.ID)
	}
	log.Printf("[quote][usecase] cancel success session_id=%s", cancelled.ID)
	return cancelled, nil
}

// RecordReply stores a supplier's free-text reply. The reply is classified
// here, once, so the store keeps a single price field per slot.
func (u *QuoteUseCase) RecordReply(ctx context.Context, sessionID, supplierID, message string, receivedAt time.Time) (entities.SupplierResponse, error) {
	supplierID = strings.TrimSpace(supplierID)
	if supplierID == "" {
		return entities.SupplierResponse{}, ErrInvalidSupplierID
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.SupplierResponse{}, ErrInvalidReplyMessage
	}

	s, err := u.getSession(ctx, sessionID)
	if err != nil {
		return entities.SupplierResponse{}, err
	}
	if !s.HasSupplier(supplierID) {
		return entities.SupplierResponse{}, ErrSupplierNotInSession
	}

	if receivedAt.IsZero() {
		receivedAt = u.now()
	}
	receivedAt = receivedAt.UTC()

	r := entities.SupplierResponse{
		SessionID:  s.ID,
		Supplier:   targetByID(s, supplierID),
		RawMessage: message,
		Reply:      ClassifyIncomingReply(message),
		ReceivedAt: &receivedAt,
	}

	saved, err := u.responses.RecordReply(ctx, r)
	if err != nil {
		log.Printf("[quote][usecase] record reply failed session_id=%s supplier_id=%s err=%v", s.ID, supplierID, err)
		return entities.SupplierResponse{}, err
	}
	if saved.SessionID == "" {
		return entities.SupplierResponse{}, ErrSupplierNotInSession
	}
	log.Printf("[quote][usecase] record reply success session_id=%s supplier_id=%s kind=%s amount=%.2f", s.ID, supplierID, saved.Reply.Kind, saved.Reply.Amount)
	return saved, nil
}

// ClassifyIncomingReply turns a raw reply into the stored reply variant:
// the lowest parsed offer, an explicit no-stock, or a bare acknowledgement.
func ClassifyIncomingReply(message string) entities.Reply {
	offers := quoting.ParseOffers(message)
	if len(offers) > 0 {
		lowest := offers[0].Price
		for _, o := range offers[1:] {
			if o.Price < lowest {
				lowest = o.Price
			}
		}
		return entities.Priced(lowest)
	}
	if quoting.SignalsNoStock(message) {
		return entities.NoStock(message)
	}
	return entities.Acknowledged()
}

func (u *QuoteUseCase) getSession(ctx context.Context, sessionID string) (entities.QuoteSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.QuoteSession{}, ErrInvalidSessionID
	}

	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if s.ID == "" {
		return entities.QuoteSession{}, ErrSessionNotFound
	}
	if err := s.Validate(); err != nil {
		log.Printf("[quote][usecase] inconsistent session session_id=%s status=%s winner_supplier_id=%s", s.ID, s.Status, s.WinnerSupplierID)
		return entities.QuoteSession{}, err
	}
	return s, nil
}

func (u *QuoteUseCase) loadSupplierResponse(ctx context.Context, sessionID, supplierID string) (entities.QuoteSession, entities.SupplierResponse, error) {
	supplierID = strings.TrimSpace(supplierID)
	if supplierID == "" {
		return entities.QuoteSession{}, entities.SupplierResponse{}, ErrInvalidSupplierID
	}

	snap, err := u.Snapshot(ctx, sessionID)
	if err != nil {
		return entities.QuoteSession{}, entities.SupplierResponse{}, err
	}
	if !snap.Session.HasSupplier(supplierID) {
		return snap.Session, entities.SupplierResponse{}, ErrSupplierNotInSession
	}
	for _, r := range snap.Responses {
		if r.Supplier.ID == supplierID {
			return snap.Session, r, nil
		}
	}
	return snap.Session, entities.SupplierResponse{}, ErrSupplierNotInSession
}

func resolveOffer(resp entities.SupplierResponse, chosen *entities.PriceOffer) (*entities.PriceOffer, error) {
	offers := quoting.ParseOffers(resp.RawMessage)

	if chosen != nil {
		for _, o := range offers {
			if o.Equal(*chosen) {
				picked := o
				return &picked, nil
			}
		}
		return nil, ErrOfferNotInReply
	}

	switch len(offers) {
	case 0:
		return nil, nil
	case 1:
		only := offers[0]
		return &only, nil
	default:
		return nil, &AmbiguousOfferError{SupplierID: resp.Supplier.ID, Offers: offers}
	}
}

func joinResponses(s entities.QuoteSession, stored []entities.SupplierResponse) []entities.SupplierResponse {
	// Targets are fixed at start; slots of anyone else are ignored.
	bySupplier := make(map[string]entities.SupplierResponse, len(stored))
	for _, r := range stored {
		if s.HasSupplier(r.Supplier.ID) {
			bySupplier[r.Supplier.ID] = r
		}
	}

	out := make([]entities.SupplierResponse, 0, len(s.Suppliers))
	for _, t := range s.Suppliers {
		r, ok := bySupplier[t.ID]
		if !ok {
			r = entities.SupplierResponse{SessionID: s.ID, Reply: entities.NotResponded()}
		}
		r.Supplier = mergeTarget(t, r.Supplier)
		out = append(out, r)
	}
	return out
}

func mergeTarget(known, stored entities.SupplierTarget) entities.SupplierTarget {
	if stored.Name == "" {
		stored.Name = known.Name
	}
	if stored.Phone == "" {
		stored.Phone = known.Phone
	}
	stored.ID = known.ID
	return stored
}

func targetByID(s entities.QuoteSession, supplierID string) entities.SupplierTarget {
	for _, t := range s.Suppliers {
		if t.ID == supplierID {
			return t
		}
	}
	return entities.SupplierTarget{ID: supplierID}
}

func dedupeTargets(in []entities.SupplierTarget) []entities.SupplierTarget {
	seen := make(map[string]struct{}, len(in))
	out := make([]entities.SupplierTarget, 0, len(in))
	for _, t := range in {
		t.ID = strings.TrimSpace(t.ID)
		if t.ID == "" {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		t.Name = strings.TrimSpace(t.Name)
		t.Phone = strings.TrimSpace(t.Phone)
		out = append(out, t)
	}
	return out
}
