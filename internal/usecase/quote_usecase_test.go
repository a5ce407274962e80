package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mecanica_xpto_quotes/internal/domain/entities"
	"mecanica_xpto_quotes/internal/domain/quoting"
	mock_interfaces "mecanica_xpto_quotes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

type quoteMocks struct {
	sessions  *mock_interfaces.MockIQuoteSessionRepository
	responses *mock_interfaces.MockISupplierResponseRepository
	suppliers *mock_interfaces.MockISupplierRepository
}

func newTestQuoteUseCase(t *testing.T) (*QuoteUseCase, quoteMocks) {
	ctrl := gomock.NewController(t)
	m := quoteMocks{
		sessions:  mock_interfaces.NewMockIQuoteSessionRepository(ctrl),
		responses: mock_interfaces.NewMockISupplierResponseRepository(ctrl),
		suppliers: mock_interfaces.NewMockISupplierRepository(ctrl),
	}
	uc := NewQuoteUseCase(m.sessions, m.responses, m.suppliers, 30*time.Minute)
	uc.now = func() time.Time { return testNow }
	return uc, m
}

func pendingSession(suppliers ...string) entities.QuoteSession {
	targets := make([]entities.SupplierTarget, 0, len(suppliers))
	for _, id := range suppliers {
		targets = append(targets, entities.SupplierTarget{ID: id, Name: "Fornecedor " + id, Phone: "+55119999" + id})
	}
	return entities.QuoteSession{
		ID:              "sess-1",
		OrderID:         "os-1",
		PartDescription: "Tela do painel",
		Status:          entities.QuoteStatusPending,
		ExpiresAt:       testNow.Add(20 * time.Minute),
		Suppliers:       targets,
		CreatedAt:       testNow.Add(-10 * time.Minute),
	}
}

func reply(supplierID, raw string, r entities.Reply) entities.SupplierResponse {
	at := testNow.Add(-time.Minute)
	return entities.SupplierResponse{
		SessionID:  "sess-1",
		Supplier:   entities.SupplierTarget{ID: supplierID},
		RawMessage: raw,
		Reply:      r,
		ReceivedAt: &at,
	}
}

func TestQuoteUseCase_Start(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, 0)
		_, err := uc.Start(context.Background(), StartQuoteCommand{OrderID: "  ", PartDescription: "Tela"})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("invalid part description", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, 0)
		_, err := uc.Start(context.Background(), StartQuoteCommand{OrderID: "os-1", PartDescription: " "})
		if !errors.Is(err, ErrInvalidPartDescription) {
			t.Fatalf("expected ErrInvalidPartDescription, got %v", err)
		}
	})

	t.Run("no suppliers anywhere", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.suppliers.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		_, err := uc.Start(context.Background(), StartQuoteCommand{OrderID: "os-1", PartDescription: "Tela"})
		if !errors.Is(err, ErrNoSuppliers) {
			t.Fatalf("expected ErrNoSuppliers, got %v", err)
		}
	})

	t.Run("too many suppliers", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, 0)
		targets := make([]entities.SupplierTarget, 0, MaxSuppliersPerSession+1)
		for i := 0; i <= MaxSuppliersPerSession; i++ {
			targets = append(targets, entities.SupplierTarget{ID: fmt.Sprintf("s-%d", i)})
		}

		_, err := uc.Start(context.Background(), StartQuoteCommand{OrderID: "os-1", PartDescription: "Tela", Suppliers: targets})
		if !errors.Is(err, ErrTooManySuppliers) {
			t.Fatalf("expected ErrTooManySuppliers, got %v", err)
		}
	})

	t.Run("supplier directory error", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.suppliers.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Start(context.Background(), StartQuoteCommand{OrderID: "os-1", PartDescription: "Tela"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("pending session blocks a new one", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetLatestByOrderID(gomock.Any(), "os-1").Return(pendingSession("a"), nil)

		_, err := uc.Start(context.Background(), StartQuoteCommand{
			OrderID:         "os-1",
			PartDescription: "Tela",
			Suppliers:       []entities.SupplierTarget{{ID: "a"}},
		})
		if !errors.Is(err, ErrSessionAlreadyActive) {
			t.Fatalf("expected ErrSessionAlreadyActive, got %v", err)
		}
	})

	t.Run("expired session is superseded", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		old := pendingSession("a")
		old.ExpiresAt = testNow.Add(-time.Minute)
		m.sessions.EXPECT().GetLatestByOrderID(gomock.Any(), "os-1").Return(old, nil)
		m.sessions.EXPECT().Start(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteSession{})).DoAndReturn(
			func(_ context.Context, s entities.QuoteSession) (entities.QuoteSession, error) {
				if s.ID == "" || s.ID == old.ID {
					t.Fatalf("expected a brand-new session id, got %q", s.ID)
				}
				return s, nil
			},
		)

		_, err := uc.Start(context.Background(), StartQuoteCommand{
			OrderID:         "os-1",
			PartDescription: "Tela",
			Suppliers:       []entities.SupplierTarget{{ID: "a"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("create success with deduped suppliers", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetLatestByOrderID(gomock.Any(), "os-1").Return(entities.QuoteSession{}, nil)
		m.sessions.EXPECT().Start(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteSession{})).DoAndReturn(
			func(_ context.Context, s entities.QuoteSession) (entities.QuoteSession, error) {
				if s.OrderID != "os-1" || s.PartDescription != "Tela do painel" || s.Status != entities.QuoteStatusPending {
					t.Fatalf("unexpected session: %+v", s)
				}
				if len(s.Suppliers) != 2 || s.Suppliers[0].ID != "a" || s.Suppliers[1].ID != "b" {
					t.Fatalf("unexpected suppliers: %+v", s.Suppliers)
				}
				if !s.ExpiresAt.Equal(testNow.Add(30 * time.Minute)) {
					t.Fatalf("unexpected expiry: %v", s.ExpiresAt)
				}
				if s.WinnerSupplierID != "" {
					t.Fatalf("new session must not have a winner")
				}
				return s, nil
			},
		)

		res, err := uc.Start(context.Background(), StartQuoteCommand{
			OrderID:         " os-1 ",
			PartDescription: " Tela do painel ",
			Suppliers:       []entities.SupplierTarget{{ID: "a"}, {ID: " b "}, {ID: "a"}, {ID: ""}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("uses supplier directory and custom ttl", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.suppliers.EXPECT().ListActive(gomock.Any()).Return([]entities.SupplierTarget{{ID: "x", Name: "Auto Peças X"}}, nil)
		m.sessions.EXPECT().GetLatestByOrderID(gomock.Any(), "os-1").Return(entities.QuoteSession{}, nil)
		m.sessions.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.QuoteSession) (entities.QuoteSession, error) {
				if len(s.Suppliers) != 1 || s.Suppliers[0].Name != "Auto Peças X" {
					t.Fatalf("unexpected suppliers: %+v", s.Suppliers)
				}
				if !s.ExpiresAt.Equal(testNow.Add(5 * time.Minute)) {
					t.Fatalf("unexpected expiry: %v", s.ExpiresAt)
				}
				return s, nil
			},
		)

		if _, err := uc.Start(context.Background(), StartQuoteCommand{OrderID: "os-1", PartDescription: "Tela", TTL: 5 * time.Minute}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Snapshot(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.QuoteSession{}, nil)

		_, err := uc.Snapshot(context.Background(), "sess-1")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("every supplier present exactly once", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a", "b", "c"), nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{
			reply("b", "Tela 150", entities.Priced(150)),
		}, nil)

		snap, err := uc.Snapshot(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.Responses) != 3 {
			t.Fatalf("expected 3 responses, got %+v", snap.Responses)
		}
		if snap.Responses[0].Reply.Kind != entities.ReplyNotResponded || snap.Responses[1].Reply.Kind != entities.ReplyPriced {
			t.Fatalf("unexpected replies: %+v", snap.Responses)
		}
		if snap.Responses[1].Supplier.Name != "Fornecedor b" {
			t.Fatalf("expected supplier identity joined, got %+v", snap.Responses[1].Supplier)
		}
		if g := quoting.GroupResponses(snap.Responses); g.Len() != 3 {
			t.Fatalf("expected partition of 3, got %d", g.Len())
		}
	})

	t.Run("slots of suppliers outside the session are ignored", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{
			reply("a", "Tela 200", entities.Priced(200)),
			reply("z", "Tela 90", entities.Priced(90)),
		}, nil)

		snap, err := uc.Snapshot(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.Responses) != 1 || snap.Responses[0].Supplier.ID != "a" {
			t.Fatalf("expected only supplier a, got %+v", snap.Responses)
		}
		if best := quoting.GroupResponses(snap.Responses).BestPrice(); best == nil || *best != 200 {
			t.Fatalf("expected best price 200, got %v", best)
		}
	})

	t.Run("inconsistent winner and status", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		s := pendingSession("a")
		s.WinnerSupplierID = "a"
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.Snapshot(context.Background(), "sess-1")
		if !errors.Is(err, entities.ErrWinnerStatusMismatch) {
			t.Fatalf("expected ErrWinnerStatusMismatch, got %v", err)
		}
	})
}

func TestQuoteUseCase_Approve(t *testing.T) {
	t.Run("invalid supplier id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, 0)
		_, err := uc.Approve(context.Background(), "sess-1", " ", nil)
		if !errors.Is(err, ErrInvalidSupplierID) {
			t.Fatalf("expected ErrInvalidSupplierID, got %v", err)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.QuoteSession{}, nil)

		_, err := uc.Approve(context.Background(), "sess-1", "a", nil)
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("cancelled session", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		s := pendingSession("a")
		s.Status = entities.QuoteStatusCancelled
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{reply("a", "Tela 100", entities.Priced(100))}, nil)

		_, err := uc.Approve(context.Background(), "sess-1", "a", nil)
		if !errors.Is(err, ErrSessionCancelled) {
			t.Fatalf("expected ErrSessionCancelled, got %v", err)
		}
	})

	t.Run("supplier not in session", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return(nil, nil)

		_, err := uc.Approve(context.Background(), "sess-1", "z", nil)
		if !errors.Is(err, ErrSupplierNotInSession) {
			t.Fatalf("expected ErrSupplierNotInSession, got %v", err)
		}
	})

	t.Run("stray slot outside the session cannot win", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{
			reply("z", "Tela 90", entities.Priced(90)),
		}, nil)
		m.sessions.EXPECT().CommitApproval(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Approve(context.Background(), "sess-1", "z", nil)
		if !errors.Is(err, ErrSupplierNotInSession) {
			t.Fatalf("expected ErrSupplierNotInSession, got %v", err)
		}
	})

	t.Run("supplier never replied", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return(nil, nil)

		_, err := uc.Approve(context.Background(), "sess-1", "a", nil)
		if !errors.Is(err, ErrSupplierNotResponded) {
			t.Fatalf("expected ErrSupplierNotResponded, got %v", err)
		}
	})

	t.Run("ambiguous offers without choice leave session pending", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{
			reply("a", "Tela original - 350,00\nTela genérica 180,50", entities.Priced(180.5)),
		}, nil)
		m.sessions.EXPECT().CommitApproval(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Approve(context.Background(), "sess-1", "a", nil)
		if !errors.Is(err, ErrAmbiguousOfferNotResolved) {
			t.Fatalf("expected ErrAmbiguousOfferNotResolved, got %v", err)
		}
		var amb *AmbiguousOfferError
		if !errors.As(err, &amb) || len(amb.Offers) != 2 || amb.SupplierID != "a" {
			t.Fatalf("expected offers in ambiguous error, got %v", err)
		}
	})

	t.Run("ambiguous offers with choice", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{
			reply("a", "Tela original - 350,00\nTela genérica 180,50", entities.Priced(180.5)),
		}, nil)
		want := entities.PriceOffer{Description: "Tela original", Price: 350}
		m.sessions.EXPECT().CommitApproval(gomock.Any(), "sess-1", "a", &want).Return(entities.QuoteSession{
			ID: "sess-1", Status: entities.QuoteStatusCompleted, WinnerSupplierID: "a", WinnerOffer: &want,
		}, nil)

		res, err := uc.Approve(context.Background(), "sess-1", "a", &entities.PriceOffer{Description: "Tela original", Price: 350})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuoteStatusCompleted || res.WinnerSupplierID != "a" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("chosen offer not in reply", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{
			reply("a", "Tela original - 350,00\nTela genérica 180,50", entities.Priced(180.5)),
		}, nil)

		_, err := uc.Approve(context.Background(), "sess-1", "a", &entities.PriceOffer{Description: "Tela", Price: 1})
		if !errors.Is(err, ErrOfferNotInReply) {
			t.Fatalf("expected ErrOfferNotInReply, got %v", err)
		}
	})

	t.Run("single offer is used implicitly", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{
			reply("a", "Tela original 350,00", entities.Priced(350)),
		}, nil)
		m.sessions.EXPECT().CommitApproval(gomock.Any(), "sess-1", "a", &entities.PriceOffer{Description: "Tela original", Price: 350}).
			Return(entities.QuoteSession{ID: "sess-1", Status: entities.QuoteStatusCompleted, WinnerSupplierID: "a"}, nil)

		if _, err := uc.Approve(context.Background(), "sess-1", "a", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("acknowledged reply approves without price", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{
			reply("a", "Vou verificar", entities.Acknowledged()),
		}, nil)
		m.sessions.EXPECT().CommitApproval(gomock.Any(), "sess-1", "a", gomock.Nil()).
			Return(entities.QuoteSession{ID: "sess-1", Status: entities.QuoteStatusCompleted, WinnerSupplierID: "a"}, nil)

		if _, err := uc.Approve(context.Background(), "sess-1", "a", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("expired session still accepts approval", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		s := pendingSession("a")
		s.ExpiresAt = testNow.Add(-time.Hour)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{
			reply("a", "Tela 99", entities.Priced(99)),
		}, nil)
		m.sessions.EXPECT().CommitApproval(gomock.Any(), "sess-1", "a", gomock.Any()).
			Return(entities.QuoteSession{ID: "sess-1", Status: entities.QuoteStatusCompleted, WinnerSupplierID: "a"}, nil)

		res, err := uc.Approve(context.Background(), "sess-1", "a", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuoteStatusCompleted {
			t.Fatalf("expected COMPLETED, got %s", res.Status)
		}
	})

	t.Run("tied best prices can both win", func(t *testing.T) {
		for _, winner := range []string{"b", "c"} {
			uc, m := newTestQuoteUseCase(t)
			m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a", "b", "c"), nil)
			m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{
				reply("a", "Tela 200", entities.Priced(200)),
				reply("b", "Tela 150", entities.Priced(150)),
				reply("c", "Tela 150", entities.Priced(150)),
			}, nil)
			m.sessions.EXPECT().CommitApproval(gomock.Any(), "sess-1", winner, gomock.Any()).
				Return(entities.QuoteSession{ID: "sess-1", Status: entities.QuoteStatusCompleted, WinnerSupplierID: winner}, nil)

			res, err := uc.Approve(context.Background(), "sess-1", winner, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != entities.QuoteStatusCompleted || res.WinnerSupplierID != winner {
				t.Fatalf("unexpected result for %s: %+v", winner, res)
			}
		}
	})

	t.Run("commit transport failure is retryable", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{reply("a", "Tela 99", entities.Priced(99))}, nil)
		m.sessions.EXPECT().CommitApproval(gomock.Any(), "sess-1", "a", gomock.Any()).Return(entities.QuoteSession{}, errors.New("timeout"))

		_, err := uc.Approve(context.Background(), "sess-1", "a", nil)
		if !errors.Is(err, ErrCommitFailed) {
			t.Fatalf("expected ErrCommitFailed, got %v", err)
		}
	})

	t.Run("commit refused because cancelled meanwhile", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		cancelled := pendingSession("a")
		cancelled.Status = entities.QuoteStatusCancelled
		gomock.InOrder(
			m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil),
			m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(cancelled, nil),
		)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{reply("a", "Tela 99", entities.Priced(99))}, nil)
		m.sessions.EXPECT().CommitApproval(gomock.Any(), "sess-1", "a", gomock.Any()).Return(entities.QuoteSession{}, nil)

		_, err := uc.Approve(context.Background(), "sess-1", "a", nil)
		if !errors.Is(err, ErrSessionCancelled) {
			t.Fatalf("expected ErrSessionCancelled, got %v", err)
		}
	})
}

func TestQuoteUseCase_Cancel(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, 0)
		_, err := uc.Cancel(context.Background(), "")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		s := pendingSession("a")
		s.Status = entities.QuoteStatusCancelled
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil).Times(2)
		m.sessions.EXPECT().Cancel(gomock.Any(), gomock.Any()).Times(0)

		for i := 0; i < 2; i++ {
			res, err := uc.Cancel(context.Background(), "sess-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != entities.QuoteStatusCancelled {
				t.Fatalf("expected CANCELLED, got %s", res.Status)
			}
		}
	})

	t.Run("completed session can be cancelled", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		s := pendingSession("a")
		s.Status = entities.QuoteStatusCompleted
		s.WinnerSupplierID = "a"
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.sessions.EXPECT().Cancel(gomock.Any(), "sess-1").Return(entities.QuoteSession{ID: "sess-1", Status: entities.QuoteStatusCancelled}, nil)

		res, err := uc.Cancel(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuoteStatusCancelled || res.WinnerSupplierID != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.sessions.EXPECT().Cancel(gomock.Any(), "sess-1").Return(entities.QuoteSession{}, errors.New("db"))

		_, err := uc.Cancel(context.Background(), "sess-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_RecordReply(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, 0)
		_, err := uc.RecordReply(context.Background(), "sess-1", "a", "  ", time.Time{})
		if !errors.Is(err, ErrInvalidReplyMessage) {
			t.Fatalf("expected ErrInvalidReplyMessage, got %v", err)
		}
	})

	t.Run("unknown supplier", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)

		_, err := uc.RecordReply(context.Background(), "sess-1", "z", "Tela 100", time.Time{})
		if !errors.Is(err, ErrSupplierNotInSession) {
			t.Fatalf("expected ErrSupplierNotInSession, got %v", err)
		}
	})

	cases := []struct {
		name   string
		msg    string
		kind   entities.ReplyKind
		amount float64
	}{
		{name: "lowest offer is stored", msg: "Tela original - 350,00\nTela genérica 180,50", kind: entities.ReplyPriced, amount: 180.5},
		{name: "no stock", msg: "Sem estoque no momento", kind: entities.ReplyNoStock},
		{name: "acknowledgement", msg: "Vou verificar", kind: entities.ReplyAcknowledged},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newTestQuoteUseCase(t)
			m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
			m.responses.EXPECT().RecordReply(gomock.Any(), gomock.AssignableToTypeOf(entities.SupplierResponse{})).DoAndReturn(
				func(_ context.Context, r entities.SupplierResponse) (entities.SupplierResponse, error) {
					if r.SessionID != "sess-1" || r.Supplier.ID != "a" || r.Supplier.Name != "Fornecedor a" {
						t.Fatalf("unexpected slot: %+v", r)
					}
					if r.ReceivedAt == nil || !r.ReceivedAt.Equal(testNow) {
						t.Fatalf("expected receivedAt defaulted to now, got %v", r.ReceivedAt)
					}
					return r, nil
				},
			)

			res, err := uc.RecordReply(context.Background(), "sess-1", "a", tc.msg, time.Time{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Reply.Kind != tc.kind || res.Reply.Amount != tc.amount {
				t.Fatalf("expected %s/%v, got %+v", tc.kind, tc.amount, res.Reply)
			}
		})
	}

	t.Run("slot missing in store", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.responses.EXPECT().RecordReply(gomock.Any(), gomock.Any()).Return(entities.SupplierResponse{}, nil)

		_, err := uc.RecordReply(context.Background(), "sess-1", "a", "Tela 100", testNow)
		if !errors.Is(err, ErrSupplierNotInSession) {
			t.Fatalf("expected ErrSupplierNotInSession, got %v", err)
		}
	})
}

func TestQuoteUseCase_HistoryAndCurrent(t *testing.T) {
	t.Run("history keeps terminal sessions newest first", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		expired := pendingSession("a")
		expired.ID = "s-expired"
		expired.ExpiresAt = testNow.Add(-time.Hour)
		expired.CreatedAt = testNow.Add(-3 * time.Hour)
		completed := pendingSession("a")
		completed.ID = "s-completed"
		completed.Status = entities.QuoteStatusCompleted
		completed.WinnerSupplierID = "a"
		completed.CreatedAt = testNow.Add(-time.Hour)
		live := pendingSession("a")
		live.ID = "s-live"

		m.sessions.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return([]entities.QuoteSession{expired, live, completed}, nil)

		res, err := uc.History(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "s-completed" || res[1].ID != "s-expired" {
			t.Fatalf("unexpected history: %+v", res)
		}
		if res[1].Status != entities.QuoteStatusExpired {
			t.Fatalf("expected observed EXPIRED, got %s", res[1].Status)
		}
	})

	t.Run("current not found", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetLatestByOrderID(gomock.Any(), "os-1").Return(entities.QuoteSession{}, nil)

		_, err := uc.GetCurrentByOrderID(context.Background(), "os-1")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("offers of a supplier", func(t *testing.T) {
		uc, m := newTestQuoteUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(pendingSession("a"), nil)
		m.responses.EXPECT().ListBySessionID(gomock.Any(), "sess-1").Return([]entities.SupplierResponse{
			reply("a", "Tela original - 350,00\nTela genérica 180,50", entities.Priced(180.5)),
		}, nil)

		offers, err := uc.Offers(context.Background(), "sess-1", "a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(offers) != 2 {
			t.Fatalf("expected 2 offers, got %+v", offers)
		}
	})
}
