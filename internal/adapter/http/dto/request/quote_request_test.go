package request

import (
	"errors"
	"testing"
	"time"
)

func TestStartQuoteRequest_ToCommand(t *testing.T) {
	cmd, err := StartQuoteRequest{
		OrderID:         " os-1 ",
		PartDescription: " Tela ",
		Suppliers:       []SupplierRequest{{ID: "a", Name: "Auto Peças A"}},
		TTLMinutes:      15,
	}.ToCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.OrderID != "os-1" || cmd.PartDescription != "Tela" || cmd.TTL != 15*time.Minute {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if len(cmd.Suppliers) != 1 || cmd.Suppliers[0].Name != "Auto Peças A" {
		t.Fatalf("unexpected suppliers: %+v", cmd.Suppliers)
	}

	for _, ttl := range []int{-1, maxTTLMinutes + 1} {
		if _, err := (StartQuoteRequest{OrderID: "os-1", PartDescription: "Tela", TTLMinutes: ttl}).ToCommand(); !errors.Is(err, ErrInvalidTTL) {
			t.Fatalf("expected ErrInvalidTTL for %d, got %v", ttl, err)
		}
	}
}

func TestApproveQuoteRequest_ResolveOffer(t *testing.T) {
	if (ApproveQuoteRequest{SupplierID: "a"}).ResolveOffer() != nil {
		t.Fatalf("expected nil offer")
	}
	o := ApproveQuoteRequest{SupplierID: "a", ChosenOffer: &OfferRequest{Description: " Tela original ", Price: 350}}.ResolveOffer()
	if o == nil || o.Description != "Tela original" || o.Price != 350 {
		t.Fatalf("unexpected offer: %+v", o)
	}
}

func TestSupplierReplyRequest_ResolveReceivedAt(t *testing.T) {
	if !(SupplierReplyRequest{}).ResolveReceivedAt().IsZero() {
		t.Fatalf("expected zero time")
	}
	at := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	if got := (SupplierReplyRequest{ReceivedAt: &at}).ResolveReceivedAt(); !got.Equal(at) {
		t.Fatalf("expected %v, got %v", at, got)
	}
}
