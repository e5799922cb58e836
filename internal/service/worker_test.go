package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/vanshika/bizbridge/internal/catalog"
	"github.com/vanshika/bizbridge/internal/domain"
)

type stubWriter struct {
	mu      sync.Mutex
	buyers  []domain.BuyerProfile
	sellers []domain.SellerProfile
	deals   []domain.Deal
	failID  string
}

func (s *stubWriter) UpsertBuyer(_ context.Context, b domain.BuyerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == s.failID {
		return errors.New("write failed for " + b.ID)
	}
	s.buyers = append(s.buyers, b)
	return nil
}

func (s *stubWriter) UpsertSeller(_ context.Context, sp domain.SellerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sellers = append(s.sellers, sp)
	return nil
}

func (s *stubWriter) UpsertDeal(_ context.Context, d domain.Deal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deals = append(s.deals, d)
	return nil
}

func fixtureBuyerInputs() []BuyerInput {
	var out []BuyerInput
	for _, b := range catalog.FixtureBuyers() {
		out = append(out, BuyerInputFrom(b))
	}
	return out
}

func TestBulkIngestorLoadsFixtures(t *testing.T) {
	w := &stubWriter{}
	ingestor := NewBulkIngestor(w, 3)

	if err := ingestor.IngestBuyers(context.Background(), fixtureBuyerInputs()); err != nil {
		t.Fatalf("ingest buyers: %v", err)
	}
	var sellers []SellerInput
	for _, s := range catalog.FixtureSellers() {
		sellers = append(sellers, SellerInputFrom(s))
	}
	if err := ingestor.IngestSellers(context.Background(), sellers); err != nil {
		t.Fatalf("ingest sellers: %v", err)
	}
	if err := ingestor.IngestDeals(context.Background(), catalog.FixtureDeals()); err != nil {
		t.Fatalf("ingest deals: %v", err)
	}
	if len(w.buyers) != 4 || len(w.sellers) != 4 || len(w.deals) != 2 {
		t.Fatalf("unexpected counts %d/%d/%d", len(w.buyers), len(w.sellers), len(w.deals))
	}
}

func TestBulkIngestorAggregatesErrors(t *testing.T) {
	w := &stubWriter{failID: "buyer-2"}
	inputs := fixtureBuyerInputs()
	inputs = append(inputs, BuyerInput{})

	err := NewBulkIngestor(w, 2).IngestBuyers(context.Background(), inputs)
	var taskErr *TaskError
	if !errors.As(err, &taskErr) {
		t.Fatalf("expected TaskError, got %v", err)
	}
	if len(taskErr.Errors) != 2 {
		t.Fatalf("expected 2 failures, got %d: %v", len(taskErr.Errors), taskErr)
	}
	if len(w.buyers) != 3 {
		t.Fatalf("expected the other 3 buyers stored, got %d", len(w.buyers))
	}
}

func TestBulkIngestorRejectsInvalidDeals(t *testing.T) {
	w := &stubWriter{}
	bad := domain.Deal{ID: "x", Milestones: []domain.Milestone{{ID: "m", Tasks: []string{"ghost"}}}}
	err := NewBulkIngestor(w, 1).IngestDeals(context.Background(), []domain.Deal{bad})
	if !errors.Is(err, domain.ErrInvalidDeal) {
		t.Fatalf("expected ErrInvalidDeal, got %v", err)
	}
	if len(w.deals) != 0 {
		t.Fatalf("expected invalid deal not written")
	}
}

func TestBulkIngestorEmptyInput(t *testing.T) {
	if err := NewBulkIngestor(&stubWriter{}, 0).IngestBuyers(context.Background(), nil); err != nil {
		t.Fatalf("expected nil for empty input, got %v", err)
	}
}
