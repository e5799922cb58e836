package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vanshika/bizbridge/internal/catalog"
	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/graph"
)

func TestRepository_UpsertBuyer(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	buyer := catalog.FixtureBuyers()[0]
	if err := repo.UpsertBuyer(context.Background(), buyer); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write query, got %d", len(calls))
	}
	call := calls[0]
	if call.Query != upsertBuyerCypher {
		t.Fatalf("unexpected query\nexpected:\n%s\ngot:\n%s", upsertBuyerCypher, call.Query)
	}
	if call.Params["buyerId"] != "buyer-1" {
		t.Errorf("expected buyerId buyer-1, got %v", call.Params["buyerId"])
	}
	props, ok := call.Params["props"].(map[string]any)
	if !ok {
		t.Fatalf("expected props map, got %T", call.Params["props"])
	}
	if props["name"] != "Sarah Chen" {
		t.Errorf("name mismatch: got %v", props["name"])
	}
	if props["responseRate"] != int64(95) {
		t.Errorf("responseRate mismatch: got %v", props["responseRate"])
	}
	if props["dealExperience"] != int64(3) {
		t.Errorf("dealExperience mismatch: got %v", props["dealExperience"])
	}
}

func TestRepository_UpsertBuyerRequiresID(t *testing.T) {
	repo := New(graph.NewMemoryClient())
	if err := repo.UpsertBuyer(context.Background(), domain.BuyerProfile{}); err == nil {
		t.Fatalf("expected error for missing id")
	}
}

func TestRepository_UpsertDealRunsOneBatch(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	deal := catalog.FixtureDeals()[0]
	if err := repo.UpsertDeal(context.Background(), deal); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	batches := mem.Batches()
	if len(batches) != 1 {
		t.Fatalf("expected 1 batch, got %d", len(batches))
	}
	batch := batches[0]
	if len(batch) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(batch))
	}
	if batch[0].Query != upsertDealCypher || batch[0].Params["buyerId"] != "buyer-1" {
		t.Fatalf("unexpected deal statement %+v", batch[0])
	}
	milestones, ok := batch[4].Params["milestones"].([]map[string]any)
	if !ok || len(milestones) != 2 {
		t.Fatalf("expected 2 milestone params, got %T", batch[4].Params["milestones"])
	}
	taskIDs, _ := milestones[0]["taskIds"].([]string)
	if len(taskIDs) != 3 || taskIDs[0] != "1" {
		t.Fatalf("unexpected milestone task ids %v", taskIDs)
	}
	docs, _ := batch[1].Params["documents"].([]map[string]any)
	docProps, _ := docs[0]["props"].(map[string]any)
	if docProps["hasAnalysis"] != true || docProps["analysisRisk"] != "Low" {
		t.Fatalf("expected analysis flattened onto document, got %+v", docProps)
	}
}

func TestRepository_UpsertDealRejectsInvalid(t *testing.T) {
	mem := graph.NewMemoryClient()
	bad := domain.Deal{ID: "x", Milestones: []domain.Milestone{{ID: "m", Tasks: []string{"ghost"}}}}
	if err := New(mem).UpsertDeal(context.Background(), bad); !errors.Is(err, domain.ErrInvalidDeal) {
		t.Fatalf("expected ErrInvalidDeal, got %v", err)
	}
	if len(mem.Batches()) != 0 {
		t.Fatalf("expected nothing written")
	}
}

func TestRepository_ListBuyers(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.PushReadResult(graph.Result{Records: []graph.Record{
		{
			"id":                  "buyer-9",
			"name":                "Ada Lovelace",
			"industry":            "Technology",
			"verificationStatus":  "verified",
			"responseRate":        int64(97),
			"rating":              4.5,
			"investmentMin":       int64(100000),
			"investmentMax":       float64(500000),
			"preferredIndustries": []any{"Technology", "SaaS"},
			"dealExperience":      int64(4),
		},
	}})

	buyers, err := New(mem).ListBuyers(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(buyers) != 1 {
		t.Fatalf("expected 1 buyer, got %d", len(buyers))
	}
	b := buyers[0]
	if b.Name != "Ada Lovelace" || b.Reputation.ResponseRate != 97 || b.DealCount() != 4 {
		t.Fatalf("unexpected buyer %+v", b)
	}
	if b.InvestmentRange.Min != 100000 || len(b.PreferredIndustries) != 2 {
		t.Fatalf("unexpected investment fields %+v", b)
	}
	if !b.Verified() {
		t.Fatalf("expected verified buyer")
	}
}

func TestRepository_GetDealAssemblesCollections(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.PushReadResult(graph.Result{Records: []graph.Record{{
		"id":            "1",
		"buyerId":       "buyer-1",
		"sellerId":      "seller-1",
		"status":        "in_progress",
		"createdAt":     "2024-01-15T00:00:00Z",
		"businessValue": float64(2500000),
	}}})
	mem.PushReadResult(graph.Result{Records: []graph.Record{{
		"dealId":             "1",
		"id":                 "1",
		"name":               "Financial Statements Q4 2023",
		"hasAnalysis":        true,
		"analysisRevenue":    float64(2500000),
		"analysisInsights":   []any{"a", "b"},
		"analysisConfidence": 0.92,
	}}})
	mem.PushReadResult(graph.Result{Records: []graph.Record{{
		"dealId": "1", "id": "1", "senderId": "buyer-1", "content": "hello", "kind": "text", "timestamp": "2024-01-20T10:30:00Z",
	}}})
	mem.PushReadResult(graph.Result{Records: []graph.Record{{"dealId": "1", "id": "1", "title": "Diligence", "status": "pending"}}})
	mem.PushReadResult(graph.Result{Records: []graph.Record{{"dealId": "1", "id": "1", "title": "DD Complete", "taskIds": []any{"1"}}}})

	deal, err := New(mem).GetDeal(context.Background(), "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deal.Status != domain.DealInProgress || deal.BuyerID != "buyer-1" {
		t.Fatalf("unexpected deal header %+v", deal)
	}
	if !deal.CreatedAt.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected createdAt %v", deal.CreatedAt)
	}
	if len(deal.Documents) != 1 || deal.Documents[0].Analysis == nil {
		t.Fatalf("expected one analysed document, got %+v", deal.Documents)
	}
	if got := deal.Documents[0].Analysis.KeyMetrics; got.Revenue == nil || *got.Revenue != 2500000 || got.Profit != nil {
		t.Fatalf("unexpected key metrics %+v", got)
	}
	if len(deal.Messages) != 1 || len(deal.Tasks) != 1 || len(deal.Milestones) != 1 {
		t.Fatalf("unexpected collections %+v", deal)
	}
	if err := deal.Validate(); err != nil {
		t.Fatalf("expected assembled deal to be valid: %v", err)
	}
	if len(mem.ReadCalls()) != 5 {
		t.Fatalf("expected 5 read queries, got %d", len(mem.ReadCalls()))
	}
}

func TestRepository_ListDealsBatchesChildQueries(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.PushReadResult(graph.Result{Records: []graph.Record{
		{"id": "1", "buyerId": "buyer-1", "sellerId": "seller-1", "status": "in_progress"},
		{"id": "2", "buyerId": "buyer-2", "sellerId": "seller-2", "status": "initial"},
	}})
	mem.PushReadResult(graph.Result{Records: []graph.Record{
		{"dealId": "1", "id": "d-1", "name": "P&L.pdf"},
		{"dealId": "2", "id": "d-2", "name": "Lease.pdf"},
		{"dealId": "2", "id": "d-3", "name": "Payroll.xlsx"},
	}})
	mem.PushReadResult(graph.Result{Records: []graph.Record{
		{"dealId": "2", "id": "m-1", "senderId": "buyer-2", "content": "hi", "kind": "text"},
		{"dealId": "9", "id": "m-2", "senderId": "buyer-9", "content": "stray", "kind": "text"},
	}})
	mem.PushReadResult(graph.Result{})
	mem.PushReadResult(graph.Result{})

	deals, err := New(mem).ListDeals(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(deals) != 2 || deals[0].ID != "1" || deals[1].ID != "2" {
		t.Fatalf("unexpected deals %+v", deals)
	}
	if len(deals[0].Documents) != 1 || len(deals[1].Documents) != 2 {
		t.Fatalf("documents grouped wrongly: %d and %d", len(deals[0].Documents), len(deals[1].Documents))
	}
	if len(deals[0].Messages) != 0 || len(deals[1].Messages) != 1 {
		t.Fatalf("messages grouped wrongly: %d and %d", len(deals[0].Messages), len(deals[1].Messages))
	}

	calls := mem.ReadCalls()
	if len(calls) != 5 {
		t.Fatalf("expected 5 read queries for any number of deals, got %d", len(calls))
	}
	ids, ok := calls[1].Params["dealIds"].([]any)
	if !ok || len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Fatalf("unexpected dealIds param %#v", calls[1].Params["dealIds"])
	}
}

func TestRepository_ListDealsEmpty(t *testing.T) {
	mem := graph.NewMemoryClient()
	deals, err := New(mem).ListDeals(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(deals) != 0 || len(mem.ReadCalls()) != 1 {
		t.Fatalf("expected no deals and a single query, got %d deals and %d queries", len(deals), len(mem.ReadCalls()))
	}
}

func TestRepository_GetDealNotFound(t *testing.T) {
	mem := graph.NewMemoryClient()
	if _, err := New(mem).GetDeal(context.Background(), "404"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepository_AppendMessage(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.PushWriteResult(graph.Result{Records: []graph.Record{{"messageId": "m-1"}}})
	repo := New(mem)

	msg := domain.Message{ID: "m-1", SenderID: "buyer-1", Content: "hi", Kind: domain.MessageText, Timestamp: time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)}
	if err := repo.AppendMessage(context.Background(), "1", msg); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	call := mem.WriteCalls()[0]
	if call.Query != appendMessageCypher || call.Params["dealId"] != "1" || call.Params["id"] != "m-1" {
		t.Fatalf("unexpected call %+v", call)
	}
	if call.Params["updatedAt"] != "2024-01-21T00:00:00Z" {
		t.Fatalf("unexpected updatedAt %v", call.Params["updatedAt"])
	}

	if err := repo.AppendMessage(context.Background(), "404", msg); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound when no deal matched, got %v", err)
	}
}

func TestRepository_PropagatesClientErrors(t *testing.T) {
	boom := errors.New("connection reset")
	repo := New(graph.NewMemoryClient().WithError(boom))
	if _, err := repo.ListSellers(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped client error, got %v", err)
	}
	if err := repo.EnsureSchema(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped schema error, got %v", err)
	}
}
