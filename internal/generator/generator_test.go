package generator

import (
	"context"
	"reflect"
	"testing"
)

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	cfg := Config{NumBuyers: 20, NumSellers: 15, Seed: 7}
	a, err := New(cfg).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := New(cfg).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(a.Buyers) != 20 || len(a.Sellers) != 15 {
		t.Fatalf("expected 20 buyers and 15 sellers, got %d and %d", len(a.Buyers), len(a.Sellers))
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical datasets for the same seed")
	}
}

func TestGenerateProducesIngestableProfiles(t *testing.T) {
	ds, err := New(Config{NumBuyers: 50, NumSellers: 50, Seed: 1}).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	seen := map[string]bool{}
	for _, b := range ds.Buyers {
		p := b.ToDomain()
		if p.ID == "" || seen[p.ID] {
			t.Fatalf("expected unique buyer ids, got %q", p.ID)
		}
		seen[p.ID] = true
		if p.InvestmentRange.Max < p.InvestmentRange.Min {
			t.Fatalf("invalid investment range %+v", p.InvestmentRange)
		}
		if p.Reputation.Rating < 3 || p.Reputation.Rating > 5 {
			t.Fatalf("rating out of range: %v", p.Reputation.Rating)
		}
	}
	for _, s := range ds.Sellers {
		p := s.ToDomain()
		if seen[p.ID] {
			t.Fatalf("duplicate id %q", p.ID)
		}
		seen[p.ID] = true
		if p.BusinessValue <= 0 || p.Timeline == "" {
			t.Fatalf("incomplete seller %+v", p)
		}
	}
}

func TestGenerateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(Config{Seed: 1}).Generate(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestWriteAndReadDataset(t *testing.T) {
	ds, err := New(Config{NumBuyers: 3, NumSellers: 2, Seed: 3}).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	dir := t.TempDir()
	if err := WriteDataset(ds, dir); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadDataset(dir)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(ds, got) {
		t.Fatalf("expected dataset to survive a write/read cycle")
	}
}

func TestReadDatasetMissingDir(t *testing.T) {
	if _, err := ReadDataset(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing files")
	}
}
