// Package catalog serves the counterpart profiles and deal workspaces from
// process memory.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vanshika/bizbridge/internal/domain"
)

// SystemSender is the sender id of generated deal messages.
const SystemSender = "system"

// Memory is an in-memory catalog. Reads return copies; writes are validated
// against the deal invariants before they are stored.
type Memory struct {
	mu      sync.RWMutex
	buyers  []domain.BuyerProfile
	sellers []domain.SellerProfile
	deals   map[string]domain.Deal
}

// NewMemory builds a catalog from the given records.
func NewMemory(buyers []domain.BuyerProfile, sellers []domain.SellerProfile, deals []domain.Deal) (*Memory, error) {
	m := &Memory{
		buyers:  append([]domain.BuyerProfile(nil), buyers...),
		sellers: append([]domain.SellerProfile(nil), sellers...),
		deals:   make(map[string]domain.Deal, len(deals)),
	}
	for _, d := range deals {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := m.deals[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate deal id %s", domain.ErrInvalidDeal, d.ID)
		}
		m.deals[d.ID] = d.Clone()
	}
	return m, nil
}

// NewFixtures returns the demo catalog.
func NewFixtures() *Memory {
	m, err := NewMemory(FixtureBuyers(), FixtureSellers(), FixtureDeals())
	if err != nil {
		panic(fmt.Sprintf("catalog fixtures are invalid: %v", err))
	}
	return m
}

func (m *Memory) ListBuyers(ctx context.Context) ([]domain.BuyerProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.BuyerProfile(nil), m.buyers...), nil
}

func (m *Memory) ListSellers(ctx context.Context) ([]domain.SellerProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.SellerProfile(nil), m.sellers...), nil
}

// ListDeals returns every deal ordered by id.
func (m *Memory) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Deal, 0, len(m.deals))
	for _, d := range m.deals {
		out = append(out, d.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) GetDeal(ctx context.Context, id string) (domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		return domain.Deal{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.deals[id]
	if !ok {
		return domain.Deal{}, fmt.Errorf("deal %s: %w", id, domain.ErrNotFound)
	}
	return d.Clone(), nil
}

// AppendMessage adds msg to the deal's conversation.
func (m *Memory) AppendMessage(ctx context.Context, dealID string, msg domain.Message) error {
	return m.mutate(ctx, dealID, func(d *domain.Deal) {
		d.Messages = append(d.Messages, msg)
		if msg.Timestamp.After(d.UpdatedAt) {
			d.UpdatedAt = msg.Timestamp
		}
	})
}

// AddDocument adds doc to the deal's data room.
func (m *Memory) AddDocument(ctx context.Context, dealID string, doc domain.Document) error {
	return m.mutate(ctx, dealID, func(d *domain.Deal) {
		d.Documents = append(d.Documents, doc)
		if doc.UploadedAt.After(d.UpdatedAt) {
			d.UpdatedAt = doc.UploadedAt
		}
	})
}

// mutate applies fn to a copy and stores it only if the result is valid.
func (m *Memory) mutate(ctx context.Context, dealID string, fn func(*domain.Deal)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deals[dealID]
	if !ok {
		return fmt.Errorf("deal %s: %w", dealID, domain.ErrNotFound)
	}
	next := d.Clone()
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	m.deals[dealID] = next
	return nil
}
