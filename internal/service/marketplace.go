package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/filter"
	"github.com/vanshika/bizbridge/internal/logging"
)

// ErrEmptyMessage is returned when a message has no content after trimming.
var ErrEmptyMessage = errors.New("message is empty")

// ErrEmptyUpload is returned when an uploaded document has no name.
var ErrEmptyUpload = errors.New("document name is required")

// Event names published on the deal feed.
const (
	EventMessage  = "message"
	EventDocument = "document"
)

// systemSender is the sender id of generated deal messages.
const systemSender = "system"

// Catalog is the read/write contract the marketplace needs from storage.
type Catalog interface {
	ListBuyers(ctx context.Context) ([]domain.BuyerProfile, error)
	ListSellers(ctx context.Context) ([]domain.SellerProfile, error)
	ListDeals(ctx context.Context) ([]domain.Deal, error)
	GetDeal(ctx context.Context, id string) (domain.Deal, error)
	AppendMessage(ctx context.Context, dealID string, msg domain.Message) error
	AddDocument(ctx context.Context, dealID string, doc domain.Document) error
}

// Publisher fans deal events out to live subscribers.
type Publisher interface {
	Publish(dealID, event string, payload any)
}

// Marketplace implements browsing and the deal workspace on top of a Catalog.
type Marketplace struct {
	catalog   Catalog
	publisher Publisher
	nowFn     func() time.Time
	idFn      func() string
}

// NewMarketplace wires the service. A nil publisher disables live events.
func NewMarketplace(catalog Catalog, publisher Publisher) *Marketplace {
	return &Marketplace{
		catalog:   catalog,
		publisher: publisher,
		nowFn:     nowUTC,
		idFn:      uuid.NewString,
	}
}

// WithClock overrides the time source, primarily for tests.
func (m *Marketplace) WithClock(now func() time.Time) *Marketplace {
	if now != nil {
		m.nowFn = now
	}
	return m
}

// WithIDs overrides the id generator, primarily for tests.
func (m *Marketplace) WithIDs(next func() string) *Marketplace {
	if next != nil {
		m.idFn = next
	}
	return m
}

// BrowseBuyers lists buyer profiles for the seller dashboard.
func (m *Marketplace) BrowseBuyers(ctx context.Context, q filter.Query) (domain.ListResult[domain.BuyerProfile], error) {
	buyers, err := m.catalog.ListBuyers(ctx)
	if err != nil {
		return domain.ListResult[domain.BuyerProfile]{}, fmt.Errorf("list buyers: %w", err)
	}
	return filter.Run(buyers, q), nil
}

// BrowseSellers lists seller profiles for the buyer dashboard.
func (m *Marketplace) BrowseSellers(ctx context.Context, q filter.Query) (domain.ListResult[domain.SellerProfile], error) {
	sellers, err := m.catalog.ListSellers(ctx)
	if err != nil {
		return domain.ListResult[domain.SellerProfile]{}, fmt.Errorf("list sellers: %w", err)
	}
	return filter.Run(sellers, q), nil
}

// Buyer returns a single buyer profile.
func (m *Marketplace) Buyer(ctx context.Context, id string) (domain.BuyerProfile, error) {
	buyers, err := m.catalog.ListBuyers(ctx)
	if err != nil {
		return domain.BuyerProfile{}, fmt.Errorf("list buyers: %w", err)
	}
	for _, b := range buyers {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.BuyerProfile{}, fmt.Errorf("buyer %s: %w", id, domain.ErrNotFound)
}

// Seller returns a single seller profile.
func (m *Marketplace) Seller(ctx context.Context, id string) (domain.SellerProfile, error) {
	sellers, err := m.catalog.ListSellers(ctx)
	if err != nil {
		return domain.SellerProfile{}, fmt.Errorf("list sellers: %w", err)
	}
	for _, s := range sellers {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.SellerProfile{}, fmt.Errorf("seller %s: %w", id, domain.ErrNotFound)
}

// Deals lists every deal workspace.
func (m *Marketplace) Deals(ctx context.Context) ([]domain.Deal, error) {
	deals, err := m.catalog.ListDeals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	return deals, nil
}

// Deal returns the deal workspace for id.
func (m *Marketplace) Deal(ctx context.Context, id string) (domain.Deal, error) {
	return m.catalog.GetDeal(ctx, id)
}

// SendMessage appends a text message authored by senderID.
func (m *Marketplace) SendMessage(ctx context.Context, dealID, senderID, content string) (domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Message{}, ErrEmptyMessage
	}
	msg := domain.Message{
		ID:        m.idFn(),
		SenderID:  senderID,
		Content:   content,
		Timestamp: m.nowFn(),
		Kind:      domain.MessageText,
	}
	if err := m.catalog.AppendMessage(ctx, dealID, msg); err != nil {
		return domain.Message{}, fmt.Errorf("append message to deal %s: %w", dealID, err)
	}
	m.publish(dealID, EventMessage, msg)
	return msg, nil
}

// UploadDocument records a pending document and announces it with a system
// message. Once the document is stored the upload succeeds; a failed
// announcement is only logged.
func (m *Marketplace) UploadDocument(ctx context.Context, dealID string, in UploadInput) (domain.Document, error) {
	name := sanitizeString(in.Name)
	if name == "" {
		return domain.Document{}, ErrEmptyUpload
	}
	now := m.nowFn()
	doc := domain.Document{
		ID:         m.idFn(),
		Name:       name,
		Category:   normalizeCategory(in.Category),
		URL:        "#",
		UploadedAt: now,
		UploadedBy: in.UploadedBy,
		Status:     domain.ReviewPending,
	}
	if err := m.catalog.AddDocument(ctx, dealID, doc); err != nil {
		return domain.Document{}, fmt.Errorf("add document to deal %s: %w", dealID, err)
	}
	m.publish(dealID, EventDocument, doc)

	notice := domain.Message{
		ID:          m.idFn(),
		SenderID:    systemSender,
		Content:     fmt.Sprintf("Document uploaded: %s", name),
		Timestamp:   now,
		Kind:        domain.MessageSystem,
		Attachments: []string{doc.ID},
	}
	if err := m.catalog.AppendMessage(ctx, dealID, notice); err != nil {
		logging.FromContext(ctx).Warn("document stored without announcement", "deal_id", dealID, "document_id", doc.ID, "error", err)
		return doc, nil
	}
	m.publish(dealID, EventMessage, notice)
	return doc, nil
}

func (m *Marketplace) publish(dealID, event string, payload any) {
	if m.publisher != nil {
		m.publisher.Publish(dealID, event, payload)
	}
}
