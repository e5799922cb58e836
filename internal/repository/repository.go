package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/graph"
)

// Repository stores the marketplace catalog in a property graph.
//
// Profiles are (:Buyer) and (:Seller) nodes. A (:Deal) links to its parties
// through HAS_BUYER/HAS_SELLER and owns (:Document), (:Message), (:Task) and
// (:Milestone) nodes; milestones point at their tasks through INCLUDES with a
// position property that preserves order.
type Repository struct {
	client graph.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graph.Client) *Repository {
	return &Repository{client: client}
}

// EnsureSchema creates the uniqueness constraints the repository relies on.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaCypher {
		if _, err := r.client.ExecuteWrite(ctx, stmt, nil); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// UpsertBuyer creates or refreshes a buyer node.
func (r *Repository) UpsertBuyer(ctx context.Context, b domain.BuyerProfile) error {
	if b.ID == "" {
		return errors.New("buyer id is required")
	}
	props := counterpartProperties(b.Counterpart)
	props["investmentMin"] = b.InvestmentRange.Min
	props["investmentMax"] = b.InvestmentRange.Max
	props["preferredIndustries"] = append([]string{}, b.PreferredIndustries...)
	props["dealExperience"] = int64(b.DealExperience)

	_, err := r.client.ExecuteWrite(ctx, upsertBuyerCypher, map[string]any{
		"buyerId": b.ID,
		"props":   props,
	})
	if err != nil {
		return fmt.Errorf("upsert buyer %s: %w", b.ID, err)
	}
	return nil
}

// UpsertSeller creates or refreshes a seller node.
func (r *Repository) UpsertSeller(ctx context.Context, s domain.SellerProfile) error {
	if s.ID == "" {
		return errors.New("seller id is required")
	}
	props := counterpartProperties(s.Counterpart)
	props["businessValue"] = s.BusinessValue
	props["annualRevenue"] = s.AnnualRevenue
	props["profitMargin"] = int64(s.ProfitMargin)
	props["employeeCount"] = int64(s.EmployeeCount)
	props["yearsInBusiness"] = int64(s.YearsInBusiness)
	props["reasonForSelling"] = s.ReasonForSelling
	props["timeline"] = s.Timeline

	_, err := r.client.ExecuteWrite(ctx, upsertSellerCypher, map[string]any{
		"sellerId": s.ID,
		"props":    props,
	})
	if err != nil {
		return fmt.Errorf("upsert seller %s: %w", s.ID, err)
	}
	return nil
}

// UpsertDeal writes a deal and all owned records in one transaction.
func (r *Repository) UpsertDeal(ctx context.Context, d domain.Deal) error {
	if err := d.Validate(); err != nil {
		return err
	}
	statements := []graph.Statement{
		{Query: upsertDealCypher, Params: map[string]any{
			"dealId":   d.ID,
			"buyerId":  d.BuyerID,
			"sellerId": d.SellerID,
			"props":    dealProperties(d),
		}},
		{Query: upsertDocumentsCypher, Params: map[string]any{"dealId": d.ID, "documents": documentParams(d.Documents)}},
		{Query: upsertMessagesCypher, Params: map[string]any{"dealId": d.ID, "messages": messageParams(d.Messages)}},
		{Query: upsertTasksCypher, Params: map[string]any{"dealId": d.ID, "tasks": taskParams(d.Tasks)}},
		{Query: upsertMilestonesCypher, Params: map[string]any{"dealId": d.ID, "milestones": milestoneParams(d.Milestones)}},
	}
	if err := r.client.ExecuteBatch(ctx, statements); err != nil {
		return fmt.Errorf("upsert deal %s: %w", d.ID, err)
	}
	return nil
}

// ListBuyers returns every buyer ordered by id.
func (r *Repository) ListBuyers(ctx context.Context) ([]domain.BuyerProfile, error) {
	res, err := r.client.ExecuteRead(ctx, listBuyersCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}
	out := make([]domain.BuyerProfile, 0, len(res.Records))
	for _, rec := range res.Records {
		out = append(out, domain.BuyerProfile{
			Counterpart: counterpartFromRecord(rec),
			InvestmentRange: domain.MoneyRange{
				Min: toFloat64(rec["investmentMin"]),
				Max: toFloat64(rec["investmentMax"]),
			},
			PreferredIndustries: toStrings(rec["preferredIndustries"]),
			DealExperience:      toInt(rec["dealExperience"]),
		})
	}
	return out, nil
}

// ListSellers returns every seller ordered by id.
func (r *Repository) ListSellers(ctx context.Context) ([]domain.SellerProfile, error) {
	res, err := r.client.ExecuteRead(ctx, listSellersCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	out := make([]domain.SellerProfile, 0, len(res.Records))
	for _, rec := range res.Records {
		out = append(out, domain.SellerProfile{
			Counterpart:      counterpartFromRecord(rec),
			BusinessValue:    toFloat64(rec["businessValue"]),
			AnnualRevenue:    toFloat64(rec["annualRevenue"]),
			ProfitMargin:     toInt(rec["profitMargin"]),
			EmployeeCount:    toInt(rec["employeeCount"]),
			YearsInBusiness:  toInt(rec["yearsInBusiness"]),
			ReasonForSelling: toString(rec["reasonForSelling"]),
			Timeline:         toString(rec["timeline"]),
		})
	}
	return out, nil
}

// ListDeals returns every deal with its owned records, ordered by id. It
// issues one header query plus one query per child collection.
func (r *Repository) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	res, err := r.client.ExecuteRead(ctx, listDealsCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	out := make([]domain.Deal, 0, len(res.Records))
	for _, rec := range res.Records {
		out = append(out, dealFromRecord(rec))
	}
	if err := r.fetchChildren(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDeal loads one deal. Unknown ids yield domain.ErrNotFound.
func (r *Repository) GetDeal(ctx context.Context, id string) (domain.Deal, error) {
	if id == "" {
		return domain.Deal{}, errors.New("deal id is required")
	}
	res, err := r.client.ExecuteRead(ctx, getDealCypher, map[string]any{"dealId": id})
	if err != nil {
		return domain.Deal{}, fmt.Errorf("get deal %s: %w", id, err)
	}
	rec, ok := res.First()
	if !ok {
		return domain.Deal{}, fmt.Errorf("deal %s: %w", id, domain.ErrNotFound)
	}
	deals := []domain.Deal{dealFromRecord(rec)}
	if err := r.fetchChildren(ctx, deals); err != nil {
		return domain.Deal{}, err
	}
	return deals[0], nil
}

// AppendMessage adds a message node to an existing deal.
func (r *Repository) AppendMessage(ctx context.Context, dealID string, msg domain.Message) error {
	params := messageParams([]domain.Message{msg})[0]
	params["dealId"] = dealID
	params["updatedAt"] = formatTime(msg.Timestamp)
	res, err := r.client.ExecuteWrite(ctx, appendMessageCypher, params)
	if err != nil {
		return fmt.Errorf("append message to deal %s: %w", dealID, err)
	}
	if _, ok := res.First(); !ok {
		return fmt.Errorf("deal %s: %w", dealID, domain.ErrNotFound)
	}
	return nil
}

// AddDocument adds a document node to an existing deal.
func (r *Repository) AddDocument(ctx context.Context, dealID string, doc domain.Document) error {
	params := documentParams([]domain.Document{doc})[0]
	params["dealId"] = dealID
	params["updatedAt"] = formatTime(doc.UploadedAt)
	res, err := r.client.ExecuteWrite(ctx, addDocumentCypher, params)
	if err != nil {
		return fmt.Errorf("add document to deal %s: %w", dealID, err)
	}
	if _, ok := res.First(); !ok {
		return fmt.Errorf("deal %s: %w", dealID, domain.ErrNotFound)
	}
	return nil
}

// fetchChildren fills the documents, messages, tasks and milestones of deals
// in place. Rows for ids outside deals are ignored.
func (r *Repository) fetchChildren(ctx context.Context, deals []domain.Deal) error {
	if len(deals) == 0 {
		return nil
	}
	index := make(map[string]*domain.Deal, len(deals))
	ids := make([]any, 0, len(deals))
	for i := range deals {
		index[deals[i].ID] = &deals[i]
		ids = append(ids, deals[i].ID)
	}
	params := map[string]any{"dealIds": ids}

	fetches := []struct {
		what   string
		cypher string
		apply  func(*domain.Deal, graph.Record)
	}{
		{"documents", dealDocumentsCypher, func(d *domain.Deal, rec graph.Record) {
			d.Documents = append(d.Documents, documentFromRecord(rec))
		}},
		{"messages", dealMessagesCypher, func(d *domain.Deal, rec graph.Record) {
			d.Messages = append(d.Messages, messageFromRecord(rec))
		}},
		{"tasks", dealTasksCypher, func(d *domain.Deal, rec graph.Record) {
			d.Tasks = append(d.Tasks, taskFromRecord(rec))
		}},
		{"milestones", dealMilestonesCypher, func(d *domain.Deal, rec graph.Record) {
			d.Milestones = append(d.Milestones, milestoneFromRecord(rec))
		}},
	}
	for _, f := range fetches {
		res, err := r.client.ExecuteRead(ctx, f.cypher, params)
		if err != nil {
			return fmt.Errorf("fetch deal %s: %w", f.what, err)
		}
		for _, rec := range res.Records {
			if d, ok := index[toString(rec["dealId"])]; ok {
				f.apply(d, rec)
			}
		}
	}
	return nil
}

func messageFromRecord(rec graph.Record) domain.Message {
	return domain.Message{
		ID:          toString(rec["id"]),
		SenderID:    toString(rec["senderId"]),
		Content:     toString(rec["content"]),
		Timestamp:   toTime(rec["timestamp"]),
		Kind:        domain.MessageKind(toString(rec["kind"])),
		Attachments: toStrings(rec["attachments"]),
	}
}

func taskFromRecord(rec graph.Record) domain.Task {
	return domain.Task{
		ID:          toString(rec["id"]),
		Title:       toString(rec["title"]),
		Description: toString(rec["description"]),
		AssignedTo:  toString(rec["assignedTo"]),
		DueDate:     toTime(rec["dueDate"]),
		Status:      domain.TaskStatus(toString(rec["status"])),
		Priority:    domain.Priority(toString(rec["priority"])),
		Category:    domain.TaskCategory(toString(rec["category"])),
	}
}

func milestoneFromRecord(rec graph.Record) domain.Milestone {
	return domain.Milestone{
		ID:          toString(rec["id"]),
		Title:       toString(rec["title"]),
		Description: toString(rec["description"]),
		DueDate:     toTime(rec["dueDate"]),
		Status:      domain.MilestoneStatus(toString(rec["status"])),
		Tasks:       toStrings(rec["taskIds"]),
	}
}
