package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/filter"
	"github.com/vanshika/bizbridge/internal/logging"
	"github.com/vanshika/bizbridge/internal/realtime"
	"github.com/vanshika/bizbridge/internal/service"
)

type categoryCountResponse struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

type listResponse[T any] struct {
	Items      []T                     `json:"items"`
	Total      int                     `json:"total"`
	Counts     []categoryCountResponse `json:"counts"`
	Industries []string                `json:"industries"`
	Suggestion string                  `json:"suggestion,omitempty"`
}

type keyMetricsResponse struct {
	Revenue *float64 `json:"revenue,omitempty"`
	Profit  *float64 `json:"profit,omitempty"`
	Growth  *float64 `json:"growth,omitempty"`
	Risk    string   `json:"risk,omitempty"`
}

type analysisResponse struct {
	Summary         string             `json:"summary"`
	KeyMetrics      keyMetricsResponse `json:"keyMetrics"`
	Insights        []string           `json:"insights"`
	Recommendations []string           `json:"recommendations"`
	Confidence      float64            `json:"confidence"`
}

type documentResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	URL        string            `json:"url"`
	UploadedAt string            `json:"uploadedAt"`
	UploadedBy string            `json:"uploadedBy"`
	Status     string            `json:"status"`
	Analysis   *analysisResponse `json:"aiAnalysis,omitempty"`
}

type messageResponse struct {
	ID          string   `json:"id"`
	SenderID    string   `json:"senderId"`
	Content     string   `json:"content"`
	Timestamp   string   `json:"timestamp"`
	Kind        string   `json:"type"`
	Attachments []string `json:"attachments,omitempty"`
}

type taskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

type milestoneResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Status      string   `json:"status"`
	Tasks       []string `json:"tasks"`
}

type dealResponse struct {
	ID            string              `json:"id"`
	BuyerID       string              `json:"buyerId"`
	SellerID      string              `json:"sellerId"`
	Status        string              `json:"status"`
	CreatedAt     string              `json:"createdAt"`
	UpdatedAt     string              `json:"updatedAt"`
	BusinessValue float64             `json:"businessValue"`
	Industry      string              `json:"industry"`
	Location      string              `json:"location"`
	Timeline      string              `json:"timeline"`
	Documents     []documentResponse  `json:"documents"`
	Messages      []messageResponse   `json:"messages"`
	Tasks         []taskResponse      `json:"tasks"`
	Milestones    []milestoneResponse `json:"milestones"`
}

func (h *handlers) apiBuyers(w http.ResponseWriter, r *http.Request) {
	res, err := h.market.BrowseBuyers(r.Context(), apiQuery(r))
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to list buyers", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list buyers")
		return
	}
	respondJSON(w, http.StatusOK, toListResponse(res, service.BuyerInputFrom))
}

func (h *handlers) apiSellers(w http.ResponseWriter, r *http.Request) {
	res, err := h.market.BrowseSellers(r.Context(), apiQuery(r))
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to list sellers", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list sellers")
		return
	}
	respondJSON(w, http.StatusOK, toListResponse(res, service.SellerInputFrom))
}

func (h *handlers) apiDeal(w http.ResponseWriter, r *http.Request) {
	dealID := r.PathValue("dealId")
	deal, err := h.market.Deal(r.Context(), dealID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "deal not found")
			return
		}
		logging.FromContext(r.Context()).Error("failed to load deal", "error", err, "dealId", dealID)
		writeError(w, http.StatusInternalServerError, "failed to load deal")
		return
	}
	respondJSON(w, http.StatusOK, toDealResponse(deal))
}

func apiQuery(r *http.Request) filter.Query {
	q := r.URL.Query()
	return filter.Query{
		Search:   q.Get("q"),
		Category: filter.ParseCategory(q.Get("category")),
		Industry: q.Get("industry"),
	}
}

func toListResponse[P, T any](res domain.ListResult[P], convert func(P) T) listResponse[T] {
	out := listResponse[T]{
		Items:      make([]T, 0, len(res.Items)),
		Total:      res.Total,
		Counts:     make([]categoryCountResponse, 0, len(res.Counts)),
		Industries: append([]string{}, res.Industries...),
		Suggestion: res.Suggestion,
	}
	for _, item := range res.Items {
		out.Items = append(out.Items, convert(item))
	}
	for _, c := range res.Counts {
		out.Counts = append(out.Counts, categoryCountResponse{Category: c.Category, Label: c.Label, Count: c.Count})
	}
	return out
}

func toDealResponse(d domain.Deal) dealResponse {
	resp := dealResponse{
		ID:            d.ID,
		BuyerID:       d.BuyerID,
		SellerID:      d.SellerID,
		Status:        string(d.Status),
		CreatedAt:     formatTime(d.CreatedAt),
		UpdatedAt:     formatTime(d.UpdatedAt),
		BusinessValue: d.BusinessValue,
		Industry:      d.Industry,
		Location:      d.Location,
		Timeline:      d.Timeline,
		Documents:     []documentResponse{},
		Messages:      []messageResponse{},
		Tasks:         []taskResponse{},
		Milestones:    []milestoneResponse{},
	}
	for _, doc := range d.Documents {
		resp.Documents = append(resp.Documents, toDocumentResponse(doc))
	}
	for _, m := range d.Messages {
		resp.Messages = append(resp.Messages, toMessageResponse(m))
	}
	for _, t := range d.Tasks {
		resp.Tasks = append(resp.Tasks, taskResponse{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			AssignedTo:  t.AssignedTo,
			DueDate:     formatTime(t.DueDate),
			Status:      string(t.Status),
			Priority:    string(t.Priority),
			Category:    string(t.Category),
		})
	}
	for _, m := range d.Milestones {
		resp.Milestones = append(resp.Milestones, milestoneResponse{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			DueDate:     formatTime(m.DueDate),
			Status:      string(m.Status),
			Tasks:       append([]string{}, m.Tasks...),
		})
	}
	return resp
}

func toDocumentResponse(doc domain.Document) documentResponse {
	resp := documentResponse{
		ID:         doc.ID,
		Name:       doc.Name,
		Category:   string(doc.Category),
		URL:        doc.URL,
		UploadedAt: formatTime(doc.UploadedAt),
		UploadedBy: doc.UploadedBy,
		Status:     string(doc.Status),
	}
	if a := doc.Analysis; a != nil {
		resp.Analysis = &analysisResponse{
			Summary: a.Summary,
			KeyMetrics: keyMetricsResponse{
				Revenue: a.KeyMetrics.Revenue,
				Profit:  a.KeyMetrics.Profit,
				Growth:  a.KeyMetrics.Growth,
				Risk:    a.KeyMetrics.Risk,
			},
			Insights:        append([]string{}, a.Insights...),
			Recommendations: append([]string{}, a.Recommendations...),
			Confidence:      a.Confidence,
		}
	}
	return resp
}

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		Content:     m.Content,
		Timestamp:   formatTime(m.Timestamp),
		Kind:        string(m.Kind),
		Attachments: append([]string(nil), m.Attachments...),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// hubPublisher forwards marketplace events to the websocket hub in their
// JSON API shape.
type hubPublisher struct {
	hub *realtime.Hub
}

// NewPublisher adapts hub to the marketplace's event port.
func NewPublisher(hub *realtime.Hub) service.Publisher {
	return hubPublisher{hub: hub}
}

func (p hubPublisher) Publish(dealID, event string, payload any) {
	switch v := payload.(type) {
	case domain.Message:
		payload = toMessageResponse(v)
	case domain.Document:
		payload = toDocumentResponse(v)
	}
	p.hub.Publish(dealID, event, payload)
}
