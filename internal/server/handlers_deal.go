package server

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/logging"
	"github.com/vanshika/bizbridge/internal/present"
	"github.com/vanshika/bizbridge/internal/service"
)

var dealTabs = []string{"overview", "documents", "tasks", "messages", "timeline"}

type dealView struct {
	Deal           domain.Deal
	Tab            string
	Tabs           []tabLink
	BuyerName      string
	SellerName     string
	DocumentCount  int
	TaskCount      int
	CompletedTasks int
	MessageCount   int
	Documents      []documentRow
	SelectedDoc    *domain.Document
	Messages       []messageView
	Milestones     []milestoneView
	PostURL        string
	UploadURL      string
	LiveURL        string
}

type documentRow struct {
	domain.Document
	URL      string
	Selected bool
}

type messageView struct {
	domain.Message
	Sender string
	Mine   bool
	System bool
}

type milestoneView struct {
	domain.Milestone
	Tasks []domain.Task
}

func dealPath(id string) string {
	return "/dashboard/deals/" + url.PathEscape(id)
}

func (h *handlers) dealRoom(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	user := sess.State().User()
	dealID := r.PathValue("dealId")

	deal, err := h.market.Deal(r.Context(), dealID)
	if err != nil {
		h.failed(w, r, "load deal", err)
		return
	}

	tab := r.URL.Query().Get("tab")
	if !contains(dealTabs, tab) {
		tab = dealTabs[0]
	}
	base := dealPath(deal.ID)

	view := dealView{
		Deal:           deal,
		Tab:            tab,
		BuyerName:      h.partyName(r.Context(), domain.RoleBuyer, deal.BuyerID),
		SellerName:     h.partyName(r.Context(), domain.RoleSeller, deal.SellerID),
		DocumentCount:  len(deal.Documents),
		TaskCount:      len(deal.Tasks),
		CompletedTasks: deal.CompletedTasks(),
		MessageCount:   len(deal.Messages),
		PostURL:        base + "/messages",
		UploadURL:      base + "/documents",
		LiveURL:        base + "/live",
	}
	for _, id := range dealTabs {
		view.Tabs = append(view.Tabs, tabLink{ID: id, Label: present.Title(id), URL: base + "?tab=" + id, Active: id == tab})
	}

	selectedDoc := r.URL.Query().Get("doc")
	for _, doc := range deal.Documents {
		row := documentRow{Document: doc, URL: base + "?tab=documents&doc=" + url.QueryEscape(doc.ID), Selected: doc.ID == selectedDoc}
		view.Documents = append(view.Documents, row)
		if row.Selected {
			d := doc
			view.SelectedDoc = &d
		}
	}

	names := map[string]string{
		deal.BuyerID:  view.BuyerName,
		deal.SellerID: view.SellerName,
	}
	for _, msg := range deal.Messages {
		mv := messageView{Message: msg, Sender: names[msg.SenderID], System: msg.Kind == domain.MessageSystem}
		if user != nil {
			mv.Mine = msg.SenderID == user.ID
			if mv.Mine {
				mv.Sender = user.Name
			}
		}
		if mv.Sender == "" {
			mv.Sender = msg.SenderID
		}
		view.Messages = append(view.Messages, mv)
	}

	for _, m := range deal.Milestones {
		mv := milestoneView{Milestone: m}
		for _, taskID := range m.Tasks {
			if task, ok := deal.Task(taskID); ok {
				mv.Tasks = append(mv.Tasks, task)
			}
		}
		view.Milestones = append(view.Milestones, mv)
	}

	h.render(w, r, http.StatusOK, "deal.html", newPage("Deal room", user, "Deals"), view)
}

// sendMessage posts a text message as the current user. Blank messages are
// ignored.
func (h *handlers) sendMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	dealID := r.PathValue("dealId")

	_, err := h.market.SendMessage(r.Context(), dealID, user.ID, r.PostFormValue("content"))
	switch {
	case err == nil, errors.Is(err, service.ErrEmptyMessage):
	default:
		h.failed(w, r, "send message", err)
		return
	}
	http.Redirect(w, r, dealPath(dealID)+"?tab=messages", http.StatusSeeOther)
}

// uploadDocument accepts a multipart "file" plus an optional "category".
// Only metadata is kept; the bytes are discarded.
func (h *handlers) uploadDocument(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	dealID := r.PathValue("dealId")

	if r.ContentLength > h.uploadMaxBytes {
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxBytes)
	if err := r.ParseMultipartForm(h.uploadMaxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	_ = file.Close()

	doc, err := h.market.UploadDocument(r.Context(), dealID, service.UploadInput{
		Name:       header.Filename,
		Category:   r.FormValue("category"),
		UploadedBy: user.ID,
		Size:       header.Size,
	})
	switch {
	case errors.Is(err, service.ErrEmptyUpload):
		http.Error(w, "file name is required", http.StatusBadRequest)
		return
	case err != nil:
		h.failed(w, r, "upload document", err)
		return
	}
	logging.FromContext(r.Context()).Info("document uploaded", "deal_id", dealID, "document_id", doc.ID, "bytes", header.Size)
	http.Redirect(w, r, dealPath(dealID)+"?tab=documents", http.StatusSeeOther)
}

// liveFeed streams the deal's message and document events over a websocket.
func (h *handlers) liveFeed(w http.ResponseWriter, r *http.Request) {
	dealID := r.PathValue("dealId")
	if _, err := h.market.Deal(r.Context(), dealID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.failed(w, r, "load deal", err)
		return
	}
	if h.hub == nil {
		http.Error(w, "live updates unavailable", http.StatusServiceUnavailable)
		return
	}
	h.hub.Serve(w, r, dealID, h.originPatterns)
}

// originPatterns turns configured CORS origins into websocket host patterns.
func originPatterns(origins []string) []string {
	var out []string
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			out = append(out, u.Host)
			continue
		}
		out = append(out, origin)
	}
	return out
}
