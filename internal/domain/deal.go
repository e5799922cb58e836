package domain

import (
	"errors"
	"fmt"
	"time"
)

// DealStatus tracks where a deal is in its lifecycle.
type DealStatus string

const (
	DealPending    DealStatus = "pending"
	DealMatched    DealStatus = "matched"
	DealInProgress DealStatus = "in_progress"
	DealCompleted  DealStatus = "completed"
	DealCancelled  DealStatus = "cancelled"
)

// DocumentCategory groups deal documents.
type DocumentCategory string

const (
	DocumentFinancial   DocumentCategory = "financial"
	DocumentLegal       DocumentCategory = "legal"
	DocumentOperational DocumentCategory = "operational"
	DocumentOther       DocumentCategory = "other"
)

// ReviewStatus is the review state of a document.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewReviewed ReviewStatus = "reviewed"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// MessageKind distinguishes participant messages from generated ones.
type MessageKind string

const (
	MessageText     MessageKind = "text"
	MessageDocument MessageKind = "document"
	MessageSystem   MessageKind = "system"
)

// TaskStatus is shared by tasks in the due-diligence checklist.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// Priority ranks tasks.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// TaskCategory groups tasks by workstream.
type TaskCategory string

const (
	TaskDueDiligence TaskCategory = "due_diligence"
	TaskLegal        TaskCategory = "legal"
	TaskFinancial    TaskCategory = "financial"
	TaskOperational  TaskCategory = "operational"
)

// MilestoneStatus is either pending or completed.
type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneCompleted MilestoneStatus = "completed"
)

// KeyMetrics are the headline numbers extracted from a document.
type KeyMetrics struct {
	Revenue *float64
	Profit  *float64
	Growth  *float64
	Risk    string
}

// AIAnalysis is a precomputed summary attached to a document.
type AIAnalysis struct {
	Summary         string
	KeyMetrics      KeyMetrics
	Insights        []string
	Recommendations []string
	Confidence      float64
}

// Document is a file shared inside a deal.
type Document struct {
	ID         string
	Name       string
	Category   DocumentCategory
	URL        string
	UploadedAt time.Time
	UploadedBy string
	Status     ReviewStatus
	Analysis   *AIAnalysis
}

// Message is a single entry in the deal conversation.
type Message struct {
	ID          string
	SenderID    string
	Content     string
	Timestamp   time.Time
	Kind        MessageKind
	Attachments []string
}

// Task is a due-diligence work item.
type Task struct {
	ID          string
	Title       string
	Description string
	AssignedTo  string
	DueDate     time.Time
	Status      TaskStatus
	Priority    Priority
	Category    TaskCategory
}

// Milestone groups tasks under a dated checkpoint. Tasks holds task ids of the same deal.
type Milestone struct {
	ID          string
	Title       string
	Description string
	DueDate     time.Time
	Status      MilestoneStatus
	Tasks       []string
}

// Deal is the workspace shared by one buyer and one seller.
type Deal struct {
	ID            string
	BuyerID       string
	SellerID      string
	Status        DealStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
	BusinessValue float64
	Industry      string
	Location      string
	Timeline      string
	Documents     []Document
	Messages      []Message
	Tasks         []Task
	Milestones    []Milestone
}

// ErrNotFound is returned when a profile or deal id is unknown.
var ErrNotFound = errors.New("not found")

// ErrInvalidDeal wraps every invariant violation reported by Validate.
var ErrInvalidDeal = errors.New("invalid deal")

// Validate checks id uniqueness inside each collection and that milestones only
// reference tasks of this deal.
func (d Deal) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidDeal)
	}
	if err := uniqueIDs("document", len(d.Documents), func(i int) string { return d.Documents[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("message", len(d.Messages), func(i int) string { return d.Messages[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("task", len(d.Tasks), func(i int) string { return d.Tasks[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("milestone", len(d.Milestones), func(i int) string { return d.Milestones[i].ID }); err != nil {
		return err
	}
	for _, m := range d.Milestones {
		for _, taskID := range m.Tasks {
			if _, ok := d.Task(taskID); !ok {
				return fmt.Errorf("%w: milestone %s references unknown task %s", ErrInvalidDeal, m.ID, taskID)
			}
		}
	}
	return nil
}

func uniqueIDs(kind string, n int, id func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v == "" {
			return fmt.Errorf("%w: %s at position %d has no id", ErrInvalidDeal, kind, i)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: duplicate %s id %s", ErrInvalidDeal, kind, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Task looks up a task by id.
func (d Deal) Task(id string) (Task, bool) {
	for _, t := range d.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Document looks up a document by id.
func (d Deal) Document(id string) (Document, bool) {
	for _, doc := range d.Documents {
		if doc.ID == id {
			return doc, true
		}
	}
	return Document{}, false
}

// CompletedTasks counts tasks in the completed state.
func (d Deal) CompletedTasks() int {
	n := 0
	for _, t := range d.Tasks {
		if t.Status == TaskCompleted {
			n++
		}
	}
	return n
}

// Clone deep-copies the owned collections so callers can mutate the result freely.
func (d Deal) Clone() Deal {
	cp := d
	cp.Documents = append([]Document(nil), d.Documents...)
	for i := range cp.Documents {
		if a := cp.Documents[i].Analysis; a != nil {
			ac := *a
			ac.Insights = append([]string(nil), a.Insights...)
			ac.Recommendations = append([]string(nil), a.Recommendations...)
			cp.Documents[i].Analysis = &ac
		}
	}
	cp.Messages = append([]Message(nil), d.Messages...)
	for i := range cp.Messages {
		cp.Messages[i].Attachments = append([]string(nil), d.Messages[i].Attachments...)
	}
	cp.Tasks = append([]Task(nil), d.Tasks...)
	cp.Milestones = append([]Milestone(nil), d.Milestones...)
	for i := range cp.Milestones {
		cp.Milestones[i].Tasks = append([]string(nil), d.Milestones[i].Tasks...)
	}
	return cp
}
