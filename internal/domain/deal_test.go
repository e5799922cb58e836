package domain

import (
	"errors"
	"testing"
)

func TestDealValidate(t *testing.T) {
	base := func() Deal {
		return Deal{
			ID:         "1",
			Documents:  []Document{{ID: "d1"}, {ID: "d2"}},
			Messages:   []Message{{ID: "m1"}},
			Tasks:      []Task{{ID: "t1"}, {ID: "t2"}},
			Milestones: []Milestone{{ID: "ms1", Tasks: []string{"t1", "t2"}}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Deal)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Deal) {}},
		{name: "missing id", mutate: func(d *Deal) { d.ID = "" }, wantErr: true},
		{name: "duplicate document", mutate: func(d *Deal) { d.Documents[1].ID = "d1" }, wantErr: true},
		{name: "duplicate task", mutate: func(d *Deal) { d.Tasks = append(d.Tasks, Task{ID: "t1"}) }, wantErr: true},
		{name: "dangling milestone task", mutate: func(d *Deal) { d.Milestones[0].Tasks = []string{"t9"} }, wantErr: true},
		{name: "empty milestone", mutate: func(d *Deal) { d.Milestones[0].Tasks = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base()
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDeal) {
					t.Fatalf("expected ErrInvalidDeal, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestDealCloneIsolatesCollections(t *testing.T) {
	d := Deal{
		ID:         "1",
		Messages:   []Message{{ID: "m1", Content: "hello"}},
		Milestones: []Milestone{{ID: "ms1", Tasks: []string{"t1"}}},
	}
	cp := d.Clone()
	cp.Messages[0].Content = "changed"
	cp.Milestones[0].Tasks[0] = "t2"

	if d.Messages[0].Content != "hello" {
		t.Fatalf("expected original message untouched, got %q", d.Messages[0].Content)
	}
	if d.Milestones[0].Tasks[0] != "t1" {
		t.Fatalf("expected original milestone untouched, got %q", d.Milestones[0].Tasks[0])
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole(" Buyer "); err != nil || r != RoleBuyer {
		t.Fatalf("expected buyer, got %q (%v)", r, err)
	}
	if _, err := ParseRole("admin"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if RoleSeller.Counterpart() != RoleBuyer {
		t.Fatalf("expected seller counterpart to be buyer")
	}
}

func TestProfileUpdateApply(t *testing.T) {
	bio := "new bio"
	p := Profile{Company: "Acme", Bio: "old"}
	got := ProfileUpdate{Bio: &bio}.Apply(p)
	if got.Bio != "new bio" || got.Company != "Acme" {
		t.Fatalf("expected only bio to change, got %+v", got)
	}
}
