package repository

import (
	"fmt"
	"time"

	"github.com/vanshika/bizbridge/internal/domain"
)

func counterpartProperties(c domain.Counterpart) map[string]any {
	return map[string]any{
		"name":                c.Name,
		"company":             c.Company,
		"industry":            c.Industry,
		"experience":          int64(c.Experience),
		"location":            c.Location,
		"avatar":              c.Avatar,
		"bio":                 c.Bio,
		"verificationStatus":  string(c.Verification),
		"responseRate":        int64(c.Reputation.ResponseRate),
		"averageResponseTime": int64(c.Reputation.AverageResponseTime),
		"completedDeals":      int64(c.Reputation.CompletedDeals),
		"rating":              c.Reputation.Rating,
		"reviews":             int64(c.Reputation.Reviews),
	}
}

func counterpartFromRecord(rec map[string]any) domain.Counterpart {
	return domain.Counterpart{
		ID:           toString(rec["id"]),
		Name:         toString(rec["name"]),
		Company:      toString(rec["company"]),
		Industry:     toString(rec["industry"]),
		Experience:   toInt(rec["experience"]),
		Location:     toString(rec["location"]),
		Avatar:       toString(rec["avatar"]),
		Bio:          toString(rec["bio"]),
		Verification: domain.VerificationStatus(toString(rec["verificationStatus"])),
		Reputation: domain.Reputation{
			ResponseRate:        toInt(rec["responseRate"]),
			AverageResponseTime: toInt(rec["averageResponseTime"]),
			CompletedDeals:      toInt(rec["completedDeals"]),
			Rating:              toFloat64(rec["rating"]),
			Reviews:             toInt(rec["reviews"]),
		},
	}
}

func dealProperties(d domain.Deal) map[string]any {
	return map[string]any{
		"status":        string(d.Status),
		"createdAt":     formatTime(d.CreatedAt),
		"updatedAt":     formatTime(d.UpdatedAt),
		"businessValue": d.BusinessValue,
		"industry":      d.Industry,
		"location":      d.Location,
		"timeline":      d.Timeline,
	}
}

func dealFromRecord(rec map[string]any) domain.Deal {
	return domain.Deal{
		ID:            toString(rec["id"]),
		BuyerID:       toString(rec["buyerId"]),
		SellerID:      toString(rec["sellerId"]),
		Status:        domain.DealStatus(toString(rec["status"])),
		CreatedAt:     toTime(rec["createdAt"]),
		UpdatedAt:     toTime(rec["updatedAt"]),
		BusinessValue: toFloat64(rec["businessValue"]),
		Industry:      toString(rec["industry"]),
		Location:      toString(rec["location"]),
		Timeline:      toString(rec["timeline"]),
	}
}

func documentParams(docs []domain.Document) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for i, doc := range docs {
		props := map[string]any{
			"name":        doc.Name,
			"category":    string(doc.Category),
			"url":         doc.URL,
			"uploadedAt":  formatTime(doc.UploadedAt),
			"uploadedBy":  doc.UploadedBy,
			"status":      string(doc.Status),
			"position":    int64(i),
			"hasAnalysis": doc.Analysis != nil,
		}
		if a := doc.Analysis; a != nil {
			props["analysisSummary"] = a.Summary
			props["analysisRevenue"] = floatOrNil(a.KeyMetrics.Revenue)
			props["analysisProfit"] = floatOrNil(a.KeyMetrics.Profit)
			props["analysisGrowth"] = floatOrNil(a.KeyMetrics.Growth)
			props["analysisRisk"] = a.KeyMetrics.Risk
			props["analysisInsights"] = append([]string{}, a.Insights...)
			props["analysisRecommendations"] = append([]string{}, a.Recommendations...)
			props["analysisConfidence"] = a.Confidence
		}
		out = append(out, map[string]any{"id": doc.ID, "props": props})
	}
	return out
}

func documentFromRecord(rec map[string]any) domain.Document {
	doc := domain.Document{
		ID:         toString(rec["id"]),
		Name:       toString(rec["name"]),
		Category:   domain.DocumentCategory(toString(rec["category"])),
		URL:        toString(rec["url"]),
		UploadedAt: toTime(rec["uploadedAt"]),
		UploadedBy: toString(rec["uploadedBy"]),
		Status:     domain.ReviewStatus(toString(rec["status"])),
	}
	if has, _ := rec["hasAnalysis"].(bool); has {
		doc.Analysis = &domain.AIAnalysis{
			Summary: toString(rec["analysisSummary"]),
			KeyMetrics: domain.KeyMetrics{
				Revenue: toFloatPtr(rec["analysisRevenue"]),
				Profit:  toFloatPtr(rec["analysisProfit"]),
				Growth:  toFloatPtr(rec["analysisGrowth"]),
				Risk:    toString(rec["analysisRisk"]),
			},
			Insights:        toStrings(rec["analysisInsights"]),
			Recommendations: toStrings(rec["analysisRecommendations"]),
			Confidence:      toFloat64(rec["analysisConfidence"]),
		}
	}
	return doc
}

func messageParams(msgs []domain.Message) []map[string]any {
	out := make([]map[string]any, 0, len(msgs))
	for i, m := range msgs {
		out = append(out, map[string]any{
			"id": m.ID,
			"props": map[string]any{
				"senderId":    m.SenderID,
				"content":     m.Content,
				"timestamp":   formatTime(m.Timestamp),
				"kind":        string(m.Kind),
				"attachments": append([]string{}, m.Attachments...),
				"position":    int64(i),
			},
		})
	}
	return out
}

func taskParams(tasks []domain.Task) []map[string]any {
	out := make([]map[string]any, 0, len(tasks))
	for i, t := range tasks {
		out = append(out, map[string]any{
			"id": t.ID,
			"props": map[string]any{
				"title":       t.Title,
				"description": t.Description,
				"assignedTo":  t.AssignedTo,
				"dueDate":     formatTime(t.DueDate),
				"status":      string(t.Status),
				"priority":    string(t.Priority),
				"category":    string(t.Category),
				"position":    int64(i),
			},
		})
	}
	return out
}

func milestoneParams(milestones []domain.Milestone) []map[string]any {
	out := make([]map[string]any, 0, len(milestones))
	for i, m := range milestones {
		out = append(out, map[string]any{
			"id":      m.ID,
			"taskIds": append([]string{}, m.Tasks...),
			"props": map[string]any{
				"title":       m.Title,
				"description": m.Description,
				"dueDate":     formatTime(m.DueDate),
				"status":      string(m.Status),
				"position":    int64(i),
			},
		})
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func floatOrNil(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func toFloat64(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

func toFloatPtr(val any) *float64 {
	if val == nil {
		return nil
	}
	f := toFloat64(val)
	return &f
}

func toInt(val any) int {
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func toStrings(val any) []string {
	switch v := val.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, toString(item))
		}
		return out
	default:
		return nil
	}
}

func toTime(val any) time.Time {
	switch v := val.(type) {
	case time.Time:
		return v
	case string:
		if v == "" {
			return time.Time{}
		}
		if parsed, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
