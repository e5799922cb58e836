package present

// Tone is a colour family of the design system.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneNeutral Tone = "neutral"
	ToneDanger  Tone = "danger"
	TonePrimary Tone = "primary"
)

// Class returns the text and background utility classes for t.
func (t Tone) Class() string {
	return "text-" + string(t) + "-600 bg-" + string(t) + "-50"
}

// StatusTone maps task, document and deal statuses to a colour.
func StatusTone(status string) Tone {
	switch status {
	case "completed", "approved":
		return ToneSuccess
	case "in_progress", "reviewed":
		return ToneWarning
	case "rejected", "cancelled":
		return ToneDanger
	default:
		return ToneNeutral
	}
}

// PriorityTone maps task priority to a colour.
func PriorityTone(priority string) Tone {
	switch priority {
	case "high":
		return ToneDanger
	case "medium":
		return ToneWarning
	case "low":
		return ToneSuccess
	default:
		return ToneNeutral
	}
}

// VerificationTone maps verification status to a colour.
func VerificationTone(status string) Tone {
	switch status {
	case "verified":
		return ToneSuccess
	case "pending":
		return ToneWarning
	default:
		return ToneNeutral
	}
}

// StatusClass is StatusTone(status).Class().
func StatusClass(status string) string { return StatusTone(status).Class() }

// PriorityClass is PriorityTone(priority).Class().
func PriorityClass(priority string) string { return PriorityTone(priority).Class() }
