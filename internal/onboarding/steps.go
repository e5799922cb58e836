package onboarding

import "github.com/vanshika/bizbridge/internal/domain"

// QuestionKind selects the input control used for a question.
type QuestionKind string

const (
	KindText        QuestionKind = "text"
	KindSelect      QuestionKind = "select"
	KindMultiselect QuestionKind = "multiselect"
	KindNumber      QuestionKind = "number"
	KindTextarea    QuestionKind = "textarea"
)

// Category groups questions by topic.
type Category string

const (
	CategoryPersonal    Category = "personal"
	CategoryBusiness    Category = "business"
	CategoryPreferences Category = "preferences"
	CategoryGoals       Category = "goals"
	CategoryInvestment  Category = "investment"
	CategorySelling     Category = "selling"
)

// Question is a single questionnaire field.
type Question struct {
	ID       string
	Kind     QuestionKind
	Prompt   string
	Options  []string
	Required bool
	Category Category
}

// Step is one page of the questionnaire.
type Step struct {
	ID          string
	Title       string
	Description string
	Questions   []Question
}

var (
	industries   = []string{"Technology", "Healthcare", "Manufacturing", "Retail", "Services", "Food & Beverage", "Other"}
	revenueBands = []string{"Under $100K", "$100K - $500K", "$500K - $1M", "$1M - $5M", "$5M+"}
)

// Steps returns the ordered questionnaire for a role. Both roles share the
// personal step and differ in the two that follow.
func Steps(role domain.Role) []Step {
	steps := []Step{personalStep()}
	switch role {
	case domain.RoleBuyer:
		steps = append(steps, buyerBusinessStep(), investmentStep())
	case domain.RoleSeller:
		steps = append(steps, sellerBusinessStep(), sellingStep())
	default:
		return nil
	}
	return steps
}

func personalStep() Step {
	return Step{
		ID:          "personal",
		Title:       "Personal Information",
		Description: "Tell us about yourself",
		Questions: []Question{
			text("name", "What's your full name?", CategoryPersonal, true),
			text("email", "What's your email address?", CategoryPersonal, true),
			text("phone", "What's your phone number?", CategoryPersonal, false),
			text("location", "Where are you located?", CategoryPersonal, true),
		},
	}
}

func buyerBusinessStep() Step {
	return Step{
		ID:          "business",
		Title:       "Business Background",
		Description: "Help us understand your business experience",
		Questions: []Question{
			text("company", "What company do you represent?", CategoryBusiness, true),
			text("role", "What's your role?", CategoryBusiness, true),
			number("experience", "Years of business experience", CategoryBusiness),
			choice("industry", "Primary industry focus", CategoryBusiness, industries),
		},
	}
}

func investmentStep() Step {
	return Step{
		ID:          "investment",
		Title:       "Investment Preferences",
		Description: "What kind of acquisition are you looking for?",
		Questions: []Question{
			choice("investmentRange", "Investment range", CategoryInvestment,
				[]string{"$100K - $500K", "$500K - $1M", "$1M - $5M", "$5M - $10M", "$10M+"}),
			number("dealExperience", "Number of previous acquisitions", CategoryInvestment),
			choice("timeline", "Acquisition timeline", CategoryInvestment,
				[]string{"3-6 months", "6-12 months", "1-2 years", "2+ years"}),
		},
	}
}

func sellerBusinessStep() Step {
	return Step{
		ID:          "business",
		Title:       "Business Information",
		Description: "Tell us about the business you're selling",
		Questions: []Question{
			text("company", "Business name", CategoryBusiness, true),
			choice("industry", "Industry", CategoryBusiness, industries),
			choice("annualRevenue", "Annual revenue", CategoryBusiness, revenueBands),
			number("employeeCount", "Number of employees", CategoryBusiness),
		},
	}
}

func sellingStep() Step {
	return Step{
		ID:          "selling",
		Title:       "Selling Details",
		Description: "Help buyers understand your goals",
		Questions: []Question{
			{ID: "reasonForSelling", Kind: KindTextarea, Prompt: "Why are you selling?", Required: true, Category: CategorySelling},
			choice("timeline", "Preferred selling timeline", CategorySelling,
				[]string{"3-6 months", "6-12 months", "1-2 years", "Flexible"}),
			choice("businessValue", "Estimated business value", CategorySelling, revenueBands),
		},
	}
}

func text(id, prompt string, cat Category, required bool) Question {
	return Question{ID: id, Kind: KindText, Prompt: prompt, Required: required, Category: cat}
}

func number(id, prompt string, cat Category) Question {
	return Question{ID: id, Kind: KindNumber, Prompt: prompt, Required: true, Category: cat}
}

func choice(id, prompt string, cat Category, options []string) Question {
	return Question{ID: id, Kind: KindSelect, Prompt: prompt, Options: options, Required: true, Category: cat}
}
