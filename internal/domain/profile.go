package domain

// VerificationStatus describes how far a counterpart's identity was checked.
type VerificationStatus string

const (
	VerificationVerified   VerificationStatus = "verified"
	VerificationPending    VerificationStatus = "pending"
	VerificationUnverified VerificationStatus = "unverified"
)

// Reputation aggregates how a counterpart behaves on the marketplace.
type Reputation struct {
	ResponseRate        int     // percent
	AverageResponseTime int     // hours
	CompletedDeals      int
	Rating              float64
	Reviews             int
}

// Counterpart carries the fields shared by buyer and seller profiles.
type Counterpart struct {
	ID           string
	Name         string
	Company      string
	Industry     string
	Experience   int
	Location     string
	Avatar       string
	Bio          string
	Verification VerificationStatus
	Reputation   Reputation
}

// Verified reports whether the counterpart passed verification.
func (c Counterpart) Verified() bool {
	return c.Verification == VerificationVerified
}

// MoneyRange is an inclusive amount range in US dollars.
type MoneyRange struct {
	Min float64
	Max float64
}

// BuyerProfile describes a prospective acquirer.
type BuyerProfile struct {
	Counterpart
	InvestmentRange     MoneyRange
	PreferredIndustries []string
	DealExperience      int
}

// Base exposes the shared profile fields.
func (b BuyerProfile) Base() Counterpart { return b.Counterpart }

// DealCount is the number of acquisitions the buyer has closed before.
func (b BuyerProfile) DealCount() int { return b.DealExperience }

// SellerProfile describes a business owner looking for an exit.
type SellerProfile struct {
	Counterpart
	BusinessValue    float64
	AnnualRevenue    float64
	ProfitMargin     int // percent
	EmployeeCount    int
	YearsInBusiness  int
	ReasonForSelling string
	Timeline         string
}

// Base exposes the shared profile fields.
func (s SellerProfile) Base() Counterpart { return s.Counterpart }

// DealCount is the number of deals the seller completed on the marketplace.
func (s SellerProfile) DealCount() int { return s.Reputation.CompletedDeals }
