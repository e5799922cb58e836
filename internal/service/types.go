package service

import (
	"time"

	"github.com/vanshika/bizbridge/internal/domain"
)

// ReputationInput mirrors domain.Reputation for inbound datasets.
type ReputationInput struct {
	ResponseRate        int     `json:"responseRate"`
	AverageResponseTime int     `json:"averageResponseTime"`
	CompletedDeals      int     `json:"completedDeals"`
	Rating              float64 `json:"rating"`
	Reviews             int     `json:"reviews"`
}

// ProfileInput carries the fields shared by buyer and seller records.
type ProfileInput struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Company      string          `json:"company"`
	Industry     string          `json:"industry"`
	Experience   int             `json:"experience"`
	Location     string          `json:"location"`
	Avatar       string          `json:"avatar,omitempty"`
	Bio          string          `json:"bio,omitempty"`
	Verification string          `json:"verificationStatus"`
	Reputation   ReputationInput `json:"reputation"`
}

// BuyerInput is a buyer record accepted by the ingestor.
type BuyerInput struct {
	ProfileInput
	InvestmentMin       float64  `json:"investmentMin"`
	InvestmentMax       float64  `json:"investmentMax"`
	PreferredIndustries []string `json:"preferredIndustries"`
	DealExperience      int      `json:"dealExperience"`
}

// SellerInput is a seller record accepted by the ingestor.
type SellerInput struct {
	ProfileInput
	BusinessValue    float64 `json:"businessValue"`
	AnnualRevenue    float64 `json:"annualRevenue"`
	ProfitMargin     int     `json:"profitMargin"`
	EmployeeCount    int     `json:"employeeCount"`
	YearsInBusiness  int     `json:"yearsInBusiness"`
	ReasonForSelling string  `json:"reasonForSelling"`
	Timeline         string  `json:"timeline"`
}

// UploadInput describes a document added through the deal room.
type UploadInput struct {
	Name       string
	Category   string
	UploadedBy string
	Size       int64
}

// ToDomain converts the input into a normalized counterpart.
func (in ProfileInput) ToDomain() domain.Counterpart {
	return domain.Counterpart{
		ID:           sanitizeString(in.ID),
		Name:         sanitizeString(in.Name),
		Company:      sanitizeString(in.Company),
		Industry:     normalizeIndustry(in.Industry),
		Experience:   clamp(in.Experience, 0, 100),
		Location:     sanitizeString(in.Location),
		Avatar:       in.Avatar,
		Bio:          sanitizeString(in.Bio),
		Verification: normalizeVerification(in.Verification),
		Reputation: domain.Reputation{
			ResponseRate:        clamp(in.Reputation.ResponseRate, 0, 100),
			AverageResponseTime: clamp(in.Reputation.AverageResponseTime, 0, 24*30),
			CompletedDeals:      clamp(in.Reputation.CompletedDeals, 0, 1<<20),
			Rating:              clampFloat(in.Reputation.Rating, 0, 5),
			Reviews:             clamp(in.Reputation.Reviews, 0, 1<<20),
		},
	}
}

// ToDomain converts the input into a buyer profile.
func (in BuyerInput) ToDomain() domain.BuyerProfile {
	industries := make([]string, 0, len(in.PreferredIndustries))
	for _, ind := range in.PreferredIndustries {
		if ind = normalizeIndustry(ind); ind != "" {
			industries = append(industries, ind)
		}
	}
	return domain.BuyerProfile{
		Counterpart:         in.ProfileInput.ToDomain(),
		InvestmentRange:     domain.MoneyRange{Min: in.InvestmentMin, Max: in.InvestmentMax},
		PreferredIndustries: industries,
		DealExperience:      clamp(in.DealExperience, 0, 1<<20),
	}
}

// ToDomain converts the input into a seller profile.
func (in SellerInput) ToDomain() domain.SellerProfile {
	return domain.SellerProfile{
		Counterpart:      in.ProfileInput.ToDomain(),
		BusinessValue:    in.BusinessValue,
		AnnualRevenue:    in.AnnualRevenue,
		ProfitMargin:     clamp(in.ProfitMargin, -100, 100),
		EmployeeCount:    clamp(in.EmployeeCount, 0, 1<<20),
		YearsInBusiness:  clamp(in.YearsInBusiness, 0, 500),
		ReasonForSelling: sanitizeString(in.ReasonForSelling),
		Timeline:         sanitizeString(in.Timeline),
	}
}

// BuyerInputFrom converts a domain profile back into an input record.
func BuyerInputFrom(b domain.BuyerProfile) BuyerInput {
	return BuyerInput{
		ProfileInput:        profileInputFrom(b.Counterpart),
		InvestmentMin:       b.InvestmentRange.Min,
		InvestmentMax:       b.InvestmentRange.Max,
		PreferredIndustries: append([]string(nil), b.PreferredIndustries...),
		DealExperience:      b.DealExperience,
	}
}

// SellerInputFrom converts a domain profile back into an input record.
func SellerInputFrom(s domain.SellerProfile) SellerInput {
	return SellerInput{
		ProfileInput:     profileInputFrom(s.Counterpart),
		BusinessValue:    s.BusinessValue,
		AnnualRevenue:    s.AnnualRevenue,
		ProfitMargin:     s.ProfitMargin,
		EmployeeCount:    s.EmployeeCount,
		YearsInBusiness:  s.YearsInBusiness,
		ReasonForSelling: s.ReasonForSelling,
		Timeline:         s.Timeline,
	}
}

func profileInputFrom(c domain.Counterpart) ProfileInput {
	return ProfileInput{
		ID:           c.ID,
		Name:         c.Name,
		Company:      c.Company,
		Industry:     c.Industry,
		Experience:   c.Experience,
		Location:     c.Location,
		Avatar:       c.Avatar,
		Bio:          c.Bio,
		Verification: string(c.Verification),
		Reputation: ReputationInput{
			ResponseRate:        c.Reputation.ResponseRate,
			AverageResponseTime: c.Reputation.AverageResponseTime,
			CompletedDeals:      c.Reputation.CompletedDeals,
			Rating:              c.Reputation.Rating,
			Reviews:             c.Reputation.Reviews,
		},
	}
}

// nowUTC is the default service clock.
func nowUTC() time.Time { return time.Now().UTC() }
