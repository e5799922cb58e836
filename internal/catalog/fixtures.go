package catalog

import (
	"time"

	"github.com/vanshika/bizbridge/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func at(year int, month time.Month, d, hour, minute int) time.Time {
	return time.Date(year, month, d, hour, minute, 0, 0, time.UTC)
}

func ptr(v float64) *float64 { return &v }

// FixtureBuyers returns the demo acquirers shown to sellers.
func FixtureBuyers() []domain.BuyerProfile {
	return []domain.BuyerProfile{
		{
			Counterpart: domain.Counterpart{
				ID:           "buyer-1",
				Name:         "Sarah Chen",
				Company:      "Tech Ventures LLC",
				Industry:     "Technology",
				Experience:   8,
				Location:     "San Francisco, CA",
				Bio:          "Experienced tech executive looking to acquire SaaS businesses with strong recurring revenue.",
				Verification: domain.VerificationVerified,
				Reputation:   domain.Reputation{ResponseRate: 95, AverageResponseTime: 2, CompletedDeals: 2, Rating: 4.8, Reviews: 12},
			},
			InvestmentRange:     domain.MoneyRange{Min: 1_000_000, Max: 5_000_000},
			PreferredIndustries: []string{"Technology", "SaaS", "E-commerce"},
			DealExperience:      3,
		},
		{
			Counterpart: domain.Counterpart{
				ID:           "buyer-2",
				Name:         "Michael Rodriguez",
				Company:      "Green Solutions Inc",
				Industry:     "Healthcare",
				Experience:   12,
				Location:     "Austin, TX",
				Bio:          "Healthcare entrepreneur seeking established medical practices and healthcare technology companies.",
				Verification: domain.VerificationVerified,
				Reputation:   domain.Reputation{ResponseRate: 88, AverageResponseTime: 4, CompletedDeals: 3, Rating: 4.6, Reviews: 8},
			},
			InvestmentRange:     domain.MoneyRange{Min: 500_000, Max: 2_000_000},
			PreferredIndustries: []string{"Healthcare", "Medical", "Technology"},
			DealExperience:      5,
		},
		{
			Counterpart: domain.Counterpart{
				ID:           "buyer-3",
				Name:         "Jennifer Park",
				Company:      "Retail Partners Group",
				Industry:     "Retail",
				Experience:   15,
				Location:     "New York, NY",
				Bio:          "Retail expansion specialist looking for established brick-and-mortar businesses with strong local presence.",
				Verification: domain.VerificationVerified,
				Reputation:   domain.Reputation{ResponseRate: 92, AverageResponseTime: 1, CompletedDeals: 4, Rating: 4.9, Reviews: 15},
			},
			InvestmentRange:     domain.MoneyRange{Min: 2_000_000, Max: 10_000_000},
			PreferredIndustries: []string{"Retail", "Food & Beverage", "Services"},
			DealExperience:      7,
		},
		{
			Counterpart: domain.Counterpart{
				ID:           "buyer-4",
				Name:         "David Thompson",
				Company:      "Manufacturing Capital",
				Industry:     "Manufacturing",
				Experience:   20,
				Location:     "Detroit, MI",
				Bio:          "Manufacturing expert seeking established manufacturing businesses with strong supply chain relationships.",
				Verification: domain.VerificationVerified,
				Reputation:   domain.Reputation{ResponseRate: 85, AverageResponseTime: 3, CompletedDeals: 6, Rating: 4.7, Reviews: 18},
			},
			InvestmentRange:     domain.MoneyRange{Min: 5_000_000, Max: 25_000_000},
			PreferredIndustries: []string{"Manufacturing", "Industrial", "Technology"},
			DealExperience:      10,
		},
	}
}

// FixtureSellers returns the demo businesses shown to buyers.
func FixtureSellers() []domain.SellerProfile {
	return []domain.SellerProfile{
		{
			Counterpart: domain.Counterpart{
				ID:           "seller-1",
				Name:         "Emily Carter",
				Company:      "CareFlow Health Systems",
				Industry:     "Healthcare",
				Experience:   8,
				Location:     "Austin, TX",
				Bio:          "Established healthcare technology company specializing in patient management software. Strong recurring revenue model with 95% customer retention rate.",
				Verification: domain.VerificationVerified,
				Reputation:   domain.Reputation{ResponseRate: 96, AverageResponseTime: 2, CompletedDeals: 1, Rating: 4.9, Reviews: 6},
			},
			BusinessValue:    2_500_000,
			AnnualRevenue:    1_800_000,
			ProfitMargin:     25,
			EmployeeCount:    15,
			YearsInBusiness:  8,
			ReasonForSelling: "Looking for a strategic buyer to help scale operations and expand market reach.",
			Timeline:         "3-6 months",
		},
		{
			Counterpart: domain.Counterpart{
				ID:           "seller-2",
				Name:         "Robert Hayes",
				Company:      "Hayes Family Hardware",
				Industry:     "Retail",
				Experience:   22,
				Location:     "Columbus, OH",
				Bio:          "Three-location hardware chain with loyal local customers and owned real estate.",
				Verification: domain.VerificationVerified,
				Reputation:   domain.Reputation{ResponseRate: 81, AverageResponseTime: 6, CompletedDeals: 0, Rating: 4.5, Reviews: 3},
			},
			BusinessValue:    4_200_000,
			AnnualRevenue:    6_100_000,
			ProfitMargin:     12,
			EmployeeCount:    38,
			YearsInBusiness:  22,
			ReasonForSelling: "Retirement",
			Timeline:         "6-12 months",
		},
		{
			Counterpart: domain.Counterpart{
				ID:           "seller-3",
				Name:         "Priya Nair",
				Company:      "Stackline Analytics",
				Industry:     "Technology",
				Experience:   6,
				Location:     "Seattle, WA",
				Bio:          "B2B analytics SaaS with 140 subscription customers and negative net churn.",
				Verification: domain.VerificationPending,
				Reputation:   domain.Reputation{ResponseRate: 93, AverageResponseTime: 1, CompletedDeals: 3, Rating: 4.7, Reviews: 9},
			},
			BusinessValue:    7_500_000,
			AnnualRevenue:    2_300_000,
			ProfitMargin:     34,
			EmployeeCount:    21,
			YearsInBusiness:  6,
			ReasonForSelling: "Founders moving on to a new venture.",
			Timeline:         "3-6 months",
		},
		{
			Counterpart: domain.Counterpart{
				ID:           "seller-4",
				Name:         "Marco Bellini",
				Company:      "Bellini Foods Co.",
				Industry:     "Food & Beverage",
				Experience:   15,
				Location:     "Providence, RI",
				Bio:          "Regional specialty food producer supplying 200 grocery stores across New England.",
				Verification: domain.VerificationUnverified,
				Reputation:   domain.Reputation{ResponseRate: 74, AverageResponseTime: 9, CompletedDeals: 0, Rating: 4.2, Reviews: 2},
			},
			BusinessValue:    950_000,
			AnnualRevenue:    1_400_000,
			ProfitMargin:     9,
			EmployeeCount:    12,
			YearsInBusiness:  15,
			ReasonForSelling: "Owner relocating overseas.",
			Timeline:         "Flexible",
		},
	}
}

// FixtureDeals returns the demo deal workspaces.
func FixtureDeals() []domain.Deal {
	return []domain.Deal{
		{
			ID:            "1",
			BuyerID:       "buyer-1",
			SellerID:      "seller-1",
			Status:        domain.DealInProgress,
			CreatedAt:     day(2024, time.January, 15),
			UpdatedAt:     day(2024, time.January, 20),
			BusinessValue: 2_500_000,
			Industry:      "Healthcare Technology",
			Location:      "Austin, TX",
			Timeline:      "3-6 months",
			Documents: []domain.Document{
				{
					ID:         "1",
					Name:       "Financial Statements Q4 2023",
					Category:   domain.DocumentFinancial,
					URL:        "#",
					UploadedAt: day(2024, time.January, 18),
					UploadedBy: "seller-1",
					Status:     domain.ReviewReviewed,
					Analysis: &domain.AIAnalysis{
						Summary: "Strong financial performance with 25% revenue growth and 30% profit margins. Healthy cash flow and low debt levels.",
						KeyMetrics: domain.KeyMetrics{
							Revenue: ptr(2_500_000),
							Profit:  ptr(750_000),
							Growth:  ptr(25),
							Risk:    "Low",
						},
						Insights: []string{
							"Consistent revenue growth over 3 years",
							"Strong customer retention rate (95%)",
							"Efficient cost management",
							"Positive cash flow trends",
						},
						Recommendations: []string{
							"Consider valuation premium for growth trajectory",
							"Review customer concentration risk",
							"Assess scalability of current model",
						},
						Confidence: 0.92,
					},
				},
				{
					ID:         "2",
					Name:       "Legal Structure Review",
					Category:   domain.DocumentLegal,
					URL:        "#",
					UploadedAt: day(2024, time.January, 19),
					UploadedBy: "seller-1",
					Status:     domain.ReviewPending,
					Analysis: &domain.AIAnalysis{
						Summary:    "Clean legal structure with proper entity formation and minimal litigation risk. All contracts are current and enforceable.",
						KeyMetrics: domain.KeyMetrics{Risk: "Low"},
						Insights: []string{
							"Proper LLC formation and governance",
							"All contracts are current and valid",
							"No pending litigation",
							"Intellectual property properly protected",
						},
						Recommendations: []string{
							"Conduct thorough IP due diligence",
							"Review employment contracts",
							"Verify regulatory compliance",
						},
						Confidence: 0.88,
					},
				},
			},
			Messages: []domain.Message{
				{
					ID:        "1",
					SenderID:  "buyer-1",
					Content:   "Thanks for sharing the financial documents. The growth trajectory looks promising. Do you have any projections for the next 12 months?",
					Timestamp: at(2024, time.January, 20, 10, 30),
					Kind:      domain.MessageText,
				},
				{
					ID:        "2",
					SenderID:  "seller-1",
					Content:   "Yes, I can share our projections. We're expecting 30% growth based on current pipeline and market expansion plans.",
					Timestamp: at(2024, time.January, 20, 11, 15),
					Kind:      domain.MessageText,
				},
				{
					ID:        "3",
					SenderID:  SystemSender,
					Content:   "AI Analysis completed for Financial Statements Q4 2023",
					Timestamp: at(2024, time.January, 20, 11, 20),
					Kind:      domain.MessageSystem,
				},
			},
			Tasks: []domain.Task{
				{
					ID:          "1",
					Title:       "Complete Financial Due Diligence",
					Description: "Review all financial documents and prepare analysis report",
					AssignedTo:  "buyer-1",
					DueDate:     day(2024, time.January, 25),
					Status:      domain.TaskInProgress,
					Priority:    domain.PriorityHigh,
					Category:    domain.TaskFinancial,
				},
				{
					ID:          "2",
					Title:       "Legal Structure Review",
					Description: "Conduct legal due diligence and identify any potential issues",
					AssignedTo:  "buyer-1",
					DueDate:     day(2024, time.January, 28),
					Status:      domain.TaskPending,
					Priority:    domain.PriorityHigh,
					Category:    domain.TaskLegal,
				},
				{
					ID:          "3",
					Title:       "Customer Interviews",
					Description: "Schedule and conduct interviews with key customers",
					AssignedTo:  "buyer-1",
					DueDate:     day(2024, time.January, 30),
					Status:      domain.TaskPending,
					Priority:    domain.PriorityMedium,
					Category:    domain.TaskDueDiligence,
				},
			},
			Milestones: []domain.Milestone{
				{
					ID:          "1",
					Title:       "Due Diligence Complete",
					Description: "All due diligence activities completed and documented",
					DueDate:     day(2024, time.February, 15),
					Status:      domain.MilestonePending,
					Tasks:       []string{"1", "2", "3"},
				},
				{
					ID:          "2",
					Title:       "Letter of Intent",
					Description: "Sign letter of intent with agreed terms",
					DueDate:     day(2024, time.February, 28),
					Status:      domain.MilestonePending,
					Tasks:       []string{},
				},
			},
		},
		{
			ID:            "2",
			BuyerID:       "buyer-3",
			SellerID:      "seller-2",
			Status:        domain.DealMatched,
			CreatedAt:     day(2024, time.February, 2),
			UpdatedAt:     day(2024, time.February, 2),
			BusinessValue: 4_200_000,
			Industry:      "Retail",
			Location:      "Columbus, OH",
			Timeline:      "6-12 months",
			Messages: []domain.Message{
				{
					ID:        "1",
					SenderID:  SystemSender,
					Content:   "Retail Partners Group matched with Hayes Family Hardware",
					Timestamp: at(2024, time.February, 2, 9, 0),
					Kind:      domain.MessageSystem,
				},
			},
		},
	}
}
