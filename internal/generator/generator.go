package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vanshika/bizbridge/internal/service"
)

// Dataset contains the generated counterpart profiles.
type Dataset struct {
	Buyers  []service.BuyerInput  `json:"buyers"`
	Sellers []service.SellerInput `json:"sellers"`
}

// Generator produces synthetic buyer and seller profiles in the ingest format.
type Generator struct {
	cfg       Config
	rand      *rand.Rand
	fragments fragments
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	def := DefaultConfig()
	if cfg.NumBuyers <= 0 {
		cfg.NumBuyers = def.NumBuyers
	}
	if cfg.NumSellers <= 0 {
		cfg.NumSellers = def.NumSellers
	}
	if cfg.VerifiedChance <= 0 {
		cfg.VerifiedChance = def.VerifiedChance
	}
	if cfg.PendingChance <= 0 {
		cfg.PendingChance = def.PendingChance
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:       cfg,
		rand:      rand.New(rand.NewSource(cfg.Seed)),
		fragments: defaultFragments(),
	}
}

// Generate synthesises buyers and sellers. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	buyers := make([]service.BuyerInput, g.cfg.NumBuyers)
	for i := range buyers {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		floor := float64(1+g.rand.Intn(50)) * 100_000
		industry := g.pick(g.fragments.industries)
		buyers[i] = service.BuyerInput{
			ProfileInput:        g.profile(fmt.Sprintf("gen-buyer-%05d", i+1), g.buyerCompany(), industry),
			InvestmentMin:       floor,
			InvestmentMax:       floor * float64(2+g.rand.Intn(4)),
			PreferredIndustries: g.industries(industry),
			DealExperience:      g.rand.Intn(12),
		}
		buyers[i].Bio = fmt.Sprintf("%s investor looking for profitable %s businesses.", g.pick(g.fragments.adjectives), industry)
	}

	sellers := make([]service.SellerInput, g.cfg.NumSellers)
	for i := range sellers {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		industry := g.pick(g.fragments.industries)
		revenue := float64(2+g.rand.Intn(200)) * 50_000
		margin := 5 + g.rand.Intn(35)
		sellers[i] = service.SellerInput{
			ProfileInput:     g.profile(fmt.Sprintf("gen-seller-%05d", i+1), g.sellerCompany(industry), industry),
			BusinessValue:    revenue * float64(margin) / 100 * float64(3+g.rand.Intn(5)),
			AnnualRevenue:    revenue,
			ProfitMargin:     margin,
			EmployeeCount:    1 + g.rand.Intn(250),
			YearsInBusiness:  1 + g.rand.Intn(40),
			ReasonForSelling: g.pick(g.fragments.reasons),
			Timeline:         g.pick(g.fragments.timelines),
		}
		sellers[i].Bio = fmt.Sprintf("%s %s business serving customers in %s.", g.pick(g.fragments.adjectives), industry, sellers[i].Location)
	}

	return Dataset{Buyers: buyers, Sellers: sellers}, nil
}

func (g *Generator) profile(id, company, industry string) service.ProfileInput {
	return service.ProfileInput{
		ID:           id,
		Name:         g.randomFullName(),
		Company:      company,
		Industry:     industry,
		Experience:   1 + g.rand.Intn(30),
		Location:     fmt.Sprintf("%s, %s", g.pick(g.fragments.cities), g.pick(g.fragments.states)),
		Verification: g.randomVerification(),
		Reputation: service.ReputationInput{
			ResponseRate:        60 + g.rand.Intn(41),
			AverageResponseTime: 1 + g.rand.Intn(48),
			CompletedDeals:      g.rand.Intn(15),
			Rating:              3 + float64(g.rand.Intn(21))/10,
			Reviews:             g.rand.Intn(60),
		},
	}
}

// industries returns the primary industry plus up to two others.
func (g *Generator) industries(primary string) []string {
	out := []string{primary}
	for n := g.rand.Intn(3); n > 0; n-- {
		candidate := g.pick(g.fragments.industries)
		if !contains(out, candidate) {
			out = append(out, candidate)
		}
	}
	return out
}

func (g *Generator) randomVerification() string {
	switch p := g.rand.Float64(); {
	case p < g.cfg.VerifiedChance:
		return "verified"
	case p < g.cfg.VerifiedChance+g.cfg.PendingChance:
		return "pending"
	default:
		return "unverified"
	}
}

func (g *Generator) randomFullName() string {
	return fmt.Sprintf("%s %s", g.pick(g.fragments.first), g.pick(g.fragments.last))
}

func (g *Generator) buyerCompany() string {
	return fmt.Sprintf("%s %s", g.pick(g.fragments.last), g.pick(g.fragments.buyerSuffix))
}

func (g *Generator) sellerCompany(industry string) string {
	return fmt.Sprintf("%s %s %s", g.pick(g.fragments.streetNames), industry, g.pick(g.fragments.sellerSuffix))
}

func (g *Generator) pick(options []string) string {
	return options[g.rand.Intn(len(options))]
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

type fragments struct {
	first        []string
	last         []string
	adjectives   []string
	industries   []string
	buyerSuffix  []string
	sellerSuffix []string
	streetNames  []string
	reasons      []string
	timelines    []string
	cities       []string
	states       []string
}

func defaultFragments() fragments {
	return fragments{
		first:        []string{"Jane", "John", "Alex", "Priya", "Liu", "Maria", "Omar", "Sofia", "Noah", "Emma", "Lucas", "Mia", "Ava", "Ethan", "Zara"},
		last:         []string{"Doe", "Smith", "Chen", "Patel", "Garcia", "Khan", "Kim", "Ivanov", "Nguyen", "Silva", "Brown", "Lee"},
		adjectives:   []string{"Established", "Growing", "Family-owned", "Profitable", "Award-winning", "Seasoned"},
		industries:   []string{"Technology", "Healthcare", "Manufacturing", "Retail", "Services", "Food & Beverage"},
		buyerSuffix:  []string{"Capital", "Holdings", "Partners", "Ventures", "Group"},
		sellerSuffix: []string{"Co.", "Inc", "LLC", "Works", "Solutions"},
		streetNames:  []string{"Market", "Mission", "Broadway", "Fifth", "Sunset", "Park", "Cedar", "Oak", "Pine", "Ash"},
		reasons:      []string{"Retirement", "Pursuing a new venture", "Relocation", "Partner buyout", "Health reasons"},
		timelines:    []string{"3-6 months", "6-12 months", "1-2 years", "Flexible"},
		cities:       []string{"San Francisco", "New York", "Seattle", "Austin", "Chicago", "Miami", "Denver", "Boston", "Los Angeles"},
		states:       []string{"CA", "NY", "WA", "TX", "IL", "FL", "CO", "MA"},
	}
}
