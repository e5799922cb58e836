package generator

// Config drives the synthetic profile generator.
type Config struct {
	NumBuyers      int
	NumSellers     int
	VerifiedChance float64
	PendingChance  float64
	Seed           int64
}

// DefaultConfig returns a dataset large enough to exercise dashboard filters
// and the seeding worker pool.
func DefaultConfig() Config {
	return Config{
		NumBuyers:      500,
		NumSellers:     500,
		VerifiedChance: 0.6,
		PendingChance:  0.25,
		Seed:           42,
	}
}
