package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vanshika/bizbridge/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		buyers         = flag.Int("buyers", cfg.NumBuyers, "number of buyer profiles to generate")
		sellers        = flag.Int("sellers", cfg.NumSellers, "number of seller profiles to generate")
		verifiedChance = flag.Float64("verified-chance", cfg.VerifiedChance, "probability that a profile is verified")
		pendingChance  = flag.Float64("pending-chance", cfg.PendingChance, "probability that a profile is pending verification")
		seed           = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		outputDir      = flag.String("output-dir", "data", "directory to write buyers.json and sellers.json")
		writeStdout    = flag.Bool("stdout", false, "write combined dataset to stdout instead of files")
	)
	flag.Parse()

	genCfg := generator.Config{
		NumBuyers:      *buyers,
		NumSellers:     *sellers,
		VerifiedChance: clampProbability(*verifiedChance),
		PendingChance:  clampProbability(*pendingChance),
		Seed:           *seed,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dataset, err := generator.New(genCfg).Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *writeStdout {
		if err := json.NewEncoder(os.Stdout).Encode(dataset); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write dataset to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteDataset(dataset, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d buyers and %d sellers into %s\n", len(dataset.Buyers), len(dataset.Sellers), *outputDir)
}

func clampProbability(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
