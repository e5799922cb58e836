package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Dataset file names inside an output directory.
const (
	BuyersFile  = "buyers.json"
	SellersFile = "sellers.json"
)

// WriteDataset serializes the dataset into buyers.json and sellers.json under the provided directory.
func WriteDataset(dataset Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeJSON(filepath.Join(dir, BuyersFile), dataset.Buyers); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, SellersFile), dataset.Sellers)
}

// ReadDataset loads a directory written by WriteDataset.
func ReadDataset(dir string) (Dataset, error) {
	var ds Dataset
	if err := readJSON(filepath.Join(dir, BuyersFile), &ds.Buyers); err != nil {
		return Dataset{}, err
	}
	if err := readJSON(filepath.Join(dir, SellersFile), &ds.Sellers); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func writeJSON(path string, data any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode json for %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, out any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(out); err != nil {
		return fmt.Errorf("decode json from %s: %w", path, err)
	}
	return nil
}
