package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vanshika/bizbridge/internal/domain"
)

// TaskError accumulates the per-record failures of a bulk load.
type TaskError struct {
	Errors []error
}

func (e *TaskError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "multiple errors:"
	for _, err := range e.Errors {
		msg += " " + err.Error() + ";"
	}
	return msg
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *TaskError) Unwrap() []error {
	return e.Errors
}

func (e *TaskError) append(err error) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

func (e *TaskError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// CatalogWriter is the storage contract used when seeding a catalog.
type CatalogWriter interface {
	UpsertBuyer(ctx context.Context, buyer domain.BuyerProfile) error
	UpsertSeller(ctx context.Context, seller domain.SellerProfile) error
	UpsertDeal(ctx context.Context, deal domain.Deal) error
}

// BulkIngestor loads profile and deal datasets using a worker pool.
type BulkIngestor struct {
	writer  CatalogWriter
	workers int
}

// NewBulkIngestor creates a new BulkIngestor instance with the provided concurrency.
func NewBulkIngestor(writer CatalogWriter, workers int) *BulkIngestor {
	if workers <= 0 {
		workers = 4
	}
	return &BulkIngestor{
		writer:  writer,
		workers: workers,
	}
}

// IngestBuyers normalizes and stores buyer records concurrently.
func (bi *BulkIngestor) IngestBuyers(ctx context.Context, buyers []BuyerInput) error {
	return bi.run(ctx, len(buyers), func(idx int) error {
		buyer := buyers[idx].ToDomain()
		if buyer.ID == "" {
			return fmt.Errorf("buyer at position %d: id is required", idx)
		}
		return bi.writer.UpsertBuyer(ctx, buyer)
	})
}

// IngestSellers normalizes and stores seller records concurrently.
func (bi *BulkIngestor) IngestSellers(ctx context.Context, sellers []SellerInput) error {
	return bi.run(ctx, len(sellers), func(idx int) error {
		seller := sellers[idx].ToDomain()
		if seller.ID == "" {
			return fmt.Errorf("seller at position %d: id is required", idx)
		}
		return bi.writer.UpsertSeller(ctx, seller)
	})
}

// IngestDeals validates and stores deals concurrently.
func (bi *BulkIngestor) IngestDeals(ctx context.Context, deals []domain.Deal) error {
	return bi.run(ctx, len(deals), func(idx int) error {
		if err := deals[idx].Validate(); err != nil {
			return err
		}
		return bi.writer.UpsertDeal(ctx, deals[idx])
	})
}

func (bi *BulkIngestor) run(ctx context.Context, total int, workerFn func(idx int) error) error {
	if total == 0 {
		return nil
	}
	indexCh := make(chan int)
	errCh := make(chan error, total)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range indexCh {
			if err := workerFn(idx); err != nil {
				select {
				case errCh <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}

	for i := 0; i < bi.workers; i++ {
		wg.Add(1)
		go worker()
	}

Loop:
	for i := 0; i < total; i++ {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()
	close(errCh)

	var taskErr TaskError
	for err := range errCh {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		taskErr.append(err)
	}
	return taskErr.asError()
}
