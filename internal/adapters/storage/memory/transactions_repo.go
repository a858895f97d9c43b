package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pet-daycare-calendar/internal/domain/calendar"

	"github.com/google/uuid"
)

type transactionsRepo struct {
	mu   sync.RWMutex
	byID map[string]calendar.TransactionRecord
}

func NewTransactionsRepo() *transactionsRepo {
	return &transactionsRepo{
		byID: make(map[string]calendar.TransactionRecord),
	}
}

func (r *transactionsRepo) Create(ctx context.Context, rec calendar.TransactionRecord) (calendar.TransactionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	r.byID[rec.ID] = rec
	return rec, nil
}

func (r *transactionsRepo) ListBetween(ctx context.Context, from, to time.Time) ([]calendar.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]calendar.TransactionRecord, 0)
	for _, rec := range r.byID {
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (r *transactionsRepo) GetByID(ctx context.Context, id string) (calendar.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return calendar.TransactionRecord{}, calendar.ErrNotFound
	}
	return rec, nil
}

// UpdateDate mueve solo la fecha; amount/category/notes quedan intactos.
func (r *transactionsRepo) UpdateDate(ctx context.Context, id string, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return calendar.ErrNotFound
	}
	rec.Date = date
	r.byID[id] = rec
	return nil
}

func (r *transactionsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return calendar.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
