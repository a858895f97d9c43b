package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pet-daycare-calendar/internal/domain/calendar"

	"github.com/google/uuid"
)

type medicationsRepo struct {
	mu   sync.RWMutex
	byID map[string]calendar.MedicationRecord
}

func NewMedicationsRepo() *medicationsRepo {
	return &medicationsRepo{
		byID: make(map[string]calendar.MedicationRecord),
	}
}

func (r *medicationsRepo) Create(ctx context.Context, rec calendar.MedicationRecord) (calendar.MedicationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	r.byID[rec.ID] = rec
	return rec, nil
}

func (r *medicationsRepo) ListEndingBetween(ctx context.Context, from, to time.Time) ([]calendar.MedicationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]calendar.MedicationRecord, 0)
	for _, rec := range r.byID {
		if rec.EndDate.Before(from) || rec.EndDate.After(to) {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].EndDate.Before(out[j].EndDate)
	})
	return out, nil
}

func (r *medicationsRepo) GetByID(ctx context.Context, id string) (calendar.MedicationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return calendar.MedicationRecord{}, calendar.ErrNotFound
	}
	return rec, nil
}

func (r *medicationsRepo) UpdateEndDate(ctx context.Context, id string, end time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return calendar.ErrNotFound
	}
	rec.EndDate = end
	r.byID[id] = rec
	return nil
}

func (r *medicationsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return calendar.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
