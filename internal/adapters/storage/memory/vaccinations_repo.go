package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pet-daycare-calendar/internal/domain/calendar"

	"github.com/google/uuid"
)

type vaccinationsRepo struct {
	mu   sync.RWMutex
	byID map[string]calendar.VaccinationRecord
}

func NewVaccinationsRepo() *vaccinationsRepo {
	return &vaccinationsRepo{
		byID: make(map[string]calendar.VaccinationRecord),
	}
}

// Create existe para seeds de dev y tests; el motor de agenda nunca crea.
func (r *vaccinationsRepo) Create(ctx context.Context, rec calendar.VaccinationRecord) (calendar.VaccinationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	r.byID[rec.ID] = rec
	return rec, nil
}

func (r *vaccinationsRepo) ListDueBetween(ctx context.Context, from, to time.Time) ([]calendar.VaccinationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]calendar.VaccinationRecord, 0)
	for _, rec := range r.byID {
		if rec.NextDueDate.Before(from) || rec.NextDueDate.After(to) {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].NextDueDate.Before(out[j].NextDueDate)
	})
	return out, nil
}

func (r *vaccinationsRepo) GetByID(ctx context.Context, id string) (calendar.VaccinationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return calendar.VaccinationRecord{}, calendar.ErrNotFound
	}
	return rec, nil
}

func (r *vaccinationsRepo) UpdateDueDate(ctx context.Context, id string, due time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return calendar.ErrNotFound
	}
	rec.NextDueDate = due
	r.byID[id] = rec
	return nil
}

func (r *vaccinationsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return calendar.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
