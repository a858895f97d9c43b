package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pet-daycare-calendar/internal/domain/calendar"

	"github.com/google/uuid"
)

// preventivesRepo guarda antipulgas y desparasitaciones en mapas separados:
// son tablas distintas en el origen y el kind decide cuál se toca.
type preventivesRepo struct {
	mu         sync.RWMutex
	fleaByID   map[string]calendar.PreventiveRecord
	dewormByID map[string]calendar.PreventiveRecord
}

func NewPreventivesRepo() *preventivesRepo {
	return &preventivesRepo{
		fleaByID:   make(map[string]calendar.PreventiveRecord),
		dewormByID: make(map[string]calendar.PreventiveRecord),
	}
}

func (r *preventivesRepo) CreateFlea(ctx context.Context, rec calendar.PreventiveRecord) (calendar.PreventiveRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	r.fleaByID[rec.ID] = rec
	return rec, nil
}

func (r *preventivesRepo) CreateDeworming(ctx context.Context, rec calendar.PreventiveRecord) (calendar.PreventiveRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	r.dewormByID[rec.ID] = rec
	return rec, nil
}

func (r *preventivesRepo) ListFleaDueBetween(ctx context.Context, from, to time.Time) ([]calendar.PreventiveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return listDueBetween(r.fleaByID, from, to), nil
}

func (r *preventivesRepo) ListDewormingDueBetween(ctx context.Context, from, to time.Time) ([]calendar.PreventiveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return listDueBetween(r.dewormByID, from, to), nil
}

func (r *preventivesRepo) GetFleaByID(ctx context.Context, id string) (calendar.PreventiveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.fleaByID[id]
	if !ok {
		return calendar.PreventiveRecord{}, calendar.ErrNotFound
	}
	return rec, nil
}

func (r *preventivesRepo) GetDewormingByID(ctx context.Context, id string) (calendar.PreventiveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.dewormByID[id]
	if !ok {
		return calendar.PreventiveRecord{}, calendar.ErrNotFound
	}
	return rec, nil
}

func (r *preventivesRepo) UpdateFleaDueDate(ctx context.Context, id string, due time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return updateDueDate(r.fleaByID, id, due)
}

func (r *preventivesRepo) UpdateDewormingDueDate(ctx context.Context, id string, due time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return updateDueDate(r.dewormByID, id, due)
}

func (r *preventivesRepo) DeleteFlea(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.fleaByID[id]; !ok {
		return calendar.ErrNotFound
	}
	delete(r.fleaByID, id)
	return nil
}

func (r *preventivesRepo) DeleteDeworming(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.dewormByID[id]; !ok {
		return calendar.ErrNotFound
	}
	delete(r.dewormByID, id)
	return nil
}

func listDueBetween(byID map[string]calendar.PreventiveRecord, from, to time.Time) []calendar.PreventiveRecord {
	out := make([]calendar.PreventiveRecord, 0)
	for _, rec := range byID {
		if rec.NextDueDate.Before(from) || rec.NextDueDate.After(to) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NextDueDate.Before(out[j].NextDueDate)
	})
	return out
}

func updateDueDate(byID map[string]calendar.PreventiveRecord, id string, due time.Time) error {
	rec, ok := byID[id]
	if !ok {
		return calendar.ErrNotFound
	}
	rec.NextDueDate = due
	byID[id] = rec
	return nil
}
