package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pet-daycare-calendar/internal/domain/calendar"

	"github.com/google/uuid"
)

type staysRepo struct {
	mu   sync.RWMutex
	byID map[string]calendar.StayRecord
}

func NewStaysRepo() *staysRepo {
	return &staysRepo{
		byID: make(map[string]calendar.StayRecord),
	}
}

func (r *staysRepo) Create(ctx context.Context, rec calendar.StayRecord) (calendar.StayRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	r.byID[rec.ID] = rec
	return rec, nil
}

// ListOverlapping devuelve toda estadía cuyo intervalo se solapa con
// [from, to], aunque el check-in o el check-out caigan fuera.
func (r *staysRepo) ListOverlapping(ctx context.Context, from, to time.Time) ([]calendar.StayRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]calendar.StayRecord, 0)
	for _, rec := range r.byID {
		if rec.CheckOutDate.Before(from) || rec.CheckInDate.After(to) {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CheckInDate.Before(out[j].CheckInDate)
	})
	return out, nil
}

func (r *staysRepo) GetByID(ctx context.Context, id string) (calendar.StayRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return calendar.StayRecord{}, calendar.ErrNotFound
	}
	return rec, nil
}

func (r *staysRepo) UpdateDates(ctx context.Context, id string, checkIn, checkOut time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return calendar.ErrNotFound
	}
	rec.CheckInDate = checkIn
	rec.CheckOutDate = checkOut
	r.byID[id] = rec
	return nil
}

func (r *staysRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return calendar.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
