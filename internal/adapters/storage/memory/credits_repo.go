package memory

import (
	"context"
	"sync"
	"time"

	"pet-daycare-calendar/internal/domain/calendar"
)

// CreditUsage es un día de guardería consumido contra el paquete de
// créditos de una mascota.
type CreditUsage struct {
	PetID     string
	PetName   string
	UsageDate time.Time
}

type creditsRepo struct {
	mu      sync.RWMutex
	entries []CreditUsage
}

// NewCreditsRepo implementa el ledger de créditos en memoria (dev/tests).
func NewCreditsRepo() *creditsRepo {
	return &creditsRepo{}
}

func (r *creditsRepo) Add(ctx context.Context, usage CreditUsage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, usage)
	return nil
}

func (r *creditsRepo) Consumption(ctx context.Context, from, to time.Time) (calendar.CreditStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byPet := make(map[string]*calendar.PetCredits)
	order := make([]string, 0)
	total := 0

	for _, e := range r.entries {
		if e.UsageDate.Before(from) || e.UsageDate.After(to) {
			continue
		}
		total++
		pc, ok := byPet[e.PetID]
		if !ok {
			pc = &calendar.PetCredits{PetID: e.PetID, PetName: e.PetName}
			byPet[e.PetID] = pc
			order = append(order, e.PetID)
		}
		pc.CreditsUsed++
	}

	stats := calendar.CreditStats{Total: total, ByPet: make([]calendar.PetCredits, 0, len(order))}
	for _, id := range order {
		stats.ByPet = append(stats.ByPet, *byPet[id])
	}
	return stats, nil
}
