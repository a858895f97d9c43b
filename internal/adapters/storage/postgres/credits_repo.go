package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-daycare-calendar/internal/domain/calendar"
)

// CreditsRepo agrega el consumo de créditos de guardería directamente en SQL;
// el dominio recibe el resumen ya armado.
type CreditsRepo struct {
	db *sql.DB
}

func NewCreditsRepo(db *sql.DB) *CreditsRepo {
	return &CreditsRepo{db: db}
}

func (r *CreditsRepo) Consumption(ctx context.Context, from, to time.Time) (calendar.CreditStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			u.pet_id, p.name, SUM(u.credits_used)
		FROM daycare_usage u
		LEFT JOIN pets p ON p.id = u.pet_id
		WHERE u.usage_date >= $1 AND u.usage_date <= $2
		GROUP BY u.pet_id, p.name
		ORDER BY SUM(u.credits_used) DESC, p.name
	`, from, to)
	if err != nil {
		return calendar.CreditStats{}, err
	}
	defer rows.Close()

	stats := calendar.CreditStats{ByPet: make([]calendar.PetCredits, 0)}
	for rows.Next() {
		var pc calendar.PetCredits
		var petName sql.NullString
		if err := rows.Scan(&pc.PetID, &petName, &pc.CreditsUsed); err != nil {
			return calendar.CreditStats{}, err
		}
		pc.PetName = petName.String
		stats.Total += pc.CreditsUsed
		stats.ByPet = append(stats.ByPet, pc)
	}
	return stats, rows.Err()
}
