package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-daycare-calendar/internal/domain/calendar"
)

type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

func (r *VaccinationsRepo) ListDueBetween(ctx context.Context, from, to time.Time) ([]calendar.VaccinationRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			v.id, v.pet_id, p.name, v.vaccine_name, v.next_due_date, v.notes
		FROM pet_vaccinations v
		LEFT JOIN pets p ON p.id = v.pet_id
		WHERE v.next_due_date >= $1 AND v.next_due_date <= $2
		ORDER BY v.next_due_date
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]calendar.VaccinationRecord, 0)
	for rows.Next() {
		rec, err := scanVaccination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id string) (calendar.VaccinationRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			v.id, v.pet_id, p.name, v.vaccine_name, v.next_due_date, v.notes
		FROM pet_vaccinations v
		LEFT JOIN pets p ON p.id = v.pet_id
		WHERE v.id = $1
	`, id)

	rec, err := scanVaccination(row)
	if err == sql.ErrNoRows {
		return calendar.VaccinationRecord{}, calendar.ErrNotFound
	}
	return rec, err
}

func (r *VaccinationsRepo) UpdateDueDate(ctx context.Context, id string, due time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pet_vaccinations
		SET next_due_date = $2
		WHERE id = $1
	`, id, due)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *VaccinationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM pet_vaccinations WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaccination(row rowScanner) (calendar.VaccinationRecord, error) {
	var rec calendar.VaccinationRecord
	var petName, notes sql.NullString

	if err := row.Scan(
		&rec.ID,
		&rec.PetID,
		&petName,
		&rec.VaccineName,
		&rec.NextDueDate,
		&notes,
	); err != nil {
		return calendar.VaccinationRecord{}, err
	}

	rec.PetName = petName.String
	rec.Notes = notes.String
	return rec, nil
}

// requireAffected mapea "0 filas tocadas" a ErrNotFound del dominio:
// el registro desapareció entre lectura y escritura.
func requireAffected(res sql.Result) error {
	n, _ := res.RowsAffected()
	if n == 0 {
		return calendar.ErrNotFound
	}
	return nil
}
