package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-daycare-calendar/internal/domain/calendar"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

func (r *MedicationsRepo) ListEndingBetween(ctx context.Context, from, to time.Time) ([]calendar.MedicationRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			m.id, m.pet_id, p.name, m.medication_name, m.end_date, m.notes
		FROM pet_medications m
		LEFT JOIN pets p ON p.id = m.pet_id
		WHERE m.end_date >= $1 AND m.end_date <= $2
		ORDER BY m.end_date
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]calendar.MedicationRecord, 0)
	for rows.Next() {
		rec, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (calendar.MedicationRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			m.id, m.pet_id, p.name, m.medication_name, m.end_date, m.notes
		FROM pet_medications m
		LEFT JOIN pets p ON p.id = m.pet_id
		WHERE m.id = $1
	`, id)

	rec, err := scanMedication(row)
	if err == sql.ErrNoRows {
		return calendar.MedicationRecord{}, calendar.ErrNotFound
	}
	return rec, err
}

func (r *MedicationsRepo) UpdateEndDate(ctx context.Context, id string, end time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pet_medications
		SET end_date = $2
		WHERE id = $1
	`, id, end)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *MedicationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM pet_medications WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanMedication(row rowScanner) (calendar.MedicationRecord, error) {
	var rec calendar.MedicationRecord
	var petName, notes sql.NullString

	if err := row.Scan(
		&rec.ID,
		&rec.PetID,
		&petName,
		&rec.MedicationName,
		&rec.EndDate,
		&notes,
	); err != nil {
		return calendar.MedicationRecord{}, err
	}

	rec.PetName = petName.String
	rec.Notes = notes.String
	return rec, nil
}
