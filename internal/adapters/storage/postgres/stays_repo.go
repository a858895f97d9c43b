package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-daycare-calendar/internal/domain/calendar"
)

type StaysRepo struct {
	db *sql.DB
}

func NewStaysRepo(db *sql.DB) *StaysRepo {
	return &StaysRepo{db: db}
}

// ListOverlapping trae toda estadía que toca el rango: ambos extremos son
// inclusivos, así que basta check_out >= from y check_in <= to.
func (r *StaysRepo) ListOverlapping(ctx context.Context, from, to time.Time) ([]calendar.StayRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			s.id, s.pet_id, p.name, s.check_in_date, s.check_out_date, s.notes
		FROM boarding_stays s
		LEFT JOIN pets p ON p.id = s.pet_id
		WHERE s.check_out_date >= $1 AND s.check_in_date <= $2
		ORDER BY s.check_in_date
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]calendar.StayRecord, 0)
	for rows.Next() {
		rec, err := scanStay(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *StaysRepo) GetByID(ctx context.Context, id string) (calendar.StayRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			s.id, s.pet_id, p.name, s.check_in_date, s.check_out_date, s.notes
		FROM boarding_stays s
		LEFT JOIN pets p ON p.id = s.pet_id
		WHERE s.id = $1
	`, id)

	rec, err := scanStay(row)
	if err == sql.ErrNoRows {
		return calendar.StayRecord{}, calendar.ErrNotFound
	}
	return rec, err
}

func (r *StaysRepo) UpdateDates(ctx context.Context, id string, checkIn, checkOut time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE boarding_stays
		SET check_in_date = $2, check_out_date = $3
		WHERE id = $1
	`, id, checkIn, checkOut)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *StaysRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM boarding_stays WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanStay(row rowScanner) (calendar.StayRecord, error) {
	var rec calendar.StayRecord
	var petName, notes sql.NullString

	if err := row.Scan(
		&rec.ID,
		&rec.PetID,
		&petName,
		&rec.CheckInDate,
		&rec.CheckOutDate,
		&notes,
	); err != nil {
		return calendar.StayRecord{}, err
	}

	rec.PetName = petName.String
	rec.Notes = notes.String
	return rec, nil
}
