package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-daycare-calendar/internal/domain/calendar"
)

// PreventivesRepo sirve antipulgas y desparasitaciones; son dos tablas
// (flea_treatments, deworming_treatments) con el mismo shape.
type PreventivesRepo struct {
	db *sql.DB
}

func NewPreventivesRepo(db *sql.DB) *PreventivesRepo {
	return &PreventivesRepo{db: db}
}

func (r *PreventivesRepo) ListFleaDueBetween(ctx context.Context, from, to time.Time) ([]calendar.PreventiveRecord, error) {
	return r.listDueBetween(ctx, "flea_treatments", from, to)
}

func (r *PreventivesRepo) ListDewormingDueBetween(ctx context.Context, from, to time.Time) ([]calendar.PreventiveRecord, error) {
	return r.listDueBetween(ctx, "deworming_treatments", from, to)
}

func (r *PreventivesRepo) GetFleaByID(ctx context.Context, id string) (calendar.PreventiveRecord, error) {
	return r.getByID(ctx, "flea_treatments", id)
}

func (r *PreventivesRepo) GetDewormingByID(ctx context.Context, id string) (calendar.PreventiveRecord, error) {
	return r.getByID(ctx, "deworming_treatments", id)
}

func (r *PreventivesRepo) UpdateFleaDueDate(ctx context.Context, id string, due time.Time) error {
	return r.updateDueDate(ctx, "flea_treatments", id, due)
}

func (r *PreventivesRepo) UpdateDewormingDueDate(ctx context.Context, id string, due time.Time) error {
	return r.updateDueDate(ctx, "deworming_treatments", id, due)
}

func (r *PreventivesRepo) DeleteFlea(ctx context.Context, id string) error {
	return r.delete(ctx, "flea_treatments", id)
}

func (r *PreventivesRepo) DeleteDeworming(ctx context.Context, id string) error {
	return r.delete(ctx, "deworming_treatments", id)
}

// El nombre de tabla viene siempre de las constantes de arriba, nunca de
// input del caller; concatenarlo es seguro.
func (r *PreventivesRepo) listDueBetween(ctx context.Context, table string, from, to time.Time) ([]calendar.PreventiveRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			t.id, t.pet_id, p.name, t.product_name, t.next_due_date, t.notes
		FROM `+table+` t
		LEFT JOIN pets p ON p.id = t.pet_id
		WHERE t.next_due_date >= $1 AND t.next_due_date <= $2
		ORDER BY t.next_due_date
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]calendar.PreventiveRecord, 0)
	for rows.Next() {
		rec, err := scanPreventive(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PreventivesRepo) getByID(ctx context.Context, table, id string) (calendar.PreventiveRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			t.id, t.pet_id, p.name, t.product_name, t.next_due_date, t.notes
		FROM `+table+` t
		LEFT JOIN pets p ON p.id = t.pet_id
		WHERE t.id = $1
	`, id)

	rec, err := scanPreventive(row)
	if err == sql.ErrNoRows {
		return calendar.PreventiveRecord{}, calendar.ErrNotFound
	}
	return rec, err
}

func (r *PreventivesRepo) updateDueDate(ctx context.Context, table, id string, due time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE `+table+`
		SET next_due_date = $2
		WHERE id = $1
	`, id, due)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PreventivesRepo) delete(ctx context.Context, table, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM `+table+` WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanPreventive(row rowScanner) (calendar.PreventiveRecord, error) {
	var rec calendar.PreventiveRecord
	var petName, notes sql.NullString

	if err := row.Scan(
		&rec.ID,
		&rec.PetID,
		&petName,
		&rec.ProductName,
		&rec.NextDueDate,
		&notes,
	); err != nil {
		return calendar.PreventiveRecord{}, err
	}

	rec.PetName = petName.String
	rec.Notes = notes.String
	return rec, nil
}
