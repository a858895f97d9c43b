package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-daycare-calendar/internal/domain/calendar"
)

type TransactionsRepo struct {
	db *sql.DB
}

func NewTransactionsRepo(db *sql.DB) *TransactionsRepo {
	return &TransactionsRepo{db: db}
}

func (r *TransactionsRepo) ListBetween(ctx context.Context, from, to time.Time) ([]calendar.TransactionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			t.id, t.pet_id, p.name, t.tx_type, t.category, t.description,
			t.amount_cents, t.transaction_date
		FROM financial_transactions t
		LEFT JOIN pets p ON p.id = t.pet_id
		WHERE t.transaction_date >= $1 AND t.transaction_date <= $2
		ORDER BY t.transaction_date
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]calendar.TransactionRecord, 0)
	for rows.Next() {
		rec, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *TransactionsRepo) GetByID(ctx context.Context, id string) (calendar.TransactionRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			t.id, t.pet_id, p.name, t.tx_type, t.category, t.description,
			t.amount_cents, t.transaction_date
		FROM financial_transactions t
		LEFT JOIN pets p ON p.id = t.pet_id
		WHERE t.id = $1
	`, id)

	rec, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return calendar.TransactionRecord{}, calendar.ErrNotFound
	}
	return rec, err
}

// UpdateDate mueve solo la fecha; monto, categoría y descripción no se tocan.
func (r *TransactionsRepo) UpdateDate(ctx context.Context, id string, date time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE financial_transactions
		SET transaction_date = $2
		WHERE id = $1
	`, id, date)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *TransactionsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM financial_transactions WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanTransaction(row rowScanner) (calendar.TransactionRecord, error) {
	var rec calendar.TransactionRecord
	var petID, petName, category, description sql.NullString
	var txType string

	if err := row.Scan(
		&rec.ID,
		&petID,
		&petName,
		&txType,
		&category,
		&description,
		&rec.Amount,
		&rec.Date,
	); err != nil {
		return calendar.TransactionRecord{}, err
	}

	rec.PetID = petID.String
	rec.PetName = petName.String
	rec.Type = calendar.TransactionType(txType)
	rec.Category = category.String
	rec.Description = description.String
	return rec, nil
}
