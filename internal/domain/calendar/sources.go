package calendar

import (
	"context"
	"time"
)

// Los Source Adapters son los dueños de la persistencia: este motor no
// guarda estado propio. Cada port expone la lectura por rango que alimenta
// la agenda y la única escritura de fecha que usa el dispatcher.

// VaccinationRecord es una vacunación aplicada con su próxima fecha de
// vencimiento (next_due_date en el origen).
type VaccinationRecord struct {
	ID          string
	PetID       string
	PetName     string
	VaccineName string
	NextDueDate time.Time
	Notes       string
}

// MedicationRecord es un tratamiento con medicamento; la agenda muestra la
// fecha de fin (end_date en el origen).
type MedicationRecord struct {
	ID             string
	PetID          string
	PetName        string
	MedicationName string
	EndDate        time.Time
	Notes          string
}

// PreventiveRecord es un tratamiento preventivo (antipulgas o
// desparasitación) con su próxima aplicación.
type PreventiveRecord struct {
	ID          string
	PetID       string
	PetName     string
	ProductName string
	NextDueDate time.Time
	Notes       string
}

// StayRecord es una estadía (booking) con check-in y check-out inclusivos.
type StayRecord struct {
	ID           string
	PetID        string
	PetName      string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Notes        string
}

// Interval deriva el StayInterval de la estadía.
func (s StayRecord) Interval() StayInterval {
	return StayInterval{PetID: s.PetID, CheckIn: s.CheckInDate, CheckOut: s.CheckOutDate}
}

// TransactionType distingue ingresos de gastos.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// TransactionRecord es un movimiento financiero. Amount en centavos.
// PetID/PetName pueden estar vacíos (movimientos no asociados a mascota).
type TransactionRecord struct {
	ID          string
	PetID       string
	PetName     string
	Type        TransactionType
	Category    string
	Description string
	Amount      int64
	Date        time.Time
}

// VaccinationSource lee y escribe vacunaciones por next_due_date.
type VaccinationSource interface {
	ListDueBetween(ctx context.Context, from, to time.Time) ([]VaccinationRecord, error)
	GetByID(ctx context.Context, id string) (VaccinationRecord, error)
	UpdateDueDate(ctx context.Context, id string, due time.Time) error
	Delete(ctx context.Context, id string) error
}

// MedicationSource lee y escribe medicaciones por end_date.
type MedicationSource interface {
	ListEndingBetween(ctx context.Context, from, to time.Time) ([]MedicationRecord, error)
	GetByID(ctx context.Context, id string) (MedicationRecord, error)
	UpdateEndDate(ctx context.Context, id string, end time.Time) error
	Delete(ctx context.Context, id string) error
}

// PreventiveSource lee y escribe tratamientos preventivos (flea/deworming)
// por next_due_date. Un único origen sirve ambos kinds.
type PreventiveSource interface {
	ListFleaDueBetween(ctx context.Context, from, to time.Time) ([]PreventiveRecord, error)
	ListDewormingDueBetween(ctx context.Context, from, to time.Time) ([]PreventiveRecord, error)
	GetFleaByID(ctx context.Context, id string) (PreventiveRecord, error)
	GetDewormingByID(ctx context.Context, id string) (PreventiveRecord, error)
	UpdateFleaDueDate(ctx context.Context, id string, due time.Time) error
	UpdateDewormingDueDate(ctx context.Context, id string, due time.Time) error
	DeleteFlea(ctx context.Context, id string) error
	DeleteDeworming(ctx context.Context, id string) error
}

// StaySource lee y escribe estadías. ListOverlapping devuelve toda estadía
// cuyo intervalo [check-in, check-out] se solapa con [from, to].
type StaySource interface {
	ListOverlapping(ctx context.Context, from, to time.Time) ([]StayRecord, error)
	GetByID(ctx context.Context, id string) (StayRecord, error)
	UpdateDates(ctx context.Context, id string, checkIn, checkOut time.Time) error
	Delete(ctx context.Context, id string) error
}

// TransactionSource lee y escribe movimientos por transaction_date.
// UpdateDate solo mueve la fecha: amount/category/notes quedan intactos.
type TransactionSource interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]TransactionRecord, error)
	GetByID(ctx context.Context, id string) (TransactionRecord, error)
	UpdateDate(ctx context.Context, id string, date time.Time) error
	Delete(ctx context.Context, id string) error
}

// CreditLedger es el colaborador externo de consumo de créditos.
// Este motor lo consume tal cual, sin lógica propia.
type CreditLedger interface {
	Consumption(ctx context.Context, from, to time.Time) (CreditStats, error)
}
