package calendar

import "time"

// Event es la representación canónica y transitoria de la agenda general:
// se computa en cada consulta a partir de los registros de origen y nunca
// se persiste. Desaparece cuando su registro de origen se borra o sale de
// la ventana consultada.
type Event struct {
	ID    EventID
	Title string

	// Start y End son el rango del evento; End == Start cuando el origen
	// no tiene duración (todos los kinds actuales emiten eventos puntuales).
	Start time.Time
	End   time.Time

	// PetID y PetName están vacíos para eventos puramente financieros.
	PetID   string
	PetName string

	Notes string

	// Status es derivado (ver Classify); StatusNone para kinds no-salud.
	Status Status

	// BookingID está presente solo para checkin/checkout: identifica la
	// estadía dueña para reschedule/delete.
	BookingID string

	// Amount (centavos) y Category están presentes solo para payment-*.
	Amount   int64
	Category string
}

// StayInterval es el rango de fechas, inclusivo en ambos extremos, en que
// una mascota está en la guardería. Invariante: CheckOut >= CheckIn.
type StayInterval struct {
	PetID    string
	CheckIn  time.Time
	CheckOut time.Time
}

// OccupancyRecord es la cantidad de mascotas presentes en una fecha.
// Computado, no persistido.
type OccupancyRecord struct {
	Date  time.Time
	Count int
}

// Stats es el resumen agregado sobre un set (ya filtrado) de eventos.
// Los montos están en centavos.
type Stats struct {
	Total       int
	Health      int
	Operational int
	Financial   int

	Overdue  int
	Upcoming int

	Checkins  int
	Checkouts int

	Income  int64
	Expense int64
	Balance int64
}

// OccupancyStats son los extremos de ocupación del rango consultado.
type OccupancyStats struct {
	Max int
	Avg float64
}

// CreditStats es el consumo de créditos de guardería en un rango.
// Viene del ledger externo; este motor solo lo transporta.
type CreditStats struct {
	Total int
	ByPet []PetCredits
}

type PetCredits struct {
	PetID       string
	PetName     string
	CreditsUsed int
}
