package calendar

import "time"

// DefaultUpcomingWindowDays es la ventana de anticipación por defecto para
// marcar eventos de salud como "upcoming".
const DefaultUpcomingWindowDays = 7

// dayOf trunca un instante a su fecha (medianoche, misma zona).
// Las comparaciones de estado son a granularidad de día para evitar
// desclasificaciones por diferencia de horas.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Classify deriva el estado temporal de un evento. Determinística y sin
// estado: "today" es siempre un parámetro explícito, nunca wall-clock.
//
// Para kinds de salud (vaccine/medication/flea/deworming):
//   - start < today                          => overdue
//   - today <= start < today + windowDays    => upcoming
//   - si no                                  => future
//
// Para cualquier otro kind devuelve StatusNone, sin importar la fecha.
func Classify(kind SourceKind, start, today time.Time, windowDays int) Status {
	if CategoryOf(kind) != CategoryHealth {
		return StatusNone
	}
	if windowDays <= 0 {
		windowDays = DefaultUpcomingWindowDays
	}

	day := dayOf(start)
	todayDay := dayOf(today)
	threshold := todayDay.AddDate(0, 0, windowDays)

	switch {
	case day.Before(todayDay):
		return StatusOverdue
	case day.Before(threshold):
		return StatusUpcoming
	default:
		return StatusFuture
	}
}

// classifyAll anota el estado de cada evento in-place.
func classifyAll(events []Event, today time.Time, windowDays int) {
	for i := range events {
		events[i].Status = Classify(events[i].ID.Kind, events[i].Start, today, windowDays)
	}
}
