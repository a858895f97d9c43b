package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Service es el motor de la agenda general: junta los cuatro orígenes en
// una línea de tiempo canónica y rutea reprogramaciones/bajas de vuelta al
// registro de origen correcto.
//
// Todo el camino de lectura es puro sobre datos ya traídos: sin locks,
// seguro para cualquier cantidad de requests concurrentes.
type Service struct {
	vaccinations VaccinationSource
	medications  MedicationSource
	preventives  PreventiveSource
	stays        StaySource
	transactions TransactionSource
	credits      CreditLedger

	now        func() time.Time
	windowDays int
}

type Sources struct {
	Vaccinations VaccinationSource
	Medications  MedicationSource
	Preventives  PreventiveSource
	Stays        StaySource
	Transactions TransactionSource
	Credits      CreditLedger
}

func NewService(src Sources) *Service {
	return &Service{
		vaccinations: src.Vaccinations,
		medications:  src.Medications,
		preventives:  src.Preventives,
		stays:        src.Stays,
		transactions: src.Transactions,
		credits:      src.Credits,
		now:          time.Now,
		windowDays:   DefaultUpcomingWindowDays,
	}
}

// SetUpcomingWindow ajusta la ventana de anticipación (días) usada para
// clasificar eventos de salud como "upcoming".
func (s *Service) SetUpcomingWindow(days int) {
	if days > 0 {
		s.windowDays = days
	}
}

// GetEvents trae los registros de los orígenes para la ventana, los
// normaliza y los clasifica. El filtro lo aplica el caller después.
func (s *Service) GetEvents(ctx context.Context, rangeStart, rangeEnd time.Time) ([]Event, error) {
	if rangeEnd.Before(rangeStart) {
		return nil, ErrInvalidRange
	}

	events := make([]Event, 0, 64)

	vaccs, err := s.vaccinations.ListDueBetween(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("vaccination source: %w", err)
	}
	for _, v := range vaccs {
		events = append(events, normalizeVaccination(v))
	}

	meds, err := s.medications.ListEndingBetween(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("medication source: %w", err)
	}
	for _, m := range meds {
		events = append(events, normalizeMedication(m))
	}

	fleas, err := s.preventives.ListFleaDueBetween(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("preventive source: %w", err)
	}
	for _, f := range fleas {
		events = append(events, normalizePreventive(KindFlea, f))
	}

	deworms, err := s.preventives.ListDewormingDueBetween(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("preventive source: %w", err)
	}
	for _, d := range deworms {
		events = append(events, normalizePreventive(KindDeworming, d))
	}

	stays, err := s.stays.ListOverlapping(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("stay source: %w", err)
	}
	for _, st := range stays {
		events = append(events, normalizeStay(st)...)
	}

	txs, err := s.transactions.ListBetween(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("transaction source: %w", err)
	}
	for _, t := range txs {
		events = append(events, normalizeTransaction(t))
	}

	classifyAll(events, s.now(), s.windowDays)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
	return events, nil
}

// GetOccupancy computa la ocupación diaria del rango a partir de las
// estadías vigentes. Función pura del set actual de estadías: ningún
// conteo intermedio cacheado es autoritativo.
func (s *Service) GetOccupancy(ctx context.Context, rangeStart, rangeEnd time.Time) ([]OccupancyRecord, error) {
	if rangeEnd.Before(rangeStart) {
		return nil, ErrInvalidRange
	}

	stays, err := s.stays.ListOverlapping(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("stay source: %w", err)
	}

	intervals := make([]StayInterval, 0, len(stays))
	for _, st := range stays {
		intervals = append(intervals, st.Interval())
	}
	return Occupancy(intervals, rangeStart, rangeEnd), nil
}

// ExportICS arma el feed iCalendar del rango. El timestamp de generación
// sale del reloj del servicio, como el resto de la clasificación.
func (s *Service) ExportICS(ctx context.Context, rangeStart, rangeEnd time.Time) (string, error) {
	events, err := s.GetEvents(ctx, rangeStart, rangeEnd)
	if err != nil {
		return "", err
	}
	return BuildICS(events, s.now().UTC()), nil
}

// GetCreditStats pasa la consulta al ledger de créditos externo.
func (s *Service) GetCreditStats(ctx context.Context, rangeStart, rangeEnd time.Time) (CreditStats, error) {
	if rangeEnd.Before(rangeStart) {
		return CreditStats{}, ErrInvalidRange
	}
	stats, err := s.credits.Consumption(ctx, rangeStart, rangeEnd)
	if err != nil {
		return CreditStats{}, fmt.Errorf("credit ledger: %w", err)
	}
	return stats, nil
}

// RescheduleInput es la fecha propuesta para un evento.
// NewEnd es opcional (nil = sin fecha de fin explícita).
type RescheduleInput struct {
	NewStart time.Time
	NewEnd   *time.Time
}

// Reschedule rutea el cambio de fecha al único registro de origen dueño
// del evento, según el kind. La validación precede a la escritura en todas
// las ramas; un mover y un resize siguen exactamente el mismo camino.
//
// La escritura es un update atómico de una sola fila. Reprogramaciones
// concurrentes del mismo evento compiten en el storage con política
// last-write-wins: la escritura perdedora se pisa silenciosamente.
func (s *Service) Reschedule(ctx context.Context, id EventID, in RescheduleInput) (Event, error) {
	if in.NewStart.IsZero() {
		return Event{}, fmt.Errorf("%w: new start required", ErrInvalidRange)
	}
	if in.NewEnd != nil && in.NewEnd.Before(in.NewStart) {
		return Event{}, ErrInvalidRange
	}

	switch id.Kind {
	case KindVaccine:
		if err := s.vaccinations.UpdateDueDate(ctx, id.RecordID, in.NewStart); err != nil {
			return Event{}, err
		}
		r, err := s.vaccinations.GetByID(ctx, id.RecordID)
		if err != nil {
			return Event{}, err
		}
		return s.finish(normalizeVaccination(r)), nil

	case KindMedication:
		end := in.NewStart
		if in.NewEnd != nil {
			end = *in.NewEnd
		}
		if err := s.medications.UpdateEndDate(ctx, id.RecordID, end); err != nil {
			return Event{}, err
		}
		r, err := s.medications.GetByID(ctx, id.RecordID)
		if err != nil {
			return Event{}, err
		}
		return s.finish(normalizeMedication(r)), nil

	case KindFlea:
		if err := s.preventives.UpdateFleaDueDate(ctx, id.RecordID, in.NewStart); err != nil {
			return Event{}, err
		}
		r, err := s.preventives.GetFleaByID(ctx, id.RecordID)
		if err != nil {
			return Event{}, err
		}
		return s.finish(normalizePreventive(KindFlea, r)), nil

	case KindDeworming:
		if err := s.preventives.UpdateDewormingDueDate(ctx, id.RecordID, in.NewStart); err != nil {
			return Event{}, err
		}
		r, err := s.preventives.GetDewormingByID(ctx, id.RecordID)
		if err != nil {
			return Event{}, err
		}
		return s.finish(normalizePreventive(KindDeworming, r)), nil

	case KindCheckin, KindCheckout:
		return s.rescheduleStay(ctx, id, in)

	case KindPaymentIncome, KindPaymentExpense:
		// Solo se mueve la fecha; amount/category/notes quedan intactos.
		if err := s.transactions.UpdateDate(ctx, id.RecordID, in.NewStart); err != nil {
			return Event{}, err
		}
		r, err := s.transactions.GetByID(ctx, id.RecordID)
		if err != nil {
			return Event{}, err
		}
		return s.finish(normalizeTransaction(r)), nil

	default:
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownKind, id.Kind)
	}
}

// rescheduleStay lee la estadía dueña, computa el intervalo resultante y
// rechaza todo intervalo invertido antes de escribir.
func (s *Service) rescheduleStay(ctx context.Context, id EventID, in RescheduleInput) (Event, error) {
	stay, err := s.stays.GetByID(ctx, id.RecordID)
	if err != nil {
		return Event{}, err
	}

	checkIn := stay.CheckInDate
	checkOut := stay.CheckOutDate

	switch id.Kind {
	case KindCheckin:
		checkIn = in.NewStart
		if in.NewEnd != nil {
			checkOut = *in.NewEnd
		}
	case KindCheckout:
		checkOut = in.NewStart
		if in.NewEnd != nil {
			checkOut = *in.NewEnd
		}
	}

	if dayOf(checkOut).Before(dayOf(checkIn)) {
		return Event{}, fmt.Errorf("%w: check-out before check-in", ErrInvalidRange)
	}

	if err := s.stays.UpdateDates(ctx, id.RecordID, checkIn, checkOut); err != nil {
		return Event{}, err
	}

	updated, err := s.stays.GetByID(ctx, id.RecordID)
	if err != nil {
		return Event{}, err
	}
	for _, e := range normalizeStay(updated) {
		if e.ID.Kind == id.Kind {
			return s.finish(e), nil
		}
	}
	// normalizeStay siempre emite ambos kinds; no hay rama alcanzable acá.
	return Event{}, ErrNotFound
}

// DeleteEvent borra el registro de origen detrás de un evento, con la
// misma tabla de despacho por kind que Reschedule. Para checkin/checkout
// se exige bookingID para ubicar la estadía; que falte es una violación de
// contrato del caller, no un no-op silencioso.
func (s *Service) DeleteEvent(ctx context.Context, id EventID, bookingID string) error {
	switch id.Kind {
	case KindVaccine:
		return s.vaccinations.Delete(ctx, id.RecordID)
	case KindMedication:
		return s.medications.Delete(ctx, id.RecordID)
	case KindFlea:
		return s.preventives.DeleteFlea(ctx, id.RecordID)
	case KindDeworming:
		return s.preventives.DeleteDeworming(ctx, id.RecordID)
	case KindCheckin, KindCheckout:
		if bookingID == "" {
			return ErrMissingBookingID
		}
		return s.stays.Delete(ctx, bookingID)
	case KindPaymentIncome, KindPaymentExpense:
		return s.transactions.Delete(ctx, id.RecordID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, id.Kind)
	}
}

// finish clasifica un evento recién re-derivado tras una escritura.
func (s *Service) finish(e Event) Event {
	e.Status = Classify(e.ID.Kind, e.Start, s.now(), s.windowDays)
	return e
}
