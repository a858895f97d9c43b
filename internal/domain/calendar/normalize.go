package calendar

import "fmt"

// Normalización: cada registro de origen se mapea a un Event canónico.
// Funciones puras y totales; preservan la primary key del origen dentro
// del EventID para que reschedule/delete puedan resolverla.

func normalizeVaccination(r VaccinationRecord) Event {
	return Event{
		ID:      EventID{Kind: KindVaccine, RecordID: r.ID},
		Title:   fmt.Sprintf("%s - %s", r.VaccineName, r.PetName),
		Start:   r.NextDueDate,
		End:     r.NextDueDate,
		PetID:   r.PetID,
		PetName: r.PetName,
		Notes:   r.Notes,
	}
}

func normalizeMedication(r MedicationRecord) Event {
	return Event{
		ID:      EventID{Kind: KindMedication, RecordID: r.ID},
		Title:   fmt.Sprintf("%s - %s", r.MedicationName, r.PetName),
		Start:   r.EndDate,
		End:     r.EndDate,
		PetID:   r.PetID,
		PetName: r.PetName,
		Notes:   r.Notes,
	}
}

func normalizePreventive(kind SourceKind, r PreventiveRecord) Event {
	if kind != KindFlea && kind != KindDeworming {
		panic("calendar: normalizePreventive called with kind " + string(kind))
	}
	return Event{
		ID:      EventID{Kind: kind, RecordID: r.ID},
		Title:   fmt.Sprintf("%s - %s", r.ProductName, r.PetName),
		Start:   r.NextDueDate,
		End:     r.NextDueDate,
		PetID:   r.PetID,
		PetName: r.PetName,
		Notes:   r.Notes,
	}
}

// normalizeStay emite dos eventos puntuales por estadía: el check-in en su
// día y el check-out en el suyo. El rango completo solo importa para la
// ocupación (ver Occupancy), no acá.
func normalizeStay(r StayRecord) []Event {
	checkin := Event{
		ID:        EventID{Kind: KindCheckin, RecordID: r.ID},
		Title:     "Check-in: " + r.PetName,
		Start:     r.CheckInDate,
		End:       r.CheckInDate,
		PetID:     r.PetID,
		PetName:   r.PetName,
		Notes:     r.Notes,
		BookingID: r.ID,
	}
	checkout := Event{
		ID:        EventID{Kind: KindCheckout, RecordID: r.ID},
		Title:     "Check-out: " + r.PetName,
		Start:     r.CheckOutDate,
		End:       r.CheckOutDate,
		PetID:     r.PetID,
		PetName:   r.PetName,
		Notes:     r.Notes,
		BookingID: r.ID,
	}
	return []Event{checkin, checkout}
}

func normalizeTransaction(r TransactionRecord) Event {
	kind := KindPaymentIncome
	label := "Ingreso"
	if r.Type == TransactionExpense {
		kind = KindPaymentExpense
		label = "Gasto"
	}
	return Event{
		ID:       EventID{Kind: kind, RecordID: r.ID},
		Title:    fmt.Sprintf("%s: %s", label, r.Description),
		Start:    r.Date,
		End:      r.Date,
		PetID:    r.PetID,
		PetName:  r.PetName,
		Notes:    fmt.Sprintf("%s - $%.2f", r.Category, float64(r.Amount)/100),
		Amount:   r.Amount,
		Category: r.Category,
	}
}
