package calendar

import (
	"testing"
)

func TestNormalizeVaccination(t *testing.T) {
	e := normalizeVaccination(VaccinationRecord{
		ID:          "v1",
		PetID:       "pet-1",
		PetName:     "Luna",
		VaccineName: "Antirrábica",
		NextDueDate: day(2024, 3, 10),
		Notes:       "refuerzo anual",
	})

	if e.ID.Kind != KindVaccine || e.ID.RecordID != "v1" {
		t.Fatalf("id = %+v", e.ID)
	}
	if e.Title != "Antirrábica - Luna" {
		t.Fatalf("title = %q", e.Title)
	}
	if !e.Start.Equal(day(2024, 3, 10)) || !e.End.Equal(e.Start) {
		t.Fatalf("start/end = %s/%s", e.Start, e.End)
	}
}

func TestNormalizeMedication_UsesEndDate(t *testing.T) {
	e := normalizeMedication(MedicationRecord{
		ID:             "m1",
		PetName:        "Milo",
		MedicationName: "Antibiótico",
		EndDate:        day(2024, 3, 4),
	})
	if !e.Start.Equal(day(2024, 3, 4)) {
		t.Fatalf("start = %s, want the end date", e.Start)
	}
}

func TestNormalizeStay_EmitsBothEndpoints(t *testing.T) {
	events := normalizeStay(StayRecord{
		ID:           "stay-1",
		PetID:        "pet-1",
		PetName:      "Luna",
		CheckInDate:  day(2024, 3, 1),
		CheckOutDate: day(2024, 3, 5),
	})

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	checkin, checkout := events[0], events[1]
	if checkin.ID.Kind != KindCheckin || checkout.ID.Kind != KindCheckout {
		t.Fatalf("kinds = %s/%s", checkin.ID.Kind, checkout.ID.Kind)
	}
	if checkin.Title != "Check-in: Luna" || checkout.Title != "Check-out: Luna" {
		t.Fatalf("titles = %q/%q", checkin.Title, checkout.Title)
	}
	if checkin.BookingID != "stay-1" || checkout.BookingID != "stay-1" {
		t.Fatalf("bookingIDs = %q/%q, want the stay id", checkin.BookingID, checkout.BookingID)
	}
	if !checkin.Start.Equal(day(2024, 3, 1)) || !checkout.Start.Equal(day(2024, 3, 5)) {
		t.Fatalf("dates = %s/%s", checkin.Start, checkout.Start)
	}
}

func TestNormalizeTransaction(t *testing.T) {
	income := normalizeTransaction(TransactionRecord{
		ID:          "t1",
		Type:        TransactionIncome,
		Category:    "hospedaje",
		Description: "Estadía marzo",
		Amount:      1250050,
		Date:        day(2024, 3, 2),
	})
	if income.ID.Kind != KindPaymentIncome {
		t.Fatalf("kind = %s", income.ID.Kind)
	}
	if income.Title != "Ingreso: Estadía marzo" {
		t.Fatalf("title = %q", income.Title)
	}
	if income.Notes != "hospedaje - $12500.50" {
		t.Fatalf("notes = %q", income.Notes)
	}
	if income.Amount != 1250050 || income.Category != "hospedaje" {
		t.Fatalf("amount/category = %d/%q", income.Amount, income.Category)
	}

	expense := normalizeTransaction(TransactionRecord{
		ID:          "t2",
		Type:        TransactionExpense,
		Description: "Bolsa de alimento",
		Amount:      450000,
		Date:        day(2024, 3, 3),
	})
	if expense.ID.Kind != KindPaymentExpense {
		t.Fatalf("kind = %s", expense.ID.Kind)
	}
	if expense.Title != "Gasto: Bolsa de alimento" {
		t.Fatalf("title = %q", expense.Title)
	}
}
