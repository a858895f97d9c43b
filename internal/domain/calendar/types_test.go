package calendar

import "testing"

func TestParseEventID_UUIDRecordIDs(t *testing.T) {
	// Los record IDs son UUIDs: el parser no puede cortar en el primer '-'.
	raw := "payment-income-3f1c9a2e-8a1b-4a57-9f00-6a51f2b7c111"

	id, ok := ParseEventID(raw)
	if !ok {
		t.Fatalf("ParseEventID(%q) failed", raw)
	}
	if id.Kind != KindPaymentIncome {
		t.Fatalf("kind = %s, want payment-income", id.Kind)
	}
	if id.RecordID != "3f1c9a2e-8a1b-4a57-9f00-6a51f2b7c111" {
		t.Fatalf("recordID = %q", id.RecordID)
	}

	if FormatEventID(id) != raw {
		t.Fatalf("round trip mismatch: %q", FormatEventID(id))
	}
}

func TestParseEventID_AllKinds(t *testing.T) {
	for _, k := range knownKinds {
		raw := FormatEventID(EventID{Kind: k, RecordID: "abc-123"})
		id, ok := ParseEventID(raw)
		if !ok {
			t.Fatalf("ParseEventID(%q) failed", raw)
		}
		if id.Kind != k || id.RecordID != "abc-123" {
			t.Fatalf("ParseEventID(%q) = %+v", raw, id)
		}
	}
}

func TestParseEventID_Invalid(t *testing.T) {
	for _, raw := range []string{"", "vaccine", "vaccine-", "surgery-123", "payment-123"} {
		if _, ok := ParseEventID(raw); ok {
			t.Fatalf("ParseEventID(%q) should fail", raw)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	cases := map[SourceKind]Category{
		KindVaccine:        CategoryHealth,
		KindMedication:     CategoryHealth,
		KindFlea:           CategoryHealth,
		KindDeworming:      CategoryHealth,
		KindCheckin:        CategoryOperational,
		KindCheckout:       CategoryOperational,
		KindPaymentIncome:  CategoryFinancial,
		KindPaymentExpense: CategoryFinancial,
	}
	for k, want := range cases {
		if got := CategoryOf(k); got != want {
			t.Fatalf("CategoryOf(%s) = %s, want %s", k, got, want)
		}
	}
}

func TestCategoryOf_UnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown kind")
		}
	}()
	CategoryOf(SourceKind("surgery"))
}

func TestParseCategory(t *testing.T) {
	if cat, ok := ParseCategory(" health "); !ok || cat != CategoryHealth {
		t.Fatalf("ParseCategory(health) = %s, %v", cat, ok)
	}
	if _, ok := ParseCategory("medical"); ok {
		t.Fatalf("ParseCategory(medical) should fail")
	}
}
