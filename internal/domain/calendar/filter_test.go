package calendar

import "testing"

func filterFixture() []Event {
	return []Event{
		{ID: EventID{Kind: KindVaccine, RecordID: "v1"}, Title: "Antirrábica - Luna", PetID: "pet-1"},
		{ID: EventID{Kind: KindCheckin, RecordID: "s1"}, Title: "Check-in: Luna", PetID: "pet-1"},
		{ID: EventID{Kind: KindMedication, RecordID: "m1"}, Title: "Antibiótico - Milo", PetID: "pet-2"},
		{ID: EventID{Kind: KindPaymentExpense, RecordID: "t1"}, Title: "Gasto: Bolsa de alimento"},
	}
}

func TestFilter_NoOptionsKeepsAll(t *testing.T) {
	events := filterFixture()
	got := Filter(events, FilterOptions{})
	if len(got) != len(events) {
		t.Fatalf("got %d events, want %d", len(got), len(events))
	}
}

func TestFilter_PetIDExcludesPetless(t *testing.T) {
	got := Filter(filterFixture(), FilterOptions{PetID: "pet-1"})
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	for _, e := range got {
		if e.PetID != "pet-1" {
			t.Fatalf("unexpected event %s", FormatEventID(e.ID))
		}
	}
}

func TestFilter_Kinds(t *testing.T) {
	got := Filter(filterFixture(), FilterOptions{Kinds: []SourceKind{KindVaccine, KindPaymentExpense}})
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
}

func TestFilter_Category(t *testing.T) {
	got := Filter(filterFixture(), FilterOptions{Category: CategoryHealth})
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	for _, e := range got {
		if CategoryOf(e.ID.Kind) != CategoryHealth {
			t.Fatalf("non-health event %s passed", FormatEventID(e.ID))
		}
	}
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	got := Filter(filterFixture(), FilterOptions{Search: "LUNA"})
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
}

func TestFilter_ComposesWithAND(t *testing.T) {
	got := Filter(filterFixture(), FilterOptions{PetID: "pet-1", Category: CategoryHealth, Search: "luna"})
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if got[0].ID.Kind != KindVaccine {
		t.Fatalf("got %s, want the vaccine event", FormatEventID(got[0].ID))
	}
}

func TestFilter_PredicatesCommute(t *testing.T) {
	// Cada filtro es un predicado AND independiente: aplicarlos en
	// cualquier orden da el mismo set.
	events := filterFixture()

	a := Filter(Filter(events, FilterOptions{PetID: "pet-1"}), FilterOptions{Search: "luna"})
	b := Filter(Filter(events, FilterOptions{Search: "luna"}), FilterOptions{PetID: "pet-1"})

	if len(a) != len(b) {
		t.Fatalf("order changed result size: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("order changed result at %d: %+v vs %+v", i, a[i].ID, b[i].ID)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	events := filterFixture()
	_ = Filter(events, FilterOptions{PetID: "pet-2"})
	if len(events) != 4 {
		t.Fatalf("input slice mutated: %d", len(events))
	}
}
