package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestBuildICS(t *testing.T) {
	events := []Event{
		{
			ID:     EventID{Kind: KindVaccine, RecordID: "v1"},
			Title:  "Antirrábica - Luna",
			Start:  day(2024, 3, 10),
			End:    day(2024, 3, 10),
			Status: StatusUpcoming,
			Notes:  "refuerzo anual",
		},
		{
			ID:    EventID{Kind: KindCheckin, RecordID: "s1"},
			Title: "Check-in: Milo",
			Start: day(2024, 3, 12),
			End:   day(2024, 3, 12),
		},
	}

	out := BuildICS(events, time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC))

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatalf("not a calendar:\n%s", out)
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("VEVENT count = %d, want 2", got)
	}
	if !strings.Contains(out, "UID:vaccine-v1@pet-daycare-calendar") {
		t.Fatalf("missing vaccine UID:\n%s", out)
	}
	if !strings.Contains(out, "SUMMARY:Antirrábica - Luna") {
		t.Fatalf("missing summary:\n%s", out)
	}
	// All-day con DTEND exclusivo: el evento del 10 termina el 11.
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20240310") {
		t.Fatalf("missing all-day DTSTART:\n%s", out)
	}
	if !strings.Contains(out, "DTEND;VALUE=DATE:20240311") {
		t.Fatalf("missing exclusive DTEND:\n%s", out)
	}
	if !strings.Contains(out, "estado: upcoming") {
		t.Fatalf("missing status note in description:\n%s", out)
	}
}

func TestBuildICS_Empty(t *testing.T) {
	out := BuildICS(nil, time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC))
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Fatalf("empty calendar invalid:\n%s", out)
	}
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Fatalf("unexpected VEVENT in empty calendar")
	}
}
