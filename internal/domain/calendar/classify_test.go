package calendar

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify_HealthKinds(t *testing.T) {
	today := day(2024, 3, 2)

	cases := []struct {
		name  string
		kind  SourceKind
		start time.Time
		want  Status
	}{
		{"vaccine overdue", KindVaccine, day(2024, 2, 26), StatusOverdue},
		{"due today is upcoming", KindVaccine, day(2024, 3, 2), StatusUpcoming},
		{"last day of window", KindMedication, day(2024, 3, 8), StatusUpcoming},
		{"first day past window", KindFlea, day(2024, 3, 9), StatusFuture},
		{"far future", KindDeworming, day(2024, 6, 1), StatusFuture},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.kind, tc.start, today, DefaultUpcomingWindowDays)
			if got != tc.want {
				t.Fatalf("Classify(%s, %s) = %s, want %s", tc.kind, tc.start.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestClassify_SameDueDateAcrossDays(t *testing.T) {
	// Una misma vacuna cambia de estado según el día de consulta.
	due := day(2024, 3, 1)

	if got := Classify(KindVaccine, due, day(2024, 2, 26), DefaultUpcomingWindowDays); got != StatusUpcoming {
		t.Fatalf("queried on 02-26: %s, want upcoming", got)
	}
	if got := Classify(KindVaccine, due, day(2024, 3, 2), DefaultUpcomingWindowDays); got != StatusOverdue {
		t.Fatalf("queried on 03-02: %s, want overdue", got)
	}
}

func TestClassify_NonHealthKindsAreNone(t *testing.T) {
	today := day(2024, 3, 2)
	past := day(2024, 1, 1)

	for _, k := range []SourceKind{KindCheckin, KindCheckout, KindPaymentIncome, KindPaymentExpense} {
		if got := Classify(k, past, today, DefaultUpcomingWindowDays); got != StatusNone {
			t.Fatalf("Classify(%s) = %s, want none even for past dates", k, got)
		}
	}
}

func TestClassify_DayGranularity(t *testing.T) {
	// Mismo día calendario con horas distintas no cambia el estado.
	today := time.Date(2024, 3, 2, 23, 50, 0, 0, time.UTC)
	start := time.Date(2024, 3, 2, 0, 10, 0, 0, time.UTC)

	if got := Classify(KindVaccine, start, today, DefaultUpcomingWindowDays); got != StatusUpcoming {
		t.Fatalf("same-day event classified as %s, want upcoming", got)
	}
}

func TestClassify_ZeroWindowFallsBackToDefault(t *testing.T) {
	today := day(2024, 3, 2)
	inWindow := day(2024, 3, 5)

	if got := Classify(KindVaccine, inWindow, today, 0); got != StatusUpcoming {
		t.Fatalf("Classify with windowDays=0 = %s, want upcoming (default window)", got)
	}
}
