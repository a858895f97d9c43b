package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-daycare-calendar/internal/router"
)

type eventDTO struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Category  string `json:"category"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	BookingID string `json:"booking_id"`
}

func TestHTTP_EndToEnd_Agenda(t *testing.T) {
	handler, _ := router.NewRouter(router.Options{AuthVerifier: nil})
	ts := httptest.NewServer(handler)
	defer ts.Close()

	start := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	end := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	rangeQS := "start=" + start + "&end=" + end

	// 1) Sin claims => 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/calendar/events?"+rangeQS, "", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without claims, got %d", st)
		}
	}

	// 2) Rol insuficiente => 403
	{
		st, _ := doReq(t, ts.URL, "GET", "/calendar/events?"+rangeQS, "user-1", "staff", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for non-admin, got %d", st)
		}
	}

	// 3) Admin lista la agenda sembrada
	var events []eventDTO
	{
		st, body := doReq(t, ts.URL, "GET", "/calendar/events?"+rangeQS, "admin-1", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing events, got %d body=%s", st, string(body))
		}
		if err := json.Unmarshal(body, &events); err != nil {
			t.Fatalf("decode events: %v", err)
		}
		if len(events) == 0 {
			t.Fatalf("seeded store returned no events")
		}
	}

	// 4) La vacuna vencida del seed viene clasificada como overdue
	var vaccineID string
	var checkinEvent eventDTO
	for _, e := range events {
		if e.Kind == "vaccine" && e.Status == "overdue" {
			vaccineID = e.ID
		}
		if e.Kind == "checkin" {
			checkinEvent = e
		}
	}
	if vaccineID == "" {
		t.Fatalf("no overdue vaccine in seeded events: %+v", events)
	}
	if checkinEvent.ID == "" || checkinEvent.BookingID == "" {
		t.Fatalf("no checkin event with booking id: %+v", events)
	}

	// 5) kinds y category juntos => 400
	{
		st, _ := doReq(t, ts.URL, "GET", "/calendar/events?"+rangeQS+"&kinds=vaccine&category=health", "admin-1", "admin", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for kinds+category, got %d", st)
		}
	}

	// 6) Ocupación de hoy: la estadía sembrada está en curso
	{
		today := time.Now().Format("2006-01-02")
		st, body := doReq(t, ts.URL, "GET", "/calendar/occupancy?start="+today+"&end="+today, "admin-1", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 occupancy, got %d body=%s", st, string(body))
		}
		var recs []struct {
			Date  string `json:"date"`
			Count int    `json:"count"`
		}
		if err := json.Unmarshal(body, &recs); err != nil {
			t.Fatalf("decode occupancy: %v", err)
		}
		if len(recs) != 1 || recs[0].Count < 1 {
			t.Fatalf("occupancy today = %+v, want count >= 1", recs)
		}
	}

	// 7) Stats con balance del seed (ingreso 12000.00 - gasto 4500.00)
	{
		st, body := doReq(t, ts.URL, "GET", "/calendar/stats?"+rangeQS, "admin-1", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 stats, got %d body=%s", st, string(body))
		}
		var stats struct {
			Income  int64 `json:"income"`
			Expense int64 `json:"expense"`
			Balance int64 `json:"balance"`
			Overdue int   `json:"overdue"`
		}
		if err := json.Unmarshal(body, &stats); err != nil {
			t.Fatalf("decode stats: %v", err)
		}
		if stats.Balance != stats.Income-stats.Expense {
			t.Fatalf("balance %d != income %d - expense %d", stats.Balance, stats.Income, stats.Expense)
		}
		if stats.Overdue < 1 {
			t.Fatalf("expected at least one overdue event, got %d", stats.Overdue)
		}
	}

	// 8) Reprogramar la vacuna vencida para dentro de 3 días => upcoming
	{
		newStart := time.Now().AddDate(0, 0, 3).Format(time.RFC3339)
		st, body := doReq(t, ts.URL, "PATCH", "/calendar/events/"+vaccineID, "admin-1", "admin", map[string]any{
			"new_start": newStart,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 reschedule, got %d body=%s", st, string(body))
		}
		var updated eventDTO
		if err := json.Unmarshal(body, &updated); err != nil {
			t.Fatalf("decode updated: %v", err)
		}
		if updated.Status != "upcoming" {
			t.Fatalf("rescheduled status = %s, want upcoming", updated.Status)
		}
	}

	// 9) Borrar checkin sin booking_id => 400; con booking_id => 204
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/calendar/events/"+checkinEvent.ID, "admin-1", "admin", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 deleting checkin without booking_id, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/calendar/events/"+checkinEvent.ID+"?booking_id="+checkinEvent.BookingID, "admin-1", "admin", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 deleting stay, got %d", st)
		}

		// La estadía desapareció de la agenda.
		st, body := doReq(t, ts.URL, "GET", "/calendar/events?"+rangeQS+"&kinds=checkin,checkout", "admin-1", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var remaining []eventDTO
		if err := json.Unmarshal(body, &remaining); err != nil {
			t.Fatalf("decode: %v", err)
		}
		for _, e := range remaining {
			if e.BookingID == checkinEvent.BookingID {
				t.Fatalf("deleted stay still present: %+v", e)
			}
		}
	}

	// 10) Export ICS
	{
		req, _ := http.NewRequest("GET", ts.URL+"/calendar/export.ics?"+rangeQS, nil)
		req.Header.Set("X-Debug-User-ID", "admin-1")
		req.Header.Set("X-Debug-Role", "admin")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("export request: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 export, got %d", resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
			t.Fatalf("content type = %q", ct)
		}
		raw, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(raw), "BEGIN:VCALENDAR") {
			t.Fatalf("export is not an ICS feed")
		}
	}
}

func TestHTTP_Pets(t *testing.T) {
	handler, _ := router.NewRouter(router.Options{AuthVerifier: nil})
	ts := httptest.NewServer(handler)
	defer ts.Close()

	// Registrar una mascota nueva
	var petID string
	{
		st, body := doReq(t, ts.URL, "POST", "/pets", "admin-1", "admin", map[string]any{
			"name":        "Greta",
			"species":     "dog",
			"breed":       "Schnauzer",
			"tutor_name":  "Ana Paz",
			"tutor_phone": "+54 9 11 5555-0303",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating pet, got %d body=%s", st, string(body))
		}
		var created struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(body, &created); err != nil {
			t.Fatalf("decode created pet: %v", err)
		}
		petID = created.ID
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, "admin-1", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
	}

	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, "", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without claims, got %d", st)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	handler, _ := router.NewRouter(router.Options{AuthVerifier: nil})
	ts := httptest.NewServer(handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health = %d", resp.StatusCode)
	}
}

func doReq(t *testing.T, base, method, path, userID, role string, payload map[string]any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, base+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
		req.Header.Set("X-Debug-Role", role)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}
