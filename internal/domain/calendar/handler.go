package calendar

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-daycare-calendar/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/calendar", func(cr chi.Router) {
		cr.Get("/events", listEventsHandler(svc))
		cr.Get("/occupancy", occupancyHandler(svc))
		cr.Get("/credits", creditsHandler(svc))
		cr.Get("/stats", statsHandler(svc))
		cr.Get("/export.ics", exportICSHandler(svc))

		cr.Patch("/events/{eventID}", rescheduleHandler(svc))
		cr.Delete("/events/{eventID}", deleteEventHandler(svc))
	})
}

// eventResponse representa un evento de la agenda general devuelto por la API.
type eventResponse struct {
	ID        string     `json:"id"`
	Kind      SourceKind `json:"kind"`
	Category  Category   `json:"category"`
	Title     string     `json:"title"`
	Start     time.Time  `json:"start"`
	End       time.Time  `json:"end"`
	PetID     string     `json:"pet_id,omitempty"`
	PetName   string     `json:"pet_name,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Status    Status     `json:"status"`
	BookingID string     `json:"booking_id,omitempty"`
	Amount    int64      `json:"amount,omitempty"`
	TxCat     string     `json:"tx_category,omitempty"`
}

type occupancyResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type statsResponse struct {
	Total       int `json:"total"`
	Health      int `json:"health"`
	Operational int `json:"operational"`
	Financial   int `json:"financial"`

	Overdue  int `json:"overdue"`
	Upcoming int `json:"upcoming"`

	Checkins  int `json:"checkins"`
	Checkouts int `json:"checkouts"`

	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`

	MaxOccupancy int     `json:"max_occupancy"`
	AvgOccupancy float64 `json:"avg_occupancy"`
}

// rescheduleRequest es el cuerpo de un cambio de fecha (drag & drop).
// Un resize es el mismo camino: start/end nuevos, validar, despachar.
type rescheduleRequest struct {
	NewStart string `json:"new_start"`         // RFC3339
	NewEnd   string `json:"new_end,omitempty"` // RFC3339, opcional
}

// listEventsHandler godoc
// @Summary Agenda general
// @Description Línea de tiempo canónica: vacunas, medicaciones, preventivos, estadías (check-in/check-out) y movimientos financieros del rango, normalizados y clasificados. Filtros opcionales por mascota, kinds, categoría y texto. Solo admin.
// @Tags calendar
// @Produce json
// @Param start query string true "Fecha inicio (YYYY-MM-DD)"
// @Param end query string true "Fecha fin (YYYY-MM-DD)"
// @Param pet_id query string false "Solo eventos de esta mascota"
// @Param kinds query string false "CSV de kinds (ej: vaccine,checkin). Excluyente con category"
// @Param category query string false "health | operational | financial. Excluyente con kinds"
// @Param q query string false "Substring case-insensitive sobre el título"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "rango o filtros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /calendar/events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		from, to, ok := parseRange(w, r)
		if !ok {
			return
		}
		opts, err := parseFilterOptions(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		events, err := svc.GetEvents(r.Context(), from, to)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		events = Filter(events, opts)

		out := make([]eventResponse, 0, len(events))
		for _, e := range events {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// occupancyHandler godoc
// @Summary Ocupación diaria
// @Description Cantidad de mascotas presentes por fecha del rango, derivada de los intervalos de estadía (check-out inclusive). Solo admin.
// @Tags calendar
// @Produce json
// @Param start query string true "Fecha inicio (YYYY-MM-DD)"
// @Param end query string true "Fecha fin (YYYY-MM-DD)"
// @Success 200 {array} occupancyResponse
// @Failure 400 {string} string "rango inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /calendar/occupancy [get]
func occupancyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}
		from, to, ok := parseRange(w, r)
		if !ok {
			return
		}

		records, err := svc.GetOccupancy(r.Context(), from, to)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]occupancyResponse, 0, len(records))
		for _, rec := range records {
			out = append(out, occupancyResponse{
				Date:  rec.Date.Format("2006-01-02"),
				Count: rec.Count,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// creditsHandler godoc
// @Summary Consumo de créditos
// @Description Consumo de créditos de guardería del rango, según el ledger externo. Solo admin.
// @Tags calendar
// @Produce json
// @Param start query string true "Fecha inicio (YYYY-MM-DD)"
// @Param end query string true "Fecha fin (YYYY-MM-DD)"
// @Success 200 {object} CreditStats
// @Failure 400 {string} string "rango inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /calendar/credits [get]
func creditsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}
		from, to, ok := parseRange(w, r)
		if !ok {
			return
		}

		stats, err := svc.GetCreditStats(r.Context(), from, to)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// statsHandler godoc
// @Summary Estadísticas de la agenda
// @Description Resumen del rango (conteos por categoría, vencidos/próximos, ingresos/gastos/balance) sobre el set filtrado, más extremos de ocupación. Solo admin.
// @Tags calendar
// @Produce json
// @Param start query string true "Fecha inicio (YYYY-MM-DD)"
// @Param end query string true "Fecha fin (YYYY-MM-DD)"
// @Param pet_id query string false "Solo eventos de esta mascota"
// @Param kinds query string false "CSV de kinds. Excluyente con category"
// @Param category query string false "health | operational | financial"
// @Param q query string false "Substring sobre el título"
// @Success 200 {object} statsResponse
// @Failure 400 {string} string "rango o filtros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /calendar/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}
		from, to, ok := parseRange(w, r)
		if !ok {
			return
		}
		opts, err := parseFilterOptions(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		events, err := svc.GetEvents(r.Context(), from, to)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		stats := Summarize(Filter(events, opts))

		occ, err := svc.GetOccupancy(r.Context(), from, to)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		occStats := SummarizeOccupancy(occ)

		writeJSON(w, http.StatusOK, statsResponse{
			Total:        stats.Total,
			Health:       stats.Health,
			Operational:  stats.Operational,
			Financial:    stats.Financial,
			Overdue:      stats.Overdue,
			Upcoming:     stats.Upcoming,
			Checkins:     stats.Checkins,
			Checkouts:    stats.Checkouts,
			Income:       stats.Income,
			Expense:      stats.Expense,
			Balance:      stats.Balance,
			MaxOccupancy: occStats.Max,
			AvgOccupancy: occStats.Avg,
		})
	}
}

// exportICSHandler godoc
// @Summary Exportar agenda como iCalendar
// @Description Feed .ics de la línea de tiempo del rango, para suscripción desde calendarios externos. Solo admin.
// @Tags calendar
// @Produce plain
// @Param start query string true "Fecha inicio (YYYY-MM-DD)"
// @Param end query string true "Fecha fin (YYYY-MM-DD)"
// @Success 200 {string} string "text/calendar"
// @Failure 400 {string} string "rango inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /calendar/export.ics [get]
func exportICSHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}
		from, to, ok := parseRange(w, r)
		if !ok {
			return
		}

		feed, err := svc.ExportICS(r.Context(), from, to)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="agenda.ics"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(feed))
	}
}

// rescheduleHandler godoc
// @Summary Reprogramar un evento
// @Description Mueve o redimensiona un evento de la agenda. El cambio se rutea al único registro de origen dueño del evento según su kind. Rechaza rangos no cronológicos antes de escribir. Solo admin.
// @Tags calendar
// @Accept json
// @Produce json
// @Param eventID path string true "ID canónico del evento (kind-recordID)"
// @Param payload body rescheduleRequest true "Nuevas fechas; RFC3339"
// @Success 200 {object} eventResponse
// @Failure 400 {string} string "id, kind o rango inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "registro de origen inexistente"
// @Router /calendar/events/{eventID} [patch]
func rescheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		id, ok := ParseEventID(chi.URLParam(r, "eventID"))
		if !ok {
			http.Error(w, "invalid event id", http.StatusBadRequest)
			return
		}

		var req rescheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		newStart, err := time.Parse(time.RFC3339, req.NewStart)
		if err != nil {
			http.Error(w, "new_start must be RFC3339", http.StatusBadRequest)
			return
		}

		in := RescheduleInput{NewStart: newStart}
		if strings.TrimSpace(req.NewEnd) != "" {
			newEnd, err := time.Parse(time.RFC3339, req.NewEnd)
			if err != nil {
				http.Error(w, "new_end must be RFC3339", http.StatusBadRequest)
				return
			}
			in.NewEnd = &newEnd
		}

		updated, err := svc.Reschedule(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(updated))
	}
}

// deleteEventHandler godoc
// @Summary Borrar un evento
// @Description Borra el registro de origen detrás del evento, con el mismo despacho por kind que la reprogramación. Para checkin/checkout es obligatorio booking_id. Solo admin.
// @Tags calendar
// @Param eventID path string true "ID canónico del evento (kind-recordID)"
// @Param booking_id query string false "ID de la estadía (obligatorio para checkin/checkout)"
// @Success 204 {string} string "sin contenido"
// @Failure 400 {string} string "id inválido o booking_id faltante"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "registro de origen inexistente"
// @Router /calendar/events/{eventID} [delete]
func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		id, ok := ParseEventID(chi.URLParam(r, "eventID"))
		if !ok {
			http.Error(w, "invalid event id", http.StatusBadRequest)
			return
		}

		bookingID := strings.TrimSpace(r.URL.Query().Get("booking_id"))
		if err := svc.DeleteEvent(r.Context(), id, bookingID); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// requireAdmin corta con 401/403 si no hay claims o el rol no alcanza.
// La autorización real la decide el colaborador externo que emitió los
// claims; acá solo se honra el rol recibido.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	if claims.Role != "admin" {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func parseRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	const layout = "2006-01-02"

	from, err := time.Parse(layout, strings.TrimSpace(r.URL.Query().Get("start")))
	if err != nil {
		http.Error(w, "start must be YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(layout, strings.TrimSpace(r.URL.Query().Get("end")))
	if err != nil {
		http.Error(w, "end must be YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		http.Error(w, "end before start", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func parseFilterOptions(r *http.Request) (FilterOptions, error) {
	opts := FilterOptions{
		PetID:  strings.TrimSpace(r.URL.Query().Get("pet_id")),
		Search: strings.TrimSpace(r.URL.Query().Get("q")),
	}

	kindsParam := strings.TrimSpace(r.URL.Query().Get("kinds"))
	categoryParam := strings.TrimSpace(r.URL.Query().Get("category"))

	// La categoría es un alias sobre kinds, no una restricción extra:
	// mandar ambos en la misma query es ambiguo y se rechaza.
	if kindsParam != "" && categoryParam != "" {
		return FilterOptions{}, errors.New("kinds and category are mutually exclusive")
	}

	if kindsParam != "" {
		for _, part := range strings.Split(kindsParam, ",") {
			k := SourceKind(strings.TrimSpace(part))
			if k == "" {
				continue
			}
			if !k.IsValid() {
				return FilterOptions{}, errors.New("unknown kind: " + string(k))
			}
			opts.Kinds = append(opts.Kinds, k)
		}
	}

	if categoryParam != "" {
		cat, ok := ParseCategory(categoryParam)
		if !ok {
			return FilterOptions{}, errors.New("unknown category: " + categoryParam)
		}
		opts.Category = cat
	}

	return opts, nil
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:        FormatEventID(e.ID),
		Kind:      e.ID.Kind,
		Category:  CategoryOf(e.ID.Kind),
		Title:     e.Title,
		Start:     e.Start,
		End:       e.End,
		PetID:     e.PetID,
		PetName:   e.PetName,
		Notes:     e.Notes,
		Status:    e.Status,
		BookingID: e.BookingID,
		Amount:    e.Amount,
		TxCat:     e.Category,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidRange),
		errors.Is(err, ErrUnknownKind),
		errors.Is(err, ErrMissingBookingID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "dependency error", http.StatusBadGateway)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
