package calendar

import (
	"time"

	ics "github.com/arran4/golang-ical"
)

// BuildICS arma el feed iCalendar de la línea de tiempo ya normalizada,
// para que calendarios externos (tutores, recepción) puedan suscribirse.
// Los eventos son puntuales a nivel día, así que se emiten como all-day.
func BuildICS(events []Event, generatedAt time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//pet-daycare-calendar//agenda general//ES")

	for _, e := range events {
		ve := cal.AddEvent(FormatEventID(e.ID) + "@pet-daycare-calendar")
		ve.SetDtStampTime(generatedAt)
		ve.SetAllDayStartAt(dayOf(e.Start))
		// DTEND all-day es exclusivo: el día siguiente al fin del evento.
		ve.SetAllDayEndAt(dayOf(e.End).AddDate(0, 0, 1))
		ve.SetSummary(e.Title)

		desc := e.Notes
		if e.Status == StatusOverdue || e.Status == StatusUpcoming {
			if desc != "" {
				desc += "\n"
			}
			desc += "estado: " + string(e.Status)
		}
		if desc != "" {
			ve.SetDescription(desc)
		}
	}

	return cal.Serialize()
}
