package calendar

import "strings"

// SourceKind identifica de qué registro de dominio se derivó un evento.
// Determina el ruteo de escritura (reschedule/delete): cada kind mapea a
// exactamente un tipo de registro de origen.
type SourceKind string

const (
	KindVaccine        SourceKind = "vaccine"
	KindMedication     SourceKind = "medication"
	KindFlea           SourceKind = "flea"
	KindDeworming      SourceKind = "deworming"
	KindCheckin        SourceKind = "checkin"
	KindCheckout       SourceKind = "checkout"
	KindPaymentIncome  SourceKind = "payment-income"
	KindPaymentExpense SourceKind = "payment-expense"
)

// knownKinds es el set cerrado de kinds. Agregar un kind nuevo acá obliga a
// revisar el switch de Reschedule/DeleteEvent y la tabla de categorías.
var knownKinds = []SourceKind{
	KindVaccine,
	KindMedication,
	KindFlea,
	KindDeworming,
	KindCheckin,
	KindCheckout,
	KindPaymentIncome,
	KindPaymentExpense,
}

// IsValid reporta si k pertenece al set cerrado de kinds.
func (k SourceKind) IsValid() bool {
	for _, known := range knownKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Category agrupa kinds para filtros y estadísticas.
type Category string

const (
	CategoryHealth      Category = "health"
	CategoryOperational Category = "operational"
	CategoryFinancial   Category = "financial"
)

// CategoryOf devuelve la categoría derivada de un kind.
func CategoryOf(k SourceKind) Category {
	switch k {
	case KindVaccine, KindMedication, KindFlea, KindDeworming:
		return CategoryHealth
	case KindCheckin, KindCheckout:
		return CategoryOperational
	case KindPaymentIncome, KindPaymentExpense:
		return CategoryFinancial
	default:
		// Un kind fuera del set cerrado nunca debe llegar acá: solo puede
		// originarse en un bug de mapeo de un Source Adapter.
		panic("calendar: unknown source kind " + string(k))
	}
}

// ParseCategory valida una categoría recibida por el borde HTTP.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.TrimSpace(s)) {
	case CategoryHealth:
		return CategoryHealth, true
	case CategoryOperational:
		return CategoryOperational, true
	case CategoryFinancial:
		return CategoryFinancial, true
	default:
		return "", false
	}
}

// Status es el estado temporal derivado de un evento de salud.
// Se computa siempre, nunca se persiste.
type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusUpcoming Status = "upcoming"
	StatusFuture   Status = "future"
	StatusNone     Status = "none"
)

// EventID es el identificador interno de un evento canónico:
// el kind más la primary key del registro de origen.
// El string plano "<kind>-<recordID>" existe solo en el borde HTTP.
type EventID struct {
	Kind     SourceKind
	RecordID string
}

// FormatEventID codifica un EventID como string plano para transporte.
func FormatEventID(id EventID) string {
	return string(id.Kind) + "-" + id.RecordID
}

// ParseEventID decodifica el string plano del borde HTTP.
// Como los record IDs son UUIDs (contienen '-'), se matchea por prefijo
// contra el set cerrado de kinds en vez de hacer split.
func ParseEventID(s string) (EventID, bool) {
	for _, k := range knownKinds {
		prefix := string(k) + "-"
		if strings.HasPrefix(s, prefix) && len(s) > len(prefix) {
			return EventID{Kind: k, RecordID: s[len(prefix):]}, true
		}
	}
	return EventID{}, false
}
