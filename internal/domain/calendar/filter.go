package calendar

import "strings"

// FilterOptions son los filtros componibles de la agenda general.
// Todos componen con AND. Kinds y Category son mutuamente excluyentes:
// la categoría es un alias de conveniencia sobre un grupo de kinds, no una
// restricción adicional (el borde HTTP rechaza ambos a la vez).
type FilterOptions struct {
	// PetID: solo eventos de esa mascota. Los eventos sin mascota
	// (financieros puros) quedan excluidos cuando está activo.
	PetID string

	// Kinds: set explícito de kinds a conservar; vacío = sin filtro.
	Kinds []SourceKind

	// Category: alias sobre el grupo de kinds de la categoría.
	Category Category

	// Search: substring case-insensitive contra el título.
	Search string
}

// Filter devuelve los eventos que pasan todos los filtros activos.
// No muta el slice de entrada.
func Filter(events []Event, opts FilterOptions) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if matches(e, opts) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e Event, opts FilterOptions) bool {
	if opts.PetID != "" && e.PetID != opts.PetID {
		return false
	}

	if len(opts.Kinds) > 0 {
		found := false
		for _, k := range opts.Kinds {
			if e.ID.Kind == k {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if opts.Category != "" && CategoryOf(e.ID.Kind) != opts.Category {
		return false
	}

	if q := strings.TrimSpace(opts.Search); q != "" {
		if !strings.Contains(strings.ToLower(e.Title), strings.ToLower(q)) {
			return false
		}
	}

	return true
}
