package calendar

import "errors"

// Taxonomía de errores del camino mutante. Los Source Adapters devuelven
// ErrNotFound cuando el registro de origen ya no existe; fallas de
// infraestructura se propagan envueltas (errors.Is contra estos sentinels
// da false y el borde las trata como error de dependencia).
var (
	// ErrInvalidRange: rango no cronológico (end < start). Se rechaza
	// antes de despachar cualquier escritura.
	ErrInvalidRange = errors.New("invalid range: end before start")

	// ErrUnknownKind: un SourceKind fuera del set cerrado cruzó el borde.
	ErrUnknownKind = errors.New("unknown source kind")

	// ErrMissingBookingID: delete de checkin/checkout sin booking id.
	ErrMissingBookingID = errors.New("booking id required")

	// ErrNotFound: el registro de origen desapareció entre lectura y
	// escritura. El caller debe refrescar su vista.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden: el caller no tiene derechos sobre el registro.
	// Lo decide el colaborador de autorización, no este motor.
	ErrForbidden = errors.New("forbidden")
)
