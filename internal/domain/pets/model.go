package pets

import "time"

// Species define las especies soportadas por la guardería.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// Pet es el perfil de una mascota registrada en la guardería.
// La agenda general solo necesita ID y Name para joins y filtros; el resto
// es el perfil operativo mínimo.
type Pet struct {
	ID string

	Name    string
	Species Species
	Breed   string

	// Tutor responsable (contacto de emergencia de la guardería).
	TutorName  string
	TutorPhone string

	// Notas operativas: alimentación, convivencia, cuidados.
	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
