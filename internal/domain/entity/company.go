package entity

import "time"

// Estados del ciclo de vida de una empresa (lead). Deben coincidir con los
// valores que maneja el backend.
const (
	StatusPending   = "PENDING"
	StatusClosed    = "CLOSED"
	StatusEscalated = "ESCALATED"
)

// ValidStatus indica si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusClosed, StatusEscalated:
		return true
	}
	return false
}

// ContactDetails datos de contacto de la empresa.
type ContactDetails struct {
	Person  string
	Email   string
	Phone   string
	Address string
}

// Company representa un lead de ventas.
//
// Invariantes:
//   - EscalatedTo es no-nil si y solo si Status == ESCALATED; cualquier
//     transición fuera de ESCALATED lo limpia.
//   - AssignedTo referencia a un User existente al momento de crear; la
//     propiedad nunca se transfiere implícitamente (la escalación registra un
//     destinatario, no reasigna).
//   - Name es único (case-insensitive, sin espacios al borde) entre las
//     empresas asignadas al mismo usuario; el chequeo es por propietario,
//     no global.
type Company struct {
	ID          int
	Name        string
	Contact     ContactDetails
	AssignedTo  int
	AssignedBy  int
	ContactDate *time.Time
	MeetingDate *time.Time
	Status      string
	EscalatedTo *int // nil salvo en ESCALATED
	Notes       string
	Comments    []Comment
	CreatedAt   time.Time
}
