package lifecycle

import (
	"regexp"
	"strings"
	"time"

	"github.com/tu-usuario/crm-leads/internal/domain"
	"github.com/tu-usuario/crm-leads/internal/domain/entity"
)

// Forma de dirección local@dominio.tld; suficiente para captura de datos,
// el backend revalida.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Teléfono permisivo: prefijo + opcional, dígitos con espacios o guiones.
var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 \-]*$`)

// ProposedUpdate cambios parciales propuestos sobre una Company. Campo nil =
// no tocado.
type ProposedUpdate struct {
	Name        *string
	Contact     *entity.ContactDetails
	ContactDate *time.Time
	MeetingDate *time.Time
	Status      *string
	EscalatedTo *int
	Notes       *string
}

// NormalizedUpdate actualización saneada, segura para enviar al backend: los
// invariantes de escalación ya vienen aplicados. Status y EscalatedTo se
// emiten siempre de forma explícita para que un EscalatedTo nulo viaje como
// null y no como campo ausente.
type NormalizedUpdate struct {
	Name        *string
	Contact     *entity.ContactDetails
	ContactDate *time.Time
	MeetingDate *time.Time
	Status      string
	EscalatedTo *int
	Notes       *string
}

// ValidateTransition valida una actualización parcial contra el estado actual
// de la empresa y devuelve la versión normalizada, o bien la lista ordenada y
// completa de violaciones como domain.ValidationErrors (nunca se corta en la
// primera).
//
// Función pura y síncrona: no consulta reloj ni red.
func ValidateTransition(current *entity.Company, proposed ProposedUpdate) (*NormalizedUpdate, error) {
	if current == nil {
		return nil, domain.ErrInvalidInput
	}

	var errs domain.ValidationErrors
	out := &NormalizedUpdate{
		Contact:     proposed.Contact,
		ContactDate: proposed.ContactDate,
		MeetingDate: proposed.MeetingDate,
		Notes:       proposed.Notes,
	}

	// 1. Nombre: si viene, no puede quedar vacío tras recortar.
	if proposed.Name != nil {
		trimmed := strings.TrimSpace(*proposed.Name)
		if trimmed == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "el nombre no puede estar vacío"})
		} else {
			out.Name = &trimmed
		}
	}

	// 2 y 3. Datos de contacto: email y teléfono solo se validan si vienen
	// con contenido.
	if proposed.Contact != nil {
		if email := strings.TrimSpace(proposed.Contact.Email); email != "" && !emailRe.MatchString(email) {
			errs = append(errs, domain.FieldError{Field: "contact.email", Message: "dirección de email inválida"})
		}
		if phone := strings.TrimSpace(proposed.Contact.Phone); phone != "" && !validPhone(phone) {
			errs = append(errs, domain.FieldError{Field: "contact.phone", Message: "teléfono inválido (7 a 15 dígitos, + opcional)"})
		}
	}

	// 4. Estado efectivo y reglas de escalación.
	status := current.Status
	if proposed.Status != nil {
		status = *proposed.Status
		if !entity.ValidStatus(status) {
			errs = append(errs, domain.FieldError{Field: "status", Message: "estado desconocido: " + status})
		} else if !CanTransition(current.Status, status) {
			errs = append(errs, domain.FieldError{Field: "status", Message: "transición no permitida: " + current.Status + " -> " + status})
		}
	}
	out.Status = status

	if status == entity.StatusEscalated {
		target := proposed.EscalatedTo
		if target == nil {
			target = current.EscalatedTo
		}
		switch {
		case target == nil:
			errs = append(errs, domain.FieldError{Field: "escalatedTo", Message: "una escalación requiere un usuario destinatario"})
		case *target == current.AssignedTo:
			errs = append(errs, domain.FieldError{Field: "escalatedTo", Message: "no se puede escalar al propietario actual"})
		default:
			out.EscalatedTo = target
		}
	} else {
		// 5. Limpieza defensiva: fuera de ESCALATED el puntero viaja siempre
		// en null, ignore lo que haya mandado el llamador.
		out.EscalatedTo = nil
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// ValidateNewCompany valida los campos requeridos de una empresa nueva y
// devuelve una copia saneada (nombre recortado, escalación coherente con el
// estado). No asigna ID ni CreatedAt: eso es del backend.
func ValidateNewCompany(c entity.Company) (entity.Company, error) {
	var errs domain.ValidationErrors

	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "el nombre es requerido"})
	}
	if c.AssignedTo <= 0 {
		errs = append(errs, domain.FieldError{Field: "assignedTo", Message: "assignedTo debe referenciar un usuario"})
	}
	if email := strings.TrimSpace(c.Contact.Email); email != "" && !emailRe.MatchString(email) {
		errs = append(errs, domain.FieldError{Field: "contact.email", Message: "dirección de email inválida"})
	}
	if phone := strings.TrimSpace(c.Contact.Phone); phone != "" && !validPhone(phone) {
		errs = append(errs, domain.FieldError{Field: "contact.phone", Message: "teléfono inválido (7 a 15 dígitos, + opcional)"})
	}

	if c.Status == "" {
		c.Status = entity.StatusPending
	}
	if !entity.ValidStatus(c.Status) {
		errs = append(errs, domain.FieldError{Field: "status", Message: "estado desconocido: " + c.Status})
	}
	if c.Status == entity.StatusEscalated {
		switch {
		case c.EscalatedTo == nil:
			errs = append(errs, domain.FieldError{Field: "escalatedTo", Message: "una escalación requiere un usuario destinatario"})
		case *c.EscalatedTo == c.AssignedTo:
			errs = append(errs, domain.FieldError{Field: "escalatedTo", Message: "no se puede escalar al propietario actual"})
		}
	} else {
		c.EscalatedTo = nil
	}

	if len(errs) > 0 {
		return entity.Company{}, errs
	}
	return c, nil
}

// SameName compara nombres de empresa como lo hace el chequeo de duplicados:
// sin espacios al borde y sin distinguir mayúsculas.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func validPhone(s string) bool {
	if !phoneRe.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}
