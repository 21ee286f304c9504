package dto

import (
	"fmt"
	"time"

	"github.com/tu-usuario/crm-leads/internal/domain/entity"
	"github.com/tu-usuario/crm-leads/internal/domain/lifecycle"
)

// ContactDetailsPayload datos de contacto en el wire del backend.
type ContactDetailsPayload struct {
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// CompanyResponse empresa tal como la devuelve el backend.
type CompanyResponse struct {
	ID             int                   `json:"id"`
	Name           string                `json:"name"`
	ContactDetails ContactDetailsPayload `json:"contactDetails"`
	AssignedTo     int                   `json:"assignedTo"`
	AssignedBy     int                   `json:"assignedBy"`
	ContactDate    string                `json:"contactDate"` // DateLayout; vacío = sin fecha
	MeetingDate    string                `json:"meetingDate"`
	Status         string                `json:"status"`
	EscalatedTo    *int                  `json:"escalatedTo"`
	Notes          string                `json:"notes"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// CreateCompanyRequest payload de creación (sin id ni createdAt).
type CreateCompanyRequest struct {
	Name           string                `json:"name"`
	ContactDetails ContactDetailsPayload `json:"contactDetails"`
	AssignedTo     int                   `json:"assignedTo"`
	AssignedBy     int                   `json:"assignedBy"`
	ContactDate    string                `json:"contactDate"`
	MeetingDate    string                `json:"meetingDate"`
	Status         string                `json:"status"`
	EscalatedTo    *int                  `json:"escalatedTo"`
	Notes          string                `json:"notes"`
}

// UpdateCompanyRequest payload parcial de actualización. Status y EscalatedTo
// viajan siempre: un EscalatedTo nulo debe llegar al backend como null
// explícito, no como campo ausente, para no dejar punteros de escalación
// huérfanos.
type UpdateCompanyRequest struct {
	Name           *string                `json:"name,omitempty"`
	ContactDetails *ContactDetailsPayload `json:"contactDetails,omitempty"`
	ContactDate    *string                `json:"contactDate,omitempty"`
	MeetingDate    *string                `json:"meetingDate,omitempty"`
	Notes          *string                `json:"notes,omitempty"`
	Status         string                 `json:"status"`
	EscalatedTo    *int                   `json:"escalatedTo"`
}

// CompanyToEntity convierte la respuesta del backend al modelo de dominio.
// Nunca se confía en que el payload ya sea válido: las fechas se parsean y un
// formato roto se reporta como error en vez de propagarse a las derivaciones.
func CompanyToEntity(in CompanyResponse) (entity.Company, error) {
	contactDate, err := parseDate(in.ContactDate)
	if err != nil {
		return entity.Company{}, fmt.Errorf("contactDate: %w", err)
	}
	meetingDate, err := parseDate(in.MeetingDate)
	if err != nil {
		return entity.Company{}, fmt.Errorf("meetingDate: %w", err)
	}
	return entity.Company{
		ID:   in.ID,
		Name: in.Name,
		Contact: entity.ContactDetails{
			Person:  in.ContactDetails.ContactPerson,
			Email:   in.ContactDetails.Email,
			Phone:   in.ContactDetails.Phone,
			Address: in.ContactDetails.Address,
		},
		AssignedTo:  in.AssignedTo,
		AssignedBy:  in.AssignedBy,
		ContactDate: contactDate,
		MeetingDate: meetingDate,
		Status:      in.Status,
		EscalatedTo: in.EscalatedTo,
		Notes:       in.Notes,
		CreatedAt:   in.CreatedAt,
	}, nil
}

// CompanyToCreateRequest arma el payload de creación desde una entidad ya
// validada por lifecycle.ValidateNewCompany.
func CompanyToCreateRequest(c entity.Company) CreateCompanyRequest {
	return CreateCompanyRequest{
		Name: c.Name,
		ContactDetails: ContactDetailsPayload{
			ContactPerson: c.Contact.Person,
			Email:         c.Contact.Email,
			Phone:         c.Contact.Phone,
			Address:       c.Contact.Address,
		},
		AssignedTo:  c.AssignedTo,
		AssignedBy:  c.AssignedBy,
		ContactDate: formatDate(c.ContactDate),
		MeetingDate: formatDate(c.MeetingDate),
		Status:      c.Status,
		EscalatedTo: c.EscalatedTo,
		Notes:       c.Notes,
	}
}

// NormalizedToUpdateRequest arma el payload de actualización desde la salida
// del validador.
func NormalizedToUpdateRequest(upd *lifecycle.NormalizedUpdate) UpdateCompanyRequest {
	out := UpdateCompanyRequest{
		Name:        upd.Name,
		Notes:       upd.Notes,
		Status:      upd.Status,
		EscalatedTo: upd.EscalatedTo,
	}
	if upd.Contact != nil {
		out.ContactDetails = &ContactDetailsPayload{
			ContactPerson: upd.Contact.Person,
			Email:         upd.Contact.Email,
			Phone:         upd.Contact.Phone,
			Address:       upd.Contact.Address,
		}
	}
	if upd.ContactDate != nil {
		s := upd.ContactDate.Format(DateLayout)
		out.ContactDate = &s
	}
	if upd.MeetingDate != nil {
		s := upd.MeetingDate.Format(DateLayout)
		out.MeetingDate = &s
	}
	return out
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
