// Package repository define los puertos hacia el colaborador remoto (la API
// REST del CRM). Las implementaciones viven en infrastructure; para tests se
// inyectan dobles en memoria.
package repository

import (
	"context"

	"github.com/tu-usuario/crm-leads/internal/domain/entity"
	"github.com/tu-usuario/crm-leads/internal/domain/lifecycle"
)

// CompanyFilter filtro opcional para listados de empresas.
type CompanyFilter struct {
	AssignedTo *int
	Status     *string
}

// CompanyRemote puerto de empresas contra el backend. Todas las operaciones
// son asíncronas respecto a la UI: el llamador no debe reflejar el cambio en
// su estado local hasta que la llamada resuelva con éxito.
type CompanyRemote interface {
	// List devuelve las empresas visibles, opcionalmente filtradas.
	List(ctx context.Context, filter *CompanyFilter) ([]entity.Company, error)
	// Create persiste una empresa nueva (sin ID ni CreatedAt) y devuelve la
	// versión canónica del backend. Falla con domain.ErrConflict ante nombre
	// duplicado y domain.ErrNotFound ante assignedTo/escalatedTo inexistentes.
	Create(ctx context.Context, c *entity.Company) (*entity.Company, error)
	// Update aplica una actualización ya normalizada. Falla con
	// domain.ErrNotFound si el id no existe. Reintentar con el mismo payload
	// normalizado es idempotente para el estado visible del cliente.
	Update(ctx context.Context, id int, upd *lifecycle.NormalizedUpdate) (*entity.Company, error)
	// Delete elimina la empresa. El backend es la autoridad final sobre la
	// autorización; el chequeo local de permisos es solo afordancia.
	Delete(ctx context.Context, id int) error
}
