package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tu-usuario/crm-leads/internal/application/dto"
	"github.com/tu-usuario/crm-leads/internal/domain/entity"
	"github.com/tu-usuario/crm-leads/internal/domain/lifecycle"
	"github.com/tu-usuario/crm-leads/internal/domain/repository"
)

// Asegura que CompanyRemote implementa el puerto.
var _ repository.CompanyRemote = (*CompanyRemote)(nil)

// CompanyRemote adaptador REST del puerto de empresas.
type CompanyRemote struct {
	client *Client
}

// NewCompanyRemote construye el adaptador sobre el cliente compartido.
func NewCompanyRemote(client *Client) *CompanyRemote {
	return &CompanyRemote{client: client}
}

// List GET /companies con filtros opcionales por querystring.
func (r *CompanyRemote) List(ctx context.Context, filter *repository.CompanyFilter) ([]entity.Company, error) {
	query := url.Values{}
	if filter != nil {
		if filter.AssignedTo != nil {
			query.Set("assignedTo", strconv.Itoa(*filter.AssignedTo))
		}
		if filter.Status != nil {
			query.Set("status", *filter.Status)
		}
	}
	var payload []dto.CompanyResponse
	if err := r.client.do(ctx, http.MethodGet, "/companies", query, nil, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.Company, 0, len(payload))
	for _, p := range payload {
		c, err := dto.CompanyToEntity(p)
		if err != nil {
			return nil, fmt.Errorf("empresa %d: %w", p.ID, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Create POST /companies.
func (r *CompanyRemote) Create(ctx context.Context, c *entity.Company) (*entity.Company, error) {
	var payload dto.CompanyResponse
	if err := r.client.do(ctx, http.MethodPost, "/companies", nil, dto.CompanyToCreateRequest(*c), &payload); err != nil {
		return nil, err
	}
	created, err := dto.CompanyToEntity(payload)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update PATCH /companies/{id} con el payload normalizado.
func (r *CompanyRemote) Update(ctx context.Context, id int, upd *lifecycle.NormalizedUpdate) (*entity.Company, error) {
	var payload dto.CompanyResponse
	path := "/companies/" + strconv.Itoa(id)
	if err := r.client.do(ctx, http.MethodPatch, path, nil, dto.NormalizedToUpdateRequest(upd), &payload); err != nil {
		return nil, err
	}
	updated, err := dto.CompanyToEntity(payload)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete DELETE /companies/{id}.
func (r *CompanyRemote) Delete(ctx context.Context, id int) error {
	return r.client.do(ctx, http.MethodDelete, "/companies/"+strconv.Itoa(id), nil, nil, nil)
}
