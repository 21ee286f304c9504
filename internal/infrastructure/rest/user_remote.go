package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tu-usuario/crm-leads/internal/application/dto"
	"github.com/tu-usuario/crm-leads/internal/domain/entity"
	"github.com/tu-usuario/crm-leads/internal/domain/repository"
)

var _ repository.UserRemote = (*UserRemote)(nil)

// UserRemote adaptador REST del puerto de usuarios.
type UserRemote struct {
	client *Client
}

// NewUserRemote construye el adaptador sobre el cliente compartido.
func NewUserRemote(client *Client) *UserRemote {
	return &UserRemote{client: client}
}

// List GET /users.
func (r *UserRemote) List(ctx context.Context) ([]entity.User, error) {
	var payload []dto.UserResponse
	if err := r.client.do(ctx, http.MethodGet, "/users", nil, nil, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(payload))
	for _, p := range payload {
		out = append(out, dto.UserToEntity(p))
	}
	return out, nil
}

// GetByID GET /users/{id}.
func (r *UserRemote) GetByID(ctx context.Context, id int) (*entity.User, error) {
	var payload dto.UserResponse
	if err := r.client.do(ctx, http.MethodGet, "/users/"+strconv.Itoa(id), nil, nil, &payload); err != nil {
		return nil, err
	}
	u := dto.UserToEntity(payload)
	return &u, nil
}
