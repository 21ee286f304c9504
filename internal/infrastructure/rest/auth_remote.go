package rest

import (
	"context"
	"net/http"

	"github.com/tu-usuario/crm-leads/internal/application/dto"
	"github.com/tu-usuario/crm-leads/internal/domain/entity"
	"github.com/tu-usuario/crm-leads/internal/domain/repository"
)

var _ repository.AuthRemote = (*AuthRemote)(nil)

// AuthRemote adaptador REST del puerto de autenticación.
type AuthRemote struct {
	client *Client
}

// NewAuthRemote construye el adaptador sobre el cliente compartido.
func NewAuthRemote(client *Client) *AuthRemote {
	return &AuthRemote{client: client}
}

// Login POST /auth/login. Devuelve el usuario y el token emitido.
func (r *AuthRemote) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	var payload dto.LoginResponse
	body := dto.LoginRequest{Email: email, Password: password}
	if err := r.client.do(ctx, http.MethodPost, "/auth/login", nil, body, &payload); err != nil {
		return nil, "", err
	}
	user := entity.User{
		ID:        payload.User.ID,
		FirstName: payload.User.FirstName,
		LastName:  payload.User.Surname,
		Email:     payload.User.Email,
		Role:      payload.User.Role,
	}
	return &user, payload.User.Token, nil
}

// Logout POST /auth/logout.
func (r *AuthRemote) Logout(ctx context.Context) error {
	return r.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}
