package repository

import (
	"context"

	"github.com/tu-usuario/crm-leads/internal/domain/entity"
)

// AuthRemote puerto de autenticación. La emisión, firma y expiración del
// token son responsabilidad del backend; el cliente solo lo transporta.
type AuthRemote interface {
	// Login devuelve el usuario autenticado y su bearer token.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Logout(ctx context.Context) error
}
