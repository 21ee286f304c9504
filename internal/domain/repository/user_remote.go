package repository

import (
	"context"

	"github.com/tu-usuario/crm-leads/internal/domain/entity"
)

// UserRemote puerto de usuarios contra el backend (solo lectura: el backend
// es el dueño del recurso).
type UserRemote interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int) (*entity.User, error)
}
