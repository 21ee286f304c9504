package repository

import (
	"context"

	"github.com/tu-usuario/crm-leads/internal/domain/entity"
)

// CommentRemote puerto del hilo de comentarios. Append-only desde el punto de
// vista del cliente, salvo edición/borrado iniciados por el autor.
type CommentRemote interface {
	ListByCompany(ctx context.Context, companyID int) ([]entity.Comment, error)
	Add(ctx context.Context, companyID, userID int, content string) (*entity.Comment, error)
	Update(ctx context.Context, commentID int, content string) (*entity.Comment, error)
	Delete(ctx context.Context, commentID int) error
}
