package dto

import (
	"time"

	"github.com/tu-usuario/crm-leads/internal/domain/entity"
)

// CommentResponse comentario tal como lo devuelve el backend.
type CommentResponse struct {
	ID        int        `json:"id"`
	CompanyID int        `json:"companyId"`
	UserID    int        `json:"userId"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// UpdateCommentRequest payload de edición de un comentario (solo autor).
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// CommentToEntity convierte la respuesta del backend al modelo de dominio.
func CommentToEntity(in CommentResponse) entity.Comment {
	return entity.Comment{
		ID:        in.ID,
		CompanyID: in.CompanyID,
		UserID:    in.UserID,
		Content:   in.Content,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}
