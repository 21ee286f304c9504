package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tu-usuario/crm-leads/internal/application/dto"
	"github.com/tu-usuario/crm-leads/internal/domain/entity"
	"github.com/tu-usuario/crm-leads/internal/domain/repository"
)

var _ repository.CommentRemote = (*CommentRemote)(nil)

// CommentRemote adaptador REST del puerto de comentarios.
type CommentRemote struct {
	client *Client
}

// NewCommentRemote construye el adaptador sobre el cliente compartido.
func NewCommentRemote(client *Client) *CommentRemote {
	return &CommentRemote{client: client}
}

// ListByCompany GET /comments/company/{companyId}.
func (r *CommentRemote) ListByCompany(ctx context.Context, companyID int) ([]entity.Comment, error) {
	var payload []dto.CommentResponse
	path := "/comments/company/" + strconv.Itoa(companyID)
	if err := r.client.do(ctx, http.MethodGet, path, nil, nil, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.Comment, 0, len(payload))
	for _, p := range payload {
		out = append(out, dto.CommentToEntity(p))
	}
	return out, nil
}

// Add POST /comments. El backend recibe companyId, userId y content por
// querystring, sin cuerpo.
func (r *CommentRemote) Add(ctx context.Context, companyID, userID int, content string) (*entity.Comment, error) {
	query := url.Values{}
	query.Set("companyId", strconv.Itoa(companyID))
	query.Set("userId", strconv.Itoa(userID))
	query.Set("content", content)
	var payload dto.CommentResponse
	if err := r.client.do(ctx, http.MethodPost, "/comments", query, nil, &payload); err != nil {
		return nil, err
	}
	c := dto.CommentToEntity(payload)
	return &c, nil
}

// Update PATCH /comments/{id}.
func (r *CommentRemote) Update(ctx context.Context, commentID int, content string) (*entity.Comment, error) {
	var payload dto.CommentResponse
	path := "/comments/" + strconv.Itoa(commentID)
	if err := r.client.do(ctx, http.MethodPatch, path, nil, dto.UpdateCommentRequest{Content: content}, &payload); err != nil {
		return nil, err
	}
	c := dto.CommentToEntity(payload)
	return &c, nil
}

// Delete DELETE /comments/{id}.
func (r *CommentRemote) Delete(ctx context.Context, commentID int) error {
	return r.client.do(ctx, http.MethodDelete, "/comments/"+strconv.Itoa(commentID), nil, nil, nil)
}
