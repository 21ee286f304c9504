// Package usecase contiene el controlador de ciclo de vida: orquesta
// validador, resolutor de permisos y colaborador remoto, y mantiene la
// colección de empresas en memoria como única fuente de verdad del cliente.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/crm-leads/internal/application/session"
	"github.com/tu-usuario/crm-leads/internal/domain"
	"github.com/tu-usuario/crm-leads/internal/domain/access"
	"github.com/tu-usuario/crm-leads/internal/domain/entity"
	"github.com/tu-usuario/crm-leads/internal/domain/lifecycle"
	"github.com/tu-usuario/crm-leads/internal/domain/reminder"
	"github.com/tu-usuario/crm-leads/internal/domain/repository"
	"github.com/tu-usuario/crm-leads/pkg/logger"
)

// LifecycleUseCase controlador de ciclo de vida de empresas.
//
// Mantiene la colección en memoria y la lista de avisos derivada, recalculada
// en cada cambio de colección. Ninguna mutación local se aplica antes de que
// la llamada remota resuelva con éxito, así el cliente nunca muestra un
// estado que el backend no confirmó. Pensado para el hilo de eventos de la
// UI: no coordina mutación concurrente (el backend arbitra escrituras
// conflictivas con last-write-wins).
type LifecycleUseCase struct {
	companyRemote repository.CompanyRemote
	userRemote    repository.UserRemote
	commentRemote repository.CommentRemote
	sess          *session.Session
	log           *logger.Logger

	companies []entity.Company
	users     map[int]entity.User
	reminders []reminder.Reminder

	now func() time.Time
}

// NewLifecycleUseCase construye el controlador para la sesión dada.
func NewLifecycleUseCase(
	companyRemote repository.CompanyRemote,
	userRemote repository.UserRemote,
	commentRemote repository.CommentRemote,
	sess *session.Session,
	log *logger.Logger,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		companyRemote: companyRemote,
		userRemote:    userRemote,
		commentRemote: commentRemote,
		sess:          sess,
		log:           log,
		users:         make(map[int]entity.User),
		now:           time.Now,
	}
}

// SetClock reemplaza la fuente de tiempo. Solo para tests.
func (uc *LifecycleUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// Refresh recarga usuarios y empresas desde el backend y recalcula avisos.
func (uc *LifecycleUseCase) Refresh(ctx context.Context) error {
	if !uc.sess.IsAuthenticated(uc.now()) {
		return domain.ErrUnauthorized
	}
	users, err := uc.userRemote.List(ctx)
	if err != nil {
		return fmt.Errorf("listar usuarios: %w", err)
	}
	companies, err := uc.companyRemote.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("listar empresas: %w", err)
	}
	uc.users = make(map[int]entity.User, len(users))
	for _, u := range users {
		uc.users[u.ID] = u
	}
	uc.companies = companies
	uc.recompute()
	uc.log.Debug().Int("companies", len(companies)).Int("users", len(users)).Msg("colección recargada")
	return nil
}

// CreateCompany valida y crea una empresa nueva. El creador queda como
// AssignedBy; si no se indica propietario, el creador también es AssignedTo.
// Un nombre ya usado por el mismo propietario (ignorando mayúsculas y
// espacios al borde) se rechaza con domain.ErrConflict sin llamar al backend;
// el 409 del backend se reporta igual, por si otra sesión ganó la carrera.
func (uc *LifecycleUseCase) CreateCompany(ctx context.Context, draft entity.Company) (*entity.Company, error) {
	if !uc.sess.IsAuthenticated(uc.now()) {
		return nil, domain.ErrUnauthorized
	}
	draft.AssignedBy = uc.sess.User.ID
	if draft.AssignedTo == 0 {
		draft.AssignedTo = uc.sess.User.ID
	}
	// Sin fecha indicada, el primer contacto queda agendado para hoy.
	if draft.ContactDate == nil {
		today := uc.now()
		draft.ContactDate = &today
	}
	normalized, err := lifecycle.ValidateNewCompany(draft)
	if err != nil {
		return nil, err
	}
	if err := uc.checkKnownUsers(normalized.AssignedTo, normalized.EscalatedTo); err != nil {
		return nil, err
	}
	for _, c := range uc.companies {
		if c.AssignedTo == normalized.AssignedTo && lifecycle.SameName(c.Name, normalized.Name) {
			return nil, fmt.Errorf("%q: %w", normalized.Name, domain.ErrConflict)
		}
	}
	created, err := uc.companyRemote.Create(ctx, &normalized)
	if err != nil {
		uc.log.Warn().Err(err).Str("name", normalized.Name).Msg("crear empresa falló")
		return nil, err
	}
	uc.companies = append(uc.companies, *created)
	uc.recompute()
	uc.log.Info().Int("company_id", created.ID).Msg("empresa creada")
	return created, nil
}

// UpdateCompany valida la actualización propuesta y, solo si la validación
// pasa, la envía al backend. Ante violaciones devuelve la lista completa como
// domain.ValidationErrors sin tocar la red ni la colección (fail fast, sin
// mutación parcial).
func (uc *LifecycleUseCase) UpdateCompany(ctx context.Context, id int, proposed lifecycle.ProposedUpdate) (*entity.Company, error) {
	if !uc.sess.IsAuthenticated(uc.now()) {
		return nil, domain.ErrUnauthorized
	}
	idx, current := uc.findCompany(id)
	if current == nil {
		return nil, fmt.Errorf("empresa %d: %w", id, domain.ErrNotFound)
	}
	if !access.CanEdit(&uc.sess.User, current) {
		return nil, fmt.Errorf("editar empresa %d: %w", id, domain.ErrForbidden)
	}
	normalized, err := lifecycle.ValidateTransition(current, proposed)
	if err != nil {
		return nil, err
	}
	if normalized.EscalatedTo != nil {
		if err := uc.checkKnownUsers(0, normalized.EscalatedTo); err != nil {
			return nil, err
		}
	}
	updated, err := uc.companyRemote.Update(ctx, id, normalized)
	if err != nil {
		uc.log.Warn().Err(err).Int("company_id", id).Msg("actualizar empresa falló")
		return nil, err
	}
	uc.companies[idx] = *updated
	uc.recompute()
	uc.log.Info().Int("company_id", id).Str("status", updated.Status).Msg("empresa actualizada")
	return updated, nil
}

// Escalate marca la empresa como ESCALATED con destino targetID. Azúcar sobre
// UpdateCompany: aplican las mismas reglas (destino existente y distinto del
// propietario; la escalación no reasigna AssignedTo).
func (uc *LifecycleUseCase) Escalate(ctx context.Context, id, targetID int) (*entity.Company, error) {
	status := entity.StatusEscalated
	return uc.UpdateCompany(ctx, id, lifecycle.ProposedUpdate{
		Status:      &status,
		EscalatedTo: &targetID,
	})
}

// DeleteCompany borra la empresa si el usuario de la sesión es su
// propietario. El "sí" local de CanDelete es afordancia optimista: la
// autoridad es el backend, que puede responder 403 igualmente.
func (uc *LifecycleUseCase) DeleteCompany(ctx context.Context, id int) error {
	if !uc.sess.IsAuthenticated(uc.now()) {
		return domain.ErrUnauthorized
	}
	idx, current := uc.findCompany(id)
	if current == nil {
		return fmt.Errorf("empresa %d: %w", id, domain.ErrNotFound)
	}
	if !access.CanDelete(&uc.sess.User, current) {
		return fmt.Errorf("borrar empresa %d: %w", id, domain.ErrForbidden)
	}
	if err := uc.companyRemote.Delete(ctx, id); err != nil {
		uc.log.Warn().Err(err).Int("company_id", id).Msg("borrar empresa falló")
		return err
	}
	uc.companies = append(uc.companies[:idx], uc.companies[idx+1:]...)
	uc.recompute()
	uc.log.Info().Int("company_id", id).Msg("empresa borrada")
	return nil
}

// ── Comentarios ───────────────────────────────────────────────────────────────
// El hilo vive dentro de la Company de la colección; no hay una segunda copia
// local que mantener sincronizada a mano.

// LoadComments trae el hilo del backend y lo guarda en la empresa.
func (uc *LifecycleUseCase) LoadComments(ctx context.Context, companyID int) ([]entity.Comment, error) {
	if !uc.sess.IsAuthenticated(uc.now()) {
		return nil, domain.ErrUnauthorized
	}
	idx, current := uc.findCompany(companyID)
	if current == nil {
		return nil, fmt.Errorf("empresa %d: %w", companyID, domain.ErrNotFound)
	}
	comments, err := uc.commentRemote.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	uc.companies[idx].Comments = comments
	return append([]entity.Comment(nil), comments...), nil
}

// AddComment agrega un comentario al hilo. Solo el propietario de la empresa
// es autor de comentarios.
func (uc *LifecycleUseCase) AddComment(ctx context.Context, companyID int, content string) (*entity.Comment, error) {
	if !uc.sess.IsAuthenticated(uc.now()) {
		return nil, domain.ErrUnauthorized
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ValidationErrors{{Field: "content", Message: "el comentario no puede estar vacío"}}
	}
	idx, current := uc.findCompany(companyID)
	if current == nil {
		return nil, fmt.Errorf("empresa %d: %w", companyID, domain.ErrNotFound)
	}
	if !access.CanComment(&uc.sess.User, current) {
		return nil, fmt.Errorf("comentar empresa %d: %w", companyID, domain.ErrForbidden)
	}
	created, err := uc.commentRemote.Add(ctx, companyID, uc.sess.User.ID, content)
	if err != nil {
		return nil, err
	}
	uc.companies[idx].Comments = append(uc.companies[idx].Comments, *created)
	return created, nil
}

// EditComment edita un comentario propio.
func (uc *LifecycleUseCase) EditComment(ctx context.Context, companyID, commentID int, content string) (*entity.Comment, error) {
	if !uc.sess.IsAuthenticated(uc.now()) {
		return nil, domain.ErrUnauthorized
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ValidationErrors{{Field: "content", Message: "el comentario no puede estar vacío"}}
	}
	idx, cIdx, comment := uc.findComment(companyID, commentID)
	if comment == nil {
		return nil, fmt.Errorf("comentario %d: %w", commentID, domain.ErrNotFound)
	}
	if comment.UserID != uc.sess.User.ID {
		return nil, fmt.Errorf("editar comentario %d: %w", commentID, domain.ErrForbidden)
	}
	updated, err := uc.commentRemote.Update(ctx, commentID, content)
	if err != nil {
		return nil, err
	}
	uc.companies[idx].Comments[cIdx] = *updated
	return updated, nil
}

// DeleteComment borra un comentario propio.
func (uc *LifecycleUseCase) DeleteComment(ctx context.Context, companyID, commentID int) error {
	if !uc.sess.IsAuthenticated(uc.now()) {
		return domain.ErrUnauthorized
	}
	idx, cIdx, comment := uc.findComment(companyID, commentID)
	if comment == nil {
		return fmt.Errorf("comentario %d: %w", commentID, domain.ErrNotFound)
	}
	if comment.UserID != uc.sess.User.ID {
		return fmt.Errorf("borrar comentario %d: %w", commentID, domain.ErrForbidden)
	}
	if err := uc.commentRemote.Delete(ctx, commentID); err != nil {
		return err
	}
	thread := uc.companies[idx].Comments
	uc.companies[idx].Comments = append(thread[:cIdx], thread[cIdx+1:]...)
	return nil
}

// ── Lecturas sobre la colección ───────────────────────────────────────────────

// Companies devuelve una copia de la colección actual.
func (uc *LifecycleUseCase) Companies() []entity.Company {
	return append([]entity.Company(nil), uc.companies...)
}

// Reminders devuelve los avisos derivados de la última recomputación.
func (uc *LifecycleUseCase) Reminders() []reminder.Reminder {
	return append([]reminder.Reminder(nil), uc.reminders...)
}

// Users devuelve los usuarios conocidos, indexados por ID.
func (uc *LifecycleUseCase) Users() map[int]entity.User {
	out := make(map[int]entity.User, len(uc.users))
	for id, u := range uc.users {
		out[id] = u
	}
	return out
}

// FilterKind criterios de filtrado del tablero.
type FilterKind string

const (
	FilterAll     FilterKind = "all"
	FilterMine    FilterKind = "mine"
	FilterPending FilterKind = "pending"
	FilterClosed  FilterKind = "closed"
)

// Filter devuelve las empresas que cumplen el criterio del tablero.
func (uc *LifecycleUseCase) Filter(kind FilterKind) []entity.Company {
	var out []entity.Company
	for _, c := range uc.companies {
		switch kind {
		case FilterMine:
			if c.AssignedTo != uc.sess.User.ID {
				continue
			}
		case FilterPending:
			if c.Status != entity.StatusPending {
				continue
			}
		case FilterClosed:
			if c.Status != entity.StatusClosed {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// Search busca por subcadena del nombre, sin distinguir mayúsculas.
func (uc *LifecycleUseCase) Search(term string) []entity.Company {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []entity.Company
	for _, c := range uc.companies {
		if term == "" || strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, c)
		}
	}
	return out
}

// Stats contadores del tablero.
type Stats struct {
	Total   int
	Mine    int
	Pending int
	Closed  int
}

// CollectionStats calcula los contadores del tablero sobre la colección.
func (uc *LifecycleUseCase) CollectionStats() Stats {
	s := Stats{Total: len(uc.companies)}
	for _, c := range uc.companies {
		if c.AssignedTo == uc.sess.User.ID {
			s.Mine++
		}
		switch c.Status {
		case entity.StatusPending:
			s.Pending++
		case entity.StatusClosed:
			s.Closed++
		}
	}
	return s
}

// ── Internos ──────────────────────────────────────────────────────────────────

func (uc *LifecycleUseCase) recompute() {
	uc.reminders = reminder.Derive(uc.companies, uc.sess.User.ID, uc.now())
}

func (uc *LifecycleUseCase) findCompany(id int) (int, *entity.Company) {
	for i := range uc.companies {
		if uc.companies[i].ID == id {
			return i, &uc.companies[i]
		}
	}
	return -1, nil
}

func (uc *LifecycleUseCase) findComment(companyID, commentID int) (int, int, *entity.Comment) {
	idx, current := uc.findCompany(companyID)
	if current == nil {
		return -1, -1, nil
	}
	for i := range current.Comments {
		if current.Comments[i].ID == commentID {
			return idx, i, &current.Comments[i]
		}
	}
	return -1, -1, nil
}

// checkKnownUsers valida que assignedTo y escalatedTo referencien usuarios
// conocidos. Solo aplica si la lista de usuarios ya fue cargada; si no, el
// backend responde 404 y se propaga como domain.ErrNotFound igualmente.
func (uc *LifecycleUseCase) checkKnownUsers(assignedTo int, escalatedTo *int) error {
	if len(uc.users) == 0 {
		return nil
	}
	if assignedTo > 0 {
		if _, ok := uc.users[assignedTo]; !ok {
			return fmt.Errorf("assignedTo %d: %w", assignedTo, domain.ErrNotFound)
		}
	}
	if escalatedTo != nil {
		if _, ok := uc.users[*escalatedTo]; !ok {
			return fmt.Errorf("escalatedTo %d: %w", *escalatedTo, domain.ErrNotFound)
		}
	}
	return nil
}
