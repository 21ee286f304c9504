// Package access resuelve permisos de edición, borrado y comentarios a partir
// del par (usuario, empresa). Es la única fuente de verdad para habilitar
// acciones en el cliente y para anticipar la autorización del backend; ningún
// chequeo ad-hoc debe duplicar estas reglas.
package access

import "github.com/tu-usuario/crm-leads/internal/domain/entity"

// CanEdit indica si u puede editar campos o estado de c. Solo el propietario
// (AssignedTo). El destinatario de una escalación NO edita: la escalación da
// visibilidad, no propiedad.
func CanEdit(u *entity.User, c *entity.Company) bool {
	return u != nil && c != nil && u.ID == c.AssignedTo
}

// CanDelete indica si u puede borrar c. Mismas reglas que CanEdit.
func CanDelete(u *entity.User, c *entity.Company) bool {
	return CanEdit(u, c)
}

// CanComment indica si u puede escribir comentarios en c. La autoría de
// comentarios está restringida al propietario; la lectura del hilo es abierta
// para cualquier usuario autenticado con acceso a la vista.
func CanComment(u *entity.User, c *entity.Company) bool {
	return CanEdit(u, c)
}

// CanView indica si u puede ver c y leer su hilo de comentarios: cualquier
// usuario autenticado.
func CanView(u *entity.User, c *entity.Company) bool {
	return u != nil && c != nil
}

// IsEscalationTarget indica si u es el destinatario registrado de la
// escalación de c.
func IsEscalationTarget(u *entity.User, c *entity.Company) bool {
	return u != nil && c != nil && c.EscalatedTo != nil && *c.EscalatedTo == u.ID
}
