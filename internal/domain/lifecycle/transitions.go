// Package lifecycle contiene las reglas puras del ciclo de vida de una
// empresa: máquina de estados, validación de transiciones y normalización de
// actualizaciones antes de enviarlas al backend.
package lifecycle

import "github.com/tu-usuario/crm-leads/internal/domain/entity"

// Máquina de estados del campo Status. Ningún estado es terminal y toda
// transición es reversible con la autorización y validación debidas:
//
//	PENDING   -> CLOSED     siempre permitido
//	PENDING   -> ESCALATED  requiere EscalatedTo válido
//	CLOSED    -> PENDING    permitido (reapertura)
//	CLOSED    -> ESCALATED  requiere EscalatedTo válido
//	ESCALATED -> PENDING    permitido, limpia EscalatedTo
//	ESCALATED -> CLOSED     permitido, limpia EscalatedTo
func CanTransition(from, to string) bool {
	if !entity.ValidStatus(from) || !entity.ValidStatus(to) {
		return false
	}
	// Los tres estados son mutuamente alcanzables; la exigencia real está en
	// la validación del destinatario de escalación y en la limpieza del
	// puntero al salir de ESCALATED (ver ValidateTransition).
	return true
}
