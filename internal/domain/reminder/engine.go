// Package reminder deriva avisos legibles para el propietario a partir del
// estado de las empresas y un instante dado. Los avisos no se persisten: se
// recalculan cada vez que cambia la colección en memoria.
package reminder

import (
	"fmt"
	"math"
	"time"

	"github.com/tu-usuario/crm-leads/internal/domain/entity"
)

// Severidades de un aviso.
const (
	SeverityHigh   = "HIGH"
	SeverityMedium = "MEDIUM"
	SeverityLow    = "LOW"
)

// upcomingWindowDays ventana de aviso previo a una reunión.
const upcomingWindowDays = 5

// Reminder aviso derivado para el propietario de una empresa.
type Reminder struct {
	CompanyID int
	Message   string
	Severity  string
}

// Derive calcula los avisos de las empresas asignadas a owner en el instante
// now. Por cada empresa del propietario:
//
//  1. Si tiene ContactDate: diffDays = ceil(ContactDate - now). Con 0 emite
//     "reunión hoy" (HIGH); entre 1 y 5 emite "reunión en N días" (MEDIUM);
//     fuera de ese rango no emite nada.
//  2. Si está en PENDING emite siempre un aviso de lead pendiente (LOW), con
//     la fecha de contacto formateada si existe.
//
// Ambos avisos pueden dispararse para la misma empresa; no son excluyentes.
// El orden de salida es estable (el de entrada) y no hay deduplicación. La
// función es pura dado now: nunca lee el reloj por su cuenta, requisito para
// que los tests sean deterministas.
func Derive(companies []entity.Company, owner int, now time.Time) []Reminder {
	var out []Reminder
	for _, c := range companies {
		if c.AssignedTo != owner {
			continue
		}

		if c.ContactDate != nil {
			diffDays := int(math.Ceil(c.ContactDate.Sub(now).Hours() / 24))
			switch {
			case diffDays == 0:
				out = append(out, Reminder{
					CompanyID: c.ID,
					Message:   fmt.Sprintf("Meeting with %s is today", c.Name),
					Severity:  SeverityHigh,
				})
			case diffDays > 0 && diffDays <= upcomingWindowDays:
				out = append(out, Reminder{
					CompanyID: c.ID,
					Message:   fmt.Sprintf("Meeting with %s in %d days", c.Name, diffDays),
					Severity:  SeverityMedium,
				})
			}
		}

		if c.Status == entity.StatusPending {
			msg := fmt.Sprintf("%s is still pending (no meeting scheduled)", c.Name)
			if c.ContactDate != nil {
				msg = fmt.Sprintf("%s is still pending (meeting %s)", c.Name, c.ContactDate.Format("2006-01-02"))
			}
			out = append(out, Reminder{CompanyID: c.ID, Message: msg, Severity: SeverityLow})
		}
	}
	return out
}
