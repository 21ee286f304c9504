package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/crm-leads/internal/domain/access"
	"github.com/tu-usuario/crm-leads/internal/domain/entity"
)

func targetPtr(id int) *int { return &id }

// TestCanEdit_SoloElPropietario: CanEdit es falso para todo usuario que no sea
// assignedTo, incluido el destinatario de la escalación.
func TestCanEdit_SoloElPropietario(t *testing.T) {
	owner := &entity.User{ID: 7}
	escalationTarget := &entity.User{ID: 9}
	other := &entity.User{ID: 3}
	company := &entity.Company{
		ID:          1,
		AssignedTo:  7,
		Status:      entity.StatusEscalated,
		EscalatedTo: targetPtr(9),
	}

	assert.True(t, access.CanEdit(owner, company), "el propietario edita")
	assert.False(t, access.CanEdit(escalationTarget, company),
		"la escalación da visibilidad, no edición")
	assert.False(t, access.CanEdit(other, company))
	assert.False(t, access.CanEdit(nil, company))
	assert.False(t, access.CanEdit(owner, nil))
}

// CanDelete y CanComment siguen exactamente las reglas de CanEdit.
func TestCanDeleteYCanComment_MismasReglasQueEditar(t *testing.T) {
	owner := &entity.User{ID: 7}
	other := &entity.User{ID: 9}
	company := &entity.Company{ID: 1, AssignedTo: 7, Status: entity.StatusPending}

	assert.True(t, access.CanDelete(owner, company))
	assert.False(t, access.CanDelete(other, company))
	assert.True(t, access.CanComment(owner, company))
	assert.False(t, access.CanComment(other, company))
}

func TestCanView_CualquierAutenticado(t *testing.T) {
	company := &entity.Company{ID: 1, AssignedTo: 7}
	assert.True(t, access.CanView(&entity.User{ID: 3}, company))
	assert.False(t, access.CanView(nil, company), "sin sesión no hay vista")
}

func TestIsEscalationTarget(t *testing.T) {
	company := &entity.Company{
		ID:          1,
		AssignedTo:  7,
		Status:      entity.StatusEscalated,
		EscalatedTo: targetPtr(9),
	}
	assert.True(t, access.IsEscalationTarget(&entity.User{ID: 9}, company))
	assert.False(t, access.IsEscalationTarget(&entity.User{ID: 7}, company))

	company.Status = entity.StatusPending
	company.EscalatedTo = nil
	assert.False(t, access.IsEscalationTarget(&entity.User{ID: 9}, company),
		"sin escalación no hay destinatario")
}
