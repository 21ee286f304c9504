package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-leads/internal/domain"
	"github.com/tu-usuario/crm-leads/internal/domain/entity"
	"github.com/tu-usuario/crm-leads/internal/domain/lifecycle"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func pendingCompany(owner int) *entity.Company {
	return &entity.Company{
		ID:         1,
		Name:       "Acme",
		AssignedTo: owner,
		AssignedBy: owner,
		Status:     entity.StatusPending,
		CreatedAt:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	verrs, ok := domain.AsValidation(err)
	require.True(t, ok, "el error debe ser domain.ValidationErrors, fue: %v", err)
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	return fields
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

// TestCanTransition_TodasLasAristas recorre las seis aristas declaradas de la
// máquina de estados más los casos degenerados.
func TestCanTransition_TodasLasAristas(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.StatusPending, entity.StatusClosed, true},
		{entity.StatusPending, entity.StatusEscalated, true},
		{entity.StatusClosed, entity.StatusPending, true},
		{entity.StatusClosed, entity.StatusEscalated, true},
		{entity.StatusEscalated, entity.StatusPending, true},
		{entity.StatusEscalated, entity.StatusClosed, true},
		{entity.StatusPending, entity.StatusPending, true},
		{entity.StatusPending, "ARCHIVED", false},
		{"BOGUS", entity.StatusClosed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, lifecycle.CanTransition(tc.from, tc.to),
			"transición %s -> %s", tc.from, tc.to)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escalación
// ──────────────────────────────────────────────────────────────────────────────

// TestValidateTransition_AutoEscalacionRechazada cubre el escenario: empresa
// PENDING asignada al usuario 7 actualizada a ESCALATED con escalatedTo 7.
func TestValidateTransition_AutoEscalacionRechazada(t *testing.T) {
	current := pendingCompany(7)
	_, err := lifecycle.ValidateTransition(current, lifecycle.ProposedUpdate{
		Status:      strPtr(entity.StatusEscalated),
		EscalatedTo: intPtr(7),
	})
	require.Error(t, err, "escalar al propio propietario debe rechazarse")
	assert.Contains(t, fieldsOf(t, err), "escalatedTo")
}

func TestValidateTransition_EscalacionValida(t *testing.T) {
	current := pendingCompany(7)
	out, err := lifecycle.ValidateTransition(current, lifecycle.ProposedUpdate{
		Status:      strPtr(entity.StatusEscalated),
		EscalatedTo: intPtr(9),
	})
	require.NoError(t, err)
	require.NotNil(t, out.EscalatedTo, "la escalación debe conservar el destinatario")
	assert.Equal(t, 9, *out.EscalatedTo)
	assert.Equal(t, entity.StatusEscalated, out.Status)
}

func TestValidateTransition_EscalacionSinDestinoRechazada(t *testing.T) {
	current := pendingCompany(7)
	_, err := lifecycle.ValidateTransition(current, lifecycle.ProposedUpdate{
		Status: strPtr(entity.StatusEscalated),
	})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "escalatedTo")
}

// TestValidateTransition_CierreLimpiaEscalacion: al salir de ESCALATED el
// puntero queda en null aunque el llamador no lo toque.
func TestValidateTransition_CierreLimpiaEscalacion(t *testing.T) {
	current := pendingCompany(7)
	current.Status = entity.StatusEscalated
	current.EscalatedTo = intPtr(9)

	out, err := lifecycle.ValidateTransition(current, lifecycle.ProposedUpdate{
		Status: strPtr(entity.StatusClosed),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusClosed, out.Status)
	assert.Nil(t, out.EscalatedTo, "cerrar debe limpiar escalatedTo")
}

// TestValidateTransition_EscalatedToIgnoradoFueraDeEscalado: la limpieza
// defensiva ignora lo que mande el llamador si el estado no es ESCALATED.
func TestValidateTransition_EscalatedToIgnoradoFueraDeEscalado(t *testing.T) {
	current := pendingCompany(7)
	out, err := lifecycle.ValidateTransition(current, lifecycle.ProposedUpdate{
		Status:      strPtr(entity.StatusClosed),
		EscalatedTo: intPtr(9),
	})
	require.NoError(t, err)
	assert.Nil(t, out.EscalatedTo)
}

// TestValidateTransition_InvarianteEscalacion: propiedad general — para toda
// actualización validada, status != ESCALATED implica escalatedTo == nil.
func TestValidateTransition_InvarianteEscalacion(t *testing.T) {
	current := pendingCompany(7)
	current.Status = entity.StatusEscalated
	current.EscalatedTo = intPtr(9)

	for _, status := range []string{entity.StatusPending, entity.StatusClosed} {
		out, err := lifecycle.ValidateTransition(current, lifecycle.ProposedUpdate{
			Status: strPtr(status),
		})
		require.NoError(t, err)
		assert.Nil(t, out.EscalatedTo, "status %s debe dejar escalatedTo nulo", status)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos y acumulación de violaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateTransition_NombreVacioRechazado(t *testing.T) {
	_, err := lifecycle.ValidateTransition(pendingCompany(7), lifecycle.ProposedUpdate{
		Name: strPtr("   "),
	})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "name")
}

func TestValidateTransition_NombreSeRecorta(t *testing.T) {
	out, err := lifecycle.ValidateTransition(pendingCompany(7), lifecycle.ProposedUpdate{
		Name: strPtr("  Globex  "),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Name)
	assert.Equal(t, "Globex", *out.Name)
}

func TestValidateTransition_EmailInvalido(t *testing.T) {
	_, err := lifecycle.ValidateTransition(pendingCompany(7), lifecycle.ProposedUpdate{
		Contact: &entity.ContactDetails{Email: "sin-arroba"},
	})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "contact.email")
}

func TestValidateTransition_TelefonoInvalido(t *testing.T) {
	cases := []string{"12345", "abc1234567", "+123456789012345678"}
	for _, phone := range cases {
		_, err := lifecycle.ValidateTransition(pendingCompany(7), lifecycle.ProposedUpdate{
			Contact: &entity.ContactDetails{Phone: phone},
		})
		require.Error(t, err, "teléfono %q debería rechazarse", phone)
		assert.Contains(t, fieldsOf(t, err), "contact.phone")
	}
}

func TestValidateTransition_ContactoValido(t *testing.T) {
	out, err := lifecycle.ValidateTransition(pendingCompany(7), lifecycle.ProposedUpdate{
		Contact: &entity.ContactDetails{
			Email: "ventas@acme.com",
			Phone: "+57 300-123-4567",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out.Contact)
}

// Email y teléfono vacíos no son violación: son campos opcionales.
func TestValidateTransition_ContactoVacioValido(t *testing.T) {
	_, err := lifecycle.ValidateTransition(pendingCompany(7), lifecycle.ProposedUpdate{
		Contact: &entity.ContactDetails{Person: "Jane Roe"},
	})
	assert.NoError(t, err)
}

// TestValidateTransition_AcumulaTodasLasViolaciones: nunca se corta en la
// primera violación; el llamador tiene que poder mostrar la lista completa y
// en orden.
func TestValidateTransition_AcumulaTodasLasViolaciones(t *testing.T) {
	current := pendingCompany(7)
	_, err := lifecycle.ValidateTransition(current, lifecycle.ProposedUpdate{
		Name:        strPtr("  "),
		Contact:     &entity.ContactDetails{Email: "malo", Phone: "12"},
		Status:      strPtr(entity.StatusEscalated),
		EscalatedTo: intPtr(7),
	})
	require.Error(t, err)
	fields := fieldsOf(t, err)
	assert.Equal(t, []string{"name", "contact.email", "contact.phone", "escalatedTo"}, fields,
		"las violaciones deben acumularse todas y en orden de regla")
}

func TestValidateTransition_EstadoDesconocidoRechazado(t *testing.T) {
	_, err := lifecycle.ValidateTransition(pendingCompany(7), lifecycle.ProposedUpdate{
		Status: strPtr("ARCHIVED"),
	})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "status")
}

func TestValidateTransition_CurrentNilEsEntradaInvalida(t *testing.T) {
	_, err := lifecycle.ValidateTransition(nil, lifecycle.ProposedUpdate{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateNewCompany
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateNewCompany_NombreRequerido(t *testing.T) {
	_, err := lifecycle.ValidateNewCompany(entity.Company{AssignedTo: 3})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "name")
}

func TestValidateNewCompany_EstadoPorDefectoPending(t *testing.T) {
	out, err := lifecycle.ValidateNewCompany(entity.Company{Name: "Acme", AssignedTo: 3})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, out.Status)
	assert.Nil(t, out.EscalatedTo)
}

func TestValidateNewCompany_AutoEscalacionRechazada(t *testing.T) {
	_, err := lifecycle.ValidateNewCompany(entity.Company{
		Name:        "Acme",
		AssignedTo:  3,
		Status:      entity.StatusEscalated,
		EscalatedTo: intPtr(3),
	})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "escalatedTo")
}

func TestValidateNewCompany_LimpiaEscalacionFueraDeEscalado(t *testing.T) {
	out, err := lifecycle.ValidateNewCompany(entity.Company{
		Name:        "  Acme  ",
		AssignedTo:  3,
		Status:      entity.StatusClosed,
		EscalatedTo: intPtr(9),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", out.Name, "el nombre debe salir recortado")
	assert.Nil(t, out.EscalatedTo)
}

// ──────────────────────────────────────────────────────────────────────────────
// SameName (chequeo de duplicados por propietario)
// ──────────────────────────────────────────────────────────────────────────────

func TestSameName_IgnoraMayusculasYBordes(t *testing.T) {
	assert.True(t, lifecycle.SameName("Acme", " acme "))
	assert.True(t, lifecycle.SameName("ACME", "acme"))
	assert.False(t, lifecycle.SameName("Acme", "Acme Corp"))
}
