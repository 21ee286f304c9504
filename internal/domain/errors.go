package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas). La capa REST los produce a
// partir de las respuestas del backend y los casos de uso los propagan tal
// cual; ningún fallo es fatal para el proceso.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("nombre de empresa duplicado para el mismo propietario")
	ErrUnauthorized = errors.New("sesión no autenticada")
	ErrForbidden    = errors.New("operación fuera de los permisos del usuario")
	ErrTransport    = errors.New("fallo de comunicación con el backend")
	ErrInvalidInput = errors.New("entrada inválida")
)

// FieldError violación de validación a nivel de campo, corregible por el
// usuario.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors acumula todas las violaciones de una operación. Nunca se
// trunca a la primera: el llamador debe poder mostrar la lista completa.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "validación: " + strings.Join(msgs, "; ")
}

// AsValidation extrae ValidationErrors de err si las contiene.
func AsValidation(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
