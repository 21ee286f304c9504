// Package session modela el contexto de sesión explícito del cliente: se
// construye en el login, se pasa a los casos de uso y se destruye en el
// logout. Reemplaza cualquier lectura ambiente de token/usuario desde estado
// global.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tu-usuario/crm-leads/internal/domain/entity"
)

// Session usuario autenticado más su bearer token.
type Session struct {
	User      entity.User
	Token     string
	ExpiresAt *time.Time // nil si el token no declara exp
}

// New construye la sesión a partir del usuario y el token emitidos por el
// backend. El token se parsea sin verificar la firma: verificar es trabajo
// del servidor (el cliente no conoce el secreto); aquí solo interesa leer el
// claim exp para saber cuándo deja de servir.
func New(user entity.User, token string) *Session {
	s := &Session{User: user, Token: token}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil && claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		s.ExpiresAt = &exp
	}
	return s
}

// IsAuthenticated indica si la sesión sigue siendo usable en el instante now.
// Un token sin exp se considera vigente; el backend responderá 401 si no lo
// está.
func (s *Session) IsAuthenticated(now time.Time) bool {
	if s == nil || s.Token == "" {
		return false
	}
	return s.ExpiresAt == nil || now.Before(*s.ExpiresAt)
}

// BearerToken devuelve el token actual, o vacío si no hay sesión. Pensado
// como proveedor para el cliente REST.
func (s *Session) BearerToken() string {
	if s == nil {
		return ""
	}
	return s.Token
}
