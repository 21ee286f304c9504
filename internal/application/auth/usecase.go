// Package auth casos de uso de autenticación: login y logout contra el
// colaborador remoto. La emisión y expiración del token son del backend; aquí
// solo se construye y destruye el contexto de sesión.
package auth

import (
	"context"

	"github.com/tu-usuario/crm-leads/internal/application/session"
	"github.com/tu-usuario/crm-leads/internal/domain/repository"
	"github.com/tu-usuario/crm-leads/pkg/logger"
)

// AuthUseCase caso de uso de autenticación.
type AuthUseCase struct {
	remote repository.AuthRemote
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(remote repository.AuthRemote, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{remote: remote, log: log}
}

// Login autentica contra el backend y devuelve la sesión construida.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*session.Session, error) {
	user, token, err := uc.remote.Login(ctx, email, password)
	if err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("login rechazado")
		return nil, err
	}
	uc.log.Info().Int("user_id", user.ID).Msg("sesión iniciada")
	return session.New(*user, token), nil
}

// Logout cierra la sesión en el backend. El llamador debe descartar su
// *session.Session después de esta llamada, haya o no error de red.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	if err := uc.remote.Logout(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("logout remoto falló; la sesión local se descarta igual")
		return err
	}
	uc.log.Info().Msg("sesión cerrada")
	return nil
}
