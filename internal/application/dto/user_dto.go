package dto

import "github.com/tu-usuario/crm-leads/internal/domain/entity"

// UserResponse usuario tal como lo devuelve el backend.
type UserResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstname"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse respuesta de /auth/login: el usuario viene anidado junto con
// su token.
type LoginResponse struct {
	Message string `json:"message"`
	User    struct {
		ID        int    `json:"id"`
		FirstName string `json:"firstname"`
		Surname   string `json:"surname"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		Token     string `json:"token"`
	} `json:"user"`
}

// UserToEntity convierte la respuesta del backend al modelo de dominio.
func UserToEntity(in UserResponse) entity.User {
	return entity.User{
		ID:        in.ID,
		FirstName: in.FirstName,
		LastName:  in.Surname,
		Email:     in.Email,
		Role:      in.Role,
	}
}
