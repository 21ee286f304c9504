package entity

// Roles válidos para User.
const (
	RoleAdmin      = "ADMIN"
	RoleInstructor = "INSTRUCTOR"
	RoleStandard   = "STANDARD"
)

// User representa un usuario del sistema. Inmutable dentro de una sesión una
// vez obtenido del backend; el backend es el dueño del recurso.
type User struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Role      string // ver constantes Role*
}

// FullName nombre completo para mostrar.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
