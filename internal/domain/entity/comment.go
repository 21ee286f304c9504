package entity

import "time"

// Comment comentario en el hilo de una empresa. Solo el autor puede editarlo
// o borrarlo; cualquier usuario con visibilidad sobre la empresa lo lee.
type Comment struct {
	ID        int
	CompanyID int
	UserID    int
	Content   string
	CreatedAt time.Time
	UpdatedAt *time.Time // nil si nunca fue editado
}
