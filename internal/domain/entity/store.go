package entity

import "time"

// Store representa un local de la cadena. Cada local inicia sesión con su usuario
// y puede prestar o recibir mercadería.
type Store struct {
	ID           int64
	Name         string
	Login        string
	PasswordHash string // bcrypt; nunca sale del directorio de locales
	CreatedAt    time.Time
}
