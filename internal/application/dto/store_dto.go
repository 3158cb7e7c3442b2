package dto

import "time"

// StoreResponse salida de un local (sin password).
type StoreResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	Login     string    `json:"usuario"`
	CreatedAt time.Time `json:"creado_en"`
}

// StoreListResponse listado de locales.
type StoreListResponse struct {
	Success bool            `json:"success"`
	Stores  []StoreResponse `json:"usuarios"`
}

// CreateStoreRequest alta de un local (scripts de arranque).
type CreateStoreRequest struct {
	Name     string `json:"nombre" validate:"required,max=120"`
	Login    string `json:"usuario" validate:"required,max=60"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateStoreRequest cambios parciales de un local; nil = sin cambios.
type UpdateStoreRequest struct {
	Name     *string `json:"nombre,omitempty" validate:"omitempty,max=120"`
	Login    *string `json:"usuario,omitempty" validate:"omitempty,max=60"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}
