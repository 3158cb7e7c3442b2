package repository

import (
	"context"

	"github.com/jhoicas/vales-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay fila.
type StoreRepository interface {
	// Create asigna ID y CreatedAt. Login duplicado devuelve domain.ErrConflict.
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id int64) (*entity.Store, error)
	GetByLogin(ctx context.Context, login string) (*entity.Store, error)
	// List ordena por nombre y no carga PasswordHash.
	List(ctx context.Context) ([]*entity.Store, error)
	// Update persiste nombre, login y hash. Sin fila devuelve domain.ErrNotFound.
	Update(ctx context.Context, store *entity.Store) error
}
