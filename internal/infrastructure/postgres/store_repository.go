package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vales-api/internal/domain"
	"github.com/jhoicas/vales-api/internal/domain/entity"
	"github.com/jhoicas/vales-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre la tabla usuarios.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para locales. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste un nuevo local y asigna ID y CreatedAt.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO usuarios (nombre, usuario, password)
		VALUES ($1, $2, $3)
		RETURNING id, creado_en`
	err := r.q.QueryRow(ctx, query, store.Name, store.Login, store.PasswordHash).
		Scan(&store.ID, &store.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un local por ID (incluye el hash para verificación).
func (r *StoreRepo) GetByID(ctx context.Context, id int64) (*entity.Store, error) {
	return r.findOne(ctx, `
		SELECT id, nombre, usuario, password, creado_en
		FROM usuarios WHERE id = $1`, id)
}

// GetByLogin obtiene un local por usuario exacto.
func (r *StoreRepo) GetByLogin(ctx context.Context, login string) (*entity.Store, error) {
	return r.findOne(ctx, `
		SELECT id, nombre, usuario, password, creado_en
		FROM usuarios WHERE usuario = $1`, login)
}

func (r *StoreRepo) findOne(ctx context.Context, query string, arg any) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(ctx, query, arg).Scan(&s.ID, &s.Name, &s.Login, &s.PasswordHash, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &s, nil
}

// List lista los locales por nombre. No selecciona el hash.
func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, nombre, usuario, creado_en
		FROM usuarios ORDER BY nombre, id`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Login, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update reemplaza nombre, usuario y hash.
func (r *StoreRepo) Update(ctx context.Context, store *entity.Store) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE usuarios SET nombre = $2, usuario = $3, password = $4
		WHERE id = $1`,
		store.ID, store.Name, store.Login, store.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
