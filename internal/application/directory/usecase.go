// Package directory administra los locales: búsqueda, alta, verificación y cambio de credenciales.
package directory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/internal/domain"
	"github.com/jhoicas/vales-api/internal/domain/entity"
	"github.com/jhoicas/vales-api/internal/domain/repository"
	"github.com/jhoicas/vales-api/pkg/config"
)

// MinPasswordLength largo mínimo de contraseña para altas y cambios.
const MinPasswordLength = 8

// DirectoryUseCase casos de uso del directorio de locales.
type DirectoryUseCase struct {
	repo repository.StoreRepository
	cost int
	log  zerolog.Logger
}

// NewDirectoryUseCase construye el caso de uso. cost se eleva a config.MinBcryptCost si es menor.
func NewDirectoryUseCase(repo repository.StoreRepository, cost int, log zerolog.Logger) *DirectoryUseCase {
	if cost < config.MinBcryptCost {
		cost = config.MinBcryptCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &DirectoryUseCase{repo: repo, cost: cost, log: log.With().Str("component", "directory").Logger()}
}

// FindByLogin busca un local por usuario exacto. Devuelve (nil, nil) si no existe.
func (uc *DirectoryUseCase) FindByLogin(ctx context.Context, login string) (*entity.Store, error) {
	store, err := uc.repo.GetByLogin(ctx, login)
	if err != nil {
		uc.log.Error().Err(err).Str("usuario", login).Msg("buscar local por usuario")
		return nil, err
	}
	return withoutHash(store), nil
}

// FindByID busca un local por ID. Devuelve (nil, nil) si no existe.
func (uc *DirectoryUseCase) FindByID(ctx context.Context, id int64) (*entity.Store, error) {
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Int64("store_id", id).Msg("buscar local por id")
		return nil, err
	}
	return withoutHash(store), nil
}

// ListAll lista los locales ordenados por nombre.
func (uc *DirectoryUseCase) ListAll(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar locales")
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToStoreResponse(s))
	}
	return out, nil
}

// Create da de alta un local con la contraseña hasheada. Usuario duplicado devuelve domain.ErrConflict.
func (uc *DirectoryUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	name := strings.TrimSpace(in.Name)
	login := strings.TrimSpace(in.Login)
	if name == "" {
		return nil, domain.NewValidationError("nombre", "es requerido")
	}
	if login == "" {
		return nil, domain.NewValidationError("usuario", "es requerido")
	}
	hash, err := uc.hash(in.Password)
	if err != nil {
		return nil, err
	}
	store := &entity.Store{
		Name:         name,
		Login:        login,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, store); err != nil {
		if !errors.Is(err, domain.ErrConflict) {
			uc.log.Error().Err(err).Str("usuario", login).Msg("crear local")
		}
		return nil, err
	}
	out := ToStoreResponse(store)
	return &out, nil
}

// Update aplica los cambios presentes; una contraseña nueva se vuelve a hashear.
func (uc *DirectoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.NewValidationError("nombre", "no puede quedar vacío")
		}
		store.Name = strings.TrimSpace(*in.Name)
	}
	if in.Login != nil {
		if strings.TrimSpace(*in.Login) == "" {
			return nil, domain.NewValidationError("usuario", "no puede quedar vacío")
		}
		store.Login = strings.TrimSpace(*in.Login)
	}
	if in.Password != nil {
		hash, err := uc.hash(*in.Password)
		if err != nil {
			return nil, err
		}
		store.PasswordHash = hash
	}
	if err := uc.repo.Update(ctx, store); err != nil {
		if !errors.Is(err, domain.ErrConflict) && !errors.Is(err, domain.ErrNotFound) {
			uc.log.Error().Err(err).Int64("store_id", id).Msg("actualizar local")
		}
		return nil, err
	}
	out := ToStoreResponse(store)
	return &out, nil
}

// Upsert crea el local o, si el usuario ya existe, le cambia la contraseña.
// created indica cuál de los dos caminos se tomó.
func (uc *DirectoryUseCase) Upsert(ctx context.Context, in dto.CreateStoreRequest) (out *dto.StoreResponse, created bool, err error) {
	out, err = uc.Create(ctx, in)
	if err == nil {
		return out, true, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return nil, false, err
	}
	existing, err := uc.repo.GetByLogin(ctx, strings.TrimSpace(in.Login))
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, domain.ErrNotFound
	}
	password := in.Password
	out, err = uc.Update(ctx, existing.ID, dto.UpdateStoreRequest{Password: &password})
	return out, false, err
}

// Authenticate verifica usuario y contraseña. Usuario inexistente y contraseña incorrecta
// devuelven el mismo domain.ErrUnauthorized.
func (uc *DirectoryUseCase) Authenticate(ctx context.Context, login, password string) (*entity.Store, error) {
	store, err := uc.repo.GetByLogin(ctx, login)
	if err != nil {
		uc.log.Error().Err(err).Str("usuario", login).Msg("autenticar local")
		return nil, err
	}
	if store == nil || !VerifyPassword(password, store.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	return withoutHash(store), nil
}

// VerifyPassword compara en tiempo constante vía bcrypt. Un hash malformado devuelve false.
func VerifyPassword(plaintext, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func (uc *DirectoryUseCase) hash(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", domain.NewValidationError("password", "debe tener al menos 8 caracteres")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		return "", domain.NewValidationError("password", err.Error())
	}
	return string(h), nil
}

func withoutHash(s *entity.Store) *entity.Store {
	if s == nil {
		return nil
	}
	c := *s
	c.PasswordHash = ""
	return &c
}

// ToStoreResponse convierte la entidad a DTO (nunca incluye el hash).
func ToStoreResponse(s *entity.Store) dto.StoreResponse {
	return dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Login:     s.Login,
		CreatedAt: s.CreatedAt,
	}
}
