package directory_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vales-api/internal/application/directory"
	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/internal/domain"
	"github.com/jhoicas/vales-api/internal/domain/entity"
)

// ── Stub en memoria ──────────────────────────────────────────────────────────

type stubStoreRepo struct {
	byID   map[int64]*entity.Store
	nextID int64
	failOn string
}

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{byID: make(map[int64]*entity.Store)}
}

func (r *stubStoreRepo) Create(_ context.Context, s *entity.Store) error {
	if r.failOn == "create" {
		return errors.New("conexión perdida")
	}
	for _, existing := range r.byID {
		if existing.Login == s.Login {
			return domain.ErrConflict
		}
	}
	r.nextID++
	s.ID = r.nextID
	c := *s
	r.byID[s.ID] = &c
	return nil
}

func (r *stubStoreRepo) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (r *stubStoreRepo) GetByLogin(_ context.Context, login string) (*entity.Store, error) {
	for _, s := range r.byID {
		if s.Login == login {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (r *stubStoreRepo) List(_ context.Context) ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(r.byID))
	for _, s := range r.byID {
		c := *s
		c.PasswordHash = ""
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubStoreRepo) Update(_ context.Context, s *entity.Store) error {
	if _, ok := r.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.byID {
		if id != s.ID && existing.Login == s.Login {
			return domain.ErrConflict
		}
	}
	c := *s
	r.byID[s.ID] = &c
	return nil
}

func newUseCase(repo *stubStoreRepo) *directory.DirectoryUseCase {
	return directory.NewDirectoryUseCase(repo, bcrypt.MinCost, zerolog.Nop())
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCreate_HasheaYNoDevuelvePassword(t *testing.T) {
	repo := newStubStoreRepo()
	uc := newUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateStoreRequest{Name: "Local Norte", Login: "norte", Password: "clave-segura"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "norte", out.Login)

	stored := repo.byID[out.ID]
	assert.NotEqual(t, "clave-segura", stored.PasswordHash)
	assert.True(t, directory.VerifyPassword("clave-segura", stored.PasswordHash))
}

func TestCreate_CostoMinimoDiez(t *testing.T) {
	repo := newStubStoreRepo()
	uc := newUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateStoreRequest{Name: "Local Sur", Login: "sur", Password: "clave-segura"})
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(repo.byID[out.ID].PasswordHash))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 10, "el factor de trabajo nunca baja de 10")
}

func TestCreate_UsuarioDuplicadoEsConflict(t *testing.T) {
	repo := newStubStoreRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateStoreRequest{Name: "Local Este", Login: "este", Password: "clave-segura"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateStoreRequest{Name: "Otro Este", Login: "este", Password: "otra-clave-1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, repo.byID, 1, "no debe crearse una fila duplicada")
}

func TestCreate_PasswordCorta(t *testing.T) {
	uc := newUseCase(newStubStoreRepo())

	_, err := uc.Create(context.Background(), dto.CreateStoreRequest{Name: "Local", Login: "x", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ErrorDePersistenciaNoEsConflict(t *testing.T) {
	repo := newStubStoreRepo()
	repo.failOn = "create"
	uc := newUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateStoreRequest{Name: "Local", Login: "x", Password: "clave-segura"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrConflict))
}

func TestUpsert_ActualizaPasswordSiExiste(t *testing.T) {
	repo := newStubStoreRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	_, created, err := uc.Upsert(ctx, dto.CreateStoreRequest{Name: "Local Oeste", Login: "oeste", Password: "primera-clave"})
	require.NoError(t, err)
	assert.True(t, created)

	out, created, err := uc.Upsert(ctx, dto.CreateStoreRequest{Name: "Local Oeste", Login: "oeste", Password: "segunda-clave"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.byID, 1)

	hash := repo.byID[out.ID].PasswordHash
	assert.True(t, directory.VerifyPassword("segunda-clave", hash))
	assert.False(t, directory.VerifyPassword("primera-clave", hash))
}

func TestUpdate_SinPasswordConservaHash(t *testing.T) {
	repo := newStubStoreRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateStoreRequest{Name: "Local Centro", Login: "centro", Password: "clave-segura"})
	require.NoError(t, err)
	before := repo.byID[out.ID].PasswordHash

	name := "Local Centro Histórico"
	updated, err := uc.Update(ctx, out.ID, dto.UpdateStoreRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, before, repo.byID[out.ID].PasswordHash)
}

func TestUpdate_Inexistente(t *testing.T) {
	uc := newUseCase(newStubStoreRepo())
	name := "x"
	_, err := uc.Update(context.Background(), 99, dto.UpdateStoreRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthenticate(t *testing.T) {
	repo := newStubStoreRepo()
	uc := newUseCase(repo)
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateStoreRequest{Name: "Local Central", Login: "central", Password: "clave-segura"})
	require.NoError(t, err)

	store, err := uc.Authenticate(ctx, "central", "clave-segura")
	require.NoError(t, err)
	assert.Equal(t, "Local Central", store.Name)
	assert.Empty(t, store.PasswordHash, "el hash nunca sale del directorio")

	_, err = uc.Authenticate(ctx, "central", "incorrecta")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Authenticate(ctx, "Central", "clave-segura")
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "el usuario distingue mayúsculas")

	_, err = uc.Authenticate(ctx, "nadie", "clave-segura")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestFindByLogin_AusenciaNoEsError(t *testing.T) {
	uc := newUseCase(newStubStoreRepo())
	store, err := uc.FindByLogin(context.Background(), "nadie")
	assert.NoError(t, err)
	assert.Nil(t, store)
}

func TestListAll_OrdenadoPorNombre(t *testing.T) {
	repo := newStubStoreRepo()
	uc := newUseCase(repo)
	ctx := context.Background()
	for _, n := range []string{"Local Sur", "Local Centro", "Local Norte"} {
		_, err := uc.Create(ctx, dto.CreateStoreRequest{Name: n, Login: n, Password: "clave-segura"})
		require.NoError(t, err)
	}

	list, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Local Centro", list[0].Name)
	assert.Equal(t, "Local Sur", list[2].Name)
	assert.WithinDuration(t, time.Now(), list[0].CreatedAt, time.Minute)
}

func TestVerifyPassword_HashMalformado(t *testing.T) {
	assert.False(t, directory.VerifyPassword("x", "no-es-un-hash"))
	assert.False(t, directory.VerifyPassword("x", ""))
}
