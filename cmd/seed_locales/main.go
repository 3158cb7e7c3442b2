// seed_locales crea o actualiza los seis locales de la cadena.
//
// Uso: go run ./cmd/seed_locales
// La contraseña de cada local se lee de PASSWORD_<USUARIO> (ej. PASSWORD_CENTRAL), en env o .env.
// Los locales sin contraseña configurada se omiten. Nunca hay contraseñas por defecto.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/jhoicas/vales-api/internal/application/directory"
	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/internal/infrastructure/postgres"
	"github.com/jhoicas/vales-api/pkg/config"
	"github.com/jhoicas/vales-api/pkg/logger"
)

const minPasswordLen = 8

var locales = []struct {
	Name  string
	Login string
}{
	{"Local Central", "central"},
	{"Local Norte", "norte"},
	{"Local Sur", "sur"},
	{"Local Este", "este"},
	{"Local Oeste", "oeste"},
	{"Local Centro", "centro"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed_locales"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	dir := directory.NewDirectoryUseCase(postgres.NewStoreRepository(pool), cfg.Security.BcryptCost, log.Component("directory"))

	var failed bool
	for _, l := range locales {
		key := "PASSWORD_" + strings.ToUpper(l.Login)
		password := cfg.Lookup(key)
		if password == "" {
			log.Warn().Str("usuario", l.Login).Str("variable", key).Msg("sin contraseña configurada, se omite")
			continue
		}
		if len(password) < minPasswordLen {
			log.Error().Str("usuario", l.Login).Int("min", minPasswordLen).Msg("contraseña demasiado corta, se omite")
			failed = true
			continue
		}

		out, created, err := dir.Upsert(ctx, dto.CreateStoreRequest{Name: l.Name, Login: l.Login, Password: password})
		if err != nil {
			log.Error().Err(err).Str("usuario", l.Login).Msg("guardar local")
			failed = true
			continue
		}
		action := "actualizado"
		if created {
			action = "creado"
		}
		log.Info().Int64("id", out.ID).Str("usuario", out.Login).Str("nombre", out.Name).Msg("local " + action)
	}

	if failed {
		pool.Close()
		os.Exit(1)
	}
}
