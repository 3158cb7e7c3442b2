// @title                       Vales API
// @version                     1.0
// @description                 API de vales de préstamo de mercadería entre locales.
// @host                        localhost:10000
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/vales-api/docs"
	"github.com/jhoicas/vales-api/internal/application/auth"
	"github.com/jhoicas/vales-api/internal/application/directory"
	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/internal/application/ledger"
	infrapdf "github.com/jhoicas/vales-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vales-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/vales-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/vales-api/internal/interfaces/http"
	"github.com/jhoicas/vales-api/pkg/config"
	"github.com/jhoicas/vales-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
	}

	storeRepo := postgres.NewStoreRepository(pool)
	voucherRepo := postgres.NewVoucherRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Revocación de tokens: sin REDIS_ADDR el logout sólo descarta el token en el cliente.
	var revoker auth.TokenRevoker
	if cfg.Redis.Enabled() {
		client, err := infraredis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		revoker = infraredis.NewTokenDenylist(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("revocación de tokens en Redis")
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: logout sin revocación en servidor")
	}

	directoryUC := directory.NewDirectoryUseCase(storeRepo, cfg.Security.BcryptCost, log.Component("directory"))
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	ledgerUC := ledger.NewLedgerUseCase(txRunner, voucherRepo, storeRepo, pdfGenerator, log.Zerolog())
	authUC := auth.NewAuthUseCase(directoryUC, revoker, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Zerolog())

	httpLog := log.Component("http")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(dto.NewError("HTTP_ERROR", fe.Message))
			}
			httpLog.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", "Error en el servidor"))
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.ReplaceAll(cfg.HTTP.CORSOrigins, " ", ""),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestObserver(httpLog))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vales API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		DirectoryUC:    directoryUC,
		LedgerUC:       ledgerUC,
		JWTSecret:      cfg.JWT.Secret,
		ServiceName:    cfg.App.Name,
		LoginRateLimit: cfg.Security.LoginRateLimit,
		Log:            httpLog,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
