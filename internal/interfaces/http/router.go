package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vales-api/internal/application/auth"
	"github.com/jhoicas/vales-api/internal/application/directory"
	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	DirectoryUC    *directory.DirectoryUseCase
	LedgerUC       *ledger.LedgerUseCase
	JWTSecret      string
	ServiceName    string
	LoginRateLimit int // intentos por minuto por IP; 0 desactiva el limitador
	Log            zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API de Vales funcionando correctamente"})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", loginLimiter(deps.LoginRateLimit), authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	requireAuth := AuthMiddleware(deps.JWTSecret, deps.AuthUC)

	authGroup.Get("/user", requireAuth, authHandler.CurrentUser)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)

	storeHandler := NewStoreHandler(deps.DirectoryUC, deps.Log)
	api.Get("/usuarios", requireAuth, storeHandler.List)

	vouchers := api.Group("/vales", requireAuth)
	voucherHandler := NewVoucherHandler(deps.LedgerUC, deps.Log)
	vouchers.Get("/", voucherHandler.List)
	vouchers.Get("/buscar", voucherHandler.Search)
	vouchers.Get("/exportar", voucherHandler.Export)
	vouchers.Post("/", voucherHandler.Create)
	vouchers.Get("/:id", voucherHandler.GetByID)
	vouchers.Get("/:id/pdf", voucherHandler.PDF)
	vouchers.Put("/:id", voucherHandler.Update)
	vouchers.Put("/:id/pagar", voucherHandler.MarkSettled)
	vouchers.Delete("/:id", voucherHandler.Delete)
}

// loginLimiter limita intentos de login por IP en una ventana de un minuto.
func loginLimiter(max int) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.NewError("TOO_MANY_ATTEMPTS", "demasiados intentos, espere un minuto"))
		},
	})
}
