package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/user-directory/docs"
	"github.com/jhoicas/user-directory/internal/application/directory"
	"github.com/jhoicas/user-directory/internal/application/usecase"
	"github.com/jhoicas/user-directory/internal/domain"
	"github.com/jhoicas/user-directory/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/user-directory/internal/infrastructure/pdf"
	"github.com/jhoicas/user-directory/internal/infrastructure/remote"
	httpRouter "github.com/jhoicas/user-directory/internal/interfaces/http"
	"github.com/jhoicas/user-directory/pkg/config"
	"github.com/jhoicas/user-directory/pkg/idgen"
	"github.com/jhoicas/user-directory/pkg/logger"
)

// @title        User Directory API
// @version      1.0
// @description  Directorio de usuarios: colección remota más altas locales de la sesión.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Env:           cfg.App.Env,
		Level:         cfg.Log.Level,
		File:          cfg.Log.File,
		MaxAgeHours:   cfg.Log.MaxAgeHours,
		RotationHours: cfg.Log.RotationHours,
	})
	if err != nil {
		panic("inicializar logger: " + err.Error())
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("remote", cfg.Remote.BaseURL).
		Msg("iniciando aplicación")

	ids, err := idgen.New(cfg.Directory.SnowflakeNode)
	if err != nil {
		log.Fatal().Err(err).Msg("generador de ids")
	}

	store := memory.NewUserStore(nil)
	loader := remote.NewUserClient(cfg.Remote.BaseURL, cfg.Remote.Timeout())
	bootstrap := directory.NewBootstrap(store, loader, log)

	userUC := usecase.NewUserUseCase(usecase.UserUseCaseDeps{
		Store:       store,
		Bootstrap:   bootstrap,
		Resolver:    directory.NewDetailResolver(store, loader, log),
		Projector:   directory.NewProjector(cfg.Directory.Locale),
		IDs:         ids,
		DefaultSort: cfg.Directory.DefaultSort,
		Log:         log,
	})
	editUC := usecase.NewEditUseCase(store, log)
	rosterUC := usecase.NewRosterUseCase(userUC, infrapdf.NewRosterPDFGenerator(), cfg.App.Name)

	// Carga inicial: un reload posterior la reemplaza; se desmonta al apagar.
	activation := bootstrap.Activate(context.Background())
	go func() {
		if err := activation.Run(); err != nil && !errors.Is(err, domain.ErrActivationDisposed) {
			log.Warn().Err(err).Msg("carga inicial de usuarios")
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); cfg.HTTP.SwaggerFile != "" && err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Debug().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "users": userUC.Status()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:   userUC,
		EditUC:   editUC,
		RosterUC: rosterUC,
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

	// Ningún fetch pendiente puede escribir en el almacén después de este punto.
	bootstrap.DisposeAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
