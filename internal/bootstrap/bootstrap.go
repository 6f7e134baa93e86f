// Package bootstrap assembles the application: configuration, database,
// migrations, repositories, services and controllers.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/grupoidi/deptoweb/internal/app/controllers"
	"github.com/grupoidi/deptoweb/internal/app/migrations"
	"github.com/grupoidi/deptoweb/internal/app/repositories"
	"github.com/grupoidi/deptoweb/internal/app/routes"
	"github.com/grupoidi/deptoweb/internal/app/services"
	"github.com/grupoidi/deptoweb/internal/config"
	"github.com/grupoidi/deptoweb/internal/db"
	"github.com/grupoidi/deptoweb/internal/pkg/auth"
	"github.com/grupoidi/deptoweb/internal/pkg/email"
	"github.com/grupoidi/deptoweb/internal/pkg/filestorage"
	"github.com/grupoidi/deptoweb/internal/pkg/logger"
	"github.com/grupoidi/deptoweb/internal/seed"
)

// Application holds every wired component of the running site
type Application struct {
	Config      *config.Config
	DB          *db.PostgresDB
	JWTService  *auth.JWTService
	Dispatcher  *email.Dispatcher
	Controllers routes.Controllers
}

// NewApplication wires the whole application from configuration
func NewApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	if err := migrations.Run(ctx, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	repos := repositories.NewRepositories(database)

	if err := seed.EnsureAdmin(ctx, repos.Admin, cfg); err != nil {
		database.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}

	tokenTTL, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("jwt expiration: %w", err)
	}
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, tokenTTL)

	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("storage: %w", err)
	}

	sender := email.NewSMTPSender(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromEmail: cfg.SMTP.FromEmail,
		FromName:  cfg.SMTP.FromName,
	})
	dispatcher := email.NewDispatcher(sender, 256)

	academicoService := services.NewAcademicoService(repos.Carrera, repos.Materia, repos.Requisito)
	personalService := services.NewPersonalService(repos.Personal, repos.Proyecto, repos.PersonalProyecto)
	proyectoService := services.NewProyectoService(repos.Proyecto, repos.Personal, repos.PersonalProyecto)
	servicioService := services.NewServicioService(repos.Servicio, repos.Equipamiento, repos.ServicioEquipamiento)
	equipamientoService := services.NewEquipamientoService(repos.Equipamiento, repos.Servicio, repos.ServicioEquipamiento)
	actividadService := services.NewActividadService(repos.Actividad, repos.Equipamiento, repos.EquipamientoActividad)
	publicacionService := services.NewPublicacionService(repos.Publicacion, repos.Personal)
	blogService := services.NewBlogService(repos.Blog, repos.Subscriber, dispatcher)
	subscriberService := services.NewSubscriberService(repos.Subscriber)
	archivoService := services.NewArchivoService(repos.Archivo, storage)
	authService := services.NewAuthService(repos.Admin, jwtService)

	return &Application{
		Config:     cfg,
		DB:         database,
		JWTService: jwtService,
		Dispatcher: dispatcher,
		Controllers: routes.Controllers{
			Auth:         controllers.NewAuthController(authService),
			Academico:    controllers.NewAcademicoController(academicoService),
			Personal:     controllers.NewPersonalController(personalService),
			Proyecto:     controllers.NewProyectoController(proyectoService),
			Equipamiento: controllers.NewEquipamientoController(equipamientoService, actividadService),
			Actividad:    controllers.NewActividadController(actividadService),
			Servicio:     controllers.NewServicioController(servicioService),
			Publicacion:  controllers.NewPublicacionController(publicacionService),
			Blog:         controllers.NewBlogController(blogService, subscriberService),
			Archivo:      controllers.NewArchivoController(archivoService),
		},
	}, nil
}

// Close releases the resources held by the application
func (a *Application) Close() {
	a.Dispatcher.Close()
	a.DB.Close()
}
