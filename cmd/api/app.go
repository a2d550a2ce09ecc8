package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/docs"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/api/route"
	"github.com/hugohenrick/vcontrol-pro/internal/adapter/repository"
	"github.com/hugohenrick/vcontrol-pro/internal/config"
	"github.com/hugohenrick/vcontrol-pro/internal/infrastructure/blobstore"
	"github.com/hugohenrick/vcontrol-pro/internal/infrastructure/database"
	"github.com/hugohenrick/vcontrol-pro/internal/service"
	"github.com/hugohenrick/vcontrol-pro/pkg/auth"
	"github.com/hugohenrick/vcontrol-pro/pkg/logger"
	"github.com/hugohenrick/vcontrol-pro/pkg/middleware"
	"github.com/hugohenrick/vcontrol-pro/pkg/pkcs12"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// App representa a aplicação e suas dependências
type App struct {
	cfg    *config.Config
	log    logger.Logger
	router *gin.Engine
	blob   blobstore.Blob
	server *http.Server
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	blob, err := openBlob(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	// Carregar o estado das empresas
	store := repository.NewStore(blob, cfg.Store.StorageKey, log)
	if err := store.Load(ctx); err != nil {
		blob.Close()
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration)
	if err != nil {
		blob.Close()
		return nil, err
	}
	svc := service.New(service.Deps{Repository: store, Logger: log})

	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	docs.SwaggerInfo.BasePath = cfg.BasePath
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	route.Setup(router.Group(cfg.BasePath), svc, jwtService, repository.NewCompanyValidator(store), log)

	return &App{
		cfg:    cfg,
		log:    log,
		router: router,
		blob:   blob,
	}, nil
}

// openBlob abre o armazenamento escolhido em STORE_DRIVER
func openBlob(ctx context.Context, cfg *config.Config, log logger.Logger) (blobstore.Blob, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		log.Warn("Usando armazenamento em memória, os dados serão perdidos ao encerrar")
		return blobstore.NewMemory(), nil
	case config.DriverFile:
		return blobstore.NewFile(cfg.Store.FilePath)
	case config.DriverPostgres:
		if err := database.RunMigrations(cfg.Store.Postgres.ConnectionString(), log); err != nil {
			return nil, err
		}
		pool, err := database.NewPostgresPool(ctx, cfg.Store.Postgres)
		if err != nil {
			return nil, err
		}
		return blobstore.NewPostgres(pool), nil
	case config.DriverMongo:
		return blobstore.NewMongo(ctx, cfg.Store.MongoURI, cfg.Store.MongoDB)
	case config.DriverMySQL:
		return blobstore.NewMySQL(cfg.Store.MySQLDSN, log)
	}
	return nil, fmt.Errorf("%w: %s", config.ErrInvalidDriver, cfg.Store.Driver)
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.LockHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// Start atende as requisições até ctx ser cancelado. Com TLS_PFX_PATH
// configurado o servidor usa o certificado .pfx informado.
func (a *App) Start(ctx context.Context) error {
	a.server = &http.Server{
		Addr:              ":" + a.cfg.HTTPPort,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if a.cfg.TLSCertPath != "" {
		tlsConfig, err := pkcs12.LoadTLSConfig(a.cfg.TLSCertPath, a.cfg.TLSCertPassword)
		if err != nil {
			return err
		}
		a.server.TLSConfig = tlsConfig
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Servidor iniciado", "port", a.cfg.HTTPPort, "tls", a.server.TLSConfig != nil)
		var err error
		if a.server.TLSConfig != nil {
			err = a.server.ListenAndServeTLS("", "")
		} else {
			err = a.server.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("Encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.server.Shutdown(shutdownCtx)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.blob != nil {
		if err := a.blob.Close(); err != nil {
			a.log.Warn("Erro ao fechar armazenamento", "error", err)
		}
	}
}
