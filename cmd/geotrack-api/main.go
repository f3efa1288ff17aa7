package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/geotrack/geotrack-api/handlers"
	"github.com/geotrack/geotrack-api/internal/accesos"
	"github.com/geotrack/geotrack-api/internal/config"
	"github.com/geotrack/geotrack-api/internal/database"
	"github.com/geotrack/geotrack-api/internal/geografia"
	"github.com/geotrack/geotrack-api/internal/logs"
	"github.com/geotrack/geotrack-api/internal/respuesta"
	"github.com/geotrack/geotrack-api/internal/tokens"
	"github.com/geotrack/geotrack-api/internal/usuarios"
	"github.com/geotrack/geotrack-api/pkg/logger"
	"github.com/geotrack/geotrack-api/pkg/metrics"
	"github.com/geotrack/geotrack-api/pkg/middleware"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("no se pudo cargar la configuración: %v", err)
	}
	if cfg.JWT.Secret == "" {
		logger.Fatalf("JWT_SECRET es obligatorio")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient := conectarMongo(ctx, cfg)
	if mongoClient != nil {
		defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	}

	// repositories: Mongo-backed when available, memory otherwise
	var (
		accesoRepo  accesos.Repository
		usuarioRepo usuarios.Repository
		tokenRepo   tokens.Repository
		logRepo     logs.Repository
		paisRepo    geografia.PaisRepository
		depRepo     geografia.DepartamentoRepository
		ciudadRepo  geografia.CiudadRepository
	)
	if mongoClient != nil {
		db := mongoClient.Database(cfg.MongoDB.Database)
		accesoRepo = accesos.NewMongoRepository(db.Collection(database.ColAccesos))
		usuarioRepo = usuarios.NewMongoRepository(db.Collection(database.ColUsuarios))
		tokenRepo = tokens.NewMongoRepository(db.Collection(database.ColTokens), db.Collection(database.ColTokensExpirados))
		logRepo = logs.NewMongoRepository(db.Collection(database.ColLogs))
		paisRepo = geografia.NewPaisMongoRepository(db.Collection(database.ColPaises))
		depRepo = geografia.NewDepartamentoMongoRepository(db.Collection(database.ColDepartamentos))
		ciudadRepo = geografia.NewCiudadMongoRepository(db.Collection(database.ColCiudades))
	} else {
		logger.Warn("MongoDB no disponible, usando repositorios en memoria")
		accesoRepo = accesos.NewMemoryRepository()
		usuarioRepo = usuarios.NewMemoryRepository()
		tokenRepo = tokens.NewMemoryRepository()
		logRepo = logs.NewMemoryRepository()
		paisRepo = geografia.NewPaisMemoryRepository()
		depRepo = geografia.NewDepartamentoMemoryRepository()
		ciudadRepo = geografia.NewCiudadMemoryRepository()
	}

	auditoria := logs.NewService(logRepo)
	accesoSvc := accesos.NewService(accesoRepo)
	usuariosSvc := usuarios.NewService(usuarioRepo)
	tokensSvc := tokens.NewService(tokenRepo, cfg.Token.TTL)
	firmador := tokens.NewFirmador(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TTL)

	paisSvc := geografia.NewPaisService(paisRepo, depRepo)
	depSvc := geografia.NewDepartamentoService(depRepo, paisRepo, ciudadRepo)
	ciudadSvc := geografia.NewCiudadService(ciudadRepo, depRepo)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recuperacion(auditoria))
	if cfg.RateLimit.Enabled {
		r.Use(limitador(cfg))
	}
	r.Use(middleware.Auditoria(auditoria))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(registry)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, respuesta.Exitoso("OK", "Servicio disponible", nil))
	})

	api := r.Group("/api")
	acceso := middleware.Acceso(accesoSvc, auditoria)
	guard := middleware.Autorizacion(firmador, tokensSvc, auditoria)
	handlers.NewAuthHandler(usuariosSvc, tokensSvc, firmador, auditoria).Register(api, acceso, guard)
	handlers.NewPaisHandler(paisSvc).Register(api, guard)
	handlers.NewDepartamentoHandler(depSvc).Register(api, guard)
	handlers.NewCiudadHandler(ciudadSvc).Register(api, guard)

	if cfg.Respaldo.Endpoint != "" {
		respaldo, err := logs.NewRespaldo(cfg.Respaldo.Endpoint, cfg.Respaldo.AccessKey,
			cfg.Respaldo.SecretKey, cfg.Respaldo.Bucket, cfg.Respaldo.UseSSL, logRepo)
		if err != nil {
			logger.Errorf("respaldo de logs deshabilitado: %v", err)
		} else {
			go respaldo.Ejecutar(ctx, cfg.Respaldo.Intervalo)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("geotrack-api escuchando en %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("servidor: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("apagando geotrack-api")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("apagado forzado: %v", err)
	}
}

// conectarMongo retries the connection with a short backoff; nil means the
// service falls back to memory repositories (local development).
func conectarMongo(ctx context.Context, cfg *config.Config) *mongo.Client {
	if cfg.MongoDB.URI == "" {
		return nil
	}
	var ultimo error
	for intento := 1; intento <= 3; intento++ {
		client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err == nil {
			return client
		}
		ultimo = err
		logger.Warnf("conexión a MongoDB fallida (intento %d): %v", intento, err)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(intento) * 2 * time.Second):
		}
	}
	logger.Errorf("no se pudo conectar a MongoDB: %v", ultimo)
	return nil
}

func limitador(cfg *config.Config) gin.HandlerFunc {
	if cfg.RateLimit.UseRedis && cfg.Redis.Host != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return middleware.LimiteSolicitudesRedis(client, cfg.RateLimit.RPS, cfg.RateLimit.Burst,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)
	}
	return middleware.LimiteSolicitudes(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
}
