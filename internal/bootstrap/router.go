package bootstrap

import (
	"database/sql"
	"math"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpapi "github.com/GoSim-25-26J-441/color-picker-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/api/http/routes"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	DB             *sql.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	RequestTimeout time.Duration
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ZapLogger(dep.Logger))
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, pinger(dep.DB), dep.Redis)
	healthHandler.RegisterRoutes(r)
	httpapi.RegisterWelcome(r)

	api := r.Group("/api/v1")
	api.Use(middleware.Timeout(dep.RequestTimeout))
	if l := limiter(dep); l != nil {
		api.Use(middleware.RateLimit(l))
	}
	routes.RegisterV1(api, routes.V1Deps{DB: dep.DB})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// limiter prefers the shared Redis window so replicas enforce one budget.
func limiter(dep RouterDeps) middleware.Limiter {
	if dep.RateLimitRPS <= 0 {
		return nil
	}
	if dep.Redis != nil {
		return middleware.NewRedisLimiter(dep.Redis, int(math.Ceil(dep.RateLimitRPS)), time.Second)
	}
	return middleware.NewLocalLimiter(dep.RateLimitRPS, dep.RateLimitBurst)
}

// pinger keeps a nil *sql.DB from becoming a non-nil interface.
func pinger(db *sql.DB) httpapi.Pinger {
	if db == nil {
		return nil
	}
	return db
}
