package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/geo-audit/backend/analyzer"
	"github.com/geo-audit/backend/audit"
	"github.com/geo-audit/backend/config"
	"github.com/geo-audit/backend/fetcher"
	"github.com/geo-audit/backend/logging"
	"github.com/geo-audit/backend/middleware"
	"github.com/geo-audit/backend/report"
	"github.com/geo-audit/backend/scoring"
)

var (
	auditAnalyzer *analyzer.Analyzer
	rateLimiter   *middleware.RateLimiter
)

func loadEnv() {
	// .env.development wins for local development, then plain .env.
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			logging.Log.Info("no .env file found, using environment variables")
		}
	}
}

func setupGinMode() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func main() {
	loadEnv()

	if err := logging.Init(os.Getenv("LOG_LEVEL"), ""); err != nil {
		logging.Log.WithError(err).Fatal("failed to initialize logging")
	}

	setupGinMode()

	cfg, err := config.Load(os.Getenv("GEO_CONFIG"))
	if err != nil {
		logging.Log.WithError(err).Fatal("failed to load config")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	auditAnalyzer, err = analyzer.New(dataDir,
		analyzer.WithFetcher(fetcher.New(
			fetcher.WithUserAgent(cfg.UserAgent),
			fetcher.WithTimeout(cfg.Timeout),
		)),
		analyzer.WithWeights(cfg.Weights),
	)
	if err != nil {
		logging.Log.WithError(err).Fatal("failed to initialize analyzer")
	}
	defer auditAnalyzer.Shutdown()

	rateLimiter = middleware.NewRateLimiter(2, 5)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RequestLogger())
	r.Use(rateLimiter.RateLimit())
	r.Use(corsMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "version": analyzer.Version})
		})

		api.POST("/audit", handleAudit(cfg))

		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"current": auditAnalyzer.CurrentStats(),
				"cache":   auditAnalyzer.CacheStats(),
			})
		})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}

	logging.Log.Infof("server starting on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		logging.Log.WithError(err).Fatal("failed to start server")
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type auditRequest struct {
	URL     string             `json:"url" binding:"required"`
	Format  string             `json:"format"`
	Weights map[string]float64 `json:"weights"`
}

func handleAudit(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request auditRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		opts := analyzer.AuditOptions{}
		if len(request.Weights) > 0 {
			weights := scoring.DefaultWeights()
			for key, w := range request.Weights {
				categoryKey := audit.CategoryKey(key)
				if _, known := weights[categoryKey]; !known || w < 0 {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight for " + key})
					return
				}
				weights[categoryKey] = w
			}
			opts.Weights = weights
		}

		result, err := auditAnalyzer.Audit(c.Request.Context(), request.URL, opts)
		if err != nil {
			status := http.StatusInternalServerError
			code := analyzer.CodeUnknown
			var auditErr *analyzer.AuditError
			if errors.As(err, &auditErr) {
				code = auditErr.Code
				switch auditErr.Code {
				case analyzer.CodeValidation:
					status = http.StatusBadRequest
				case analyzer.CodeFetch, analyzer.CodeTimeout:
					status = http.StatusBadGateway
				}
			}
			c.JSON(status, gin.H{"error": err.Error(), "code": code})
			return
		}

		format := request.Format
		if format == "" {
			format = cfg.Format
		}
		if format == "json" || format == "" {
			c.JSON(http.StatusOK, result)
			return
		}

		rendered, err := report.Render(result, format)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.String(http.StatusOK, rendered)
	}
}
