package app

import (
	"fmt"

	"cofoundermatch_backend/database"
	"cofoundermatch_backend/internal/config"
	"cofoundermatch_backend/internal/handlers"
	"cofoundermatch_backend/internal/logger"
	"cofoundermatch_backend/internal/middleware"
	"cofoundermatch_backend/internal/routes"
	"cofoundermatch_backend/internal/services"
	"cofoundermatch_backend/internal/services/oauth"
	"cofoundermatch_backend/internal/services/sms"
	"cofoundermatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run assembles and starts the HTTP server. It only returns on startup
// failure; serving errors are fatal.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development" || cfg.Server.Env == "test")

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}

	router := SetupRouter(db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}

// SetupRouter builds the full gin engine. Tests call this directly against
// their own DB handle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.GetConfig()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := services.NewServiceContainer(newSMSProvider(cfg))
	h := handlers.NewAppHandlers(svc, newOAuthProvider(cfg))

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)

	routes.SetupRoutes(r, h)
	return r
}

// newSMSProvider returns Twilio when credentials are configured and the
// logging mock otherwise, so local development works without an account.
func newSMSProvider(cfg *config.Config) sms.Provider {
	if cfg.Twilio.AccountSID != "" && cfg.Twilio.AuthToken != "" {
		return sms.NewTwilioProvider(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber)
	}
	logger.Warn("twilio credentials missing, using mock SMS provider")
	return NewMockSMSProvider()
}

func newOAuthProvider(cfg *config.Config) oauth.Provider {
	return oauth.NewGithubClient(cfg.Github.ClientID, cfg.Github.ClientSecret, cfg.Github.CallbackURL)
}
