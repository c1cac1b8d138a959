package api

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/musclemap/internal/db"
	"github.com/terraincognita07/musclemap/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	authCookieName          = "musclemap_auth"
	contextUserKey          = "current_user"
	defaultAuthTokenTTL     = 7 * 24 * time.Hour
	defaultLoginMaxAttempts = 8
	defaultLoginWindow      = 15 * time.Minute
)

type Handler struct {
	db               *gorm.DB
	secretKey        []byte
	location         *time.Location
	cookieSecure     bool
	tokenTTL         time.Duration
	loginMaxAttempts int
	loginWindow      time.Duration
	loginLimiter     *attemptLimiter
	logger           *zap.Logger

	repositories      *db.Repositories
	authService       *services.AuthService
	onboardingService *services.OnboardingService
	checkinService    *services.CheckinService
	historyService    *services.HistoryService
	planService       *services.PlanService
	setupService      *services.SetupService
}

type HandlerConfig struct {
	SecretKey        string
	Location         *time.Location
	CookieSecure     bool
	TokenTTL         time.Duration
	LoginMaxAttempts int
	LoginWindow      time.Duration
	Logger           *zap.Logger
}

func NewHandler(database *gorm.DB, cfg HandlerConfig) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("secret key is required")
	}

	handler := &Handler{
		db:               database,
		secretKey:        []byte(cfg.SecretKey),
		location:         cfg.Location,
		cookieSecure:     cfg.CookieSecure,
		tokenTTL:         cfg.TokenTTL,
		loginMaxAttempts: cfg.LoginMaxAttempts,
		loginWindow:      cfg.LoginWindow,
		loginLimiter:     newAttemptLimiter(),
		logger:           cfg.Logger,
	}
	if handler.location == nil {
		handler.location = time.UTC
	}
	if handler.tokenTTL <= 0 {
		handler.tokenTTL = defaultAuthTokenTTL
	}
	if handler.loginMaxAttempts <= 0 {
		handler.loginMaxAttempts = defaultLoginMaxAttempts
	}
	if handler.loginWindow <= 0 {
		handler.loginWindow = defaultLoginWindow
	}
	if handler.logger == nil {
		handler.logger = zap.NewNop()
	}

	return handler.withDependencies(database), nil
}
