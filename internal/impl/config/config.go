package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/stocktake/stocktake/internal/domain/errors"
)

type Config struct {
	BaseURL  string
	Username string
	Password string
	logger   *zap.Logger
}

var (
	configInstance *Config
	initError      error
	once           sync.Once
)

// InitConfig loads credentials for the inventory service. A local .env file
// is loaded first so its values win over the process environment; missing
// credentials are a fatal configuration error, raised before any client is
// constructed. The first result, success or failure, is what every later
// call returns.
func InitConfig() (*Config, error) {
	once.Do(func() {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err := config.Build()
		if err != nil {
			logger = zap.NewNop()
			initError = fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		// Load .env file
		if err := godotenv.Overload(); err != nil {
			if os.IsNotExist(err) {
				logger.Warn("No .env file found; falling back to system environment variables")
			} else {
				initError = fmt.Errorf("failed to load .env file: %w", err)
				logger.Error("Config file load error", zap.Error(err))
				return
			}
		} else {
			logger.Debug("Successfully loaded .env file")
		}

		baseURL := os.Getenv("HOMEBOX_URL")
		username := os.Getenv("HOMEBOX_USERNAME")
		password := os.Getenv("HOMEBOX_PASSWORD")

		var missing []string
		if baseURL == "" {
			missing = append(missing, "HOMEBOX_URL")
		}
		if username == "" {
			missing = append(missing, "HOMEBOX_USERNAME")
		}
		if password == "" {
			missing = append(missing, "HOMEBOX_PASSWORD")
		}
		if len(missing) > 0 {
			initError = errors.ValidationErrorf("missing required configuration: %s", strings.Join(missing, ", "))
			return
		}

		logger.Debug("Loaded inventory service configuration",
			zap.String("base_url", baseURL),
			zap.String("username", username),
			zap.String("password", MaskKey(password)))

		configInstance = &Config{
			BaseURL:  baseURL,
			Username: username,
			Password: password,
			logger:   logger,
		}
	})

	if initError != nil {
		return nil, initError
	}
	return configInstance, nil
}

// MaskKey hides all but the last four characters of a secret for logging.
func MaskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
