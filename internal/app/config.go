package app

import (
	"time"

	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/utils"
)

type Config struct {
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	CardGenBaseURL string
	CardGenAPIKey  string

	ProfileSyncBaseURL string
	ProfileSyncAPIKey  string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	return Config{
		JWTSecretKey:       jwtSecretKey,
		AccessTokenTTL:     time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL:    time.Duration(refreshTokenTTLSeconds) * time.Second,
		CardGenBaseURL:     utils.GetEnv("CARDGEN_BASE_URL", "", log),
		CardGenAPIKey:      utils.GetEnv("CARDGEN_API_KEY", "", log),
		ProfileSyncBaseURL: utils.GetEnv("PROFILE_SYNC_BASE_URL", "", log),
		ProfileSyncAPIKey:  utils.GetEnv("PROFILE_SYNC_API_KEY", "", log),
	}
}
