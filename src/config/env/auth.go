package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
)

var (
	JwtSecret string
	// JwtExpiry is how long issued tokens stay valid.
	JwtExpiry = 24 * time.Hour
	// AdminEmail and AdminPassword seed the first user when the users table
	// is empty.
	AdminEmail     string
	AdminPassword  string
	RateLimitLogin int // Per 15 min per IP+email
)

func loadAuthEnv() {
	JwtSecret = os.Getenv("JWT_SECRET")
	if JwtSecret == "" {
		pterm.DefaultLogger.Warn("JWT_SECRET is not set, authenticated routes will reject every token")
	}

	if val := os.Getenv("JWT_EXPIRY_HOURS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			JwtExpiry = time.Duration(parsed) * time.Hour
		}
	}

	AdminEmail = os.Getenv("ADMIN_EMAIL")
	AdminPassword = os.Getenv("ADMIN_PASSWORD")

	RateLimitLogin = 10
	if val := os.Getenv("RATE_LIMIT_LOGIN"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			RateLimitLogin = parsed
		}
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Auth environment done with token expiry %s", JwtExpiry),
	)
}
