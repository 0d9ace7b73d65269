package postgres

import (
	"fmt"
	"net/url"

	"github.com/GoSim-25-26J-441/color-picker-backend/config"
)

// DSN renders a lib/pq connection URL. Credentials are escaped so passwords
// containing spaces or '@' survive.
func DSN(cfg *config.DatabaseConfig) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": []string{sslmode}}.Encode(),
	}
	return u.String()
}
