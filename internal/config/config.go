package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// HTTP
	Port        string   `envconfig:"APP_PORT" default:"8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	// DB
	MySQLDSN string `envconfig:"MYSQL_DSN" default:"user:pass@tcp(mysql:3306)/clothify?parseTime=true"`
	// Media
	UploadDir      string `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxUploadBytes int64  `envconfig:"MAX_UPLOAD_BYTES" default:"10485760"`
	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" default:"dev-secret"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"1440"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

func (c App) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpireMin) * time.Minute
}
