package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config mengelompokkan konfigurasi aplikasi (dibaca via Viper dari env dan opsional file).
type Config struct {
	App  AppConfig
	JWT  JWTConfig
	HTTP HTTPConfig
}

// AppConfig konfigurasi umum aplikasi.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// JWTConfig konfigurasi JWT untuk sesi login.
type JWTConfig struct {
	Secret     string
	Expiration int // menit
	Issuer     string
}

// HTTPConfig konfigurasi server HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr mengembalikan alamat listen (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load membaca konfigurasi dari environment variable (dan opsional dari file).
// Env var selalu menang. Nama yang diharapkan: APP_ENV, HTTP_PORT, JWT_SECRET, dst.
func Load() (*Config, error) {
	v := viper.New()

	// Opsional: file konfigurasi (.env atau config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // abaikan error bila file tidak ada

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // abaikan error bila file tidak ada

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "umkone-api"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "umkone-dev-secret"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "umkone"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
