package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Remote    RemoteConfig
	Log       LogConfig
	Directory DirectoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	SwaggerFile string // ruta al swagger.json servido en /docs (vacío = sin UI)
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RemoteConfig origen remoto de usuarios (colección de solo lectura).
type RemoteConfig struct {
	BaseURL        string
	TimeoutSeconds int // 0 = sin timeout
}

// Timeout devuelve el timeout del cliente HTTP; cero significa sin límite.
func (c RemoteConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogConfig nivel y destino opcional en archivo rotado.
type LogConfig struct {
	Level         string
	File          string
	MaxAgeHours   int
	RotationHours int
}

// DirectoryConfig parámetros de la vista proyectada y de los ids locales.
type DirectoryConfig struct {
	Locale        string // etiqueta BCP 47 para el collator (ej. "en", "es")
	DefaultSort   string // ej. "name-asc"
	SnowflakeNode int64
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, REMOTE_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "user-directory"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		Remote: RemoteConfig{
			BaseURL:        strings.TrimRight(getString(v, "REMOTE_BASE_URL", "https://jsonplaceholder.typicode.com"), "/"),
			TimeoutSeconds: getInt(v, "REMOTE_TIMEOUT_SECONDS", 0),
		},
		Log: LogConfig{
			Level:         getString(v, "LOG_LEVEL", "info"),
			File:          getString(v, "LOG_FILE", ""),
			MaxAgeHours:   getInt(v, "LOG_MAX_AGE_HOURS", 168),
			RotationHours: getInt(v, "LOG_ROTATION_HOURS", 24),
		},
		Directory: DirectoryConfig{
			Locale:        getString(v, "DIRECTORY_LOCALE", "en"),
			DefaultSort:   getString(v, "DIRECTORY_DEFAULT_SORT", "name-asc"),
			SnowflakeNode: int64(getInt(v, "SNOWFLAKE_NODE", 1)),
		},
	}

	if cfg.Remote.BaseURL == "" {
		return nil, fmt.Errorf("config: REMOTE_BASE_URL vacío")
	}
	if cfg.Directory.SnowflakeNode < 0 || cfg.Directory.SnowflakeNode > 1023 {
		return nil, fmt.Errorf("config: SNOWFLAKE_NODE fuera de rango (0-1023): %d", cfg.Directory.SnowflakeNode)
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
