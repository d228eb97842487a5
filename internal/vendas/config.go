package vendas

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the CLI configuration.
type Config struct {
	APIURL   string
	APIToken string
	Session  Session
	Timezone string
	LogFile  string
	LogLevel string
	Brand    string // branding shown in the TUI status bar
}

// LoadConfig reads vendas.yaml from the working directory or the user config
// dir. Every key can be overridden through the environment as VENDAS_*
// (dots become underscores, e.g. VENDAS_API_URL).
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("vendas")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "vendas-cli"))
	}

	v.SetEnvPrefix("VENDAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("timezone", SaoPauloZone)
	v.SetDefault("log.level", "info")
	v.SetDefault("brand", "Vendas CLI")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
		// No file is fine as long as the environment carries the keys.
	}

	role, err := ParseRole(v.GetString("session.role"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		APIURL:   v.GetString("api.url"),
		APIToken: v.GetString("api.token"),
		Session: Session{
			ID:         v.GetString("session.id"),
			EmployeeID: v.GetString("session.employee_id"),
			Role:       role,
			Name:       v.GetString("session.name"),
		},
		Timezone: v.GetString("timezone"),
		LogFile:  v.GetString("log.file"),
		LogLevel: v.GetString("log.level"),
		Brand:    v.GetString("brand"),
	}

	if config.APIURL == "" || config.Session.ID == "" || config.Session.EmployeeID == "" {
		return nil, fmt.Errorf("missing required config: api.url, session.id, session.employee_id")
	}

	return config, nil
}
