package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	POS                 POS                 `mapstructure:",squash"`
	Credential          Credential          `mapstructure:",squash"`
	Animation           Animation           `mapstructure:",squash"`
	Admin               Admin               `mapstructure:",squash"`
	SummarySnapshotSync SummarySnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string        `mapstructure:"host"`
	Port               string        `mapstructure:"port"`
	AllowedOrigins     []string      `mapstructure:"allowed_origins"`
	SummaryWaitTimeout time.Duration `mapstructure:"summary_wait_timeout"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// POS aponta para a API do backend do PDV que agrega as vendas
type POS struct {
	URL            string        `mapstructure:"pos_api_url"`
	SummaryPath    string        `mapstructure:"pos_summary_path"`
	RequestTimeout time.Duration `mapstructure:"pos_request_timeout"`
}

type Credential struct {
	StorePath  string `mapstructure:"credential_store_path"`
	Key        string `mapstructure:"credential_key"`
	CookieName string `mapstructure:"token_cookie_name"`
}

type Animation struct {
	Duration time.Duration `mapstructure:"animation_duration"`
	FPS      int           `mapstructure:"animation_fps"`
}

type Admin struct {
	User         string `mapstructure:"admin_user"`
	PasswordHash string `mapstructure:"admin_password_hash"`
}

type SummarySnapshotSync struct {
	CronSchedule string `mapstructure:"summary_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"summary_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("SUMMARY_WAIT_TIMEOUT", 45*time.Second)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/salesmap")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("POS_API_URL", "https://pos-backend-jwt-auth.onrender.com")
	viper.SetDefault("POS_SUMMARY_PATH", "/api/bill/bills/summary")
	viper.SetDefault("POS_REQUEST_TIMEOUT", 30*time.Second)

	viper.SetDefault("CREDENTIAL_STORE_PATH", "./data/storage.json")
	viper.SetDefault("CREDENTIAL_KEY", "token")
	viper.SetDefault("TOKEN_COOKIE_NAME", "token")

	viper.SetDefault("ANIMATION_DURATION", 2*time.Second) // mesma duração do contador do front antigo
	viper.SetDefault("ANIMATION_FPS", 30)

	viper.SetDefault("ADMIN_USER", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "") // vazio desabilita as rotas administrativas

	viper.SetDefault("SUMMARY_SNAPSHOT_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SUMMARY_SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.POS.URL = strings.TrimRight(config.POS.URL, "/")

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica os valores que impediriam o dashboard de funcionar
func (c *Config) Validate() error {
	var problems []string

	if parsed, err := url.Parse(c.POS.URL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		problems = append(problems, fmt.Sprintf("POS_API_URL inválida: %q", c.POS.URL))
	}

	if !strings.HasPrefix(c.POS.SummaryPath, "/") {
		problems = append(problems, fmt.Sprintf("POS_SUMMARY_PATH deve começar com '/': %q", c.POS.SummaryPath))
	}

	if c.POS.RequestTimeout <= 0 {
		problems = append(problems, "POS_REQUEST_TIMEOUT deve ser positivo")
	}

	if c.Server.SummaryWaitTimeout <= 0 {
		problems = append(problems, "SUMMARY_WAIT_TIMEOUT deve ser positivo")
	}

	if c.Animation.Duration <= 0 {
		problems = append(problems, "ANIMATION_DURATION deve ser positivo")
	}

	if c.Animation.FPS < 1 || c.Animation.FPS > 120 {
		problems = append(problems, fmt.Sprintf("ANIMATION_FPS deve estar entre 1 e 120, recebido %d", c.Animation.FPS))
	}

	if c.Credential.Key == "" {
		problems = append(problems, "CREDENTIAL_KEY não pode ser vazio")
	}

	if c.SummarySnapshotSync.Enabled && c.SummarySnapshotSync.CronSchedule == "" {
		problems = append(problems, "SUMMARY_SNAPSHOT_SYNC_CRON é obrigatório quando a sincronização está habilitada")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuração inválida:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// AdminEnabled indica se as rotas administrativas devem ser registradas
func (c *Config) AdminEnabled() bool {
	return c.Admin.User != "" && c.Admin.PasswordHash != ""
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
