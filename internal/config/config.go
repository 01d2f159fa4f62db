package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Store     Store     `mapstructure:",squash"`
	Redis     Redis     `mapstructure:",squash"`
	Meta      Meta      `mapstructure:",squash"`
	Render    Render    `mapstructure:",squash"`
	Creative  Creative  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Optimizer Optimizer `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverBolt     = "bolt"
)

type Store struct {
	Driver   string `mapstructure:"store_driver"`
	BoltPath string `mapstructure:"store_bolt_path"`
}

type Redis struct {
	Addr           string `mapstructure:"redis_addr"`
	Password       string `mapstructure:"redis_password"`
	DB             int    `mapstructure:"redis_db"`
	LockTTLSeconds int    `mapstructure:"redis_lock_ttl_seconds"`
}

type Meta struct {
	BaseURL               string    `mapstructure:"meta_base_url"`
	URL                   string    `mapstructure:"meta_url"`
	Version               string    `mapstructure:"meta_version"`
	AccessToken           string    `mapstructure:"meta_access_token"`
	AppID                 string    `mapstructure:"meta_app_id"`
	AppSecret             string    `mapstructure:"meta_app_secret"`
	LongLivedToken        string    `mapstructure:"meta_long_lived_token"`
	RequestTimeoutSeconds int       `mapstructure:"meta_request_timeout_seconds"`
	TokenExpiresAt        time.Time `mapstructure:"-"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

// Creative configura o serviço externo de renderização de criativos
type Creative struct {
	ServiceURL            string `mapstructure:"creative_service_url"`
	APIKey                string `mapstructure:"creative_service_api_key"`
	RequestTimeoutSeconds int    `mapstructure:"creative_request_timeout_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret               string `mapstructure:"auth_secret"`
	OperatorEmail        string `mapstructure:"auth_operator_email"`
	OperatorPasswordHash string `mapstructure:"auth_operator_password_hash"`
}

type Optimizer struct {
	SweepEnabled                 bool    `mapstructure:"optimizer_sweep_enabled"`
	SweepIntervalMinutes         int     `mapstructure:"optimizer_sweep_interval_minutes"`
	SweepCron                    string  `mapstructure:"optimizer_sweep_cron"`
	CycleTimeoutSeconds          int     `mapstructure:"optimizer_cycle_timeout_seconds"`
	WindowDays                   int     `mapstructure:"optimizer_window_days"`
	MinHoursBetweenRuns          int     `mapstructure:"optimizer_min_hours_between_runs"`
	MinHoursBetweenAdsetCreation int     `mapstructure:"optimizer_min_hours_between_adset_creation"`
	MaxNewAdsPerAdset            int     `mapstructure:"optimizer_max_new_ads_per_adset"`
	RecentRunsLimit              int     `mapstructure:"optimizer_recent_runs_limit"`
	MinImpressions               int64   `mapstructure:"optimizer_min_impressions"`
	MinSpend                     float64 `mapstructure:"optimizer_min_spend"`
	CTRDropPct                   float64 `mapstructure:"optimizer_ctr_drop_pct"`
	FreqMax                      float64 `mapstructure:"optimizer_freq_max"`
}

// RecordTimeoutSeconds é o prazo da gravação do ciclo, feita com a trava da campanha ainda ativa
const RecordTimeoutSeconds = 30

// CycleTimeout retorna o prazo máximo de um ciclo de otimização
func (o Optimizer) CycleTimeout() time.Duration {
	return time.Duration(o.CycleTimeoutSeconds) * time.Second
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creative_rotation?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", false)

	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	viper.SetDefault("STORE_BOLT_PATH", "data/optimizer.db")

	viper.SetDefault("REDIS_ADDR", "") // Vazio usa trava em memória
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_LOCK_TTL_SECONDS", 900)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("CREATIVE_SERVICE_URL", "http://localhost:8081")
	viper.SetDefault("CREATIVE_SERVICE_API_KEY", "")
	viper.SetDefault("CREATIVE_REQUEST_TIMEOUT_SECONDS", 60)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_OPERATOR_EMAIL", "")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "")

	// Defaults do motor de otimização
	viper.SetDefault("OPTIMIZER_SWEEP_ENABLED", false)
	viper.SetDefault("OPTIMIZER_SWEEP_INTERVAL_MINUTES", 60)               // Varredura a cada hora
	viper.SetDefault("OPTIMIZER_SWEEP_CRON", "")                           // Quando definido, substitui o intervalo
	viper.SetDefault("OPTIMIZER_CYCLE_TIMEOUT_SECONDS", 600)               // 10 minutos por campanha
	viper.SetDefault("OPTIMIZER_WINDOW_DAYS", 3)                           // Janelas de 3 dias
	viper.SetDefault("OPTIMIZER_MIN_HOURS_BETWEEN_RUNS", 24)               // 1 execução por dia
	viper.SetDefault("OPTIMIZER_MIN_HOURS_BETWEEN_ADSET_CREATION", 48)     // 2 dias entre criações no mesmo conjunto
	viper.SetDefault("OPTIMIZER_MAX_NEW_ADS_PER_ADSET", 2)                 // Raio de impacto por ciclo
	viper.SetDefault("OPTIMIZER_RECENT_RUNS_LIMIT", 10)                    // Execuções retornadas no status
	viper.SetDefault("OPTIMIZER_MIN_IMPRESSIONS", 1000)
	viper.SetDefault("OPTIMIZER_MIN_SPEND", 10)
	viper.SetDefault("OPTIMIZER_CTR_DROP_PCT", 0.2)
	viper.SetDefault("OPTIMIZER_FREQ_MAX", 4)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita combinações que impediriam o motor de operar com segurança
func (c *Config) Validate() error {
	if c.Store.Driver != StoreDriverPostgres && c.Store.Driver != StoreDriverBolt {
		return fmt.Errorf("config: STORE_DRIVER inválido: %q", c.Store.Driver)
	}

	if c.Optimizer.WindowDays <= 0 {
		return fmt.Errorf("config: OPTIMIZER_WINDOW_DAYS deve ser positivo")
	}

	if c.Optimizer.SweepEnabled && c.Optimizer.SweepCron == "" && c.Optimizer.SweepIntervalMinutes <= 0 {
		return fmt.Errorf("config: OPTIMIZER_SWEEP_INTERVAL_MINUTES deve ser positivo")
	}

	if c.Optimizer.MaxNewAdsPerAdset <= 0 {
		return fmt.Errorf("config: OPTIMIZER_MAX_NEW_ADS_PER_ADSET deve ser positivo")
	}

	if c.Redis.Addr != "" {
		return c.validateLockTTL()
	}

	return nil
}

// validateLockTTL garante que a chave da trava no Redis não expire antes do ciclo e da gravação terminarem
func (c *Config) validateLockTTL() error {
	if c.Optimizer.CycleTimeoutSeconds <= 0 {
		return fmt.Errorf("config: OPTIMIZER_CYCLE_TIMEOUT_SECONDS deve ser positivo quando REDIS_ADDR está definido")
	}

	if c.Redis.LockTTLSeconds <= 0 {
		return fmt.Errorf("config: REDIS_LOCK_TTL_SECONDS deve ser positivo")
	}

	minTTL := c.Optimizer.CycleTimeoutSeconds + RecordTimeoutSeconds
	if c.Redis.LockTTLSeconds <= minTTL {
		return fmt.Errorf("config: REDIS_LOCK_TTL_SECONDS (%d) deve ser maior que OPTIMIZER_CYCLE_TIMEOUT_SECONDS + %d (%d)",
			c.Redis.LockTTLSeconds, RecordTimeoutSeconds, minTTL)
	}

	return nil
}

// ApplySecrets usa o token do Meta persistido no armazenamento de segredos quando o ambiente não define um
func (c *Config) ApplySecrets(ctx context.Context, storage SecretStorage) error {
	secretsByCode, err := storage.ListSecrets(ctx)
	if err != nil {
		return fmt.Errorf("config: erro ao obter secrets: %w", err)
	}

	if token, ok := secretsByCode[MetaAccessTokenSecret]; ok && token != "" {
		c.Meta.AccessToken = token
		c.Meta.LongLivedToken = token
	}

	return nil
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
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
