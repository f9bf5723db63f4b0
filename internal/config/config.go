package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App        App
	HTTP       HTTP
	Probe      Probe
	Metrics    Metrics
	TarkovDev  TarkovDev
	QuestIndex QuestIndex
	Redis      Redis
	Locale     Locale
}

type App struct {
	Name            string `env:"APP_NAME" envDefault:"tarkov-market"`
	Version         string `env:"APP_VERSION" envDefault:"dev"`
	DefaultLanguage string `env:"APP_DEFAULT_LANGUAGE" envDefault:"ja"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	LogNoColor      bool   `env:"LOG_NO_COLOR" envDefault:"false"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen  int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type TarkovDev struct {
	Endpoint       string        `env:"TARKOV_DEV_ENDPOINT" envDefault:"https://api.tarkov.dev/graphql"`
	RequestTimeout time.Duration `env:"TARKOV_DEV_REQUEST_TIMEOUT" envDefault:"20s"`
	TaskLimit      int           `env:"TARKOV_DEV_TASK_LIMIT" envDefault:"1000"`
	TaskItemLimit  int           `env:"TARKOV_DEV_TASK_ITEM_LIMIT" envDefault:"200"`
	CategoryLimit  int           `env:"TARKOV_DEV_CATEGORY_LIMIT" envDefault:"100"`
	BarterLimit    int           `env:"TARKOV_DEV_BARTER_LIMIT" envDefault:"20"`
	LogFieldMaxLen int           `env:"TARKOV_DEV_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

// QuestIndex WarmInterval <= 0 отключает периодический прогрев.
type QuestIndex struct {
	TTL          time.Duration `env:"QUEST_INDEX_TTL" envDefault:"6h"`
	WarmInterval time.Duration `env:"QUEST_INDEX_WARM_INTERVAL" envDefault:"1h"`
}

// Redis пустой адрес означает хранение индекса квестов в памяти процесса.
type Redis struct {
	Address            string `env:"REDIS_ADDRESS"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD"`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNECTIONS" envDefault:"1"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNECTIONS" envDefault:"5"`
}

func (r Redis) Enabled() bool {
	return r.Address != ""
}

type Locale struct {
	// File YAML с переопределением шаблонов отображения.
	File string `env:"LOCALE_FILE"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
