package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Режимы сбора лент. В режиме sfeed сбор и конвертация выполняются
// внешними командами набора sfeed; в режиме direct ленты загружаются
// и конвертируются самим приложением.
const (
	ModeSfeed  = "sfeed"
	ModeDirect = "direct"
)

// Config представляет основную конфигурацию генератора новостной страницы.
// Содержит настройки логгера и конвейера обработки лент.
type Config struct {
	Logger LoggerConfig `json:"logger"`
	App    AppConfig    `json:"app"`
}

// LoggerConfig содержит настройки системы логирования.
// Определяет уровень детализации логов (debug, info, warn, error).
type LoggerConfig struct {
	Level string `json:"level"`
}

// FeedSource представляет конфигурацию отдельной RSS-ленты режима direct.
// Содержит уникальное имя ленты и URL для загрузки контента.
type FeedSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AppConfig содержит настройки конвейера генерации страницы.
// Включает режим сбора, внешние команды, пути рабочих файлов,
// окно свежести и список источников режима direct.
type AppConfig struct {
	FetchMode       string       `json:"fetch_mode"`
	FetchCommand    string       `json:"fetch_command"`
	ConvertCommand  string       `json:"convert_command"`
	SfeedrcPath     string       `json:"sfeedrc_path"`
	FeedsDir        string       `json:"feeds_dir"`
	ResultPath      string       `json:"result_path"`
	OutputPath      string       `json:"output_path"`
	RetentionWindow string       `json:"retention_window"`
	EscapeHTML      bool         `json:"escape_html"`
	FeedSources     []FeedSource `json:"feed_sources"`
	FetchRPS        float64      `json:"fetch_rps"`
}

// Window возвращает окно свежести как длительность.
// Вызывается после Validate; для некорректного значения возвращает
// окно по умолчанию в четыре дня.
func (c *AppConfig) Window() time.Duration {
	window, err := time.ParseDuration(c.RetentionWindow)
	if err != nil {
		return 4 * 24 * time.Hour
	}
	return window
}

// Load загружает конфигурацию из JSON-файла по указанному пути.
// Отсутствующий файл не считается ошибкой: тогда действуют значения
// по умолчанию. После чтения файла применяются переопределения из
// переменных окружения; файл .env подхватывается автоматически.
func Load(configPath string) (*Config, error) {
	cfg := New()

	_ = godotenv.Load()

	fileData, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(fileData, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON from file %s: %w", configPath, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// New создает новый экземпляр Config с значениями по умолчанию.
// Значения повторяют рабочие файлы и команды прежнего генератора.
func New() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level: "info",
		},
		App: AppConfig{
			FetchMode:       ModeSfeed,
			FetchCommand:    "sfeed_update",
			ConvertCommand:  "sfeed_json",
			SfeedrcPath:     "sfeedrc",
			FeedsDir:        "feeds",
			ResultPath:      "result.json",
			OutputPath:      "public/index.html",
			RetentionWindow: "96h",
			FeedSources:     []FeedSource{},
			FetchRPS:        2,
		},
	}
}

// applyEnv применяет переопределения из переменных окружения.
// Пустая переменная оставляет значение из файла или по умолчанию.
func (c *Config) applyEnv() {
	c.Logger.Level = getenv("NEWSPAGE_LOG_LEVEL", c.Logger.Level)
	c.App.FetchMode = getenv("NEWSPAGE_FETCH_MODE", c.App.FetchMode)
	c.App.SfeedrcPath = getenv("NEWSPAGE_SFEEDRC", c.App.SfeedrcPath)
	c.App.FeedsDir = getenv("NEWSPAGE_FEEDS_DIR", c.App.FeedsDir)
	c.App.ResultPath = getenv("NEWSPAGE_RESULT_PATH", c.App.ResultPath)
	c.App.OutputPath = getenv("NEWSPAGE_OUTPUT_PATH", c.App.OutputPath)
	c.App.RetentionWindow = getenv("NEWSPAGE_RETENTION_WINDOW", c.App.RetentionWindow)
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Validate проверяет корректность конфигурации.
// Проверяет режим сбора с его обязательными полями, пути рабочих файлов
// и окно свежести. Возвращает ошибку с описанием первой найденной проблемы.
func (c *Config) Validate() error {
	switch c.App.FetchMode {
	case ModeSfeed:
		if c.App.FetchCommand == "" {
			return fmt.Errorf("app.fetch_command is not set")
		}
		if c.App.ConvertCommand == "" {
			return fmt.Errorf("app.convert_command is not set")
		}
		if c.App.SfeedrcPath == "" {
			return fmt.Errorf("app.sfeedrc_path is not set")
		}
	case ModeDirect:
		if len(c.App.FeedSources) == 0 {
			return fmt.Errorf("app.feed_sources must not be empty in direct mode")
		}
		for _, feed := range c.App.FeedSources {
			if _, err := url.ParseRequestURI(feed.URL); err != nil {
				return fmt.Errorf("invalid url in app.feed_sources: %s", feed.URL)
			}
			if feed.Name == "" {
				return fmt.Errorf("feed name cannot be empty for url: %s", feed.URL)
			}
			if strings.ContainsAny(feed.Name, `/\`) {
				return fmt.Errorf("feed name must not contain path separators: %s", feed.Name)
			}
		}
		if c.App.FetchRPS <= 0 {
			return fmt.Errorf("app.fetch_rps must be a positive number")
		}
	default:
		return fmt.Errorf("unknown app.fetch_mode: %s", c.App.FetchMode)
	}
	if c.App.FeedsDir == "" {
		return fmt.Errorf("app.feeds_dir is not set")
	}
	if c.App.ResultPath == "" {
		return fmt.Errorf("app.result_path is not set")
	}
	if c.App.OutputPath == "" {
		return fmt.Errorf("app.output_path is not set")
	}
	window, err := time.ParseDuration(c.App.RetentionWindow)
	if err != nil {
		return fmt.Errorf("invalid app.retention_window: %w", err)
	}
	if window <= 0 {
		return fmt.Errorf("app.retention_window must be positive")
	}
	return nil
}
