package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Cfg struct {
	App     App
	Logger  Logger
	Browser Browser
	Tree    Tree
}

type App struct {
	Mode string
	Host string
	Port string
}

type Logger struct {
	Env   string
	Level string
}

type Browser struct {
	Display       string
	Headless      bool
	UserDataDir   string
	BrowsersPath  string
	DismissPopups bool
	Timeout       time.Duration
}

type Tree struct {
	MaxChars     int
	MaxDepth     int
	ExcludedTags []string
	Truncate     bool
	Sanitize     bool
}

func Load() (*Cfg, error) {
	_ = godotenv.Load()

	cfg := &Cfg{
		App: App{
			Mode: env("APP_MODE", "cli"),
			Host: env("APP_HOST", "127.0.0.1"),
			Port: env("APP_PORT", "8080"),
		},
		Logger: Logger{
			Env:   env("ENV", "dev"),
			Level: env("LOG_LEVEL", "info"),
		},
		Browser: Browser{
			Display:       env("DISPLAY", ""),
			Headless:      envBool("PW_HEADLESS", true),
			UserDataDir:   env("PW_USER_DATA_DIR", ""),
			BrowsersPath:  env("PLAYWRIGHT_BROWSERS_PATH", ""),
			DismissPopups: envBool("PW_DISMISS_POPUPS", false),
			Timeout:       time.Duration(envInt("PW_TIMEOUT_SEC", 30)) * time.Second,
		},
		Tree: Tree{
			MaxChars:     envInt("TREE_MAX_CHARS", 100000),
			MaxDepth:     envInt("TREE_MAX_DEPTH", 0),
			ExcludedTags: envList("TREE_EXCLUDED_TAGS"),
			Truncate:     envBool("TREE_TRUNCATE", true),
			Sanitize:     envBool("TREE_SANITIZE", false),
		},
	}

	return cfg, nil
}

func env(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func envBool(key string, defaultValue bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}

func envList(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, strings.ToLower(item))
		}
	}
	return items
}
