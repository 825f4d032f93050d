package browser

import (
	"context"
	"errors"
	"sync"
	"time"

	"a11ytree/internal/dom"

	"github.com/playwright-community/playwright-go"
)

var ErrNotLaunched = errors.New("браузер не запущен")

type Browser interface {
	Launch(ctx context.Context) error
	Navigate(ctx context.Context, url string) error
	WaitForLoadState(ctx context.Context, state string) error
	// Snapshot снимает DOM под selector (по умолчанию body) одним вызовом в страницу.
	Snapshot(ctx context.Context, selector string) (dom.Node, error)
	URL() string
	Close() error
}

// driver: процесс playwright, который нужно остановить при закрытии.
type driver interface {
	Stop() error
}

type PlaywrightBrowser struct {
	mu      sync.RWMutex
	pw      driver
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	cfg     Config
}

type Config struct {
	Headless        bool
	UserDataDir     string
	BrowsersPath    string
	Display         string
	DismissPopups   bool
	Timeout         time.Duration
	NavigateTimeout time.Duration
}
