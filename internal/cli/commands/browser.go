package commands

import (
	"context"
	"fmt"
	"strings"

	"a11ytree/internal/browser"
	"a11ytree/internal/cli/ui"

	"go.uber.org/zap"
)

// BrowserHandler обрабатывает команды браузера
type BrowserHandler struct {
	browser browser.Browser
	log     *zap.Logger
}

func NewBrowserHandler(br browser.Browser, log *zap.Logger) *BrowserHandler {
	return &BrowserHandler{
		browser: br,
		log:     log,
	}
}

// Open запускает браузер (если нужно) и открывает URL
func (h *BrowserHandler) Open(ctx context.Context, url string) {
	if h.browser == nil {
		fmt.Println(ui.ColorRed + ui.IconCross + " Браузер не инициализирован" + ui.ColorReset)
		return
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	fmt.Println(ui.ColorCyan + ui.IconGlobe + " Запуск браузера..." + ui.ColorReset)
	if err := h.browser.Launch(ctx); err != nil {
		h.log.Error("Ошибка запуска браузера", zap.Error(err))
		fmt.Printf(ui.ColorRed+ui.IconCross+" Ошибка запуска:"+ui.ColorReset+" %v\n", err)
		return
	}

	fmt.Printf(ui.ColorCyan+ui.IconArrow+" Открытие %s..."+ui.ColorReset+"\n", url)
	if err := h.browser.Navigate(ctx, url); err != nil {
		h.log.Error("Ошибка навигации", zap.String("url", url), zap.Error(err))
		fmt.Printf(ui.ColorRed+ui.IconCross+" Ошибка навигации:"+ui.ColorReset+" %v\n", err)
		return
	}

	h.log.Info("Страница открыта", zap.String("url", h.browser.URL()))
	fmt.Println(ui.ColorGreen + ui.IconCheckmark + " Страница открыта" + ui.ColorReset)
	fmt.Println(ui.ColorGray + "Используйте '" + ui.ColorYellow + "tree" + ui.ColorGray + "' для снятия дерева доступности" + ui.ColorReset)
}

// Close закрывает браузер
func (h *BrowserHandler) Close() {
	if h.browser == nil {
		return
	}
	if err := h.browser.Close(); err != nil {
		h.log.Warn("Ошибка закрытия браузера", zap.Error(err))
		return
	}
	fmt.Println(ui.ColorGray + "Браузер закрыт" + ui.ColorReset)
}
