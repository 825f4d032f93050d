package browser

import (
	"context"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

var popupCloseSelectors = []string{
	"[role='dialog'] button[aria-label*='close' i]",
	"[role='dialog'] button[aria-label*='закрыть' i]",
	".modal button.close",
	".popup button.close",
	"[data-dismiss='modal']",
	"[aria-label='Close']",
	"[aria-label='Закрыть']",
}

func (b *PlaywrightBrowser) WaitForLoadState(ctx context.Context, state string) error {
	page := b.getPage()
	if page == nil {
		return ErrNotLaunched
	}

	var loadState *playwright.LoadState
	switch strings.ToLower(state) {
	case "domcontentloaded":
		loadState = playwright.LoadStateDomcontentloaded
	case "networkidle":
		loadState = playwright.LoadStateNetworkidle
	default:
		loadState = playwright.LoadStateLoad
	}

	return page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   loadState,
		Timeout: playwright.Float(float64(b.cfg.Timeout.Milliseconds())),
	})
}

// ClosePopups кликает по видимым кнопкам закрытия модальных окон и баннеров,
// чтобы они не заслоняли содержимое страницы в снимке.
func (b *PlaywrightBrowser) ClosePopups(ctx context.Context) error {
	page := b.getPage()
	if page == nil {
		return ErrNotLaunched
	}

	for _, selector := range popupCloseSelectors {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		elements, err := page.QuerySelectorAll(selector)
		if err != nil {
			continue
		}

		for _, element := range elements {
			isVisible, err := element.IsVisible()
			if err != nil || !isVisible {
				continue
			}

			if err := element.Click(); err == nil {
				time.Sleep(500 * time.Millisecond)
			}
		}
	}

	return nil
}
