package commands

import (
	"context"
	"fmt"
	"os"

	"a11ytree/internal/browser"
	"a11ytree/internal/cli/ui"
	"a11ytree/internal/dom"
	"a11ytree/internal/dom/htmldom"
	"a11ytree/internal/extractor"

	"go.uber.org/zap"
)

// TreeHandler строит дерево доступности для открытой страницы или HTML-файла
type TreeHandler struct {
	browser   browser.Browser
	extractor *extractor.Extractor
	log       *zap.Logger
}

func NewTreeHandler(br browser.Browser, ex *extractor.Extractor, log *zap.Logger) *TreeHandler {
	return &TreeHandler{
		browser:   br,
		extractor: ex,
		log:       log,
	}
}

// Live печатает дерево текущей страницы, selector ограничивает поддерево
func (h *TreeHandler) Live(ctx context.Context, selector string) {
	root, ok := h.snapshot(ctx, selector)
	if !ok {
		return
	}
	h.print(root)
}

// LiveYAML печатает строгий YAML текущей страницы
func (h *TreeHandler) LiveYAML(ctx context.Context, selector string) {
	root, ok := h.snapshot(ctx, selector)
	if !ok {
		return
	}
	out, err := h.extractor.YAML(root)
	if err != nil {
		h.log.Error("Ошибка сериализации YAML", zap.Error(err))
		fmt.Printf(ui.ColorRed+ui.IconCross+" Ошибка YAML:"+ui.ColorReset+" %v\n", err)
		return
	}
	fmt.Println(out)
}

// File строит дерево для локального HTML-файла
func (h *TreeHandler) File(path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf(ui.ColorRed+ui.IconCross+" Не удалось открыть файл:"+ui.ColorReset+" %v\n", err)
		return
	}
	defer f.Close()

	doc, err := htmldom.Parse(f)
	if err != nil {
		h.log.Error("Ошибка разбора HTML", zap.String("path", path), zap.Error(err))
		fmt.Printf(ui.ColorRed+ui.IconCross+" Ошибка разбора:"+ui.ColorReset+" %v\n", err)
		return
	}
	h.print(doc)
}

func (h *TreeHandler) snapshot(ctx context.Context, selector string) (dom.Node, bool) {
	if h.browser == nil {
		fmt.Println(ui.ColorRed + ui.IconCross + " Браузер не инициализирован" + ui.ColorReset)
		return nil, false
	}
	// страница могла перейти по ссылке после open
	if err := h.browser.WaitForLoadState(ctx, "load"); err != nil {
		h.log.Warn("Страница не дождалась загрузки", zap.Error(err))
	}

	root, err := h.browser.Snapshot(ctx, selector)
	if err != nil {
		h.log.Error("Ошибка снятия снимка DOM", zap.String("selector", selector), zap.Error(err))
		fmt.Printf(ui.ColorRed+ui.IconCross+" Ошибка снимка:"+ui.ColorReset+" %v\n", err)
		return nil, false
	}
	return root, true
}

func (h *TreeHandler) print(root dom.Node) {
	res := h.extractor.Extract(root)
	fmt.Println(res.Text)
	fmt.Println()
	fmt.Println(ui.FormatSummary(len(res.Nodes), len(res.Text), res.Truncated, res.Elapsed))
}
