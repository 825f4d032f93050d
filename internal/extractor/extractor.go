package extractor

import (
	"time"

	"a11ytree/internal/a11y"
	"a11ytree/internal/dom"
	"a11ytree/internal/render"
	"a11ytree/internal/sanitizer"

	"go.uber.org/zap"
)

type Config struct {
	ExcludedTags []string
	MaxDepth     int
	// MaxChars ограничивает длину текста, 0 отключает лимит.
	MaxChars int
	Truncate bool
	Sanitize bool
}

func DefaultConfig() Config {
	return Config{
		MaxChars: render.DefaultMaxChars,
		Truncate: true,
	}
}

type Result struct {
	Nodes     []a11y.Node
	Text      string
	Truncated bool
	Elapsed   time.Duration
}

// Extractor связывает построитель, усечение повторов, санитайзер и рендер.
// Не хранит состояния между вызовами.
type Extractor struct {
	cfg       Config
	builder   *a11y.Builder
	sanitizer *sanitizer.DataSanitizer
	log       *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Extractor{
		cfg: cfg,
		builder: a11y.NewBuilder(a11y.Options{
			ExcludedTags: cfg.ExcludedTags,
			MaxDepth:     cfg.MaxDepth,
		}),
		log: log,
	}
	if cfg.Sanitize {
		e.sanitizer = sanitizer.New()
	}
	return e
}

// Tree строит и при необходимости усекает дерево, не сериализуя его.
func (e *Extractor) Tree(root dom.Node) []a11y.Node {
	nodes := e.builder.Build(root)
	if e.cfg.Truncate {
		nodes = a11y.Truncate(nodes)
	}
	if e.sanitizer != nil {
		nodes = e.sanitizer.SanitizeTree(nodes)
	}
	return nodes
}

// Extract строит дерево и его текстовое представление с ограничением длины.
func (e *Extractor) Extract(root dom.Node) Result {
	start := time.Now()

	nodes := e.Tree(root)
	text, truncated := render.Cap(render.Tree(nodes), e.cfg.MaxChars)

	res := Result{
		Nodes:     nodes,
		Text:      text,
		Truncated: truncated,
		Elapsed:   time.Since(start),
	}

	e.log.Debug("Дерево доступности построено",
		zap.Int("roots", len(nodes)),
		zap.Int("chars", len(text)),
		zap.Bool("truncated", truncated),
		zap.Duration("elapsed", res.Elapsed),
	)
	if truncated {
		e.log.Warn("Текст дерева обрезан по лимиту", zap.Int("max_chars", e.cfg.MaxChars))
	}

	return res
}

// YAML возвращает строгий YAML того же дерева.
func (e *Extractor) YAML(root dom.Node) (string, error) {
	return render.StrictYAML(e.Tree(root))
}
