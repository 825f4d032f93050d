package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"a11ytree/internal/config"
	"a11ytree/internal/dom/htmldom"
	"a11ytree/internal/extractor"
	"a11ytree/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxBodyBytes = 10 << 20

type Server struct {
	cfg       *config.Cfg
	log       *logger.Zap
	extractor *extractor.Extractor
}

func New(cfg *config.Cfg, log *logger.Zap, ex *extractor.Extractor) *Server {
	return &Server{
		cfg:       cfg,
		log:       log,
		extractor: ex,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("HTTP",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// HTML в теле запроса, дерево в ответе
	r.POST("/api/tree", s.handleTree)

	return r
}

func (s *Server) handleTree(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	doc, err := htmldom.Parse(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch c.DefaultQuery("format", "text") {
	case "text":
		res := s.extractor.Extract(doc)
		c.Header("X-Tree-Truncated", fmt.Sprint(res.Truncated))
		c.String(http.StatusOK, res.Text)
	case "yaml":
		out, err := s.extractor.YAML(doc)
		if err != nil {
			s.log.Error("yaml", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "yaml error"})
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", []byte(out))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be text or yaml"})
	}
}

// Run блокируется до отмены ctx или ошибки сервера.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.App.Host, s.cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Сервер запущен", zap.String("addr", addr))
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
