package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"a11ytree/internal/browser"
	"a11ytree/internal/cli"
	"a11ytree/internal/config"
	"a11ytree/internal/extractor"
	"a11ytree/internal/logger"
	"a11ytree/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ex := extractor.New(extractor.Config{
		ExcludedTags: cfg.Tree.ExcludedTags,
		MaxDepth:     cfg.Tree.MaxDepth,
		MaxChars:     cfg.Tree.MaxChars,
		Truncate:     cfg.Tree.Truncate,
		Sanitize:     cfg.Tree.Sanitize,
	}, log.Logger)

	if cfg.App.Mode == "server" {
		if err := server.New(cfg, log, ex).Run(ctx); err != nil {
			log.Fatal("Ошибка HTTP сервера", zap.Error(err))
		}
		return
	}

	br := browser.New(browser.Config{
		Headless:      cfg.Browser.Headless,
		UserDataDir:   cfg.Browser.UserDataDir,
		BrowsersPath:  cfg.Browser.BrowsersPath,
		Display:       cfg.Browser.Display,
		DismissPopups: cfg.Browser.DismissPopups,
		Timeout:       cfg.Browser.Timeout,
	})

	console := cli.New(log, br, ex)
	console.Run(ctx)
}
