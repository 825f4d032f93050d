package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"a11ytree/internal/browser"
	"a11ytree/internal/cli/commands"
	"a11ytree/internal/cli/ui"
	"a11ytree/internal/extractor"
	"a11ytree/internal/logger"

	"github.com/chzyer/readline"
)

type CLI struct {
	log            *logger.Zap
	browser        browser.Browser
	rl             *readline.Instance
	stdin          *bufio.Reader
	treeHandler    *commands.TreeHandler
	browserHandler *commands.BrowserHandler
}

func New(log *logger.Zap, br browser.Browser, ex *extractor.Extractor) *CLI {
	cli := &CLI{
		log:     log,
		browser: br,
	}

	cli.treeHandler = commands.NewTreeHandler(br, ex, log.Logger)
	cli.browserHandler = commands.NewBrowserHandler(br, log.Logger)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".a11ytree-history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Warn("Не удалось инициализировать readline, будет использован fallback режим")
		cli.stdin = bufio.NewReader(os.Stdin)
	} else {
		cli.rl = rl
	}

	return cli
}

func (c *CLI) readLine() (string, error) {
	if c.rl != nil {
		return c.rl.Readline()
	}
	print(ui.ColorCyan + "> " + ui.ColorReset)
	line, err := c.stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CLI) close() {
	if c.rl != nil {
		c.rl.Close()
	}
	c.browserHandler.Close()
}

func (c *CLI) Run(ctx context.Context) {
	ui.PrintWelcome()
	defer c.close()

	for {
		select {
		case <-ctx.Done():
			println("\n" + ui.ColorCyan + ui.IconWave + " Получен сигнал завершения..." + ui.ColorReset)
			return
		default:
		}

		line, err := c.readLine()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !c.handleCommand(ctx, line) {
			return
		}
	}
}

// handleCommand возвращает false, если пользователь завершил сессию
func (c *CLI) handleCommand(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "exit":
		println(ui.ColorCyan + ui.IconWave + " До свидания!" + ui.ColorReset)
		return false

	case "clear":
		ui.ClearScreen()

	case "open":
		if arg == "" {
			ui.PrintHelp()
			break
		}
		c.browserHandler.Open(ctx, arg)

	case "tree":
		c.treeHandler.Live(ctx, arg)

	case "yaml":
		c.treeHandler.LiveYAML(ctx, arg)

	case "file":
		if arg == "" {
			ui.PrintHelp()
			break
		}
		c.treeHandler.File(arg)

	case "close":
		c.browserHandler.Close()

	default:
		ui.PrintHelp()
	}
	return true
}
