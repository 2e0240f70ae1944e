package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"sportui/internal/config"
	"sportui/internal/sport"
	"sportui/internal/sport/store"
	"sportui/internal/telemetry"
	"sportui/internal/ui"
)

func main() {
	demo := flag.Bool("demo", false, "start with sample exercises and an account")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sportui [flags]\n\n")
		fmt.Fprintf(os.Stderr, "sportui is a terminal exercise tracker.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "sportui needs an interactive terminal")
		os.Exit(1)
	}
	if err := run(context.Background(), *demo); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, demo bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// stdout belongs to the renderer
	logger := log.New(io.Discard, "", 0)
	if path := os.Getenv("SPORTUI_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "sportui")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	tel, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			logger.Printf("telemetry shutdown: %v", err)
		}
	}()

	db := store.New()
	if demo {
		if err := sport.SeedDemo(db, cfg.Account.ID); err != nil {
			return err
		}
	}
	ctrl := sport.NewController(db,
		sport.WithKeyMap(cfg.KeyMap),
		sport.WithAccount(cfg.Account.ID),
		sport.WithControllerLogger(logger),
	)

	driver := ui.NewDriver(ui.WithLogger(logger), ui.WithTracer(tel.Tracer()))
	driver.AddLayer(sport.NewMainLayer(ctrl, driver.Bus()))
	driver.ApplyTheme(cfg.Theme())
	driver.Subscribe(func(e ui.UIEvent) {
		if sel, ok := e.(ui.SelectionChangedEvent); ok {
			logger.Printf("ui: %s selected %d", sel.Source, sel.Index)
		}
	})
	logger.Printf("ui: session %s started", driver.Session())

	prog := ui.NewProgram(ctx, driver, cfg.UI.TickRate)
	driver.SetFallback(quitOn(cfg.KeyMap.Quit, prog.Quit))

	opts := []tea.ProgramOption{tea.WithReportFocus()}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(prog, opts...).Run(); err != nil {
		return err
	}
	return nil
}

// quitOn returns the fallback handler that calls quit for the configured quit
// key or ctrl+c.
func quitOn(name string, quit func()) func(ui.Event) bool {
	code, r, _ := ui.ParseKey(name)
	return func(ev ui.Event) bool {
		ke, ok := ev.(ui.KeyEvent)
		if !ok {
			return false
		}
		match := ke.Mod == 0 && ke.Code == code && (code != ui.KeyChar || ke.Rune == r)
		if match || ke.String() == "ctrl+c" {
			quit()
			return true
		}
		return false
	}
}
