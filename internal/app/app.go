package app

import (
	"path/filepath"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/dragstorm/internal/config"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty uses the
	// built-in default configuration and disables live reload.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Logger receives application logs. Nil creates a stderr logger.
	Logger *Logger

	// Screen overrides terminal detection. Tests inject a tcell
	// simulation screen here.
	Screen tcell.Screen
}

// Application runs the draggable-box demo on a terminal screen.
type Application struct {
	mu      sync.Mutex
	running bool

	opts   Options
	logger *Logger

	cfg    config.Config
	screen tcell.Screen
	board  *board
}

// reloadRequest is posted to the tcell event queue when the config
// file changes on disk.
type reloadRequest struct{}

// New creates an application from options.
func New(opts Options) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(LogLevelInfo, nil)
	}
	return &Application{opts: opts, logger: logger}
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Run starts the event loop and blocks until the user quits. The saved
// layout is restored on startup and written back on a clean exit.
func (app *Application) Run() error {
	app.mu.Lock()
	if app.running {
		app.mu.Unlock()
		return ErrAlreadyRunning
	}
	app.running = true
	app.mu.Unlock()
	defer func() {
		app.mu.Lock()
		app.running = false
		app.mu.Unlock()
	}()

	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.applyLogLevel()

	screen := app.opts.Screen
	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return NewOperationError("create screen", "", err)
		}
	}
	if err := screen.Init(); err != nil {
		return NewOperationError("init screen", "", err)
	}
	app.screen = screen
	defer screen.Fini()
	screen.EnableMouse()

	width, height := screen.Size()
	bd, err := newBoard(app.cfg, app.baseDir(), width, height, app.logger)
	if err != nil {
		return err
	}
	app.board = bd
	defer func() { app.board.close() }()

	if err := app.restoreLayout(); err != nil {
		app.logger.Warn("restoring layout: %v", err)
	}

	var watcher *config.Watcher
	if app.opts.ConfigPath != "" {
		watcher, err = config.Watch(app.opts.ConfigPath, 0, func() {
			_ = screen.PostEvent(tcell.NewEventInterrupt(reloadRequest{}))
		})
		if err != nil {
			app.logger.Warn("config watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	app.logger.Info("running with %d boxes", len(app.board.boxes))
	app.board.render(screen)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			app.board.resize(w, h)
			screen.Sync()

		case *tcell.EventKey:
			if app.isQuitKey(ev) {
				if err := app.saveLayout(); err != nil {
					app.logger.Warn("saving layout: %v", err)
				}
				return nil
			}

		case *tcell.EventMouse:
			app.board.handleMouse(ev)

		case *tcell.EventInterrupt:
			if _, ok := ev.Data().(reloadRequest); ok {
				app.reload()
			}
		}

		app.board.render(screen)
	}
}

func (app *Application) isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func (app *Application) loadConfig() (config.Config, error) {
	if app.opts.ConfigPath == "" {
		cfg := config.Default()
		if err := cfg.Normalize(); err != nil {
			return config.Config{}, err
		}
		return cfg, nil
	}
	return config.Load(app.opts.ConfigPath)
}

func (app *Application) applyLogLevel() {
	level := app.cfg.Log.Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}
	app.logger.SetLevel(ParseLogLevel(level))
}

// reload rebuilds the board from the config file, carrying over the
// positions of boxes whose ids survive.
func (app *Application) reload() {
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		app.logger.Error("config reload failed: %v", err)
		return
	}

	width, height := app.screen.Size()
	bd, err := newBoard(cfg, app.baseDir(), width, height, app.logger)
	if err != nil {
		app.logger.Error("config reload failed: %v", err)
		return
	}

	bd.applyLayout(app.board.positions())
	app.board.close()
	app.board = bd
	app.cfg = cfg
	app.applyLogLevel()
	app.logger.Info("configuration reloaded, %d boxes", len(bd.boxes))
}

// baseDir is the directory relative paths in the config resolve
// against.
func (app *Application) baseDir() string {
	if app.opts.ConfigPath == "" {
		return "."
	}
	return filepath.Dir(app.opts.ConfigPath)
}

func (app *Application) layoutPath() string {
	if app.cfg.Layout == "" {
		return ""
	}
	if filepath.IsAbs(app.cfg.Layout) {
		return app.cfg.Layout
	}
	return filepath.Join(app.baseDir(), app.cfg.Layout)
}

func (app *Application) restoreLayout() error {
	path := app.layoutPath()
	if path == "" {
		return nil
	}
	positions, err := config.LoadLayout(path)
	if err != nil {
		return err
	}
	app.board.applyLayout(positions)
	return nil
}

func (app *Application) saveLayout() error {
	path := app.layoutPath()
	if path == "" {
		return nil
	}
	return config.SaveLayout(path, app.board.positions())
}
