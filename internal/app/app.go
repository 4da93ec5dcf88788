// internal/app/app.go
//
// App ties the pieces of one drawing run together:
//
// 1. Load walls.json (any failure is returned to main)
// 2. Empty list: print a message, nothing is drawn
// 3. Otherwise build the figure and hand it to the configured viewer, which
//    blocks until the user closes it

package app

import (
	"fmt"
	"io"
	"os"

	"github.com/kingrea/planmorph/internal/config"
	"github.com/kingrea/planmorph/internal/logging"
	"github.com/kingrea/planmorph/internal/plot"
	"github.com/kingrea/planmorph/internal/walls"
)

// EmptyMessage is printed when walls.json holds no walls.
var EmptyMessage = fmt.Sprintf("No walls found in %s", walls.DefaultFile)

// Viewer displays a figure and returns once it has been dismissed.
type Viewer interface {
	Show(fig plot.Figure) error
}

// ViewerFactory builds a viewer from the run configuration.
type ViewerFactory func(cfg *config.Config) (Viewer, error)

// Option customizes App construction for tests and alternate runtimes.
type Option func(*App)

// WithStdout redirects the empty-input message.
func WithStdout(w io.Writer) Option {
	return func(a *App) {
		if w != nil {
			a.stdout = w
		}
	}
}

// WithLogger attaches a file logger. A nil logger disables logging.
func WithLogger(l *logging.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithViewer registers the factory used when the config selects name.
func WithViewer(name string, factory ViewerFactory) Option {
	return func(a *App) {
		if factory != nil {
			a.viewers[name] = factory
		}
	}
}

// App runs one load-and-draw cycle.
type App struct {
	config  *config.Config
	logger  *logging.Logger
	stdout  io.Writer
	viewers map[string]ViewerFactory
}

// New creates an App for cfg.
func New(cfg *config.Config, opts ...Option) *App {
	a := &App{
		config:  cfg,
		stdout:  os.Stdout,
		viewers: map[string]ViewerFactory{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Run loads the walls and shows them. It returns nil after the viewer closes
// or after reporting an empty list.
func (a *App) Run() error {
	path := a.config.WallsPath()
	ws, err := walls.Load(path)
	if err != nil {
		a.logger.Error("load failed: %v", err)
		return err
	}
	a.logger.Info("loaded %d walls from %s", len(ws), path)
	for i, w := range ws {
		if w.IsDegenerate() {
			a.logger.Warn("wall %d starts and ends at (%g, %g)", i, w.X1, w.Y1)
		}
	}

	if len(ws) == 0 {
		fmt.Fprintln(a.stdout, EmptyMessage)
		return nil
	}

	fig := plot.Build(ws)
	viewer, name, err := a.viewer()
	if err != nil {
		a.logger.Error("%v", err)
		return err
	}
	a.logger.Info("showing %d segments in the %s viewer", len(fig.Segments), name)
	if err := viewer.Show(fig); err != nil {
		a.logger.Error("%s viewer: %v", name, err)
		return err
	}
	a.logger.Info("%s viewer closed", name)
	return nil
}

func (a *App) viewer() (Viewer, string, error) {
	name := a.config.Viewer()
	factory, ok := a.viewers[name]
	if !ok {
		return nil, name, fmt.Errorf("app: viewer %q: %w", name, config.ErrUnknownViewer)
	}
	v, err := factory(a.config)
	if err != nil {
		return nil, name, fmt.Errorf("app: create %s viewer: %w", name, err)
	}
	return v, name, nil
}
