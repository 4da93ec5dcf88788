package app

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kingrea/planmorph/internal/config"
	"github.com/kingrea/planmorph/internal/logging"
	"github.com/kingrea/planmorph/internal/plot"
)

type recordingViewer struct {
	shown []plot.Figure
	err   error
}

func (v *recordingViewer) Show(fig plot.Figure) error {
	v.shown = append(v.shown, fig)
	return v.err
}

func newTestApp(t *testing.T, wallsJSON string, viewer *recordingViewer) (*App, *bytes.Buffer, string) {
	t.Helper()
	t.Setenv(config.EnvViewer, config.ViewerTerminal)
	t.Setenv(config.EnvLog, "off")
	projectDir := t.TempDir()
	if wallsJSON != "" {
		if err := os.WriteFile(filepath.Join(projectDir, "walls.json"), []byte(wallsJSON), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	var out bytes.Buffer
	a := New(cfg,
		WithStdout(&out),
		WithViewer(config.ViewerTerminal, func(*config.Config) (Viewer, error) { return viewer, nil }),
	)
	return a, &out, projectDir
}

func TestRunShowsOneSegmentPerWall(t *testing.T) {
	viewer := &recordingViewer{}
	a, out, _ := newTestApp(t, `[
  {"x1":0,"y1":0,"x2":10,"y2":0,"length":10.0},
  {"x1":10,"y1":0,"x2":10,"y2":5,"length":5}
]`, viewer)
	if err := a.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(viewer.shown) != 1 {
		t.Fatalf("viewer shown %d times, want 1", len(viewer.shown))
	}
	fig := viewer.shown[0]
	if len(fig.Segments) != 2 || len(fig.Labels) != 2 {
		t.Fatalf("figure has %d segments and %d labels", len(fig.Segments), len(fig.Labels))
	}
	if fig.Labels[0].Text != "10.0 mm" || fig.Labels[0].At != (plot.Point{X: 5, Y: 0}) {
		t.Fatalf("unexpected first label %+v", fig.Labels[0])
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be printed for non-empty input, got %q", out.String())
	}
}

func TestRunEmptyListPrintsMessage(t *testing.T) {
	for _, payload := range []string{"[]", "null"} {
		viewer := &recordingViewer{}
		a, out, _ := newTestApp(t, payload, viewer)
		if err := a.Run(); err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
		if got := out.String(); got != "No walls found in walls.json\n" {
			t.Fatalf("stdout = %q", got)
		}
		if len(viewer.shown) != 0 {
			t.Fatalf("viewer must not be invoked for empty input")
		}
	}
}

func TestRunMalformedInputFailsWithoutFigure(t *testing.T) {
	viewer := &recordingViewer{}
	a, out, _ := newTestApp(t, `[{"x1": 0,`, viewer)
	if err := a.Run(); err == nil {
		t.Fatalf("expected parse error")
	}
	if len(viewer.shown) != 0 || out.Len() != 0 {
		t.Fatalf("no output expected on failure")
	}
}

func TestRunMissingFile(t *testing.T) {
	viewer := &recordingViewer{}
	a, _, _ := newTestApp(t, "", viewer)
	err := a.Run()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestRunUnregisteredViewer(t *testing.T) {
	t.Setenv(config.EnvLog, "off")
	t.Setenv(config.EnvViewer, config.ViewerWindow)
	projectDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(projectDir, "walls.json"), []byte(`[{"x1":0,"y1":0,"x2":1,"y2":1}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		t.Fatal(err)
	}
	if err := New(cfg).Run(); !errors.Is(err, config.ErrUnknownViewer) {
		t.Fatalf("expected ErrUnknownViewer, got %v", err)
	}
}

func TestRunPropagatesViewerError(t *testing.T) {
	viewer := &recordingViewer{err: errors.New("display gone")}
	a, _, _ := newTestApp(t, `[{"x1":0,"y1":0,"x2":1,"y2":1}]`, viewer)
	if err := a.Run(); err == nil || !strings.Contains(err.Error(), "display gone") {
		t.Fatalf("expected viewer error, got %v", err)
	}
}

func TestRunLogsToFile(t *testing.T) {
	viewer := &recordingViewer{}
	a, _, projectDir := newTestApp(t, `[{"x1":0,"y1":0,"x2":1,"y2":1}]`, viewer)
	logPath := filepath.Join(projectDir, ".planmorph", "logs", "planmorph.log")
	logger, err := logging.New(logPath)
	if err != nil {
		t.Fatal(err)
	}
	WithLogger(logger)(a)
	if err := a.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	logger.Close()
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"loaded 1 walls", "terminal viewer closed"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("log missing %q:\n%s", want, data)
		}
	}
}

func TestRunWarnsAboutDegenerateWalls(t *testing.T) {
	viewer := &recordingViewer{}
	a, _, projectDir := newTestApp(t, `[{"x1":0,"y1":0,"x2":10,"y2":0},{"x1":5,"y1":5,"x2":5,"y2":5}]`, viewer)
	logPath := filepath.Join(projectDir, "run.log")
	logger, err := logging.New(logPath)
	if err != nil {
		t.Fatal(err)
	}
	WithLogger(logger)(a)
	if err := a.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	logger.Close()
	if len(viewer.shown) != 1 || len(viewer.shown[0].Segments) != 2 {
		t.Fatalf("degenerate walls are still drawn, got %+v", viewer.shown)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "wall 1 starts and ends at (5, 5)") {
		t.Fatalf("log missing degenerate warning:\n%s", data)
	}
	if strings.Contains(string(data), "wall 0 starts") {
		t.Fatalf("unexpected warning for wall 0:\n%s", data)
	}
}
