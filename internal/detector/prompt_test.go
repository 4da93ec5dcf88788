package detector

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeLine(t *testing.T, p Prompt, line string) (Prompt, tea.Cmd) {
	t.Helper()
	var model tea.Model = p
	for _, r := range line {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, ok := model.(Prompt)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return next, cmd
}

func TestPromptAddsWalls(t *testing.T) {
	d := New()
	p, cmd := typeLine(t, NewPrompt(d), "0 0 300 0")
	if cmd != nil {
		t.Fatalf("submitting coordinates should not quit")
	}
	if got := len(d.segments); got != 1 {
		t.Fatalf("segments = %d, want 1", got)
	}
	view := p.View()
	if !strings.Contains(view, "Added wall: (0,0) to (300,0), length = 300mm") {
		t.Fatalf("view missing confirmation:\n%s", view)
	}
	if p.input.Value() != "" {
		t.Fatalf("input should be cleared after submit")
	}
}

func TestPromptReportsErrors(t *testing.T) {
	d := New()
	p, _ := typeLine(t, NewPrompt(d), "1 2 3")
	p, _ = typeLine(t, p, "4 4 4 4")
	view := p.View()
	if !strings.Contains(view, usageMessage) {
		t.Fatalf("view missing usage message:\n%s", view)
	}
	if !strings.Contains(view, "Error: Same points (4,4)") {
		t.Fatalf("view missing same-point error:\n%s", view)
	}
	if len(d.segments) != 0 {
		t.Fatalf("nothing should be recorded")
	}
}

func TestPromptQuits(t *testing.T) {
	for _, line := range []string{"q", "Q"} {
		_, cmd := typeLine(t, NewPrompt(New()), line)
		if cmd == nil {
			t.Fatalf("%q should quit", line)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%q did not produce tea.QuitMsg", line)
		}
	}
}

func TestPromptFinishedWithQIsNotAborted(t *testing.T) {
	p, _ := typeLine(t, NewPrompt(New()), "q")
	if err := outcome(p); err != nil {
		t.Fatalf("outcome = %v, want nil", err)
	}
}

func TestPromptCancelKeysAbort(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		d := New()
		p, _ := typeLine(t, NewPrompt(d), "0 0 300 0")
		model, cmd := p.Update(k)
		if cmd == nil {
			t.Fatalf("%q should quit", k.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%q did not produce tea.QuitMsg", k.String())
		}
		if err := outcome(model); !errors.Is(err, ErrAborted) {
			t.Fatalf("%q: outcome = %v, want ErrAborted", k.String(), err)
		}
	}
}

func TestPromptHistoryIsBounded(t *testing.T) {
	p := NewPrompt(New())
	for i := 0; i < historyLines+5; i++ {
		p, _ = typeLine(t, p, "bad")
	}
	if len(p.history) != historyLines {
		t.Fatalf("history = %d, want %d", len(p.history), historyLines)
	}
}
