package detector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	promptTitle  = "PlanMorph Wall Detector"
	promptHint   = "Enter wall coordinates (x1 y1 x2 y2) or 'q' to quit"
	usageMessage = "Invalid input. Use format: x1 y1 x2 y2 (e.g., 0 0 300 0)"
	historyLines = 12
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// ErrAborted is returned by Run when the session is cancelled with Ctrl+C or
// Esc rather than ended with q.
var ErrAborted = errors.New("capture aborted")

type historyEntry struct {
	text string
	err  bool
}

// Prompt is the bubbletea model that feeds typed coordinates into a Detector.
type Prompt struct {
	detector *Detector
	input    textinput.Model
	history  []historyEntry
	aborted  bool
}

// NewPrompt builds a prompt that records into d.
func NewPrompt(d *Detector) Prompt {
	ti := textinput.New()
	ti.Placeholder = "0 0 300 0"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()
	return Prompt{detector: d, input: ti}
}

// Run blocks until the user quits the prompt. It returns ErrAborted when the
// user cancelled instead of finishing, in which case nothing should be saved.
func Run(d *Detector) error {
	final, err := tea.NewProgram(NewPrompt(d)).Run()
	if err != nil {
		return fmt.Errorf("detector: run prompt: %w", err)
	}
	return outcome(final)
}

func outcome(final tea.Model) error {
	if p, ok := final.(Prompt); ok && p.aborted {
		return fmt.Errorf("detector: %w", ErrAborted)
	}
	return nil
}

func (p Prompt) Init() tea.Cmd {
	return textinput.Blink
}

func (p Prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			p.aborted = true
			return p, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(p.input.Value())
			p.input.Reset()
			if strings.EqualFold(line, "q") {
				return p, tea.Quit
			}
			p.submit(line)
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *Prompt) submit(line string) {
	x1, y1, x2, y2, err := ParseCoordinates(line)
	if err != nil {
		p.record(usageMessage, true)
		return
	}
	seg, err := p.detector.Add(x1, y1, x2, y2)
	if err != nil {
		if errors.Is(err, ErrSamePoints) {
			p.record(fmt.Sprintf("Error: Same points (%d,%d)", x1, y1), true)
			return
		}
		p.record(err.Error(), true)
		return
	}
	p.record("Added wall: "+seg.String(), false)
}

func (p *Prompt) record(text string, isErr bool) {
	p.history = append(p.history, historyEntry{text: text, err: isErr})
	if len(p.history) > historyLines {
		p.history = p.history[len(p.history)-historyLines:]
	}
}

func (p Prompt) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(promptTitle))
	b.WriteString("\n\n")
	for _, entry := range p.history {
		style := okStyle
		if entry.err {
			style = errStyle
		}
		b.WriteString(style.Render(entry.text))
		b.WriteString("\n")
	}
	if len(p.history) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render(promptHint))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")
	return b.String()
}
