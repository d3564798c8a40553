package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quiltwm/quilt/pkg/config"
	"github.com/quiltwm/quilt/pkg/geometry"
	"github.com/quiltwm/quilt/pkg/layout"
	"github.com/quiltwm/quilt/pkg/stack"
	"github.com/quiltwm/quilt/pkg/workspace"
)

var (
	demoHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	demoStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
)

// DemoModel is the bubbletea model for the interactive layout demo. It owns
// a workspace and a window stack and maps keys onto the runtime operations a
// window manager would perform.
type DemoModel struct {
	cfg    config.Config
	ws     *workspace.Workspace
	stack  *stack.Stack[layout.WindowID]
	nextID layout.WindowID

	screen    geometry.Rect
	layoutIdx int
	cols      int
	rows      int
}

// NewDemoModel creates a demo model starting with the configured default
// layout and a four-window stack.
func NewDemoModel(cfg config.Config) (DemoModel, error) {
	names := config.LayoutNames()
	idx := 0
	for i, n := range names {
		if n == cfg.DefaultLayout {
			idx = i
		}
	}

	l, err := cfg.Build(names[idx])
	if err != nil {
		return DemoModel{}, err
	}

	return DemoModel{
		cfg:       cfg,
		ws:        workspace.New("demo", l),
		stack:     stack.New[layout.WindowID](1, 2, 3, 4),
		nextID:    5,
		screen:    geometry.NewRect(0, 0, defaultScreenW, defaultScreenH),
		layoutIdx: idx,
		cols:      defaultCols,
		rows:      defaultRows,
	}, nil
}

func (m DemoModel) Init() tea.Cmd {
	return nil
}

func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "l", "right":
			m.ws.Send(layout.NewMessage(layout.ExpandMain{}))
		case "h", "left":
			m.ws.Send(layout.NewMessage(layout.ShrinkMain{}))
		case "j", "down":
			m.stack.FocusNext()
		case "k", "up":
			m.stack.FocusPrev()
		case "J":
			m.stack.RotateDown()
		case "K":
			m.stack.RotateUp()
		case "+", "=":
			if m.stack.Insert(m.nextID) {
				m.nextID++
			}
		case "-", "_":
			if focused, ok := m.stack.Focused(); ok && m.stack.Len() > 1 {
				m.stack.Remove(focused)
			}
		case "tab":
			m.cycleLayout()
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width - 2
		if m.cols < 20 {
			m.cols = 20
		}
		m.rows = msg.Height - 6
		if m.rows < 6 {
			m.rows = 6
		}
	}
	return m, nil
}

// cycleLayout advances to the next configured layout, keeping the current
// one when construction fails.
func (m *DemoModel) cycleLayout() {
	names := config.LayoutNames()
	next := (m.layoutIdx + 1) % len(names)
	l, err := m.cfg.Build(names[next])
	if err != nil {
		return
	}
	m.layoutIdx = next
	m.ws.SetLayout(l)
}

func (m DemoModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("quilt demo"))
	b.WriteString("\n")
	b.WriteString(demoHelpStyle.Render("h/l ratio  j/k focus  J/K rotate  +/- windows  tab layout  q quit"))
	b.WriteString("\n\n")

	placements := m.ws.Apply(m.stack, m.screen)
	b.WriteString(styleCanvas.Render(renderCanvas(placements, m.screen, m.cols, m.rows)))
	b.WriteString("\n\n")

	focused, _ := m.stack.Focused()
	status := fmt.Sprintf("layout %s · %d windows · %d placed · focus #%d",
		m.ws.LayoutName(), m.stack.Len(), len(placements), focused)
	b.WriteString(demoStatusStyle.Render(status))

	return b.String()
}
