// Package tui is the interactive curve browser: pick a system, step the
// iteration depth, watch the curve redraw.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lindsim/internal/catalog"
	"github.com/san-kum/lindsim/internal/curve"
	"github.com/san-kum/lindsim/internal/export"
	"github.com/san-kum/lindsim/internal/viz"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model holds the browser state: the catalogue, the selected system and
// depth, and the most recent generation result.
type Model struct {
	cat        *catalog.Catalog
	names      []string
	selected   int
	iterations int

	canvasW, canvasH int

	result *Result
	status string
}

// Result caches one rendered generation so View does not regenerate per
// frame.
type Result struct {
	run    *curve.Result
	canvas *viz.Canvas
	err    error
}

func NewModel(cat *catalog.Catalog, system string, iterations, canvasW, canvasH int) Model {
	names := cat.List()
	selected := 0
	for i, name := range names {
		if name == system {
			selected = i
		}
	}

	m := Model{
		cat:        cat,
		names:      names,
		selected:   selected,
		iterations: iterations,
		canvasW:    canvasW,
		canvasH:    canvasH,
	}
	m.regenerate()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.selected = (m.selected + len(m.names) - 1) % len(m.names)
			m.clampIterations()
			m.regenerate()
		case "right", "l", "tab":
			m.selected = (m.selected + 1) % len(m.names)
			m.clampIterations()
			m.regenerate()
		case "up", "k", "+", "=":
			if m.iterations < m.maxDepth() {
				m.iterations++
				m.regenerate()
			}
		case "down", "j", "-", "_":
			if m.iterations > 0 {
				m.iterations--
				m.regenerate()
			}
		case "s":
			m.saveSVG()
		}
	case tea.WindowSizeMsg:
		if msg.Width > 4 && msg.Height > 8 {
			m.canvasW = msg.Width - 4
			m.canvasH = msg.Height - 8
			m.regenerate()
		}
	}
	return m, nil
}

func (m *Model) maxDepth() int {
	def, err := m.cat.Get(m.names[m.selected])
	if err != nil {
		return 0
	}
	return def.MaxDepth
}

func (m *Model) clampIterations() {
	if max := m.maxDepth(); m.iterations > max {
		m.iterations = max
	}
}

func (m *Model) regenerate() {
	def, err := m.cat.Get(m.names[m.selected])
	if err != nil {
		m.result = &Result{err: err}
		return
	}

	run, err := curve.Generate(def, m.iterations)
	if err != nil {
		m.result = &Result{err: err}
		return
	}

	canvas := viz.NewCanvas(m.canvasW, m.canvasH)
	canvas.DrawPath(run.Points)
	m.result = &Result{run: run, canvas: canvas}
	m.status = ""
}

func (m *Model) saveSVG() {
	if m.result == nil || m.result.run == nil {
		return
	}
	name := fmt.Sprintf("%s_n%d.svg", m.result.run.System, m.result.run.Iterations)
	svg := export.PathToSVG(m.result.run.Points, 800, 600, "#00ff00")
	if err := os.WriteFile(name, []byte(svg), 0644); err != nil {
		m.status = errorStyle.Render(fmt.Sprintf("save failed: %v", err))
		return
	}
	m.status = fmt.Sprintf("saved %s", name)
}

func (m Model) View() string {
	header := headerStyle.Render("lindsim — L-system curve browser")

	system := m.names[m.selected]
	info := labelStyle.Render("system ") + valueStyle.Render(system) +
		labelStyle.Render("  iterations ") + valueStyle.Render(fmt.Sprintf("%d/%d", m.iterations, m.maxDepth()))

	var body string
	switch {
	case m.result == nil:
		body = ""
	case m.result.err != nil:
		body = errorStyle.Render(m.result.err.Error())
	default:
		info += labelStyle.Render("  symbols ") + valueStyle.Render(fmt.Sprintf("%d", len(m.result.run.Symbols))) +
			labelStyle.Render("  points ") + valueStyle.Render(fmt.Sprintf("%d", len(m.result.run.Points)))
		body = canvasStyle.Render(m.result.canvas.String())
	}

	help := helpStyle.Render("←/→ system  ↑/↓ iterations  s save svg  q quit")
	if m.status != "" {
		help = m.status + "\n" + help
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, info, body, help)
}
