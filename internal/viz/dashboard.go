package viz

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/plantctl/internal/sim"
)

const (
	historyCapacity = 240
	maxSpeed        = 64
	tickRate        = time.Second / 20
)

// Source is a world that can be advanced one day at a time.
type Source interface {
	Step(ctx context.Context) ([]sim.Sample, error)
	Day() int
	Metrics() map[string]float64
}

type TickMsg time.Time

type firmHistory struct {
	last    sim.Sample
	workers []float64
	target  []float64
	wage    []float64
	profit  []float64
}

func (h *firmHistory) record(s sim.Sample) {
	h.last = s
	h.workers = appendCapped(h.workers, float64(s.Workers))
	h.target = appendCapped(h.target, float64(s.Target))
	h.wage = appendCapped(h.wage, float64(s.Wage))
	h.profit = appendCapped(h.profit, s.Profit)
}

func appendCapped(xs []float64, v float64) []float64 {
	xs = append(xs, v)
	if len(xs) > historyCapacity {
		xs = xs[1:]
	}
	return xs
}

// Model is a bubbletea dashboard following every firm of a running sector.
type Model struct {
	ctx      context.Context
	src      Source
	title    string
	days     int
	elapsed  int
	firms    []string
	history  map[string]*firmHistory
	selected int
	running  bool
	speed    int
	theme    Theme
	styles   styles
	showHelp bool
	width    int
	err      error
}

// NewModel follows src for days days.
func NewModel(ctx context.Context, src Source, title string, days int) Model {
	return Model{
		ctx:     ctx,
		src:     src,
		title:   title,
		days:    days,
		history: make(map[string]*firmHistory),
		running: true,
		speed:   1,
		theme:   Themes[0],
		styles:  newStyles(Themes[0]),
		width:   80,
	}
}

// Run shows the dashboard until the user quits.
func Run(ctx context.Context, src Source, title string, days int) error {
	p := tea.NewProgram(NewModel(ctx, src, title, days), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input and advances the world on every tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "+", "=":
			m.speed = min(m.speed*2, maxSpeed)
		case "-", "_":
			m.speed = max(m.speed/2, 1)
		case "tab":
			if len(m.firms) > 0 {
				m.selected = (m.selected + 1) % len(m.firms)
			}
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case TickMsg:
		if m.running {
			for i := 0; i < m.speed && !m.done(); i++ {
				if err := m.step(); err != nil {
					m.err = err
					return m, tea.Quit
				}
			}
			if m.done() {
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) done() bool {
	return m.days > 0 && m.elapsed >= m.days
}

func (m *Model) step() error {
	samples, err := m.src.Step(m.ctx)
	if err != nil {
		return err
	}
	m.elapsed++
	for _, s := range samples {
		h, ok := m.history[s.Firm]
		if !ok {
			h = &firmHistory{}
			m.history[s.Firm] = h
			m.firms = append(m.firms, s.Firm)
			sort.Strings(m.firms)
		}
		h.record(s)
	}
	return nil
}

func (m Model) status() string {
	switch {
	case m.done():
		return m.styles.paused.Render("FINISHED")
	case m.running:
		return m.styles.running.Render(fmt.Sprintf("RUNNING x%d", m.speed))
	default:
		return m.styles.paused.Render("PAUSED")
	}
}

func (m Model) row(label, value string) string {
	return m.styles.label.Render(label) + m.styles.value.Render(value) + "\n"
}

// View renders the selected firm's charts next to the sector summary.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(m.styles.header.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.status() + "\n\n")
	if m.days > 0 {
		s.WriteString(m.row("Day", fmt.Sprintf("%d / %d", m.src.Day(), m.days)))
		s.WriteString(m.styles.progressBar(float64(m.elapsed)/float64(m.days), 24) + "\n\n")
	} else {
		s.WriteString(m.row("Day", fmt.Sprint(m.src.Day())))
	}

	if len(m.firms) == 0 {
		s.WriteString(m.styles.help.Render("waiting for the first day...") + "\n")
		return m.styles.panel.Render(s.String())
	}

	id := m.firms[m.selected]
	h := m.history[id]
	s.WriteString(m.row("Firm", fmt.Sprintf("%s (%d/%d)", id, m.selected+1, len(m.firms))))
	s.WriteString(m.row("Wage", fmt.Sprint(h.last.Wage)))
	s.WriteString(m.row("Workers", fmt.Sprintf("%d -> %d", h.last.Workers, h.last.Target)))
	s.WriteString(m.row("Profit", fmt.Sprintf("%.1f", h.last.Profit)))
	s.WriteString(m.row("Revenue", fmt.Sprintf("%.1f", h.last.Revenue)))
	s.WriteString(m.row("Cost", fmt.Sprintf("%.1f", h.last.Cost)))

	s.WriteString("\nSECTOR\n")
	for _, f := range m.firms {
		s.WriteString(fmt.Sprintf("%-8s %s\n", f, m.styles.sparkline(m.history[f].workers, 24)))
	}
	metrics := m.src.Metrics()
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	s.WriteString("\n")
	for _, name := range names {
		s.WriteString(m.row(name, fmt.Sprintf("%.3f", metrics[name])))
	}
	s.WriteString(m.styles.help.Render("\nSP:Pause +/-:Speed TAB:Firm\nT:Theme ?:Help Q:Quit"))
	stats := m.styles.panel.Render(s.String())

	charts := m.styles.panel.Render(m.charts(h))
	view := lipgloss.JoinHorizontal(lipgloss.Top, charts, stats)
	if m.showHelp {
		return m.help() + "\n" + view
	}
	return view
}

func (m Model) charts(h *firmHistory) string {
	width := max(20, min(60, m.width-50))
	if len(h.workers) < 2 {
		return m.styles.help.Render("collecting history...")
	}
	workers := asciigraph.PlotMany([][]float64{h.workers, h.target},
		asciigraph.Height(8), asciigraph.Width(width), asciigraph.Caption("workers / target"))
	wage := asciigraph.Plot(h.wage,
		asciigraph.Height(5), asciigraph.Width(width), asciigraph.Caption("wage"))
	profit := asciigraph.Plot(h.profit,
		asciigraph.Height(5), asciigraph.Width(width), asciigraph.Caption("weekly profit"))
	return m.styles.graph.Render(workers) + "\n\n" +
		m.styles.graph.Render(wage) + "\n\n" +
		m.styles.graph.Render(profit)
}

func (m Model) help() string {
	return m.styles.panel.Render(`KEYBOARD SHORTCUTS

  Space   pause or resume
  + / -   double or halve days per tick
  Tab     next firm
  T       next theme (` + strings.Join(ThemeNames(), ", ") + `)
  ?       toggle this help
  Q       quit`)
}
