package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"advent/internal/driver"
)

// Item is one row of the progress view.
type Item struct {
	Day   int
	Label string
}

// look is how a row label renders and how far it counts toward the bar.
type look struct {
	weight float64
	color  lipgloss.Color
	final  bool
}

var looks = map[string]look{
	"queued":  {0, "7", false},
	"reading": {0.1, "6", false},
	"lookup":  {0.3, "6", false},
	"solving": {0.5, "6", false},
	"done":    {1, "2", true},
	"cached":  {1, "2", true},
	"error":   {1, "1", true},
}

var stageLabels = map[driver.Stage]string{
	driver.StageRead:  "reading",
	driver.StageCache: "lookup",
	driver.StageSolve: "solving",
}

type row struct {
	Item
	status  string
	elapsed time.Duration
	err     error
}

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	bar     progress.Model
	rows    []row
	byDay   map[int]int
	width   int
	done    bool
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders per-day progress
// until events is closed.
func NewProgressModel(title string, items []Item, events <-chan driver.Event) tea.Model {
	m := &progressModel{
		title:   title,
		events:  events,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		rows:    make([]row, len(items)),
		byDay:   make(map[int]int, len(items)),
		width:   80,
	}
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	for i, it := range items {
		m.rows[i] = row{Item: it, status: string(driver.StatusQueued)}
		m.byDay[it.Day] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case eventMsg:
		cmd = tea.Batch(m.applyEvent(driver.Event(msg)), m.next())
	case doneMsg:
		m.done = true
		cmd = tea.Quit
	case spinner.TickMsg:
		if !m.done {
			m.spinner, cmd = m.spinner.Update(msg)
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		var bar tea.Model
		bar, cmd = m.bar.Update(msg)
		m.bar = bar.(progress.Model)
	}
	return m, cmd
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder

	header := m.spinner.View() + " " + m.title
	if m.done {
		header = "done: " + m.title
	}
	finished := 0
	for _, r := range m.rows {
		if looks[r.status].final {
			finished++
		}
	}
	header += fmt.Sprintf(" (%d/%d)", finished, len(m.rows))
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n\n")

	const statusWidth = 8
	labelWidth := max(m.width-statusWidth-4, 20)
	for _, r := range m.rows {
		status := lipgloss.NewStyle().
			Foreground(looks[r.status].color).
			Render(fmt.Sprintf("%*s", statusWidth, r.status))
		fmt.Fprintf(&b, "  %s %s", status, truncate(r.Label, labelWidth))
		switch {
		case r.err != nil:
			b.WriteString("  " + truncate(r.err.Error(), labelWidth))
		case r.elapsed > 0:
			b.WriteString("  " + r.elapsed.Round(time.Microsecond).String())
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	return b.String()
}

// next waits for the following driver event; a closed channel ends the view.
func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	i, ok := m.byDay[ev.Day]
	if !ok {
		return nil
	}
	r := &m.rows[i]
	switch ev.Status {
	case driver.StatusWorking:
		if label, ok := stageLabels[ev.Stage]; ok {
			r.status = label
		}
	case driver.StatusQueued, driver.StatusDone, driver.StatusCached, driver.StatusError:
		r.status = string(ev.Status)
		r.elapsed = ev.Elapsed
		r.err = ev.Err
	default:
		return nil
	}
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range m.rows {
		sum += looks[r.status].weight
	}
	return sum / float64(len(m.rows))
}

// truncate cuts value to width display cells, marking the cut with "..."
// when there is room for it.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	tail := "..."
	if width <= len(tail) {
		tail = ""
	}
	return runewidth.Truncate(value, width, tail)
}
