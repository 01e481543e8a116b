package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anaramires/tally/internal/dashboard"
	"github.com/anaramires/tally/internal/feed"
	"github.com/anaramires/tally/internal/weekly"
)

const chartBarWidth = 16

var (
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).PaddingBottom(1)
)

var directionGlyphs = map[feed.Direction]string{
	feed.DirectionInbound:  "←",
	feed.DirectionOutbound: "→",
	feed.DirectionLateral:  "⇄",
}

type DashboardModel struct {
	CommonModel
	svc *dashboard.Service

	entries []dashboard.Entry
	buckets []weekly.DayBucket
	weekRef time.Time
	loading bool
	err     error
}

func NewDashboardModel(svc *dashboard.Service) DashboardModel {
	return DashboardModel{
		svc:     svc,
		weekRef: time.Now(),
		loading: true,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }
func (m DashboardModel) ShortHelp() string {
	return "Esc: back | r: refresh | h/l: previous/next week"
}

type dashboardLoadedMsg struct {
	entries []dashboard.Entry
	buckets []weekly.DayBucket
	err     error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	ref := m.weekRef

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		entries, err := m.svc.RecentActivity(ctx, feed.DefaultLimit)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		buckets, err := m.svc.WeeklySpending(ctx, ref)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{entries: entries, buckets: buckets}
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.entries = msg.entries
			m.buckets = msg.buckets
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "h", "left":
			m.weekRef = m.weekRef.AddDate(0, 0, -7)
			m.loading = true

			return m, m.loadCmd()
		case "l", "right":
			m.weekRef = m.weekRef.AddDate(0, 0, 7)
			m.loading = true

			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Recent Activity"),
		m.renderRecent(),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Week of %s", weekly.WeekStart(m.weekRef).Format("Jan 2"))),
		m.renderChart(),
	)

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		panel.Render(left),
		panel.Render(right),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m DashboardModel) renderRecent() string {
	if len(m.entries) == 0 {
		return faintStyle.Render("No transactions yet.")
	}

	var sb strings.Builder

	for _, e := range m.entries {
		amount := e.Sign + e.Amount

		style := faintStyle
		switch e.Direction {
		case feed.DirectionInbound:
			style = incomeStyle
		case feed.DirectionOutbound:
			style = expenseStyle
		}

		label := e.Transaction.Description
		if e.CategoryName != "" {
			label += faintStyle.Render(fmt.Sprintf("  (%s)", e.CategoryName))
		}

		if e.Shared {
			label += faintStyle.Render("  [split]")
		}

		sb.WriteString(fmt.Sprintf("%s %-10s %s  %s\n",
			directionGlyphs[e.Direction],
			style.Render(amount),
			faintStyle.Render(RelTime(e.Transaction.Date)),
			label,
		))
	}

	return strings.TrimRight(sb.String(), "\n")
}

func (m DashboardModel) renderChart() string {
	maxTotal := 0.0

	for _, b := range m.buckets {
		if b.Income > maxTotal {
			maxTotal = b.Income
		}

		if b.Expense > maxTotal {
			maxTotal = b.Expense
		}
	}

	var sb strings.Builder

	for _, b := range m.buckets {
		sb.WriteString(fmt.Sprintf("%s  %s %8.2f  %s %8.2f\n",
			b.Label,
			incomeStyle.Render(bar(b.Income, maxTotal)),
			b.Income,
			expenseStyle.Render(bar(b.Expense, maxTotal)),
			b.Expense,
		))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// bar scales value against the week's maximum into a fixed-width block bar.
func bar(value, maxValue float64) string {
	if maxValue <= 0 {
		return strings.Repeat(" ", chartBarWidth)
	}

	filled := int(value / maxValue * chartBarWidth)
	if filled > chartBarWidth {
		filled = chartBarWidth
	}

	if value > 0 && filled == 0 {
		filled = 1
	}

	return strings.Repeat("█", filled) + strings.Repeat(" ", chartBarWidth-filled)
}
