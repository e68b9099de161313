package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/Flyrell/hydromind/internal/ledger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1E90FF")).
			Padding(0, 2)
)

// quickAmounts are the one-key volumes in mL.
var quickAmounts = map[string]float64{
	"1": 250,
	"2": 350,
	"3": 500,
}

var quickKeys = []string{"1", "2", "3"}

var dashboardCmd = LeafCommand{
	Use:   "dashboard",
	Short: "Interactive view of today's progress with quick add",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, time.Now, func(l *ledger.Ledger) error {
			return runDashboard(cmd, l, time.Now)
		})
	},
}.Build()

type dashboardModel struct {
	ledger  *ledger.Ledger
	nowFn   func() time.Time
	drink   int // index into entry.AllDrinkTypes()
	added   []string
	message string
}

func newDashboardModel(l *ledger.Ledger, nowFn func() time.Time) dashboardModel {
	return dashboardModel{ledger: l, nowFn: nowFn}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) currentDrink() entry.DrinkType {
	return entry.AllDrinkTypes()[m.drink]
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "1", "2", "3":
		return m.quickAdd(quickAmounts[k]), nil
	case "tab", "d":
		m.drink = (m.drink + 1) % len(entry.AllDrinkTypes())
		m.message = "drink: " + m.currentDrink().String()
	case "shift+tab":
		n := len(entry.AllDrinkTypes())
		m.drink = (m.drink + n - 1) % n
		m.message = "drink: " + m.currentDrink().String()
	case "u":
		return m.undo(), nil
	}
	return m, nil
}

func (m dashboardModel) quickAdd(ml float64) dashboardModel {
	l := m.ledger
	wasMet := l.TodayTotal() >= l.DailyGoal()

	e, err := l.AddEntryAt(ml, m.currentDrink(), m.nowFn())
	if err != nil && !errors.Is(err, ledger.ErrPersistence) {
		m.message = Error(err.Error())
		return m
	}
	m.added = append(m.added, e.ID)

	m.message = fmt.Sprintf("added %s of %s", l.DisplayAmount(ml), e.DrinkType)
	if err != nil {
		m.message = Warning(m.message + " (not saved)")
	} else if !wasMet && l.TodayTotal() >= l.DailyGoal() {
		m.message = Success("Daily goal reached!")
	}
	return m
}

func (m dashboardModel) undo() dashboardModel {
	if len(m.added) == 0 {
		m.message = "nothing to undo"
		return m
	}
	id := m.added[len(m.added)-1]
	m.added = m.added[:len(m.added)-1]
	removed, err := m.ledger.RemoveEntry(id)
	switch {
	case err != nil:
		m.message = Warning("removed, but could not save")
	case !removed:
		m.message = "nothing to undo"
	default:
		m.message = "removed last drink"
	}
	return m
}

func (m dashboardModel) quickAddHint() string {
	var b strings.Builder
	for _, k := range quickKeys {
		b.WriteString(fmt.Sprintf(" [%s] %s", k, m.ledger.DisplayAmount(quickAmounts[k])))
	}
	return b.String()
}

func (m dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(renderDashboard(m.ledger, m.nowFn()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("quick add %s: %s\n", Drink(m.currentDrink()), m.quickAddHint()))
	if m.message != "" {
		b.WriteString(m.message)
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("tab: change drink  u: undo  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// renderDashboard draws today's progress, streak and the last seven days.
func renderDashboard(l *ledger.Ledger, now time.Time) string {
	progress := l.TodayProgress()

	var today strings.Builder
	today.WriteString(headerStyle.Render("HydroMind  " + now.Format("Mon Jan 2")))
	today.WriteString("\n\n")
	today.WriteString(fmt.Sprintf("%s of %s\n", Primary(l.DisplayAmount(l.TodayTotal())), l.DisplayAmount(l.DailyGoal())))
	today.WriteString(Info(progressBar(progress, barWidth)) + " " + percent(progress) + "\n")
	today.WriteString(fmt.Sprintf("%s streak", days(l.CurrentStreak())))

	var week strings.Builder
	week.WriteString(headerStyle.Render("This week"))
	week.WriteString("\n")
	goal := l.DailyGoal()
	for _, d := range l.WeeklyData() {
		week.WriteString(fmt.Sprintf("%s %s %s\n", d.Label, Info(progressBar(d.Total/goal, 10)), l.DisplayAmount(d.Total)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(today.String()),
		panelStyle.Render(strings.TrimRight(week.String(), "\n")),
	)
}

func runDashboard(cmd *cobra.Command, l *ledger.Ledger, nowFn func() time.Time) error {
	out := cmd.OutOrStdout()

	if !isTerminal(out) {
		return printStaticDashboard(out, l, nowFn())
	}

	p := tea.NewProgram(newDashboardModel(l, nowFn), tea.WithAltScreen(), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func printStaticDashboard(w io.Writer, l *ledger.Ledger, now time.Time) error {
	_, err := fmt.Fprintln(w, renderDashboard(l, now))
	return err
}
