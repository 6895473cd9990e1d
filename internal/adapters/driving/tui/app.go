// Package tui provides an interactive terminal dashboard over the lead
// collection following the Elm architecture. It implements tea.Model for
// use with Bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/threec-labs/leads-cli/internal/core/domain"
	"github.com/threec-labs/leads-cli/internal/core/ports/driving"
)

// leadsLoaded carries the collection fetched from the store.
type leadsLoaded struct {
	leads []domain.Lead
	err   error
}

// leadUpdated carries the result of an edit applied through the service.
type leadUpdated struct {
	lead *domain.Lead
	err  error
}

// flushed signals the exit flush completed.
type flushed struct{ err error }

// statusCycle is the order the s key walks a lead's status through.
var statusCycle = []domain.LeadStatus{
	domain.StatusNew,
	domain.StatusContacted,
	domain.StatusQualified,
	domain.StatusUnqualified,
}

// App is the lead dashboard. The left pane lists leads, filterable with /;
// enter toggles a detail pane for the selected lead and s cycles its status.
type App struct {
	svc    driving.LeadService
	styles *Styles
	ctx    context.Context

	filter     textinput.Model
	leads      []domain.Lead
	visible    []int
	selected   int
	showDetail bool
	filtering  bool
	quitting   bool

	status string
	err    error

	width  int
	height int
	ready  bool
}

var _ tea.Model = (*App)(nil)

// NewApp creates the dashboard over the given service.
func NewApp(svc driving.LeadService) *App {
	filter := textinput.New()
	filter.Placeholder = "filter by company, POC or UEI"
	filter.CharLimit = 80

	return &App{
		svc:    svc,
		styles: DefaultStyles(),
		ctx:    context.Background(),
		filter: filter,
	}
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("leads"),
		a.loadLeads(),
	)
}

func (a *App) loadLeads() tea.Cmd {
	return func() tea.Msg {
		leads, err := a.svc.LoadAll(a.ctx)
		return leadsLoaded{leads: leads, err: err}
	}
}

func (a *App) cycleStatus() tea.Cmd {
	lead, ok := a.selectedLead()
	if !ok {
		return nil
	}
	next := statusCycle[0]
	for n, s := range statusCycle {
		if s == lead.Status {
			next = statusCycle[(n+1)%len(statusCycle)]
			break
		}
	}
	return func() tea.Msg {
		updated, err := a.svc.SetStatus(lead.ID, next)
		return leadUpdated{lead: updated, err: err}
	}
}

func (a *App) flushAndQuit() tea.Cmd {
	return func() tea.Msg {
		return flushed{err: a.svc.Flush(a.ctx)}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case leadsLoaded:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.leads = msg.leads
		a.applyFilter()
		a.status = fmt.Sprintf("%d leads loaded", len(a.leads))
		return a, nil

	case leadUpdated:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		for n := range a.leads {
			if a.leads[n].ID == msg.lead.ID {
				a.leads[n] = *msg.lead
				break
			}
		}
		a.status = fmt.Sprintf("%s is now %s", msg.lead.Company, msg.lead.Status)
		return a, nil

	case flushed:
		a.quitting = true
		if msg.err != nil {
			a.err = msg.err
		}
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, a.flushAndQuit()
	}

	if a.filtering {
		switch msg.Type {
		case tea.KeyEsc:
			a.filtering = false
			a.filter.Blur()
			a.filter.SetValue("")
			a.applyFilter()
			return a, nil
		case tea.KeyEnter:
			a.filtering = false
			a.filter.Blur()
			return a, nil
		default:
			var cmd tea.Cmd
			a.filter, cmd = a.filter.Update(msg)
			a.applyFilter()
			return a, cmd
		}
	}

	switch msg.String() {
	case "q":
		return a, a.flushAndQuit()
	case "esc":
		if a.showDetail {
			a.showDetail = false
			return a, nil
		}
		if a.filter.Value() != "" {
			a.filter.SetValue("")
			a.applyFilter()
		}
		return a, nil
	case "/":
		a.filtering = true
		a.showDetail = false
		return a, a.filter.Focus()
	case "j", "down":
		if a.selected < len(a.visible)-1 {
			a.selected++
		}
		return a, nil
	case "k", "up":
		if a.selected > 0 {
			a.selected--
		}
		return a, nil
	case "enter":
		if len(a.visible) > 0 {
			a.showDetail = !a.showDetail
		}
		return a, nil
	case "s":
		return a, a.cycleStatus()
	case "r":
		a.status = "reloading"
		return a, a.loadLeads()
	}
	return a, nil
}

// applyFilter recomputes the visible index list from the filter text and
// clamps the selection.
func (a *App) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(a.filter.Value()))
	a.visible = a.visible[:0]
	for n, lead := range a.leads {
		if needle != "" {
			haystack := strings.ToLower(lead.Company + " " + lead.POCName + " " + lead.UEI)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		a.visible = append(a.visible, n)
	}
	if a.selected >= len(a.visible) {
		a.selected = len(a.visible) - 1
	}
	if a.selected < 0 {
		a.selected = 0
	}
}

func (a *App) selectedLead() (domain.Lead, bool) {
	if a.selected < 0 || a.selected >= len(a.visible) {
		return domain.Lead{}, false
	}
	return a.leads[a.visible[a.selected]], true
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Leads") + "\n")

	if a.filtering || a.filter.Value() != "" {
		b.WriteString(a.filter.View() + "\n")
	}
	if a.err != nil {
		b.WriteString(a.styles.Error.Render("error: "+a.err.Error()) + "\n")
	}

	if len(a.visible) == 0 {
		b.WriteString(a.styles.Muted.Render("No leads.") + "\n")
	}
	for pos, n := range a.visible {
		lead := a.leads[n]
		line := fmt.Sprintf("%-12s %-28s %s", lead.Status, truncate(lead.Company, 28), lead.Source)
		if pos == a.selected {
			b.WriteString(a.styles.Selected.Render("> "+line) + "\n")
		} else {
			b.WriteString(a.styles.Normal.Render("  "+line) + "\n")
		}
	}

	if a.showDetail {
		if lead, ok := a.selectedLead(); ok {
			b.WriteString(a.styles.Detail.Render(a.renderDetail(lead)) + "\n")
		}
	}

	if a.status != "" {
		b.WriteString(a.styles.Muted.Render(a.status) + "\n")
	}
	b.WriteString(a.styles.Help.Render("j/k navigate · enter detail · s status · / filter · r reload · q quit"))
	return b.String()
}

func (a *App) renderDetail(lead domain.Lead) string {
	last := "never"
	if lead.LastContactDate != nil {
		last = lead.LastContactDate.Format("2006-01-02")
	}
	lines := []string{
		lead.Company,
		"UEI: " + lead.UEI,
		"POC: " + lead.POCName,
		"Phone: " + lead.Phone,
		"Email: " + lead.Email,
		fmt.Sprintf("Calls: %d  Last contact: %s", len(lead.CallHistory), last),
	}
	if lead.Notes != "" {
		lines = append(lines, "Notes: "+lead.Notes)
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// Run starts the dashboard.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
