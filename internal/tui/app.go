// Package tui is a small report browser: pick a saved report, see its
// findings without leaving the terminal.
package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/infra/reportstore"
)

type Deps struct {
	Store *reportstore.JSONStore
}

type screen int

const (
	screenList screen = iota
	screenDetail
)

type reportItem struct {
	ref reportstore.Ref
}

func (i reportItem) Title() string { return i.ref.ID }
func (i reportItem) Description() string {
	verdict := "FAIL"
	if i.ref.Passed {
		verdict = "PASS"
	}
	if i.ref.StartedAt.IsZero() {
		return i.ref.Kind
	}
	return fmt.Sprintf("%s · %s", i.ref.Kind, verdict)
}
func (i reportItem) FilterValue() string { return i.ref.ID }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	lst    list.Model
	detail string
	err    error

	width  int
	height int
}

func Run(deps Deps) error {
	m, err := newModel(deps)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newModel(deps Deps) (model, error) {
	refs, err := deps.Store.List()
	if err != nil {
		return model{}, err
	}

	items := make([]list.Item, 0, len(refs))
	for _, ref := range refs {
		items = append(items, reportItem{ref: ref})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Validation reports"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenList,
		lst:   l,
	}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.lst.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenList {
				return m, tea.Quit
			}
			m.scr = screenList
			return m, nil
		case "esc":
			if m.scr == screenDetail {
				m.scr = screenList
			}
			return m, nil
		case "enter":
			if m.scr == screenList {
				if it, ok := m.lst.SelectedItem().(reportItem); ok {
					m.detail, m.err = m.renderDetail(it.ref)
					m.scr = screenDetail
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.lst, cmd = m.lst.Update(msg)
	return m, cmd
}

func (m model) View() string {
	switch m.scr {
	case screenDetail:
		if m.err != nil {
			return m.theme.Card.Render(fmt.Sprintf("error: %v", m.err)) + "\n" +
				m.theme.Help.Render("esc: back · q: list")
		}
		return m.detail + "\n" + m.theme.Help.Render("esc: back · q: list")
	default:
		return m.lst.View() + "\n" + m.theme.Help.Render("enter: open · /: filter · q: quit")
	}
}

// renderDetail loads a report and formats its summary and findings. Both
// batch and pdf reports share the issue shape, so decoding the superset is
// enough here.
func (m model) renderDetail(ref reportstore.Ref) (string, error) {
	raw, err := m.deps.Store.LoadRaw(ref.ID)
	if err != nil {
		return "", err
	}

	var rep struct {
		ValidationPassed bool           `json:"validation_passed"`
		TotalPuzzles     int            `json:"total_puzzles"`
		ValidPuzzles     int            `json:"valid_puzzles"`
		PageCount        int            `json:"page_count"`
		Errors           int            `json:"errors"`
		Warnings         int            `json:"warnings"`
		Issues           []domain.Issue `json:"issues"`
	}
	if err := json.Unmarshal(raw, &rep); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(ref.ID) + "\n")

	verdict := m.theme.Pass.Render("PASS")
	if !rep.ValidationPassed {
		verdict = m.theme.Fail.Render("FAIL")
	}
	b.WriteString(verdict + "  ")
	b.WriteString(m.theme.Subtitle.Render(
		fmt.Sprintf("%d error(s), %d warning(s)", rep.Errors, rep.Warnings)) + "\n\n")

	if len(rep.Issues) == 0 {
		b.WriteString(m.theme.Subtitle.Render("no findings") + "\n")
		return m.theme.Card.Render(b.String()), nil
	}

	limit := len(rep.Issues)
	if m.height > 0 && limit > m.height-10 {
		limit = m.height - 10
		if limit < 1 {
			limit = 1
		}
	}
	for _, is := range rep.Issues[:limit] {
		line := fmt.Sprintf("[%s/%s] %s", is.Severity, is.Category, is.Description)
		if is.Location != "" {
			line += " (" + is.Location + ")"
		}
		b.WriteString(line + "\n")
	}
	if limit < len(rep.Issues) {
		b.WriteString(m.theme.Subtitle.Render(
			fmt.Sprintf("… %d more", len(rep.Issues)-limit)) + "\n")
	}

	return m.theme.Card.Render(b.String()), nil
}
