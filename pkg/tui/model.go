// Package tui is the terminal front end of jot.
//
// Every key press is translated into at most one core.Command; the screen is
// always rendered from the core.View the service returns.
package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/jot/pkg/core"
)

type focusArea int

const (
	focusTitle focusArea = iota
	focusDescription
	focusList
	focusSearch
	focusCount
)

func (f focusArea) String() string {
	switch f {
	case focusTitle:
		return "title"
	case focusDescription:
		return "description"
	case focusList:
		return "list"
	case focusSearch:
		return "search"
	}
	return "unknown"
}

// Model is the bubbletea model of the application.
type Model struct {
	ctx  context.Context
	svc  *core.Service
	view core.View
	err  error

	keys  keyMap
	help  help.Model
	focus focusArea

	title  textinput.Model
	desc   textarea.Model
	search textinput.Model

	editTitle textinput.Model
	editDesc  textarea.Model
	editField focusArea

	cursor int
	width  int
	height int
}

// New creates a model over a loaded service.
func New(ctx context.Context, svc *core.Service) Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""

	desc := textarea.New()
	desc.Placeholder = "Description"
	desc.ShowLineNumbers = false
	desc.SetHeight(3)

	search := textinput.New()
	search.Placeholder = "Search titles"
	search.Prompt = "/ "

	editTitle := textinput.New()
	editTitle.Prompt = ""

	editDesc := textarea.New()
	editDesc.ShowLineNumbers = false
	editDesc.SetHeight(5)

	m := Model{
		ctx:       ctx,
		svc:       svc,
		view:      svc.View(),
		keys:      newKeyMap(),
		help:      help.New(),
		title:     title,
		desc:      desc,
		search:    search,
		editTitle: editTitle,
		editDesc:  editDesc,
		editField: focusTitle,
	}
	m.setFocus(focusTitle)
	return m
}

// Run starts the program and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, svc *core.Service, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(ctx, svc), opts...).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Current returns the last domain view the model rendered from.
func (m Model) Current() core.View {
	return m.view
}

// Err returns the error of the last command, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.desc.SetWidth(max(msg.Width-4, 10))
		m.editDesc.SetWidth(max(msg.Width-8, 10))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch {
		case m.view.Edit.Open:
			return m.updateEdit(msg)
		case m.view.Viewing.Open:
			return m.updateViewing(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

// dispatch applies cmd and refreshes the rendered view.
func (m *Model) dispatch(cmd core.Command) {
	m.view, m.err = m.svc.Dispatch(m.ctx, cmd)
	if m.cursor >= len(m.view.Notes) {
		m.cursor = max(len(m.view.Notes)-1, 0)
	}
}

func (m Model) selected() (core.NoteID, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Notes) {
		return 0, false
	}
	return m.view.Notes[m.cursor].ID, true
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.title.Blur()
	m.desc.Blur()
	m.search.Blur()
	switch f {
	case focusTitle:
		m.title.Focus()
	case focusDescription:
		m.desc.Focus()
	case focusSearch:
		m.search.Focus()
	}
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Focus):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, m.keys.Save) && (m.focus == focusTitle || m.focus == focusDescription):
		m.dispatch(core.Command{Kind: core.CmdSaveDraft})
		m.syncDraft()
		return m, nil
	case key.Matches(msg, m.keys.CycleCategory) && (m.focus == focusTitle || m.focus == focusDescription):
		m.dispatch(core.Command{Kind: core.CmdSetCategory, Text: nextLabel(m.view.Categories, m.view.Draft.Category, 1)})
		return m, nil
	}

	switch m.focus {
	case focusTitle:
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		if m.title.Value() != m.view.Draft.Title {
			m.dispatch(core.Command{Kind: core.CmdSetTitle, Text: m.title.Value()})
		}
		return m, cmd

	case focusDescription:
		var cmd tea.Cmd
		m.desc, cmd = m.desc.Update(msg)
		if m.desc.Value() != m.view.Draft.Description {
			m.dispatch(core.Command{Kind: core.CmdSetDescription, Text: m.desc.Value()})
		}
		return m, cmd

	case focusSearch:
		return m.updateSearch(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ClearSearch):
		m.search.SetValue("")
		m.dispatch(core.Command{Kind: core.CmdClearQuery})
		return m, nil
	case key.Matches(msg, m.keys.AddCategory):
		label := m.search.Value()
		m.search.SetValue("")
		m.dispatch(core.Command{Kind: core.CmdAddCategory, Text: label})
		m.dispatch(core.Command{Kind: core.CmdClearQuery})
		return m, nil
	case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.Cancel):
		m.setFocus(focusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.view.Criteria.Query {
		m.dispatch(core.Command{Kind: core.CmdSetQuery, Text: m.search.Value()})
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.Notes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Search):
		m.setFocus(focusSearch)
	case key.Matches(msg, m.keys.ClearSearch):
		m.search.SetValue("")
		m.dispatch(core.Command{Kind: core.CmdClearQuery})
	case key.Matches(msg, m.keys.PrevCategory):
		m.dispatch(core.Command{Kind: core.CmdSelectCategory, Text: m.filterLabel(-1)})
	case key.Matches(msg, m.keys.NextCategory):
		m.dispatch(core.Command{Kind: core.CmdSelectCategory, Text: m.filterLabel(1)})
	case key.Matches(msg, m.keys.Open):
		m.click(core.TargetCard)
	case key.Matches(msg, m.keys.Edit):
		m.click(core.TargetEdit)
	case key.Matches(msg, m.keys.Delete):
		m.click(core.TargetDelete)
	case key.Matches(msg, m.keys.Copy):
		if id, ok := m.selected(); ok {
			m.dispatch(core.Command{Kind: core.CmdCopyToDraft, ID: id})
			m.syncDraft()
		}
	}
	return m, nil
}

func (m *Model) click(target core.ClickTarget) {
	id, ok := m.selected()
	if !ok {
		return
	}
	m.dispatch(core.Command{Kind: core.CmdClick, ID: id, Target: target})
	if m.view.Edit.Open {
		m.syncEdit()
	}
}

func (m Model) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.view.Viewing.Note.ID
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Open):
		m.dispatch(core.Command{Kind: core.CmdCloseView})
	case key.Matches(msg, m.keys.Edit):
		m.dispatch(core.Command{Kind: core.CmdOpenEdit, ID: id})
		m.syncEdit()
	case key.Matches(msg, m.keys.Delete):
		m.dispatch(core.Command{Kind: core.CmdDelete, ID: id})
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.dispatch(core.Command{Kind: core.CmdCancelEdit})
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.dispatch(core.Command{Kind: core.CmdCommitEdit})
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		if m.editField == focusTitle {
			m.setEditField(focusDescription)
		} else {
			m.setEditField(focusTitle)
		}
		return m, nil
	case key.Matches(msg, m.keys.CycleCategory):
		m.dispatch(core.Command{Kind: core.CmdEditCategory, Text: nextLabel(m.view.Categories, m.view.Edit.Buffer.Category, 1)})
		return m, nil
	}

	var cmd tea.Cmd
	if m.editField == focusTitle {
		m.editTitle, cmd = m.editTitle.Update(msg)
		if m.editTitle.Value() != m.view.Edit.Buffer.Title {
			m.dispatch(core.Command{Kind: core.CmdEditTitle, Text: m.editTitle.Value()})
		}
		return m, cmd
	}
	m.editDesc, cmd = m.editDesc.Update(msg)
	if m.editDesc.Value() != m.view.Edit.Buffer.Description {
		m.dispatch(core.Command{Kind: core.CmdEditDescription, Text: m.editDesc.Value()})
	}
	return m, cmd
}

func (m *Model) setEditField(f focusArea) {
	m.editField = f
	m.editTitle.Blur()
	m.editDesc.Blur()
	if f == focusTitle {
		m.editTitle.Focus()
	} else {
		m.editDesc.Focus()
	}
}

// syncDraft copies the service draft into the composer inputs.
func (m *Model) syncDraft() {
	m.title.SetValue(m.view.Draft.Title)
	m.desc.SetValue(m.view.Draft.Description)
}

// syncEdit loads the edit buffer into the modal inputs.
func (m *Model) syncEdit() {
	m.editTitle.SetValue(m.view.Edit.Buffer.Title)
	m.editDesc.SetValue(m.view.Edit.Buffer.Description)
	m.setEditField(focusTitle)
}

// filterLabel returns the category filter step positions away from the
// active one, cycling through "all" and every registered category.
func (m Model) filterLabel(step int) string {
	labels := append([]string{core.AllCategories}, m.view.Categories...)
	return nextLabel(labels, m.view.Criteria.ActiveCategory(), step)
}

func nextLabel(labels []string, current string, step int) string {
	if len(labels) == 0 {
		return current
	}
	i := slices.Index(labels, current)
	if i < 0 {
		return labels[0]
	}
	n := len(labels)
	return labels[((i+step)%n+n)%n]
}
