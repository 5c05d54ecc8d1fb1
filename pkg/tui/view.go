package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/jot/pkg/core"
)

// NoResults is shown when no note matches the current criteria.
const NoResults = "No matching results"

var (
	primary = lipgloss.Color("62")
	muted   = lipgloss.Color("242")
	danger  = lipgloss.Color("196")

	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(primary)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted)
	errorStyle    = lipgloss.NewStyle().Foreground(danger)
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(primary).Padding(0, 1)
	chipStyle     = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1)
	focusedPane   = paneStyle.BorderForeground(primary)
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(primary).Padding(1, 2)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("jot"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d notes", m.view.Total)))
	b.WriteString("\n\n")

	switch {
	case m.view.Edit.Open:
		b.WriteString(m.renderEdit())
	case m.view.Viewing.Open:
		b.WriteString(m.renderViewing())
	default:
		b.WriteString(m.renderComposer())
		b.WriteString("\n")
		b.WriteString(m.renderFilters())
		b.WriteString("\n")
		b.WriteString(m.renderList())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) pane(f focusArea) lipgloss.Style {
	if m.focus == f {
		return focusedPane
	}
	return paneStyle
}

func (m Model) renderComposer() string {
	category := mutedStyle.Render("category: ") + m.view.Draft.Category
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.title.View(),
		m.desc.View(),
		category,
	)
	style := paneStyle
	if m.focus == focusTitle || m.focus == focusDescription {
		style = focusedPane
	}
	return style.Render(body)
}

func (m Model) renderFilters() string {
	labels := append([]string{core.AllCategories}, m.view.Categories...)
	chips := make([]string, 0, len(labels))
	active := m.view.Criteria.ActiveCategory()
	for _, l := range labels {
		if l == active {
			chips = append(chips, activeStyle.Render(l))
		} else {
			chips = append(chips, chipStyle.Render(l))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.pane(focusSearch).Render(m.search.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, chips...),
	)
}

func (m Model) renderList() string {
	if m.view.Empty {
		return m.pane(focusList).Render(mutedStyle.Render(NoResults))
	}

	lines := make([]string, 0, len(m.view.Notes))
	for i, n := range m.view.Notes {
		line := fmt.Sprintf("%s %s", cardTitle(n), mutedStyle.Render("["+n.Category+"]"))
		if i == m.cursor && m.focus == focusList {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return m.pane(focusList).Render(strings.Join(lines, "\n"))
}

func (m Model) renderViewing() string {
	n := m.view.Viewing.Note
	body := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(cardTitle(n)),
		mutedStyle.Render(n.Category),
		"",
		n.Description,
		"",
		mutedStyle.Render("e edit · d delete · esc close"),
	)
	return modalStyle.Render(body)
}

func (m Model) renderEdit() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Edit note"),
		m.editTitle.View(),
		m.editDesc.View(),
		mutedStyle.Render("category: ")+m.view.Edit.Buffer.Category,
		"",
		mutedStyle.Render("ctrl+s save · ctrl+t category · esc cancel"),
	)
	return modalStyle.Render(body)
}

func cardTitle(n core.Note) string {
	if strings.TrimSpace(n.Title) == "" {
		return mutedStyle.Render("(untitled)")
	}
	return n.Title
}
