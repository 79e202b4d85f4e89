// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package tui provides an interactive browser for rendered schemas.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dacolabs/xsdvis/internal/lang"
	"github.com/dacolabs/xsdvis/internal/translate/text"
	"github.com/dacolabs/xsdvis/internal/visual"
)

// Run launches the browser for nodes.
func Run(ctx context.Context, title string, nodes []visual.Node, s *lang.Service) error {
	program := tea.NewProgram(New(title, nodes, s), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// row is one visible line of the tree.
type row struct {
	node *visual.Node
}

// Model is the Bubble Tea model of the browser. Children start collapsed.
type Model struct {
	title    string
	nodes    []visual.Node
	strings  *lang.Service
	expanded map[*visual.Node]bool
	rows     []row
	cursor   int
	offset   int
	width    int
	height   int
	keys     keyMap
	help     help.Model
}

// New returns a browser model over nodes.
func New(title string, nodes []visual.Node, s *lang.Service) Model {
	m := Model{
		title:    title,
		nodes:    nodes,
		strings:  s,
		expanded: make(map[*visual.Node]bool),
		keys:     defaultKeys(),
		help:     help.New(),
	}
	m.refresh()
	return m
}

// Init fulfills the Bubble Tea Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update applies key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scroll()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if n := m.Selected(); n != nil && len(n.Children) > 0 {
				m.expanded[n] = !m.expanded[n]
				m.refresh()
			}
		case key.Matches(msg, m.keys.ExpandAll):
			m.setAll(true)
		case key.Matches(msg, m.keys.CollapseAll):
			m.setAll(false)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		m.scroll()
	}
	return m, nil
}

// Selected returns the node under the cursor, or nil for an empty tree.
func (m Model) Selected() *visual.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].node
}

// Visible returns the names of the visible rows in display order.
func (m Model) Visible() []string {
	names := make([]string, len(m.rows))
	for i, r := range m.rows {
		names[i] = r.node.Name
	}
	return names
}

func (m *Model) setAll(open bool) {
	selected := m.Selected()
	for n := range visual.Walk(m.nodes) {
		if len(n.Children) > 0 {
			m.expanded[n] = open
		}
	}
	m.refresh()
	m.follow(selected)
}

// refresh rebuilds the visible rows from the expansion state.
func (m *Model) refresh() {
	m.rows = nil
	var add func(nodes []visual.Node)
	add = func(nodes []visual.Node) {
		for i := range nodes {
			n := &nodes[i]
			m.rows = append(m.rows, row{node: n})
			if m.expanded[n] {
				add(n.Children)
			}
		}
	}
	add(m.nodes)
	m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
}

// follow moves the cursor to n, or to its nearest visible ancestor.
func (m *Model) follow(n *visual.Node) {
	if n == nil {
		return
	}
	for i, r := range m.rows {
		if r.node == n {
			m.cursor = i
			return
		}
	}
	for i := len(m.rows) - 1; i >= 0; i-- {
		r := m.rows[i]
		if r.node.Level < n.Level && contains(r.node, n) {
			m.cursor = i
			return
		}
	}
}

func contains(parent, target *visual.Node) bool {
	for n := range visual.Walk(parent.Children) {
		if n == target {
			return true
		}
	}
	return false
}

func (m Model) listHeight() int {
	if m.height == 0 {
		return len(m.rows)
	}
	return max(m.height-detailsHeight-2, 3)
}

func (m *Model) scroll() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = max(0, min(m.offset, max(len(m.rows)-h, 0)))
}

const detailsHeight = 10

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	detailsStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	emphasisStyle = lipgloss.NewStyle().Bold(true)
)

// View renders the tree, the details of the selected node, and the key help.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n")

	end := min(m.offset+m.listHeight(), len(m.rows))
	for i := m.offset; i < end; i++ {
		line := m.line(m.rows[i].node)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if n := m.Selected(); n != nil {
		sb.WriteString(detailsStyle.Render(m.details(n)))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) line(n *visual.Node) string {
	marker := "•"
	if len(n.Children) > 0 {
		marker = "▸"
		if m.expanded[n] {
			marker = "▾"
		}
	}
	name := lipgloss.NewStyle().Bold(true).Foreground(text.Palette[n.Band()]).Render(n.Name)
	line := fmt.Sprintf("%s%s %s %s", strings.Repeat("  ", n.Level), marker, name, mutedStyle.Render(n.TypeLabel))
	if n.Optional() {
		line += " " + mutedStyle.Render("("+m.strings.Get("visualizer.layout.not_required")+")")
	}
	return line
}

func (m Model) details(n *visual.Node) string {
	lines := []string{
		fmt.Sprintf("%s [%d..%s]", n.TypeDescription, n.MinOccurs, n.MaxOccurs),
	}
	if n.Annotation != "" {
		lines = append(lines, m.strings.Get("visualizer.layout.description")+": "+strings.Join(strings.Fields(n.Annotation), " "))
	}
	for _, r := range n.Restrictions {
		lines = append(lines, visual.Emphasize(r, func(s string) string { return s }, emphasisStyle.Render))
	}
	lines = append(lines, n.StructuralNotes...)
	return strings.Join(lines, "\n")
}
