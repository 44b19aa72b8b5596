// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput  textinput.Model
	transcript viewport.Model

	session *Session
	config  *Config

	// State
	lines         []string
	lastOutput    string
	status        string
	showReference bool
	reference     string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// clipboardWriter is swapped out in tests.
var clipboardWriter = clipboard.WriteAll

// InitialModel creates the initial model
func InitialModel(session *Session, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 5=five 3 8, walk level, remove 5, help..."
	ti.Prompt = "bst> "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	transcript := viewport.New(0, 0)

	styles := NewStyles()
	ti.PromptStyle = styles.InputPrompt

	m := Model{
		textInput:  ti,
		transcript: transcript,
		session:    session,
		config:     config,
		styles:     styles,
	}
	m.appendLine(styles.HelpDesc.Render("Type a command and press enter. F1 shows the command reference."))
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.execute()
			return m, nil
		case "f1":
			m.toggleReference()
			return m, nil
		case "ctrl+y":
			if m.lastOutput == "" {
				m.status = m.styles.ErrorMessage.Render("nothing to copy")
			} else if err := clipboardWriter(m.lastOutput); err != nil {
				m.status = m.styles.ErrorMessage.Render(fmt.Sprintf("copy failed: %v", err))
			} else {
				m.status = m.styles.SuccessMessage.Render("📋 copied last output")
			}
			return m, nil
		case "pgup":
			m.transcript.LineUp(m.transcript.Height)
			return m, nil
		case "pgdown":
			m.transcript.LineDown(m.transcript.Height)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// execute runs the current input line through the session
func (m *Model) execute() {
	line := strings.TrimSpace(m.textInput.Value())
	m.textInput.Reset()
	if line == "" {
		return
	}

	m.showReference = false
	m.status = ""
	m.appendLine(m.styles.Command.Render("bst> " + line))

	out, err := m.session.Exec(line)
	if err != nil {
		m.appendLine(m.styles.ErrorMessage.Render(err.Error()))
		return
	}
	if out != "" {
		m.lastOutput = out
		m.appendLine(out)
	}
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.refreshTranscript()
}

func (m *Model) refreshTranscript() {
	if m.showReference {
		m.transcript.SetContent(m.reference)
		m.transcript.GotoTop()
		return
	}
	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	m.transcript.GotoBottom()
}

// toggleReference switches the transcript pane to the rendered command list
func (m *Model) toggleReference() {
	m.showReference = !m.showReference
	if m.showReference && m.reference == "" {
		m.reference = m.renderReference()
	}
	m.refreshTranscript()
}

func (m *Model) renderReference() string {
	if m.glamourRenderer == nil {
		wrap := m.config.UI.WordWrap
		if wrap <= 0 {
			wrap = defaultConfig.UI.WordWrap
		}
		m.glamourRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
	}

	reference := commandReference()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(reference); err == nil {
			return rendered
		}
	}
	return reference
}

func (m *Model) updateLayout() {
	// border (2) + title (1) + input (1) + footer (2)
	m.transcript.Width = max(m.width-4, 10)
	m.transcript.Height = max(m.height-8, 3)
	m.textInput.Width = max(m.width-10, 10)
	m.refreshTranscript()
}

// View renders the session
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("🌳 bstmap %s  •  %d keys", version, m.session.Tree().Size()))
	if m.showReference {
		title = m.styles.Title.Render("📖 Command reference")
	}

	body := m.styles.Border.
		Width(m.transcript.Width).
		Render(m.transcript.View())

	sections := []string{title, body, m.textInput.View()}
	if m.status != "" {
		sections = append(sections, m.status)
	}
	sections = append(sections, m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHelp renders the key binding footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "f1", "ctrl+y", "pgup/pgdown", "esc"}
	descs := []string{"run command", "command reference", "copy last output", "scroll", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session *Session, config *Config) error {
	InitializeColors()

	model := InitialModel(session, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
