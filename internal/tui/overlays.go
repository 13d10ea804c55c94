package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/thoughts/internal/app"
	"github.com/MKhiriev/thoughts/internal/navigation"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ─────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────

func (m mainLoopModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.searchInput.Blur()
		m.ws.Nav().Close(navigation.Search)
		return m, nil
	case keyMsg.Type == tea.KeyUp:
		if m.searchIdx > 0 {
			m.searchIdx--
		}
		return m, nil
	case keyMsg.Type == tea.KeyDown:
		if m.searchIdx < len(m.searchResults)-1 {
			m.searchIdx++
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.searchIdx >= len(m.searchResults) {
			return m, nil
		}
		m.searchInput.Blur()
		return m.openNote(m.searchResults[m.searchIdx].NoteID)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(keyMsg)
	m.searchResults = m.ws.Search(m.searchInput.Value())
	if m.searchIdx >= len(m.searchResults) {
		m.searchIdx = max(len(m.searchResults)-1, 0)
	}
	return m, cmd
}

func (m mainLoopModel) viewSearch() string {
	var b strings.Builder
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	switch {
	case strings.TrimSpace(m.searchInput.Value()) == "":
		b.WriteString(mutedStyle.Render(app.MsgSearchTypeToSearch))
	case len(m.searchResults) == 0:
		b.WriteString(mutedStyle.Render(app.MsgSearchNoResults))
	default:
		b.WriteString(mutedStyle.Render(app.MsgSearchResults))
		b.WriteString("\n")
		for i, n := range m.searchResults {
			b.WriteString(renderNoteRow(n, i == m.searchIdx, m.noteWidth()-4))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: select │ enter: open │ esc: close"))
	return b.String()
}

// ─────────────────────────────────────────────
// Settings
// ─────────────────────────────────────────────

func (m mainLoopModel) updateSettings(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.settings):
		m.ws.Nav().Close(navigation.Settings)
	case key.Matches(keyMsg, keys.signOut), key.Matches(keyMsg, keys.enter):
		if err := m.ws.Logout(m.ctx); err != nil {
			m.logger.Err(err).Str("func", "mainLoopModel.updateSettings").Msg("logout did not clear the session pointer")
		}
		m.logout = true
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) viewSettings() string {
	var b strings.Builder

	if sess := m.ws.Session(); sess != nil {
		b.WriteString(mutedStyle.Render(app.MsgAccountDetails))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("(%s) %s\n", sess.User.Initial(), sess.User.Name))
		b.WriteString(sess.User.Email)
		b.WriteString("\n\n")
	}

	b.WriteString(mutedStyle.Render(app.AppName + " " + m.buildInfo.Label()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("o: " + strings.ToLower(app.MsgSignOut) + " │ esc: close"))
	return b.String()
}

// ─────────────────────────────────────────────
// New notebook
// ─────────────────────────────────────────────

func (m mainLoopModel) updateNotebookModal(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.notebookInput.Blur()
		m.notebookErr = ""
		m.ws.Nav().Close(navigation.NotebookModal)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		nb, err := m.ws.CreateNotebook(m.ctx, m.notebookInput.Value())
		if err != nil {
			m.notebookErr = humanizeError(err)
			return m, nil
		}
		m.notebookInput.Blur()
		m.notebookErr = ""
		cmd := m.setStatus(fmt.Sprintf("Notebook %q created", nb.Name))
		return m, cmd
	}

	var cmd tea.Cmd
	m.notebookInput, cmd = m.notebookInput.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) viewNotebookModal() string {
	var b strings.Builder
	b.WriteString(m.notebookInput.View())
	if m.notebookErr != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.notebookErr))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: create │ esc: cancel"))
	return b.String()
}
