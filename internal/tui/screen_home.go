package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/thoughts/internal/app"
	"github.com/MKhiriev/thoughts/internal/navigation"
	"github.com/MKhiriev/thoughts/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type browseItem struct {
	notebook *models.Notebook
	note     *models.Note
}

// browseItems lists the selectable rows of the current screen: notebooks
// then recent notes on Home, the notebook's notes in NotebookDetail.
func (m mainLoopModel) browseItems() []browseItem {
	var items []browseItem

	if nd, ok := m.ws.Nav().Current().(navigation.NotebookDetail); ok {
		for _, n := range m.ws.NotebookNotes(nd.NotebookID) {
			items = append(items, browseItem{note: &n})
		}
		return items
	}

	for _, nb := range m.ws.Notebooks() {
		items = append(items, browseItem{notebook: &nb})
	}
	for _, n := range m.ws.RecentNotes() {
		items = append(items, browseItem{note: &n})
	}
	return items
}

func (m *mainLoopModel) clampIndex() {
	n := len(m.browseItems())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) updateBrowse(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav := m.ws.Nav()
	items := m.browseItems()

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.idx >= len(items) {
			return m, nil
		}
		item := items[m.idx]
		if item.notebook != nil {
			m.ws.OpenNotebook(item.notebook.NotebookID)
			m.idx = 0
			return m, nil
		}
		return m.openNote(item.note.NoteID)
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.home):
		m.ws.NavigateHome()
		m.idx = 0
	case key.Matches(keyMsg, keys.newNote):
		if err := m.ws.CreateNote(); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		return m.startEditing()
	case key.Matches(keyMsg, keys.newNotebook):
		m.notebookInput.SetValue("")
		m.notebookErr = ""
		nav.Open(navigation.NotebookModal)
		cmd := m.notebookInput.Focus()
		return m, cmd
	case key.Matches(keyMsg, keys.search):
		m.searchInput.SetValue("")
		m.searchResults = nil
		m.searchIdx = 0
		nav.Open(navigation.Search)
		cmd := m.searchInput.Focus()
		return m, cmd
	case key.Matches(keyMsg, keys.settings):
		nav.Open(navigation.Settings)
	}

	return m, nil
}

func (m mainLoopModel) openNote(noteID string) (tea.Model, tea.Cmd) {
	if err := m.ws.OpenNote(noteID); err != nil {
		m.errMsg = humanizeError(err)
		return m, nil
	}
	if m.ws.Editor() == nil {
		// the note is gone; the workspace stayed Home
		m.idx = 0
		return m, nil
	}
	return m.startEditing()
}

func (m mainLoopModel) viewHome() string {
	var b strings.Builder

	if sess := m.ws.Session(); sess != nil {
		b.WriteString(titleStyle.Render(fmt.Sprintf(app.MsgGreetingFormat, sess.User.FirstName())))
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(mutedStyle.Render("Loading..."))
		return renderPage(pageTitle("Home"), b.String(), "")
	}

	items := m.browseItems()
	row := 0

	b.WriteString(titleStyle.Render(app.MsgNotebooks))
	b.WriteString("\n")
	notebooks := m.ws.Notebooks()
	if len(notebooks) == 0 {
		b.WriteString(mutedStyle.Render("  b: new notebook"))
		b.WriteString("\n")
	}
	for _, nb := range notebooks {
		label := models.ThoughtCountLabel(m.ws.NotebookNoteCount(nb.NotebookID))
		b.WriteString(fmt.Sprintf("%s %s  %s\n", cursor(row == m.idx), fitText(nb.Name, 40), mutedStyle.Render(label)))
		row++
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(app.MsgRecentThoughts))
	b.WriteString("\n")
	if row == len(items) {
		b.WriteString(mutedStyle.Render("  " + app.MsgNoThoughtsYet))
		b.WriteString("\n")
	}
	for ; row < len(items); row++ {
		b.WriteString(renderNoteRow(*items[row].note, row == m.idx, m.noteWidth()))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage(pageTitle("Home"), strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new thought │ b: new notebook │ /: search │ s: settings │ q: quit")
}

func (m mainLoopModel) viewNotebookDetail(v navigation.NotebookDetail) string {
	nb, ok := m.ws.Notebook(v.NotebookID)
	if !ok {
		return m.viewHome()
	}

	var b strings.Builder
	notes := m.ws.NotebookNotes(nb.NotebookID)

	b.WriteString(titleStyle.Render(nb.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(models.ThoughtCountLabel(len(notes))))
	b.WriteString("\n\n")

	if len(notes) == 0 {
		b.WriteString(mutedStyle.Render(app.MsgNotebookEmpty))
	}
	for i, n := range notes {
		b.WriteString(renderNoteRow(n, i == m.idx, m.noteWidth()))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage(pageTitle(nb.Name), strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new thought │ esc: home │ /: search │ s: settings")
}

func renderNoteRow(n models.Note, selected bool, width int) string {
	return fmt.Sprintf("%s %s\n    %s\n", cursor(selected), fitText(n.Preview(), width), mutedStyle.Render(n.FormattedDate()))
}

func (m mainLoopModel) noteWidth() int {
	if m.width <= 0 {
		return 60
	}
	return max(m.width-10, 20)
}
