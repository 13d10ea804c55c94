// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/thoughts/internal/app"
	"github.com/MKhiriev/thoughts/internal/autosave"
	"github.com/MKhiriev/thoughts/internal/navigation"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// startEditing loads the open editor session into the text area.
func (m mainLoopModel) startEditing() (tea.Model, tea.Cmd) {
	m.editorArea.SetValue(m.ws.Editor().Content())
	m.editorArea.CursorEnd()
	m.preview = false
	m.errMsg = ""
	m.status = ""
	cmd := m.editorArea.Focus()
	return m, cmd
}

func (m mainLoopModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	editor := m.ws.Editor()

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.closeEditor()
		case key.Matches(keyMsg, keys.save), key.Matches(keyMsg, keys.retry):
			if err := m.ws.SaveNow(m.ctx); err != nil {
				m.errMsg = humanizeError(err)
				return m, nil
			}
			m.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.discard):
			if editor.Status() != autosave.Failed {
				return m, nil
			}
			m.ws.DiscardEditor()
			m.editorArea.Blur()
			m.errMsg = ""
			m.idx = 0
			return m, m.cmdLoad()
		case key.Matches(keyMsg, keys.copy):
			content := editor.Content()
			if strings.TrimSpace(content) == "" {
				cmd := m.setStatus(app.MsgNothingToCopy)
				return m, cmd
			}
			if err := clipboard.WriteAll(content); err != nil {
				m.logger.Warn().Err(err).Str("func", "mainLoopModel.updateEditor").Msg("clipboard write failed")
				m.errMsg = app.MsgUnexpectedError
				return m, nil
			}
			cmd := m.setStatus(app.MsgCopied)
			return m, cmd
		case key.Matches(keyMsg, keys.preview):
			m.preview = !m.preview
			if m.preview {
				m.editorArea.Blur()
				return m, nil
			}
			cmd := m.editorArea.Focus()
			return m, cmd
		}

		if m.preview {
			return m, nil
		}
	}

	before := m.editorArea.Value()
	var cmd tea.Cmd
	m.editorArea, cmd = m.editorArea.Update(msg)
	if after := m.editorArea.Value(); after != before {
		m.ws.Edit(after)
	}
	return m, cmd
}

// closeEditor runs the final save. On failure the editor stays open with
// the retry banner.
func (m mainLoopModel) closeEditor() (tea.Model, tea.Cmd) {
	if err := m.ws.CloseEditor(m.ctx); err != nil {
		if m.ws.Editor() != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.logger.Err(err).Str("func", "mainLoopModel.closeEditor").Msg("reload after close failed")
		m.errMsg = humanizeError(err)
	} else {
		m.errMsg = ""
	}

	m.editorArea.Blur()
	m.editorArea.Reset()
	m.preview = false
	m.idx = 0
	return m, nil
}

func (m mainLoopModel) viewEditor(v navigation.Editor) string {
	editor := m.ws.Editor()
	if editor == nil {
		return m.viewHome()
	}

	title := "Thought"
	if nb, ok := m.ws.Notebook(v.NotebookID); ok {
		title = nb.Name
	}

	var b strings.Builder
	b.WriteString(m.viewSaveStatus(editor))
	b.WriteString("\n\n")

	if m.preview {
		b.WriteString(renderMarkdown(editor.Content(), m.noteWidth()))
	} else {
		b.WriteString(m.editorArea.View())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.status))
	}
	if editor.Status() == autosave.Failed {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(app.MsgDiscardConfirmation))
	}

	hotKeys := "esc: back │ ctrl+s: save │ ctrl+y: copy │ ctrl+p: preview"
	if editor.Status() == autosave.Failed {
		hotKeys = "esc: back │ ctrl+r: retry │ ctrl+d: discard changes"
	}

	return renderPage(pageTitle(title), b.String(), hotKeys)
}

func (m mainLoopModel) viewSaveStatus(editor *autosave.Coordinator) string {
	switch editor.Status() {
	case autosave.Saving:
		return m.spinner.View() + " " + mutedStyle.Render(app.MsgSaving)
	case autosave.Saved:
		return mutedStyle.Render(app.MsgSaved + " · " + editor.SavedAt().Local().Format("3:04 PM"))
	case autosave.Failed:
		msg := m.errMsg
		if msg == "" {
			msg = humanizeError(editor.Err())
		}
		return bannerStyle.Render(msg + "  ctrl+r: retry")
	case autosave.Pending:
		return mutedStyle.Render("Editing...")
	default:
		return ""
	}
}

func renderMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return app.MsgPreviewUnavailable
	}

	out, err := r.Render(content)
	if err != nil {
		return app.MsgPreviewUnavailable
	}
	return strings.TrimSpace(out)
}
