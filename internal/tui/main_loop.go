package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/thoughts/internal/app"
	"github.com/MKhiriev/thoughts/internal/autosave"
	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/internal/navigation"
	"github.com/MKhiriev/thoughts/internal/workspace"
	"github.com/MKhiriev/thoughts/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// mainLoopModel renders one workspace. All workspace mutations happen in
// Update; only snapshot loading runs in a command.
type mainLoopModel struct {
	ctx       context.Context
	ws        *workspace.Workspace
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	width  int
	height int

	loading bool
	idx     int
	status  string
	errMsg  string

	editorArea textarea.Model
	preview    bool
	spinner    spinner.Model
	quitArmed  bool

	notebookInput textinput.Model
	notebookErr   string

	searchInput   textinput.Model
	searchResults []models.Note
	searchIdx     int

	logout bool
}

func newMainLoopModel(ctx context.Context, ws *workspace.Workspace, buildInfo models.AppBuildInfo, log *logger.Logger) mainLoopModel {
	area := textarea.New()
	area.Placeholder = app.MsgEditorPlaceholder
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.MaxHeight = 0
	area.SetWidth(72)
	area.SetHeight(16)

	nbInput := textinput.New()
	nbInput.Placeholder = app.MsgNotebookNamePrompt
	nbInput.CharLimit = 80
	nbInput.Width = 40

	searchInput := textinput.New()
	searchInput.Placeholder = app.MsgSearchPlaceholder
	searchInput.Width = 40

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return mainLoopModel{
		ctx:           ctx,
		ws:            ws,
		buildInfo:     buildInfo,
		logger:        log,
		loading:       true,
		editorArea:    area,
		spinner:       spin,
		notebookInput: nbInput,
		searchInput:   searchInput,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), waitForSaveEvent(m.ws.Events()), m.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeEditor()
		return m, nil
	case snapshotLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "mainLoopModel.Update").Msg("loading snapshot failed")
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.ws.Apply(msg.snapshot)
		m.clampIndex()
		return m, nil
	case saveEventMsg:
		if msg.event.Status == autosave.Failed {
			m.logger.Warn().Err(msg.event.Err).Str("note_id", msg.event.NoteID).Msg("autosave failed")
		}
		return m, waitForSaveEvent(m.ws.Events())
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	if key.Matches(keyMsg, keys.forceQuit) {
		return m.quit()
	}
	m.quitArmed = false

	nav := m.ws.Nav()
	switch {
	case nav.IsOpen(navigation.Search):
		return m.updateSearch(keyMsg)
	case nav.IsOpen(navigation.Settings):
		return m.updateSettings(keyMsg)
	case nav.IsOpen(navigation.NotebookModal):
		return m.updateNotebookModal(keyMsg)
	}

	if m.ws.Editor() != nil {
		return m.updateEditor(msg)
	}
	return m.updateBrowse(keyMsg)
}

// updateFocused forwards non-key messages, such as cursor blinks, to the
// input that has focus.
func (m mainLoopModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	nav := m.ws.Nav()
	switch {
	case nav.IsOpen(navigation.Search):
		m.searchInput, cmd = m.searchInput.Update(msg)
	case nav.IsOpen(navigation.NotebookModal):
		m.notebookInput, cmd = m.notebookInput.Update(msg)
	case m.ws.Editor() != nil:
		return m.updateEditor(msg)
	}
	return m, cmd
}

// quit leaves the program. An open editor is closed first; if its last save
// fails, the first ctrl+c only warns.
func (m mainLoopModel) quit() (tea.Model, tea.Cmd) {
	if m.ws.Editor() == nil || m.quitArmed {
		return m, tea.Quit
	}

	if err := m.ws.CloseEditor(m.ctx); err != nil && m.ws.Editor() != nil {
		m.logger.Err(err).Str("func", "mainLoopModel.quit").Msg("closing editor before quit failed")
		m.quitArmed = true
		m.errMsg = app.MsgUnsavedQuitWarning
		return m, nil
	}
	return m, tea.Quit
}

func (m mainLoopModel) View() string {
	var page string
	switch v := m.ws.Nav().Current().(type) {
	case navigation.Editor:
		page = m.viewEditor(v)
	case navigation.NotebookDetail:
		page = m.viewNotebookDetail(v)
	default:
		page = m.viewHome()
	}
	page = page + "\n" + renderBottomBar(m.ws.Nav().ActiveTab())

	nav := m.ws.Nav()
	switch {
	case nav.IsOpen(navigation.Search):
		return renderOverlay(page, "Search", m.viewSearch())
	case nav.IsOpen(navigation.Settings):
		return renderOverlay(page, app.MsgSettings, m.viewSettings())
	case nav.IsOpen(navigation.NotebookModal):
		return renderOverlay(page, app.MsgNewNotebook, m.viewNotebookModal())
	}
	return page
}

func (m mainLoopModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	ws := m.ws
	sess := ws.Session()

	return func() tea.Msg {
		snapshot, err := ws.Load(ctx, sess)
		return snapshotLoadedMsg{snapshot: snapshot, err: err}
	}
}

func waitForSaveEvent(events <-chan autosave.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return saveEventMsg{event: ev}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *mainLoopModel) setStatus(s string) tea.Cmd {
	m.status = s
	return clearStatusAfter(statusTTL)
}

func (m *mainLoopModel) resizeEditor() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.editorArea.SetWidth(max(m.width-8, 20))
	m.editorArea.SetHeight(max(m.height-14, 5))
}
