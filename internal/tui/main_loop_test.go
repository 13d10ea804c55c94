package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/thoughts/internal/app"
	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/internal/mock"
	"github.com/MKhiriev/thoughts/internal/navigation"
	"github.com/MKhiriev/thoughts/internal/service"
	"github.com/MKhiriev/thoughts/internal/workspace"
	"github.com/MKhiriev/thoughts/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubNotes struct {
	mu    sync.Mutex
	notes []models.Note
	clock time.Time
}

func (s *stubNotes) List(context.Context, *models.Session) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Note, len(s.notes))
	// most recent first
	for i, n := range s.notes {
		out[len(s.notes)-1-i] = n
	}
	return out, nil
}

func (s *stubNotes) Get(_ context.Context, _ *models.Session, id string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notes {
		if n.NoteID == id {
			return n, nil
		}
	}
	return models.Note{}, service.ErrNoteNotFound
}

func (s *stubNotes) Save(_ context.Context, d models.NoteDraft) (models.Note, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clock = s.clock.Add(time.Minute)
	for i, n := range s.notes {
		if n.NoteID == d.NoteID {
			n.Content = d.Content
			n.UpdatedAt = s.clock
			s.notes = append(append(s.notes[:i:i], s.notes[i+1:]...), n)
			return n, true, nil
		}
	}
	if d.IsBlank() {
		return models.Note{}, false, nil
	}
	n := models.Note{NoteID: d.NoteID, UserID: d.UserID, NotebookID: d.NotebookID, Content: d.Content, CreatedAt: s.clock, UpdatedAt: s.clock}
	s.notes = append(s.notes, n)
	return n, true, nil
}

type stubNotebooks struct {
	notebooks []models.Notebook
}

func (s *stubNotebooks) Create(_ context.Context, sess *models.Session, name string) (models.Notebook, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Notebook{}, service.ErrEmptyNotebookName
	}
	nb := models.Notebook{NotebookID: "nb-" + name, UserID: sess.UserID(), Name: name}
	s.notebooks = append(s.notebooks, nb)
	return nb, nil
}

func (s *stubNotebooks) List(context.Context, *models.Session) ([]models.Notebook, error) {
	return append([]models.Notebook(nil), s.notebooks...), nil
}

type mainFixture struct {
	model tea.Model
	notes *stubNotes
	auth  *mock.MockAuthService
}

func newMainFixture(t *testing.T, notebooks []models.Notebook, notes []models.Note) *mainFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &mainFixture{
		notes: &stubNotes{notes: notes, clock: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)},
		auth:  mock.NewMockAuthService(ctrl),
	}
	services := &service.ClientServices{
		AuthService:     f.auth,
		NotebookService: &stubNotebooks{notebooks: notebooks},
		NoteService:     f.notes,
	}

	sess := models.NewSession(models.User{UserID: "u1", Name: "Ann Lee", Email: "ann@example.com"}, time.Now())
	ws := workspace.New(sess, services, workspace.WithAutoSaveDelay(time.Hour))
	m := newMainLoopModel(context.Background(), ws, models.NewAppBuildInfo("1.1.0", "", ""), logger.Nop())

	f.model, _ = m.Update(m.cmdLoad()())
	return f
}

func (f *mainFixture) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		f.model, _ = f.model.Update(msg)
	}
}

func (f *mainFixture) main() mainLoopModel {
	return f.model.(mainLoopModel)
}

func TestMainLoop_HomeView(t *testing.T) {
	f := newMainFixture(t,
		[]models.Notebook{{NotebookID: "nb-1", Name: "Travel"}},
		[]models.Note{{NoteID: "a", NotebookID: models.NotebookPtr("nb-1"), Content: "Lisbon trip"}},
	)

	view := f.model.View()

	assert.Contains(t, view, "Hello, Ann.")
	assert.Contains(t, view, app.MsgNotebooks)
	assert.Contains(t, view, "Travel")
	assert.Contains(t, view, "1 thought")
	assert.Contains(t, view, "Lisbon trip")
	assert.Contains(t, view, "[home]")
}

func TestMainLoop_EmptyHome(t *testing.T) {
	f := newMainFixture(t, nil, nil)

	assert.Contains(t, f.model.View(), app.MsgNoThoughtsYet)
}

func TestMainLoop_WriteAndCloseSavesNote(t *testing.T) {
	f := newMainFixture(t, nil, nil)

	f.send(keyRunes("n"))
	require.NotNil(t, f.main().ws.Editor())
	assert.Contains(t, f.model.View(), "[write]")

	f.model = typeText(f.model, "first thought")
	f.send(keyType(tea.KeyEsc))

	assert.Nil(t, f.main().ws.Editor())
	assert.Equal(t, navigation.Home{}, f.main().ws.Nav().Current())
	assert.Contains(t, f.model.View(), "first thought")
}

func TestMainLoop_OpenNotebookAndBack(t *testing.T) {
	f := newMainFixture(t,
		[]models.Notebook{{NotebookID: "nb-1", Name: "Travel"}},
		nil,
	)

	f.send(keyType(tea.KeyEnter))
	assert.Equal(t, navigation.NotebookDetail{NotebookID: "nb-1"}, f.main().ws.Nav().Current())
	assert.Contains(t, f.model.View(), app.MsgNotebookEmpty)
	assert.Contains(t, f.model.View(), "0 thoughts")

	f.send(keyType(tea.KeyEsc))
	assert.Equal(t, navigation.Home{}, f.main().ws.Nav().Current())
}

func TestMainLoop_SearchOpensNote(t *testing.T) {
	f := newMainFixture(t, nil, []models.Note{
		{NoteID: "a", Content: "Grocery list"},
		{NoteID: "b", Content: "Lisbon trip"},
	})

	f.send(keyRunes("/"))
	assert.Contains(t, f.model.View(), app.MsgSearchTypeToSearch)
	assert.Contains(t, f.model.View(), "[search]")

	f.model = typeText(f.model, "zzz")
	assert.Contains(t, f.model.View(), app.MsgSearchNoResults)

	for range 3 {
		f.send(keyType(tea.KeyBackspace))
	}
	f.model = typeText(f.model, "LISBON")
	require.Len(t, f.main().searchResults, 1)

	f.send(keyType(tea.KeyEnter))

	m := f.main()
	assert.False(t, m.ws.Nav().IsOpen(navigation.Search))
	require.NotNil(t, m.ws.Editor())
	assert.Equal(t, "b", m.ws.Editor().NoteID())
	assert.Equal(t, "Lisbon trip", m.editorArea.Value())
}

func TestMainLoop_CreateNotebook(t *testing.T) {
	f := newMainFixture(t, nil, nil)

	f.send(keyRunes("b"))
	require.True(t, f.main().ws.Nav().IsOpen(navigation.NotebookModal))

	f.send(keyType(tea.KeyEnter))
	assert.Contains(t, f.model.View(), app.MsgEmptyNotebookName)

	f.model = typeText(f.model, "Ideas")
	f.send(keyType(tea.KeyEnter))

	assert.False(t, f.main().ws.Nav().IsOpen(navigation.NotebookModal))
	assert.Contains(t, f.model.View(), "Ideas")
}

func TestMainLoop_SignOut(t *testing.T) {
	f := newMainFixture(t, nil, nil)

	f.send(keyRunes("s"))
	view := f.model.View()
	assert.Contains(t, view, "ann@example.com")
	assert.Contains(t, view, "1.1.0")
	assert.Contains(t, view, "[settings]")

	f.auth.EXPECT().Logout(gomock.Any(), gomock.Any()).Return(nil)

	var cmd tea.Cmd
	f.model, cmd = f.model.Update(keyRunes("o"))

	require.NotNil(t, cmd)
	assert.True(t, f.main().logout)
	assert.Nil(t, f.main().ws.Session())
}

func TestRenderBottomBar(t *testing.T) {
	bar := renderBottomBar(navigation.TabSettings)

	assert.Contains(t, bar, "[settings]")
	assert.NotContains(t, bar, "[home]")
}
