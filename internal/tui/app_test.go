package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/thoughts/internal/app"
	"github.com/MKhiriev/thoughts/internal/mock"
	"github.com/MKhiriev/thoughts/internal/service"
	"github.com/MKhiriev/thoughts/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// typeText feeds s to m one rune at a time.
func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

func newAuthRoot(auth service.AuthService) RootModel {
	ctx := context.Background()
	pages := map[string]tea.Model{
		"onboarding": NewOnboardingModel(),
		"login":      NewLoginModel(ctx, auth),
		"register":   NewRegisterModel(ctx, auth),
	}
	return NewRootModel(pages, "onboarding", models.NewAppBuildInfo("1.1.0", "2026-10-01", "abc"))
}

// ─────────────────────────────────────────────
// RootModel
// ─────────────────────────────────────────────

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := newAuthRoot(nil)

	next, cmd := root.Update(keyType(tea.KeyCtrlC))

	require.NotNil(t, cmd)
	assert.True(t, next.(RootModel).quitByUser)
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	root := newAuthRoot(nil)

	next, _ := root.Update(keyRunes("v"))
	r := next.(RootModel)
	require.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "1.1.0")

	next, _ = r.Update(keyType(tea.KeyEsc))
	assert.False(t, next.(RootModel).showBuildInfo)
}

func TestRootModel_NavigateTo(t *testing.T) {
	root := newAuthRoot(nil)

	next, _ := root.Update(NavigateTo{Page: "login"})
	_, ok := next.(RootModel).current.(*LoginModel)
	assert.True(t, ok)

	next, _ = next.Update(NavigateTo{Page: "missing"})
	_, ok = next.(RootModel).current.(*LoginModel)
	assert.True(t, ok, "unknown pages are ignored")
}

func TestRootModel_SuccessfulAuthFinishesFlow(t *testing.T) {
	root := newAuthRoot(nil)
	sess := models.NewSession(models.User{UserID: "u1"}, time.Now())

	next, cmd := root.Update(AuthResult{Session: sess})

	require.NotNil(t, cmd)
	assert.Same(t, sess, next.(RootModel).session)
}

// ─────────────────────────────────────────────
// Onboarding → register
// ─────────────────────────────────────────────

func TestOnboarding_NameIsHandedToRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	root := newAuthRoot(auth)

	assert.Contains(t, root.View(), app.MsgOnboardingHeadline)

	var m tea.Model = root
	m, _ = m.Update(keyType(tea.KeyEnter))
	assert.Contains(t, m.View(), app.MsgOnboardingAskName)

	// blank names are not accepted
	m, cmd := m.Update(keyType(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), app.MsgNameRequired)

	m = typeText(m, "Ann Lee")
	m, cmd = m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, "register", nav.Page)
	assert.Equal(t, OnboardingDone{Name: "Ann Lee"}, nav.Payload)

	m, _ = m.Update(nav)
	m, _ = m.Update(nav.Payload)

	reg := m.(RootModel).current.(*RegisterModel)
	assert.Equal(t, "Ann Lee", reg.inputs[registerName].Value())
	assert.Equal(t, registerEmail, reg.focus)

	m = typeText(m, "ann@example.com")
	m, _ = m.Update(keyType(tea.KeyTab))
	m = typeText(m, "longenough")

	sess := models.NewSession(models.User{UserID: "u1", Name: "Ann Lee"}, time.Now())
	auth.EXPECT().Register(gomock.Any(), models.Credentials{
		Name:     "Ann Lee",
		Email:    "ann@example.com",
		Password: "longenough",
	}).Return(sess, nil)

	m, cmd = m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	result := cmd()
	assert.Equal(t, AuthResult{Session: sess}, result)

	m, _ = m.Update(result)
	assert.Same(t, sess, m.(RootModel).session)
}

func TestOnboarding_LoginShortcut(t *testing.T) {
	root := newAuthRoot(nil)

	_, cmd := root.Update(keyRunes("l"))

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: "login"}, cmd())
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_ErrorIsShownInline(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)

	var m tea.Model = NewLoginModel(context.Background(), auth)
	m = typeText(m, "ann@example.com")
	m, _ = m.Update(keyType(tea.KeyTab))
	m = typeText(m, "wrong-password")

	auth.EXPECT().Login(gomock.Any(), "ann@example.com", "wrong-password").Return(nil, service.ErrInvalidCredentials)

	m, cmd := m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), app.MsgProcessing)

	m, _ = m.Update(cmd())
	assert.Contains(t, m.View(), app.MsgInvalidCredentials)
	assert.False(t, m.(*LoginModel).submitting)
}

func TestLogin_RequiresBothFields(t *testing.T) {
	var m tea.Model = NewLoginModel(context.Background(), nil)
	m = typeText(m, "ann@example.com")

	m, cmd := m.Update(keyType(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), app.MsgCredentialsRequired)
}
