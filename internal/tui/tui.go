// Package tui implements the terminal screens of the Thoughts client on top
// of Bubble Tea: the auth flow (onboarding, sign in, registration) and the
// main loop of one logged-in workspace.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/thoughts/internal/config"
	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/internal/service"
	"github.com/MKhiriev/thoughts/internal/workspace"
	"github.com/MKhiriev/thoughts/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	cfg      config.ClientApp
	logger   *logger.Logger
}

func New(services *service.ClientServices, cfg config.ClientApp, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("nil services were passed to tui constructor")
	}
	return &TUI{services: services, cfg: cfg, logger: logger}, nil
}

// AuthFlow runs onboarding, sign in and registration until a session is
// established. Returns ErrUserQuit if the user leaves.
func (t *TUI) AuthFlow(ctx context.Context) (*models.Session, error) {
	pages := map[string]tea.Model{
		"onboarding": NewOnboardingModel(),
		"login":      NewLoginModel(ctx, t.services.AuthService),
		"register":   NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "onboarding", t.buildInfo(ctx))
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser || result.session == nil {
		return nil, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the workspace of sess. logout is true when the user signed
// out, false when they quit.
func (t *TUI) MainLoop(ctx context.Context, sess *models.Session) (logout bool, err error) {
	ws := workspace.New(sess, t.services,
		workspace.WithAutoSaveDelay(t.cfg.AutoSaveDelay),
		workspace.WithRecentLimit(t.cfg.RecentNotesLimit),
		workspace.WithLogger(t.logger),
	)

	model := newMainLoopModel(ctx, ws, t.buildInfo(ctx), t.logger)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) buildInfo(ctx context.Context) models.AppBuildInfo {
	if t.services.AppInfoService == nil {
		return models.AppBuildInfo{}
	}
	return t.services.AppInfoService.GetAppInfo(ctx)
}
