package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/internal/service"
	"github.com/MKhiriev/thoughts/internal/tui"
	"github.com/MKhiriev/thoughts/models"
)

// UI is the part of the terminal interface the application drives.
type UI interface {
	AuthFlow(ctx context.Context) (*models.Session, error)
	MainLoop(ctx context.Context, sess *models.Session) (logout bool, err error)
}

type App struct {
	auth   service.AuthService
	ui     UI
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil {
		return nil, errors.New("nil services were passed to app constructor")
	}
	if ui == nil {
		return nil, errors.New("nil ui was passed to app constructor")
	}

	if log == nil {
		log = logger.Nop()
	}

	return &App{auth: services.AuthService, ui: ui, logger: log}, nil
}

// Run resumes the saved session or runs the auth flow, then runs the main
// loop. After a logout it starts over with the auth flow. Quitting from the
// auth flow is not an error.
func (a *App) Run() error {
	return a.RunContext(context.Background())
}

func (a *App) RunContext(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	sess, err := a.auth.RestoreSession(ctx)
	for {
		if err != nil {
			if !errors.Is(err, service.ErrSessionNotFound) {
				a.logger.Warn().Err(err).Msg("restoring session failed, asking to sign in")
			}

			sess, err = a.ui.AuthFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("auth flow: %w", err)
			}
		}

		a.logger.Info().Str("user_id", sess.UserID()).Msg("session started")

		logout, loopErr := a.ui.MainLoop(ctx, sess)
		if loopErr != nil {
			return fmt.Errorf("main loop: %w", loopErr)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("user_id", sess.UserID()).Msg("signed out")
		sess, err = nil, service.ErrSessionNotFound
	}
}
