package service

import (
	"errors"

	"github.com/MKhiriev/thoughts/internal/config"
	"github.com/MKhiriev/thoughts/internal/crypto"
	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/internal/store"
	"github.com/MKhiriev/thoughts/internal/validators"
	"github.com/MKhiriev/thoughts/models"
)

// ClientServices aggregates every service used by the terminal client.
type ClientServices struct {
	AuthService     AuthService
	NotebookService NotebookService
	NoteService     NoteService
	AppInfoService  AppInfoService
}

// NewClientServices wires the services over the given storages.
func NewClientServices(storages *store.Storages, cfg config.ClientApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*ClientServices, error) {
	if storages == nil {
		return nil, errors.New("nil storages were passed to service constructor")
	}

	validator := validators.NewAccountValidator()
	hasher := crypto.NewBcryptHasher(cfg.PasswordHashCost)

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		AuthService:     NewAuthService(storages.UserRepository, storages.SessionStore, hasher, validator, logger),
		NotebookService: NewNotebookService(storages.NotebookRepository, validator, logger),
		NoteService:     NewNoteService(storages.NoteRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
