package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/internal/mock"
	"github.com/MKhiriev/thoughts/internal/store"
	"github.com/MKhiriev/thoughts/internal/validators"
	"github.com/MKhiriev/thoughts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNotebookService(t *testing.T, repo store.NotebookRepository) *notebookService {
	t.Helper()

	svc := NewNotebookService(repo, validators.NewAccountValidator(), logger.Nop()).(*notebookService)
	svc.ids = fixedIDs{id: "nb-1"}
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestNotebookService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNotebookRepository(ctrl)
	svc := newTestNotebookService(t, repo)

	want := models.Notebook{NotebookID: "nb-1", UserID: "u1", Name: "Dreams", CreatedAt: fixedNow}
	repo.EXPECT().CreateNotebook(gomock.Any(), want).Return(nil)

	got, err := svc.Create(context.Background(), models.NewSession(models.User{UserID: "u1"}, fixedNow), "  Dreams ")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNotebookService_Create_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		sess     *models.Session
		nbName   string
		expected error
	}{
		{"blank name", models.NewSession(models.User{UserID: "u1"}, fixedNow), "   ", ErrEmptyNotebookName},
		{"no session", nil, "Dreams", ErrSessionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := newTestNotebookService(t, mock.NewMockNotebookRepository(ctrl))

			_, err := svc.Create(context.Background(), tt.sess, tt.nbName)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestNotebookService_Create_WriteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNotebookRepository(ctrl)
	svc := newTestNotebookService(t, repo)

	repo.EXPECT().CreateNotebook(gomock.Any(), gomock.Any()).Return(store.ErrStorageBusy)

	_, err := svc.Create(context.Background(), models.NewSession(models.User{UserID: "u1"}, fixedNow), "Dreams")

	assert.ErrorIs(t, err, ErrPersistenceWriteFailed)
}

func TestNotebookService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNotebookRepository(ctrl)
	svc := newTestNotebookService(t, repo)

	notebooks := []models.Notebook{{NotebookID: "a"}, {NotebookID: "b"}}
	repo.EXPECT().GetNotebooks(gomock.Any(), "u1").Return(notebooks, nil)

	got, err := svc.List(context.Background(), models.NewSession(models.User{UserID: "u1"}, fixedNow))

	require.NoError(t, err)
	assert.Equal(t, notebooks, got)
}

func TestNotebookService_List_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestNotebookService(t, mock.NewMockNotebookRepository(ctrl))

	_, err := svc.List(context.Background(), nil)

	assert.ErrorIs(t, err, ErrSessionNotFound)
}
