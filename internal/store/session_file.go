package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/thoughts/internal/logger"
)

// SessionKey is the key under which the logged-in user id is kept.
const SessionKey = "thoughts_user_session"

// fileSessionStore keeps small string values in a JSON object on disk.
// Only [SessionKey] is used today; unknown keys are preserved on rewrite.
type fileSessionStore struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

func NewFileSessionStore(path string, logger *logger.Logger) SessionStore {
	logger.Debug().Str("path", path).Msg("creating session store")
	return &fileSessionStore{
		path:   path,
		logger: logger,
	}
}

func (s *fileSessionStore) Save(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[SessionKey] = userID

	if err = s.persist(values); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileSessionStore.Save").Msg("failed to persist session")
		return err
	}
	return nil
}

// Load returns the stored user id or [ErrSessionNotFound].
func (s *fileSessionStore) Load(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileSessionStore.Load").Msg("failed to read session")
		return "", err
	}

	userID := values[SessionKey]
	if userID == "" {
		return "", ErrSessionNotFound
	}
	return userID, nil
}

func (s *fileSessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[SessionKey]; !ok {
		return nil
	}
	delete(values, SessionKey)

	if err = s.persist(values); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileSessionStore.Clear").Msg("failed to persist session")
		return err
	}
	return nil
}

func (s *fileSessionStore) load() (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if len(data) == 0 {
		return values, nil
	}

	if err = json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	return values, nil
}

// persist writes through a temp file and rename so a crash never leaves a
// truncated session file behind.
func (s *fileSessionStore) persist(values map[string]string) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("chmod session file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
