// Package session provides stores for the single persisted session
// record read by the remote layer and written only by login, register
// and logout.
package session

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	stderrors "errors"

	formgenius "github.com/formgenius/go-formgenius"
	"github.com/formgenius/go-formgenius/errors"
)

// fileName is the fixed key under which the one session record lives.
const fileName = "user.json"

// FileStore persists the session as one JSON file in dir.
type FileStore struct {
	dir string
}

var _ formgenius.SessionStore = (*FileStore)(nil)

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Load reads the persisted session. A missing file means no session and
// is not an error.
func (s *FileStore) Load() (*formgenius.Session, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, fileName))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.NewIOError("failed to read session", err)
	}
	var sess formgenius.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errors.NewIOError("failed to decode session", err)
	}
	return &sess, nil
}

func (s *FileStore) Save(sess *formgenius.Session) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return errors.NewIOError("failed to create session directory", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return errors.NewIOError("failed to encode session", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, fileName), data, 0600); err != nil {
		return errors.NewIOError("failed to write session", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is a
// no-op.
func (s *FileStore) Clear() error {
	err := os.Remove(filepath.Join(s.dir, fileName))
	if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return errors.NewIOError("failed to remove session", err)
	}
	return nil
}

// MemStore keeps the session in memory. Useful for tests and throwaway
// sessions.
type MemStore struct {
	mu   sync.Mutex
	sess *formgenius.Session
}

var _ formgenius.SessionStore = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Load() (*formgenius.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil, nil
	}
	copied := *s.sess
	return &copied, nil
}

func (s *MemStore) Save(sess *formgenius.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.sess = &copied
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}
