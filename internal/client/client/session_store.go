package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/wandersonmk/sistemasCadastro/internal/cryptox"
	"github.com/wandersonmk/sistemasCadastro/internal/filex"
)

// SessionStore persists the provider session between calls (and, for
// FileSessionStore, between runs).
type SessionStore interface {
	// Load returns (nil, nil) when nothing is stored.
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// MemorySessionStore keeps the session for the lifetime of the process.
type MemorySessionStore struct {
	mu sync.Mutex
	s  *Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (m *MemorySessionStore) Load() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s, nil
}

func (m *MemorySessionStore) Save(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

func (m *MemorySessionStore) Clear() error {
	return m.Save(nil)
}

// FileSessionStore keeps the session as JSON in a single file readable only by
// the current user. With a passphrase the JSON is sealed with a key derived
// from it.
type FileSessionStore struct {
	mu         sync.Mutex
	path       string
	passphrase []byte

	// salt and key cache the last derivation; Argon2 is too slow to run on
	// every data call.
	salt []byte
	key  []byte
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

// NewEncryptedFileSessionStore is a FileSessionStore whose file content is
// encrypted with passphrase.
func NewEncryptedFileSessionStore(path, passphrase string) *FileSessionStore {
	return &FileSessionStore{path: path, passphrase: []byte(passphrase)}
}

// sealedFile is the on-disk shape of an encrypted session.
type sealedFile struct {
	Salt []byte `json:"salt"`
	Data []byte `json:"data"`
}

func (f *FileSessionStore) keyFor(salt []byte) []byte {
	if f.key == nil || !bytes.Equal(f.salt, salt) {
		f.salt = salt
		f.key = cryptox.DeriveKey(f.passphrase, salt)
	}
	return f.key
}

func (f *FileSessionStore) Load() (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	if len(f.passphrase) > 0 {
		var sf sealedFile
		if err := json.Unmarshal(data, &sf); err != nil {
			return nil, fmt.Errorf("decode session file: %w", err)
		}
		if data, err = cryptox.Open(sf.Data, f.keyFor(sf.Salt)); err != nil {
			return nil, fmt.Errorf("decrypt session file: %w", err)
		}
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	return &s, nil
}

func (f *FileSessionStore) Save(s *Session) error {
	if s == nil {
		return f.Clear()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if len(f.passphrase) > 0 {
		salt := f.salt
		if salt == nil {
			if salt, err = cryptox.NewSalt(); err != nil {
				return fmt.Errorf("session salt: %w", err)
			}
		}
		sealed, err := cryptox.Seal(data, f.keyFor(salt))
		if err != nil {
			return fmt.Errorf("encrypt session: %w", err)
		}
		if data, err = json.Marshal(sealedFile{Salt: salt, Data: sealed}); err != nil {
			return err
		}
	}

	if err := filex.WriteFileAtomic(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (f *FileSessionStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
