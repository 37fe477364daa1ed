package session

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"cic/identity-portal/internal/securestore"
)

// snapshot is the persisted form of a session. The lifecycle state is
// stored as its string name so the file stays readable across releases
// that reorder the enum.
type snapshot struct {
	State         string          `json:"state"`
	Params        Parameters      `json:"params"`
	OPConfig      OPConfiguration `json:"op_config"`
	LastAuthError time.Time       `json:"last_auth_error,omitempty"`
}

// Save encrypts the current session to path. Tokens never touch disk
// in the clear.
func (s *Store) Save(path, secret string) error {
	s.mu.RLock()
	snap := snapshot{
		State:         s.state.String(),
		Params:        s.params,
		OPConfig:      s.opConfig,
		LastAuthError: s.lastAuthError,
	}
	s.mu.RUnlock()
	return securestore.WriteEncryptedJSON(path, secret, snap)
}

// Load restores a previously saved session. A missing file leaves the
// store untouched and returns no error; a present but undecryptable
// file surfaces the securestore error so a wrong secret is not
// silently treated as a fresh session.
func (s *Store) Load(path, secret string) error {
	if !securestore.IsConfigured(path, secret) {
		return nil
	}
	var snap snapshot
	if err := securestore.ReadDecryptedJSON(path, secret, &snap); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = parseState(snap.State)
	s.params = snap.Params
	s.opConfig = snap.OPConfig
	s.lastAuthError = snap.LastAuthError
	return nil
}

// Clear removes the persisted session file. Missing files are fine.
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func parseState(name string) State {
	switch name {
	case "authenticating":
		return StateAuthenticating
	case "authenticated":
		return StateAuthenticated
	case "logged_out":
		return StateLoggedOut
	case "login_error":
		return StateLoginError
	default:
		return StateAnonymous
	}
}
