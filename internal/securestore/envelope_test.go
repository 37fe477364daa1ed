package securestore

import (
	"errors"
	"path/filepath"
	"testing"

	"cic/identity-portal/internal/testutil/fsperm"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	data, err := Encrypt("pass", []byte("secret"))
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	plain, err := Decrypt("pass", data)
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if string(plain) != "secret" {
		t.Fatalf("unexpected plaintext: %q", string(plain))
	}
}

func TestDecryptTamperedFailsDeterministically(t *testing.T) {
	data, err := Encrypt("pass", []byte("secret"))
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if len(data) < 10 {
		t.Fatalf("unexpected encrypted payload size: %d", len(data))
	}
	data[len(data)-2] ^= 0xFF
	_, err = Decrypt("pass", data)
	if !errors.Is(err, ErrAuthFailed) && !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrAuthFailed, got %v", err)
	}
}

func TestDecryptRejectsPlaintextFiles(t *testing.T) {
	if _, err := Decrypt("pass", []byte(`{"access_token":"x"}`)); !errors.Is(err, ErrPlaintext) {
		t.Fatalf("expected ErrPlaintext, got %v", err)
	}
}

func TestReadWriteEncryptedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.state")
	type snapshot struct {
		AccessToken string `json:"access_token"`
	}
	if err := WriteEncryptedJSON(path, "secret", snapshot{AccessToken: "tok"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var got snapshot
	if err := ReadDecryptedJSON(path, "secret", &got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.AccessToken != "tok" {
		t.Fatalf("access token = %q", got.AccessToken)
	}
	fsperm.AssertPrivateDirPerm(t, filepath.Dir(path))
	fsperm.AssertPrivateFilePerm(t, path)

	if err := ReadDecryptedJSON(path, "wrong", &got); !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed with wrong secret, got %v", err)
	}
}
