package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"gitee.com/kxapp/kxapp-common/cryptoz"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/crypto/pbkdf2"
)

const (
	sessionSalt       = "itunes-service-session"
	sessionIterations = 4096
)

// Session is the per account state worth keeping between runs: the
// cookie jar snapshot plus the tokens threaded through sign in. The
// password itself is never stored.
type Session struct {
	DsPersonId string `json:"dsPersonId,omitempty"`
	Scnt       string `json:"scnt,omitempty"`
	AuthToken  string `json:"authToken,omitempty"`
	Cookies    []byte `json:"cookies,omitempty"`
}

func SessionPath(email string) string {
	h, e := os.UserHomeDir()
	if e != nil {
		h = "./"
	}
	p := filepath.Join(h, ".itunes-service", "session", strings.ToLower(email)+".itunes")
	os.MkdirAll(filepath.Dir(p), 0755)
	return p
}

func Write(email string, session *Session) error {
	data, e := jsoniter.Marshal(session)
	if e != nil {
		return e
	}
	sealed := cryptoz.EncryptAndEncode(data, sessionPassword(email))
	return os.WriteFile(SessionPath(email), []byte(sealed), 0600)
}

func Read(email string) (*Session, error) {
	raw, e := os.ReadFile(SessionPath(email))
	if e != nil {
		return nil, e
	}
	data, e := cryptoz.DecodeAndDecrypt(string(raw), sessionPassword(email))
	if e != nil {
		return nil, e
	}
	session := &Session{}
	if e := jsoniter.Unmarshal(data, session); e != nil {
		return nil, e
	}
	return session, nil
}

func Remove(email string) error {
	return os.Remove(SessionPath(email))
}

// sessionPassword derives the file key from the account name, so one
// account cannot read another account's session file by renaming it.
func sessionPassword(email string) string {
	key := pbkdf2.Key([]byte(strings.ToLower(email)), []byte(sessionSalt), sessionIterations, 32, sha256.New)
	return hex.EncodeToString(key)
}
