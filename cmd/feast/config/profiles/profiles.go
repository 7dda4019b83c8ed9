package profiles

import (
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hectane/go-acl"
	yaml "gopkg.in/yaml.v3"

	"github.com/feastworks/feast-api-types/auth"
	"github.com/feastworks/feast/cmd/feast/config/open"
)

var ErrProfileStoreNotFound = errors.New("profile store is not found")
var ErrCannotCreateConfig = errors.New("cannot create profile store")
var ErrCannotUpdateConfig = errors.New("cannot update profile store")
var ErrProfileInvalid = errors.New("feast profile is invalid")

// Store is a map from profile name to Profile.
type Store map[string]*Profile

type Cert struct {
	// base64 encoded CA certificate
	CA string `yaml:"ca,omitempty"`
}

// Session is the authenticated identity bound to a profile.
//
// It is written on login/registration and erased on logout or when the server
// rejects the token.
type Session struct {
	Token  string    `yaml:"token"`
	UserId int64     `yaml:"userId"`
	Name   string    `yaml:"name"`
	Email  string    `yaml:"email"`
	Role   auth.Role `yaml:"role"`
}

// Identity converts the stored session back to the wire shape.
func (s *Session) Identity() auth.Identity {
	return auth.Identity{
		Token:  s.Token,
		UserId: s.UserId,
		Name:   s.Name,
		Email:  s.Email,
		Role:   s.Role,
	}
}

// ExpiresAt reads the expiry claim out of the stored bearer token.
//
// The token is NOT verified; only the server can do that. This exists for
// display and for friendlier messages before a doomed request.
func (s *Session) ExpiresAt() (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}
	return exp.Time, nil
}

// Expired reports whether the stored token carries an expiry claim in the past.
// Unreadable tokens count as not expired; the server has the last word anyway.
func (s *Session) Expired(now time.Time) bool {
	exp, err := s.ExpiresAt()
	if err != nil {
		return false
	}
	return exp.Before(now)
}

// Profile is a server the CLI talks to, plus the session bound to it.
type Profile struct {
	// endpoint of the ordering platform API
	ApiRoot string `yaml:"apiRoot"`

	// cert is a certificate for the API server.
	Cert Cert `yaml:"cert,omitempty"`

	// session is present after a successful login/registration.
	Session *Session `yaml:"session,omitempty"`
}

func verifyUrl(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

func verifyPEM(b64cert string) bool {
	bin, err := base64.StdEncoding.DecodeString(b64cert)
	if err != nil {
		return false
	}
	blk, _ := pem.Decode(bin)
	return blk != nil
}

// Verify Profile.
//
// # Return
//
// nil if it is valid. Otherwise, ErrProfileInvalid error.
func (p *Profile) Verify() error {
	if !verifyUrl(p.ApiRoot) {
		return fmt.Errorf("%w: apiRoot is not URL: %s", ErrProfileInvalid, p.ApiRoot)
	}
	if p.Cert.CA != "" && !verifyPEM(p.Cert.CA) {
		return fmt.Errorf("%w: cert.ca is not PEM", ErrProfileInvalid)
	}
	if p.Session != nil {
		if p.Session.Token == "" {
			return fmt.Errorf("%w: session without token", ErrProfileInvalid)
		}
		if _, err := auth.ParseRole(string(p.Session.Role)); err != nil {
			return fmt.Errorf("%w: %s", ErrProfileInvalid, err)
		}
	}
	return nil
}

// Authenticated reports whether the profile holds a session.
func (p *Profile) Authenticated() bool {
	return p.Session != nil && p.Session.Token != ""
}

// SetSession replaces the session with the given identity.
func (p *Profile) SetSession(identity auth.Identity) {
	p.Session = &Session{
		Token:  identity.Token,
		UserId: identity.UserId,
		Name:   identity.Name,
		Email:  identity.Email,
		Role:   identity.Role,
	}
}

// ClearSession erases the session. It is idempotent.
func (p *Profile) ClearSession() {
	p.Session = nil
}

// LoadStore loads the profile store from file.
func LoadStore(filepath string) (Store, error) {
	buf, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrProfileStoreNotFound, filepath)
		}
		return nil, err
	}
	return Unmarshall(buf)
}

// Unmarshall profile store from yaml in byte array.
func Unmarshall(buf []byte) (Store, error) {
	ret := map[string]*Profile{}
	err := yaml.Unmarshal(buf, &ret)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Save profile store to file.
//
// The store carries the bearer token, so the file is kept 0600 and the
// previous content is preserved in a backup while writing.
func (s *Store) Save(path string) error {
	saving := false

	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0700)); err != nil {
		return err
	}

	bkpath := path + ".backup"
	bk, err := open.NewSafeFile(bkpath)
	if err != nil {
		return err
	}
	defer func() {
		if !saving {
			os.Remove(bkpath)
		}
	}()
	defer bk.Close()

	f, err := os.OpenFile(path, os.O_RDWR, os.FileMode(0600))
	if err == nil {
		// In case of the existing file with loose permissions,
		// enforce permission to 0600.
		if err := acl.Chmod(path, os.FileMode(0600)); err != nil {
			return err
		}
	} else {
		if os.IsPermission(err) {
			return fmt.Errorf(
				"%w, because no permission to write file at %s",
				ErrCannotUpdateConfig, path,
			)
		} else if os.IsNotExist(err) {
			f_, err_ := open.NewSafeFile(path)
			if err_ != nil {
				return fmt.Errorf(
					"%w: cannot create a file at %s",
					ErrCannotCreateConfig, path,
				)
			}
			f = f_
		} else {
			return err
		}
	}
	defer f.Close()

	if err := bk.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	if _, err := io.Copy(bk, f); err != nil {
		return err
	}

	saving = true
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	if err := f.Truncate(0); err != nil {
		return err
	}
	buf, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	_, err = f.Write(buf)

	if err == nil {
		saving = false
	}
	return err
}
