package testutils

import (
	"os"
	"testing"

	prof "github.com/feastworks/feast/cmd/feast/config/profiles"
	"gopkg.in/yaml.v3"
)

// TempProfile creates a profile store file holding one named profile, for test.
//
// The created file is removed after the testcase automatically.
func TempProfile(t *testing.T, name string, profile *prof.Profile) (string, error) {
	t.Helper()

	tmprof, err := os.CreateTemp("", "")
	if err != nil {
		return "", err
	}
	defer tmprof.Close()
	filepath := tmprof.Name()

	t.Cleanup(func() { os.Remove(filepath) })

	if err := yaml.NewEncoder(tmprof).Encode(prof.Store{name: profile}); err != nil {
		return "", err
	}

	return filepath, nil
}
