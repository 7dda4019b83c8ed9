package draft

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/feastworks/feast/cmd/feast/config/open"
	"github.com/feastworks/feast/pkg/cart"
)

var ErrCannotSaveDraft = errors.New("cannot save cart draft")

// Load hydrates the cart from the draft file.
//
// A missing file is an empty cart, not an error. A file that exists but does
// not restore into a valid cart is an error; the draft is never dropped
// silently.
func Load(path string) (*cart.Cart, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cart.New(), nil
		}
		return nil, err
	}

	snapshot := cart.Snapshot{}
	if err := yaml.Unmarshal(buf, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: cart draft (%s) is broken", err, path)
	}

	restored, err := cart.Restore(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: cart draft (%s) is broken", err, path)
	}
	return restored, nil
}

// Save writes the cart snapshot to the draft file, 0600.
//
// An empty cart removes the file instead: no draft is the same as an empty
// draft.
func Save(path string, c *cart.Cart) error {
	if c.Empty() {
		return Remove(path)
	}

	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0700)); err != nil {
		return fmt.Errorf("%w: %s", ErrCannotSaveDraft, err)
	}

	f, err := open.NewSafeFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrCannotSaveDraft, err)
	}
	defer f.Close()

	buf, err := yaml.Marshal(c.Snapshot())
	if err != nil {
		return fmt.Errorf("%w: %s", ErrCannotSaveDraft, err)
	}
	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("%w: %s", ErrCannotSaveDraft, err)
	}
	return nil
}

// Remove deletes the draft file. Removing a missing draft is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
