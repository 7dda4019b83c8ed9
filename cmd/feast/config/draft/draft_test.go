package draft_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/feastworks/feast/cmd/feast/config/draft"
	"github.com/feastworks/feast/pkg/cart"
	"github.com/feastworks/feast/pkg/utils/try"
)

func TestLoad(t *testing.T) {
	t.Run("missing draft is an empty cart", func(t *testing.T) {
		c := try.To(draft.Load(filepath.Join(t.TempDir(), "cart"))).OrFatal(t)
		if !c.Empty() {
			t.Error("cart should be empty")
		}
	})

	t.Run("saved draft round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart")

		orig := cart.New()
		if err := orig.Add(1, "Pizza Park", cart.Line{ItemId: 11, Name: "Margherita", UnitPrice: 100, Quantity: 2}); err != nil {
			t.Fatal(err)
		}
		if err := draft.Save(path, orig); err != nil {
			t.Fatal(err)
		}

		stat := try.To(os.Stat(path)).OrFatal(t)
		if perm := stat.Mode().Perm(); perm != 0600 {
			t.Errorf("file permission unmatch: (actual, expected) = (%o, 0600)", perm)
		}

		restored := try.To(draft.Load(path)).OrFatal(t)
		if restored.Total() != 200 || restored.ItemCount() != 2 {
			t.Errorf("cart unmatch: total=%f count=%d", restored.Total(), restored.ItemCount())
		}
		id, name, ok := restored.Restaurant()
		if !ok || id != 1 || name != "Pizza Park" {
			t.Errorf("binding unmatch: (%d, %s, %v)", id, name, ok)
		}
	})

	t.Run("broken draft is an error, not silently dropped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart")
		if err := os.WriteFile(path, []byte(`
version: 1
restaurantId: 1
restaurantName: R
lines:
    - itemId: 11
      name: A
      unitPrice: 100
      quantity: 0
`), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := draft.Load(path); !errors.Is(err, cart.ErrBrokenSnapshot) {
			t.Errorf("expected ErrBrokenSnapshot, got %v", err)
		}
	})
}

func TestSave(t *testing.T) {
	t.Run("saving an empty cart removes the draft", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart")

		c := cart.New()
		if err := c.Add(1, "Pizza Park", cart.Line{ItemId: 11, Name: "Margherita", UnitPrice: 100, Quantity: 1}); err != nil {
			t.Fatal(err)
		}
		if err := draft.Save(path, c); err != nil {
			t.Fatal(err)
		}

		c.Clear()
		if err := draft.Save(path, c); err != nil {
			t.Fatal(err)
		}

		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("draft file should be removed, got %v", err)
		}
	})

	t.Run("removing a missing draft is not an error", func(t *testing.T) {
		if err := draft.Remove(filepath.Join(t.TempDir(), "cart")); err != nil {
			t.Error(err)
		}
	})
}
