package show_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/feastworks/feast/cmd/feast/config/draft"
	cart_show "github.com/feastworks/feast/cmd/feast/subcommands/cart/show"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/feastworks/feast/cmd/feast/subcommands/internal/commandline"
	"github.com/feastworks/feast/cmd/feast/subcommands/logger"
	"github.com/feastworks/feast/pkg/cart"
	"github.com/feastworks/feast/pkg/utils/try"
)

func run(t *testing.T, cartPath string) (cart_show.View, error) {
	t.Helper()

	out := new(bytes.Buffer)
	task := cart_show.Task()
	err := task(
		context.Background(),
		logger.Null(),
		common.CommonFlags{Cart: cartPath},
		commandline.MockCommandline[struct{}]{
			Fullname_: "feast cart show",
			Stdout_:   out,
		},
		nil,
	)
	if err != nil {
		return cart_show.View{}, err
	}

	view := cart_show.View{}
	if err := json.Unmarshal(out.Bytes(), &view); err != nil {
		t.Fatalf("output is not json: %s", out.String())
	}
	return view, nil
}

func TestShowCommand(t *testing.T) {
	t.Run("a seeded cart is shown with derived totals", func(t *testing.T) {
		cartPath := filepath.Join(t.TempDir(), "cart")
		c := cart.New()
		for _, l := range []cart.Line{
			{ItemId: 11, Name: "Margherita", UnitPrice: 9.5, Quantity: 2},
			{ItemId: 12, Name: "Tiramisu", UnitPrice: 5, Quantity: 1},
		} {
			if err := c.Add(1, "Mama Napoli", l); err != nil {
				t.Fatal(err)
			}
		}
		if err := draft.Save(cartPath, c); err != nil {
			t.Fatal(err)
		}

		view := try.To(run(t, cartPath)).OrFatal(t)

		if view.RestaurantId != 1 || view.RestaurantName != "Mama Napoli" {
			t.Errorf("unexpected restaurant: %+v", view)
		}
		if len(view.Items) != 2 {
			t.Errorf("unexpected items: %+v", view.Items)
		}
		if view.ItemCount != 3 {
			t.Errorf("unexpected item count: %d", view.ItemCount)
		}
		if view.Subtotal != 24 {
			t.Errorf("unexpected subtotal: %f", view.Subtotal)
		}
	})

	t.Run("a missing draft is shown as an empty cart", func(t *testing.T) {
		cartPath := filepath.Join(t.TempDir(), "cart")

		view := try.To(run(t, cartPath)).OrFatal(t)

		if view.RestaurantId != 0 || view.ItemCount != 0 || view.Subtotal != 0 {
			t.Errorf("unexpected view: %+v", view)
		}
		if view.Items == nil || len(view.Items) != 0 {
			t.Errorf("items should be an empty list: %+v", view.Items)
		}
	})
}
