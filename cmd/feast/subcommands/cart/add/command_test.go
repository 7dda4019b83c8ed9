package add_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	apimenu "github.com/feastworks/feast-api-types/menu"
	apirest "github.com/feastworks/feast-api-types/restaurants"
	"github.com/feastworks/feast/cmd/feast/config/draft"
	kenv "github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	restmock "github.com/feastworks/feast/cmd/feast/rest/mock"
	cart_add "github.com/feastworks/feast/cmd/feast/subcommands/cart/add"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/feastworks/feast/cmd/feast/subcommands/internal/commandline"
	"github.com/feastworks/feast/cmd/feast/subcommands/logger"
	"github.com/feastworks/feast/pkg/cart"
	"github.com/feastworks/feast/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func napoli() (apirest.Detail, []apimenu.Detail) {
	restaurant := apirest.Detail{Id: 1, Name: "Mama Napoli", Open: true}
	menu := []apimenu.Detail{
		{Id: 11, RestaurantId: 1, Name: "Margherita", Price: 9.5, Available: true},
		{Id: 12, RestaurantId: 1, Name: "Diavola", Price: 11, Available: false},
	}
	return restaurant, menu
}

func run(
	t *testing.T,
	client krest.FeastClient,
	cartPath string,
	flags cart_add.Flags,
	restaurantId string,
	itemId string,
) error {
	t.Helper()

	task := cart_add.Task()
	return task(
		context.Background(),
		logger.Null(),
		common.CommonFlags{Cart: cartPath},
		*kenv.New(),
		client,
		commandline.MockCommandline[cart_add.Flags]{
			Fullname_: "feast cart add",
			Flags_:    flags,
			Args_: map[string][]string{
				cart_add.ARG_RESTAURANT_ID: {restaurantId},
				cart_add.ARG_ITEM_ID:       {itemId},
			},
		},
		nil,
	)
}

func TestAddCommand(t *testing.T) {
	t.Run("adding an item to an empty cart binds the cart and saves the draft", func(t *testing.T) {
		restaurant, menu := napoli()
		client := restmock.New(t)
		client.Impl.GetRestaurant = func(ctx context.Context, id int64) (apirest.Detail, error) {
			return restaurant, nil
		}
		client.Impl.GetMenu = func(ctx context.Context, id int64) ([]apimenu.Detail, error) {
			return menu, nil
		}

		cartPath := filepath.Join(t.TempDir(), "cart")
		if err := run(t, client, cartPath, cart_add.Flags{Quantity: 2}, "1", "11"); err != nil {
			t.Fatal(err)
		}

		c := try.To(draft.Load(cartPath)).OrFatal(t)
		id, name, ok := c.Restaurant()
		if !ok || id != 1 || name != "Mama Napoli" {
			t.Errorf("cart is not bound to the restaurant: (%d, %s, %v)", id, name, ok)
		}
		lines := c.Lines()
		if len(lines) != 1 || lines[0].ItemId != 11 || lines[0].Quantity != 2 {
			t.Errorf("unexpected cart lines: %+v", lines)
		}
		if client.Calls.GetMenu[0] != 1 {
			t.Errorf("menu of the wrong restaurant is fetched: %v", client.Calls.GetMenu)
		}
	})

	t.Run("adding the same item again increments its quantity", func(t *testing.T) {
		restaurant, menu := napoli()
		client := restmock.New(t)
		client.Impl.GetRestaurant = func(ctx context.Context, id int64) (apirest.Detail, error) {
			return restaurant, nil
		}
		client.Impl.GetMenu = func(ctx context.Context, id int64) ([]apimenu.Detail, error) {
			return menu, nil
		}

		cartPath := filepath.Join(t.TempDir(), "cart")
		if err := run(t, client, cartPath, cart_add.Flags{Quantity: 1}, "1", "11"); err != nil {
			t.Fatal(err)
		}
		if err := run(t, client, cartPath, cart_add.Flags{Quantity: 2}, "1", "11"); err != nil {
			t.Fatal(err)
		}

		c := try.To(draft.Load(cartPath)).OrFatal(t)
		lines := c.Lines()
		if len(lines) != 1 || lines[0].Quantity != 3 {
			t.Errorf("quantity is not merged: %+v", lines)
		}
	})

	t.Run("adding from another restaurant without --force is refused before any request", func(t *testing.T) {
		cartPath := filepath.Join(t.TempDir(), "cart")
		seeded := cart.New()
		if err := seeded.Add(2, "Spice Route", cart.Line{
			ItemId: 21, Name: "Biryani", UnitPrice: 12, Quantity: 1,
		}); err != nil {
			t.Fatal(err)
		}
		if err := draft.Save(cartPath, seeded); err != nil {
			t.Fatal(err)
		}

		// no Impl is set: any request to the server fails the test
		client := restmock.New(t)

		err := run(t, client, cartPath, cart_add.Flags{Quantity: 1}, "1", "11")
		if !errors.Is(err, cart.ErrRestaurantConflict) {
			t.Errorf("error is not ErrRestaurantConflict: %+v", err)
		}

		c := try.To(draft.Load(cartPath)).OrFatal(t)
		if id, _, _ := c.Restaurant(); id != 2 {
			t.Errorf("cart is not left as it was: bound to %d", id)
		}
		if lines := c.Lines(); len(lines) != 1 || lines[0].ItemId != 21 {
			t.Errorf("cart is not left as it was: %+v", lines)
		}
	})

	t.Run("adding from another restaurant with --force drops the cart and starts over", func(t *testing.T) {
		restaurant, menu := napoli()
		client := restmock.New(t)
		client.Impl.GetRestaurant = func(ctx context.Context, id int64) (apirest.Detail, error) {
			return restaurant, nil
		}
		client.Impl.GetMenu = func(ctx context.Context, id int64) ([]apimenu.Detail, error) {
			return menu, nil
		}

		cartPath := filepath.Join(t.TempDir(), "cart")
		seeded := cart.New()
		if err := seeded.Add(2, "Spice Route", cart.Line{
			ItemId: 21, Name: "Biryani", UnitPrice: 12, Quantity: 1,
		}); err != nil {
			t.Fatal(err)
		}
		if err := draft.Save(cartPath, seeded); err != nil {
			t.Fatal(err)
		}

		if err := run(t, client, cartPath, cart_add.Flags{Quantity: 1, Force: true}, "1", "11"); err != nil {
			t.Fatal(err)
		}

		c := try.To(draft.Load(cartPath)).OrFatal(t)
		if id, _, _ := c.Restaurant(); id != 1 {
			t.Errorf("cart is not re-bound: bound to %d", id)
		}
		if lines := c.Lines(); len(lines) != 1 || lines[0].ItemId != 11 {
			t.Errorf("old lines survived --force: %+v", lines)
		}
	})

	t.Run("an unavailable item is refused and the draft is kept", func(t *testing.T) {
		restaurant, menu := napoli()
		client := restmock.New(t)
		client.Impl.GetRestaurant = func(ctx context.Context, id int64) (apirest.Detail, error) {
			return restaurant, nil
		}
		client.Impl.GetMenu = func(ctx context.Context, id int64) ([]apimenu.Detail, error) {
			return menu, nil
		}

		cartPath := filepath.Join(t.TempDir(), "cart")
		if err := run(t, client, cartPath, cart_add.Flags{Quantity: 1}, "1", "12"); err == nil {
			t.Errorf("no error occured")
		}

		c := try.To(draft.Load(cartPath)).OrFatal(t)
		if !c.Empty() {
			t.Errorf("cart is not empty: %+v", c.Lines())
		}
	})

	t.Run("an item not on the menu is refused", func(t *testing.T) {
		restaurant, menu := napoli()
		client := restmock.New(t)
		client.Impl.GetRestaurant = func(ctx context.Context, id int64) (apirest.Detail, error) {
			return restaurant, nil
		}
		client.Impl.GetMenu = func(ctx context.Context, id int64) ([]apimenu.Detail, error) {
			return menu, nil
		}

		cartPath := filepath.Join(t.TempDir(), "cart")
		if err := run(t, client, cartPath, cart_add.Flags{Quantity: 1}, "1", "99"); err == nil {
			t.Errorf("no error occured")
		}
	})

	t.Run("a non-numeric Id or a non-positive quantity is a usage error", func(t *testing.T) {
		client := restmock.New(t)
		cartPath := filepath.Join(t.TempDir(), "cart")

		if err := run(t, client, cartPath, cart_add.Flags{Quantity: 1}, "pizza", "11"); !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("error is not ErrUsage: %+v", err)
		}
		if err := run(t, client, cartPath, cart_add.Flags{Quantity: 0}, "1", "11"); !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("error is not ErrUsage: %+v", err)
		}
	})
}
