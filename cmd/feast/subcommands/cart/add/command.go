package add

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/feastworks/feast/cmd/feast/config/draft"
	"github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/feastworks/feast/pkg/cart"
	"github.com/youta-t/flarc"
)

const (
	ARG_RESTAURANT_ID = "RESTAURANT_ID"
	ARG_ITEM_ID       = "ITEM_ID"
)

type Flags struct {
	Quantity int  `flag:"quantity" alias:"n" help:"how many of the item to add"`
	Force    bool `flag:"force" help:"when the cart holds items from another restaurant, drop them and start over"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Add a menu item to your cart.",
		Flags{
			Quantity: 1,
		},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_ID, Required: true,
				Help: "Id of the restaurant the item belongs to",
			},
			{
				Name: ARG_ITEM_ID, Required: true,
				Help: "Id of the menu item to be added",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Add a menu item to your cart. Adding the same item again increments its
quantity.

A cart holds items of a single restaurant. Adding an item from another
restaurant is refused and the cart is left as it was; pass --force to drop
the cart and start an order at the new restaurant.
`),
	)
}

func Task() common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag common.CommonFlags,
		feastEnv env.FeastEnv,
		client krest.FeastClient,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		restaurantId, err := strconv.ParseInt(cl.Args()[ARG_RESTAURANT_ID][0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s is not a restaurant Id", flarc.ErrUsage, cl.Args()[ARG_RESTAURANT_ID][0])
		}
		itemId, err := strconv.ParseInt(cl.Args()[ARG_ITEM_ID][0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s is not a menu item Id", flarc.ErrUsage, cl.Args()[ARG_ITEM_ID][0])
		}
		flags := cl.Flags()
		if flags.Quantity <= 0 {
			return fmt.Errorf("%w: --quantity should be 1 or more", flarc.ErrUsage)
		}

		c, err := draft.Load(commonFlag.Cart)
		if err != nil {
			return err
		}

		if c.ConflictsWith(restaurantId) {
			if !flags.Force {
				_, name, _ := c.Restaurant()
				return fmt.Errorf(
					"%w (%s). Pass --force to drop it, or `feast cart clear` first",
					cart.ErrRestaurantConflict, name,
				)
			}
			c.Clear()
		}

		restaurant, err := client.GetRestaurant(ctx, restaurantId)
		if err != nil {
			return err
		}
		menu, err := client.GetMenu(ctx, restaurantId)
		if err != nil {
			return err
		}

		for _, item := range menu {
			if item.Id != itemId {
				continue
			}
			if !item.Available {
				return fmt.Errorf("menu item %d (%s) is not available now", item.Id, item.Name)
			}

			if err := c.Add(restaurantId, restaurant.Name, cart.Line{
				ItemId:    item.Id,
				Name:      item.Name,
				UnitPrice: item.Price,
				Quantity:  flags.Quantity,
			}); err != nil {
				if errors.Is(err, cart.ErrRestaurantConflict) {
					return fmt.Errorf(
						"%w. Pass --force to drop it, or `feast cart clear` first", err,
					)
				}
				return err
			}

			if err := draft.Save(commonFlag.Cart, c); err != nil {
				return err
			}

			logger.Printf(
				"added %d x %s. The cart now has %d items (%s %.2f)",
				flags.Quantity, item.Name, c.ItemCount(), restaurant.Name, c.Total(),
			)
			return nil
		}

		return fmt.Errorf(
			"menu item %d is not on the menu of restaurant %d (%s)",
			itemId, restaurantId, restaurant.Name,
		)
	}
}
