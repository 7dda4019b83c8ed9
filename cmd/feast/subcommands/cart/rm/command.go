package rm

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/feastworks/feast/cmd/feast/config/draft"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_ITEM_ID = "ITEM_ID"

type Flags struct {
	All bool `flag:"all" help:"drop the whole line instead of decrementing its quantity"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Remove a menu item from your cart.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_ITEM_ID, Required: true,
				Help: "Id of the menu item to be removed",
			},
		},
		common.NewTaskWithCommonFlag(Task()),
		flarc.WithDescription(`
Decrement the quantity of an item in your cart. The line disappears when its
quantity reaches zero, and with --all it disappears at once.

Removing an item the cart does not hold does nothing.
`),
	)
}

func Task() common.TaskWithCommonFlag[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		itemId, err := strconv.ParseInt(cl.Args()[ARG_ITEM_ID][0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s is not a menu item Id", flarc.ErrUsage, cl.Args()[ARG_ITEM_ID][0])
		}

		c, err := draft.Load(cf.Cart)
		if err != nil {
			return err
		}

		if cl.Flags().All {
			for _, line := range c.Lines() {
				if line.ItemId != itemId {
					continue
				}
				for i := 0; i < line.Quantity; i++ {
					c.Remove(itemId)
				}
			}
		} else {
			c.Remove(itemId)
		}

		if err := draft.Save(cf.Cart, c); err != nil {
			return err
		}

		if c.Empty() {
			logger.Println("the cart is now empty")
		} else {
			logger.Printf("the cart now has %d items (%.2f)", c.ItemCount(), c.Total())
		}
		return nil
	}
}
