package show

import (
	"context"
	"encoding/json"
	"log"

	"github.com/feastworks/feast/cmd/feast/config/draft"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/feastworks/feast/pkg/cart"
	"github.com/youta-t/flarc"
)

// View is the printable shape of the cart: what the user picked, plus
// totals derived from the lines at the time of printing.
type View struct {
	RestaurantId   int64       `json:"restaurantId,omitempty"`
	RestaurantName string      `json:"restaurantName,omitempty"`
	Items          []cart.Line `json:"items"`
	ItemCount      int         `json:"itemCount"`
	Subtotal       float64     `json:"subtotal"`
}

func ViewOf(c *cart.Cart) View {
	id, name, _ := c.Restaurant()
	lines := c.Lines()
	if lines == nil {
		lines = []cart.Line{}
	}
	return View{
		RestaurantId:   id,
		RestaurantName: name,
		Items:          lines,
		ItemCount:      c.ItemCount(),
		Subtotal:       c.Total(),
	}
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show your cart.",
		struct{}{},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task()),
		flarc.WithDescription(`
Show your cart as JSON: the restaurant it is bound to, each line, and the
item count and subtotal derived from the lines.

Delivery fee and the final total are decided by the server when the order is
placed.
`),
	)
}

func Task() common.TaskWithCommonFlag[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		c, err := draft.Load(cf.Cart)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(ViewOf(c)); err != nil {
			logger.Panicf("fail to dump the cart")
		}
		return nil
	}
}
