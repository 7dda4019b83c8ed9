package place

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	apiorders "github.com/feastworks/feast-api-types/orders"
	"github.com/feastworks/feast/cmd/feast/config/draft"
	"github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Address string `flag:"address" alias:"a" help:"delivery address. Defaults to the feastenv value"`
	Payment string `flag:"payment" help:"payment method, like CASH or CARD. Defaults to the feastenv value"`
	Note    string `flag:"note" help:"special instructions for the restaurant and the courier"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Place an order from your cart.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Place an order holding everything in your cart.

The delivery address comes from --address, or from the feastenv file when the
flag is omitted. The order is refused before any request is sent when the
address is empty.

The server answers with the priced order: its subtotal, delivery fee and
total are authoritative, whatever the cart predicted. On success the cart is
emptied; on failure it is kept as it was.
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
		c, err := draft.Load(commonFlag.Cart)
		if err != nil {
			return err
		}
		if c.Empty() {
			return fmt.Errorf("the cart is empty. Try `feast cart add` first")
		}

		flags := cl.Flags()
		address := flags.Address
		if address == "" {
			address = feastEnv.DeliveryAddress
		}
		if address == "" {
			return fmt.Errorf(
				"%w: delivery address is required. Pass --address or set deliveryAddress in feastenv",
				flarc.ErrUsage,
			)
		}

		payment := flags.Payment
		if payment == "" {
			payment = feastEnv.Payment()
		}

		note := flags.Note
		if note == "" {
			note = feastEnv.SpecialInstructions
		}

		restaurantId, restaurantName, _ := c.Restaurant()
		order, err := client.PlaceOrder(ctx, apiorders.CreateRequest{
			RestaurantId:        restaurantId,
			Items:               c.OrderItems(),
			DeliveryAddress:     address,
			PaymentMethod:       payment,
			SpecialInstructions: note,
		})
		if err != nil {
			return err
		}

		if err := draft.Remove(commonFlag.Cart); err != nil {
			logger.Printf("order %d is placed, but the cart draft is left behind: %s", order.Id, err)
		}

		logger.Printf(
			"order %d is placed at %s (total %.2f)",
			order.Id, restaurantName, order.TotalAmount,
		)

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(order); err != nil {
			logger.Panicf("fail to dump the placed order")
		}
		return nil
	}
}
