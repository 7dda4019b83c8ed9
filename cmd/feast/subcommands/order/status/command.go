package status

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	apiorders "github.com/feastworks/feast-api-types/orders"
	"github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/feastworks/feast/pkg/utils"
	"github.com/youta-t/flarc"
)

const (
	ARG_ORDER_ID = "ORDER_ID"
	ARG_STATUS   = "STATUS"
)

type Flags struct {
	Next bool `flag:"next" help:"move the order one step forward in its lifecycle"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Move an order to another status.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_ORDER_ID, Required: true,
				Help: "Id of the order to be moved",
			},
			{
				Name: ARG_STATUS, Required: false,
				Help: "status to move the order to: " + strings.Join(
					utils.Map(apiorders.SettableStatuses(), apiorders.Status.String), ", ",
				),
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Move an order to another status, either named explicitly or derived with
--next from where the order is now:

	PENDING -> CONFIRMED -> PREPARING -> OUT_FOR_DELIVERY -> DELIVERED

Cancelling is not a status move. Use "order cancel" for that.

This is for accounts with the RESTAURANT_OWNER, DELIVERY_AGENT or ADMIN role.
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
		orderId, err := strconv.ParseInt(cl.Args()[ARG_ORDER_ID][0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s is not an order Id", flarc.ErrUsage, cl.Args()[ARG_ORDER_ID][0])
		}

		statusArgs := cl.Args()[ARG_STATUS]
		next := cl.Flags().Next
		if next == (0 < len(statusArgs)) {
			return fmt.Errorf("%w: pass either a status or --next", flarc.ErrUsage)
		}

		var to apiorders.Status
		if next {
			current, err := client.GetOrder(ctx, orderId)
			if err != nil {
				return err
			}
			derived, ok := current.Status.Next()
			if !ok {
				return fmt.Errorf(
					"order %d is %s. There is no next status. Pass one of %s explicitly",
					orderId, current.Status, strings.Join(
						utils.Map(current.Status.ManualTransitions(), apiorders.Status.String), ", ",
					),
				)
			}
			to = derived
		} else {
			parsed, err := apiorders.ParseStatus(statusArgs[0])
			if err != nil {
				return fmt.Errorf("%w: %s", flarc.ErrUsage, err)
			}
			if parsed == apiorders.Cancelled {
				return fmt.Errorf("%w: use `feast order cancel` to cancel an order", flarc.ErrUsage)
			}
			to = parsed
		}

		order, err := client.UpdateOrderStatus(ctx, orderId, to)
		if err != nil {
			return err
		}

		logger.Printf("order %d is now %s", order.Id, order.Status.Label())

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(order); err != nil {
			logger.Panicf("fail to dump the order")
		}
		return nil
	}
}
