package cancel

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_ORDER_ID = "ORDER_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Cancel an order you placed.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ORDER_ID, Required: true,
				Help: "Id of the order to be cancelled",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Cancel an order you placed.

An order can be cancelled only while it is PENDING. Once the restaurant has
confirmed it, cancelling is up to the restaurant.
`),
	)
}

func Task() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag common.CommonFlags,
		feastEnv env.FeastEnv,
		client krest.FeastClient,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		orderId, err := strconv.ParseInt(cl.Args()[ARG_ORDER_ID][0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s is not an order Id", flarc.ErrUsage, cl.Args()[ARG_ORDER_ID][0])
		}

		order, err := client.CancelOrder(ctx, orderId)
		if err != nil {
			return err
		}

		logger.Printf("order %d is cancelled", order.Id)

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(order); err != nil {
			logger.Panicf("fail to dump the order")
		}
		return nil
	}
}
