package show

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
		"Show an order for the specified Id.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ORDER_ID, Required: true,
				Help: "Id of the order to be shown",
			},
		},
		common.NewTask(Task()),
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

		order, err := client.GetOrder(ctx, orderId)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(order); err != nil {
			logger.Panicf("fail to dump the order")
		}
		return nil
	}
}
