package restaurant

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

const ARG_RESTAURANT_ID = "RESTAURANT_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List orders placed at a restaurant you own.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_ID, Required: true,
				Help: "Id of the restaurant whose orders are listed",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
List orders placed at a restaurant as JSON.

This is for accounts with the RESTAURANT_OWNER or ADMIN role.
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
		restaurantId, err := strconv.ParseInt(cl.Args()[ARG_RESTAURANT_ID][0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s is not a restaurant Id", flarc.ErrUsage, cl.Args()[ARG_RESTAURANT_ID][0])
		}

		orders, err := client.RestaurantOrders(ctx, restaurantId)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(orders); err != nil {
			logger.Panicf("fail to dump the orders")
		}
		return nil
	}
}
