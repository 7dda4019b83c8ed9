package toggle

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
		"Open or close a restaurant you own.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_ID, Required: true,
				Help: "Id of the restaurant to be toggled",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Flip the open/closed state of a restaurant you own.

A closed restaurant does not take new orders.
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

		restaurant, err := client.ToggleRestaurant(ctx, restaurantId)
		if err != nil {
			return err
		}

		state := "closed"
		if restaurant.Open {
			state = "open"
		}
		logger.Printf("restaurant %d (%s) is now %s", restaurant.Id, restaurant.Name, state)

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(restaurant); err != nil {
			logger.Panicf("fail to dump the restaurant")
		}
		return nil
	}
}
