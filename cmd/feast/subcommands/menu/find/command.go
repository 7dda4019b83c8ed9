package find

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	apimenu "github.com/feastworks/feast-api-types/menu"
	"github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_RESTAURANT_ID = "RESTAURANT_ID"

type Flags struct {
	Available bool `flag:"available" alias:"a" help:"show only items available for ordering"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show the menu of a restaurant.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_ID, Required: true,
				Help: "Id of the restaurant whose menu is shown",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Show the menu of a restaurant as JSON.

With --available, items which cannot be ordered now are filtered out.
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

		items, err := client.GetMenu(ctx, restaurantId)
		if err != nil {
			return err
		}

		if cl.Flags().Available {
			available := make([]apimenu.Detail, 0, len(items))
			for _, item := range items {
				if item.Available {
					available = append(available, item)
				}
			}
			items = available
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(items); err != nil {
			logger.Panicf("fail to dump the menu")
		}
		return nil
	}
}
