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

const ARG_ITEM_ID = "ITEM_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Make a menu item available or unavailable.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ITEM_ID, Required: true,
				Help: "Id of the menu item to be toggled",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Flip the availability of a menu item of a restaurant you own.

An unavailable item stays on the menu but cannot be ordered.
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
		itemId, err := strconv.ParseInt(cl.Args()[ARG_ITEM_ID][0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s is not a menu item Id", flarc.ErrUsage, cl.Args()[ARG_ITEM_ID][0])
		}

		item, err := client.ToggleMenuItem(ctx, itemId)
		if err != nil {
			return err
		}

		state := "unavailable"
		if item.Available {
			state = "available"
		}
		logger.Printf("menu item %d (%s) is now %s", item.Id, item.Name, state)

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(item); err != nil {
			logger.Panicf("fail to dump the menu item")
		}
		return nil
	}
}
