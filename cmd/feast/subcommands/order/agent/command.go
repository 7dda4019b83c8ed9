package agent

import (
	"context"
	"encoding/json"
	"log"

	"github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List orders assigned to you for delivery.",
		struct{}{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
List orders assigned to your account for delivery as JSON.

This is for accounts with the DELIVERY_AGENT role.
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
		orders, err := client.AgentOrders(ctx)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(orders); err != nil {
			logger.Panicf("fail to dump your deliveries")
		}
		return nil
	}
}
