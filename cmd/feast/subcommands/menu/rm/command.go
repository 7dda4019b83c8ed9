package rm

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_ITEM_ID = "ITEM_ID"

type Option struct {
	remove func(
		ctx context.Context,
		client krest.FeastClient,
		itemId int64,
	) error
}

func WithRemover(
	remove func(
		ctx context.Context,
		client krest.FeastClient,
		itemId int64,
	) error,
) func(*Option) *Option {
	return func(opt *Option) *Option {
		opt.remove = remove
		return opt
	}
}

func New(
	options ...func(*Option) *Option,
) (flarc.Command, error) {
	option := &Option{
		remove: RunDeleteMenuItem,
	}
	for _, opt := range options {
		option = opt(option)
	}

	return flarc.NewCommand(
		"Delete a menu item from a restaurant you own.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ITEM_ID, Required: true,
				Help: "Id of the menu item to be deleted",
			},
		},
		common.NewTask(Task(option.remove)),
	)
}

func Task(
	remove func(context.Context, krest.FeastClient, int64) error,
) common.Task[struct{}] {
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

		if err := remove(ctx, client, itemId); err != nil {
			return err
		}
		logger.Printf("deleted menu item Id:%v", itemId)
		return nil
	}
}

func RunDeleteMenuItem(
	ctx context.Context, client krest.FeastClient, itemId int64,
) error {
	return client.DeleteMenuItem(ctx, itemId)
}
