package find

import (
	"context"
	"encoding/json"
	"log"

	"github.com/feastworks/feast-api-types/restaurants"
	"github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Search string `flag:"search" alias:"s" help:"search word matched against restaurant names and cuisines"`
}

type Option struct {
	find func(context.Context, krest.FeastClient, string) ([]restaurants.Detail, error)
}

func WithFinder(
	find func(context.Context, krest.FeastClient, string) ([]restaurants.Detail, error),
) func(*Option) *Option {
	return func(opt *Option) *Option {
		opt.find = find
		return opt
	}
}

func New(options ...func(*Option) *Option) (flarc.Command, error) {
	option := &Option{
		find: RunFindRestaurants,
	}
	for _, opt := range options {
		option = opt(option)
	}

	return flarc.NewCommand(
		"Find restaurants on the platform.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task(option.find)),
		flarc.WithDescription(`
Find restaurants and show them as JSON.

Without --search, every restaurant is listed.
`),
	)
}

func Task(
	find func(context.Context, krest.FeastClient, string) ([]restaurants.Detail, error),
) common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag common.CommonFlags,
		feastEnv env.FeastEnv,
		client krest.FeastClient,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		found, err := find(ctx, client, cl.Flags().Search)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(found); err != nil {
			logger.Panicf("fail to dump found restaurants")
		}
		return nil
	}
}

func RunFindRestaurants(
	ctx context.Context, client krest.FeastClient, search string,
) ([]restaurants.Detail, error) {
	return client.FindRestaurants(ctx, search)
}
