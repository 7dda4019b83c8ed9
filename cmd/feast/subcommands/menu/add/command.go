package add

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	apimenu "github.com/feastworks/feast-api-types/menu"
	"github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
	"gopkg.in/yaml.v3"
)

const (
	ARG_RESTAURANT_ID = "RESTAURANT_ID"
	ARG_SPEC_FILE     = "SPEC_FILE"
)

type Option struct {
	add func(context.Context, krest.FeastClient, int64, apimenu.Spec) (apimenu.Detail, error)
}

func WithAdder(
	add func(context.Context, krest.FeastClient, int64, apimenu.Spec) (apimenu.Detail, error),
) func(*Option) *Option {
	return func(opt *Option) *Option {
		opt.add = add
		return opt
	}
}

func New(options ...func(*Option) *Option) (flarc.Command, error) {
	option := &Option{
		add: RunAddMenuItem,
	}
	for _, opt := range options {
		option = opt(option)
	}

	return flarc.NewCommand(
		"Add a menu item to a restaurant you own.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_ID, Required: true,
				Help: "Id of the restaurant the item is added to",
			},
			{
				Name: ARG_SPEC_FILE, Required: true,
				Help: "Path to a yaml file describing the menu item",
			},
		},
		common.NewTask(Task(option.add)),
		flarc.WithDescription(`
Add a menu item described in a yaml file, like:

	name: Margherita
	description: Tomato, mozzarella, basil.
	price: 9.5
	category: Pizza
	vegetarian: true

This is for accounts with the RESTAURANT_OWNER role.
`),
	)
}

func Task(
	add func(context.Context, krest.FeastClient, int64, apimenu.Spec) (apimenu.Detail, error),
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
		restaurantId, err := strconv.ParseInt(cl.Args()[ARG_RESTAURANT_ID][0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s is not a restaurant Id", flarc.ErrUsage, cl.Args()[ARG_RESTAURANT_ID][0])
		}

		buf, err := os.ReadFile(cl.Args()[ARG_SPEC_FILE][0])
		if err != nil {
			return fmt.Errorf("fail to read menu item file: %w", err)
		}

		spec := new(apimenu.Spec)
		if err := yaml.Unmarshal(buf, spec); err != nil {
			return fmt.Errorf("fail to parse menu item file: %w", err)
		}
		if spec.Name == "" {
			return fmt.Errorf("%w: menu item name is required", flarc.ErrUsage)
		}
		if spec.Price < 0 {
			return fmt.Errorf("%w: menu item price cannot be negative", flarc.ErrUsage)
		}

		item, err := add(ctx, client, restaurantId, *spec)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(item); err != nil {
			logger.Panicf("fail to dump the added menu item")
		}
		return nil
	}
}

func RunAddMenuItem(
	ctx context.Context, client krest.FeastClient, restaurantId int64, spec apimenu.Spec,
) (apimenu.Detail, error) {
	return client.AddMenuItem(ctx, restaurantId, spec)
}
