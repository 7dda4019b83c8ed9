package register

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/feastworks/feast-api-types/restaurants"
	"github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
	"gopkg.in/yaml.v3"
)

const ARG_SPEC_FILE = "SPEC_FILE"

type Option struct {
	register func(context.Context, krest.FeastClient, restaurants.Spec) (restaurants.Detail, error)
}

func WithRegister(
	register func(context.Context, krest.FeastClient, restaurants.Spec) (restaurants.Detail, error),
) func(*Option) *Option {
	return func(opt *Option) *Option {
		opt.register = register
		return opt
	}
}

func New(options ...func(*Option) *Option) (flarc.Command, error) {
	option := &Option{
		register: RunRegisterRestaurant,
	}
	for _, opt := range options {
		option = opt(option)
	}

	return flarc.NewCommand(
		"Register a new restaurant you own.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_SPEC_FILE, Required: true,
				Help: "Path to a yaml file describing the restaurant",
			},
		},
		common.NewTask(Task(option.register)),
		flarc.WithDescription(`
Register a new restaurant described in a yaml file, like:

	name: Mama Napoli
	description: Neapolitan pizza, wood fired.
	address: 1 Example St.
	phone: "+1-202-555-0175"
	cuisine: Italian
	openingHours: 11:00-22:00
	deliveryTime: 30
	deliveryFee: 2.5
	minOrderAmount: 10

This is for accounts with the RESTAURANT_OWNER role.
`),
	)
}

func Task(
	register func(context.Context, krest.FeastClient, restaurants.Spec) (restaurants.Detail, error),
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
		buf, err := os.ReadFile(cl.Args()[ARG_SPEC_FILE][0])
		if err != nil {
			return fmt.Errorf("fail to read restaurant file: %w", err)
		}

		spec := new(restaurants.Spec)
		if err := yaml.Unmarshal(buf, spec); err != nil {
			return fmt.Errorf("fail to parse restaurant file: %w", err)
		}
		if spec.Name == "" {
			return fmt.Errorf("%w: restaurant name is required", flarc.ErrUsage)
		}

		restaurant, err := register(ctx, client, *spec)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(restaurant); err != nil {
			logger.Panicf("fail to dump the registered restaurant")
		}
		return nil
	}
}

func RunRegisterRestaurant(
	ctx context.Context, client krest.FeastClient, spec restaurants.Spec,
) (restaurants.Detail, error) {
	return client.RegisterRestaurant(ctx, spec)
}
