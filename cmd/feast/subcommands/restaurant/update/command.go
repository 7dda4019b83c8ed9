package update

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/feastworks/feast-api-types/restaurants"
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

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Update a restaurant you own.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_ID, Required: true,
				Help: "Id of the restaurant to be updated",
			},
			{
				Name: ARG_SPEC_FILE, Required: true,
				Help: "Path to a yaml file describing the restaurant",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Replace the description of a restaurant you own with the content of a yaml
file. The file format is the same as for "restaurant register".
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

		restaurant, err := client.UpdateRestaurant(ctx, restaurantId, *spec)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(restaurant); err != nil {
			logger.Panicf("fail to dump the updated restaurant")
		}
		return nil
	}
}
