package add

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	apireviews "github.com/feastworks/feast-api-types/reviews"
	"github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_RESTAURANT_ID = "RESTAURANT_ID"

type Flags struct {
	Rating  int    `flag:"rating" alias:"r" help:"rating from 1 (worst) to 5 (best)"`
	Comment string `flag:"comment" alias:"m" help:"what you want to tell about the restaurant"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Review a restaurant.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_ID, Required: true,
				Help: "Id of the restaurant to be reviewed",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Post a review for a restaurant you ordered from.

The rating is required and runs from 1 to 5.
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

		flags := cl.Flags()
		if flags.Rating < 1 || 5 < flags.Rating {
			return fmt.Errorf("%w: --rating should be 1 to 5", flarc.ErrUsage)
		}

		review, err := client.PostReview(ctx, apireviews.CreateRequest{
			RestaurantId: restaurantId,
			Rating:       flags.Rating,
			Comment:      flags.Comment,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(review); err != nil {
			logger.Panicf("fail to dump the posted review")
		}
		return nil
	}
}
