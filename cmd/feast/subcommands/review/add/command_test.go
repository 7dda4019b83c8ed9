package add_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	apireviews "github.com/feastworks/feast-api-types/reviews"
	kenv "github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	restmock "github.com/feastworks/feast/cmd/feast/rest/mock"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/feastworks/feast/cmd/feast/subcommands/internal/commandline"
	"github.com/feastworks/feast/cmd/feast/subcommands/logger"
	review_add "github.com/feastworks/feast/cmd/feast/subcommands/review/add"
	"github.com/youta-t/flarc"
)

func run(
	t *testing.T,
	client krest.FeastClient,
	out *bytes.Buffer,
	flags review_add.Flags,
	restaurantId string,
) error {
	t.Helper()

	task := review_add.Task()
	return task(
		context.Background(),
		logger.Null(),
		common.CommonFlags{Cart: filepath.Join(t.TempDir(), "cart")},
		*kenv.New(),
		client,
		commandline.MockCommandline[review_add.Flags]{
			Fullname_: "feast review add",
			Stdout_:   out,
			Flags_:    flags,
			Args_: map[string][]string{
				review_add.ARG_RESTAURANT_ID: {restaurantId},
			},
		},
		nil,
	)
}

func TestAddCommand(t *testing.T) {
	t.Run("a review is posted and shown", func(t *testing.T) {
		client := restmock.New(t)
		client.Impl.PostReview = func(ctx context.Context, req apireviews.CreateRequest) (apireviews.Detail, error) {
			return apireviews.Detail{
				Id: 31, RestaurantId: req.RestaurantId,
				Rating: req.Rating, Comment: req.Comment,
				CustomerId: 1, CustomerName: "alice",
			}, nil
		}

		out := new(bytes.Buffer)
		err := run(t, client, out, review_add.Flags{Rating: 4, Comment: "crispy crust"}, "1")
		if err != nil {
			t.Fatal(err)
		}

		if len(client.Calls.PostReview) != 1 {
			t.Fatalf("PostReview is called %d times", len(client.Calls.PostReview))
		}
		req := client.Calls.PostReview[0]
		if req.RestaurantId != 1 || req.Rating != 4 || req.Comment != "crispy crust" {
			t.Errorf("unexpected request: %+v", req)
		}

		review := apireviews.Detail{}
		if err := json.Unmarshal(out.Bytes(), &review); err != nil {
			t.Fatalf("output is not json: %s", out.String())
		}
		if review.Id != 31 {
			t.Errorf("unexpected review: %+v", review)
		}
	})

	t.Run("ratings out of 1 to 5 are usage errors", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			client := restmock.New(t) // no Impl: any request fails the test

			out := new(bytes.Buffer)
			err := run(t, client, out, review_add.Flags{Rating: rating}, "1")
			if !errors.Is(err, flarc.ErrUsage) {
				t.Errorf("rating %d: error is not ErrUsage: %+v", rating, err)
			}
		}
	})
}
