package add_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	apimenu "github.com/feastworks/feast-api-types/menu"
	kenv "github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	restmock "github.com/feastworks/feast/cmd/feast/rest/mock"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/feastworks/feast/cmd/feast/subcommands/internal/commandline"
	"github.com/feastworks/feast/cmd/feast/subcommands/logger"
	menu_add "github.com/feastworks/feast/cmd/feast/subcommands/menu/add"
	"github.com/youta-t/flarc"
)

func specFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "item.yaml")
	if err := os.WriteFile(path, []byte(content), os.FileMode(0600)); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(
	t *testing.T,
	client krest.FeastClient,
	out *bytes.Buffer,
	restaurantId string,
	specPath string,
) error {
	t.Helper()

	task := menu_add.Task(menu_add.RunAddMenuItem)
	return task(
		context.Background(),
		logger.Null(),
		common.CommonFlags{Cart: filepath.Join(t.TempDir(), "cart")},
		*kenv.New(),
		client,
		commandline.MockCommandline[struct{}]{
			Fullname_: "feast menu add",
			Stdout_:   out,
			Args_: map[string][]string{
				menu_add.ARG_RESTAURANT_ID: {restaurantId},
				menu_add.ARG_SPEC_FILE:     {specPath},
			},
		},
		nil,
	)
}

func TestAddCommand(t *testing.T) {
	t.Run("the yaml spec is sent and the created item is shown", func(t *testing.T) {
		client := restmock.New(t)
		client.Impl.AddMenuItem = func(ctx context.Context, restaurantId int64, spec apimenu.Spec) (apimenu.Detail, error) {
			return apimenu.Detail{
				Id: 11, RestaurantId: restaurantId, Available: true,
				Name: spec.Name, Description: spec.Description,
				Price: spec.Price, Category: spec.Category, Vegetarian: spec.Vegetarian,
			}, nil
		}

		specPath := specFile(t, `
name: Margherita
description: Tomato, mozzarella, basil.
price: 9.5
category: Pizza
vegetarian: true
`)

		out := new(bytes.Buffer)
		if err := run(t, client, out, "1", specPath); err != nil {
			t.Fatal(err)
		}

		if len(client.Calls.AddMenuItem) != 1 {
			t.Fatalf("AddMenuItem is called %d times", len(client.Calls.AddMenuItem))
		}
		call := client.Calls.AddMenuItem[0]
		if call.RestaurantId != 1 {
			t.Errorf("unexpected restaurant: %d", call.RestaurantId)
		}
		if call.Spec.Name != "Margherita" || call.Spec.Price != 9.5 ||
			call.Spec.Category != "Pizza" || !call.Spec.Vegetarian {
			t.Errorf("unexpected spec: %+v", call.Spec)
		}

		item := apimenu.Detail{}
		if err := json.Unmarshal(out.Bytes(), &item); err != nil {
			t.Fatalf("output is not json: %s", out.String())
		}
		if item.Id != 11 || !item.Available {
			t.Errorf("unexpected item: %+v", item)
		}
	})

	t.Run("a spec without a name is a usage error", func(t *testing.T) {
		client := restmock.New(t) // no Impl: any request fails the test

		specPath := specFile(t, "price: 9.5\n")

		out := new(bytes.Buffer)
		if err := run(t, client, out, "1", specPath); !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("error is not ErrUsage: %+v", err)
		}
	})

	t.Run("a negative price is a usage error", func(t *testing.T) {
		client := restmock.New(t)

		specPath := specFile(t, "name: Margherita\nprice: -1\n")

		out := new(bytes.Buffer)
		if err := run(t, client, out, "1", specPath); !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("error is not ErrUsage: %+v", err)
		}
	})

	t.Run("a missing spec file is an error", func(t *testing.T) {
		client := restmock.New(t)

		out := new(bytes.Buffer)
		missing := filepath.Join(t.TempDir(), "no-such.yaml")
		if err := run(t, client, out, "1", missing); err == nil {
			t.Errorf("no error occured")
		}
	})
}
