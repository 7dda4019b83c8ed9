package update

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
	ARG_ITEM_ID   = "ITEM_ID"
	ARG_SPEC_FILE = "SPEC_FILE"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Update a menu item of a restaurant you own.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ITEM_ID, Required: true,
				Help: "Id of the menu item to be updated",
			},
			{
				Name: ARG_SPEC_FILE, Required: true,
				Help: "Path to a yaml file describing the menu item",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Replace a menu item with the content of a yaml file. The file format is the
same as for "menu add".
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

		item, err := client.UpdateMenuItem(ctx, itemId, *spec)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(item); err != nil {
			logger.Panicf("fail to dump the updated menu item")
		}
		return nil
	}
}
