package clear

import (
	"context"
	"log"

	"github.com/feastworks/feast/cmd/feast/config/draft"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Empty your cart.",
		struct{}{},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task()),
		flarc.WithDescription(`
Empty your cart and unbind it from its restaurant.

Clearing an empty cart does nothing.
`),
	)
}

func Task() common.TaskWithCommonFlag[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		if err := draft.Remove(cf.Cart); err != nil {
			return err
		}
		logger.Println("the cart is now empty")
		return nil
	}
}
