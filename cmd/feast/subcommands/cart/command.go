package cart

import (
	cart_add "github.com/feastworks/feast/cmd/feast/subcommands/cart/add"
	cart_clear "github.com/feastworks/feast/cmd/feast/subcommands/cart/clear"
	cart_rm "github.com/feastworks/feast/cmd/feast/subcommands/cart/rm"
	cart_show "github.com/feastworks/feast/cmd/feast/subcommands/cart/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	add, err := cart_add.New()
	if err != nil {
		return nil, err
	}
	rm, err := cart_rm.New()
	if err != nil {
		return nil, err
	}
	show, err := cart_show.New()
	if err != nil {
		return nil, err
	}
	clear, err := cart_clear.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Build an order draft before placing it.",
		struct{}{},
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("clear", clear),
	)
}
