package order

import (
	order_agent "github.com/feastworks/feast/cmd/feast/subcommands/order/agent"
	order_all "github.com/feastworks/feast/cmd/feast/subcommands/order/all"
	order_cancel "github.com/feastworks/feast/cmd/feast/subcommands/order/cancel"
	order_list "github.com/feastworks/feast/cmd/feast/subcommands/order/list"
	order_place "github.com/feastworks/feast/cmd/feast/subcommands/order/place"
	order_restaurant "github.com/feastworks/feast/cmd/feast/subcommands/order/restaurant"
	order_show "github.com/feastworks/feast/cmd/feast/subcommands/order/show"
	order_status "github.com/feastworks/feast/cmd/feast/subcommands/order/status"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	place, err := order_place.New()
	if err != nil {
		return nil, err
	}
	list, err := order_list.New()
	if err != nil {
		return nil, err
	}
	show, err := order_show.New()
	if err != nil {
		return nil, err
	}
	restaurant, err := order_restaurant.New()
	if err != nil {
		return nil, err
	}
	all, err := order_all.New()
	if err != nil {
		return nil, err
	}
	agent, err := order_agent.New()
	if err != nil {
		return nil, err
	}
	status, err := order_status.New()
	if err != nil {
		return nil, err
	}
	cancel, err := order_cancel.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Place orders and follow them through delivery.",
		struct{}{},
		flarc.WithSubcommand("place", place),
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("restaurant", restaurant),
		flarc.WithSubcommand("all", all),
		flarc.WithSubcommand("agent", agent),
		flarc.WithSubcommand("status", status),
		flarc.WithSubcommand("cancel", cancel),
	)
}
