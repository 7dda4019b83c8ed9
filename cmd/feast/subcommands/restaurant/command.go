package restaurant

import (
	restaurant_find "github.com/feastworks/feast/cmd/feast/subcommands/restaurant/find"
	restaurant_mine "github.com/feastworks/feast/cmd/feast/subcommands/restaurant/mine"
	restaurant_register "github.com/feastworks/feast/cmd/feast/subcommands/restaurant/register"
	restaurant_show "github.com/feastworks/feast/cmd/feast/subcommands/restaurant/show"
	restaurant_toggle "github.com/feastworks/feast/cmd/feast/subcommands/restaurant/toggle"
	restaurant_update "github.com/feastworks/feast/cmd/feast/subcommands/restaurant/update"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := restaurant_find.New()
	if err != nil {
		return nil, err
	}
	show, err := restaurant_show.New()
	if err != nil {
		return nil, err
	}
	mine, err := restaurant_mine.New()
	if err != nil {
		return nil, err
	}
	register, err := restaurant_register.New()
	if err != nil {
		return nil, err
	}
	update, err := restaurant_update.New()
	if err != nil {
		return nil, err
	}
	toggle, err := restaurant_toggle.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Find restaurants, or manage restaurants you own.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("mine", mine),
		flarc.WithSubcommand("register", register),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("toggle", toggle),
	)
}
