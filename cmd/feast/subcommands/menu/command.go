package menu

import (
	menu_add "github.com/feastworks/feast/cmd/feast/subcommands/menu/add"
	menu_find "github.com/feastworks/feast/cmd/feast/subcommands/menu/find"
	menu_rm "github.com/feastworks/feast/cmd/feast/subcommands/menu/rm"
	menu_toggle "github.com/feastworks/feast/cmd/feast/subcommands/menu/toggle"
	menu_update "github.com/feastworks/feast/cmd/feast/subcommands/menu/update"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := menu_find.New()
	if err != nil {
		return nil, err
	}
	add, err := menu_add.New()
	if err != nil {
		return nil, err
	}
	update, err := menu_update.New()
	if err != nil {
		return nil, err
	}
	toggle, err := menu_toggle.New()
	if err != nil {
		return nil, err
	}
	rm, err := menu_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Browse restaurant menus, or manage menus of restaurants you own.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("toggle", toggle),
		flarc.WithSubcommand("rm", rm),
	)
}
