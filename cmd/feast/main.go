package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	subauth "github.com/feastworks/feast/cmd/feast/subcommands/auth"
	subcart "github.com/feastworks/feast/cmd/feast/subcommands/cart"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	subinit "github.com/feastworks/feast/cmd/feast/subcommands/init"
	"github.com/feastworks/feast/cmd/feast/subcommands/logger"
	submenu "github.com/feastworks/feast/cmd/feast/subcommands/menu"
	suborder "github.com/feastworks/feast/cmd/feast/subcommands/order"
	subrestaurant "github.com/feastworks/feast/cmd/feast/subcommands/restaurant"
	subreview "github.com/feastworks/feast/cmd/feast/subcommands/review"
	subver "github.com/feastworks/feast/cmd/feast/subcommands/version"
	"github.com/feastworks/feast/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func main() {
	name := path.Base(os.Args[0])
	logger := logger.Default()
	logger.SetPrefix(fmt.Sprintf("[%s] ", name))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, os.Kill,
	)
	defer cancel()

	cf := try.To(common.Flags(".")).OrFatal(logger)
	init := try.To(subinit.New()).OrFatal(logger)
	auth := try.To(subauth.New()).OrFatal(logger)
	restaurant := try.To(subrestaurant.New()).OrFatal(logger)
	menu := try.To(submenu.New()).OrFatal(logger)
	cart := try.To(subcart.New()).OrFatal(logger)
	order := try.To(suborder.New()).OrFatal(logger)
	review := try.To(subreview.New()).OrFatal(logger)
	version := try.To(subver.New()).OrFatal(logger)

	feast := try.To(
		flarc.NewCommandGroup(
			"Order food, or run your restaurant, from the command line.",
			cf,
			flarc.WithSubcommand("init", init),
			flarc.WithSubcommand("auth", auth),
			flarc.WithSubcommand("restaurant", restaurant),
			flarc.WithSubcommand("menu", menu),
			flarc.WithSubcommand("cart", cart),
			flarc.WithSubcommand("order", order),
			flarc.WithSubcommand("review", review),
			flarc.WithSubcommand("version", version),
		),
	).OrFatal(logger)

	os.Exit(flarc.Run(ctx, feast, flarc.WithHelp(true)))
}
