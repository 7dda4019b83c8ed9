package review

import (
	review_add "github.com/feastworks/feast/cmd/feast/subcommands/review/add"
	review_list "github.com/feastworks/feast/cmd/feast/subcommands/review/list"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	add, err := review_add.New()
	if err != nil {
		return nil, err
	}
	list, err := review_list.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Read and write restaurant reviews.",
		struct{}{},
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("list", list),
	)
}
