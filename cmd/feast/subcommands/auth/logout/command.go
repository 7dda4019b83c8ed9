package logout

import (
	"context"
	"errors"
	"fmt"
	"log"

	prof "github.com/feastworks/feast/cmd/feast/config/profiles"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Discard the stored session.",
		struct{}{},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task()),
		flarc.WithDescription(`
Discard the session stored for your profile.

The account itself is kept on the server. Only the local token is erased.
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
		store, err := prof.LoadStore(cf.ProfileStore)
		if err != nil {
			if errors.Is(err, prof.ErrProfileStoreNotFound) {
				logger.Println("not logged in")
				return nil
			}
			return fmt.Errorf(
				"%w: failed to load feast profile store (%s)", err, cf.ProfileStore,
			)
		}
		profile, ok := store[cf.Profile]
		if !ok || !profile.Authenticated() {
			logger.Println("not logged in")
			return nil
		}

		profile.ClearSession()
		if err := store.Save(cf.ProfileStore); err != nil {
			return fmt.Errorf(
				"%w: failed to update the profile store (%s)", err, cf.ProfileStore,
			)
		}

		logger.Println("logged out")
		return nil
	}
}
