package whoami

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	prof "github.com/feastworks/feast/cmd/feast/config/profiles"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Remote bool `flag:"remote" help:"ask the server who you are, instead of reading the stored session"`
}

type Option struct {
	newClient func(*prof.Profile) (krest.FeastClient, error)
}

func WithClientFactory(
	newClient func(*prof.Profile) (krest.FeastClient, error),
) func(*Option) *Option {
	return func(opt *Option) *Option {
		opt.newClient = newClient
		return opt
	}
}

func New(options ...func(*Option) *Option) (flarc.Command, error) {
	option := &Option{
		newClient: krest.NewClient,
	}
	for _, opt := range options {
		option = opt(option)
	}

	return flarc.NewCommand(
		"Show the account you are logged in as.",
		Flags{},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task(option.newClient)),
		flarc.WithDescription(`
Show the account of the stored session as JSON.

With --remote, the account is re-fetched from the server so that you can
check whether the session is still accepted.
`),
	)
}

func Task(
	newClient func(*prof.Profile) (krest.FeastClient, error),
) common.TaskWithCommonFlag[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		store, err := prof.LoadStore(cf.ProfileStore)
		if err != nil {
			if errors.Is(err, prof.ErrProfileStoreNotFound) {
				return fmt.Errorf(
					"%w: feast profile store (%s) is not found. Please try `feast init` first",
					err, cf.ProfileStore,
				)
			}
			return fmt.Errorf(
				"%w: failed to load feast profile store (%s)", err, cf.ProfileStore,
			)
		}
		profile, ok := store[cf.Profile]
		if !ok {
			return fmt.Errorf(
				"profile '%s' not found in the profile store (%s). Please try `feast init` first",
				cf.Profile, cf.ProfileStore,
			)
		}
		if !profile.Authenticated() {
			return errors.New("not logged in. Please try `feast auth login`")
		}

		if cl.Flags().Remote {
			client, err := newClient(profile)
			if err != nil {
				return err
			}
			identity, err := client.GetMe(ctx)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cl.Stdout())
			enc.SetIndent("", "    ")
			if err := enc.Encode(identity); err != nil {
				logger.Panicf("fail to dump the account")
			}
			return nil
		}

		session := profile.Session
		if expiry, err := session.ExpiresAt(); err == nil && expiry.Before(time.Now()) {
			logger.Printf("session has expired at %s. Please try `feast auth login`", expiry)
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(session.Identity()); err != nil {
			logger.Panicf("fail to dump the stored session")
		}
		return nil
	}
}
