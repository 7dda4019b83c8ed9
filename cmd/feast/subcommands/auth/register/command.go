package register

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	apiauth "github.com/feastworks/feast-api-types/auth"
	prof "github.com/feastworks/feast/cmd/feast/config/profiles"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Name     string `flag:"name" help:"display name of the new account"`
	Email    string `flag:"email" alias:"u" help:"email address of the new account"`
	Password string `flag:"password" help:"password. When omitted, it is read from stdin"`
	Role     string `flag:"role" help:"account role: CUSTOMER, RESTAURANT_OWNER or DELIVERY_AGENT"`
	Phone    string `flag:"phone" help:"phone number (optional)"`
	Address  string `flag:"address" help:"delivery address (optional)"`
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
		"Create a feast account and log in as it.",
		Flags{
			Role: string(apiauth.Customer),
		},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task(option.newClient)),
		flarc.WithDescription(`
Create a new account on the feast server selected by your profile.

On success you are logged in as the new account, and the issued session is
stored into the profile store.
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
		flags := cl.Flags()
		if flags.Name == "" {
			return fmt.Errorf("%w: --name is required", flarc.ErrUsage)
		}
		if flags.Email == "" {
			return fmt.Errorf("%w: --email is required", flarc.ErrUsage)
		}
		role, err := apiauth.ParseRole(flags.Role)
		if err != nil {
			return fmt.Errorf("%w: %s", flarc.ErrUsage, err)
		}

		password := flags.Password
		if password == "" {
			line, err := bufio.NewReader(cl.Stdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("%w: --password is not given and stdin is empty", flarc.ErrUsage)
			}
			password = strings.TrimRight(line, "\r\n")
		}
		if password == "" {
			return fmt.Errorf("%w: password is empty", flarc.ErrUsage)
		}

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

		anonymous := *profile
		anonymous.Session = nil
		client, err := newClient(&anonymous)
		if err != nil {
			return err
		}

		identity, err := client.Register(ctx, apiauth.RegisterRequest{
			Name:     flags.Name,
			Email:    flags.Email,
			Password: password,
			Phone:    flags.Phone,
			Address:  flags.Address,
			Role:     role,
		})
		if err != nil {
			return err
		}

		profile.SetSession(identity)
		if err := store.Save(cf.ProfileStore); err != nil {
			return fmt.Errorf(
				"%w: failed to save the session to the profile store (%s)",
				err, cf.ProfileStore,
			)
		}

		logger.Printf("registered and logged in as %s <%s> (%s)", identity.Name, identity.Email, identity.Role)
		return nil
	}
}
