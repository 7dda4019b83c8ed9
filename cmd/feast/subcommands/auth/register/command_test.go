package register_test

import (
	"context"
	"errors"
	"testing"

	apiauth "github.com/feastworks/feast-api-types/auth"
	prof "github.com/feastworks/feast/cmd/feast/config/profiles"
	"github.com/feastworks/feast/cmd/feast/config/profiles/testutils"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	restmock "github.com/feastworks/feast/cmd/feast/rest/mock"
	auth_register "github.com/feastworks/feast/cmd/feast/subcommands/auth/register"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/feastworks/feast/cmd/feast/subcommands/internal/commandline"
	"github.com/feastworks/feast/cmd/feast/subcommands/logger"
	"github.com/feastworks/feast/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func run(
	t *testing.T,
	client krest.FeastClient,
	storePath string,
	flags auth_register.Flags,
) error {
	t.Helper()

	task := auth_register.Task(func(p *prof.Profile) (krest.FeastClient, error) {
		return client, nil
	})
	return task(
		context.Background(),
		logger.Null(),
		common.CommonFlags{Profile: "default", ProfileStore: storePath},
		commandline.MockCommandline[auth_register.Flags]{
			Fullname_: "feast auth register",
			Flags_:    flags,
		},
		nil,
	)
}

func TestRegisterCommand(t *testing.T) {
	t.Run("registering creates the account and stores the issued session", func(t *testing.T) {
		client := restmock.New(t)
		client.Impl.Register = func(ctx context.Context, req apiauth.RegisterRequest) (apiauth.Identity, error) {
			return apiauth.Identity{
				Token: "issued-token", UserId: 2,
				Name: req.Name, Email: req.Email, Role: req.Role,
			}, nil
		}

		storePath := try.To(testutils.TempProfile(
			t, "default", &prof.Profile{ApiRoot: "https://feast.invalid/api"},
		)).OrFatal(t)

		err := run(t, client, storePath, auth_register.Flags{
			Name: "bob", Email: "bob@example.com", Password: "open sesame",
			Role: "RESTAURANT_OWNER", Phone: "00-0000-0000",
		})
		if err != nil {
			t.Fatal(err)
		}

		if len(client.Calls.Register) != 1 {
			t.Fatalf("Register is called %d times", len(client.Calls.Register))
		}
		req := client.Calls.Register[0]
		if req.Name != "bob" || req.Email != "bob@example.com" ||
			req.Password != "open sesame" || req.Role != apiauth.RestaurantOwner ||
			req.Phone != "00-0000-0000" {
			t.Errorf("unexpected request: %+v", req)
		}

		store := try.To(prof.LoadStore(storePath)).OrFatal(t)
		saved := store["default"]
		if saved.Session == nil || saved.Session.Token != "issued-token" {
			t.Errorf("session is not saved: %+v", saved)
		}
		if saved.Session.Role != apiauth.RestaurantOwner {
			t.Errorf("unexpected role: %s", saved.Session.Role)
		}
	})

	t.Run("an unknown role is a usage error", func(t *testing.T) {
		client := restmock.New(t)

		storePath := try.To(testutils.TempProfile(
			t, "default", &prof.Profile{ApiRoot: "https://feast.invalid/api"},
		)).OrFatal(t)

		err := run(t, client, storePath, auth_register.Flags{
			Name: "bob", Email: "bob@example.com", Password: "open sesame",
			Role: "OVERLORD",
		})
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("error is not ErrUsage: %+v", err)
		}
	})

	t.Run("a missing name is a usage error", func(t *testing.T) {
		client := restmock.New(t)

		storePath := try.To(testutils.TempProfile(
			t, "default", &prof.Profile{ApiRoot: "https://feast.invalid/api"},
		)).OrFatal(t)

		err := run(t, client, storePath, auth_register.Flags{
			Email: "bob@example.com", Password: "open sesame", Role: "CUSTOMER",
		})
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("error is not ErrUsage: %+v", err)
		}
	})
}
