package common_test

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"

	apiauth "github.com/feastworks/feast-api-types/auth"
	prof "github.com/feastworks/feast/cmd/feast/config/profiles"
	"github.com/feastworks/feast/cmd/feast/config/profiles/testutils"
	"github.com/feastworks/feast/cmd/feast/env"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/feastworks/feast/cmd/feast/subcommands/internal/commandline"
	"github.com/feastworks/feast/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func TestNewTaskWithCommonFlag(t *testing.T) {
	t.Run("common flags are picked out of the positional params", func(t *testing.T) {
		expected := common.CommonFlags{Profile: "default", ProfileStore: "/somewhere/profile"}

		called := false
		task := common.NewTaskWithCommonFlag(func(
			ctx context.Context,
			logger *log.Logger,
			cf common.CommonFlags,
			cl flarc.Commandline[struct{}],
			params []any,
		) error {
			called = true
			if cf != expected {
				t.Errorf("unexpected common flags: %+v", cf)
			}
			if len(params) != 1 {
				t.Errorf("common flags are not removed from params: %+v", params)
			}
			return nil
		})

		err := task(
			context.Background(),
			commandline.MockCommandline[struct{}]{Fullname_: "feast x", Stderr_: io.Discard},
			[]any{expected, "extra"},
		)
		if err != nil {
			t.Fatal(err)
		}
		if !called {
			t.Errorf("task is not called")
		}
	})

	t.Run("missing common flags are a programming error", func(t *testing.T) {
		task := common.NewTaskWithCommonFlag(func(
			ctx context.Context,
			logger *log.Logger,
			cf common.CommonFlags,
			cl flarc.Commandline[struct{}],
			params []any,
		) error {
			t.Fatal("task should not be called")
			return nil
		})

		err := task(
			context.Background(),
			commandline.MockCommandline[struct{}]{Fullname_: "feast x", Stderr_: io.Discard},
			[]any{},
		)
		if err == nil {
			t.Errorf("no error occured")
		}
	})
}

func TestNewTask(t *testing.T) {
	t.Run("a rejected session is erased from the profile store", func(t *testing.T) {
		storePath := try.To(testutils.TempProfile(
			t, "default", &prof.Profile{
				ApiRoot: "https://feast.invalid/api",
				Session: &prof.Session{
					Token: "stale-token", UserId: 1,
					Name: "alice", Email: "alice@example.com", Role: apiauth.Customer,
				},
			},
		)).OrFatal(t)

		task := common.NewTask(func(
			ctx context.Context,
			logger *log.Logger,
			cf common.CommonFlags,
			feastEnv env.FeastEnv,
			client krest.FeastClient,
			cl flarc.Commandline[struct{}],
			params []any,
		) error {
			return krest.ErrUnauthorized
		})

		cf := common.CommonFlags{
			Profile: "default", ProfileStore: storePath,
			Env:  filepath.Join(t.TempDir(), "feastenv"),
			Cart: filepath.Join(t.TempDir(), "cart"),
		}
		err := task(
			context.Background(),
			commandline.MockCommandline[struct{}]{Fullname_: "feast x", Stderr_: io.Discard},
			[]any{cf},
		)
		if !errors.Is(err, krest.ErrUnauthorized) {
			t.Errorf("unexpected error: %+v", err)
		}
		if !strings.Contains(err.Error(), "feast auth login") {
			t.Errorf("the message does not advise logging in again: %s", err.Error())
		}

		store := try.To(prof.LoadStore(storePath)).OrFatal(t)
		if store["default"].Session != nil {
			t.Errorf("the stale session survived: %+v", store["default"].Session)
		}
	})

	t.Run("other errors leave the session alone", func(t *testing.T) {
		storePath := try.To(testutils.TempProfile(
			t, "default", &prof.Profile{
				ApiRoot: "https://feast.invalid/api",
				Session: &prof.Session{
					Token: "issued-token", UserId: 1,
					Name: "alice", Email: "alice@example.com", Role: apiauth.Customer,
				},
			},
		)).OrFatal(t)

		expectedErr := errors.New("fake error")
		task := common.NewTask(func(
			ctx context.Context,
			logger *log.Logger,
			cf common.CommonFlags,
			feastEnv env.FeastEnv,
			client krest.FeastClient,
			cl flarc.Commandline[struct{}],
			params []any,
		) error {
			return expectedErr
		})

		cf := common.CommonFlags{
			Profile: "default", ProfileStore: storePath,
			Env:  filepath.Join(t.TempDir(), "feastenv"),
			Cart: filepath.Join(t.TempDir(), "cart"),
		}
		err := task(
			context.Background(),
			commandline.MockCommandline[struct{}]{Fullname_: "feast x", Stderr_: io.Discard},
			[]any{cf},
		)
		if !errors.Is(err, expectedErr) {
			t.Errorf("unexpected error: %+v", err)
		}

		store := try.To(prof.LoadStore(storePath)).OrFatal(t)
		if store["default"].Session == nil || store["default"].Session.Token != "issued-token" {
			t.Errorf("session is changed: %+v", store["default"].Session)
		}
	})

	t.Run("a missing profile store advises feast init", func(t *testing.T) {
		task := common.NewTask(func(
			ctx context.Context,
			logger *log.Logger,
			cf common.CommonFlags,
			feastEnv env.FeastEnv,
			client krest.FeastClient,
			cl flarc.Commandline[struct{}],
			params []any,
		) error {
			t.Fatal("task should not be called")
			return nil
		})

		cf := common.CommonFlags{
			Profile:      "default",
			ProfileStore: filepath.Join(t.TempDir(), "profile"),
			Env:          filepath.Join(t.TempDir(), "feastenv"),
			Cart:         filepath.Join(t.TempDir(), "cart"),
		}
		err := task(
			context.Background(),
			commandline.MockCommandline[struct{}]{Fullname_: "feast x", Stderr_: io.Discard},
			[]any{cf},
		)
		if !errors.Is(err, prof.ErrProfileStoreNotFound) {
			t.Errorf("unexpected error: %+v", err)
		}
		if !strings.Contains(err.Error(), "feast init") {
			t.Errorf("the message does not advise feast init: %s", err.Error())
		}
	})
}
