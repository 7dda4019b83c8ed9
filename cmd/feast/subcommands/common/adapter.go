package common

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/feastworks/feast/cmd/feast/config/profiles"
	"github.com/feastworks/feast/cmd/feast/env"
	cerr "github.com/feastworks/feast/cmd/feast/errors"
	krest "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/youta-t/flarc"
)

type TaskWithCommonFlag[T any] func(
	ctx context.Context,
	logger *log.Logger,
	commonFlag CommonFlags,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTaskWithCommonFlag[T any](task TaskWithCommonFlag[T]) flarc.Task[T] {
	return func(ctx context.Context, cl flarc.Commandline[T], pos []any) error {
		var commonFlag CommonFlags
		found := false
		newpos := make([]any, 0, len(pos))
		for _, p := range pos {
			switch v := p.(type) {
			case CommonFlags:
				found = true
				commonFlag = v
			default:
				newpos = append(newpos, p)
			}
		}
		if !found {
			return errors.New("programming error: common flags not found")
		}

		logger := log.New(cl.Stderr(), "", log.LstdFlags)
		logger.SetPrefix(fmt.Sprintf("[%s] ", cl.Fullname()))

		return task(
			ctx,
			logger,
			commonFlag,
			cl,
			newpos,
		)
	}
}

type Task[T any] func(
	ctx context.Context,
	logger *log.Logger,
	commonFlag CommonFlags,
	feastEnv env.FeastEnv,
	client krest.FeastClient,
	cl flarc.Commandline[T],
	params []any,
) error

// NewTask wraps a Task needing a FeastClient.
//
// It resolves the profile and the feastenv from the common flags, builds the
// client, and runs the task. When the task fails because the server rejected
// the session token, the stale session is erased from the profile store so
// that following commands do not retry it.
func NewTask[T any](task Task[T]) flarc.Task[T] {

	return NewTaskWithCommonFlag(func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag CommonFlags,
		cl flarc.Commandline[T],
		params []any,
	) error {
		store, err := profiles.LoadStore(commonFlag.ProfileStore)
		if err != nil {
			if errors.Is(err, profiles.ErrProfileStoreNotFound) {
				return cerr.NewCUIError(
					fmt.Sprintf("feast profile store (%s) is not found", commonFlag.ProfileStore),
					cerr.WithCause(err),
					cerr.WithAdvice("Please try `feast init` first"),
				)
			}
			return cerr.NewCUIError(
				fmt.Sprintf("failed to load feast profile store (%s)", commonFlag.ProfileStore),
				cerr.WithCause(err),
			)
		}
		prof, ok := store[commonFlag.Profile]
		if !ok {
			return cerr.NewCUIError(
				fmt.Sprintf(
					"profile '%s' not found in the profile store (%s)",
					commonFlag.Profile, commonFlag.ProfileStore,
				),
				cerr.WithAdvice("Please try `feast init` first"),
			)
		}

		e, err := env.LoadFeastEnv(commonFlag.Env)
		if err != nil {
			return fmt.Errorf("%w: failed to load feastenv (%s)", err, commonFlag.Env)
		}

		client, err := krest.NewClient(prof)
		if err != nil {
			return cerr.NewCUIError(
				fmt.Sprintf(
					"failed to create feast client. Your profile (%s in %s) can be broken",
					commonFlag.Profile, commonFlag.ProfileStore,
				),
				cerr.WithCause(err),
				cerr.WithAdvice("Remove it and try `feast init` again"),
			)
		}

		err = task(ctx, logger, commonFlag, *e, client, cl, params)
		if err != nil && errors.Is(err, krest.ErrUnauthorized) {
			prof.ClearSession()
			if serr := store.Save(commonFlag.ProfileStore); serr != nil {
				logger.Printf("failed to erase the stale session: %s", serr)
			}
			return cerr.NewCUIError(
				"your session is rejected by the server",
				cerr.WithCause(err),
				cerr.WithAdvice("Please try `feast auth login` again"),
			)
		}
		return err
	})
}
