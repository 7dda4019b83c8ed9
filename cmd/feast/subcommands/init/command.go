package init

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"

	prof "github.com/feastworks/feast/cmd/feast/config/profiles"
	"github.com/feastworks/feast/cmd/feast/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_SERVER_URL = "SERVER_URL"

type Flags struct {
	CaCert string `flag:"ca-cert" help:"path to a PEM CA certificate the server is signed with"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Register a feast server into your profile store.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_SERVER_URL, Required: true,
				Help: "URL of the feast API root, like https://feast.example.com/api",
			},
		},
		common.NewTaskWithCommonFlag(Task()),
		flarc.WithDescription(`
Register a feast server into your profile store, and mark the current
directory as a feast-powered project.

The name of the profile is given by "--profile" ( default: current filepath ).
Any session stored for that profile name is discarded.
`),
	)
}

func Task() common.TaskWithCommonFlag[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		serverUrl := cl.Args()[ARG_SERVER_URL][0]

		store, err := prof.LoadStore(cf.ProfileStore)
		if errors.Is(err, prof.ErrProfileStoreNotFound) {
			store = prof.Store{}
		} else if err != nil {
			return fmt.Errorf(
				"%w: failed to load profile store (%s)", err, cf.ProfileStore,
			)
		}

		newProf := &prof.Profile{ApiRoot: serverUrl}
		if cacert := cl.Flags().CaCert; cacert != "" {
			pem, err := os.ReadFile(cacert)
			if err != nil {
				return fmt.Errorf("%w: failed to read CA certificate (%s)", err, cacert)
			}
			newProf.Cert.CA = base64.StdEncoding.EncodeToString(pem)
		}
		if err := newProf.Verify(); err != nil {
			return fmt.Errorf("%w: %s", flarc.ErrUsage, err)
		}

		profName := cf.Profile
		store[profName] = newProf
		if err := store.Save(cf.ProfileStore); err != nil {
			return fmt.Errorf(
				"%w: failed to save profile store (%s)", err, cf.ProfileStore,
			)
		}
		logger.Printf("profile %s is saved to %s", profName, cf.ProfileStore)

		f, err := os.OpenFile(".feastprofile", os.O_RDWR|os.O_CREATE|os.O_TRUNC, os.FileMode(0600))
		if err != nil {
			return fmt.Errorf("%w: failed to open .feastprofile", err)
		}
		defer f.Close()
		f.Write([]byte(profName))

		return nil
	}
}
