package auth

import (
	auth_login "github.com/feastworks/feast/cmd/feast/subcommands/auth/login"
	auth_logout "github.com/feastworks/feast/cmd/feast/subcommands/auth/logout"
	auth_register "github.com/feastworks/feast/cmd/feast/subcommands/auth/register"
	auth_whoami "github.com/feastworks/feast/cmd/feast/subcommands/auth/whoami"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	login, err := auth_login.New()
	if err != nil {
		return nil, err
	}
	register, err := auth_register.New()
	if err != nil {
		return nil, err
	}
	logout, err := auth_logout.New()
	if err != nil {
		return nil, err
	}
	whoami, err := auth_whoami.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manage your feast account and session.",
		struct{}{},
		flarc.WithSubcommand("login", login),
		flarc.WithSubcommand("register", register),
		flarc.WithSubcommand("logout", logout),
		flarc.WithSubcommand("whoami", whoami),
	)
}
