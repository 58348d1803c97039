package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// login authenticates against the backend and persists the session file so
// subsequent commands carry the bearer token.
func (cli *commandLine) login(uname, pwd string) error {
	creds := school.Credentials{UsernameOrEmail: uname, Password: pwd}
	if err := creds.Validate(); err != nil {
		return err
	}

	res, err := cli.api.Login(context.Background(), creds)
	if err != nil {
		return errors.Wrap(err, "logging in")
	}
	if err := cli.store.Set(res.User, res.Token); err != nil {
		return errors.Wrap(err, "persisting session")
	}

	fmt.Printf("Logged in as %s (%s)\n", res.User.Name, res.User.Role)
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.store.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func (cli *commandLine) whoami() error {
	sess := cli.store.Restore()
	if !sess.Valid() {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s (%s) <%s>\n", sess.User.Name, sess.User.Role, sess.User.Email)
	return nil
}
