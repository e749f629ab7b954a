package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"protoparts/internal/app"
	"protoparts/internal/domain/user"
)

func (c *cli) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	var email, name string
	var service bool
	create := &cobra.Command{
		Use:   "create USERNAME",
		Short: "Register a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				u := user.NewUser(args[0], email, name, service)
				if err := a.Users.Create(cmd.Context(), u); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id=%d)\n", u.DomainIdentity, u.ID)
				return nil
			})
		},
	}
	create.Flags().StringVar(&email, "email", "", "email address")
	create.Flags().StringVar(&name, "name", "", "display name")
	create.Flags().BoolVar(&service, "service-account", false, "mark as a service account")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("name")

	cmd.AddCommand(create)
	return cmd
}
