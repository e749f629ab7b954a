package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"protoparts/internal/app"
	"protoparts/internal/domain/auth"
)

func (c *cli) tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint bearer tokens",
	}

	var permissions []string
	var admin bool
	var ttl time.Duration
	issue := &cobra.Command{
		Use:   "issue USERNAME",
		Short: "Issue an access token for an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				u, err := a.Users.GetByUsername(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				token, expires, err := a.JWT.GenerateAccessToken(auth.Subject{
					UserID:      u.ID,
					Username:    u.DomainIdentity,
					Email:       u.Email,
					Name:        u.Name,
					Permissions: permissions,
					IsAdmin:     admin,
				}, ttl)
				if err != nil {
					return err
				}
				c.log.Infow("token issued", "user_id", u.ID, "expires_at", expires)
				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			})
		},
	}
	issue.Flags().StringSliceVar(&permissions, "permission", nil, "granted permission, e.g. prototype:write (repeatable)")
	issue.Flags().BoolVar(&admin, "admin", false, "grant every permission")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to jwt.access_token_ttl)")

	cmd.AddCommand(issue)
	return cmd
}
