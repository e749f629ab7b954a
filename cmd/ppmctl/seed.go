package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"protoparts/internal/app"
	"protoparts/internal/core/apperror"
	"protoparts/internal/domain"
	"protoparts/internal/domain/prototypeset"
	"protoparts/internal/domain/user"
)

func (c *cli) seedCmd() *cobra.Command {
	var username, email string
	var demo bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the admin account and, optionally, demo data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				ctx := cmd.Context()
				admin, err := seedAdminUser(ctx, a, username, email)
				if err != nil {
					return err
				}
				if demo {
					if err := seedDemoData(ctx, a, admin); err != nil {
						return err
					}
				}
				c.log.Info("seeding completed successfully")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&username, "admin-username", "admin", "admin domain identity")
	cmd.Flags().StringVar(&email, "admin-email", "admin@protoparts.local", "admin email")
	cmd.Flags().BoolVar(&demo, "demo", false, "also create a demo prototype set")
	return cmd
}

func seedAdminUser(ctx context.Context, a *app.App, username, email string) (user.User, error) {
	existing, err := a.Users.GetByUsername(ctx, username)
	if err == nil {
		a.Log.Infow("admin user already exists", "user_id", existing.ID)
		return existing, nil
	}
	if !apperror.IsNotFound(err) {
		return user.User{}, err
	}

	u := user.NewUser(username, email, "Administrator", true)
	if err := a.Users.Create(ctx, u); err != nil {
		return user.User{}, err
	}
	a.Log.Infow("admin user created", "user_id", u.ID, "username", u.DomainIdentity)
	return *u, nil
}

func seedDemoData(ctx context.Context, a *app.App, admin user.User) error {
	year := time.Now().Year()
	set, err := a.PrototypeSets.Create(ctx, admin.ID, prototypeset.CreateCommand{
		Classification: domain.Classification{
			OutletCode:        "10",
			OutletTitle:       "Front Bumper",
			ProductGroupCode:  "30",
			ProductGroupTitle: "Exterior",
			LocationCode:      "FR",
			LocationTitle:     "France",
			GateLevelCode:     "30",
			GateLevelTitle:    "Prototype Gate 30",
			EvidenceYearCode:  fmt.Sprintf("%02d", year%100),
			EvidenceYearTitle: year,
			Customer:          "Demo Motors",
			Project:           "Demo Project",
			ProjectNumber:     "DP-001",
		},
		Prototypes: []prototypeset.PrototypeGroup{
			{PartTypeCode: "00", PartTypeTitle: "Housing", Count: 3, OwnerID: admin.ID},
			{PartTypeCode: "01", PartTypeTitle: "Bracket", Count: 2, OwnerID: admin.ID, Comment: "spare"},
		},
	})
	if err != nil {
		return err
	}
	a.Log.Infow("demo prototype set created", "id", set.ID, "set_identifier", set.SetIdentifier)
	return nil
}
