package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"protoparts/internal/app"
)

// journalEntities maps CLI entity names to the names the services journal under.
var journalEntities = map[string]string{
	"prototype-set":      "prototype set",
	"prototype":          "prototype",
	"prototypes-package": "prototypes package",
}

func (c *cli) historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history ENTITY ID",
		Short: "Print the audit journal of one entity, newest first",
		Long:  "ENTITY is one of: " + strings.Join(entityNames(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityType, ok := journalEntities[args[0]]
			if !ok {
				return fmt.Errorf("unknown entity %q", args[0])
			}
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[1])
			}

			return c.withApp(cmd.Context(), func(a *app.App) error {
				entries, err := a.Audit.GetEntityHistory(cmd.Context(), entityType, id, limit)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				for _, e := range entries {
					if err := enc.Encode(e); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of entries")
	return cmd
}

func entityNames() []string {
	names := make([]string, 0, len(journalEntities))
	for name := range journalEntities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
