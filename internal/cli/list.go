package cli

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

// newListCmd builds a "<resource> list" command tree for one API surface.
func newListCmd(use, short, path string) *cobra.Command {
	parent := &cobra.Command{
		Use:   use,
		Short: short,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List " + use,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureLogin(); err != nil {
				return err
			}
			raw, err := client.Get(path)
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, raw)
		},
	}
	registerCredFlags(list)

	parent.AddCommand(list)
	return parent
}

func newBACmd() *cobra.Command {
	return newListCmd("ba", "Business associate records", "/api/ba")
}

func newGamesCmd() *cobra.Command {
	return newListCmd("games", "Game records", "/api/games")
}

func newTeamsCmd() *cobra.Command {
	return newListCmd("teams", "Team records", "/api/teams")
}

func newPointsCmd() *cobra.Command {
	var gameID string

	parent := &cobra.Command{
		Use:   "points",
		Short: "Per-game point records",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List points for one game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if gameID == "" {
				return fmt.Errorf("--game-id is required")
			}
			if err := ensureLogin(); err != nil {
				return err
			}
			raw, err := client.Get("/api/points?game_id=" + url.QueryEscape(gameID))
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, raw)
		},
	}
	list.Flags().StringVar(&gameID, "game-id", "", "Game to list points for")
	registerCredFlags(list)

	parent.AddCommand(list)
	return parent
}
