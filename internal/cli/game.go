package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
		Long: `Game commands operate on the game given as an argument or, if none is
given, on the current game recorded by 'game new'.`,
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameSubmitCmd())
	cmd.AddCommand(newGameRestartCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func gamePath(id string, parts ...string) string {
	return "/api/v1/games/" + url.PathEscape(id) + strings.Join(parts, "")
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game and make it the current game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games", nil, &result); err != nil {
				return err
			}

			if err := cfg.SaveGameID(result.ID); err != nil {
				return fmt.Errorf("failed to save game ID: %w", err)
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a game",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveGameID(args)
			if err != nil {
				return err
			}

			var result Game

			if err := client.Get(gamePath(id), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameSubmitCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "submit <word>",
		Short: "Submit a word made from the root word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := cfg.ResolveGameID([]string{id})
			if err != nil {
				return err
			}

			req := map[string]string{"word": args[0]}
			var result Game

			if err := client.Post(gamePath(gameID, "/words"), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "game", "", "Game ID (defaults to the current game)")
	return cmd
}

func newGameRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart [id]",
		Short: "Restart a game with a new root word",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveGameID(args)
			if err != nil {
				return err
			}

			var result Game

			if err := client.Post(gamePath(id, "/restart"), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a game",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveGameID(args)
			if err != nil {
				return err
			}

			if err := client.Delete(gamePath(id)); err != nil {
				return err
			}
			if err := cfg.ClearGameID(id); err != nil {
				return err
			}

			output(cmd).PrintMessage("Game deleted")
			return nil
		},
	}
}
