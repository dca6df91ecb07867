package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func wordlePath(id string) string {
	return "/api/v1/wordle/" + url.PathEscape(id)
}

func newWordleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordle",
		Short: "Play the daily Wordle",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Start a game with today's word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WordleGame
			if err := client.Post("/api/v1/wordle", nil, &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WordleGame
			if err := client.Get(wordlePath(args[0]), &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "guess <id> <word>",
		Short: "Submit a guess",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WordleGame
			body := map[string]string{"word": args[1]}
			if err := client.Post(wordlePath(args[0])+"/guess", body, &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	})

	return cmd
}
