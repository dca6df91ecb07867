package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Browse puzzle categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CategoryList
			if err := client.Get("/api/v1/categories", &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a category and its words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CategoryDetail
			if err := client.Get("/api/v1/categories/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	})

	return cmd
}
