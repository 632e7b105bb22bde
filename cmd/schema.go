package cmd

import (
	"os"

	"github.com/castlist-cli/castlist/catalog"
	"github.com/castlist-cli/castlist/render"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON Schema of `castlist tree --json`.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the catalog JSON output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(render.JSON(cmd.OutOrStdout(), catalog.Schema()))
	},
}
