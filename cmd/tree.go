package cmd

import (
	"os"

	"github.com/castlist-cli/castlist/key"
	"github.com/castlist-cli/castlist/render"
	"github.com/castlist-cli/castlist/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func addTreeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false, "Print the catalog as JSON")
	cmd.Flags().BoolP("urls", "u", false, "Print content and artwork URLs")
}

func init() {
	rootCmd.AddCommand(treeCmd)
	addTreeFlags(treeCmd)
	treeCmd.SetOut(os.Stdout)
}

// treeCmd prints a manifest as a tree of items.
var treeCmd = &cobra.Command{
	Use:     "tree [url]",
	Short:   "Load a manifest and print its items",
	Long:    "Load a manifest, from the url argument or manifest.url, and print the decoded items with their tracks.",
	Example: "  castlist tree https://example.com/videos/f.json --urls",
	Args:    cobra.MaximumNArgs(1),
	Run:     runTree,
}

func runTree(cmd *cobra.Command, args []string) {
	cat, err := loadCatalog(manifestURL(args))
	handleErr(err)

	if lo.Must(cmd.Flags().GetBool("json")) {
		handleErr(render.JSON(cmd.OutOrStdout(), cat))
		return
	}

	opts := render.Options{
		ShowURLs: viper.GetBool(key.TreeShowURLs) || lo.Must(cmd.Flags().GetBool("urls")),
		Width:    util.WrapWidth(viper.GetInt(key.TreeWrapWidth)),
	}
	handleErr(render.Tree(cmd.OutOrStdout(), cat, opts))
	handleErr(render.Skipped(cmd.ErrOrStderr(), cat.Skipped))
}
