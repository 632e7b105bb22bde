package cmd

import (
	"fmt"
	"os"

	"github.com/castlist-cli/castlist/icon"
	"github.com/castlist-cli/castlist/media"
	"github.com/castlist-cli/castlist/render"
	"github.com/castlist-cli/castlist/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringP("url", "U", "", "Manifest to search instead of manifest.url")
	findCmd.Flags().BoolP("json", "j", false, "Print the matching items as JSON")
	findCmd.Flags().IntP("limit", "n", 0, "Print at most n matches")
	findCmd.SetOut(os.Stdout)
}

// findCmd fuzzy searches the titles of a manifest.
var findCmd = &cobra.Command{
	Use:     "find <query>",
	Short:   "Search item titles of a manifest",
	Example: "  castlist find \"bunny\"",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := lo.Must(cmd.Flags().GetString("url"))
		cat, err := loadCatalog(manifestURL([]string{url}))
		handleErr(err)

		matches := cat.Root.Find(args[0])
		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && len(matches) > limit {
			matches = matches[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(render.JSON(cmd.OutOrStdout(), lo.Map(matches, func(m media.Match, _ int) *media.Item {
				return m.Item
			})))
			return
		}

		if len(matches) == 0 {
			handleErr(fmt.Errorf("no items match %s", style.Bold(args[0])))
		}

		handleErr(render.Matches(cmd.OutOrStdout(), matches))
		cmd.PrintErrln(style.Faint(fmt.Sprintf("%s %d of %d", icon.Get(icon.Success), len(matches), cat.Root.Len())))
	},
}
