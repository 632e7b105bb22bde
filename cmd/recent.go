package cmd

import (
	"os"

	"github.com/castlist-cli/castlist/color"
	"github.com/castlist-cli/castlist/history"
	"github.com/castlist-cli/castlist/render"
	"github.com/castlist-cli/castlist/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().StringP("query", "q", "", "Only list manifests fuzzily matching the query")
	recentCmd.Flags().BoolP("json", "j", false, "Print the records as JSON")
	recentCmd.Flags().String("forget", "", "Forget the given manifest url")
	recentCmd.MarkFlagsMutuallyExclusive("query", "forget")
	recentCmd.SetOut(os.Stdout)
}

// recentCmd lists the manifests loaded before.
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List remembered manifest URLs, most used first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if url := lo.Must(cmd.Flags().GetString("forget")); url != "" {
			handleErr(history.Forget(url))
			return
		}

		records := history.Recent()
		if q := lo.Must(cmd.Flags().GetString("query")); q != "" {
			matching := history.SuggestMany(q)
			records = lo.Filter(records, func(r *history.Record, _ int) bool {
				return lo.Contains(matching, r.URL)
			})
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(render.JSON(cmd.OutOrStdout(), records))
			return
		}

		for _, r := range records {
			cmd.Printf("%s %s\n", style.Fg(color.Purple)(r.URL), style.Faint(r.Title))
		}
	},
}
