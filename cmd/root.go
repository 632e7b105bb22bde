// Package cmd implements the command-line interface for castlist.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/castlist-cli/castlist/color"
	"github.com/castlist-cli/castlist/constant"
	"github.com/castlist-cli/castlist/icon"
	"github.com/castlist-cli/castlist/key"
	"github.com/castlist-cli/castlist/log"
	"github.com/castlist-cli/castlist/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("format", "", "Source type picked from every item, e.g. mp4, hls or dash")
	lo.Must0(viper.BindPFlag(key.ManifestFormat, rootCmd.PersistentFlags().Lookup("format")))

	rootCmd.PersistentFlags().Bool("strict", false, "Fail on the first broken item instead of skipping it")
	lo.Must0(viper.BindPFlag(key.CatalogStrict, rootCmd.PersistentFlags().Lookup("strict")))

	addTreeFlags(rootCmd)
}

// rootCmd loads the configured manifest and prints it when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [url]",
	Short: "Load a media casting catalog and print it as a tree",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Load a media casting catalog and print it as a tree"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		runTree(cmd, args)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
