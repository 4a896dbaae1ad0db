package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool

	splitYes    bool
	splitDryRun bool
)

// rootCmd is the root command for blobsplit.
var rootCmd = &cobra.Command{
	Use:     "blobsplit <input-file> [output-dir]",
	Version: "dev",
	Short:   "Split a concatenated text blob into individual files",
	Long: `blobsplit splits a single concatenated text file into individual files.

Sections are delimited by marker lines of the form:

  ===== FILE: path/to/file =====

Each section is written to its path under the output directory (default:
current directory), after a safety check and a confirmation prompt. Pass
"-" as the input file to read the blob from stdin.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir := "."
		if len(args) > 1 {
			outputDir = args[1]
		}
		return runSplit(args[0], outputDir)
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	rootCmd.Flags().BoolVarP(&splitYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.Flags().BoolVar(&splitDryRun, "dry-run", false, "Show the file listing without writing anything")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the blobsplit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
