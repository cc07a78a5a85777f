package cmd

import (
	"github.com/karaposu/codebase-chunker/pkg/chunker"
	"github.com/karaposu/codebase-chunker/pkg/logging"
	"github.com/karaposu/codebase-chunker/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	limit        int
	excludeExts  []string
	excludeDirs  []string
	excludeFiles []string
	includeTree  bool
	verbose      bool
)

// RootCmd is the base command: it chunks a source directory into bounded
// text files in an output directory.
var RootCmd = &cobra.Command{
	Use:   "codebase-chunker <source_directory> <output_directory>",
	Short: "Split a codebase into context-sized text chunks",
	Long: `codebase-chunker walks a source directory, filters out binary assets and
vendored folders, and packs the remaining file contents into numbered text
chunks (chunk_1_of_N.txt, ...) that each fit a configurable character budget.
Each file is introduced by a "# here is <path>" header; files too large for
one chunk are split into numbered parts. The output is meant to be pasted
piecewise into a context-limited system such as an LLM chat.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			devLogger, err := logging.Setup(true, "codebase-chunker", version.Get().Version)
			if err == nil {
				logger = devLogger
			}
		}

		cfg := chunker.DefaultConfig()
		cfg.Limit = limit
		cfg.ExcludedExtensions = excludeExts
		cfg.ExcludedFolders = excludeDirs
		cfg.ExcludedFilenames = excludeFiles
		cfg.IncludeTree = includeTree

		return chunker.Execute(args[0], args[1], cfg, logger)
	},
}

// Execute runs the root command with the given logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	defaults := chunker.DefaultConfig()
	RootCmd.Flags().IntVarP(&limit, "limit", "l", defaults.Limit, "Character budget per output chunk")
	RootCmd.Flags().StringSliceVar(&excludeExts, "exclude-ext", defaults.ExcludedExtensions, "File extensions to exclude")
	RootCmd.Flags().StringSliceVar(&excludeDirs, "exclude-dir", defaults.ExcludedFolders, "Folder names to exclude at any depth")
	RootCmd.Flags().StringSliceVar(&excludeFiles, "exclude-file", defaults.ExcludedFilenames, "Exact file names to exclude")
	RootCmd.Flags().BoolVar(&includeTree, "tree", defaults.IncludeTree, "Prepend a project tree block to the chunk stream")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose (development) logging")
}
