package cli

import (
	"github.com/mgpai22/vaani/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vaani",
	Short: "Turn narration scripts into captioned short videos",
	Long: `Vaani aligns a narration script with a word-level timing transcript
and produces time-bounded caption files for a video compositor.

It also wraps the surrounding steps of the pipeline: script generation,
speech synthesis, word-level transcription, and video composition.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Language code (e.g., en, es, fr)")
}
