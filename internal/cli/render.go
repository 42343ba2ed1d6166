package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/vaani/internal/audio"
	"github.com/mgpai22/vaani/internal/video"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [background_video]",
	Short: "Compose narration audio and captions over a background video",
	Long: `Lay narration audio over a background video and burn a caption file
into the frames, producing the final short.

At least one of --audio and --captions is required; with both, the audio is
muxed first and the captions are burned into the result.

Examples:
  vaani render background.mp4 --audio narration.mp3 --captions captions.srt
  vaani render background.mp4 --captions captions.srt -o final.mp4
  vaani render background.mp4 --audio narration.mp3 --font-size 28`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().
		String("audio", "", "Narration audio file to lay over the video")
	renderCmd.Flags().
		String("captions", "", "Caption file to burn in (srt)")
	renderCmd.Flags().
		Bool("no-loop", false, "Do not loop the background video to cover the narration")
	renderCmd.Flags().
		Int("font-size", 0, "Caption font size (0 = player default)")
	renderCmd.Flags().
		Int("margin", 0, "Caption vertical margin (0 = player default)")
}

func runRender(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", videoPath)
	}
	if !audio.IsVideoFile(videoPath) {
		return fmt.Errorf(
			"unsupported file type: %s (expected video file)",
			filepath.Ext(videoPath),
		)
	}

	audioPath, _ := cmd.Flags().GetString("audio")
	captionPath, _ := cmd.Flags().GetString("captions")
	noLoop, _ := cmd.Flags().GetBool("no-loop")
	fontSize, _ := cmd.Flags().GetInt("font-size")
	margin, _ := cmd.Flags().GetInt("margin")
	outputPath, _ := cmd.Flags().GetString("output")

	if audioPath == "" && captionPath == "" {
		return fmt.Errorf("nothing to render: pass --audio and/or --captions")
	}

	if outputPath == "" {
		base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
		outputPath = base + ".final" + filepath.Ext(videoPath)
	}

	logger.Infow("Rendering video",
		"video", videoPath,
		"audio", audioPath,
		"captions", captionPath,
		"output", outputPath,
	)

	processor := video.NewProcessor()

	current := videoPath
	if audioPath != "" {
		muxed := outputPath
		if captionPath != "" {
			tempDir, err := os.MkdirTemp("", "vaani-*")
			if err != nil {
				return fmt.Errorf("failed to create temp directory: %w", err)
			}
			defer os.RemoveAll(tempDir)
			muxed = filepath.Join(tempDir, "muxed"+filepath.Ext(outputPath))
		}

		composeOpts := video.DefaultComposeOptions()
		composeOpts.LoopVideo = !noLoop

		if err := processor.Compose(
			ctx,
			current,
			audioPath,
			muxed,
			composeOpts,
		); err != nil {
			return err
		}
		current = muxed
	}

	if captionPath != "" {
		burnOpts := video.BurnOptions{
			FontSize: fontSize,
			MarginV:  margin,
		}

		if err := processor.BurnCaptions(
			ctx,
			current,
			captionPath,
			outputPath,
			burnOpts,
		); err != nil {
			return err
		}
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Video rendered: %s\n", absOutput)

	return nil
}
