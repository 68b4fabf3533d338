package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	figmarender "github.com/hellenic-development/figma-render"
	"github.com/hellenic-development/figma-render/pkg/figma"

	charmlog "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	accessToken string
	outputFile  string
	frameName   string
	configFile  string
	skipImages  bool
	verbose     bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := &cobra.Command{
		Use:   "figma-render <file-key-or-url>",
		Short: "Render Figma frames as static HTML",
		Long:  "A tool that fetches a design file via the Figma API and renders one of its frames into a pixel-accurate static HTML file with inline CSS",
		Args:  cobra.ExactArgs(1),
		RunE:  run,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token (defaults to FIGMA_TOKEN or FIGMA_API_KEY)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to TOML config file (default figma-render.toml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output HTML file (default output.html)")
	rootCmd.Flags().StringVarP(&frameName, "frame", "f", "", "Name of the frame to render (default: first frame)")
	rootCmd.Flags().BoolVar(&skipImages, "no-images", false, "Skip resolving IMAGE fill URLs")

	rootCmd.AddCommand(newVersionCmd(), newInspectCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // standard shell convention for SIGINT
		}
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	cyan.Println("\n🎨 Figma HTML Renderer")
	cyan.Println("======================")
	cyan.Println()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	output := firstNonEmpty(outputFile, cfg.Output, "output.html")
	frame := firstNonEmpty(frameName, cfg.Frame)

	result, err := figmarender.Run(cmd.Context(), figmarender.Options{
		AccessToken: resolveToken(cfg),
		File:        args[0],
		FrameName:   frame,
		SkipImages:  skipImages,
		Logger:      newCLILogger(),
	})
	if err != nil {
		return err
	}

	// Display render summary.
	cyan.Println("\n📊 Render Summary:")
	fmt.Printf("  • File: %s\n", result.FileName)
	fmt.Printf("  • Frame: %s (%gx%g)\n", result.FrameName, result.FrameWidth, result.FrameHeight)
	fmt.Printf("  • Elements: %d (%d text, %d with image fills)\n",
		result.Stats.Nodes, result.Stats.TextNodes, result.Stats.ImageFill)
	if result.Stats.Skipped > 0 {
		fmt.Printf("  • Hidden subtrees skipped: %d\n", result.Stats.Skipped)
	}
	if len(result.Fonts) > 0 {
		fmt.Printf("  • Fonts: %s\n", strings.Join(result.Fonts, ", "))
	}

	green.Printf("\n💾 Writing to %s... ", output)
	if err := os.WriteFile(output, []byte(result.HTML), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	green.Println("✓")

	green.Printf("\n✨ Successfully rendered %q to %s\n\n", result.FrameName, output)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-render version %s\n", figma.Version)
		},
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file-key-or-url>",
		Short: "Dump the document's node tree",
		Long:  "Fetch the file and print an indented dump of every node's type, name, bounds, corner rounding, and paints. Helps diagnose why a property is missing from the rendered output.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			tree, err := figmarender.Inspect(cmd.Context(), figmarender.Options{
				AccessToken: resolveToken(cfg),
				File:        args[0],
				Logger:      newCLILogger(),
			})
			if err != nil {
				return err
			}

			fmt.Print(tree)
			return nil
		},
	}
}

// loadConfig reads the config file named by --config, or the default path
// when present. A missing default file is fine; a missing explicit file
// is an error.
func loadConfig() (figmarender.Config, error) {
	if configFile != "" {
		return figmarender.LoadConfig(configFile)
	}

	cfg, err := figmarender.LoadConfig(figmarender.DefaultConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return figmarender.Config{}, nil
		}
		return figmarender.Config{}, err
	}
	return cfg, nil
}

// resolveToken picks the access token: flag, then environment, then
// config file.
func resolveToken(cfg figmarender.Config) string {
	if accessToken != "" {
		return accessToken
	}
	if t := os.Getenv("FIGMA_TOKEN"); t != "" {
		return t
	}
	if t := os.Getenv("FIGMA_API_KEY"); t != "" {
		return t
	}
	return cfg.Token
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// cliLogger adapts charmbracelet/log to the figmarender.Logger interface.
type cliLogger struct {
	log *charmlog.Logger
}

func newCLILogger() *cliLogger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return &cliLogger{
		log: charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

func (l *cliLogger) Infof(format string, args ...any)  { l.log.Infof(format, args...) }
func (l *cliLogger) Warnf(format string, args ...any)  { l.log.Warnf(format, args...) }
func (l *cliLogger) Errorf(format string, args ...any) { l.log.Errorf(format, args...) }
