package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"go.lepak.sg/patterns/casino"
	"go.lepak.sg/patterns/demo"
	"go.lepak.sg/patterns/menu"
	"go.lepak.sg/patterns/sample"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	root.AddCommand(newDemoCmd(), newCasinoCmd(), newMenuCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "patterns",
		Short:             "Iterator and composite patterns, shown on a casino and a restaurant",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}

	flags := cmd.PersistentFlags()
	flags.String("log-level", "info", `verbosity of logging ("trace", "debug", "info", "warn", "error")`)
	flags.String("log-format", "auto", `format of logs ("auto", "console", "json")`)
	flags.Bool("no-color", false, "disable colored output")

	return cmd
}

// setupLogging configures the global logger from the persistent flags
// and puts it on the command's context.
func setupLogging(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	format, _ := flags.GetString("log-format")
	switch format {
	case "console":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	case "auto":
		if isatty.IsTerminal(os.Stderr.Fd()) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		} else {
			log.Logger = log.Output(os.Stderr)
		}
	case "json":
		log.Logger = log.Output(os.Stderr)
	default:
		return fmt.Errorf("unknown log format: %s", format)
	}

	levelName, _ := flags.GetString("log-level")
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil || level == zerolog.NoLevel {
		return fmt.Errorf("unknown log level: %s", levelName)
	}
	zerolog.SetGlobalLevel(level)

	if noColor, _ := flags.GetBool("no-color"); noColor {
		color.NoColor = true
	}

	log.Debug().Str("level", level.String()).Str("format", format).Msg("set up logging")
	cmd.SetContext(log.Logger.WithContext(cmd.Context()))
	return nil
}

func newDemoCmd() *cobra.Command {
	var (
		interactive bool
		sections    []string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through both patterns step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var secs []demo.Section
			for _, s := range sections {
				sec, err := demo.ParseSection(s)
				if err != nil {
					return err
				}
				secs = append(secs, sec)
			}

			n := demo.New(demo.Config{
				Out:         cmd.OutOrStdout(),
				In:          cmd.InOrStdin(),
				Interactive: interactive,
			})
			return n.Run(cmd.Context(), secs...)
		},
	}

	cmd.Flags().BoolVar(&interactive, "interactive", isatty.IsTerminal(os.Stdin.Fd()),
		"wait for ENTER between steps")
	cmd.Flags().StringSliceVar(&sections, "section", nil,
		`sections to show, in order ("iterator", "composite", "combined", "summary"); all if empty`)

	return cmd
}

func newCasinoCmd() *cobra.Command {
	var (
		minRTP, category, provider, file string
	)

	cmd := &cobra.Command{
		Use:   "casino",
		Short: "Show the casino game tree, or search it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			root, err := loadOrEmbedded(ctx, file, sample.LoadCasino, sample.Casino)
			if err != nil {
				return err
			}
			m := casino.NewManager(root)
			out := cmd.OutOrStdout()

			searched := false
			if cmd.Flags().Changed("min-rtp") {
				threshold, err := decimal.NewFromString(minRTP)
				if err != nil {
					return fmt.Errorf("bad --min-rtp %q: %w", minRTP, err)
				}
				if err := m.ShowHighRTPGames(out, threshold); err != nil {
					return err
				}
				searched = true
			}
			if category != "" {
				if err := m.ShowGamesByCategory(out, category); err != nil {
					return err
				}
				searched = true
			}
			if provider != "" {
				if err := m.ShowGamesByProvider(out, provider); err != nil {
					return err
				}
				searched = true
			}

			if searched {
				return nil
			}
			return m.ShowAllGames(out)
		},
	}

	cmd.Flags().StringVar(&minRTP, "min-rtp", casino.DefaultHighRTP.String(),
		"list games with an RTP above this percentage")
	cmd.Flags().StringVar(&category, "category", "", "list games in this category")
	cmd.Flags().StringVar(&provider, "provider", "", "list games by this provider")
	cmd.Flags().StringVar(&file, "file", "", "YAML game tree to load instead of the built in one")

	return cmd
}

func newMenuCmd() *cobra.Command {
	var (
		vegetarian bool
		file       string
	)

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Show every menu, or only the vegetarian dishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := loadOrEmbedded(cmd.Context(), file, sample.LoadMenus, sample.Menus)
			if err != nil {
				return err
			}

			ws := menu.NewWaitress(root)
			if vegetarian {
				return ws.PrintVegetarianMenu(cmd.OutOrStdout())
			}
			return ws.PrintMenu(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&vegetarian, "vegetarian", false, "only show vegetarian dishes")
	cmd.Flags().StringVar(&file, "file", "", "YAML menu tree to load instead of the built in one")

	return cmd
}

func loadOrEmbedded[T any](
	ctx context.Context,
	file string,
	load func(context.Context, io.Reader) (T, error),
	embedded func(context.Context) T,
) (T, error) {
	if file == "" {
		return embedded(ctx), nil
	}

	f, err := os.Open(file)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()

	log.Ctx(ctx).Info().Str("file", file).Msg("loading data file")
	return load(ctx, f)
}
