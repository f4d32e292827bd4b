package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"wordquiz/internal/config"
	"wordquiz/internal/handler"
	"wordquiz/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App bundles the dependencies shared by all commands
type App struct {
	Config  *config.Config
	Session *service.Session
	Logger  *zap.Logger
}

// Builder creates the App once flags are parsed
type Builder func(flags *Flags) (*App, error)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags, build Builder) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordquiz",
		Short: "Учим английские слова",
		Long: `wordquiz keeps an English -> Russian vocabulary in a local JSON file
and quizzes you on a chosen subset with multiple-choice questions.

Examples:
  wordquiz                      # Interactive menu
  wordquiz add cat кот          # Add or overwrite a word
  wordquiz list --mask          # Show words with translations hidden
  wordquiz learn cat dog        # Learn the given words
  wordquiz learn --all          # Learn the whole vocabulary`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHandler(cmd, flags, build, func(ctx context.Context, h *handler.Handler, _ *App) error {
				return h.Run(ctx)
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.WordsFile, "file", "f", "", "vocabulary file (default from WORDS_FILE or words.json)")

	rootCmd.AddCommand(
		newAddCommand(flags, build),
		newListCommand(flags, build),
		newLearnCommand(flags, build),
	)

	return rootCmd
}

func newAddCommand(flags *Flags, build Builder) *cobra.Command {
	return &cobra.Command{
		Use:   "add <english> <translation>",
		Short: "Add a word or overwrite its translation",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHandler(cmd, flags, build, func(_ context.Context, h *handler.Handler, _ *App) error {
				if !h.SaveWord(args[0], strings.Join(args[1:], " ")) {
					return fmt.Errorf("word %q was not saved", args[0])
				}
				return nil
			})
		},
	}
}

func newListCommand(flags *Flags, build Builder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show all words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHandler(cmd, flags, build, func(_ context.Context, h *handler.Handler, _ *App) error {
				h.SetMask(flags.Mask)
				h.ShowWords()
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&flags.Mask, "mask", "m", false, "hide translations")
	return cmd
}

func newLearnCommand(flags *Flags, build Builder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn [words...]",
		Short: "Learn the given words",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !flags.All {
				return errors.New("specify words to learn or use --all")
			}
			return withHandler(cmd, flags, build, func(ctx context.Context, h *handler.Handler, app *App) error {
				words := args
				if flags.All {
					words = words[:0:0]
					for _, e := range app.Session.Words() {
						words = append(words, e.Word)
					}
				}
				if err := app.Session.Select(words); err != nil {
					return err
				}
				return h.Learn(ctx)
			})
		},
	}
	cmd.Flags().BoolVarP(&flags.All, "all", "a", false, "learn every word in the vocabulary")
	return cmd
}

// withHandler builds the App, wraps the command's streams in a handler and runs fn
func withHandler(
	cmd *cobra.Command,
	flags *Flags,
	build Builder,
	fn func(ctx context.Context, h *handler.Handler, app *App) error,
) error {
	app, err := build(flags)
	if err != nil {
		return err
	}
	defer app.Logger.Sync()

	h := handler.NewHandler(app.Session, cmd.InOrStdin(), cmd.OutOrStdout(), app.Config.AdvanceDelay, app.Logger)

	err = fn(cmd.Context(), h, app)
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(cmd.OutOrStdout())
		app.Logger.Info("Interrupted")
		return nil
	}
	return err
}
