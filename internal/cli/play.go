package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/mcoot/wordscramble/internal/factory"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/scoring"
)

// Commands recognized by the play loop in place of a word
const (
	playRestart = ":restart"
	playQuit    = ":quit"
)

type playOptions struct {
	startWords string
	dictionary string
	language   string
	scoring    string
}

func newPlayCmd() *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game locally, one word per line",
		Long: `Play a game without a server. Type a word and press enter to submit it.
Type :restart for a new root word or :quit to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), opts, cmd.InOrStdin(), output(cmd))
		},
	}

	cmd.Flags().StringVar(&opts.startWords, "start-words", "", "Root word list file (default: built-in list)")
	cmd.Flags().StringVar(&opts.dictionary, "dictionary", "", "Dictionary file (default: built-in list)")
	cmd.Flags().StringVar(&opts.language, "language", "en", "Spelling language")
	cmd.Flags().StringVar(&opts.scoring, "scoring", string(scoring.RawLength), "Scoring: raw or normalized")

	return cmd
}

func runPlay(ctx context.Context, opts playOptions, in io.Reader, out *Output) error {
	if ctx == nil {
		ctx = context.Background()
	}

	lang, err := language.Parse(opts.language)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", opts.language, err)
	}
	mode, err := scoring.ParseMode(opts.scoring)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg.Verbose {
		logger = slog.New(slog.NewTextHandler(out.errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	app, err := factory.New(factory.Config{
		Language: lang,
		Scoring:  mode,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if err := app.LoadWordLists(ctx, opts.startWords, opts.dictionary); err != nil {
		return err
	}

	game, err := app.GameController.NewGame(ctx)
	if err != nil {
		return err
	}
	out.Print(gameFromModel(game))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case playQuit:
			return nil
		case playRestart:
			game, err = app.GameController.Restart(ctx, game.ID)
		default:
			// Submit the line as typed; the validator normalizes it
			game, err = submitPlayed(ctx, app, game, scanner.Text(), out)
		}
		if err != nil {
			return err
		}
		out.Print(gameFromModel(game))
	}
	return scanner.Err()
}

// submitPlayed submits word, printing a rejection and returning the
// unchanged game rather than failing
func submitPlayed(ctx context.Context, app *factory.App, game *model.Game, word string, out *Output) (*model.Game, error) {
	updated, err := app.GameController.SubmitWord(ctx, game.ID, word)
	if errors.Is(err, model.ErrRejected) {
		out.PrintError(err)
		return game, nil
	}
	return updated, err
}

func gameFromModel(g *model.Game) Game {
	words := make([]Word, len(g.State.Words))
	for i, w := range g.State.Words {
		words[i] = Word{Word: w, Points: model.WordPoints(w)}
	}
	return Game{
		RootWord: g.State.Root,
		Words:    words,
		Score:    g.State.Score,
		Language: g.Language,
		Restarts: g.Restarts,
	}
}
