package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/etymology/internal/config"
)

// SuggestCommand lists headwords starting with a prefix.
type SuggestCommand struct {
	datasetFlags
	Prefix string
	Limit  int
}

func NewSuggestCommand() *SuggestCommand {
	return &SuggestCommand{}
}

func (cmd *SuggestCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("suggest", flag.ContinueOnError)

	fs.StringVar(&cmd.Prefix, "prefix", "", "Prefix to complete (case-insensitive)")
	fs.IntVar(&cmd.Limit, "limit", config.DefaultSuggestLimit, "Maximum number of suggestions (1-100)")
	fs.StringVar(&cmd.DatasetPath, "dataset", "", "Path to a dataset snapshot (overrides DATASET_PATH)")
	fs.BoolVar(&cmd.JSON, "json", false, "Print the result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s suggest -prefix <text> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List words starting with a prefix, most frequent first.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Prefix == "" && fs.NArg() > 0 {
		cmd.Prefix = fs.Arg(0)
	}
	cmd.Prefix = strings.TrimSpace(cmd.Prefix)
	return nil
}

func (cmd *SuggestCommand) Run() error {
	store, repo, err := cmd.open(context.Background())
	if err != nil {
		return err
	}
	defer store.Close()

	suggestions, err := repo.PrefixSearch(cmd.Prefix, cmd.Limit)
	if err != nil {
		return fmt.Errorf("suggest %q: %w", cmd.Prefix, err)
	}

	if cmd.JSON {
		return cmd.writeJSON(suggestions)
	}
	w := cmd.out()
	if len(suggestions) == 0 {
		fmt.Fprintf(w, "No words start with %q\n", cmd.Prefix)
		return nil
	}
	for _, s := range suggestions {
		if s.Frequency.Known() {
			fmt.Fprintf(w, "%-24s %s\n", s.Word, s.Frequency.Label())
		} else {
			fmt.Fprintln(w, s.Word)
		}
	}
	return nil
}
