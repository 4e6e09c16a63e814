package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/etymology/internal/entities"
)

// RootsCommand lists the words built from a root.
type RootsCommand struct {
	datasetFlags
	Root string
}

func NewRootsCommand() *RootsCommand {
	return &RootsCommand{}
}

func (cmd *RootsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("roots", flag.ContinueOnError)

	fs.StringVar(&cmd.Root, "root", "", "Root with its hyphens, e.g. photo- or -graph")
	fs.StringVar(&cmd.DatasetPath, "dataset", "", "Path to a dataset snapshot (overrides DATASET_PATH)")
	fs.BoolVar(&cmd.JSON, "json", false, "Print the result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s roots -root <root> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List words that share a root.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Root == "" && fs.NArg() > 0 {
		cmd.Root = fs.Arg(0)
	}
	cmd.Root = strings.TrimSpace(cmd.Root)
	if cmd.Root == "" {
		return fmt.Errorf("-root is required")
	}
	return nil
}

func (cmd *RootsCommand) Run() error {
	store, repo, err := cmd.open(context.Background())
	if err != nil {
		return err
	}
	defer store.Close()

	words, err := repo.WordsByRoot(cmd.Root)
	if err != nil {
		return fmt.Errorf("words for root %q: %w", cmd.Root, err)
	}

	if cmd.JSON {
		return cmd.writeJSON(words)
	}
	w := cmd.out()
	kind := entities.Root{Root: cmd.Root}.Kind()
	if len(words) == 0 {
		fmt.Fprintf(w, "No words found for %s %q\n", kind, cmd.Root)
		return nil
	}
	fmt.Fprintf(w, "%d words with %s %s:\n", len(words), kind, cmd.Root)
	for _, word := range words {
		fmt.Fprintf(w, "  %s\n", word.Word)
	}
	return nil
}
