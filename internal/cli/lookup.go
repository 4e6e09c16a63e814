package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/etymology/internal/entities"
	"github.com/mrlokans/etymology/internal/services"
)

// ErrWordNotFound is returned by lookup when the headword is absent.
var ErrWordNotFound = errors.New("word not found")

// LookupCommand prints everything the dataset knows about one word.
type LookupCommand struct {
	datasetFlags
	Word string
}

func NewLookupCommand() *LookupCommand {
	return &LookupCommand{}
}

func (cmd *LookupCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)

	fs.StringVar(&cmd.Word, "word", "", "Word to look up (case-insensitive)")
	fs.StringVar(&cmd.DatasetPath, "dataset", "", "Path to a dataset snapshot (overrides DATASET_PATH)")
	fs.BoolVar(&cmd.JSON, "json", false, "Print the result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s lookup -word <word> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show etymology, roots, collocations and translations for a word.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s lookup -word photograph\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s lookup -word photograph -json\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Word == "" && fs.NArg() > 0 {
		cmd.Word = fs.Arg(0)
	}
	cmd.Word = strings.TrimSpace(cmd.Word)
	if cmd.Word == "" {
		return fmt.Errorf("-word is required")
	}
	return nil
}

func (cmd *LookupCommand) Run() error {
	store, repo, err := cmd.open(context.Background())
	if err != nil {
		return err
	}
	defer store.Close()

	detail, err := services.NewLookupService(repo).LookupWordDetail(cmd.Word)
	if err != nil {
		return fmt.Errorf("lookup %q: %w", cmd.Word, err)
	}
	if detail == nil {
		return fmt.Errorf("%w: %s", ErrWordNotFound, cmd.Word)
	}

	if cmd.JSON {
		return cmd.writeJSON(detail)
	}
	cmd.printDetail(detail)
	return nil
}

func (cmd *LookupCommand) printDetail(d *entities.WordDetail) {
	w := cmd.out()
	word := d.Word

	fmt.Fprintf(w, "%s", word.Word)
	if word.Frequency.Known() {
		fmt.Fprintf(w, " [%s]", word.Frequency.Label())
	}
	fmt.Fprintln(w)

	if word.Etymology != "" {
		fmt.Fprintf(w, "\nEtymology:\n  %s\n", word.Etymology)
	}
	if word.Context != "" {
		fmt.Fprintf(w, "\nContext:\n  %s\n", word.Context)
	}

	if roots := entities.SortRootsForDisplay(d.Roots); len(roots) > 0 {
		fmt.Fprintf(w, "\nRoots:\n")
		for _, r := range roots {
			fmt.Fprintf(w, "  %-12s %s\n", r.Root, r.Kind())
		}
	}

	printList(cmd, "Synonyms", word.SynonymsWithRelated())
	printList(cmd, "Similar", word.SimilarList())
	printList(cmd, "Antonyms", word.AntonymList())
	printList(cmd, "Derivatives", word.DerivativeList())

	if len(d.Collocations) > 0 {
		fmt.Fprintf(w, "\nCollocations:\n")
		for _, c := range d.Collocations {
			if c.Translate != "" {
				fmt.Fprintf(w, "  %s (%s)\n", c.Item, c.Translate)
			} else {
				fmt.Fprintf(w, "  %s\n", c.Item)
			}
		}
	}

	if len(d.OtherLanguages) > 0 {
		fmt.Fprintf(w, "\nOther languages:\n")
		for _, o := range d.OtherLanguages {
			lang := o.Lang
			if name, ok := o.Name(); ok {
				lang = name
			}
			fmt.Fprintf(w, "  %s: %s\n", lang, o.Words)
		}
	}
}

func printList(cmd *LookupCommand, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(cmd.out(), "\n%s: %s\n", title, strings.Join(items, ", "))
}
