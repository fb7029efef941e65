package processor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/koelner/internal/batch"
	"codeberg.org/snonux/koelner/internal/cli"
	"codeberg.org/snonux/koelner/internal/cologne"
	"codeberg.org/snonux/koelner/internal/explain"
	"codeberg.org/snonux/koelner/internal/index"
)

// Processor handles the main word processing logic
type Processor struct {
	flags *cli.Flags
	out   io.Writer
}

// NewProcessor creates a new word processor writing to stdout
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{flags: flags, out: os.Stdout}
}

// Run dispatches to the requested mode based on the parsed flags.
func (p *Processor) Run(args []string) error {
	words, err := p.collectWords(args)
	if err != nil {
		return err
	}

	switch {
	case p.flags.Explain:
		return p.explainWords(words)
	case p.flags.IndexPath != "":
		return p.runIndex(words)
	default:
		return p.encodeWords(words)
	}
}

// collectWords gathers the input words from arguments, a batch file or
// an input file. Arguments and batch file contents are combined.
func (p *Processor) collectWords(args []string) ([]string, error) {
	words := append([]string(nil), args...)

	if p.flags.BatchFile != "" {
		fromFile, err := batch.ReadWordFile(p.flags.BatchFile)
		if err != nil {
			return nil, err
		}
		words = append(words, fromFile...)
	}

	return words, nil
}

// encodeWords prints the code of every word, or encodes a file/stdin
// when no words were given.
func (p *Processor) encodeWords(words []string) error {
	if len(words) == 0 {
		return p.encodeStream()
	}

	for _, word := range words {
		fmt.Fprintf(p.out, "%s\t%s\n", word, p.render(word))
	}
	return nil
}

// encodeStream encodes the input file (or stdin) line by line.
func (p *Processor) encodeStream() error {
	var input []byte
	var err error

	if p.flags.InputFile != "" {
		input, err = os.ReadFile(p.flags.InputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	for _, line := range strings.Split(string(input), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprintln(p.out, p.render(line))
	}
	return nil
}

// render produces the requested output form for one line of text.
func (p *Processor) render(text string) string {
	if !p.flags.ShowCodes {
		return cologne.EncodeString([]byte(text))
	}

	codes := cologne.Encode([]byte(text))
	parts := make([]string, len(codes))
	for i, c := range codes {
		if c == cologne.Space {
			parts[i] = "/"
		} else {
			parts[i] = fmt.Sprintf("%d", c)
		}
	}
	return strings.Join(parts, " ")
}

// runIndex performs the index operations selected by the flags.
func (p *Processor) runIndex(words []string) error {
	db, err := index.Open(p.flags.IndexPath)
	if err != nil {
		return err
	}
	defer db.Close()

	switch {
	case p.flags.AddWords:
		added, err := db.AddAll(words)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "Indexed %d words in %s\n", added, p.flags.IndexPath)
		return nil

	case p.flags.Remove:
		for _, word := range words {
			if err := db.Remove(word); err != nil {
				return err
			}
		}
		fmt.Fprintf(p.out, "Removed %d words from %s\n", len(words), p.flags.IndexPath)
		return nil

	case p.flags.ListWords:
		entries, err := db.Words()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(p.out, "%s\t%s\n", e.Word, e.Code)
		}
		return nil

	case p.flags.Lookup:
		for _, word := range words {
			matches, err := db.Lookup(word)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Fprintf(p.out, "%s: no matches\n", word)
				continue
			}
			for _, m := range matches {
				fmt.Fprintf(p.out, "%s\t%s\t%s\n", word, m.Word, m.Code)
			}
		}
		return nil
	}

	return fmt.Errorf("--index requires one of --add, --remove, --lookup or --list")
}

// explainWords fetches IPA pronunciation breakdowns for the words.
func (p *Processor) explainWords(words []string) error {
	if len(words) == 0 {
		return fmt.Errorf("--explain requires at least one word")
	}

	fetcher := explain.NewFetcher(cli.GetOpenAIKey(), p.flags.OpenAIModel, p.flags.ExplainMaxTok)
	errorCount := 0

	for _, word := range words {
		text, err := fetcher.Explain(word)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error explaining '%s': %v\n", word, err)
			errorCount++
			continue
		}
		fmt.Fprintf(p.out, "=== %s (%s) ===\n%s\n\n", word, cologne.EncodeString([]byte(word)), text)
	}

	if errorCount > 0 {
		return fmt.Errorf("failed to explain %d of %d words", errorCount, len(words))
	}
	return nil
}
