package commands

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/ShafSpecs/testregen/internal/config"
	"github.com/ShafSpecs/testregen/internal/fixtures"
)

// ShowCmd implements the 'show' command for fixture triage.
type ShowCmd struct {
	Group     string `arg:"" help:"Fixture group to show."`
	Index     int    `help:"Zero-based fixture index within the group." default:"0"`
	Reference bool   `help:"Also render the input through goldmark as a reference HTML rendering."`
	Corpus    string `help:"Fixture corpus root (default: from config)."`
}

func (s *ShowCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dir := fixtures.NewDir(resolveCorpus(s.Corpus, cfg))
	f, err := dir.Open(s.Group)
	if err != nil {
		return err
	}
	if s.Index < 0 || s.Index >= len(f.Records) {
		return fmt.Errorf("fixture index %d out of range: %s has %d fixtures", s.Index, s.Group, len(f.Records))
	}
	rec := f.Records[s.Index]

	fmt.Printf("group: %s (%s)\n", s.Group, f.Path)
	if f.Meta.Desc != "" {
		fmt.Printf("desc: %s\n", f.Meta.Desc)
	}
	fmt.Printf("fixture %d of %d: %s\n", s.Index+1, len(f.Records), rec.Header)
	fmt.Println("--- input ---")
	fmt.Print(rec.Input)
	fmt.Println("--- expected ---")
	fmt.Print(rec.Output)

	if s.Reference {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(rec.Input), &buf); err != nil {
			return fmt.Errorf("render reference HTML: %w", err)
		}
		fmt.Println("--- reference (goldmark) ---")
		fmt.Print(buf.String())
	}
	return nil
}
