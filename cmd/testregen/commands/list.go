package commands

import (
	"fmt"

	"github.com/ShafSpecs/testregen/internal/config"
	"github.com/ShafSpecs/testregen/internal/fixtures"
)

// ListCmd implements the 'list' command.
type ListCmd struct {
	Corpus string `help:"Fixture corpus root (default: from config)."`
}

func (l *ListCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dir := fixtures.NewDir(resolveCorpus(l.Corpus, cfg))
	groups, err := dir.Groups()
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Printf("No fixture groups found under %s\n", dir.Root)
		return nil
	}

	for _, group := range groups {
		f, err := dir.Open(group)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s: %d fixtures", group, len(f.Records))
		if f.Meta.Desc != "" {
			line += " - " + f.Meta.Desc
		}
		fmt.Println(line)
	}
	return nil
}
