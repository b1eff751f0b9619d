package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/lgbarn/draughts-go/internal/config"
	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/engine"
)

// WritePDN writes the header tags and move list of a game in PDN notation.
// A nil cfg uses the default output settings. The game is not modified.
func WritePDN(w io.Writer, g *engine.Game, cfg *config.OutputConfig) error {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ow := NewOutputWriter(w, int(cfg.MaxLineLength), cfg.NewLine)
	header := g.Header()
	tags := orderedTags(header)
	for _, tag := range tags {
		ow.WriteNoSpace(fmt.Sprintf("[%s \"%s\"]", tag, escapeTagValue(header[tag])))
		ow.NewLine()
	}

	entries := g.HistoryEntries()
	result := ""
	if cfg.KeepResults {
		result = header[draughts.ResultTag]
	}
	if len(entries) == 0 && result == "" {
		return ow.Err()
	}
	if len(tags) > 0 {
		ow.NewLine()
	}

	writeMoves(ow, entries, cfg)
	if result != "" {
		ow.Write(result)
	}
	ow.NewLine()
	return ow.Err()
}

func writeMoves(ow *OutputWriter, entries []draughts.HistoryEntry, cfg *config.OutputConfig) {
	for i, e := range entries {
		if cfg.KeepMoveNumbers {
			if e.Turn == draughts.White {
				ow.Write(fmt.Sprintf("%d.", e.MoveNumber))
			} else if i == 0 {
				// Black to move at start
				ow.Write(fmt.Sprintf("%d...", e.MoveNumber))
			}
		}
		ow.Write(e.Move.String())
	}
}

// orderedTags lists the tags of a header, known tags first.
func orderedTags(header draughts.Header) []string {
	tags := make([]string, 0, len(header))
	known := make(map[string]bool, len(draughts.TagOrder))
	for _, tag := range draughts.TagOrder {
		known[tag] = true
		if _, ok := header[tag]; ok {
			tags = append(tags, tag)
		}
	}

	var rest []string
	for tag := range header {
		if !known[tag] {
			rest = append(rest, tag)
		}
	}
	sort.Strings(rest)
	return append(tags, rest...)
}
