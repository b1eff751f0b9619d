package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/draughts-go/internal/errors"
)

// ValidateFEN checks a FEN string and returns its normalized form:
// whitespace removed and anything from the first '.' dropped.
// The bare forms "W::", "B::" and "?::" describe an empty board
// and normalize to the same string with ":B:W" appended.
func ValidateFEN(fen string) (string, error) {
	cleaned := strings.Join(strings.Fields(fen), "")
	if i := strings.IndexByte(cleaned, '.'); i >= 0 {
		cleaned = cleaned[:i]
	}

	switch cleaned {
	case "W::", "B::", "?::":
		return cleaned + ":B:W", nil
	case "":
		return "", notationError(errors.NotationEmpty, fen)
	}

	if len(cleaned) < 2 || cleaned[1] != ':' {
		return "", notationError(errors.NotationMissingColon, fen)
	}

	parts := strings.Split(cleaned, ":")
	if len(parts) != 3 {
		return "", notationError(errors.NotationColonCount, fen)
	}

	switch parts[0] {
	case "W", "B", "?":
	default:
		return "", notationError(errors.NotationSideToMove, fen)
	}

	colours := sideLetter(parts[1]) + sideLetter(parts[2])
	if colours != "BW" && colours != "WB" {
		return "", notationError(errors.NotationColours, fen)
	}

	for _, part := range parts[1:] {
		if kind, ok := validateSquareList(part[1:]); !ok {
			return "", notationError(kind, fen)
		}
	}
	return cleaned, nil
}

func notationError(kind errors.NotationKind, fen string) error {
	return &errors.NotationError{Kind: kind, FEN: fen}
}

func sideLetter(part string) string {
	if part == "" {
		return ""
	}
	return part[:1]
}

// validateSquareList checks a comma separated list of squares and ranges,
// each optionally prefixed by K.
func validateSquareList(list string) (errors.NotationKind, bool) {
	if list == "" {
		return 0, true
	}
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimPrefix(entry, "K")
		bounds := []string{entry}
		if r := strings.Split(entry, "-"); len(r) == 2 {
			bounds = r
		}
		for _, bound := range bounds {
			n, err := strconv.Atoi(bound)
			if err != nil {
				return errors.NotationNotInteger, false
			}
			if n < 1 || n > 100 {
				return errors.NotationSquareRange, false
			}
		}
	}
	return 0, true
}
