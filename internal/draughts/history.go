package draughts

// HistoryEntry is one played move with the state needed to take it back.
type HistoryEntry struct {
	Move       Move
	Turn       Colour // Side that played the move
	MoveNumber int    // Full move number before the move
}

// Header holds the tag pairs of a game.
type Header map[string]string

// Standard tag names.
const (
	EventTag  = "Event"
	SiteTag   = "Site"
	DateTag   = "Date"
	RoundTag  = "Round"
	WhiteTag  = "White"
	BlackTag  = "Black"
	ResultTag = "Result"
	SetUpTag  = "SetUp"
	FENTag    = "FEN"
)

// TagOrder is the order in which known tags are written.
// Tags not listed follow in alphabetical order.
var TagOrder = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
	SetUpTag,
	FENTag,
}

// Results lists the game termination markers accepted in draughts notation.
var Results = []string{"2-0", "0-2", "1-1", "0-0", "*", "1-0", "0-1"}

// IsResult reports whether s is a game termination marker.
func IsResult(s string) bool {
	for _, r := range Results {
		if r == s {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the header. A nil header clones to an empty one.
func (h Header) Clone() Header {
	c := make(Header, len(h))
	for k, v := range h {
		c[k] = v
	}
	return c
}
