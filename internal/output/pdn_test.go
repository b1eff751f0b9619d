package output

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/draughts-go/internal/config"
	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/engine"
	"github.com/lgbarn/draughts-go/internal/errors"
	"github.com/lgbarn/draughts-go/internal/testutil"
)

func playGame(t *testing.T, fen string, moves ...[2]int) *engine.Game {
	t.Helper()
	g := engine.NewGame()
	if fen != "" {
		var err error
		if g, err = engine.NewGameFromFEN(fen); err != nil {
			t.Fatalf("NewGameFromFEN(%q) error = %v", fen, err)
		}
	}
	for _, m := range moves {
		if _, ok := g.Move(draughts.Square(m[0]), draughts.Square(m[1])); !ok {
			t.Fatalf("Move(%d, %d) rejected in %s", m[0], m[1], g.FEN())
		}
	}
	return g
}

func openingGame(t *testing.T) *engine.Game {
	return playGame(t, "", [2]int{32, 28}, [2]int{17, 21}, [2]int{37, 32}, [2]int{20, 25})
}

func pdnString(t *testing.T, g *engine.Game, cfg *config.OutputConfig) string {
	t.Helper()
	var buf bytes.Buffer
	if err := WritePDN(&buf, g, cfg); err != nil {
		t.Fatalf("WritePDN() error = %v", err)
	}
	return buf.String()
}

func TestWritePDN(t *testing.T) {
	noNumbers := config.NewOutputConfig()
	noNumbers.KeepMoveNumbers = false
	noResult := config.NewOutputConfig()
	noResult.KeepResults = false
	narrow := config.NewOutputConfig()
	narrow.MaxLineLength = 10
	crlf := config.NewOutputConfig()
	crlf.NewLine = "\r\n"

	tests := []struct {
		name   string
		header map[string]string
		cfg    *config.OutputConfig
		want   string
	}{
		{
			name: "moves only",
			want: "1. 32-28 17-21 2. 37-32 20-25\n",
		},
		{
			name:   "tags and result",
			header: map[string]string{"Result": "2-0", "Event": "Club", "Annotator": "me"},
			want:   "[Event \"Club\"]\n[Result \"2-0\"]\n[Annotator \"me\"]\n\n1. 32-28 17-21 2. 37-32 20-25 2-0\n",
		},
		{
			name: "without move numbers",
			cfg:  noNumbers,
			want: "32-28 17-21 37-32 20-25\n",
		},
		{
			name:   "without result",
			header: map[string]string{"Result": "1-1"},
			cfg:    noResult,
			want:   "[Result \"1-1\"]\n\n1. 32-28 17-21 2. 37-32 20-25\n",
		},
		{
			name: "wrapped",
			cfg:  narrow,
			want: "1. 32-28\n17-21 2.\n37-32\n20-25\n",
		},
		{
			name:   "crlf",
			header: map[string]string{"Site": `The "Hague"`},
			cfg:    crlf,
			want:   "[Site \"The \\\"Hague\\\"\"]\r\n\r\n1. 32-28 17-21 2. 37-32 20-25\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := openingGame(t)
			g.SetHeader(tt.header)
			if got := pdnString(t, g, tt.cfg); got != tt.want {
				t.Errorf("WritePDN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWritePDN_SetupAndBlackFirst(t *testing.T) {
	g := playGame(t, "B:W40:B10", [2]int{10, 14}, [2]int{40, 35})
	want := "[SetUp \"1\"]\n[FEN \"B:W40:B10\"]\n\n1... 10-14 2. 40-35\n"
	if got := pdnString(t, g, nil); got != want {
		t.Errorf("WritePDN() = %q, want %q", got, want)
	}
}

func TestWritePDN_Capture(t *testing.T) {
	g := playGame(t, testutil.ForcedCaptureFEN, [2]int{30, 19})
	got := pdnString(t, g, nil)
	testutil.AssertContains(t, got, "1. 30x19\n")
}

func TestWritePDN_EmptyGame(t *testing.T) {
	if got := pdnString(t, engine.NewGame(), nil); got != "" {
		t.Errorf("WritePDN() = %q, want empty", got)
	}

	g := engine.NewGame()
	g.SetHeader(map[string]string{"Result": "*"})
	if got, want := pdnString(t, g, nil), "[Result \"*\"]\n\n*\n"; got != want {
		t.Errorf("WritePDN() = %q, want %q", got, want)
	}
}

func TestWritePDN_DoesNotModifyGame(t *testing.T) {
	g := openingGame(t)
	g.SetHeader(map[string]string{"Result": "0-2"})
	header, history := g.Header(), g.History()

	pdnString(t, g, nil)

	if diff := cmp.Diff(header, g.Header()); diff != "" {
		t.Errorf("header changed (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(history, g.History()); diff != "" {
		t.Errorf("history changed (-before +after):\n%s", diff)
	}
}

func TestWritePDN_InvalidConfig(t *testing.T) {
	cfg := config.NewOutputConfig()
	cfg.NewLine = ""
	var buf bytes.Buffer
	err := WritePDN(&buf, engine.NewGame(), cfg)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestOrderedTags(t *testing.T) {
	header := draughts.Header{"Zeta": "1", "FEN": "x", "Black": "b", "Alpha": "2", "Event": "e"}
	want := []string{"Event", "Black", "FEN", "Alpha", "Zeta"}
	if diff := cmp.Diff(want, orderedTags(header)); diff != "" {
		t.Errorf("orderedTags() mismatch (-want +got):\n%s", diff)
	}
}
