package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/smartdca"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headings parses a markdown source with goldmark and returns its heading titles.
func headings(t *testing.T, source string) []string {
	t.Helper()
	parser := goldmark.New().Parser()
	root := parser.Parse(text.NewReader([]byte(source)))

	var titles []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			var b strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if s, ok := c.(*ast.Text); ok {
					b.Write(s.Segment.Value([]byte(source)))
				}
			}
			titles = append(titles, b.String())
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown ast: %v", err)
	}
	return titles
}

func TestSuggestionIsStructuredMarkdown(t *testing.T) {
	s := &smartdca.Suggestion{
		Cutoff:   smartdca.NewDate(2025, 6, 13),
		Ticker:   "AAPL",
		Score:    0.1,
		Price:    smartdca.M(100.0, smartdca.USD),
		Shares:   smartdca.Q(4.5),
		Cost:     smartdca.M(450.0, smartdca.USD),
		Rotation: smartdca.Rotation{"AAPL": 1, "QQQ": 0, "NVDA": 0},
	}

	got := headings(t, Suggestion(s))
	want := []string{"Smart DCA Suggestion", "Next Rotation"}
	if len(got) != len(want) {
		t.Fatalf("headings = %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("headings[%d] = %q want %q", i, got[i], want[i])
		}
	}

	if !strings.Contains(Suggestion(s), "AAPL") {
		t.Errorf("Suggestion() does not mention the selected ticker")
	}
}

func TestLedgerEmpty(t *testing.T) {
	got := Ledger(smartdca.NewLedger())
	if !strings.Contains(got, "No purchases recorded yet.") {
		t.Errorf("Ledger(empty) = %q, want the empty notice", got)
	}
}
