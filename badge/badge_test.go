package badge

import (
	"strings"
	"testing"
)

func TestRenderFlatContainsTexts(t *testing.T) {
	svg := Render(Params{Style: StyleFlat, Label: "hits", Message: "1234"})
	if !strings.HasPrefix(svg, "<svg") {
		t.Fatalf("output does not start with <svg: %q", svg[:20])
	}
	if !strings.Contains(svg, ">hits</text>") {
		t.Errorf("label missing from SVG")
	}
	if !strings.Contains(svg, ">1234</text>") {
		t.Errorf("message missing from SVG")
	}
	if !strings.Contains(svg, DefaultLabelColor) || !strings.Contains(svg, DefaultMessageColor) {
		t.Errorf("default colors missing from SVG")
	}
}

func TestRenderDefaultsLabel(t *testing.T) {
	svg := Render(Params{Message: "1"})
	if !strings.Contains(svg, ">"+DefaultLabel+"</text>") {
		t.Errorf("expected default label %q in SVG", DefaultLabel)
	}
}

func TestRenderEscapesMarkup(t *testing.T) {
	svg := Render(Params{Label: `<script>"x"</script>`, Message: "1"})
	if strings.Contains(svg, "<script>") {
		t.Errorf("unescaped markup in SVG output")
	}
	if !strings.Contains(svg, "&lt;script&gt;") {
		t.Errorf("expected escaped markup in SVG output")
	}
}

func TestRenderStyles(t *testing.T) {
	for _, style := range []Style{StyleFlat, StyleFlatSquare, StylePlastic, StyleSocial, StyleForTheBadge} {
		svg := Render(Params{Style: style, Label: "hits", Message: "42"})
		if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
			t.Errorf("style %q produced malformed SVG", style)
		}
	}
}

func TestParseStyleFallsBackToFlat(t *testing.T) {
	if got := ParseStyle("neon"); got != StyleFlat {
		t.Errorf("ParseStyle(unknown) = %q, want flat", got)
	}
	if got := ParseStyle("social"); got != StyleSocial {
		t.Errorf("ParseStyle(social) = %q", got)
	}
	if got := ParseStyle("for-the-badge"); got != StyleForTheBadge {
		t.Errorf("ParseStyle(for-the-badge) = %q", got)
	}
	if got := ParseStyle(""); got != StyleFlat {
		t.Errorf("ParseStyle(empty) = %q, want flat", got)
	}
}

func TestRenderForTheBadgeUppercases(t *testing.T) {
	svg := Render(Params{Style: StyleForTheBadge, Label: "hits", Message: "42"})
	if !strings.Contains(svg, ">HITS</text>") {
		t.Errorf("for-the-badge label not uppercased")
	}
	if !strings.Contains(svg, `height="28"`) {
		t.Errorf("for-the-badge height missing")
	}
	if strings.Contains(svg, "linearGradient") {
		t.Errorf("for-the-badge must not use gradients")
	}

	// Uppercasing happens before escaping, so entities stay well-formed.
	svg = Render(Params{Style: StyleForTheBadge, Label: "<hits>", Message: "1"})
	if !strings.Contains(svg, "&lt;HITS&gt;") {
		t.Errorf("escaped markup mangled by uppercasing: %q", svg)
	}
}

func TestTextWidthMinimum(t *testing.T) {
	if got := textWidth(""); got != minTextWidth {
		t.Errorf("textWidth(\"\") = %d, want %d", got, minTextWidth)
	}
	if textWidth("i") >= textWidth("WWW") {
		t.Errorf("narrow text measured wider than wide text")
	}
}

func TestLongerMessageWiderBadge(t *testing.T) {
	short := Render(Params{Label: "hits", Message: "1"})
	long := Render(Params{Label: "hits", Message: "123456789"})
	if len(long) <= 0 || short == long {
		t.Errorf("badge width should depend on message length")
	}
}
