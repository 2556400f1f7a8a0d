package badge

// Advance widths for printable ASCII in Verdana at font-size 11, in tenths
// of a pixel. The SVG output also sets textLength, so the browser corrects
// any residual error; the table only has to get rect widths close.
var verdanaWidths = [95]int{
	35,  // ' '
	40,  // '!'
	46,  // '"'
	82,  // '#'
	70,  // '$'
	104, // '%'
	73,  // '&'
	27,  // '\''
	45,  // '('
	45,  // ')'
	70,  // '*'
	82,  // '+'
	36,  // ','
	45,  // '-'
	36,  // '.'
	47,  // '/'
	70,  // '0'
	70,  // '1'
	70,  // '2'
	70,  // '3'
	70,  // '4'
	70,  // '5'
	70,  // '6'
	70,  // '7'
	70,  // '8'
	70,  // '9'
	45,  // ':'
	45,  // ';'
	82,  // '<'
	82,  // '='
	82,  // '>'
	60,  // '?'
	100, // '@'
	75,  // 'A'
	76,  // 'B'
	77,  // 'C'
	83,  // 'D'
	70,  // 'E'
	64,  // 'F'
	84,  // 'G'
	83,  // 'H'
	45,  // 'I'
	50,  // 'J'
	76,  // 'K'
	61,  // 'L'
	93,  // 'M'
	82,  // 'N'
	87,  // 'O'
	66,  // 'P'
	87,  // 'Q'
	76,  // 'R'
	75,  // 'S'
	68,  // 'T'
	81,  // 'U'
	75,  // 'V'
	110, // 'W'
	75,  // 'X'
	67,  // 'Y'
	75,  // 'Z'
	45,  // '['
	47,  // '\\'
	45,  // ']'
	82,  // '^'
	70,  // '_'
	70,  // '`'
	66,  // 'a'
	69,  // 'b'
	58,  // 'c'
	69,  // 'd'
	67,  // 'e'
	39,  // 'f'
	69,  // 'g'
	70,  // 'h'
	30,  // 'i'
	37,  // 'j'
	64,  // 'k'
	30,  // 'l'
	107, // 'm'
	70,  // 'n'
	68,  // 'o'
	69,  // 'p'
	69,  // 'q'
	47,  // 'r'
	58,  // 's'
	43,  // 't'
	70,  // 'u'
	64,  // 'v'
	92,  // 'w'
	64,  // 'x'
	64,  // 'y'
	58,  // 'z'
	70,  // '{'
	46,  // '|'
	70,  // '}'
	82,  // '~'
}

// defaultCharWidth covers runes outside printable ASCII.
const defaultCharWidth = 70

// minTextWidth avoids overly squashed text for very short strings.
const minTextWidth = 5

// textWidth estimates the rendered width of s in whole pixels at the badge
// font size. Social style reuses the same table; Helvetica bold at 11px is
// close enough for layout.
func textWidth(s string) int {
	total := 0
	for _, r := range s {
		if r >= ' ' && r <= '~' {
			total += verdanaWidths[r-' ']
		} else {
			total += defaultCharWidth
		}
	}
	px := (total + 9) / 10
	if px < minTextWidth {
		px = minTextWidth
	}
	return px
}
