package badge

import (
	"fmt"
	"strings"
)

// Constants for badge styling.
const (
	badgeHeight       = 20
	horizontalPadding = 6 // padding left/right of text
	fontFamily        = "Verdana,Geneva,DejaVu Sans,sans-serif"
	fontSizeScaled    = 110 // font-size="11" with transform="scale(.1)"
)

// Style selects the visual treatment of the badge.
type Style string

const (
	StyleFlat        Style = "flat"
	StyleFlatSquare  Style = "flat-square"
	StylePlastic     Style = "plastic"
	StyleSocial      Style = "social"
	StyleForTheBadge Style = "for-the-badge"
)

// ParseStyle maps a query-string value to a Style, falling back to flat.
func ParseStyle(s string) Style {
	switch Style(s) {
	case StyleFlatSquare, StylePlastic, StyleSocial, StyleForTheBadge:
		return Style(s)
	default:
		return StyleFlat
	}
}

// DefaultLabel is the left-hand text when the caller supplies none.
const DefaultLabel = "Hits"

// DefaultLabelColor and DefaultMessageColor match the shields.io defaults.
const (
	DefaultLabelColor   = "#555"
	DefaultMessageColor = "#007ec6"
)

// Params describes one badge to render.
type Params struct {
	Style        Style
	Label        string
	Message      string
	LabelColor   string
	MessageColor string
}

// Render produces the badge as an SVG document. Pure function of its
// arguments; callers own caching and transport headers.
func Render(p Params) string {
	if p.Label == "" {
		p.Label = DefaultLabel
	}
	if p.LabelColor == "" {
		p.LabelColor = DefaultLabelColor
	}
	if p.MessageColor == "" {
		p.MessageColor = DefaultMessageColor
	}
	label := xmlEscape(p.Label)
	message := xmlEscape(p.Message)

	switch p.Style {
	case StyleSocial:
		return renderSocial(label, message)
	case StyleForTheBadge:
		// Uppercase the raw text before escaping so entities stay intact.
		return renderForTheBadge(
			xmlEscape(strings.ToUpper(p.Label)),
			xmlEscape(strings.ToUpper(p.Message)),
			p.LabelColor, p.MessageColor,
		)
	case StyleFlatSquare:
		return renderRect(label, message, p.LabelColor, p.MessageColor, 0)
	case StylePlastic:
		return renderPlastic(label, message, p.LabelColor, p.MessageColor)
	default:
		return renderRect(label, message, p.LabelColor, p.MessageColor, 3)
	}
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}

// renderRect covers the flat and flat-square styles, which share geometry
// and differ only in corner radius.
func renderRect(label, message, labelColor, messageColor string, cornerRadius int) string {
	const textY = 140
	labelTextWidth := textWidth(label)
	messageTextWidth := textWidth(message)

	labelRectWidth := labelTextWidth + 2*horizontalPadding
	messageRectWidth := messageTextWidth + 2*horizontalPadding
	totalWidth := labelRectWidth + messageRectWidth

	labelX := (labelRectWidth / 2) * 10
	messageX := (labelRectWidth + messageRectWidth/2) * 10
	labelTextLength := labelTextWidth * 10
	messageTextLength := messageTextWidth * 10
	shadowY := textY + 10

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" role="img" aria-label="%s: %s">
    <title>%s: %s</title>
    <linearGradient id="s" x2="0" y2="100%%">
        <stop offset="0" stop-color="#bbb" stop-opacity=".1"/>
        <stop offset="1" stop-opacity=".1"/>
    </linearGradient>
    <clipPath id="r">
        <rect width="%d" height="%d" rx="%d" fill="#fff"/>
    </clipPath>
    <g clip-path="url(#r)">
        <rect width="%d" height="%d" fill="%s"/>
        <rect x="%d" width="%d" height="%d" fill="%s"/>
        <rect width="%d" height="%d" fill="url(#s)"/>
    </g>
    <g fill="#fff" text-anchor="middle" font-family="%s" text-rendering="geometricPrecision" font-size="%d">
        <text aria-hidden="true" x="%d" y="%d" fill="#010101" fill-opacity=".3" transform="scale(.1)" textLength="%d">%s</text>
        <text x="%d" y="%d" transform="scale(.1)" fill="#fff" textLength="%d">%s</text>
        <text aria-hidden="true" x="%d" y="%d" fill="#010101" fill-opacity=".3" transform="scale(.1)" textLength="%d">%s</text>
        <text x="%d" y="%d" transform="scale(.1)" fill="#fff" textLength="%d">%s</text>
    </g>
</svg>`,
		totalWidth, badgeHeight, label, message,
		label, message,
		totalWidth, badgeHeight, cornerRadius,
		labelRectWidth, badgeHeight, labelColor,
		labelRectWidth, messageRectWidth, badgeHeight, messageColor,
		totalWidth, badgeHeight,
		fontFamily, fontSizeScaled,
		labelX, shadowY, labelTextLength, label,
		labelX, textY, labelTextLength, label,
		messageX, shadowY, messageTextLength, message,
		messageX, textY, messageTextLength, message,
	)
}

func renderPlastic(label, message, labelColor, messageColor string) string {
	const cornerRadius = 3
	const textY = 135
	labelTextWidth := textWidth(label)
	messageTextWidth := textWidth(message)

	labelRectWidth := labelTextWidth + 2*horizontalPadding
	messageRectWidth := messageTextWidth + 2*horizontalPadding
	totalWidth := labelRectWidth + messageRectWidth

	labelX := (labelRectWidth / 2) * 10
	messageX := (labelRectWidth + messageRectWidth/2) * 10
	labelTextLength := labelTextWidth * 10
	messageTextLength := messageTextWidth * 10
	shadowY := textY + 10

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" role="img" aria-label="%s: %s">
    <title>%s: %s</title>
    <linearGradient id="a" x2="0" y2="100%%">
        <stop offset="0" stop-color="#fff" stop-opacity=".7"/>
        <stop offset=".1" stop-color="#aaa" stop-opacity=".1"/>
        <stop offset=".9" stop-color="#000" stop-opacity=".3"/>
        <stop offset="1" stop-color="#000" stop-opacity=".5"/>
    </linearGradient>
    <clipPath id="r">
        <rect width="%d" height="%d" rx="%d" fill="#fff"/>
    </clipPath>
    <g clip-path="url(#r)">
        <rect width="%d" height="%d" fill="%s"/>
        <rect x="%d" width="%d" height="%d" fill="%s"/>
        <rect width="%d" height="%d" fill="url(#a)"/>
    </g>
    <g fill="#fff" text-anchor="middle" font-family="%s" text-rendering="geometricPrecision" font-size="%d">
        <text aria-hidden="true" x="%d" y="%d" fill="#111" fill-opacity=".3" transform="scale(.1)" textLength="%d">%s</text>
        <text x="%d" y="%d" transform="scale(.1)" fill="#fff" textLength="%d">%s</text>
        <text aria-hidden="true" x="%d" y="%d" fill="#111" fill-opacity=".3" transform="scale(.1)" textLength="%d">%s</text>
        <text x="%d" y="%d" transform="scale(.1)" fill="#fff" textLength="%d">%s</text>
    </g>
</svg>`,
		totalWidth, badgeHeight, label, message,
		label, message,
		totalWidth, badgeHeight, cornerRadius,
		labelRectWidth, badgeHeight, labelColor,
		labelRectWidth, messageRectWidth, badgeHeight, messageColor,
		totalWidth, badgeHeight,
		fontFamily, fontSizeScaled,
		labelX, shadowY, labelTextLength, label,
		labelX, textY, labelTextLength, label,
		messageX, shadowY, messageTextLength, message,
		messageX, textY, messageTextLength, message,
	)
}

// For-the-badge style constants. Taller rect, spaced uppercase text, flat
// fills with no gradient.
const (
	ftbHeight        = 28
	ftbPadding       = 9
	ftbFontSize      = 100 // font-size="10" with transform="scale(.1)"
	ftbLetterSpacing = 1   // extra px per character
)

func renderForTheBadge(label, message, labelColor, messageColor string) string {
	const textY = 175
	labelTextWidth := textWidth(label) + ftbLetterSpacing*len([]rune(label))
	messageTextWidth := textWidth(message) + ftbLetterSpacing*len([]rune(message))

	labelRectWidth := labelTextWidth + 2*ftbPadding
	messageRectWidth := messageTextWidth + 2*ftbPadding
	totalWidth := labelRectWidth + messageRectWidth

	labelX := (labelRectWidth / 2) * 10
	messageX := (labelRectWidth + messageRectWidth/2) * 10
	labelTextLength := labelTextWidth * 10
	messageTextLength := messageTextWidth * 10

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" role="img" aria-label="%s: %s">
    <title>%s: %s</title>
    <g shape-rendering="crispEdges">
        <rect width="%d" height="%d" fill="%s"/>
        <rect x="%d" width="%d" height="%d" fill="%s"/>
    </g>
    <g fill="#fff" text-anchor="middle" font-family="%s" text-rendering="geometricPrecision" font-size="%d">
        <text x="%d" y="%d" transform="scale(.1)" fill="#fff" textLength="%d">%s</text>
        <text x="%d" y="%d" transform="scale(.1)" fill="#fff" font-weight="bold" textLength="%d">%s</text>
    </g>
</svg>`,
		totalWidth, ftbHeight, label, message,
		label, message,
		labelRectWidth, ftbHeight, labelColor,
		labelRectWidth, messageRectWidth, ftbHeight, messageColor,
		fontFamily, ftbFontSize,
		labelX, textY, labelTextLength, label,
		messageX, textY, messageTextLength, message,
	)
}

// Social style constants.
const (
	socialFontFamily   = "Helvetica Neue,Helvetica,Arial,sans-serif"
	socialFontWeight   = 700
	socialStrokeColor  = "#d5d5d5"
	socialLabelBg      = "#fcfcfc"
	socialMessageBg    = "#fafafa"
	socialTextColor    = "#333"
	socialPadding      = 6
	socialGap          = 6 // gap between label and message parts for the arrow
	socialCornerRadius = 2
)

func renderSocial(label, message string) string {
	// Colors are fixed for the social style.
	rectHeight := badgeHeight - 1

	labelTextWidth := textWidth(label)
	messageTextWidth := textWidth(message)

	labelPartWidth := labelTextWidth + 2*socialPadding
	messagePartWidth := messageTextWidth + 2*socialPadding

	messageRectStartX := labelPartWidth + socialGap
	totalWidth := messageRectStartX + messagePartWidth + 1 // 0.5px offsets on both edges

	labelTextX := labelPartWidth * 10 / 2
	messageTextX := (messageRectStartX + messagePartWidth/2) * 10
	textYMain := 140
	textYShadow := textYMain + 10
	labelTextLength := labelTextWidth * 10
	messageTextLength := messageTextWidth * 10

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" role="img" aria-label="%s: %s">
    <title>%s: %s</title>
    <style>a:hover #llink{fill:url(#b);stroke:#ccc}a:hover #rlink{fill:#4183c4}</style>
    <linearGradient id="a" x2="0" y2="100%%">
        <stop offset="0" stop-color="#fcfcfc" stop-opacity="0"/>
        <stop offset="1" stop-opacity=".1"/>
    </linearGradient>
    <linearGradient id="b" x2="0" y2="100%%">
        <stop offset="0" stop-color="#ccc" stop-opacity=".1"/>
        <stop offset="1" stop-opacity=".1"/>
    </linearGradient>
    <g stroke="%s">
        <rect stroke="none" fill="%s" x="0.5" y="0.5" width="%d" height="%d" rx="%d"/>
        <rect x="%.1f" y="0.5" width="%d" height="%d" rx="%d" fill="%s"/>
        <rect x="%d" y="7.5" width="0.5" height="5" stroke="%s"/>
        <path d="M%d 6.5 l-3 3v1 l3 3" stroke="%s" fill="%s"/>
    </g>
    <g aria-hidden="true" fill="%s" text-anchor="middle" font-family="%s" text-rendering="geometricPrecision" font-weight="%d" font-size="%dpx" line-height="14px">
        <rect id="llink" stroke="%s" fill="url(#a)" x=".5" y=".5" width="%d" height="%d" rx="%d"/>
        <text aria-hidden="true" x="%d" y="%d" fill="#fff" transform="scale(.1)" textLength="%d">%s</text>
        <text x="%d" y="%d" transform="scale(.1)" textLength="%d">%s</text>
        <text aria-hidden="true" x="%d" y="%d" fill="#fff" transform="scale(.1)" textLength="%d">%s</text>
        <text id="rlink" x="%d" y="%d" transform="scale(.1)" textLength="%d">%s</text>
    </g>
</svg>`,
		totalWidth, badgeHeight, label, message,
		label, message,
		socialStrokeColor,
		socialLabelBg, labelPartWidth, rectHeight, socialCornerRadius,
		float64(messageRectStartX)-0.2, messagePartWidth, rectHeight, socialCornerRadius, socialMessageBg,
		messageRectStartX, socialMessageBg,
		messageRectStartX, socialStrokeColor, socialMessageBg,
		socialTextColor, socialFontFamily, socialFontWeight, fontSizeScaled,
		socialStrokeColor, labelPartWidth, rectHeight, socialCornerRadius,
		labelTextX, textYShadow, labelTextLength, label,
		labelTextX, textYMain, labelTextLength, label,
		messageTextX, textYShadow, messageTextLength, message,
		messageTextX, textYMain, messageTextLength, message,
	)
}
