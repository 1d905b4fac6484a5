package gui

import (
	"strings"
	"unicode"
)

// TextWrapMode selects where WrapText may break a line.
type TextWrapMode int

const (
	WrapWord TextWrapMode = iota
	WrapChar
	// WrapAuto breaks per character when the text contains CJK, else per word.
	WrapAuto
)

// WrapText splits text into lines no wider than maxWidth. Explicit newlines
// always break. A word wider than maxWidth is broken per character.
func WrapText(ctx *Context, text string, maxWidth float32, mode TextWrapMode) []string {
	if maxWidth <= 0 {
		return strings.Split(text, "\n")
	}
	if mode == WrapAuto {
		mode = WrapWord
		if containsCJK(text) {
			mode = WrapChar
		}
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if mode == WrapChar {
			lines = append(lines, wrapChars(ctx, []rune(para), maxWidth)...)
			continue
		}
		lines = append(lines, wrapWords(ctx, para, maxWidth)...)
	}
	return lines
}

func wrapWords(ctx *Context, text string, maxWidth float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := ""
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if ctx.MeasureText(candidate).X <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		if ctx.MeasureText(word).X <= maxWidth {
			line = word
			continue
		}
		broken := wrapChars(ctx, []rune(word), maxWidth)
		lines = append(lines, broken[:len(broken)-1]...)
		line = broken[len(broken)-1]
	}
	return append(lines, line)
}

func wrapChars(ctx *Context, runes []rune, maxWidth float32) []string {
	if len(runes) == 0 {
		return []string{""}
	}
	var lines []string
	start := 0
	for i := 1; i <= len(runes); i++ {
		if ctx.MeasureText(string(runes[start:i])).X > maxWidth && i-1 > start {
			lines = append(lines, string(runes[start:i-1]))
			start = i - 1
		}
	}
	return append(lines, string(runes[start:]))
}

func containsCJK(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) {
			return true
		}
	}
	return false
}

// TruncateText shortens text to fit maxWidth, ending it with "..".
func TruncateText(ctx *Context, text string, maxWidth float32) string {
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}
	const suffix = ".."
	runes := []rune(text)
	target := maxWidth - ctx.MeasureText(suffix).X
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if ctx.MeasureText(string(runes)).X <= target {
			return string(runes) + suffix
		}
	}
	return ""
}

// MeasureWrappedText returns the size of text after WrapText.
func MeasureWrappedText(ctx *Context, text string, maxWidth float32, mode TextWrapMode) Vec2 {
	lines := WrapText(ctx, text, maxWidth, mode)
	var w float32
	for _, line := range lines {
		w = maxf(w, ctx.MeasureText(line).X)
	}
	return Vec2{X: w, Y: float32(len(lines)) * ctx.lineHeight()}
}
