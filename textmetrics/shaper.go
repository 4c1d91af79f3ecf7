package textmetrics

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Shaper wraps and measures text against a registered font, adapted from
// the teacher's word-boundary wrapper: words that fit are packed greedily
// by binary search over prefix-sum widths, and a single word wider than
// maxWidth is broken progressively by grapheme cluster so multi-byte runes
// never split mid-codepoint.
type Shaper struct {
	Registry *Registry
}

// NewShaper builds a Shaper over registry.
func NewShaper(registry *Registry) *Shaper {
	return &Shaper{Registry: registry}
}

// FallbackFontName is used when an Element names a font the Registry
// never registered, keeping measurement total instead of erroring.
const FallbackFontName = ""

func (s *Shaper) resolveFont(name string, sizePx float64) *Font {
	sizePt := sizePx * 72 / defaultDPI
	if s.Registry != nil {
		if f, err := s.Registry.Font(name, sizePt); err == nil {
			return f
		}
		if name != FallbackFontName {
			if f, err := s.Registry.Font(FallbackFontName, sizePt); err == nil {
				return f
			}
		}
	}
	return nil
}

// Shape wraps text to maxWidth (0 = unconstrained, single line per input
// newline) using fontName/sizePx, returning the wrapped lines and the
// overall block size. A font the registry doesn't know about degrades to
// character-count-based measurement rather than failing layout outright.
func (s *Shaper) Shape(text string, fontName string, sizePx, maxWidth float64) (lines []string, width, height float64) {
	font := s.resolveFont(fontName, sizePx)
	if font == nil {
		return measureWithoutFont(text, sizePx, maxWidth)
	}

	norm := normalizeNewlines(text)
	paras := strings.Split(norm, "\n")
	for _, p := range paras {
		if maxWidth <= 0 || p == "" {
			lines = append(lines, p)
			continue
		}
		lines = append(lines, wrapParagraph(font, p, maxWidth)...)
	}

	lineHeight := font.LineHeightPx()
	for _, ln := range lines {
		if w, _ := font.MeasureString(ln); w > width {
			width = w
		}
	}
	height = lineHeight * float64(len(lines))
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	return lines, width, height
}

// measureWithoutFont degrades gracefully when no font is registered: an
// average-advance estimate (0.55em per rune) keeps layout usable without a
// real glyph table, matching the "never panic on unknown element" policy
// carried elsewhere in the expander/evaluator.
func measureWithoutFont(text string, sizePx, maxWidth float64) ([]string, float64, float64) {
	norm := normalizeNewlines(text)
	paras := strings.Split(norm, "\n")
	advance := sizePx * 0.55
	lineHeight := sizePx * 1.2

	var lines []string
	for _, p := range paras {
		if maxWidth <= 0 || advance <= 0 {
			lines = append(lines, p)
			continue
		}
		perLine := int(maxWidth / advance)
		if perLine < 1 {
			perLine = 1
		}
		runes := []rune(p)
		for len(runes) > perLine {
			lines = append(lines, string(runes[:perLine]))
			runes = runes[perLine:]
		}
		lines = append(lines, string(runes))
	}

	var width float64
	for _, ln := range lines {
		w := float64(len([]rune(ln))) * advance
		if w > width {
			width = w
		}
	}
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	return lines, width, lineHeight * float64(len(lines))
}

func wrapParagraph(f *Font, p string, maxWidth float64) []string {
	words := strings.Fields(p)
	if len(words) == 0 {
		return []string{""}
	}

	spaceW, _ := f.MeasureString(" ")
	var lines []string
	i := 0
	for i < len(words) {
		if w, _ := f.MeasureString(words[i]); w > maxWidth {
			chunks := splitLongWord(f, words[i], maxWidth)
			lines = append(lines, chunks...)
			i++
			continue
		}

		widths := make([]float64, len(words)-i)
		for k := range widths {
			widths[k], _ = f.MeasureString(words[i+k])
		}
		prefix := make([]float64, len(widths)+1)
		for k := 1; k <= len(widths); k++ {
			prefix[k] = prefix[k-1] + widths[k-1]
			if k > 1 {
				prefix[k] += spaceW
			}
		}

		lo, hi := 1, len(widths)
		for lo <= hi {
			mid := (lo + hi) >> 1
			if prefix[mid] <= maxWidth {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		count := hi
		if count < 1 {
			count = 1
		}
		lines = append(lines, strings.Join(words[i:i+count], " "))
		i += count
	}
	return lines
}

// splitLongWord breaks a single overlong token by grapheme cluster so a
// run of combining marks never splits its base character.
func splitLongWord(f *Font, token string, maxWidth float64) []string {
	clusters, offs := splitGraphemes(token)
	var out []string
	start := 0
	for start < len(clusters) {
		lo, hi := start+1, len(clusters)
		best := start + 1
		for lo <= hi {
			mid := (lo + hi) >> 1
			cand := token[offs[start]:offs[mid]]
			if w, _ := f.MeasureString(cand); w <= maxWidth || mid == start+1 {
				best = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		out = append(out, token[offs[start]:offs[best]])
		start = best
	}
	return out
}

func splitGraphemes(s string) (clusters []string, offsets []int) {
	g := uniseg.NewGraphemes(s)
	offsets = append(offsets, 0)
	for g.Next() {
		cl := g.Str()
		clusters = append(clusters, cl)
		offsets = append(offsets, offsets[len(offsets)-1]+len(cl))
	}
	return clusters, offsets
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}
