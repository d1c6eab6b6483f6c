package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"codeberg.org/snonux/milo/internal/card"
)

// Card is the rendered artifact pair for one word pair. The view holds only
// a borrowed reference for the current paint; entries live in the cache for
// the lifetime of the process.
type Card struct {
	Front image.Image
	Back  image.Image
}

type cacheKey struct {
	front string
	back  string
	theme Spec
}

// Renderer draws word pairs onto copies of the theme's base imagery. The
// cache is unbounded memoization: the word set and theme are both fixed and
// small, so nothing is ever evicted.
type Renderer struct {
	theme      *Theme
	titleFace  font.Face
	wordFace   font.Face
	titleColor color.RGBA
	wordColor  color.RGBA

	mu           sync.Mutex
	cache        map[cacheKey]Card
	cacheEnabled bool
}

// NewRenderer prepares font faces and colors for the given theme.
func NewRenderer(theme *Theme) (*Renderer, error) {
	titleFace, err := opentype.NewFace(theme.TitleFont, &opentype.FaceOptions{
		Size: theme.Spec.TitleFontSize,
		DPI:  72,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create title font face: %w", err)
	}
	wordFace, err := opentype.NewFace(theme.WordFont, &opentype.FaceOptions{
		Size: theme.Spec.WordFontSize,
		DPI:  72,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create word font face: %w", err)
	}

	titleColor, err := ParseColor(theme.Spec.TitleColor)
	if err != nil {
		return nil, fmt.Errorf("bad title color: %w", err)
	}
	wordColor, err := ParseColor(theme.Spec.WordColor)
	if err != nil {
		return nil, fmt.Errorf("bad word color: %w", err)
	}

	return &Renderer{
		theme:        theme,
		titleFace:    titleFace,
		wordFace:     wordFace,
		titleColor:   titleColor,
		wordColor:    wordColor,
		cache:        make(map[cacheKey]Card),
		cacheEnabled: true,
	}, nil
}

// SetCacheEnabled toggles memoization. Disabling it changes latency only,
// never the rendered output.
func (r *Renderer) SetCacheEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cacheEnabled = enabled
}

// Render produces the front and back images for a pair. Cache hits return
// the previously produced artifacts; misses compute, store and return.
func (r *Renderer) Render(pair card.WordPair) Card {
	key := cacheKey{front: pair.Front, back: pair.Back, theme: r.theme.Spec}

	r.mu.Lock()
	if r.cacheEnabled {
		if c, ok := r.cache[key]; ok {
			r.mu.Unlock()
			return c
		}
	}
	r.mu.Unlock()

	spec := r.theme.Spec
	c := Card{
		Front: r.renderFace(r.theme.BaseFront, spec.FrontTitle, pair.Front),
		Back:  r.renderFace(r.theme.BaseBack, spec.BackTitle, pair.Back),
	}

	r.mu.Lock()
	if r.cacheEnabled {
		r.cache[key] = c
	}
	r.mu.Unlock()
	return c
}

// CacheSize returns the number of memoized artifact pairs.
func (r *Renderer) CacheSize() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

// renderFace copies the base master and overlays the face title and word.
// The copy keeps cached entries independent of the masters and of each
// other.
func (r *Renderer) renderFace(base *image.RGBA, title, word string) image.Image {
	dst := image.NewRGBA(base.Bounds())
	draw.Draw(dst, dst.Bounds(), base, base.Bounds().Min, draw.Src)

	spec := r.theme.Spec
	drawCentered(dst, r.titleFace, title, spec.TitlePos, spec.TextSpacing, r.titleColor)
	drawCentered(dst, r.wordFace, word, spec.WordPos, spec.TextSpacing, r.wordColor)
	return dst
}

// drawCentered draws text centered on the anchor point, glyph by glyph so
// the theme's extra letter spacing applies.
func drawCentered(dst *image.RGBA, face font.Face, text string, anchor image.Point, spacing float64, col color.Color) {
	gap := fixed.Int26_6(spacing * 64)

	var width fixed.Int26_6
	runes := 0
	for _, ru := range text {
		adv, ok := face.GlyphAdvance(ru)
		if !ok {
			continue
		}
		width += adv
		runes++
	}
	if runes > 1 {
		width += gap * fixed.Int26_6(runes-1)
	}

	metrics := face.Metrics()
	height := metrics.Ascent + metrics.Descent

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(anchor.X) - width/2,
			Y: fixed.I(anchor.Y) - height/2 + metrics.Ascent,
		},
	}

	first := true
	for _, ru := range text {
		if !first {
			d.Dot.X += gap
		}
		d.DrawString(string(ru))
		first = false
	}
}
