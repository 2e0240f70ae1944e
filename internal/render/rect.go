// Package render provides the frame target the UI core paints into: a
// rectangle type with the little layout math the screens need, and a Canvas
// that composes ANSI-styled strings at arbitrary positions.
package render

// Rect is a rectangular region in terminal cells.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks the rect by margin cells on every side.
func (r Rect) Inset(margin int) Rect {
	out := Rect{X: r.X + margin, Y: r.Y + margin, W: r.W - 2*margin, H: r.H - 2*margin}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Centered returns a rect of pctW% x pctH% of r, centered inside r.
func (r Rect) Centered(pctW, pctH int) Rect {
	w := r.W * clampPct(pctW) / 100
	h := r.H * clampPct(pctH) / 100
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

// SplitRows cuts r into horizontal bands. A size of 0 means "fill": the
// remaining height is shared between all fill bands, extra rows going to the
// first one. Bands that do not fit are returned empty.
func (r Rect) SplitRows(sizes ...int) []Rect {
	lens := distribute(r.H, sizes)
	out := make([]Rect, len(lens))
	y := r.Y
	for i, h := range lens {
		out[i] = Rect{X: r.X, Y: y, W: r.W, H: h}
		y += h
	}
	return out
}

// SplitCols is SplitRows for vertical bands.
func (r Rect) SplitCols(sizes ...int) []Rect {
	lens := distribute(r.W, sizes)
	out := make([]Rect, len(lens))
	x := r.X
	for i, w := range lens {
		out[i] = Rect{X: x, Y: r.Y, W: w, H: r.H}
		x += w
	}
	return out
}

func distribute(total int, sizes []int) []int {
	out := make([]int, len(sizes))
	fills := 0
	for _, s := range sizes {
		if s <= 0 {
			fills++
		}
	}
	remaining := total
	for i, s := range sizes {
		if s <= 0 {
			continue
		}
		if s > remaining {
			s = remaining
		}
		out[i] = s
		remaining -= s
	}
	if fills == 0 || remaining <= 0 {
		return out
	}
	share, extra := remaining/fills, remaining%fills
	for i, s := range sizes {
		if s > 0 {
			continue
		}
		out[i] = share + extra
		extra = 0
	}
	return out
}

func clampPct(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
