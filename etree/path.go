package etree

import (
	"math"
	"regexp"
	"strconv"
)

var pathTokenRE = regexp.MustCompile(`[A-Za-z]|[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)

type vertex struct{ x, y float64 }

// rectangleSize parses SVG path data and, if it traces a single closed
// axis-aligned rectangle, returns its width and height. Only straight-line
// commands (M, L, H, V, Z in either case) are understood.
func rectangleSize(d string) (width, height float64, ok bool) {
	vs, closed, ok := tracePolyline(d)
	if !ok || !closed {
		return 0, 0, false
	}

	vs = dropCollinear(dedupe(vs))
	if len(vs) != 4 {
		return 0, 0, false
	}

	minX, maxX := vs[0].x, vs[0].x
	minY, maxY := vs[0].y, vs[0].y
	for i, v := range vs {
		next := vs[(i+1)%len(vs)]
		if v.x != next.x && v.y != next.y {
			return 0, 0, false
		}
		minX, maxX = math.Min(minX, v.x), math.Max(maxX, v.x)
		minY, maxY = math.Min(minY, v.y), math.Max(maxY, v.y)
	}
	for _, v := range vs {
		if (v.x != minX && v.x != maxX) || (v.y != minY && v.y != maxY) {
			return 0, 0, false
		}
	}
	return maxX - minX, maxY - minY, true
}

// tracePolyline returns the absolute vertices of the first subpath in d.
// closed reports whether the subpath ends with Z or returns to its start.
func tracePolyline(d string) (vs []vertex, closed, ok bool) {
	tokens := pathTokenRE.FindAllString(d, -1)
	var cur vertex
	var cmd byte
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if isCommand(tok) {
			cmd = tok[0]
			i++
			if cmd == 'Z' || cmd == 'z' {
				return vs, len(vs) > 0, true
			}
			if cmd == 'M' || cmd == 'm' {
				if len(vs) > 0 {
					// A second subpath; only the first one counts.
					return vs, vs[0] == vs[len(vs)-1], true
				}
			}
			continue
		}

		switch cmd {
		case 'M', 'L', 'm', 'l':
			if i+1 >= len(tokens) || isCommand(tokens[i+1]) {
				return nil, false, false
			}
			x, err1 := strconv.ParseFloat(tokens[i], 64)
			y, err2 := strconv.ParseFloat(tokens[i+1], 64)
			if err1 != nil || err2 != nil {
				return nil, false, false
			}
			if cmd == 'm' || cmd == 'l' {
				x, y = cur.x+x, cur.y+y
			}
			cur = vertex{x, y}
			i += 2
			// Coordinates following a moveto are implicit linetos.
			if cmd == 'M' {
				cmd = 'L'
			} else if cmd == 'm' {
				cmd = 'l'
			}
		case 'H', 'h', 'V', 'v':
			n, err := strconv.ParseFloat(tokens[i], 64)
			if err != nil {
				return nil, false, false
			}
			switch cmd {
			case 'H':
				cur.x = n
			case 'h':
				cur.x += n
			case 'V':
				cur.y = n
			case 'v':
				cur.y += n
			}
			i++
		default:
			return nil, false, false
		}
		vs = append(vs, cur)
	}
	if len(vs) == 0 {
		return nil, false, false
	}
	return vs, vs[0] == vs[len(vs)-1], true
}

func isCommand(tok string) bool {
	c := tok[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// dedupe removes repeated consecutive vertices, including a final vertex
// that closes back onto the first.
func dedupe(vs []vertex) []vertex {
	out := make([]vertex, 0, len(vs))
	for _, v := range vs {
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// dropCollinear removes vertices lying on a straight run between their
// neighbours, so a side drawn in several segments counts as one.
func dropCollinear(vs []vertex) []vertex {
	for changed := true; changed && len(vs) > 3; {
		changed = false
		for i := range vs {
			prev := vs[(i+len(vs)-1)%len(vs)]
			next := vs[(i+1)%len(vs)]
			v := vs[i]
			if (prev.x == v.x && v.x == next.x) || (prev.y == v.y && v.y == next.y) {
				vs = append(vs[:i:i], vs[i+1:]...)
				changed = true
				break
			}
		}
	}
	return vs
}
