// Package animate flags the keys that take part in the key-press
// animation of the current frame. It only sets ButtonCell.Animated; the
// LED frame then shows each flagged key's cached animation code.
package animate

import (
	"hexboard/hexgrid"
	"hexboard/keys"
	"hexboard/microtonal"
)

const (
	FrameInterval = 1000000 / 30 // microseconds between animation frames
	RadiusStep    = 125000       // time for star and splash to grow one hex
	OrbitStep     = 62500        // time for orbit to move one position
	MaxRadius     = 6
)

// Frame clears every Animated flag and sets it on the keys animated by
// mode at time now. It returns the number of flagged keys.
func Frame(cells *keys.Cells, mode microtonal.Animation, now uint64) int {
	for i := range cells {
		cells[i].Animated = false
	}
	if mode == microtonal.AnimateNone {
		return 0
	}

	for i := range cells {
		src := &cells[i]
		if !src.Pressed() || src.IsCommand {
			continue
		}
		elapsed := uint64(0)
		if now > src.LastPressTime {
			elapsed = now - src.LastPressTime
		}

		switch mode {
		case microtonal.AnimateStar:
			star(cells, src.Coord, radius(elapsed))
		case microtonal.AnimateSplash:
			splash(cells, src.Coord, radius(elapsed))
		case microtonal.AnimateOrbit:
			orbit(cells, src.Coord, int(elapsed/OrbitStep)%len(hexgrid.Directions))
		case microtonal.AnimateOctave:
			match(cells, func(c *keys.ButtonCell) bool { return c.Degree == src.Degree })
		case microtonal.AnimateByNote:
			match(cells, func(c *keys.ButtonCell) bool { return c.StepsFromC == src.StepsFromC })
		}
	}

	n := 0
	for i := range cells {
		if cells[i].Animated {
			n++
		}
	}
	return n
}

// radius cycles 1..MaxRadius while the key is held
func radius(elapsed uint64) int {
	return 1 + int(elapsed/RadiusStep)%MaxRadius
}

func flag(cells *keys.Cells, h hexgrid.HexCoordinate) {
	if id, ok := hexgrid.KeyForCoordinate(h); ok {
		cells[id].Animated = true
	}
}

// star lights the hex r steps away along each of the six directions
func star(cells *keys.Cells, center hexgrid.HexCoordinate, r int) {
	for _, d := range hexgrid.Directions {
		h := center
		for i := 0; i < r; i++ {
			h = h.Step(d)
		}
		flag(cells, h)
	}
}

// splash lights the ring of hexes exactly r steps away
func splash(cells *keys.Cells, center hexgrid.HexCoordinate, r int) {
	for i := range cells {
		if hexgrid.Distance(center, cells[i].Coord) == r {
			cells[i].Animated = true
		}
	}
}

// orbit lights two opposite neighbours, rotating with pos
func orbit(cells *keys.Cells, center hexgrid.HexCoordinate, pos int) {
	flag(cells, center.Step(hexgrid.Directions[pos]))
	flag(cells, center.Step(hexgrid.Directions[(pos+3)%len(hexgrid.Directions)]))
}

func match(cells *keys.Cells, same func(c *keys.ButtonCell) bool) {
	for i := range cells {
		c := &cells[i]
		if !c.IsCommand && c.Note != microtonal.UnusedNote && same(c) {
			c.Animated = true
		}
	}
}
