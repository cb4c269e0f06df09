package schedule

import "time"

// ActionSet bundles the side effects bound to a time block. Wallpaper and
// Music may name a single file or, with a trailing path separator, a folder
// to pick from at random.
type ActionSet struct {
	Wallpaper string
	Apps      []string
	Websites  []string
	Music     string
}

// Block is a named, possibly midnight-wrapping time interval with an
// associated action set.
type Block struct {
	Name    string
	Start   ClockTime
	End     ClockTime
	Actions ActionSet
}

// Wraps reports whether the block crosses midnight (e.g. 22:00-06:00).
func (b Block) Wraps() bool {
	return b.Start > b.End
}

// Contains reports whether t falls within the block. The start is
// inclusive and the end exclusive.
func (b Block) Contains(t ClockTime) bool {
	if !b.Wraps() {
		return b.Start <= t && t < b.End
	}
	return t >= b.Start || t < b.End
}

// List is an ordered set of blocks. Blocks need not be contiguous or
// non-overlapping; document order decides overlaps.
type List []Block

// ActiveAt returns the first block containing t.
func (l List) ActiveAt(t ClockTime) (Block, bool) {
	for _, b := range l {
		if b.Contains(t) {
			return b, true
		}
	}
	return Block{}, false
}

// ByName returns the block with the given name.
func (l List) ByName(name string) (Block, bool) {
	for _, b := range l {
		if b.Name == name {
			return b, true
		}
	}
	return Block{}, false
}

// NextTransition returns the next instant strictly after now at which any
// block boundary (start or end) is crossed. Seconds within the current
// minute are ignored; transitions land on whole minutes. The result is
// built from the boundary's wall-clock HH:MM on the target day, so it
// stays correct across DST shifts.
func (l List) NextTransition(now time.Time) (time.Time, bool) {
	if len(l) == 0 {
		return time.Time{}, false
	}
	cur := ClockOf(now)
	bestDelta := MinutesPerDay + 1
	for _, b := range l {
		for _, edge := range [2]ClockTime{b.Start, b.End} {
			delta := int(edge) - int(cur)
			if delta <= 0 {
				delta += MinutesPerDay
			}
			if delta < bestDelta {
				bestDelta = delta
			}
		}
	}
	total := int(cur) + bestDelta
	day := now.AddDate(0, 0, total/MinutesPerDay)
	target := total % MinutesPerDay
	return time.Date(day.Year(), day.Month(), day.Day(), target/60, target%60, 0, 0, now.Location()), true
}
