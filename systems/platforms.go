package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/gamemath"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
)

// PlatformSet is the level's static platforms in resolution order. Platforms
// never move, so their rectangles are captured once.
type PlatformSet struct {
	entries []*donburi.Entry
	rects   []gamemath.Rect
	ground  []bool
}

func NewPlatformSet(entries []*donburi.Entry) *PlatformSet {
	ps := &PlatformSet{
		entries: entries,
		rects:   make([]gamemath.Rect, len(entries)),
		ground:  make([]bool, len(entries)),
	}
	for i, e := range entries {
		ps.rects[i] = components.Object.Get(e).Rect()
		ps.ground[i] = e.HasComponent(tags.Ground)
	}
	return ps
}

func (ps *PlatformSet) Len() int                  { return len(ps.entries) }
func (ps *PlatformSet) Entries() []*donburi.Entry { return ps.entries }
func (ps *PlatformSet) Rects() []gamemath.Rect    { return ps.rects }
func (ps *PlatformSet) IsGround(i int) bool       { return ps.ground[i] }
