package obstacle

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/lixenwraith/ski-rush/constants"
	"github.com/lixenwraith/ski-rush/sprite"
	"github.com/lixenwraith/ski-rush/vmath"
	"github.com/zeebo/xxh3"
)

// Field owns the obstacles on the slope in placement order
// Not safe for concurrent use; the game loop mutates it between skier ticks
type Field struct {
	obstacles *orderedmap.OrderedMap[uint64, *Obstacle]
	nextID    uint64
	rng       *rand.Rand
	sizes     sprite.SizeSource

	// Snapshot handed to the skier, rebuilt after any placement or removal
	list  []*Obstacle
	dirty bool
}

// NewField creates an empty field; an empty seed draws placement from the clock
func NewField(seed string, sizes sprite.SizeSource) *Field {
	var s uint64
	if seed == "" {
		s = uint64(time.Now().UnixNano())
	} else {
		s = xxh3.HashString(seed)
	}

	return &Field{
		obstacles: orderedmap.NewOrderedMap[uint64, *Obstacle](),
		nextID:    1,
		rng:       rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
		sizes:     sizes,
	}
}

// Add places an obstacle of the given kind and returns it
func (f *Field) Add(kind sprite.Name, x, y float64) *Obstacle {
	o := New(f.nextID, kind, x, y, f.sizes)
	f.nextID++
	f.obstacles.Set(o.ID(), o)
	f.dirty = true
	return o
}

// Get returns the obstacle with the given id
func (f *Field) Get(id uint64) (*Obstacle, bool) {
	return f.obstacles.Get(id)
}

// Len returns the number of live obstacles
func (f *Field) Len() int {
	return f.obstacles.Len()
}

// List returns the obstacles in placement order
// The returned slice must be treated as read-only and is valid until the next mutation
func (f *Field) List() []*Obstacle {
	if f.dirty || f.list == nil {
		f.list = f.list[:0]
		for el := f.obstacles.Front(); el != nil; el = el.Next() {
			f.list = append(f.list, el.Value)
		}
		f.dirty = false
	}
	return f.list
}

// PlaceInitial scatters the opening obstacles around the starting window, keeping the spawn point clear
func (f *Field) PlaceInitial(window vmath.Rect) {
	area := vmath.Rect{
		Left:   window.Left - window.Width(),
		Top:    window.Top,
		Right:  window.Right + window.Width(),
		Bottom: window.Bottom + window.Height(),
	}
	center := vmath.Position{
		X: (window.Left + window.Right) / 2,
		Y: (window.Top + window.Bottom) / 2,
	}

	for i := 0; i < constants.InitialObstacleCount; i++ {
		for attempt := 0; attempt < constants.PlacementAttempts; attempt++ {
			p := f.randomPoint(area)
			if distance(p, center) < constants.StartAreaRadius {
				continue
			}
			if f.placeAt(p) {
				break
			}
		}
	}
}

// PlaceNew may place one obstacle just beyond the edge the window moved toward
// Higher levels raise the placement chance down to MinObstacleChance
func (f *Field) PlaceNew(window, previous vmath.Rect, level int) bool {
	chance := constants.NewObstacleChance - (level - 1)
	if chance < constants.MinObstacleChance {
		chance = constants.MinObstacleChance
	}
	if f.rng.IntN(chance) != 0 {
		return false
	}

	strips := revealedStrips(window, previous)
	if len(strips) == 0 {
		return false
	}
	strip := strips[f.rng.IntN(len(strips))]

	for attempt := 0; attempt < constants.PlacementAttempts; attempt++ {
		if f.placeAt(f.randomPoint(strip)) {
			return true
		}
	}
	return false
}

// Recycle drops obstacles left far behind the window
func (f *Field) Recycle(window vmath.Rect) int {
	// Anything below the window is still ahead of the skier
	keep := vmath.Rect{
		Left:   window.Left - window.Width() - constants.RecycleDistance,
		Top:    window.Top - constants.RecycleDistance,
		Right:  window.Right + window.Width() + constants.RecycleDistance,
		Bottom: math.Inf(1),
	}

	var stale []uint64
	for el := f.obstacles.Front(); el != nil; el = el.Next() {
		if !keep.Contains(el.Value.Position()) {
			stale = append(stale, el.Key)
		}
	}

	for _, id := range stale {
		f.obstacles.Delete(id)
	}
	if len(stale) > 0 {
		f.dirty = true
	}
	return len(stale)
}

func (f *Field) placeAt(p vmath.Position) bool {
	for el := f.obstacles.Front(); el != nil; el = el.Next() {
		if distance(el.Value.Position(), p) < constants.ObstacleSpacing {
			return false
		}
	}
	kind := Kinds[f.rng.IntN(len(Kinds))]
	f.Add(kind, p.X, p.Y)
	return true
}

func (f *Field) randomPoint(r vmath.Rect) vmath.Position {
	return vmath.Position{
		X: r.Left + f.rng.Float64()*r.Width(),
		Y: r.Top + f.rng.Float64()*r.Height(),
	}
}

// revealedStrips returns the bands just past each window edge that moved outward
func revealedStrips(window, previous vmath.Rect) []vmath.Rect {
	var strips []vmath.Rect

	if dx := previous.Left - window.Left; dx > 0 {
		strips = append(strips, vmath.Rect{Left: window.Left - dx, Top: window.Top, Right: window.Left, Bottom: window.Bottom})
	}
	if dx := window.Right - previous.Right; dx > 0 {
		strips = append(strips, vmath.Rect{Left: window.Right, Top: window.Top, Right: window.Right + dx, Bottom: window.Bottom})
	}
	if dy := previous.Top - window.Top; dy > 0 {
		strips = append(strips, vmath.Rect{Left: window.Left, Top: window.Top - dy, Right: window.Right, Bottom: window.Top})
	}
	if dy := window.Bottom - previous.Bottom; dy > 0 {
		strips = append(strips, vmath.Rect{Left: window.Left, Top: window.Bottom, Right: window.Right, Bottom: window.Bottom + dy})
	}

	return strips
}

func distance(a, b vmath.Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
