package gravity

import "github.com/lixenwraith/gravitor/vmath"

// Wells is the ordered well collection of a Game
// Order is creation order; at most one well is ever open
// Not safe for concurrent use, the owning Game serializes access
type Wells struct {
	cfg    WellConfig
	list   []*Well
	nextID uint64
}

// NewWells creates an empty collection
func NewWells(cfg WellConfig) *Wells {
	return &Wells{
		cfg:    cfg,
		list:   make([]*Well, 0, 8),
		nextID: 1,
	}
}

// OpenAt starts drawing a new well at location
// No-op returning false if a well is already open or the cap is reached
func (ws *Wells) OpenAt(location vmath.Point) (*Well, bool) {
	if ws.Open() != nil {
		return nil, false
	}
	if ws.cfg.MaxWells > 0 && ws.Len() >= ws.cfg.MaxWells {
		return nil, false
	}

	w := newWell(ws.nextID, location, ws.cfg.StrengthPerRadius)
	ws.nextID++
	ws.list = append(ws.list, w)
	return w, true
}

// Open returns the well currently being drawn, or nil
func (ws *Wells) Open() *Well {
	// Scan from the end: the open well is the most recently created one
	for i := len(ws.list) - 1; i >= 0; i-- {
		if ws.list[i].status == WellOpen {
			return ws.list[i]
		}
	}
	return nil
}

// CloseOpen finalizes the open well, no-op returning false if none is open
func (ws *Wells) CloseOpen() (*Well, bool) {
	w := ws.Open()
	if w == nil {
		return nil, false
	}
	return w, w.close(ws.cfg.LifetimeTicks)
}

// Advance ages every well by one tick and returns the wells that expired
func (ws *Wells) Advance() []*Well {
	var expired []*Well
	for _, w := range ws.list {
		if w.advance(&ws.cfg) {
			expired = append(expired, w)
		}
	}
	return expired
}

// Prune drops removed wells, preserving order; idempotent
// Returns the number of wells dropped
func (ws *Wells) Prune() int {
	kept := ws.list[:0]
	for _, w := range ws.list {
		if w.status != WellRemoved {
			kept = append(kept, w)
		}
	}
	dropped := len(ws.list) - len(kept)
	for i := len(kept); i < len(ws.list); i++ {
		ws.list[i] = nil
	}
	ws.list = kept
	return dropped
}

// All returns the wells in creation order, pruned wells excluded
// The slice is owned by the collection and valid until the next mutation
func (ws *Wells) All() []*Well {
	return ws.list
}

// AppendSources appends the active wells to dst in creation order
func (ws *Wells) AppendSources(dst []Source) []Source {
	for _, w := range ws.list {
		if w.Active() {
			dst = append(dst, w)
		}
	}
	return dst
}

// Len counts non-removed wells
func (ws *Wells) Len() int {
	n := 0
	for _, w := range ws.list {
		if w.status != WellRemoved {
			n++
		}
	}
	return n
}

// OpenCount is 0 or 1
func (ws *Wells) OpenCount() int {
	n := 0
	for _, w := range ws.list {
		if w.status == WellOpen {
			n++
		}
	}
	return n
}

// Reset drops every well
func (ws *Wells) Reset() {
	clear(ws.list)
	ws.list = ws.list[:0]
	ws.nextID = 1
}
