package service

import (
	"maps"
	"sync"

	"github.com/aussiebroadwan/hirejoy/internal/pipeline/view"
)

// ViewState is the interaction state behind the board: what was typed in the
// search box, which layout is showing and which sections are folded away.
type ViewState struct {
	Query     string
	Mode      view.Mode
	Collapsed map[string]bool
}

// ViewStateService keeps the view state of the active session.
type ViewStateService struct {
	mu    sync.Mutex
	state ViewState
}

func NewViewStateService() *ViewStateService {
	v := &ViewStateService{}
	v.Reset()
	return v
}

// Reset goes back to an empty search, the sections layout and nothing
// collapsed.
func (v *ViewStateService) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = ViewState{Mode: view.ModeSections, Collapsed: map[string]bool{}}
}

func (v *ViewStateService) SetQuery(q string) ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Query = q
	return v.snapshotLocked()
}

func (v *ViewStateService) SetMode(m view.Mode) ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Mode = m
	return v.snapshotLocked()
}

// Toggle flips the group between expanded and collapsed and reports whether
// it is now expanded. Groups start expanded.
func (v *ViewStateService) Toggle(key string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state.Collapsed[key] {
		delete(v.state.Collapsed, key)
		return true
	}
	v.state.Collapsed[key] = true
	return false
}

func (v *ViewStateService) Snapshot() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *ViewStateService) snapshotLocked() ViewState {
	s := v.state
	s.Collapsed = maps.Clone(v.state.Collapsed)
	return s
}
