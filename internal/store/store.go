// Package store holds the one authoritative packing-list document for a
// session, applies mutations atomically, keeps a bounded undo history and
// fans out change notifications.
//
// The store is a single-writer structure: all mutation funnels through
// SetState on one goroutine (the CLI call stack or the TUI update loop),
// so there is no locking. Consumers only ever see fully-applied states.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"packy/internal/model"
)

// HistoryLimit bounds the undo stack; the oldest snapshot is evicted when
// a mutation would exceed it.
const HistoryLimit = 50

// Settings are user-level preferences carried in the data portion of the
// state (they snapshot and undo together with the document).
type Settings struct {
	TemplatesDir string `json:"templatesDir,omitempty"`
	PrettyJSON   bool   `json:"prettyJson,omitempty"`
	ListFile     string `json:"listFile,omitempty"`
}

// UIState is transient navigation state. It is never snapshotted: undo
// restores the document but leaves the user where they were.
type UIState struct {
	View               string
	SelectedCategoryID string
	SelectedBagID      string
	SelectedStageID    string
}

// State is what consumers read and what updates produce. List is nil when
// no document is loaded; it is never partially initialized.
type State struct {
	List      *model.PackingList   `json:"list"`
	Templates []model.TemplateInfo `json:"templates,omitempty"`
	Settings  Settings             `json:"settings"`

	UI UIState `json:"-"`
}

// dataState is the snapshot payload: the data portion of State, excluding
// transient UI fields.
type dataState struct {
	List      *model.PackingList   `json:"list"`
	Templates []model.TemplateInfo `json:"templates,omitempty"`
	Settings  Settings             `json:"settings"`
}

// UpdateFunc computes the next state from a deep copy of the current one.
// Implementations may mutate their argument freely and return it.
type UpdateFunc func(State) State

// Listener observes every successful SetState.
type Listener func(State)

type subscriber struct {
	id int
	fn Listener
}

type Store struct {
	state   State
	history [][]byte
	subs    []subscriber
	nextSub int

	log *slog.Logger

	// Now is the store's clock; tests override it for deterministic
	// modifiedAt stamps.
	Now func() time.Time
}

func New(log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{log: log, Now: time.Now}
}

// State returns a deeply-isolated copy of the current state. Mutating the
// returned value never affects the store.
func (s *Store) State() State {
	return cloneState(s.state)
}

// SetState archives the current data portion onto the undo stack, applies
// the update and synchronously notifies subscribers. A panicking listener
// is isolated and logged; the remaining listeners still run.
func (s *Store) SetState(update UpdateFunc) {
	snap, err := marshalData(s.state)
	if err != nil {
		// Data states are plain JSON-serializable structs; failing to
		// marshal one means a programming error upstream.
		s.log.Error("store: snapshot failed", "err", err)
		return
	}
	s.history = append(s.history, snap)
	if len(s.history) > HistoryLimit {
		s.history = s.history[len(s.history)-HistoryLimit:]
	}

	next := update(cloneState(s.state))
	if next.List != nil {
		next.List.Meta.ModifiedAt = s.Now().UTC()
	}
	s.state = next

	s.notify()
}

// Subscribe registers a listener called on every successful SetState. The
// returned closure deregisters it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i := range s.subs {
			if s.subs[i].id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Undo restores the most recent snapshot as the current data state,
// preserving transient UI state. It returns false and leaves everything
// unchanged when the history is empty.
func (s *Store) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	snap := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	var data dataState
	if err := json.Unmarshal(snap, &data); err != nil {
		s.log.Error("store: snapshot restore failed", "err", err)
		return false
	}
	s.state.List = data.List
	s.state.Templates = data.Templates
	s.state.Settings = data.Settings

	s.notify()
	return true
}

// HistoryLen reports the current undo depth.
func (s *Store) HistoryLen() int {
	return len(s.history)
}

func (s *Store) notify() {
	// Iterate a copy so listeners may unsubscribe during notification.
	subs := append([]subscriber{}, s.subs...)
	next := s.state
	for _, sub := range subs {
		s.call(sub, next)
	}
}

func (s *Store) call(sub subscriber, st State) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("store: subscriber panicked", "subscriber", sub.id, "err", fmt.Sprint(r))
		}
	}()
	sub.fn(cloneState(st))
}

func marshalData(st State) ([]byte, error) {
	return json.Marshal(dataState{List: st.List, Templates: st.Templates, Settings: st.Settings})
}

// cloneState deep-copies the data portion via a JSON round-trip (the
// document is small, tens to low hundreds of entities) and value-copies
// the transient UI fields.
func cloneState(st State) State {
	raw, err := marshalData(st)
	if err != nil {
		return State{UI: st.UI}
	}
	var data dataState
	if err := json.Unmarshal(raw, &data); err != nil {
		return State{UI: st.UI}
	}
	return State{
		List:      data.List,
		Templates: data.Templates,
		Settings:  data.Settings,
		UI:        st.UI,
	}
}
