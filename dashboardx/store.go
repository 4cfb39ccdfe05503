package dashboardx

import (
	"sync"

	"github.com/topicboard/topicboard/remotex"
)

// Store holds the current View and accepts atomic replacements. It is the
// only shared mutable state of the dashboard: every write swaps whole lists,
// so readers never observe a torn update, and subscribers are registered at
// construction instead of through any ambient broadcast.
type Store struct {
	mu   sync.RWMutex
	view View
	subs []func(View)
}

type StoreOption func(*Store)

// WithSubscriber registers a callback invoked after every store change with a
// copy of the new view. Callbacks run sequentially on the writer's goroutine
// and must not block.
func WithSubscriber(fn func(View)) StoreOption {
	return func(s *Store) {
		s.subs = append(s.subs, fn)
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		view: View{
			Username: defaultUsername,
			Form:     DefaultForm(),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View returns a copy of the current view.
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.clone()
}

// Replace swaps the request/topic lists and username for the given snapshot.
// Always a total replacement, never a merge: stitching fields from different
// poll responses is exactly the inconsistency this store exists to prevent.
// Messages and form state are left alone.
func (s *Store) Replace(snap remotex.DashboardSnapshot) {
	s.mu.Lock()
	s.view.UncreatedRequests = append([]remotex.TopicRequest(nil), snap.UncreatedRequests...)
	s.view.CreatedTopics = append([]remotex.Topic(nil), snap.CreatedTopics...)
	s.view.Username = snap.Username
	if s.view.Username == "" {
		s.view.Username = defaultUsername
	}
	v := s.view.clone()
	s.mu.Unlock()

	s.notify(v)
}

// SetMessages replaces the transient messages.
func (s *Store) SetMessages(msgs ...Message) {
	s.mu.Lock()
	s.view.Messages = append([]Message(nil), msgs...)
	v := s.view.clone()
	s.mu.Unlock()

	s.notify(v)
}

// SetForm replaces the submission form state.
func (s *Store) SetForm(f Form) {
	s.mu.Lock()
	s.view.Form = f
	v := s.view.clone()
	s.mu.Unlock()

	s.notify(v)
}

// ResetForm restores the submission form to its defaults.
func (s *Store) ResetForm() {
	s.SetForm(DefaultForm())
}

func (s *Store) notify(v View) {
	for _, fn := range s.subs {
		fn(v)
	}
}
