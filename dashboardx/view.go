package dashboardx

import (
	"slices"

	"github.com/samber/lo"

	"github.com/topicboard/topicboard/remotex"
)

type Severity string

const (
	SeveritySuccess = Severity("success")
	SeverityError   = Severity("error")
)

// Message is a transient user-facing notice. Messages are replaced wholesale
// on each user action and never persisted.
type Message struct {
	Text     string
	Severity Severity
}

// Form is the transient request-submission input state. It lives in the store
// so that "a successful submit clears the inputs, a failed one retains them"
// holds without a presentation layer in the loop.
type Form struct {
	TopicName  string
	Partitions string
}

const defaultPartitionsInput = "1"

func DefaultForm() Form {
	return Form{Partitions: defaultPartitionsInput}
}

const defaultUsername = "Guest"

// View is the client's current consistent snapshot of requests, topics and
// messages. Values returned by the store are deep copies; mutating one never
// affects the store.
type View struct {
	Username          string
	UncreatedRequests []remotex.TopicRequest
	CreatedTopics     []remotex.Topic
	Messages          []Message
	Form              Form
}

func (v View) clone() View {
	v.UncreatedRequests = slices.Clone(v.UncreatedRequests)
	v.CreatedTopics = slices.Clone(v.CreatedTopics)
	v.Messages = slices.Clone(v.Messages)
	return v
}

// RequestByID looks a request up in the current view.
func (v View) RequestByID(id int64) (remotex.TopicRequest, bool) {
	return lo.Find(v.UncreatedRequests, func(r remotex.TopicRequest) bool { return r.ID == id })
}

// TopicByID looks a created topic up in the current view.
func (v View) TopicByID(id int64) (remotex.Topic, bool) {
	return lo.Find(v.CreatedTopics, func(t remotex.Topic) bool { return t.ID == id })
}

// TopicByName looks a created topic up in the current view.
func (v View) TopicByName(name string) (remotex.Topic, bool) {
	return lo.Find(v.CreatedTopics, func(t remotex.Topic) bool { return t.Name == name })
}
