package remotex

import "github.com/topicboard/topicboard/errorx"

type Status string

const (
	// StatusUnspecified should not be used, it is only useful to assert
	// whether or not a value is a valid Status during cast.
	StatusUnspecified = Status("")
	StatusPending     = Status("PENDING")
	StatusApproved    = Status("APPROVED")
	StatusRejected    = Status("REJECTED")
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if err := st.Validate(); err != nil {
		return StatusUnspecified, err
	}

	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return nil
	default:
		return errorx.ValidationErrorf("invalid request status: %s", s)
	}
}

// TopicRequest is a user's ask to create a topic, subject to external
// approval. Its status moves one way (PENDING to APPROVED or REJECTED) until
// the request is materialized into a real topic.
type TopicRequest struct {
	ID         int64  `json:"id"`
	TopicName  string `json:"topic_name"`
	Partitions int32  `json:"partitions"`
	Status     Status `json:"status"`
}

// Topic is a named, partitioned message-queue resource that exists on the
// remote topic service.
type Topic struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Partitions int32  `json:"partitions"`
}

// DashboardSnapshot is one full fetch of the server state for the current
// user. It is always consumed whole; the client never stitches partial
// snapshots together.
type DashboardSnapshot struct {
	UncreatedRequests []TopicRequest `json:"uncreated_requests"`
	CreatedTopics     []Topic        `json:"created_topics"`
	Username          string         `json:"username"`
}

// OpResult is the uniform mutation outcome reported by the remote topic
// service. Success=false is an application-level rejection, not a transport
// failure.
type OpResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
