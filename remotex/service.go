package remotex

import "context"

// Service is the remote topic service as seen by the dashboard. The HTTP
// client in this package is the primary implementation; kafkax provides one
// that administers a Kafka cluster directly, and remotextest an in-memory
// reference used in tests.
//
// A non-nil error is a transport or internal failure: the call did not
// produce an authoritative answer. An OpResult with Success=false is an
// application-level rejection and comes back with a nil error.
type Service interface {
	// FetchDashboard returns one full snapshot of requests, topics and the
	// owning username.
	FetchDashboard(ctx context.Context) (*DashboardSnapshot, error)

	// GetTopic returns a single created topic by name.
	GetTopic(ctx context.Context, name string) (*Topic, error)

	// SubmitRequest files a new topic request in PENDING state.
	SubmitRequest(ctx context.Context, topicName string, partitions int32) (*OpResult, error)

	// MaterializeRequest converts an APPROVED request into a real topic. The
	// server re-validates the status regardless of what the client assumed.
	MaterializeRequest(ctx context.Context, id int64) (*OpResult, error)

	// AlterTopic sets the partition count of an existing topic.
	AlterTopic(ctx context.Context, name string, partitions int32) (*OpResult, error)

	// DeleteTopic removes a topic by id.
	DeleteTopic(ctx context.Context, id int64) (*OpResult, error)
}
