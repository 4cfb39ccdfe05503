package remotextest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/topicboard/topicboard/errorx"
	"github.com/topicboard/topicboard/logrusx"
	"github.com/topicboard/topicboard/remotex"
)

// Service is an in-memory reference implementation of the remote topic
// service, including the approval transitions that the external approval
// authority performs in production. It backs the REST server below and can
// also be wired straight into a dashboard for tests.
type Service struct {
	l *logrusx.Logger

	mu       sync.RWMutex
	username string
	nextID   int64
	requests map[int64]*remotex.TopicRequest
	topics   map[int64]*remotex.Topic
}

var _ remotex.Service = (*Service)(nil)

func NewService(username string, l *logrusx.Logger) *Service {
	if l == nil {
		l = logrusx.NewNull()
	}
	return &Service{
		l:        l,
		username: username,
		requests: make(map[int64]*remotex.TopicRequest),
		topics:   make(map[int64]*remotex.Topic),
	}
}

// FetchDashboard implements remotex.Service.
func (s *Service) FetchDashboard(ctx context.Context) (*remotex.DashboardSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := lo.Map(lo.Values(s.requests), func(r *remotex.TopicRequest, _ int) remotex.TopicRequest {
		return *r
	})
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })

	topics := lo.Map(lo.Values(s.topics), func(t *remotex.Topic, _ int) remotex.Topic {
		return *t
	})
	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })

	return &remotex.DashboardSnapshot{
		UncreatedRequests: requests,
		CreatedTopics:     topics,
		Username:          s.username,
	}, nil
}

// GetTopic implements remotex.Service.
func (s *Service) GetTopic(ctx context.Context, name string) (*remotex.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := lo.Find(lo.Values(s.topics), func(t *remotex.Topic) bool { return t.Name == name })
	if !ok {
		return nil, errorx.NotFoundErrorf("topic %q not found", name)
	}
	cp := *t
	return &cp, nil
}

// SubmitRequest implements remotex.Service. Topic name uniqueness is enforced
// here, mirroring the server-side rule the client relies on.
func (s *Service) SubmitRequest(ctx context.Context, topicName string, partitions int32) (*remotex.OpResult, error) {
	topicName = strings.TrimSpace(topicName)
	if topicName == "" {
		return &remotex.OpResult{Success: false, Message: "Topic name must not be empty"}, nil
	}
	if partitions < 1 {
		return &remotex.OpResult{Success: false, Message: "Partitions must be a positive number"}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.requests {
		if r.TopicName == topicName {
			return &remotex.OpResult{Success: false, Message: fmt.Sprintf("Topic %q already requested", topicName)}, nil
		}
	}
	for _, t := range s.topics {
		if t.Name == topicName {
			return &remotex.OpResult{Success: false, Message: fmt.Sprintf("Topic %q already exists", topicName)}, nil
		}
	}

	s.nextID++
	s.requests[s.nextID] = &remotex.TopicRequest{
		ID:         s.nextID,
		TopicName:  topicName,
		Partitions: partitions,
		Status:     remotex.StatusPending,
	}

	s.l.WithField("topic", topicName).Info("topic request submitted")
	return &remotex.OpResult{Success: true, Message: fmt.Sprintf("Request for topic %q submitted", topicName)}, nil
}

// MaterializeRequest implements remotex.Service. The status check here is the
// authoritative one; a stale client view never bypasses it.
func (s *Service) MaterializeRequest(ctx context.Context, id int64) (*remotex.OpResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return &remotex.OpResult{Success: false, Message: "Request not found"}, nil
	}
	if req.Status != remotex.StatusApproved {
		return &remotex.OpResult{Success: false, Message: fmt.Sprintf("Request %q is not approved", req.TopicName)}, nil
	}

	delete(s.requests, id)
	s.nextID++
	s.topics[s.nextID] = &remotex.Topic{
		ID:         s.nextID,
		Name:       req.TopicName,
		Partitions: req.Partitions,
	}

	s.l.WithField("topic", req.TopicName).Info("topic created from request")
	return &remotex.OpResult{Success: true, Message: fmt.Sprintf("Topic %q created successfully", req.TopicName)}, nil
}

// AlterTopic implements remotex.Service.
func (s *Service) AlterTopic(ctx context.Context, name string, partitions int32) (*remotex.OpResult, error) {
	if partitions < 1 {
		return &remotex.OpResult{Success: false, Message: "Partitions must be a positive number"}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := lo.Find(lo.Values(s.topics), func(t *remotex.Topic) bool { return t.Name == name })
	if !ok {
		return &remotex.OpResult{Success: false, Message: fmt.Sprintf("Topic %q not found", name)}, nil
	}

	t.Partitions = partitions
	s.l.WithField("topic", name).WithField("partitions", partitions).Info("topic altered")
	return &remotex.OpResult{Success: true}, nil
}

// DeleteTopic implements remotex.Service.
func (s *Service) DeleteTopic(ctx context.Context, id int64) (*remotex.OpResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.topics[id]
	if !ok {
		return &remotex.OpResult{Success: false, Message: "Delete failed"}, nil
	}

	delete(s.topics, id)
	s.l.WithField("topic", t.Name).Info("topic deleted")
	return &remotex.OpResult{Success: true, Message: fmt.Sprintf("Topic %q deleted", t.Name)}, nil
}

// Approve flips a pending request to APPROVED, standing in for the external
// approval authority.
func (s *Service) Approve(id int64) error {
	return s.setStatus(id, remotex.StatusApproved)
}

// Reject flips a pending request to REJECTED.
func (s *Service) Reject(id int64) error {
	return s.setStatus(id, remotex.StatusRejected)
}

func (s *Service) setStatus(id int64, status remotex.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return errorx.NotFoundErrorf("request %d not found", id)
	}
	if req.Status != remotex.StatusPending {
		return errorx.FailedPreconditionErrorf("request %d is already %s", id, req.Status)
	}

	req.Status = status
	return nil
}

// RequestID returns the id of the active request with the given topic name.
func (s *Service) RequestID(topicName string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, r := range s.requests {
		if r.TopicName == topicName {
			return id, true
		}
	}
	return 0, false
}

// TopicID returns the id of the created topic with the given name.
func (s *Service) TopicID(name string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, t := range s.topics {
		if t.Name == name {
			return id, true
		}
	}
	return 0, false
}
