package kafkax

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/topicboard/topicboard/errorx"
	"github.com/topicboard/topicboard/logrusx"
	"github.com/topicboard/topicboard/remotex"
	"github.com/topicboard/topicboard/retryx"
)

// Service implements remotex.Service directly against a Kafka cluster,
// skipping the REST middle tier. Topics live in the cluster; the request
// ledger and its approval transitions are held in memory, with Approve and
// Reject standing in for the external approval authority.
//
// Kafka identifies topics by name, while the dashboard contract speaks in
// numeric ids. The service keeps a stable name-to-id registry: an id is
// assigned the first time a topic is seen and survives the topic itself, so a
// delete racing a poll still resolves to the right name.
type Service struct {
	cfg   Config
	kcl   *kgo.Client
	admin *kadm.Client
	l     *logrusx.Logger

	mu       sync.Mutex
	nextID   int64
	requests map[int64]*remotex.TopicRequest
	topicIDs map[string]int64
	names    map[int64]string
}

var _ remotex.Service = (*Service)(nil)

type ServiceOption func(*Service)

func WithLogger(l *logrusx.Logger) ServiceOption {
	return func(s *Service) {
		s.l = l
	}
}

// NewService connects to the cluster and verifies the connection before
// returning. The connection probe is the only retried call; every dashboard
// mutation stays single-shot.
func NewService(ctx context.Context, cfg Config, opts ...ServiceOption) (*Service, error) {
	if cfg.ReplicationFactor == 0 {
		cfg.ReplicationFactor = 1
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	kcl, err := kgo.NewClient(kgo.SeedBrokers(cfg.Brokers...))
	if err != nil {
		return nil, errorx.InternalErrorf("failed to create kafka client: %v", err)
	}

	s := &Service{
		cfg:      cfg,
		kcl:      kcl,
		admin:    kadm.NewClient(kcl),
		l:        logrusx.New("kafkax"),
		requests: make(map[int64]*remotex.TopicRequest),
		topicIDs: make(map[string]int64),
		names:    make(map[int64]string),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.HealthCheck(ctx); err != nil {
		kcl.Close()
		return nil, err
	}

	return s, nil
}

func (s *Service) Close() {
	s.kcl.Close()
}

// HealthCheck probes the cluster by listing brokers.
func (s *Service) HealthCheck(ctx context.Context) error {
	return retryx.ConstantRetry(func() error {
		if _, err := s.admin.ListBrokers(ctx); err != nil {
			return errorx.InternalErrorf("failed to connect to kafka: %v", err)
		}
		return nil
	})
}

// FetchDashboard implements remotex.Service. Topics come from the cluster on
// every call; pending requests come from the in-memory ledger.
func (s *Service) FetchDashboard(ctx context.Context) (*remotex.DashboardSnapshot, error) {
	details, err := s.admin.ListTopics(ctx)
	if err != nil {
		return nil, errorx.TransportErrorf("failed to list topics: %v", err).WithWrap(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	topics := s.topicsFromDetailsLocked(details)

	requests := lo.Map(lo.Values(s.requests), func(r *remotex.TopicRequest, _ int) remotex.TopicRequest {
		return *r
	})
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })

	return &remotex.DashboardSnapshot{
		UncreatedRequests: requests,
		CreatedTopics:     topics,
		Username:          s.cfg.Username,
	}, nil
}

// GetTopic implements remotex.Service.
func (s *Service) GetTopic(ctx context.Context, name string) (*remotex.Topic, error) {
	details, err := s.admin.ListTopics(ctx, name)
	if err != nil {
		return nil, errorx.TransportErrorf("failed to describe topic %q: %v", name, err).WithWrap(err)
	}

	d, ok := details[name]
	if !ok || d.Err != nil {
		return nil, errorx.NotFoundErrorf("topic %q not found", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return &remotex.Topic{
		ID:         s.idForLocked(name),
		Name:       name,
		Partitions: int32(len(d.Partitions)),
	}, nil
}

// SubmitRequest implements remotex.Service. Uniqueness is checked against
// both the ledger and the live cluster.
func (s *Service) SubmitRequest(ctx context.Context, topicName string, partitions int32) (*remotex.OpResult, error) {
	topicName = strings.TrimSpace(topicName)
	if topicName == "" {
		return &remotex.OpResult{Success: false, Message: "Topic name must not be empty"}, nil
	}
	if partitions < 1 {
		return &remotex.OpResult{Success: false, Message: "Partitions must be a positive number"}, nil
	}

	details, err := s.admin.ListTopics(ctx)
	if err != nil {
		return nil, errorx.TransportErrorf("failed to list topics: %v", err).WithWrap(err)
	}
	if d, ok := details[topicName]; ok && d.Err == nil {
		return &remotex.OpResult{Success: false, Message: fmt.Sprintf("Topic %q already exists", topicName)}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.requests {
		if r.TopicName == topicName {
			return &remotex.OpResult{Success: false, Message: fmt.Sprintf("Topic %q already requested", topicName)}, nil
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

// MaterializeRequest implements remotex.Service. The approval check here is
// authoritative; the topic is created in the cluster and the request leaves
// the ledger only once the broker confirms.
func (s *Service) MaterializeRequest(ctx context.Context, id int64) (*remotex.OpResult, error) {
	s.mu.Lock()
	req, ok := s.requests[id]
	if !ok {
		s.mu.Unlock()
		return &remotex.OpResult{Success: false, Message: "Request not found"}, nil
	}
	if req.Status != remotex.StatusApproved {
		s.mu.Unlock()
		return &remotex.OpResult{Success: false, Message: fmt.Sprintf("Request %q is not approved", req.TopicName)}, nil
	}
	name, partitions := req.TopicName, req.Partitions
	s.mu.Unlock()

	resp, err := s.admin.CreateTopic(ctx, partitions, s.cfg.ReplicationFactor, nil, name)
	if err != nil {
		return nil, errorx.TransportErrorf("failed to create topic %q: %v", name, err).WithWrap(err)
	}
	if resp.Err != nil {
		return &remotex.OpResult{Success: false, Message: fmt.Sprintf("Failed to create topic %q: %v", name, resp.Err)}, nil
	}

	s.mu.Lock()
	delete(s.requests, id)
	s.idForLocked(name)
	s.mu.Unlock()

	s.l.WithField("topic", name).Info("topic created from request")
	return &remotex.OpResult{Success: true, Message: fmt.Sprintf("Topic %q created successfully", name)}, nil
}

// AlterTopic implements remotex.Service. Kafka only grows partition counts;
// a shrink comes back as a broker rejection, not an error.
func (s *Service) AlterTopic(ctx context.Context, name string, partitions int32) (*remotex.OpResult, error) {
	if partitions < 1 {
		return &remotex.OpResult{Success: false, Message: "Partitions must be a positive number"}, nil
	}

	resps, err := s.admin.UpdatePartitions(ctx, int(partitions), name)
	if err != nil {
		return nil, errorx.TransportErrorf("failed to update partitions of %q: %v", name, err).WithWrap(err)
	}
	if _, err := resps.On(name, func(r *kadm.CreatePartitionsResponse) error { return r.Err }); err != nil {
		return &remotex.OpResult{Success: false, Message: fmt.Sprintf("Failed to update topic %q: %v", name, err)}, nil
	}

	s.l.WithField("topic", name).WithField("partitions", partitions).Info("topic altered")
	return &remotex.OpResult{Success: true}, nil
}

// DeleteTopic implements remotex.Service. The id resolves through the
// registry; an id the registry has never seen means the topic is already
// gone.
func (s *Service) DeleteTopic(ctx context.Context, id int64) (*remotex.OpResult, error) {
	s.mu.Lock()
	name, ok := s.names[id]
	s.mu.Unlock()
	if !ok {
		return &remotex.OpResult{Success: false, Message: "Delete failed"}, nil
	}

	resp, err := s.admin.DeleteTopic(ctx, name)
	if err != nil {
		return nil, errorx.TransportErrorf("failed to delete topic %q: %v", name, err).WithWrap(err)
	}
	if resp.Err != nil {
		return &remotex.OpResult{Success: false, Message: "Delete failed"}, nil
	}

	s.l.WithField("topic", name).Info("topic deleted")
	return &remotex.OpResult{Success: true, Message: fmt.Sprintf("Topic %q deleted", name)}, nil
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

// topicsFromDetailsLocked maps broker topic details to dashboard topics,
// assigning registry ids to topics seen for the first time. Internal topics
// stay hidden.
func (s *Service) topicsFromDetailsLocked(details kadm.TopicDetails) []remotex.Topic {
	visible := lo.Filter(details.Sorted(), func(d kadm.TopicDetail, _ int) bool {
		return d.Err == nil && !strings.HasPrefix(d.Topic, "__")
	})
	return lo.Map(visible, func(d kadm.TopicDetail, _ int) remotex.Topic {
		return remotex.Topic{
			ID:         s.idForLocked(d.Topic),
			Name:       d.Topic,
			Partitions: int32(len(d.Partitions)),
		}
	})
}

func (s *Service) idForLocked(name string) int64 {
	if id, ok := s.topicIDs[name]; ok {
		return id
	}
	s.nextID++
	s.topicIDs[name] = s.nextID
	s.names[s.nextID] = name
	return s.nextID
}
