package dashboardx

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cast"

	"github.com/topicboard/topicboard/errorx"
	"github.com/topicboard/topicboard/loggerx"
	"github.com/topicboard/topicboard/remotex"
	"github.com/topicboard/topicboard/slogx"
)

const defaultRedirectDelay = time.Second

// Refresher is the slice of the sync engine the controller needs.
type Refresher interface {
	TriggerRefresh()
}

// Controller executes user-initiated lifecycle transitions. Every operation
// is a single remote call with no retry: a failure becomes a store message
// and the user decides whether to re-invoke. No error ever reaches the
// presentation layer.
type Controller struct {
	svc       remotex.Service
	store     *Store
	refresher Refresher
	l         *loggerx.Logger

	navigate      func(route string)
	redirectDelay time.Duration

	mu      sync.Mutex
	pending []*time.Timer
}

type ControllerOption func(*Controller)

// WithNavigate sets the callback invoked (after the redirect delay) when an
// operation ends with a navigation, e.g. a successful partition alteration.
func WithNavigate(fn func(route string)) ControllerOption {
	return func(c *Controller) {
		c.navigate = fn
	}
}

func WithRedirectDelay(d time.Duration) ControllerOption {
	return func(c *Controller) {
		if d >= 0 {
			c.redirectDelay = d
		}
	}
}

func WithControllerLogger(l *loggerx.Logger) ControllerOption {
	return func(c *Controller) {
		c.l = l
	}
}

func NewController(svc remotex.Service, store *Store, refresher Refresher, opts ...ControllerOption) *Controller {
	c := &Controller{
		svc:           svc,
		store:         store,
		refresher:     refresher,
		l:             loggerx.New("dashboardx.controller"),
		redirectDelay: defaultRedirectDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close cancels any navigation still scheduled.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.pending {
		t.Stop()
	}
	c.pending = nil
}

// SubmitRequest files a new topic request. Inputs arrive as raw strings and
// are validated locally before any remote call; on success the form resets,
// on failure it is retained so the user can correct and resubmit.
func (c *Controller) SubmitRequest(ctx context.Context, topicName, partitionsInput string) {
	c.store.SetForm(Form{TopicName: topicName, Partitions: partitionsInput})

	name := strings.TrimSpace(topicName)
	if name == "" {
		c.store.SetMessages(Message{Text: msgEmptyTopicName, Severity: SeverityError})
		return
	}

	partitions, err := parsePartitions(partitionsInput)
	if err != nil {
		c.store.SetMessages(Message{Text: msgInvalidPartitions, Severity: SeverityError})
		return
	}

	res, err := c.svc.SubmitRequest(ctx, name, partitions)
	if err != nil {
		c.l.WithError(err).Warn(ctx, "submit request failed", slogx.TopicAttr(name))
		c.store.SetMessages(Message{Text: msgSubmitFailed, Severity: SeverityError})
		return
	}
	if !res.Success {
		c.store.SetMessages(Message{Text: fallback(res.Message, msgSubmitFailed), Severity: SeverityError})
		return
	}

	c.store.SetMessages(Message{Text: fallback(res.Message, "Topic request submitted"), Severity: SeveritySuccess})
	c.store.ResetForm()
	c.refresher.TriggerRefresh()
}

// Materialize converts an approved request into a real topic. The local
// status check is advisory; the server re-validates against its own state, so
// a stale second tab racing this call gets the generic failure message.
func (c *Controller) Materialize(ctx context.Context, requestID int64) {
	if req, ok := c.store.View().RequestByID(requestID); ok && req.Status != remotex.StatusApproved {
		c.store.SetMessages(Message{Text: msgMaterializeFailed, Severity: SeverityError})
		return
	}

	res, err := c.svc.MaterializeRequest(ctx, requestID)
	if err != nil || !res.Success {
		if err != nil {
			c.l.WithError(err).Warn(ctx, "materialize failed", slogx.RequestIDAttr(requestID))
		}
		c.store.SetMessages(Message{Text: msgMaterializeFailed, Severity: SeverityError})
		return
	}

	c.store.SetMessages(Message{Text: fallback(res.Message, "Topic created successfully"), Severity: SeveritySuccess})
	c.refresher.TriggerRefresh()
}

// AlterTopic sets a topic's partition count. On success the navigation
// callback fires after the redirect delay; validation or server failures
// never navigate.
func (c *Controller) AlterTopic(ctx context.Context, name, partitionsInput string) {
	partitions, err := parsePartitions(partitionsInput)
	if err != nil {
		c.store.SetMessages(Message{Text: msgInvalidPartitions, Severity: SeverityError})
		return
	}

	res, err := c.svc.AlterTopic(ctx, name, partitions)
	if err != nil {
		c.l.WithError(err).Warn(ctx, "alter topic failed", slogx.TopicAttr(name), slogx.PartitionsAttr(partitions))
		c.store.SetMessages(Message{Text: msgAlterTransport, Severity: SeverityError})
		return
	}
	if !res.Success {
		c.store.SetMessages(Message{Text: fallback(res.Message, msgAlterFailed), Severity: SeverityError})
		return
	}

	c.store.SetMessages(Message{Text: msgAlterSuccess, Severity: SeveritySuccess})
	c.refresher.TriggerRefresh()
	c.scheduleNavigate(RouteHome)
}

// DeleteTopic removes a topic. The view refreshes regardless of the outcome
// so a topic already deleted elsewhere disappears either way.
func (c *Controller) DeleteTopic(ctx context.Context, topicID int64) {
	res, err := c.svc.DeleteTopic(ctx, topicID)
	switch {
	case err != nil:
		c.l.WithError(err).Warn(ctx, "delete topic failed", slogx.TopicIDAttr(topicID))
		c.store.SetMessages(Message{Text: msgDeleteFailed, Severity: SeverityError})
	case !res.Success:
		c.store.SetMessages(Message{Text: fallback(res.Message, msgDeleteFailed), Severity: SeverityError})
	default:
		c.store.SetMessages(Message{Text: fallback(res.Message, "Topic deleted"), Severity: SeveritySuccess})
	}

	c.refresher.TriggerRefresh()
}

func (c *Controller) scheduleNavigate(route string) {
	if c.navigate == nil {
		return
	}
	if c.redirectDelay == 0 {
		c.navigate(route)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, time.AfterFunc(c.redirectDelay, func() {
		c.navigate(route)
	}))
}

func parsePartitions(input string) (int32, error) {
	n, err := cast.ToInt32E(strings.TrimSpace(input))
	if err != nil || n < 1 {
		return 0, errorx.ValidationErrorf("partitions must be a positive number, got %q", input)
	}
	return n, nil
}

func fallback(msg, def string) string {
	if msg != "" {
		return msg
	}
	return def
}
