package dashboardx

import (
	"context"
	"time"

	"github.com/topicboard/topicboard/configx"
	"github.com/topicboard/topicboard/loggerx"
	"github.com/topicboard/topicboard/remotex"
)

// Dashboard wires the store, sync engine and lifecycle controller together
// behind the interface the presentation layer consumes. All methods are safe
// for concurrent use and none of them returns an error: failures surface as
// view messages.
type Dashboard struct {
	store  *Store
	engine *Engine
	ctrl   *Controller
}

type Option func(*settings)

type settings struct {
	pollInterval  time.Duration
	redirectDelay time.Duration
	navigate      func(route string)
	subscribers   []func(View)
	logger        *loggerx.Logger
}

// WithDashboardPollInterval overrides the poll cadence.
func WithDashboardPollInterval(d time.Duration) Option {
	return func(s *settings) {
		s.pollInterval = d
	}
}

// WithDashboardRedirectDelay overrides the delay before post-alter
// navigation.
func WithDashboardRedirectDelay(d time.Duration) Option {
	return func(s *settings) {
		s.redirectDelay = d
	}
}

// WithDashboardNavigate sets the navigation callback.
func WithDashboardNavigate(fn func(route string)) Option {
	return func(s *settings) {
		s.navigate = fn
	}
}

// WithDashboardSubscriber registers a view-change callback.
func WithDashboardSubscriber(fn func(View)) Option {
	return func(s *settings) {
		s.subscribers = append(s.subscribers, fn)
	}
}

// WithDashboardLogger sets the logger shared by engine and controller.
func WithDashboardLogger(l *loggerx.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// New builds a dashboard on top of the given remote topic service.
func New(svc remotex.Service, opts ...Option) *Dashboard {
	s := &settings{
		pollInterval:  defaultPollInterval,
		redirectDelay: defaultRedirectDelay,
	}
	for _, opt := range opts {
		opt(s)
	}

	storeOpts := make([]StoreOption, 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		storeOpts = append(storeOpts, WithSubscriber(sub))
	}
	store := NewStore(storeOpts...)

	engineOpts := []EngineOption{WithPollInterval(s.pollInterval)}
	ctrlOpts := []ControllerOption{WithRedirectDelay(s.redirectDelay)}
	if s.navigate != nil {
		ctrlOpts = append(ctrlOpts, WithNavigate(s.navigate))
	}
	if s.logger != nil {
		engineOpts = append(engineOpts, WithEngineLogger(s.logger))
		ctrlOpts = append(ctrlOpts, WithControllerLogger(s.logger))
	}

	engine := NewEngine(svc, store, engineOpts...)
	ctrl := NewController(svc, store, engine, ctrlOpts...)

	return &Dashboard{
		store:  store,
		engine: engine,
		ctrl:   ctrl,
	}
}

// NewFromConfig builds the REST client and the dashboard from a loaded
// configuration.
func NewFromConfig(cfg *configx.Config, opts ...Option) (*Dashboard, error) {
	client, err := remotex.NewClient(remotex.ClientConfig{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}

	opts = append([]Option{
		WithDashboardPollInterval(cfg.PollInterval),
		WithDashboardRedirectDelay(cfg.RedirectDelay),
	}, opts...)

	return New(client, opts...), nil
}

// Start begins polling. The dashboard is active until Close (or the context)
// stops it.
func (d *Dashboard) Start(ctx context.Context) {
	d.engine.Start(ctx)
}

// Close tears the dashboard down deterministically: the poll loop exits,
// in-flight fetches drain and scheduled navigations are cancelled.
func (d *Dashboard) Close() {
	d.engine.Close()
	d.ctrl.Close()
}

// View returns the current dashboard view.
func (d *Dashboard) View() View {
	return d.store.View()
}

// TriggerRefresh requests an out-of-band poll.
func (d *Dashboard) TriggerRefresh() {
	d.engine.TriggerRefresh()
}

func (d *Dashboard) SubmitRequest(ctx context.Context, topicName, partitions string) {
	d.ctrl.SubmitRequest(ctx, topicName, partitions)
}

func (d *Dashboard) Materialize(ctx context.Context, requestID int64) {
	d.ctrl.Materialize(ctx, requestID)
}

func (d *Dashboard) AlterTopic(ctx context.Context, name, partitions string) {
	d.ctrl.AlterTopic(ctx, name, partitions)
}

func (d *Dashboard) DeleteTopic(ctx context.Context, topicID int64) {
	d.ctrl.DeleteTopic(ctx, topicID)
}
