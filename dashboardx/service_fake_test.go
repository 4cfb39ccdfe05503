package dashboardx

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/topicboard/topicboard/errorx"
	"github.com/topicboard/topicboard/remotex"
)

// fakeService is a scriptable remotex.Service recording every call. Methods
// without a scripted function succeed with an empty result.
type fakeService struct {
	fetchFn       func(ctx context.Context) (*remotex.DashboardSnapshot, error)
	submitFn      func(name string, partitions int32) (*remotex.OpResult, error)
	materializeFn func(id int64) (*remotex.OpResult, error)
	alterFn       func(name string, partitions int32) (*remotex.OpResult, error)
	deleteFn      func(id int64) (*remotex.OpResult, error)

	fetchCalls atomic.Int32

	mu           sync.Mutex
	submits      []submitCall
	materializes []int64
	alters       []alterCall
	deletes      []int64
}

type submitCall struct {
	name       string
	partitions int32
}

type alterCall struct {
	name       string
	partitions int32
}

var _ remotex.Service = (*fakeService)(nil)

func (f *fakeService) FetchDashboard(ctx context.Context) (*remotex.DashboardSnapshot, error) {
	f.fetchCalls.Add(1)
	if f.fetchFn != nil {
		return f.fetchFn(ctx)
	}
	return &remotex.DashboardSnapshot{Username: "alice"}, nil
}

func (f *fakeService) GetTopic(ctx context.Context, name string) (*remotex.Topic, error) {
	return nil, errorx.NotFoundErrorf("topic %q not found", name)
}

func (f *fakeService) SubmitRequest(ctx context.Context, name string, partitions int32) (*remotex.OpResult, error) {
	f.mu.Lock()
	f.submits = append(f.submits, submitCall{name: name, partitions: partitions})
	f.mu.Unlock()
	if f.submitFn != nil {
		return f.submitFn(name, partitions)
	}
	return &remotex.OpResult{Success: true}, nil
}

func (f *fakeService) MaterializeRequest(ctx context.Context, id int64) (*remotex.OpResult, error) {
	f.mu.Lock()
	f.materializes = append(f.materializes, id)
	f.mu.Unlock()
	if f.materializeFn != nil {
		return f.materializeFn(id)
	}
	return &remotex.OpResult{Success: true}, nil
}

func (f *fakeService) AlterTopic(ctx context.Context, name string, partitions int32) (*remotex.OpResult, error) {
	f.mu.Lock()
	f.alters = append(f.alters, alterCall{name: name, partitions: partitions})
	f.mu.Unlock()
	if f.alterFn != nil {
		return f.alterFn(name, partitions)
	}
	return &remotex.OpResult{Success: true}, nil
}

func (f *fakeService) DeleteTopic(ctx context.Context, id int64) (*remotex.OpResult, error) {
	f.mu.Lock()
	f.deletes = append(f.deletes, id)
	f.mu.Unlock()
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	return &remotex.OpResult{Success: true}, nil
}

func (f *fakeService) submitCalls() []submitCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]submitCall(nil), f.submits...)
}

func (f *fakeService) alterCalls() []alterCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]alterCall(nil), f.alters...)
}

func (f *fakeService) deleteCalls() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.deletes...)
}

func (f *fakeService) materializeCalls() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.materializes...)
}

// fakeRefresher records refresh triggers.
type fakeRefresher struct {
	n atomic.Int32
}

func (f *fakeRefresher) TriggerRefresh() {
	f.n.Add(1)
}
