package remotextest_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topicboard/topicboard/logrusx"
	"github.com/topicboard/topicboard/remotex"
	"github.com/topicboard/topicboard/remotex/remotextest"
	"github.com/topicboard/topicboard/testx"
)

func TestHandler(t *testing.T) {
	t.Run("should serve an empty dashboard", func(t *testing.T) {
		h := remotextest.Handler(remotextest.NewService("alice", nil))

		res, snap := testx.GetJSON[remotex.DashboardSnapshot](h, "/dashboard")

		require.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "alice", snap.Username)
		assert.Empty(t, snap.UncreatedRequests)
		assert.Empty(t, snap.CreatedTopics)
	})

	t.Run("should submit a request and list it as pending", func(t *testing.T) {
		svc := remotextest.NewService("alice", nil)
		h := remotextest.Handler(svc)

		res, op := testx.PostJSON[remotex.OpResult](h, "/requests", `{"topic_name": "orders", "partitions": 3}`)
		require.Equal(t, http.StatusOK, res.Code)
		require.True(t, op.Success, op.Message)

		_, snap := testx.GetJSON[remotex.DashboardSnapshot](h, "/dashboard")
		require.Len(t, snap.UncreatedRequests, 1)
		assert.Equal(t, "orders", snap.UncreatedRequests[0].TopicName)
		assert.Equal(t, remotex.StatusPending, snap.UncreatedRequests[0].Status)
	})

	t.Run("should reject a malformed payload with a bad request", func(t *testing.T) {
		h := remotextest.Handler(remotextest.NewService("alice", nil))

		res, op := testx.PostJSON[remotex.OpResult](h, "/requests", `{"topic_name":`)

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.False(t, op.Success)
	})

	t.Run("should refuse to materialize an unapproved request over the wire", func(t *testing.T) {
		svc := remotextest.NewService("alice", nil)
		h := remotextest.Handler(svc)

		_, op := testx.PostJSON[remotex.OpResult](h, "/requests", `{"topic_name": "orders", "partitions": 3}`)
		require.True(t, op.Success)
		id, ok := svc.RequestID("orders")
		require.True(t, ok)

		res, op := testx.PostJSON[remotex.OpResult](h, fmt.Sprintf("/requests/%d/materialize", id), "")
		require.Equal(t, http.StatusOK, res.Code)
		assert.False(t, op.Success)

		require.NoError(t, svc.Approve(id))
		_, op = testx.PostJSON[remotex.OpResult](h, fmt.Sprintf("/requests/%d/materialize", id), "")
		assert.True(t, op.Success, op.Message)
	})

	t.Run("should return not found for an unknown topic", func(t *testing.T) {
		h := remotextest.Handler(remotextest.NewService("alice", nil))

		res, _ := testx.GetJSON[remotex.OpResult](h, "/topics/nope")

		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("should reject a non-numeric id in the path", func(t *testing.T) {
		h := remotextest.Handler(remotextest.NewService("alice", nil))

		res, op := testx.DeleteJSON[remotex.OpResult](h, "/topics/abc")

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.False(t, op.Success)
	})

	t.Run("should log concurrent submits without interleaving", func(t *testing.T) {
		buf := testx.NewConcurrentBuffer()
		svc := remotextest.NewService("alice", logrusx.New("remotextest", logrusx.WithOutput(buf)))
		h := remotextest.Handler(svc)

		var wg sync.WaitGroup
		for i := range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				testx.PostJSON[remotex.OpResult](h, "/requests", fmt.Sprintf(`{"topic_name": "topic-%d", "partitions": 1}`, i))
			}()
		}
		wg.Wait()

		_, snap := testx.GetJSON[remotex.DashboardSnapshot](h, "/dashboard")
		assert.Len(t, snap.UncreatedRequests, 5)
		assert.Contains(t, buf.String(), "topic request submitted")
	})
}
