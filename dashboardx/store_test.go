package dashboardx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topicboard/topicboard/remotex"
)

func TestStore(t *testing.T) {
	t.Run("should start with defaults", func(t *testing.T) {
		s := NewStore()
		v := s.View()
		assert.Equal(t, "Guest", v.Username)
		assert.Equal(t, DefaultForm(), v.Form)
		assert.Empty(t, v.UncreatedRequests)
		assert.Empty(t, v.CreatedTopics)
		assert.Empty(t, v.Messages)
	})

	t.Run("should replace lists and username wholesale", func(t *testing.T) {
		s := NewStore()
		s.Replace(remotex.DashboardSnapshot{
			UncreatedRequests: []remotex.TopicRequest{{ID: 1, TopicName: "orders", Partitions: 3, Status: remotex.StatusPending}},
			CreatedTopics:     []remotex.Topic{{ID: 2, Name: "billing", Partitions: 1}},
			Username:          "alice",
		})

		s.Replace(remotex.DashboardSnapshot{
			CreatedTopics: []remotex.Topic{{ID: 2, Name: "billing", Partitions: 6}},
			Username:      "alice",
		})

		v := s.View()
		assert.Empty(t, v.UncreatedRequests, "old requests must not survive a replacement")
		require.Len(t, v.CreatedTopics, 1)
		assert.Equal(t, int32(6), v.CreatedTopics[0].Partitions)
	})

	t.Run("should default an empty username to Guest", func(t *testing.T) {
		s := NewStore()
		s.Replace(remotex.DashboardSnapshot{})
		assert.Equal(t, "Guest", s.View().Username)
	})

	t.Run("should keep messages and form across replacements", func(t *testing.T) {
		s := NewStore()
		s.SetMessages(Message{Text: "hello", Severity: SeveritySuccess})
		s.SetForm(Form{TopicName: "orders", Partitions: "3"})

		s.Replace(remotex.DashboardSnapshot{Username: "alice"})

		v := s.View()
		require.Len(t, v.Messages, 1)
		assert.Equal(t, "hello", v.Messages[0].Text)
		assert.Equal(t, "orders", v.Form.TopicName)
	})

	t.Run("should replace messages wholesale", func(t *testing.T) {
		s := NewStore()
		s.SetMessages(Message{Text: "one", Severity: SeverityError})
		s.SetMessages(Message{Text: "two", Severity: SeveritySuccess})

		v := s.View()
		require.Len(t, v.Messages, 1)
		assert.Equal(t, "two", v.Messages[0].Text)
	})

	t.Run("should hand out isolated copies", func(t *testing.T) {
		s := NewStore()
		s.Replace(remotex.DashboardSnapshot{
			CreatedTopics: []remotex.Topic{{ID: 1, Name: "orders", Partitions: 3}},
			Username:      "alice",
		})

		v := s.View()
		v.CreatedTopics[0].Partitions = 99

		assert.Equal(t, int32(3), s.View().CreatedTopics[0].Partitions)
	})

	t.Run("should notify construction-time subscribers on every change", func(t *testing.T) {
		var got []View
		s := NewStore(WithSubscriber(func(v View) {
			got = append(got, v)
		}))

		s.Replace(remotex.DashboardSnapshot{Username: "alice"})
		s.SetMessages(Message{Text: "hi", Severity: SeveritySuccess})
		s.ResetForm()

		require.Len(t, got, 3)
		assert.Equal(t, "alice", got[0].Username)
		require.Len(t, got[1].Messages, 1)
		assert.Equal(t, DefaultForm(), got[2].Form)
	})
}

func TestViewLookups(t *testing.T) {
	v := View{
		UncreatedRequests: []remotex.TopicRequest{{ID: 1, TopicName: "orders", Status: remotex.StatusApproved}},
		CreatedTopics:     []remotex.Topic{{ID: 7, Name: "billing", Partitions: 2}},
	}

	req, ok := v.RequestByID(1)
	require.True(t, ok)
	assert.Equal(t, "orders", req.TopicName)

	_, ok = v.RequestByID(2)
	assert.False(t, ok)

	topic, ok := v.TopicByID(7)
	require.True(t, ok)
	assert.Equal(t, "billing", topic.Name)

	topic, ok = v.TopicByName("billing")
	require.True(t, ok)
	assert.Equal(t, int64(7), topic.ID)

	_, ok = v.TopicByName("orders")
	assert.False(t, ok)
}
