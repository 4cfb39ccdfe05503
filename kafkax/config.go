package kafkax

import (
	"github.com/topicboard/topicboard/errorx"
)

// Config carries the broker connection settings for the Kafka-backed topic
// service.
type Config struct {
	// Brokers is the seed broker list.
	Brokers []string `koanf:"brokers" json:"brokers"`
	// ReplicationFactor applied to every topic created through the service.
	ReplicationFactor int16 `koanf:"replication_factor" json:"replication_factor"`
	// Username shown on the dashboard.
	Username string `koanf:"username" json:"username"`
}

func (c *Config) Validate() error {
	if len(c.Brokers) == 0 {
		return errorx.ValidationErrorf("at least one broker must be configured")
	}
	if c.ReplicationFactor < 1 {
		return errorx.ValidationErrorf("replication_factor must be at least 1, got %d", c.ReplicationFactor)
	}
	return nil
}
