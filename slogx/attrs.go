package slogx

import "go.opentelemetry.io/otel/attribute"

// Shared attribute vocabulary for dashboard log lines.

func TopicAttr(name string) attribute.KeyValue {
	return attribute.String("topic", name)
}

func RequestIDAttr(id int64) attribute.KeyValue {
	return attribute.Int64("request_id", id)
}

func TopicIDAttr(id int64) attribute.KeyValue {
	return attribute.Int64("topic_id", id)
}

func PartitionsAttr(n int32) attribute.KeyValue {
	return attribute.Int64("partitions", int64(n))
}

func PollSeqAttr(seq uint64) attribute.KeyValue {
	return attribute.Int64("poll_seq", int64(seq))
}
