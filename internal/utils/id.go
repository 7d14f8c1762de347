package utils

import (
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// NewRecordID returns the opaque identifier used for persisted rows.
func NewRecordID() string {
	return uuid.NewString()
}

// NewRequestID returns a sortable identifier for correlating request logs.
func NewRequestID() string {
	return ksuid.New().String()
}
