package domain

import "time"

// AuditFields carries who last touched a record and its optimistic-lock version.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // Actor reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // Actor reference
	Version       int64     `json:"version"`       // Optimistic lock token
}
