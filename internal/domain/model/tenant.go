package model

import "time"

// Tenant is the organization metadata needed to compute retention policy.
type Tenant struct {
	ID           string       `json:"id"         db:"id"`
	ServiceLevel ServiceLevel `json:"tier"       db:"service_level"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}

// ServiceLevel is a tenant's billing tier.
type ServiceLevel string

const (
	ServiceLevelFree       ServiceLevel = "free"
	ServiceLevelPro        ServiceLevel = "pro"
	ServiceLevelTeam       ServiceLevel = "team"
	ServiceLevelEnterprise ServiceLevel = "enterprise"
)

// Valid returns true if the service level is a known tier.
func (s ServiceLevel) Valid() bool {
	switch s {
	case ServiceLevelFree, ServiceLevelPro, ServiceLevelTeam, ServiceLevelEnterprise:
		return true
	default:
		return false
	}
}

// String returns the string representation of the service level.
func (s ServiceLevel) String() string {
	return string(s)
}

// RetentionWindow is the [after, before] bound a tenant is permitted to
// query. It is recomputed per request and never persisted. After <= Before
// always holds once validation has passed.
type RetentionWindow struct {
	After  time.Time `json:"after"`
	Before time.Time `json:"before"`
}
