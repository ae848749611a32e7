package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	ErrNotificationIDRequired = errors.New("notification id is required")
	ErrTransactionIDRequired  = errors.New("transaction id is required")
	ErrTenantIDRequired       = errors.New("tenant id is required")
)
