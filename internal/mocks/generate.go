// Package mocks provides mock implementations for testing the feed read path.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the repository interfaces in internal/core. The mocks are generated using
// go:generate directives and provide a fluent API for setting up test
// expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockTenantRepository(ctrl)
//	mockRepo.EXPECT().FindByID(gomock.Any(), "org-1").Return(tenant, nil)
package mocks

// Generate mock for TenantRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=tenant_repository_mock.go github.com/pulsehub/activity-feed-api/internal/core TenantRepository

// Generate mock for SubscriberRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=subscriber_repository_mock.go github.com/pulsehub/activity-feed-api/internal/core SubscriberRepository

// Generate mock for LegacyFeedRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=legacy_feed_repository_mock.go github.com/pulsehub/activity-feed-api/internal/core LegacyFeedRepository

// Generate mock for TraceLogRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=trace_log_repository_mock.go github.com/pulsehub/activity-feed-api/internal/core TraceLogRepository

// Generate mock for FeatureFlagService interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=feature_flag_service_mock.go github.com/pulsehub/activity-feed-api/internal/core FeatureFlagService
