// Package mocks provides mock implementations for testing the planboard core.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// repository interfaces. The mocks are generated using go:generate directives.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	repo := mocks.NewMockMailboxRepository(ctrl)
//	repo.EXPECT().List(gomock.Any()).Return(nil, nil)
package mocks

// Generate mock for MailboxRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=mailbox_repository_mock.go github.com/planboard/planboard/internal/ports MailboxRepository
