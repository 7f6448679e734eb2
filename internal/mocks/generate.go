// Package mocks provides mock implementations of the ports for testing services and handlers.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	faqs := mocks.NewMockFAQRepository(ctrl)
//	faqs.EXPECT().ListFAQs(gomock.Any(), "42").Return(nil, nil)
package mocks

// Generate mocks for every backend-facing port plus the session store.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ports_mock.go github.com/target/salonbook-ui/internal/ports Authenticator,CatalogRepository,FAQRepository,IdentityReader,ImageUploader,PortfolioRepository,RegistrationRepository,ReviewReader,SalonRepository,SessionStore,StatsProvider
