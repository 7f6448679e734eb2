package ports_test

import (
	"testing"

	"github.com/target/salonbook-ui/internal/mocks"
	fakes "github.com/target/salonbook-ui/internal/mocks/auth"
	"github.com/target/salonbook-ui/internal/ports"
)

// This test only verifies that our mocks conform to the ports at compile time.
func TestMocksImplementPorts(t *testing.T) {
	t.Helper()

	var _ ports.Authenticator = (*fakes.FakeAuthenticator)(nil)
	var _ ports.IdentityReader = (*fakes.StubIdentityReader)(nil)
	var _ ports.SessionStore = (*fakes.MemorySessionStore)(nil)

	var _ ports.SalonRepository = (*mocks.MockSalonRepository)(nil)
	var _ ports.PortfolioRepository = (*mocks.MockPortfolioRepository)(nil)
	var _ ports.CatalogRepository = (*mocks.MockCatalogRepository)(nil)
	var _ ports.FAQRepository = (*mocks.MockFAQRepository)(nil)
	var _ ports.ReviewReader = (*mocks.MockReviewReader)(nil)
	var _ ports.RegistrationRepository = (*mocks.MockRegistrationRepository)(nil)
	var _ ports.ImageUploader = (*mocks.MockImageUploader)(nil)
	var _ ports.StatsProvider = (*mocks.MockStatsProvider)(nil)
	var _ ports.SessionStore = (*mocks.MockSessionStore)(nil)
	var _ ports.IdentityReader = (*mocks.MockIdentityReader)(nil)
	var _ ports.Authenticator = (*mocks.MockAuthenticator)(nil)
}
