package ports

import (
	"context"

	"github.com/target/salonbook-ui/internal/domain/model"
)

// SalonRepository reads and updates a salon profile and its addresses and social links.
type SalonRepository interface {
	GetSalon(ctx context.Context, salonID string) (model.Salon, error)
	UpdateSalon(ctx context.Context, salonID string, req model.UpdateSalonRequest) error

	ListAddresses(ctx context.Context, salonID string) ([]model.Address, error)
	CreateAddress(ctx context.Context, salonID string, in model.AddressInput) error
	UpdateAddress(ctx context.Context, salonID, addressID string, in model.AddressInput) error
	DeleteAddress(ctx context.Context, salonID, addressID string) error

	ListSocialLinks(ctx context.Context, salonID string) ([]model.SocialLink, error)
	CreateSocialLink(ctx context.Context, salonID string, in model.SocialLinkInput) error
	UpdateSocialLink(ctx context.Context, salonID, linkID string, in model.SocialLinkInput) error
	DeleteSocialLink(ctx context.Context, salonID, linkID string) error
}

// PortfolioRepository manages albums and their images.
type PortfolioRepository interface {
	ListAlbums(ctx context.Context, salonID string) ([]model.Album, error)
	CreateAlbum(ctx context.Context, salonID string, in model.AlbumInput) error
	UpdateAlbum(ctx context.Context, salonID, albumID string, in model.AlbumInput) error
	DeleteAlbum(ctx context.Context, salonID, albumID string) error

	AddImage(ctx context.Context, salonID, albumID string, in model.ImageInput) error
	UpdateImage(ctx context.Context, salonID, albumID, imageID string, in model.ImageInput) error
	DeleteImage(ctx context.Context, salonID, albumID, imageID string) error
}

// CatalogRepository manages the salon's bookable services.
type CatalogRepository interface {
	ListServices(ctx context.Context, salonID string) ([]model.Service, error)
	CreateService(ctx context.Context, salonID string, in model.ServiceInput) error
	UpdateService(ctx context.Context, salonID, serviceID string, in model.ServiceInput) error
	DeleteService(ctx context.Context, salonID, serviceID string) error
}

// FAQRepository manages the salon's FAQs.
type FAQRepository interface {
	ListFAQs(ctx context.Context, salonID string) ([]model.FAQ, error)
	CreateFAQ(ctx context.Context, salonID string, in model.FAQInput) error
	UpdateFAQ(ctx context.Context, salonID, faqID string, in model.FAQInput) error
	DeleteFAQ(ctx context.Context, salonID, faqID string) error
}

// ReviewReader pages through a salon's reviews.
type ReviewReader interface {
	ListReviews(ctx context.Context, salonID string, q model.ReviewQuery) (model.ReviewPage, error)
}

// RegistrationRepository backs the admin approval console.
type RegistrationRepository interface {
	ListRegistrations(ctx context.Context, status model.RegistrationStatus) ([]model.Registration, error)
	ApproveRegistration(ctx context.Context, id string) error
	RejectRegistration(ctx context.Context, id, reason string) error
	DeleteRegistration(ctx context.Context, id string) error
}

// ImageUploader stores an image and returns its public URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, img model.ImageUpload) (string, error)
}

// StatsProvider supplies the dashboard overview figures.
type StatsProvider interface {
	Overview(ctx context.Context, salonID string) (model.Overview, error)
}
