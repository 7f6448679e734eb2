package salonapi

import (
	"context"
	"net/http"

	"github.com/target/salonbook-ui/internal/domain/model"
)

const (
	pathSalon       = "/salons/{salonId}"
	pathAddresses   = "/salons/{salonId}/addresses"
	pathAddress     = "/salons/{salonId}/addresses/{addressId}"
	pathSocialLinks = "/salons/{salonId}/social-links"
	pathSocialLink  = "/salons/{salonId}/social-links/{linkId}"
)

// GetSalon reads the salon profile.
func (c *Client) GetSalon(ctx context.Context, salonID string) (model.Salon, error) {
	var out model.Salon
	err := c.do(ctx, call{op: "get_salon", method: http.MethodGet, path: pathSalon, params: salonParams(salonID), out: &out})
	return out, err
}

// UpdateSalon replaces the editable salon fields.
func (c *Client) UpdateSalon(ctx context.Context, salonID string, req model.UpdateSalonRequest) error {
	return c.do(ctx, call{op: "update_salon", method: http.MethodPut, path: pathSalon, params: salonParams(salonID), body: req})
}

// ListAddresses reads the salon's addresses.
func (c *Client) ListAddresses(ctx context.Context, salonID string) ([]model.Address, error) {
	var out []model.Address
	err := c.do(ctx, call{op: "list_addresses", method: http.MethodGet, path: pathAddresses, params: salonParams(salonID), out: &out})
	return out, err
}

// CreateAddress adds an address.
func (c *Client) CreateAddress(ctx context.Context, salonID string, in model.AddressInput) error {
	return c.do(ctx, call{op: "create_address", method: http.MethodPost, path: pathAddresses, params: salonParams(salonID), body: in})
}

// UpdateAddress replaces an address.
func (c *Client) UpdateAddress(ctx context.Context, salonID, addressID string, in model.AddressInput) error {
	return c.do(ctx, call{
		op: "update_address", method: http.MethodPut, path: pathAddress,
		params: salonParams(salonID, "addressId", addressID), body: in,
	})
}

// DeleteAddress removes an address.
func (c *Client) DeleteAddress(ctx context.Context, salonID, addressID string) error {
	return c.do(ctx, call{
		op: "delete_address", method: http.MethodDelete, path: pathAddress,
		params: salonParams(salonID, "addressId", addressID),
	})
}

// ListSocialLinks reads the salon's social links.
func (c *Client) ListSocialLinks(ctx context.Context, salonID string) ([]model.SocialLink, error) {
	var out []model.SocialLink
	err := c.do(ctx, call{op: "list_social_links", method: http.MethodGet, path: pathSocialLinks, params: salonParams(salonID), out: &out})
	return out, err
}

// CreateSocialLink adds a social link.
func (c *Client) CreateSocialLink(ctx context.Context, salonID string, in model.SocialLinkInput) error {
	return c.do(ctx, call{op: "create_social_link", method: http.MethodPost, path: pathSocialLinks, params: salonParams(salonID), body: in})
}

// UpdateSocialLink replaces a social link.
func (c *Client) UpdateSocialLink(ctx context.Context, salonID, linkID string, in model.SocialLinkInput) error {
	return c.do(ctx, call{
		op: "update_social_link", method: http.MethodPut, path: pathSocialLink,
		params: salonParams(salonID, "linkId", linkID), body: in,
	})
}

// DeleteSocialLink removes a social link.
func (c *Client) DeleteSocialLink(ctx context.Context, salonID, linkID string) error {
	return c.do(ctx, call{
		op: "delete_social_link", method: http.MethodDelete, path: pathSocialLink,
		params: salonParams(salonID, "linkId", linkID),
	})
}
