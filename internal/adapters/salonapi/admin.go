package salonapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/target/salonbook-ui/internal/domain/model"
)

const pathRegistration = "/admin/registrations/{id}"

// ListRegistrations reads registrations in status.
func (c *Client) ListRegistrations(ctx context.Context, status model.RegistrationStatus) ([]model.Registration, error) {
	var out []model.Registration
	err := c.do(ctx, call{
		op: "list_registrations", method: http.MethodGet, path: "/admin/registrations",
		query: map[string]string{"status": string(status)}, out: &out,
	})
	return out, err
}

// ApproveRegistration activates a pending account.
func (c *Client) ApproveRegistration(ctx context.Context, id string) error {
	return c.do(ctx, call{
		op: "approve_registration", method: http.MethodPost, path: pathRegistration + "/approve",
		params: map[string]string{"id": id},
	})
}

// RejectRegistration declines an account with an optional reason.
func (c *Client) RejectRegistration(ctx context.Context, id, reason string) error {
	body := struct {
		Reason string `json:"reason,omitempty"`
	}{Reason: strings.TrimSpace(reason)}
	return c.do(ctx, call{
		op: "reject_registration", method: http.MethodPost, path: pathRegistration + "/reject",
		params: map[string]string{"id": id}, body: body,
	})
}

// DeleteRegistration removes a registration record.
func (c *Client) DeleteRegistration(ctx context.Context, id string) error {
	return c.do(ctx, call{
		op: "delete_registration", method: http.MethodDelete, path: pathRegistration,
		params: map[string]string{"id": id},
	})
}
