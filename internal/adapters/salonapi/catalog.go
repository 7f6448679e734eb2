package salonapi

import (
	"bytes"
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/target/salonbook-ui/internal/domain/model"
)

const (
	pathServices = "/salons/{salonId}/services"
	pathService  = "/salons/{salonId}/services/{serviceId}"
)

// ListServices reads the salon's services.
func (c *Client) ListServices(ctx context.Context, salonID string) ([]model.Service, error) {
	var out []model.Service
	err := c.do(ctx, call{op: "list_services", method: http.MethodGet, path: pathServices, params: salonParams(salonID), out: &out})
	return out, err
}

// CreateService adds a service as multipart form data with an optional image.
func (c *Client) CreateService(ctx context.Context, salonID string, in model.ServiceInput) error {
	return c.do(ctx, call{
		op: "create_service", method: http.MethodPost, path: pathServices,
		params: salonParams(salonID), multipart: serviceForm(in),
	})
}

// UpdateService replaces a service as multipart form data with an optional new image.
func (c *Client) UpdateService(ctx context.Context, salonID, serviceID string, in model.ServiceInput) error {
	return c.do(ctx, call{
		op: "update_service", method: http.MethodPut, path: pathService,
		params: salonParams(salonID, "serviceId", serviceID), multipart: serviceForm(in),
	})
}

// DeleteService removes a service.
func (c *Client) DeleteService(ctx context.Context, salonID, serviceID string) error {
	return c.do(ctx, call{
		op: "delete_service", method: http.MethodDelete, path: pathService,
		params: salonParams(salonID, "serviceId", serviceID),
	})
}

func serviceForm(in model.ServiceInput) func(*resty.Request) {
	return func(req *resty.Request) {
		req.SetMultipartFormData(in.Fields())
		if !in.Image.Empty() {
			req.SetMultipartField("image", in.Image.Filename, in.Image.ContentType, bytes.NewReader(in.Image.Data))
		}
	}
}
