package httpx

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/target/salonbook-ui/internal/domain/dashboard"
	"github.com/target/salonbook-ui/internal/domain/model"
	apperrors "github.com/target/salonbook-ui/internal/errors"
	"github.com/target/salonbook-ui/internal/http/ui/viewmodel"
	"github.com/target/salonbook-ui/internal/service"
)

// subTabLink is one entry of the salon details sub-navigation.
type subTabLink struct {
	Key    string
	Label  string
	Active bool
}

func subTabLinks(active dashboard.SalonSubTab) []subTabLink {
	out := make([]subTabLink, 0, len(dashboard.SalonSubTabs))
	for _, s := range dashboard.SalonSubTabs {
		out = append(out, subTabLink{Key: string(s), Label: s.Label(), Active: s == active})
	}
	return out
}

// loadSalonSubTab fetches the data shown on one salon details sub-tab.
func (h *UIHandlers) loadSalonSubTab(ctx context.Context, salonID string, sub dashboard.SalonSubTab, b *TemplateDataBuilder) error {
	b.With("SubTab", string(sub)).With("SubTabs", subTabLinks(sub))

	switch sub {
	case dashboard.SubTabPortfolio:
		albums, err := h.Portfolio.Albums(ctx, salonID)
		b.With("Albums", albums)
		return err
	case dashboard.SubTabServices:
		services, err := h.Catalog.List(ctx, salonID)
		b.With("Services", services)
		return err
	case dashboard.SubTabFAQs:
		faqs, err := h.FAQs.List(ctx, salonID)
		b.With("FAQs", faqs)
		return err
	default:
		details, err := h.Salons.Details(ctx, salonID)
		b.With("Details", details).With("SocialPlatforms", model.SocialPlatforms)
		return err
	}
}

// SalonSubTab switches the salon details sub-tab. ?edit=<form key> opens one
// of the inline forms, e.g. "faq:new" or "address:<id>".
// GET /dashboard/salon/{subtab}.
func (h *UIHandlers) SalonSubTab(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	v, ok := h.guardSection(w, r, sess, dashboard.TabSalonDetails)
	if !ok {
		return
	}
	sub := dashboard.ParseSalonSubTab(r.PathValue("subtab"))
	v.Workspace.SetSubTab(sub)

	b := h.dashboardData(r, v)
	if edit := r.URL.Query().Get("edit"); edit != "" {
		b.WithForm(edit, nil)
	}
	err := h.loadSalonSubTab(r.Context(), sess.SalonID, sub, b)
	h.respondSection(w, r, v, b, err)
}

// salonMutation describes one write against the managed salon.
type salonMutation struct {
	SubTab  dashboard.SalonSubTab
	FormKey string
	Form    map[string]string
	Success string
	Run     func(ctx context.Context, salonID string) error
}

// mutateSalon runs m and re-renders the sub-tab from fresh backend data.
// Validation failures keep the submitted form open with its values.
func (h *UIHandlers) mutateSalon(w http.ResponseWriter, r *http.Request, m salonMutation) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	v, ok := h.guardSection(w, r, sess, dashboard.TabSalonDetails)
	if !ok {
		return
	}
	v.Workspace.SetSubTab(m.SubTab)

	err := m.Run(r.Context(), sess.SalonID)
	if h.sessionExpired(w, r, err) {
		return
	}

	b := h.dashboardData(r, v)
	switch {
	case err == nil:
		b.WithNotice(viewmodel.NewNotice(viewmodel.SeveritySuccess, m.Success))
	case apperrors.IsValidation(err):
		b.WithFieldErrors(apperrors.Fields(err)).
			WithForm(m.FormKey, m.Form).
			WithNotice(noticeFromError(err))
	default:
		h.logger().WarnContext(r.Context(), "salon update failed",
			"subtab", m.SubTab, "form", m.FormKey, "error", err)
		b.WithForm(m.FormKey, m.Form).WithNotice(noticeFromError(err))
	}

	loadErr := h.loadSalonSubTab(r.Context(), sess.SalonID, m.SubTab, b)
	h.respondSection(w, r, v, b, loadErr)
}

// SaveSalon updates the salon profile.
// POST /dashboard/salon/details.
func (h *UIHandlers) SaveSalon(w http.ResponseWriter, r *http.Request) {
	form := formValues(r, "name", "email", "phone", "description")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabDetails,
		FormKey: "salon",
		Form:    form,
		Success: "Salon details saved.",
		Run: func(ctx context.Context, salonID string) error {
			return h.Salons.Update(ctx, salonID, model.UpdateSalonRequest{
				Name:        form["name"],
				Email:       form["email"],
				Phone:       form["phone"],
				Description: form["description"],
			})
		},
	})
}

// SaveAddress adds an address, or replaces the one named by {id}.
// POST /dashboard/salon/addresses[/{id}].
func (h *UIHandlers) SaveAddress(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	form := formValues(r, "street", "city", "state", "postalCode", "country")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabDetails,
		FormKey: formKey("address", id),
		Form:    form,
		Success: "Address saved.",
		Run: func(ctx context.Context, salonID string) error {
			return h.Salons.SaveAddress(ctx, salonID, id, model.AddressInput{
				Street:     form["street"],
				City:       form["city"],
				State:      form["state"],
				PostalCode: form["postalCode"],
				Country:    form["country"],
			})
		},
	})
}

// DeleteAddress removes an address.
// POST /dashboard/salon/addresses/{id}/delete.
func (h *UIHandlers) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabDetails,
		Success: "Address removed.",
		Run: func(ctx context.Context, salonID string) error {
			return h.Salons.DeleteAddress(ctx, salonID, id)
		},
	})
}

// SaveSocialLink adds a social link, or replaces the one named by {id}.
// POST /dashboard/salon/social-links[/{id}].
func (h *UIHandlers) SaveSocialLink(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	form := formValues(r, "platform", "url")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabDetails,
		FormKey: formKey("social", id),
		Form:    form,
		Success: "Social link saved.",
		Run: func(ctx context.Context, salonID string) error {
			return h.Salons.SaveSocialLink(ctx, salonID, id, model.SocialLinkInput{
				Platform: form["platform"],
				URL:      form["url"],
			})
		},
	})
}

// DeleteSocialLink removes a social link.
// POST /dashboard/salon/social-links/{id}/delete.
func (h *UIHandlers) DeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabDetails,
		Success: "Social link removed.",
		Run: func(ctx context.Context, salonID string) error {
			return h.Salons.DeleteSocialLink(ctx, salonID, id)
		},
	})
}

// SaveAlbum creates an album, or renames the one named by {albumID}.
// POST /dashboard/salon/albums[/{albumID}].
func (h *UIHandlers) SaveAlbum(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("albumID")
	form := formValues(r, "title", "description")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabPortfolio,
		FormKey: formKey("album", id),
		Form:    form,
		Success: "Album saved.",
		Run: func(ctx context.Context, salonID string) error {
			return h.Portfolio.SaveAlbum(ctx, salonID, id, model.AlbumInput{
				Title:       form["title"],
				Description: form["description"],
			})
		},
	})
}

// DeleteAlbum removes an album and its images.
// POST /dashboard/salon/albums/{albumID}/delete.
func (h *UIHandlers) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("albumID")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabPortfolio,
		Success: "Album deleted.",
		Run: func(ctx context.Context, salonID string) error {
			return h.Portfolio.DeleteAlbum(ctx, salonID, id)
		},
	})
}

// AddImage adds a picture to an album. The picture is either a file uploaded
// with the form or the URL of an image uploaded earlier through /uploads.
// POST /dashboard/salon/albums/{albumID}/images.
func (h *UIHandlers) AddImage(w http.ResponseWriter, r *http.Request) {
	albumID := r.PathValue("albumID")
	upload, readErr := h.readImageUpload(r, "image")
	form := formValues(r, "url", "caption")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabPortfolio,
		FormKey: "image:" + albumID + ":new",
		Form:    form,
		Success: "Image added.",
		Run: func(ctx context.Context, salonID string) error {
			if readErr != nil {
				return readErr
			}
			in := model.ImageInput{URL: form["url"], Caption: form["caption"]}
			if !upload.Empty() {
				url, err := h.Uploads.Upload(ctx, upload)
				if err != nil {
					return err
				}
				in.URL = url
			}
			return h.Portfolio.AddImage(ctx, salonID, albumID, in)
		},
	})
}

// UpdateImageCaption edits an image caption.
// POST /dashboard/salon/albums/{albumID}/images/{imageID}.
func (h *UIHandlers) UpdateImageCaption(w http.ResponseWriter, r *http.Request) {
	albumID, imageID := r.PathValue("albumID"), r.PathValue("imageID")
	form := formValues(r, "caption")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabPortfolio,
		FormKey: "image:" + imageID,
		Form:    form,
		Success: "Caption updated.",
		Run: func(ctx context.Context, salonID string) error {
			return h.Portfolio.UpdateCaption(ctx, salonID, albumID, imageID, form["caption"])
		},
	})
}

// DeleteImage removes an image from an album.
// POST /dashboard/salon/albums/{albumID}/images/{imageID}/delete.
func (h *UIHandlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	albumID, imageID := r.PathValue("albumID"), r.PathValue("imageID")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabPortfolio,
		Success: "Image removed.",
		Run: func(ctx context.Context, salonID string) error {
			return h.Portfolio.DeleteImage(ctx, salonID, albumID, imageID)
		},
	})
}

// SaveService creates a service, or replaces the one named by {id}.
// The form is multipart so an optional picture travels with it.
// POST /dashboard/salon/services[/{id}].
func (h *UIHandlers) SaveService(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	upload, readErr := h.readImageUpload(r, "image")
	form := formValues(r, "name", "price", "duration", "description")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabServices,
		FormKey: formKey("service", id),
		Form:    form,
		Success: "Service saved.",
		Run: func(ctx context.Context, salonID string) error {
			if readErr != nil {
				return readErr
			}
			return h.Catalog.Save(ctx, salonID, id, model.ServiceInput{
				Name:        form["name"],
				Price:       form["price"],
				Duration:    form["duration"],
				Description: form["description"],
				Image:       upload,
			})
		},
	})
}

// DeleteService removes a service.
// POST /dashboard/salon/services/{id}/delete.
func (h *UIHandlers) DeleteService(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabServices,
		Success: "Service deleted.",
		Run: func(ctx context.Context, salonID string) error {
			return h.Catalog.Delete(ctx, salonID, id)
		},
	})
}

// SaveFAQ creates a FAQ, or replaces the one named by {id}.
// POST /dashboard/salon/faqs[/{id}].
func (h *UIHandlers) SaveFAQ(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	form := formValues(r, "question", "answer")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabFAQs,
		FormKey: formKey("faq", id),
		Form:    form,
		Success: "FAQ saved.",
		Run: func(ctx context.Context, salonID string) error {
			return h.FAQs.Save(ctx, salonID, id, model.FAQInput{
				Question: form["question"],
				Answer:   form["answer"],
			})
		},
	})
}

// DeleteFAQ removes a FAQ.
// POST /dashboard/salon/faqs/{id}/delete.
func (h *UIHandlers) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.mutateSalon(w, r, salonMutation{
		SubTab:  dashboard.SubTabFAQs,
		Success: "FAQ deleted.",
		Run: func(ctx context.Context, salonID string) error {
			return h.FAQs.Delete(ctx, salonID, id)
		},
	})
}

// formKey names an inline form: "<kind>:new" for creation, "<kind>:<id>" for edits.
func formKey(kind, id string) string {
	if id == "" {
		return kind + ":new"
	}
	return kind + ":" + id
}

// readImageUpload reads an optional file field. A form without the field, or
// a non-multipart form, yields nil. Size and type checks happen in the services.
func (h *UIHandlers) readImageUpload(r *http.Request, field string) (*model.ImageUpload, error) {
	file, hdr, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.ValidationField(field, "The uploaded file could not be read")
	}
	defer file.Close()

	limit := h.MaxUploadBytes
	if limit <= 0 {
		limit = service.DefaultMaxUploadBytes
	}
	// One byte past the limit lets the size check reject it.
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, apperrors.ValidationField(field, "The uploaded file could not be read")
	}
	return &model.ImageUpload{
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
