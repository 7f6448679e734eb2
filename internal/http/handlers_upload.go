package httpx

import (
	"errors"
	"net/http"

	apperrors "github.com/target/salonbook-ui/internal/errors"
)

// UploadImage proxies one browser image to the backend and answers {"url": ...}.
// The compose widgets call it from script, so errors are JSON too.
// POST /uploads.
func (h *UIHandlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.readImageUpload(r, "image")
	if err == nil {
		var url string
		url, err = h.Uploads.Upload(r.Context(), img)
		if err == nil {
			WriteJSON(w, http.StatusOK, map[string]string{"url": url})
			return
		}
	}
	if h.sessionExpiredJSON(w, r, err) {
		return
	}

	h.logger().InfoContext(r.Context(), "image upload failed", "error", err)
	WriteError(w, ErrorParams{
		Code:    apperrors.HTTPStatus(err),
		ErrCode: string(errCode(err)),
		Err:     errors.New(publicMessage(err)),
	})
}

// sessionExpiredJSON is sessionExpired for script callers: the session is
// ended and a JSON 401 is returned instead of a redirect.
func (h *UIHandlers) sessionExpiredJSON(w http.ResponseWriter, r *http.Request, err error) bool {
	if !apperrors.IsUnauthorized(err) {
		return false
	}
	endSession(r, endSessionParams{
		W: w, Sessions: h.Auth, OnEnded: h.dropWorkspace, Cookie: h.cookie(), Logger: h.logger(),
	})
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: string(apperrors.ErrCodeUnauthorized),
		Err:     errors.New("session expired"),
	})
	return true
}

func errCode(err error) apperrors.ErrorCode {
	if code := apperrors.GetCode(err); code != "" {
		return code
	}
	return apperrors.ErrCodeInternal
}

// publicMessage is the error text safe to hand to the browser.
func publicMessage(err error) string {
	if fe := apperrors.Fields(err); len(fe) > 0 {
		for _, msg := range fe {
			return msg
		}
	}
	return noticeFromError(err).Message
}
