package salonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/model"
	apperrors "github.com/target/salonbook-ui/internal/errors"
)

const (
	userIDPath = "_id || id || user._id || user.id"
	namePath   = "name || user.name"
	emailPath  = "email || user.email"
)

// Me reads the acting user from GET /auth/me.
func (c *Client) Me(ctx context.Context) (domainauth.Identity, error) {
	var payload json.RawMessage
	if err := c.do(ctx, call{op: "identity", method: http.MethodGet, path: "/auth/me", out: &payload}); err != nil {
		return domainauth.Identity{}, err
	}
	return c.identityFrom(payload)
}

// Login exchanges credentials at POST /auth/login for {token, user}.
func (c *Client) Login(ctx context.Context, creds domainauth.Credentials) (domainauth.LoginResult, error) {
	var payload json.RawMessage
	err := c.do(ctx, call{op: "login", method: http.MethodPost, path: "/auth/login", body: creds, out: &payload})
	if err != nil {
		return domainauth.LoginResult{}, err
	}

	var tok struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(payload, &tok); err != nil || strings.TrimSpace(tok.Token) == "" {
		return domainauth.LoginResult{}, apperrors.Upstream("login response did not include a token", err)
	}

	id, err := c.identityFrom(payload)
	if err != nil {
		return domainauth.LoginResult{}, err
	}
	return domainauth.LoginResult{Token: tok.Token, Identity: id}, nil
}

// Logout invalidates the current bearer credential at POST /auth/logout.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, call{op: "logout", method: http.MethodPost, path: "/auth/logout"})
}

// Register submits the wizard payload to POST /auth/register.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) error {
	return c.do(ctx, call{op: "register", method: http.MethodPost, path: "/auth/register", body: req})
}

func (c *Client) identityFrom(raw []byte) (domainauth.Identity, error) {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return domainauth.Identity{}, apperrors.Upstream("identity payload is not valid JSON", err)
	}

	id := domainauth.Identity{
		UserID:  searchString(userIDPath, data),
		Name:    searchString(namePath, data),
		Email:   searchString(emailPath, data),
		Role:    domainauth.ParseRole(searchString(c.rolePath, data)),
		SalonID: searchString(c.salonPath, data),
	}
	return id, nil
}

// searchString evaluates expr against data and renders scalar results as strings.
// Missing values and evaluation errors yield "".
func searchString(expr string, data any) string {
	v, err := jmespath.Search(expr, data)
	if err != nil || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
