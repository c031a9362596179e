package redump

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"discsub/internal/logging"
	"discsub/internal/services"
)

// LoginResult is the tri-state outcome of a login attempt.
type LoginResult int

const (
	// LoginError means the attempt could not complete.
	LoginError LoginResult = iota
	LoginSuccess
	// LoginFailure means the catalog rejected the credentials.
	LoginFailure
)

func (r LoginResult) String() string {
	switch r {
	case LoginSuccess:
		return "success"
	case LoginFailure:
		return "failure"
	default:
		return "error"
	}
}

const badCredentialsMarker = "Incorrect username and/or password"

// LoginURL returns the forum login endpoint.
func (c *Client) LoginURL() string { return c.forumURL + "/login/" }

// Login establishes a catalog session. Missing credentials are a failure
// without any request being made.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginFailure, nil
	}

	page, err := c.get(ctx, c.LoginURL())
	if err != nil {
		return LoginError, err
	}
	token, err := csrfToken(page)
	if err != nil {
		return LoginError, services.Wrap(services.ErrAuth, "redump", "login", "read login form", err)
	}

	form := url.Values{}
	form.Set("req_username", username)
	form.Set("req_password", password)
	form.Set("save_pass", "on")
	form.Set("csrf_token", token)
	form.Set("form_sent", "1")

	body, err := c.postForm(ctx, c.LoginURL()+"?action=in", form)
	if err != nil {
		return LoginError, err
	}
	if bytes.Contains(body, []byte(badCredentialsMarker)) {
		logging.WarnWithContext(c.logger, "catalog rejected credentials", "login_rejected",
			logging.String("username", username),
			logging.String(logging.FieldErrorHint, "check redump.username and redump.password"),
			logging.String(logging.FieldImpact, "catalog lookups are skipped"),
		)
		return LoginFailure, nil
	}
	c.logger.Debug("catalog login succeeded", logging.String("username", username))
	return LoginSuccess, nil
}

func csrfToken(page []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", err
	}
	token, ok := doc.Find(`input[name="csrf_token"]`).First().Attr("value")
	if !ok || strings.TrimSpace(token) == "" {
		return "", errors.New("csrf token not found")
	}
	return strings.TrimSpace(token), nil
}
