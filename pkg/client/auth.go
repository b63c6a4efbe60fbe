package client

import (
	"context"
	"net/http"
	"net/url"
)

// Login exchanges credentials for a bearer token via the password flow. The
// form field is named "username" but carries the account email.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.doForm(ctx, http.MethodPost, "/token", form, &resp); err != nil {
		return nil, err
	}

	return &Session{
		Token: resp.AccessToken,
		Email: email,
	}, nil
}

// Register asks the server to email a verification code to the address.
// Calling it again resends a fresh code. The returned string is the server's
// status message.
func (c *Client) Register(ctx context.Context, email string) (string, error) {
	req := map[string]string{"email": email}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/register", "", req, &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}

// RegisterVerify submits the emailed code together with the chosen password
// to finish creating the account.
func (c *Client) RegisterVerify(ctx context.Context, email, otp, password string) (string, error) {
	req := map[string]string{
		"email":    email,
		"otp":      otp,
		"password": password,
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/register/verify", "", req, &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}
