package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/feastworks/feast-api-types/auth"
)

func (c *client) Login(ctx context.Context, req auth.LoginRequest) (auth.Identity, error) {
	hreq, err := c.newRequest(ctx, http.MethodPost, c.apipath("auth", "login"), req)
	if err != nil {
		return auth.Identity{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return auth.Identity{}, err
	}
	defer resp.Body.Close()

	var identity auth.Identity
	if err := unmarshalJsonResponse(
		resp, &identity,
		MessageFor{
			Status4xx: "login is rejected",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return auth.Identity{}, err
	}
	return identity, nil
}

func (c *client) Register(ctx context.Context, req auth.RegisterRequest) (auth.Identity, error) {
	hreq, err := c.newRequest(ctx, http.MethodPost, c.apipath("auth", "register"), req)
	if err != nil {
		return auth.Identity{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return auth.Identity{}, err
	}
	defer resp.Body.Close()

	var identity auth.Identity
	if err := unmarshalJsonResponse(
		resp, &identity,
		MessageFor{
			Status4xx: "registration is rejected",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return auth.Identity{}, err
	}
	return identity, nil
}

func (c *client) GetMe(ctx context.Context) (auth.Identity, error) {
	hreq, err := c.newRequest(ctx, http.MethodGet, c.apipath("auth", "me"), nil)
	if err != nil {
		return auth.Identity{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return auth.Identity{}, err
	}
	defer resp.Body.Close()

	var identity auth.Identity
	if err := unmarshalJsonResponse(
		resp, &identity,
		MessageFor{
			Status4xx: "cannot get the current account",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return auth.Identity{}, err
	}
	return identity, nil
}
