package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	apirest "github.com/feastworks/feast-api-types/restaurants"
)

func (c *client) FindRestaurants(ctx context.Context, search string) ([]apirest.Detail, error) {
	endpoint := c.apipath("restaurants")
	if search != "" {
		endpoint += "?" + url.Values{"search": {search}}.Encode()
	}

	hreq, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	restaurants := []apirest.Detail{}
	if err := unmarshalJsonResponse(
		resp, &restaurants,
		MessageFor{
			Status4xx: "cannot list restaurants",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *client) GetRestaurant(ctx context.Context, restaurantId int64) (apirest.Detail, error) {
	hreq, err := c.newRequest(
		ctx, http.MethodGet,
		c.apipath("restaurants", strconv.FormatInt(restaurantId, 10)), nil,
	)
	if err != nil {
		return apirest.Detail{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return apirest.Detail{}, err
	}
	defer resp.Body.Close()

	var restaurant apirest.Detail
	if err := unmarshalJsonResponse(
		resp, &restaurant,
		MessageFor{
			Status4xx: fmt.Sprintf("restaurant %d is not found", restaurantId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apirest.Detail{}, err
	}
	return restaurant, nil
}

func (c *client) MyRestaurants(ctx context.Context) ([]apirest.Detail, error) {
	hreq, err := c.newRequest(ctx, http.MethodGet, c.apipath("restaurants", "my"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	restaurants := []apirest.Detail{}
	if err := unmarshalJsonResponse(
		resp, &restaurants,
		MessageFor{
			Status4xx: "cannot list your restaurants",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *client) RegisterRestaurant(ctx context.Context, spec apirest.Spec) (apirest.Detail, error) {
	hreq, err := c.newRequest(ctx, http.MethodPost, c.apipath("restaurants"), spec)
	if err != nil {
		return apirest.Detail{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return apirest.Detail{}, err
	}
	defer resp.Body.Close()

	var restaurant apirest.Detail
	if err := unmarshalJsonResponse(
		resp, &restaurant,
		MessageFor{
			Status4xx: "the restaurant is rejected",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apirest.Detail{}, err
	}
	return restaurant, nil
}

func (c *client) UpdateRestaurant(ctx context.Context, restaurantId int64, spec apirest.Spec) (apirest.Detail, error) {
	hreq, err := c.newRequest(
		ctx, http.MethodPut,
		c.apipath("restaurants", strconv.FormatInt(restaurantId, 10)), spec,
	)
	if err != nil {
		return apirest.Detail{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return apirest.Detail{}, err
	}
	defer resp.Body.Close()

	var restaurant apirest.Detail
	if err := unmarshalJsonResponse(
		resp, &restaurant,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot update restaurant %d", restaurantId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apirest.Detail{}, err
	}
	return restaurant, nil
}

func (c *client) ToggleRestaurant(ctx context.Context, restaurantId int64) (apirest.Detail, error) {
	hreq, err := c.newRequest(
		ctx, http.MethodPatch,
		c.apipath("restaurants", strconv.FormatInt(restaurantId, 10), "toggle"), nil,
	)
	if err != nil {
		return apirest.Detail{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return apirest.Detail{}, err
	}
	defer resp.Body.Close()

	var restaurant apirest.Detail
	if err := unmarshalJsonResponse(
		resp, &restaurant,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot toggle restaurant %d", restaurantId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apirest.Detail{}, err
	}
	return restaurant, nil
}
