package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	apimenu "github.com/feastworks/feast-api-types/menu"
)

func (c *client) GetMenu(ctx context.Context, restaurantId int64) ([]apimenu.Detail, error) {
	hreq, err := c.newRequest(
		ctx, http.MethodGet,
		c.apipath("menu", "restaurant", strconv.FormatInt(restaurantId, 10)), nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	items := []apimenu.Detail{}
	if err := unmarshalJsonResponse(
		resp, &items,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot get the menu of restaurant %d", restaurantId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *client) AddMenuItem(ctx context.Context, restaurantId int64, spec apimenu.Spec) (apimenu.Detail, error) {
	hreq, err := c.newRequest(
		ctx, http.MethodPost,
		c.apipath("menu", "restaurant", strconv.FormatInt(restaurantId, 10)), spec,
	)
	if err != nil {
		return apimenu.Detail{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return apimenu.Detail{}, err
	}
	defer resp.Body.Close()

	var item apimenu.Detail
	if err := unmarshalJsonResponse(
		resp, &item,
		MessageFor{
			Status4xx: "the menu item is rejected",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apimenu.Detail{}, err
	}
	return item, nil
}

func (c *client) UpdateMenuItem(ctx context.Context, itemId int64, spec apimenu.Spec) (apimenu.Detail, error) {
	hreq, err := c.newRequest(
		ctx, http.MethodPut,
		c.apipath("menu", strconv.FormatInt(itemId, 10)), spec,
	)
	if err != nil {
		return apimenu.Detail{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return apimenu.Detail{}, err
	}
	defer resp.Body.Close()

	var item apimenu.Detail
	if err := unmarshalJsonResponse(
		resp, &item,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot update menu item %d", itemId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apimenu.Detail{}, err
	}
	return item, nil
}

func (c *client) ToggleMenuItem(ctx context.Context, itemId int64) (apimenu.Detail, error) {
	hreq, err := c.newRequest(
		ctx, http.MethodPatch,
		c.apipath("menu", strconv.FormatInt(itemId, 10), "toggle"), nil,
	)
	if err != nil {
		return apimenu.Detail{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return apimenu.Detail{}, err
	}
	defer resp.Body.Close()

	var item apimenu.Detail
	if err := unmarshalJsonResponse(
		resp, &item,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot toggle menu item %d", itemId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apimenu.Detail{}, err
	}
	return item, nil
}

func (c *client) DeleteMenuItem(ctx context.Context, itemId int64) error {
	hreq, err := c.newRequest(
		ctx, http.MethodDelete,
		c.apipath("menu", strconv.FormatInt(itemId, 10)), nil,
	)
	if err != nil {
		return err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return unmarshalResponseDiscardingPayload(
		resp,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot delete menu item %d", itemId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	)
}
