package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	apiorders "github.com/feastworks/feast-api-types/orders"
)

func (c *client) PlaceOrder(ctx context.Context, req apiorders.CreateRequest) (apiorders.Detail, error) {
	hreq, err := c.newRequest(ctx, http.MethodPost, c.apipath("orders"), req)
	if err != nil {
		return apiorders.Detail{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return apiorders.Detail{}, err
	}
	defer resp.Body.Close()

	var order apiorders.Detail
	if err := unmarshalJsonResponse(
		resp, &order,
		MessageFor{
			Status4xx: "the order is rejected",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiorders.Detail{}, err
	}
	return order, nil
}

func (c *client) GetOrder(ctx context.Context, orderId int64) (apiorders.Detail, error) {
	hreq, err := c.newRequest(
		ctx, http.MethodGet,
		c.apipath("orders", strconv.FormatInt(orderId, 10)), nil,
	)
	if err != nil {
		return apiorders.Detail{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return apiorders.Detail{}, err
	}
	defer resp.Body.Close()

	var order apiorders.Detail
	if err := unmarshalJsonResponse(
		resp, &order,
		MessageFor{
			Status4xx: fmt.Sprintf("order %d is not found", orderId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiorders.Detail{}, err
	}
	return order, nil
}

func (c *client) listOrders(ctx context.Context, endpoint string, message MessageFor) ([]apiorders.Detail, error) {
	hreq, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if message[Status5xx] == "" {
		message[Status5xx] = fmt.Sprintf("server error (status code = %d)", resp.StatusCode)
	}

	orders := []apiorders.Detail{}
	if err := unmarshalJsonResponse(resp, &orders, message); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *client) MyOrders(ctx context.Context) ([]apiorders.Detail, error) {
	return c.listOrders(
		ctx, c.apipath("orders", "my"),
		MessageFor{Status4xx: "cannot list your orders"},
	)
}

func (c *client) RestaurantOrders(ctx context.Context, restaurantId int64) ([]apiorders.Detail, error) {
	return c.listOrders(
		ctx, c.apipath("orders", "restaurant", strconv.FormatInt(restaurantId, 10)),
		MessageFor{Status4xx: fmt.Sprintf("cannot list orders of restaurant %d", restaurantId)},
	)
}

func (c *client) AllOrders(ctx context.Context) ([]apiorders.Detail, error) {
	return c.listOrders(
		ctx, c.apipath("orders", "all"),
		MessageFor{Status4xx: "cannot list all orders"},
	)
}

func (c *client) AgentOrders(ctx context.Context) ([]apiorders.Detail, error) {
	return c.listOrders(
		ctx, c.apipath("orders", "agent"),
		MessageFor{Status4xx: "cannot list your deliveries"},
	)
}

func (c *client) UpdateOrderStatus(ctx context.Context, orderId int64, status apiorders.Status) (apiorders.Detail, error) {
	endpoint := c.apipath("orders", strconv.FormatInt(orderId, 10), "status") +
		"?" + url.Values{"status": {string(status)}}.Encode()

	hreq, err := c.newRequest(ctx, http.MethodPatch, endpoint, nil)
	if err != nil {
		return apiorders.Detail{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return apiorders.Detail{}, err
	}
	defer resp.Body.Close()

	var order apiorders.Detail
	if err := unmarshalJsonResponse(
		resp, &order,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot move order %d to %s", orderId, status),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiorders.Detail{}, err
	}
	return order, nil
}

func (c *client) CancelOrder(ctx context.Context, orderId int64) (apiorders.Detail, error) {
	hreq, err := c.newRequest(
		ctx, http.MethodPatch,
		c.apipath("orders", strconv.FormatInt(orderId, 10), "cancel"), nil,
	)
	if err != nil {
		return apiorders.Detail{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return apiorders.Detail{}, err
	}
	defer resp.Body.Close()

	var order apiorders.Detail
	if err := unmarshalJsonResponse(
		resp, &order,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot cancel order %d", orderId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiorders.Detail{}, err
	}
	return order, nil
}
