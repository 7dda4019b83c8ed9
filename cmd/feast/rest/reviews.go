package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	apireviews "github.com/feastworks/feast-api-types/reviews"
)

func (c *client) PostReview(ctx context.Context, req apireviews.CreateRequest) (apireviews.Detail, error) {
	hreq, err := c.newRequest(ctx, http.MethodPost, c.apipath("reviews"), req)
	if err != nil {
		return apireviews.Detail{}, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return apireviews.Detail{}, err
	}
	defer resp.Body.Close()

	var review apireviews.Detail
	if err := unmarshalJsonResponse(
		resp, &review,
		MessageFor{
			Status4xx: "the review is rejected",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apireviews.Detail{}, err
	}
	return review, nil
}

func (c *client) RestaurantReviews(ctx context.Context, restaurantId int64) ([]apireviews.Detail, error) {
	hreq, err := c.newRequest(
		ctx, http.MethodGet,
		c.apipath("reviews", "restaurant", strconv.FormatInt(restaurantId, 10)), nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpclient.Do(hreq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	reviews := []apireviews.Detail{}
	if err := unmarshalJsonResponse(
		resp, &reviews,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot list reviews of restaurant %d", restaurantId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return nil, err
	}
	return reviews, nil
}
