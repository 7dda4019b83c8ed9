package reviews

import (
	"github.com/feastworks/feast-api-types/misc/rfctime"
)

// CreateRequest is the body of POST /reviews.
//
// Rating is 1..5; the server rejects values outside the range.
type CreateRequest struct {
	RestaurantId int64  `json:"restaurantId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
}

type Detail struct {
	Id           int64                 `json:"id"`
	CustomerId   int64                 `json:"customerId"`
	CustomerName string                `json:"customerName"`
	RestaurantId int64                 `json:"restaurantId"`
	Rating       int                   `json:"rating"`
	Comment      string                `json:"comment,omitempty"`
	CreatedAt    rfctime.LocalDateTime `json:"createdAt"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.CustomerId == o.CustomerId &&
		d.CustomerName == o.CustomerName &&
		d.RestaurantId == o.RestaurantId &&
		d.Rating == o.Rating &&
		d.Comment == o.Comment &&
		d.CreatedAt.Equal(o.CreatedAt)
}
