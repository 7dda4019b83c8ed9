package restaurants

// Spec is the body of restaurant create/update requests.
//
// It is YAML-taggable so that a restaurant can be described in a file and
// passed to the CLI as-is.
type Spec struct {
	Name           string  `json:"name" yaml:"name"`
	Description    string  `json:"description,omitempty" yaml:"description,omitempty"`
	Address        string  `json:"address,omitempty" yaml:"address,omitempty"`
	Phone          string  `json:"phone,omitempty" yaml:"phone,omitempty"`
	ImageUrl       string  `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Cuisine        string  `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	OpeningHours   string  `json:"openingHours,omitempty" yaml:"openingHours,omitempty"`
	DeliveryTime   int     `json:"deliveryTime,omitempty" yaml:"deliveryTime,omitempty"`
	DeliveryFee    float64 `json:"deliveryFee,omitempty" yaml:"deliveryFee,omitempty"`
	MinOrderAmount float64 `json:"minOrderAmount,omitempty" yaml:"minOrderAmount,omitempty"`
}

func (s Spec) Equal(o Spec) bool {
	return s == o
}

type Detail struct {
	Id             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Address        string  `json:"address,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	ImageUrl       string  `json:"imageUrl,omitempty"`
	Cuisine        string  `json:"cuisine,omitempty"`
	OpeningHours   string  `json:"openingHours,omitempty"`
	Rating         float64 `json:"rating"`
	ReviewCount    int     `json:"reviewCount"`
	DeliveryTime   int     `json:"deliveryTime"`
	DeliveryFee    float64 `json:"deliveryFee"`
	MinOrderAmount float64 `json:"minOrderAmount"`
	Open           bool    `json:"open"`
	OwnerId        int64   `json:"ownerId"`
}

func (d Detail) Equal(o Detail) bool {
	return d == o
}
