package menu

// Spec is the body of menu-item create/update requests.
type Spec struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Price       float64 `json:"price" yaml:"price"`
	ImageUrl    string  `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Category    string  `json:"category,omitempty" yaml:"category,omitempty"`
	Vegetarian  bool    `json:"vegetarian" yaml:"vegetarian,omitempty"`
}

func (s Spec) Equal(o Spec) bool {
	return s == o
}

type Detail struct {
	Id           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	ImageUrl     string  `json:"imageUrl,omitempty"`
	Category     string  `json:"category,omitempty"`
	Vegetarian   bool    `json:"vegetarian"`
	Available    bool    `json:"available"`
	RestaurantId int64   `json:"restaurantId"`
}

func (d Detail) Equal(o Detail) bool {
	return d == o
}
