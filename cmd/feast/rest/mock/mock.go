package mock

import (
	"context"
	"testing"

	"github.com/feastworks/feast-api-types/auth"
	apimenu "github.com/feastworks/feast-api-types/menu"
	apiorders "github.com/feastworks/feast-api-types/orders"
	apirest "github.com/feastworks/feast-api-types/restaurants"
	apireviews "github.com/feastworks/feast-api-types/reviews"
	"github.com/feastworks/feast/cmd/feast/rest"
)

type AddMenuItemArgs struct {
	RestaurantId int64
	Spec         apimenu.Spec
}

type UpdateMenuItemArgs struct {
	ItemId int64
	Spec   apimenu.Spec
}

type UpdateRestaurantArgs struct {
	RestaurantId int64
	Spec         apirest.Spec
}

type UpdateOrderStatusArgs struct {
	OrderId int64
	Status  apiorders.Status
}

func New(t *testing.T) *mockFeastClient {
	return &mockFeastClient{t: t}
}

type mockFeastClient struct {
	t    *testing.T
	Impl struct {
		Login              func(ctx context.Context, req auth.LoginRequest) (auth.Identity, error)
		Register           func(ctx context.Context, req auth.RegisterRequest) (auth.Identity, error)
		GetMe              func(ctx context.Context) (auth.Identity, error)
		FindRestaurants    func(ctx context.Context, search string) ([]apirest.Detail, error)
		GetRestaurant      func(ctx context.Context, restaurantId int64) (apirest.Detail, error)
		MyRestaurants      func(ctx context.Context) ([]apirest.Detail, error)
		RegisterRestaurant func(ctx context.Context, spec apirest.Spec) (apirest.Detail, error)
		UpdateRestaurant   func(ctx context.Context, restaurantId int64, spec apirest.Spec) (apirest.Detail, error)
		ToggleRestaurant   func(ctx context.Context, restaurantId int64) (apirest.Detail, error)
		GetMenu            func(ctx context.Context, restaurantId int64) ([]apimenu.Detail, error)
		AddMenuItem        func(ctx context.Context, restaurantId int64, spec apimenu.Spec) (apimenu.Detail, error)
		UpdateMenuItem     func(ctx context.Context, itemId int64, spec apimenu.Spec) (apimenu.Detail, error)
		ToggleMenuItem     func(ctx context.Context, itemId int64) (apimenu.Detail, error)
		DeleteMenuItem     func(ctx context.Context, itemId int64) error
		PlaceOrder         func(ctx context.Context, req apiorders.CreateRequest) (apiorders.Detail, error)
		MyOrders           func(ctx context.Context) ([]apiorders.Detail, error)
		GetOrder           func(ctx context.Context, orderId int64) (apiorders.Detail, error)
		RestaurantOrders   func(ctx context.Context, restaurantId int64) ([]apiorders.Detail, error)
		AllOrders          func(ctx context.Context) ([]apiorders.Detail, error)
		AgentOrders        func(ctx context.Context) ([]apiorders.Detail, error)
		UpdateOrderStatus  func(ctx context.Context, orderId int64, status apiorders.Status) (apiorders.Detail, error)
		CancelOrder        func(ctx context.Context, orderId int64) (apiorders.Detail, error)
		PostReview         func(ctx context.Context, req apireviews.CreateRequest) (apireviews.Detail, error)
		RestaurantReviews  func(ctx context.Context, restaurantId int64) ([]apireviews.Detail, error)
	}
	Calls struct {
		Login              []auth.LoginRequest
		Register           []auth.RegisterRequest
		GetMe              int
		FindRestaurants    []string
		GetRestaurant      []int64
		MyRestaurants      int
		RegisterRestaurant []apirest.Spec
		UpdateRestaurant   []UpdateRestaurantArgs
		ToggleRestaurant   []int64
		GetMenu            []int64
		AddMenuItem        []AddMenuItemArgs
		UpdateMenuItem     []UpdateMenuItemArgs
		ToggleMenuItem     []int64
		DeleteMenuItem     []int64
		PlaceOrder         []apiorders.CreateRequest
		MyOrders           int
		GetOrder           []int64
		RestaurantOrders   []int64
		AllOrders          int
		AgentOrders        int
		UpdateOrderStatus  []UpdateOrderStatusArgs
		CancelOrder        []int64
		PostReview         []apireviews.CreateRequest
		RestaurantReviews  []int64
	}
}

var _ rest.FeastClient = &mockFeastClient{}

func (m *mockFeastClient) Login(ctx context.Context, req auth.LoginRequest) (auth.Identity, error) {
	m.t.Helper()

	m.Calls.Login = append(m.Calls.Login, req)
	if m.Impl.Login == nil {
		m.t.Fatal("Login is not ready to be called")
	}
	return m.Impl.Login(ctx, req)
}

func (m *mockFeastClient) Register(ctx context.Context, req auth.RegisterRequest) (auth.Identity, error) {
	m.t.Helper()

	m.Calls.Register = append(m.Calls.Register, req)
	if m.Impl.Register == nil {
		m.t.Fatal("Register is not ready to be called")
	}
	return m.Impl.Register(ctx, req)
}

func (m *mockFeastClient) GetMe(ctx context.Context) (auth.Identity, error) {
	m.t.Helper()

	m.Calls.GetMe += 1
	if m.Impl.GetMe == nil {
		m.t.Fatal("GetMe is not ready to be called")
	}
	return m.Impl.GetMe(ctx)
}

func (m *mockFeastClient) FindRestaurants(ctx context.Context, search string) ([]apirest.Detail, error) {
	m.t.Helper()

	m.Calls.FindRestaurants = append(m.Calls.FindRestaurants, search)
	if m.Impl.FindRestaurants == nil {
		m.t.Fatal("FindRestaurants is not ready to be called")
	}
	return m.Impl.FindRestaurants(ctx, search)
}

func (m *mockFeastClient) GetRestaurant(ctx context.Context, restaurantId int64) (apirest.Detail, error) {
	m.t.Helper()

	m.Calls.GetRestaurant = append(m.Calls.GetRestaurant, restaurantId)
	if m.Impl.GetRestaurant == nil {
		m.t.Fatal("GetRestaurant is not ready to be called")
	}
	return m.Impl.GetRestaurant(ctx, restaurantId)
}

func (m *mockFeastClient) MyRestaurants(ctx context.Context) ([]apirest.Detail, error) {
	m.t.Helper()

	m.Calls.MyRestaurants += 1
	if m.Impl.MyRestaurants == nil {
		m.t.Fatal("MyRestaurants is not ready to be called")
	}
	return m.Impl.MyRestaurants(ctx)
}

func (m *mockFeastClient) RegisterRestaurant(ctx context.Context, spec apirest.Spec) (apirest.Detail, error) {
	m.t.Helper()

	m.Calls.RegisterRestaurant = append(m.Calls.RegisterRestaurant, spec)
	if m.Impl.RegisterRestaurant == nil {
		m.t.Fatal("RegisterRestaurant is not ready to be called")
	}
	return m.Impl.RegisterRestaurant(ctx, spec)
}

func (m *mockFeastClient) UpdateRestaurant(ctx context.Context, restaurantId int64, spec apirest.Spec) (apirest.Detail, error) {
	m.t.Helper()

	m.Calls.UpdateRestaurant = append(
		m.Calls.UpdateRestaurant,
		UpdateRestaurantArgs{RestaurantId: restaurantId, Spec: spec},
	)
	if m.Impl.UpdateRestaurant == nil {
		m.t.Fatal("UpdateRestaurant is not ready to be called")
	}
	return m.Impl.UpdateRestaurant(ctx, restaurantId, spec)
}

func (m *mockFeastClient) ToggleRestaurant(ctx context.Context, restaurantId int64) (apirest.Detail, error) {
	m.t.Helper()

	m.Calls.ToggleRestaurant = append(m.Calls.ToggleRestaurant, restaurantId)
	if m.Impl.ToggleRestaurant == nil {
		m.t.Fatal("ToggleRestaurant is not ready to be called")
	}
	return m.Impl.ToggleRestaurant(ctx, restaurantId)
}

func (m *mockFeastClient) GetMenu(ctx context.Context, restaurantId int64) ([]apimenu.Detail, error) {
	m.t.Helper()

	m.Calls.GetMenu = append(m.Calls.GetMenu, restaurantId)
	if m.Impl.GetMenu == nil {
		m.t.Fatal("GetMenu is not ready to be called")
	}
	return m.Impl.GetMenu(ctx, restaurantId)
}

func (m *mockFeastClient) AddMenuItem(ctx context.Context, restaurantId int64, spec apimenu.Spec) (apimenu.Detail, error) {
	m.t.Helper()

	m.Calls.AddMenuItem = append(
		m.Calls.AddMenuItem,
		AddMenuItemArgs{RestaurantId: restaurantId, Spec: spec},
	)
	if m.Impl.AddMenuItem == nil {
		m.t.Fatal("AddMenuItem is not ready to be called")
	}
	return m.Impl.AddMenuItem(ctx, restaurantId, spec)
}

func (m *mockFeastClient) UpdateMenuItem(ctx context.Context, itemId int64, spec apimenu.Spec) (apimenu.Detail, error) {
	m.t.Helper()

	m.Calls.UpdateMenuItem = append(
		m.Calls.UpdateMenuItem,
		UpdateMenuItemArgs{ItemId: itemId, Spec: spec},
	)
	if m.Impl.UpdateMenuItem == nil {
		m.t.Fatal("UpdateMenuItem is not ready to be called")
	}
	return m.Impl.UpdateMenuItem(ctx, itemId, spec)
}

func (m *mockFeastClient) ToggleMenuItem(ctx context.Context, itemId int64) (apimenu.Detail, error) {
	m.t.Helper()

	m.Calls.ToggleMenuItem = append(m.Calls.ToggleMenuItem, itemId)
	if m.Impl.ToggleMenuItem == nil {
		m.t.Fatal("ToggleMenuItem is not ready to be called")
	}
	return m.Impl.ToggleMenuItem(ctx, itemId)
}

func (m *mockFeastClient) DeleteMenuItem(ctx context.Context, itemId int64) error {
	m.t.Helper()

	m.Calls.DeleteMenuItem = append(m.Calls.DeleteMenuItem, itemId)
	if m.Impl.DeleteMenuItem == nil {
		m.t.Fatal("DeleteMenuItem is not ready to be called")
	}
	return m.Impl.DeleteMenuItem(ctx, itemId)
}

func (m *mockFeastClient) PlaceOrder(ctx context.Context, req apiorders.CreateRequest) (apiorders.Detail, error) {
	m.t.Helper()

	m.Calls.PlaceOrder = append(m.Calls.PlaceOrder, req)
	if m.Impl.PlaceOrder == nil {
		m.t.Fatal("PlaceOrder is not ready to be called")
	}
	return m.Impl.PlaceOrder(ctx, req)
}

func (m *mockFeastClient) MyOrders(ctx context.Context) ([]apiorders.Detail, error) {
	m.t.Helper()

	m.Calls.MyOrders += 1
	if m.Impl.MyOrders == nil {
		m.t.Fatal("MyOrders is not ready to be called")
	}
	return m.Impl.MyOrders(ctx)
}

func (m *mockFeastClient) GetOrder(ctx context.Context, orderId int64) (apiorders.Detail, error) {
	m.t.Helper()

	m.Calls.GetOrder = append(m.Calls.GetOrder, orderId)
	if m.Impl.GetOrder == nil {
		m.t.Fatal("GetOrder is not ready to be called")
	}
	return m.Impl.GetOrder(ctx, orderId)
}

func (m *mockFeastClient) RestaurantOrders(ctx context.Context, restaurantId int64) ([]apiorders.Detail, error) {
	m.t.Helper()

	m.Calls.RestaurantOrders = append(m.Calls.RestaurantOrders, restaurantId)
	if m.Impl.RestaurantOrders == nil {
		m.t.Fatal("RestaurantOrders is not ready to be called")
	}
	return m.Impl.RestaurantOrders(ctx, restaurantId)
}

func (m *mockFeastClient) AllOrders(ctx context.Context) ([]apiorders.Detail, error) {
	m.t.Helper()

	m.Calls.AllOrders += 1
	if m.Impl.AllOrders == nil {
		m.t.Fatal("AllOrders is not ready to be called")
	}
	return m.Impl.AllOrders(ctx)
}

func (m *mockFeastClient) AgentOrders(ctx context.Context) ([]apiorders.Detail, error) {
	m.t.Helper()

	m.Calls.AgentOrders += 1
	if m.Impl.AgentOrders == nil {
		m.t.Fatal("AgentOrders is not ready to be called")
	}
	return m.Impl.AgentOrders(ctx)
}

func (m *mockFeastClient) UpdateOrderStatus(ctx context.Context, orderId int64, status apiorders.Status) (apiorders.Detail, error) {
	m.t.Helper()

	m.Calls.UpdateOrderStatus = append(
		m.Calls.UpdateOrderStatus,
		UpdateOrderStatusArgs{OrderId: orderId, Status: status},
	)
	if m.Impl.UpdateOrderStatus == nil {
		m.t.Fatal("UpdateOrderStatus is not ready to be called")
	}
	return m.Impl.UpdateOrderStatus(ctx, orderId, status)
}

func (m *mockFeastClient) CancelOrder(ctx context.Context, orderId int64) (apiorders.Detail, error) {
	m.t.Helper()

	m.Calls.CancelOrder = append(m.Calls.CancelOrder, orderId)
	if m.Impl.CancelOrder == nil {
		m.t.Fatal("CancelOrder is not ready to be called")
	}
	return m.Impl.CancelOrder(ctx, orderId)
}

func (m *mockFeastClient) PostReview(ctx context.Context, req apireviews.CreateRequest) (apireviews.Detail, error) {
	m.t.Helper()

	m.Calls.PostReview = append(m.Calls.PostReview, req)
	if m.Impl.PostReview == nil {
		m.t.Fatal("PostReview is not ready to be called")
	}
	return m.Impl.PostReview(ctx, req)
}

func (m *mockFeastClient) RestaurantReviews(ctx context.Context, restaurantId int64) ([]apireviews.Detail, error) {
	m.t.Helper()

	m.Calls.RestaurantReviews = append(m.Calls.RestaurantReviews, restaurantId)
	if m.Impl.RestaurantReviews == nil {
		m.t.Fatal("RestaurantReviews is not ready to be called")
	}
	return m.Impl.RestaurantReviews(ctx, restaurantId)
}
