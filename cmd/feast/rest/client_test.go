package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apierr "github.com/feastworks/feast-api-types/errors"
	"github.com/feastworks/feast-api-types/auth"
	apimenu "github.com/feastworks/feast-api-types/menu"
	apiorders "github.com/feastworks/feast-api-types/orders"
	apirest "github.com/feastworks/feast-api-types/restaurants"
	"github.com/feastworks/feast-api-types/misc/rfctime"
	kprof "github.com/feastworks/feast/cmd/feast/config/profiles"
	krst "github.com/feastworks/feast/cmd/feast/rest"
	"github.com/feastworks/feast/pkg/utils/cmp"
	"github.com/feastworks/feast/pkg/utils/try"
)

func TestLogin(t *testing.T) {
	t.Run("when server accepts the credential, it returns the identity", func(t *testing.T) {
		expected := auth.Identity{
			Token:  "issued-token",
			UserId: 42,
			Name:   "Tastee Testa",
			Email:  "tastee@example.com",
			Role:   auth.Customer,
		}

		var request *http.Request
		var reqBody auth.LoginRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			request = r
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				t.Fatal(err)
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(expected)
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL + "/api"}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		actual := try.To(testee.Login(
			context.Background(),
			auth.LoginRequest{Email: "tastee@example.com", Password: "s3cret"},
		)).OrFatal(t)

		if !actual.Equal(expected) {
			t.Errorf("identity is wrong: (actual, expected) = (%+v, %+v)", actual, expected)
		}
		if request.Method != http.MethodPost {
			t.Errorf("request is not POST /api/auth/login (actual method = %s)", request.Method)
		}
		if request.URL.Path != "/api/auth/login" {
			t.Errorf("request is not POST /api/auth/login (actual path = %s)", request.URL.Path)
		}
		if reqBody.Email != "tastee@example.com" || reqBody.Password != "s3cret" {
			t.Errorf("unexpected request body: %+v", reqBody)
		}
		if request.Header.Get("Authorization") != "" {
			t.Errorf("login request should not carry a bearer token")
		}
	})

	t.Run("when server rejects the credential, it returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(apierr.ErrorMessage{Message: "Invalid email or password"})
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL + "/api"}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		if _, err := testee.Login(
			context.Background(),
			auth.LoginRequest{Email: "tastee@example.com", Password: "wrong"},
		); err == nil {
			t.Errorf("no error occured")
		}
	})
}

func TestFindRestaurants(t *testing.T) {
	theory := func(search string, wantQuery string) func(*testing.T) {
		return func(t *testing.T) {
			expected := []apirest.Detail{
				{
					Id: 1, Name: "Mama Napoli", Cuisine: "Italian",
					Rating: 4.5, ReviewCount: 12, Open: true, OwnerId: 7,
				},
				{
					Id: 2, Name: "Spice Route", Cuisine: "Indian",
					Rating: 4.1, ReviewCount: 3, Open: false, OwnerId: 8,
				},
			}

			var request *http.Request
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				request = r
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(expected)
			}))
			defer server.Close()

			profile := kprof.Profile{ApiRoot: server.URL + "/api"}
			testee := try.To(krst.NewClient(&profile)).OrFatal(t)

			actual := try.To(testee.FindRestaurants(context.Background(), search)).OrFatal(t)

			if !cmp.SliceEqWith(actual, expected, apirest.Detail.Equal) {
				t.Errorf("restaurants are wrong: (actual, expected) = (%+v, %+v)", actual, expected)
			}
			if request.URL.Path != "/api/restaurants" {
				t.Errorf("request path is wrong: %s", request.URL.Path)
			}
			if request.URL.Query().Get("search") != wantQuery {
				t.Errorf("search query is wrong: %s", request.URL.RawQuery)
			}
		}
	}

	t.Run("without search word, it queries nothing", theory("", ""))
	t.Run("with search word, it passes the word as query", theory("pizza", "pizza"))
}

func TestPlaceOrder(t *testing.T) {
	t.Run("it POSTs the order with the bearer token and returns the order detail", func(t *testing.T) {
		expected := apiorders.Detail{
			Id:           100,
			RestaurantId: 1,
			Status:       apiorders.Pending,
			OrderItems: []apiorders.ItemDetail{
				{Id: 1000, MenuItemId: 11, MenuItemName: "Margherita", Quantity: 2, Price: 9.5, Subtotal: 19},
			},
			Subtotal:    19,
			DeliveryFee: 2.5,
			TotalAmount: 21.5,
			CreatedAt:   try.To(rfctime.Parse("2025-11-02T19:04:05")).OrFatal(t),
			UpdatedAt:   try.To(rfctime.Parse("2025-11-02T19:04:05")).OrFatal(t),
		}

		var request *http.Request
		var reqBody apiorders.CreateRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			request = r
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				t.Fatal(err)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(expected)
		}))
		defer server.Close()

		profile := kprof.Profile{
			ApiRoot: server.URL + "/api",
			Session: &kprof.Session{Token: "session-token", UserId: 42, Role: auth.Customer},
		}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		order := apiorders.CreateRequest{
			RestaurantId:    1,
			Items:           []apiorders.ItemSpec{{MenuItemId: 11, Quantity: 2}},
			DeliveryAddress: "1 Example St.",
			PaymentMethod:   "CASH",
		}
		actual := try.To(testee.PlaceOrder(context.Background(), order)).OrFatal(t)

		if !actual.Equal(expected) {
			t.Errorf("order is wrong: (actual, expected) = (%+v, %+v)", actual, expected)
		}
		if request.Method != http.MethodPost || request.URL.Path != "/api/orders" {
			t.Errorf("request is not POST /api/orders: %s %s", request.Method, request.URL.Path)
		}
		if request.Header.Get("Authorization") != "Bearer session-token" {
			t.Errorf("bearer token is not sent: %s", request.Header.Get("Authorization"))
		}
		if len(reqBody.Items) != 1 || reqBody.Items[0].MenuItemId != 11 {
			t.Errorf("unexpected request body: %+v", reqBody)
		}
	})

	t.Run("when server responds 401, the error wraps ErrUnauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		profile := kprof.Profile{
			ApiRoot: server.URL + "/api",
			Session: &kprof.Session{Token: "stale-token", UserId: 42, Role: auth.Customer},
		}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		_, err := testee.PlaceOrder(context.Background(), apiorders.CreateRequest{})
		if err == nil {
			t.Fatal("no error occured")
		}
		if !errors.Is(err, krst.ErrUnauthorized) {
			t.Errorf("error does not wrap ErrUnauthorized: %+v", err)
		}
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("it PATCHes /orders/:id/status with the status query", func(t *testing.T) {
		expected := apiorders.Detail{Id: 7, Status: apiorders.Preparing}

		var request *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			request = r
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(expected)
		}))
		defer server.Close()

		profile := kprof.Profile{
			ApiRoot: server.URL + "/api",
			Session: &kprof.Session{Token: "owner-token", UserId: 7, Role: auth.RestaurantOwner},
		}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		actual := try.To(testee.UpdateOrderStatus(
			context.Background(), 7, apiorders.Preparing,
		)).OrFatal(t)

		if !actual.Equal(expected) {
			t.Errorf("order is wrong: (actual, expected) = (%+v, %+v)", actual, expected)
		}
		if request.Method != http.MethodPatch || request.URL.Path != "/api/orders/7/status" {
			t.Errorf("request is not PATCH /api/orders/7/status: %s %s", request.Method, request.URL.Path)
		}
		if request.URL.Query().Get("status") != "PREPARING" {
			t.Errorf("status query is wrong: %s", request.URL.RawQuery)
		}
	})

	t.Run("a server responding with error is given", func(t *testing.T) {
		for _, status := range []int{http.StatusNotFound, http.StatusConflict, http.StatusInternalServerError} {
			t.Run(fmt.Sprintf("when server responding with %d, it returns error", status), func(t *testing.T) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(status)
					json.NewEncoder(w).Encode(apierr.ErrorMessage{Message: "something wrong"})
				}))
				defer server.Close()

				profile := kprof.Profile{ApiRoot: server.URL + "/api"}
				testee := try.To(krst.NewClient(&profile)).OrFatal(t)

				if _, err := testee.UpdateOrderStatus(
					context.Background(), 7, apiorders.Confirmed,
				); err == nil {
					t.Errorf("no error occured")
				}
			})
		}
	})
}

func TestDeleteMenuItem(t *testing.T) {
	t.Run("when server answers with an empty body, it succeeds", func(t *testing.T) {
		var request *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			request = r
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		profile := kprof.Profile{
			ApiRoot: server.URL + "/api",
			Session: &kprof.Session{Token: "owner-token", UserId: 7, Role: auth.RestaurantOwner},
		}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		if err := testee.DeleteMenuItem(context.Background(), 13); err != nil {
			t.Fatal(err)
		}
		if request.Method != http.MethodDelete || request.URL.Path != "/api/menu/13" {
			t.Errorf("request is not DELETE /api/menu/13: %s %s", request.Method, request.URL.Path)
		}
	})

	t.Run("when server responds with error, it returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(apierr.ErrorMessage{Message: "not your restaurant"})
		}))
		defer server.Close()

		profile := kprof.Profile{
			ApiRoot: server.URL + "/api",
			Session: &kprof.Session{Token: "owner-token", UserId: 7, Role: auth.RestaurantOwner},
		}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		if err := testee.DeleteMenuItem(context.Background(), 13); err == nil {
			t.Errorf("no error occured")
		}
	})
}

func TestGetMenu(t *testing.T) {
	t.Run("when server returns the menu, it returns that as is", func(t *testing.T) {
		expected := []apimenu.Detail{
			{
				Id: 11, RestaurantId: 1, Available: true,
				Name: "Margherita", Price: 9.5, Category: "Pizza", Vegetarian: true,
			},
			{
				Id: 12, RestaurantId: 1, Available: false,
				Name: "Diavola", Price: 11, Category: "Pizza",
			},
		}

		var request *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			request = r
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(expected)
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL + "/api"}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		actual := try.To(testee.GetMenu(context.Background(), 1)).OrFatal(t)

		if !cmp.SliceEqWith(actual, expected, apimenu.Detail.Equal) {
			t.Errorf("menu is wrong: (actual, expected) = (%+v, %+v)", actual, expected)
		}
		if request.URL.Path != "/api/menu/restaurant/1" {
			t.Errorf("request path is wrong: %s", request.URL.Path)
		}
	})
}
