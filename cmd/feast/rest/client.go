package rest

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/feastworks/feast-api-types/auth"
	apimenu "github.com/feastworks/feast-api-types/menu"
	apiorders "github.com/feastworks/feast-api-types/orders"
	apirest "github.com/feastworks/feast-api-types/restaurants"
	apireviews "github.com/feastworks/feast-api-types/reviews"
	kprof "github.com/feastworks/feast/cmd/feast/config/profiles"
	"github.com/feastworks/feast/pkg/utils"
)

// ErrUnauthorized is returned when the server rejects the bearer token (401).
//
// On this error the stored session is stale; the caller should erase it and
// have the user log in again.
var ErrUnauthorized = errors.New("authentication expired or rejected")

// FeastClient is the typed surface of the ordering platform API.
type FeastClient interface {
	// Login exchanges credentials for an identity + bearer token.
	//
	// It does not store anything; persisting the session is the caller's job.
	Login(ctx context.Context, req auth.LoginRequest) (auth.Identity, error)

	// Register creates an account and returns its identity + bearer token.
	Register(ctx context.Context, req auth.RegisterRequest) (auth.Identity, error)

	// GetMe fetches the identity behind the current bearer token.
	GetMe(ctx context.Context) (auth.Identity, error)

	// FindRestaurants lists restaurants, optionally filtered by a search term.
	FindRestaurants(ctx context.Context, search string) ([]apirest.Detail, error)

	// GetRestaurant fetches one restaurant by id.
	GetRestaurant(ctx context.Context, restaurantId int64) (apirest.Detail, error)

	// MyRestaurants lists restaurants owned by the current user.
	MyRestaurants(ctx context.Context) ([]apirest.Detail, error)

	// RegisterRestaurant creates a restaurant owned by the current user.
	RegisterRestaurant(ctx context.Context, spec apirest.Spec) (apirest.Detail, error)

	// UpdateRestaurant overwrites a restaurant's spec.
	UpdateRestaurant(ctx context.Context, restaurantId int64, spec apirest.Spec) (apirest.Detail, error)

	// ToggleRestaurant flips a restaurant open/closed.
	ToggleRestaurant(ctx context.Context, restaurantId int64) (apirest.Detail, error)

	// GetMenu lists the menu of a restaurant.
	GetMenu(ctx context.Context, restaurantId int64) ([]apimenu.Detail, error)

	// AddMenuItem creates a menu item in a restaurant.
	AddMenuItem(ctx context.Context, restaurantId int64, spec apimenu.Spec) (apimenu.Detail, error)

	// UpdateMenuItem overwrites a menu item's spec.
	UpdateMenuItem(ctx context.Context, itemId int64, spec apimenu.Spec) (apimenu.Detail, error)

	// ToggleMenuItem flips a menu item available/unavailable.
	ToggleMenuItem(ctx context.Context, itemId int64) (apimenu.Detail, error)

	// DeleteMenuItem removes a menu item.
	DeleteMenuItem(ctx context.Context, itemId int64) error

	// PlaceOrder submits an order draft. The server prices it and returns the
	// authoritative order.
	PlaceOrder(ctx context.Context, req apiorders.CreateRequest) (apiorders.Detail, error)

	// MyOrders lists the current user's orders, newest first.
	MyOrders(ctx context.Context) ([]apiorders.Detail, error)

	// GetOrder fetches one order by id.
	GetOrder(ctx context.Context, orderId int64) (apiorders.Detail, error)

	// RestaurantOrders lists the orders of a restaurant the current user owns.
	RestaurantOrders(ctx context.Context, restaurantId int64) ([]apiorders.Detail, error)

	// AllOrders lists every order on the platform (admin only).
	AllOrders(ctx context.Context) ([]apiorders.Detail, error)

	// AgentOrders lists orders assigned to the current delivery agent.
	AgentOrders(ctx context.Context) ([]apiorders.Detail, error)

	// UpdateOrderStatus requests a transition and returns the updated order.
	// The server enforces the lifecycle; the client never assumes the
	// transition happened without reading the response.
	UpdateOrderStatus(ctx context.Context, orderId int64, status apiorders.Status) (apiorders.Detail, error)

	// CancelOrder cancels a PENDING order of the current customer.
	CancelOrder(ctx context.Context, orderId int64) (apiorders.Detail, error)

	// PostReview adds a review for a restaurant.
	PostReview(ctx context.Context, req apireviews.CreateRequest) (apireviews.Detail, error)

	// RestaurantReviews lists the reviews of a restaurant.
	RestaurantReviews(ctx context.Context, restaurantId int64) ([]apireviews.Detail, error)
}

type client struct {
	httpclient *http.Client
	api        string
	token      string
}

// NewClient creates a FeastClient for a Profile.
//
// # Return
//
// - FeastClient: created client. When the profile carries a session, every
// request is sent with its bearer token.
//
// - error: if the given profile is invalid, ErrProfileInvalid is returned.
func NewClient(prof *kprof.Profile) (FeastClient, error) {
	if err := prof.Verify(); err != nil {
		return nil, err
	}
	httpclient := new(http.Client)

	if prof.Cert.CA != "" {
		hc, err := trustCa(httpclient, []string{prof.Cert.CA})
		if err != nil {
			return nil, err
		}
		httpclient = hc
	}

	c := &client{
		httpclient: httpclient,
		api:        strings.TrimSuffix(prof.ApiRoot, "/"),
	}
	if prof.Session != nil {
		c.token = prof.Session.Token
	}

	return c, nil
}

// build URL with path
func (c *client) apipath(path ...string) string {
	path = utils.Map(path, func(p string) string {
		return strings.TrimPrefix(strings.TrimSuffix(p, "/"), "/")
	})

	return strings.Join(append([]string{c.api}, path...), "/")
}

// newRequest builds a request with the standard headers: JSON content type,
// a request id, and the bearer token when the client has one.
func (c *client) newRequest(
	ctx context.Context, method string, url string, body any,
) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func trustCa(hc *http.Client, cacerts []string) (*http.Client, error) {
	if len(cacerts) <= 0 {
		return hc, nil
	}

	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}

	tran, ok := hc.Transport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("failed to add ca cert")
	}
	tran = tran.Clone()

	tcc := tran.TLSClientConfig.Clone()
	if tcc == nil {
		tcc = &tls.Config{}
	}

	rootcas := tcc.RootCAs
	if rootcas == nil {
		rootcas = x509.NewCertPool()
		tcc.RootCAs = rootcas
	}
	for _, ca := range cacerts {
		bin, err := base64.StdEncoding.DecodeString(ca)
		if err != nil {
			return nil, err
		}

		if !rootcas.AppendCertsFromPEM(bin) {
			return nil, fmt.Errorf("failed to add cert")
		}
	}

	tran.TLSClientConfig = tcc
	hc.Transport = tran
	return hc, nil
}
