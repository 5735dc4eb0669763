package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-service/internal/entity"
	"pos-service/internal/service"
)

const testSecret = "test-secret"

// In-memory stores; the SQL repositories satisfy the same interfaces.

type fakeUserStore struct {
	users  []*entity.User
	nextID int
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id int) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserStore) ListUsers(_ context.Context) ([]*entity.User, error) {
	return f.users, nil
}

type fakeOrderStore struct {
	pending         []*entity.Order
	nextContainerID int
}

func (f *fakeOrderStore) ListByPayment(_ context.Context, payment, orderType string) ([]*entity.Order, error) {
	out := []*entity.Order{}
	for _, o := range f.pending {
		if o.Payment != payment {
			continue
		}
		if orderType != "" && o.OrderType != orderType {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderStore) CreateOrder(_ context.Context, order *entity.Order, containers []*entity.Container) error {
	order.Containers = make(map[string]*entity.Container, len(containers))
	for _, c := range containers {
		f.nextContainerID++
		c.ContainerID = f.nextContainerID
		order.Containers[entity.ContainerKey(c.ContainerID)] = c
	}
	f.pending = append(f.pending, order)
	return nil
}

type fakeMenuStore struct {
	items  []*entity.MenuItem
	nextID int
}

func (f *fakeMenuStore) ListMenuItems(_ context.Context) ([]*entity.MenuItem, error) {
	return f.items, nil
}

func (f *fakeMenuStore) CreateMenuItem(_ context.Context, foodName string, price float64, packagingType string) (*entity.MenuItem, error) {
	f.nextID++
	item := &entity.MenuItem{ID: f.nextID, FoodName: foodName, Price: entity.Price(price), PackagingType: packagingType}
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeMenuStore) DeleteMenuItem(_ context.Context, itemID int) error {
	for i, item := range f.items {
		if item.ID == itemID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type testServer struct {
	e      *echo.Echo
	orders *fakeOrderStore
	menu   *fakeMenuStore
}

func newTestServer() *testServer {
	orders := &fakeOrderStore{}
	menu := &fakeMenuStore{}

	authService := service.NewAuthService(&fakeUserStore{}, testSecret)
	orderService := service.NewOrderService(orders, nil)
	menuService := service.NewMenuService(menu, nil)

	e := echo.New()
	RegisterRoutes(e,
		NewAuthHandler(authService),
		NewOrderHandler(orderService),
		NewMenuHandler(menuService),
		testSecret,
	)

	return &testServer{e: e, orders: orders, menu: menu}
}

func (ts *testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const signupBody = `{"username":"jkorm","email":"jkorm@example.com","password":"hunter22"}`

func TestSignup(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(http.MethodPost, "/auth/signup", signupBody, nil)
	require.Equal(t, 201, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "jkorm", user["username"])
	assert.Equal(t, "jkorm@example.com", user["email"])

	// Duplicate username.
	rec = ts.do(http.MethodPost, "/auth/signup", signupBody, nil)
	assert.Equal(t, 400, rec.Code)

	// Missing fields.
	rec = ts.do(http.MethodPost, "/auth/signup", `{"username":"x"}`, nil)
	assert.Equal(t, 400, rec.Code)
}

func TestSignupPreflight(t *testing.T) {
	ts := newTestServer()
	rec := ts.do(http.MethodOptions, "/auth/signup", "", nil)
	assert.Equal(t, 204, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestLoginAndVerify(t *testing.T) {
	ts := newTestServer()
	require.Equal(t, 201, ts.do(http.MethodPost, "/auth/signup", signupBody, nil).Code)

	rec := ts.do(http.MethodPost, "/auth/login", `{"username":"jkorm","password":"hunter22"}`, nil)
	require.Equal(t, 200, rec.Code)
	token := decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)

	rec = ts.do(http.MethodGet, "/auth/verify", "", map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, 200, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["valid"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "jkorm", user["username"])

	rec = ts.do(http.MethodGet, "/auth/verify", "", map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, 401, rec.Code)

	rec = ts.do(http.MethodGet, "/auth/verify", "", nil)
	assert.Equal(t, 401, rec.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	ts := newTestServer()
	require.Equal(t, 201, ts.do(http.MethodPost, "/auth/signup", signupBody, nil).Code)

	rec := ts.do(http.MethodPost, "/auth/login", `{"username":"jkorm","password":"wrong"}`, nil)
	assert.Equal(t, 401, rec.Code)

	rec = ts.do(http.MethodPost, "/auth/login", `{"username":"ghost","password":"wrong"}`, nil)
	assert.Equal(t, 401, rec.Code)
}

func TestMe(t *testing.T) {
	ts := newTestServer()
	rec := ts.do(http.MethodPost, "/auth/signup", signupBody, nil)
	require.Equal(t, 201, rec.Code)
	token := decodeBody(t, rec)["token"].(string)

	rec = ts.do(http.MethodGet, "/auth/me", "", map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "jkorm", decodeBody(t, rec)["username"])
}

func TestListUsers(t *testing.T) {
	ts := newTestServer()
	require.Equal(t, 201, ts.do(http.MethodPost, "/auth/signup", signupBody, nil).Code)

	rec := ts.do(http.MethodGet, "/users", "", nil)
	require.Equal(t, 200, rec.Code)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "jkorm", users[0]["username"])
	assert.NotContains(t, users[0], "password_hash")
}

const submitBody = `{
	"order_type": "customer_online",
	"location": "Accra Mall",
	"containers": [
		{"container_number": 1, "packaging_type": "box", "message": "extra spicy",
		 "food_items": [{"food_name": "jollof", "price": 12.5}, {"food_name": "kelewele", "price": "4"}]},
		{"container_number": 2, "packaging_type": "bowl",
		 "food_items": [{"food_name": "waakye", "price": 9.99}, {"food_name": "shito", "price": 1.25}]}
	]
}`

func TestSubmitOrderAndCards(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(http.MethodPost, "/api/submit-order", submitBody, nil)
	require.Equal(t, 201, rec.Code)
	orderID := decodeBody(t, rec)["order_id"].(string)
	assert.True(t, strings.HasPrefix(orderID, "ord-"))

	rec = ts.do(http.MethodGet, "/cards", "", nil)
	require.Equal(t, 200, rec.Code)

	var cards []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	require.Len(t, cards, 1)

	card := cards[0]
	assert.Equal(t, orderID, card["order_id"])
	assert.Equal(t, "pending", card["Payment"])

	containers := card["containers"].(map[string]interface{})
	require.Len(t, containers, 2)
	first := containers["1"].(map[string]interface{})
	assert.Equal(t, "box", first["PackagingType"])
	items := first["FoodItems"].([]interface{})
	require.Len(t, items, 2)
	assert.Equal(t, "12.50", items[0].(map[string]interface{})["Price"])

	// /api/orders carries the same pending orders for the online type.
	rec = ts.do(http.MethodGet, "/api/orders", "", nil)
	require.Equal(t, 200, rec.Code)
	var apiOrders []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiOrders))
	assert.Len(t, apiOrders, 1)
}

func TestSubmitOrderValidation(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(http.MethodPost, "/api/submit-order", `{"location":"nowhere"}`, nil)
	assert.Equal(t, 400, rec.Code)

	bad := strings.Replace(submitBody, "12.5", `"free"`, 1)
	rec = ts.do(http.MethodPost, "/api/submit-order", bad, nil)
	assert.Equal(t, 400, rec.Code)
	assert.Empty(t, ts.orders.pending, "a rejected submission must persist nothing")
}

func TestMenuItems(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(http.MethodPost, "/api/menu-items", `{"food_name":"banku","price":"15","packaging_type":"wrap"}`, nil)
	require.Equal(t, 201, rec.Code)
	created := decodeBody(t, rec)
	assert.Equal(t, "15.00", created["price"])

	rec = ts.do(http.MethodPost, "/api/menu-items", `{"food_name":"banku","price":"-2"}`, nil)
	assert.Equal(t, 400, rec.Code)

	rec = ts.do(http.MethodGet, "/api/menu-items", "", nil)
	require.Equal(t, 200, rec.Code)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)

	rec = ts.do(http.MethodDelete, "/api/menu-items/999", "", nil)
	assert.Equal(t, 404, rec.Code)

	id := int(items[0]["id"].(float64))
	rec = ts.do(http.MethodDelete, "/api/menu-items/"+strconv.Itoa(id), "", nil)
	assert.Equal(t, 200, rec.Code)
	assert.Empty(t, ts.menu.items)
}
