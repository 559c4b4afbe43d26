package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"store-api/dto"
	"store-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}, &models.Order{}, &models.OrderItem{}))

	return setupRouter(db), db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeData[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestStoreAPI_EndToEnd(t *testing.T) {
	router, _ := setupTestRouter(t)

	// An empty store has no orders to list.
	recorder := doJSON(t, router, http.MethodGet, "/v1/orders/", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/v1/users/", gin.H{
		"userName": "alice",
		"email":    "a@x.com",
		"password": "supersecret",
		"fullName": "Alice Example",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	user := decodeData[dto.UserResponse](t, recorder)
	assert.Equal(t, "alice", user.UserName)
	assert.NotContains(t, recorder.Body.String(), "password")
	assert.NotContains(t, recorder.Body.String(), "supersecret")

	recorder = doJSON(t, router, http.MethodPost, "/v1/users/", gin.H{
		"userName": "alice",
		"email":    "other@x.com",
		"password": "supersecret",
		"fullName": "Another Alice",
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/v1/users/", gin.H{
		"userName": "alice2",
		"email":    "a@x.com",
		"password": "supersecret",
		"fullName": "Another Alice",
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/v1/items/", gin.H{
		"name": "Notebook", "description": "A5 notebook", "price": 9.99,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	firstItem := decodeData[dto.ItemResponse](t, recorder)

	recorder = doJSON(t, router, http.MethodPost, "/v1/items/", gin.H{
		"name": "Pen", "description": "Ballpoint pen", "price": 5.00,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	secondItem := decodeData[dto.ItemResponse](t, recorder)

	recorder = doJSON(t, router, http.MethodPost, "/v1/orders/", gin.H{
		"userId": user.UserID,
		"items": []gin.H{
			{"itemId": firstItem.ItemID, "quantity": 2},
			{"itemId": secondItem.ItemID},
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	order := decodeData[dto.OrderResponse](t, recorder)

	assert.Equal(t, user.UserID, order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 1, order.Items[1].Quantity)
	for _, orderItem := range order.Items {
		assert.Equal(t, order.OrderID, orderItem.OrderID)
	}

	recorder = doJSON(t, router, http.MethodGet, "/v1/orders/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	fetched := decodeData[dto.OrderResponse](t, recorder)
	assert.Equal(t, order.OrderID, fetched.OrderID)
	assert.Equal(t, order.Items, fetched.Items)

	recorder = doJSON(t, router, http.MethodGet, "/v1/orders/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	orders := decodeData[[]dto.OrderResponse](t, recorder)
	require.Len(t, orders, 1)
	assert.Equal(t, order.OrderID, orders[0].OrderID)
}

func TestStoreAPI_NotFoundBoundaries(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, path := range []string{"/v1/orders/999", "/v1/items/999", "/v1/users/999"} {
		recorder := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code, path)
	}

	recorder := doJSON(t, router, http.MethodGet, "/v1/orders/abc", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestStoreAPI_CreateOrderUnknownReferences(t *testing.T) {
	router, db := setupTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/v1/orders/", gin.H{
		"userId": 1,
		"items":  []gin.H{{"itemId": 1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	user := models.User{UserName: "bob", Email: "b@x.com", FullName: "Bob", HashedPassword: "x"}
	require.NoError(t, db.Create(&user).Error)

	recorder = doJSON(t, router, http.MethodPost, "/v1/orders/", gin.H{
		"userId": user.ID,
		"items":  []gin.H{{"itemId": 999, "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestStoreAPI_Login(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	router, _ := setupTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/v1/users/", gin.H{
		"userName": "alice",
		"email":    "a@x.com",
		"password": "supersecret",
		"fullName": "Alice Example",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/v1/auth/login", gin.H{
		"userName": "alice",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &login))
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "bearer", login.TokenType)

	recorder = doJSON(t, router, http.MethodPost, "/v1/auth/login", gin.H{
		"userName": "alice",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
