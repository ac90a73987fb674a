package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout-service/apperrors"
	"checkout-service/models"
	"checkout-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeOrderService struct {
	createFn func(ctx context.Context, amount int64) (*models.Order, *apperrors.Error)
	verifyFn func(ctx context.Context, req *services.VerifyPaymentRequest) (*models.Order, *apperrors.Error)

	createCalls int
	verifyCalls int
	lastVerify  *services.VerifyPaymentRequest
}

func (f *fakeOrderService) Create(ctx context.Context, amount int64) (*models.Order, *apperrors.Error) {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(ctx, amount)
	}
	return sampleOrder(), nil
}

func (f *fakeOrderService) GetAll(ctx context.Context) ([]models.Order, *apperrors.Error) {
	return []models.Order{*sampleOrder()}, nil
}

func (f *fakeOrderService) GetByID(ctx context.Context, id string) (*models.Order, *apperrors.Error) {
	if id == "missing" {
		return nil, apperrors.NotFound("order not found")
	}
	return sampleOrder(), nil
}

func (f *fakeOrderService) GetByOrderID(ctx context.Context, orderID string) (*models.Order, *apperrors.Error) {
	if orderID == "order_missing" {
		return nil, apperrors.NotFound("order not found")
	}
	return sampleOrder(), nil
}

func (f *fakeOrderService) Update(ctx context.Context, id string, req *services.UpdateOrderRequest) (*models.Order, *apperrors.Error) {
	if id == "missing" {
		return nil, apperrors.NotFound("order not found")
	}
	return sampleOrder(), nil
}

func (f *fakeOrderService) Delete(ctx context.Context, id string) (*models.Order, *apperrors.Error) {
	return sampleOrder(), nil
}

func (f *fakeOrderService) VerifyPayment(ctx context.Context, req *services.VerifyPaymentRequest) (*models.Order, *apperrors.Error) {
	f.verifyCalls++
	f.lastVerify = req
	if f.verifyFn != nil {
		return f.verifyFn(ctx, req)
	}
	paid := sampleOrder()
	paid.Status = models.OrderPaid
	paid.PaymentStatus = models.PaymentCompleted
	paid.PaymentID = req.PaymentID
	return paid, nil
}

func sampleOrder() *models.Order {
	return &models.Order{
		ID:            primitive.NewObjectID(),
		OrderID:       "order_ABC",
		Amount:        49900,
		Currency:      "INR",
		Status:        models.OrderCreated,
		PaymentStatus: models.PaymentPending,
	}
}

func newTestRouter(svc services.OrderAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	oc := NewOrderController(svc, zap.NewNop())
	r.POST("/create", oc.CreateOrder)
	r.GET("/getall", oc.GetAllOrders)
	r.GET("/getbyid/:id", oc.GetOrderByID)
	r.GET("/getbyorderid/:orderId", oc.GetOrderByOrderID)
	r.PUT("/update/:id", oc.UpdateOrder)
	r.DELETE("/delete/:id", oc.DeleteOrder)
	r.POST("/verify", oc.VerifyPayment)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderEndpoint(t *testing.T) {
	svc := &fakeOrderService{}
	r := newTestRouter(svc)

	rec := postJSON(t, r, "/create", map[string]interface{}{"amount": 49900})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, svc.createCalls)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "order_ABC", order.OrderID)
	assert.Equal(t, models.OrderCreated, order.Status)
}

func TestCreateOrderEndpointRejectsBadBody(t *testing.T) {
	svc := &fakeOrderService{}
	r := newTestRouter(svc)

	for _, body := range []map[string]interface{}{
		{},
		{"amount": 0},
		{"amount": -5},
		{"amount": "lots"},
	} {
		rec := postJSON(t, r, "/create", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.Equal(t, 0, svc.createCalls)
}

func TestCreateOrderEndpointGatewayFailure(t *testing.T) {
	svc := &fakeOrderService{
		createFn: func(ctx context.Context, amount int64) (*models.Order, *apperrors.Error) {
			return nil, apperrors.Gateway(assert.AnError)
		},
	}
	r := newTestRouter(svc)

	rec := postJSON(t, r, "/create", map[string]interface{}{"amount": 49900})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetAllOrdersEndpoint(t *testing.T) {
	r := newTestRouter(&fakeOrderService{})

	req := httptest.NewRequest(http.MethodGet, "/getall", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)
}

func TestGetOrderByOrderIDNotFound(t *testing.T) {
	r := newTestRouter(&fakeOrderService{})

	req := httptest.NewRequest(http.MethodGet, "/getbyorderid/order_missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyEndpointSuccess(t *testing.T) {
	svc := &fakeOrderService{}
	r := newTestRouter(svc)

	rec := postJSON(t, r, "/verify", map[string]string{
		"orderId":   "order_ABC",
		"paymentId": "pay_XYZ",
		"signature": "f00d",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, svc.verifyCalls)
	assert.Equal(t, "order_ABC", svc.lastVerify.OrderID)
	assert.Equal(t, "pay_XYZ", svc.lastVerify.PaymentID)

	var resp struct {
		Message string       `json:"message"`
		IsOk    bool         `json:"isOk"`
		Order   models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsOk)
	assert.Equal(t, models.OrderPaid, resp.Order.Status)
	assert.Equal(t, models.PaymentCompleted, resp.Order.PaymentStatus)
}

func TestVerifyEndpointSignatureMismatch(t *testing.T) {
	svc := &fakeOrderService{
		verifyFn: func(ctx context.Context, req *services.VerifyPaymentRequest) (*models.Order, *apperrors.Error) {
			return nil, apperrors.SignatureMismatch()
		},
	}
	r := newTestRouter(svc)

	rec := postJSON(t, r, "/verify", map[string]string{
		"orderId":   "order_ABC",
		"paymentId": "pay_XYZ",
		"signature": "bad",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["isOk"])
	assert.Equal(t, "Payment verification failed", resp["message"])
}

func TestVerifyEndpointOrderNotFound(t *testing.T) {
	svc := &fakeOrderService{
		verifyFn: func(ctx context.Context, req *services.VerifyPaymentRequest) (*models.Order, *apperrors.Error) {
			return nil, apperrors.NotFound("order not found")
		},
	}
	r := newTestRouter(svc)

	rec := postJSON(t, r, "/verify", map[string]string{
		"orderId":   "order_ghost",
		"paymentId": "pay_XYZ",
		"signature": "f00d",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["isOk"])
}

func TestVerifyEndpointRejectsIncompleteBody(t *testing.T) {
	svc := &fakeOrderService{}
	r := newTestRouter(svc)

	rec := postJSON(t, r, "/verify", map[string]string{"orderId": "order_ABC"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.verifyCalls)
}

func TestVerifyEndpointStoreError(t *testing.T) {
	svc := &fakeOrderService{
		verifyFn: func(ctx context.Context, req *services.VerifyPaymentRequest) (*models.Order, *apperrors.Error) {
			return nil, apperrors.Store(assert.AnError)
		},
	}
	r := newTestRouter(svc)

	rec := postJSON(t, r, "/verify", map[string]string{
		"orderId":   "order_ABC",
		"paymentId": "pay_XYZ",
		"signature": "f00d",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["isOk"])
	assert.Contains(t, resp, "error")
}
