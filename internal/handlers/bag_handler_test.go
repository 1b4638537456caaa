package handlers

import (
	"Bagged/internal/models"
	"Bagged/internal/services"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBagService struct {
	mock.Mock
}

func (m *MockBagService) CreateBag(title string, width, height, depth float64) (*models.Bag, error) {
	args := m.Called(title, width, height, depth)
	bag, _ := args.Get(0).(*models.Bag)
	return bag, args.Error(1)
}

func (m *MockBagService) GetBagByID(id uint) (*models.Bag, error) {
	args := m.Called(id)
	bag, _ := args.Get(0).(*models.Bag)
	return bag, args.Error(1)
}

func (m *MockBagService) GetBags() ([]models.Bag, error) {
	args := m.Called()
	return args.Get(0).([]models.Bag), args.Error(1)
}

func (m *MockBagService) DeleteBag(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBagService) FindDeleted(cutoff time.Time) ([]models.Bag, error) {
	args := m.Called(cutoff)
	return args.Get(0).([]models.Bag), args.Error(1)
}

func (m *MockBagService) HardDelete(bag *models.Bag) error {
	args := m.Called(bag)
	return args.Error(0)
}

func setupBagApp() (*fiber.App, *MockBagService) {
	app := fiber.New()
	mockService := new(MockBagService)
	handler := NewBagHandler(mockService)
	app.Get("/bags", handler.ListBags)
	app.Post("/bags", handler.CreateBag)
	app.Get("/bags/:id", handler.GetBagByID)
	app.Delete("/bags/:id", handler.DeleteBag)
	return app, mockService
}

func TestBagHandler_CreateBag(t *testing.T) {
	app, mockService := setupBagApp()
	bag := &models.Bag{BaseModel: models.BaseModel{ID: 1}, Title: "Duffel", Width: 2, Height: 2, Depth: 2}
	mockService.On("CreateBag", "Duffel", 2.0, 2.0, 2.0).Return(bag, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/bags", map[string]interface{}{
		"title": "Duffel", "width": 2, "height": 2, "depth": 2,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, float64(8), body["volume"])
	assert.Equal(t, float64(8), body["availableVolume"])
	mockService.AssertExpectations(t)
}

func TestBagHandler_CreateBag_Validation(t *testing.T) {
	app, mockService := setupBagApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/bags", map[string]interface{}{
		"title": "Broken", "width": 2, "height": -2, "depth": 2,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockService.AssertNotCalled(t, "CreateBag", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBagHandler_GetBagByID(t *testing.T) {
	app, mockService := setupBagApp()
	bag := &models.Bag{
		BaseModel: models.BaseModel{ID: 1},
		Width:     2, Height: 2, Depth: 2,
		Cuboids: []models.Cuboid{{Width: 1, Height: 2, Depth: 2, BagID: 1}},
	}
	mockService.On("GetBagByID", uint(1)).Return(bag, nil)
	mockService.On("GetBagByID", uint(2)).Return(nil, services.ErrBagNotFound)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bags/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, float64(4), body["payloadVolume"])
	assert.Equal(t, float64(4), body["availableVolume"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/bags/2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBagHandler_ListBags(t *testing.T) {
	app, mockService := setupBagApp()
	bags := []models.Bag{
		{BaseModel: models.BaseModel{ID: 1}, Title: "Bag 1"},
		{BaseModel: models.BaseModel{ID: 2}, Title: "Bag 2"},
	}
	mockService.On("GetBags").Return(bags, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bags", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body []map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Len(t, body, 2)
	mockService.AssertExpectations(t)
}

func TestBagHandler_DeleteBag(t *testing.T) {
	app, mockService := setupBagApp()
	mockService.On("DeleteBag", uint(1)).Return(nil)
	mockService.On("DeleteBag", uint(2)).Return(services.ErrBagNotEmpty)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/bags/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/bags/2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestBagHandler_CreateBag_VolumeOverflow(t *testing.T) {
	app, mockService := setupBagApp()
	mockService.On("CreateBag", "Huge", 1e200, 1e200, 1e200).Return(nil, services.ErrVolumeOverflow)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/bags", map[string]interface{}{
		"title": "Huge", "width": 1e200, "height": 1e200, "depth": 1e200,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockService.AssertExpectations(t)
}
