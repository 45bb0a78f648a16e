package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tusharnayak1515/users-data-backend/internal/domain"
	httphandler "github.com/tusharnayak1515/users-data-backend/internal/handler/http"
	"github.com/tusharnayak1515/users-data-backend/internal/middleware"
	"github.com/tusharnayak1515/users-data-backend/internal/repository"
	"github.com/tusharnayak1515/users-data-backend/internal/repository/mocks"
	"github.com/tusharnayak1515/users-data-backend/internal/service"
	"github.com/tusharnayak1515/users-data-backend/internal/token"
)

func newDataRouter(t *testing.T, mockUserRepo *mocks.UserRepository, mockDataRepo *mocks.DataRepository) (*gin.Engine, *token.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.NewManager("test-secret")
	require.NoError(t, err)
	handler := httphandler.NewDataHandler(service.NewDataService(mockUserRepo, mockDataRepo))

	router := gin.New()
	group := router.Group("/api/data", middleware.Auth(tokens))
	{
		group.GET("/", handler.List)
		group.POST("/add-data", handler.Create)
		group.PUT("/edit-data/:id", handler.Edit)
		group.DELETE("/delete-data/:id", handler.Delete)
	}
	return router, tokens
}

func doAuthed(router *gin.Engine, tokens *token.Manager, userID uint, method, path string) *httptest.ResponseRecorder {
	signed, _ := tokens.Issue(userID)
	w := httptest.NewRecorder()
	req, _ := nethttp.NewRequest(method, path, nil)
	req.Header.Set(middleware.TokenHeader, signed)
	router.ServeHTTP(w, req)
	return w
}

func TestDataRoutes_ListSuccess(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockDataRepo := new(mocks.DataRepository)
	router, tokens := newDataRouter(t, mockUserRepo, mockDataRepo)

	mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(&domain.User{ID: 1}, nil).Once()
	mockDataRepo.On("FindByOwner", mock.Anything, uint(1), service.PageSize).
		Return([]domain.DataRecord{{ID: 3, UserID: 1, Name: "Acme Corp"}}, nil).Once()

	w := doAuthed(router, tokens, 1, nethttp.MethodGet, "/api/data/")

	assert.Equal(t, nethttp.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["allData"], 1)
}

func TestDataRoutes_ListUnknownUserIs404(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockDataRepo := new(mocks.DataRepository)
	router, tokens := newDataRouter(t, mockUserRepo, mockDataRepo)

	mockUserRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, repository.ErrUserNotFound).Once()

	w := doAuthed(router, tokens, 9, nethttp.MethodGet, "/api/data/")

	assert.Equal(t, nethttp.StatusNotFound, w.Code)
	assert.Equal(t, "User not found!", decodeBody(t, w)["error"])
}

func TestDataRoutes_NonNumericIDIs400(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockDataRepo := new(mocks.DataRepository)
	router, tokens := newDataRouter(t, mockUserRepo, mockDataRepo)

	w := doAuthed(router, tokens, 1, nethttp.MethodDelete, "/api/data/delete-data/abc")

	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	assert.Equal(t, "Data not found!", decodeBody(t, w)["error"])
	mockDataRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestDataRoutes_ForeignDeleteIs405(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockDataRepo := new(mocks.DataRepository)
	router, tokens := newDataRouter(t, mockUserRepo, mockDataRepo)

	mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(&domain.User{ID: 1}, nil).Once()
	mockDataRepo.On("FindByID", mock.Anything, uint(11)).Return(&domain.DataRecord{ID: 11, UserID: 2}, nil).Once()

	w := doAuthed(router, tokens, 1, nethttp.MethodDelete, "/api/data/delete-data/11")

	assert.Equal(t, nethttp.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Not allowed!", decodeBody(t, w)["error"])
	mockDataRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDataRoutes_MissingTokenIs401(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockDataRepo := new(mocks.DataRepository)
	router, _ := newDataRouter(t, mockUserRepo, mockDataRepo)

	w := httptest.NewRecorder()
	req, _ := nethttp.NewRequest(nethttp.MethodGet, "/api/data/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
	assert.Equal(t, "Please authenticate using a valid token", decodeBody(t, w)["error"])
	mockUserRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
