package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"microblog/internal/entity"
	"microblog/internal/usecase"
	"microblog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(username, password string) (*entity.User, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) ResolveToken(token string) (*entity.User, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) GetUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func TestLogin_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	user := &entity.User{ID: "1", Username: "user1", Password: "password1"}
	mockUseCase.On("Login", "user1", "password1").Return(user, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(`{"username":"user1","password":"password1"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "user1", response["access_token"])
	assert.Equal(t, "bearer", response["token_type"])

	userBody := response["user"].(map[string]interface{})
	assert.Equal(t, "1", userBody["id"])
	assert.Equal(t, "user1", userBody["username"])
	assert.NotContains(t, userBody, "password")

	mockUseCase.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	mockUseCase.On("Login", "user1", "wrong").Return(nil, entity.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(`{"username":"user1","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestLogin_UnknownUser(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	mockUseCase.On("Login", "ghost", "password1").Return(nil, entity.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(`{"username":"ghost","password":"password1"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestLogin_MalformedBody(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Login")
}

func TestMe_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/me", func(c *gin.Context) {
		c.Set("user_id", "1")
		handler.Me(c)
	})

	user := &entity.User{ID: "1", Username: "user1", Password: "password1"}
	mockUseCase.On("GetUser", "1").Return(user, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "user1", response["username"])

	mockUseCase.AssertExpectations(t)
}

func TestMe_UserNotFound(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/me", func(c *gin.Context) {
		c.Set("user_id", "999")
		handler.Me(c)
	})

	mockUseCase.On("GetUser", "999").Return(nil, entity.ErrUserNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}
