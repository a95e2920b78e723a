package handlers

import (
	"context"
	"net/http"

	"todo_service/internal/models"
	"todo_service/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID    int
	signUpErr   error
	genToken    string
	genTokenErr error
	parseIdent  service.Identity
	parseErr    error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	return m.genToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	return m.parseIdent, m.parseErr
}

type mockTasks struct {
	createID  int
	createErr error
	listResp  []models.Task
	listErr   error
	updateErr error
	deleteErr error

	lastCreateOwner int
	lastCreateDesc  string

	lastUpdateID    int
	lastUpdateOwner int
	lastUpdateDesc  string
	lastUpdateState string

	lastDeleteID    int
	lastDeleteOwner int
}

func (m *mockTasks) Create(ctx context.Context, ownerID int, description string) (int, error) {
	m.lastCreateOwner = ownerID
	m.lastCreateDesc = description
	return m.createID, m.createErr
}

func (m *mockTasks) List(ctx context.Context, ownerID int) ([]models.Task, error) {
	return m.listResp, m.listErr
}

func (m *mockTasks) Update(ctx context.Context, id, ownerID int, description, status string) error {
	m.lastUpdateID = id
	m.lastUpdateOwner = ownerID
	m.lastUpdateDesc = description
	m.lastUpdateState = status
	return m.updateErr
}

func (m *mockTasks) Delete(ctx context.Context, id, ownerID int) error {
	m.lastDeleteID = id
	m.lastDeleteOwner = ownerID
	return m.deleteErr
}

type mockActivity struct {
	resp       []models.TaskEvent
	err        error
	lastUserID int
	lastFilter service.ActivityFilter
}

func (m *mockActivity) List(ctx context.Context, userID int, f service.ActivityFilter) ([]models.TaskEvent, error) {
	m.lastUserID = userID
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func setToken(req *http.Request, token string) {
	if token != "" {
		req.Header.Set(authTokenHeader, token)
	}
}
