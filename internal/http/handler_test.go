package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"task-allocator.com/task-allocator/internal/auth"
	config "task-allocator.com/task-allocator/internal/configs"
	repository "task-allocator.com/task-allocator/internal/repositories"
	"task-allocator.com/task-allocator/internal/services"
	"task-allocator.com/task-allocator/internal/session"
)

func setupHandler(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()

	// One named in-memory database per test; a bare :memory: with a
	// shared cache would leak rows between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db := config.NewDatabase(dsn)
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	taskService := services.NewTaskService(repository.NewTaskRepository(db))
	authService := services.NewAuthService(repository.NewUserRepository(db), auth.NewLocalProvider(db))
	sessions := session.NewManager([]byte("0123456789abcdef0123456789abcdef"), 3600, false)

	return NewHandler(taskService, authService, sessions), db
}

func doJSON(t *testing.T, handler echo.HandlerFunc, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}

	return rec, payload
}

func TestCreateTask_ValidSubmission(t *testing.T) {
	h, _ := setupHandler(t)

	body := `{
		"title": "Design API",
		"description": "Define REST endpoints for v2",
		"priority": "high",
		"estimatedHours": 8,
		"project": "Platform",
		"status": "unassigned",
		"deadline": "2099-01-01",
		"requiredSkills": [{"id": "skill1", "name": "React", "minimumLevel": 3}]
	}`

	rec, payload := doJSON(t, h.CreateTask, http.MethodPost, "/api/tasks", body)

	if e, g := http.StatusCreated, rec.Code; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, rec.Body.String())
	}
	if payload["success"] != true {
		t.Errorf("expected success result, got %v", payload)
	}
	taskID, _ := payload["taskId"].(string)
	if taskID == "" {
		t.Fatalf("expected a generated task id, got %v", payload)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	getRec := httptest.NewRecorder()
	c := e.NewContext(req, getRec)
	c.SetParamNames("id")
	c.SetParamValues(taskID)

	if err := h.GetTask(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if e, g := http.StatusOK, getRec.Code; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, getRec.Body.String())
	}

	var getPayload struct {
		Success bool `json:"success"`
		Task    struct {
			Status               string   `json:"status"`
			AssignedTo           *string  `json:"assignedTo"`
			CompletionPercentage *int     `json:"completionPercentage"`
			Comments             []string `json:"comments"`
		} `json:"task"`
	}
	if err := json.Unmarshal(getRec.Body.Bytes(), &getPayload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if e, g := "unassigned", getPayload.Task.Status; e != g {
		t.Errorf("status: expected %q, got %q", e, g)
	}
	if getPayload.Task.AssignedTo != nil {
		t.Errorf("assignedTo: expected null, got %v", *getPayload.Task.AssignedTo)
	}
	if getPayload.Task.CompletionPercentage == nil || *getPayload.Task.CompletionPercentage != 0 {
		t.Errorf("completionPercentage: expected 0, got %v", getPayload.Task.CompletionPercentage)
	}
	if len(getPayload.Task.Comments) != 0 {
		t.Errorf("comments: expected empty, got %v", getPayload.Task.Comments)
	}
}

func TestCreateTask_ExpiredDeadline(t *testing.T) {
	h, db := setupHandler(t)

	body := `{
		"title": "Design API",
		"description": "Define REST endpoints for v2",
		"priority": "high",
		"estimatedHours": "8",
		"project": "Platform",
		"status": "unassigned",
		"deadline": "2000-01-01",
		"requiredSkills": [{"id": "skill1", "name": "React", "minimumLevel": 3}]
	}`

	rec, payload := doJSON(t, h.CreateTask, http.MethodPost, "/api/tasks", body)

	if e, g := http.StatusBadRequest, rec.Code; e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}
	if payload["success"] != false {
		t.Errorf("expected failure result, got %v", payload)
	}
	if e, g := "Deadline cannot be in the past", payload["error"]; e != g {
		t.Errorf("error: expected %q, got %q", e, g)
	}

	count, err := repository.NewTaskRepository(db).Count(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("no document should be created, got %d", count)
	}
}

func TestSignUp_DuplicateAccountIsCaseInsensitive(t *testing.T) {
	h, _ := setupHandler(t)

	body := `{"email": "a@b.com", "password": "secret1", "name": "Ada", "userRole": "allocator"}`
	rec, payload := doJSON(t, h.SignUp, http.MethodPost, "/api/auth/signup", body)
	if e, g := http.StatusCreated, rec.Code; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, rec.Body.String())
	}
	if uid, _ := payload["userId"].(string); uid == "" {
		t.Errorf("expected a user id, got %v", payload)
	}

	body = `{"email": "A@B.com", "password": "secret2", "name": "Ada", "userRole": "employee"}`
	rec, payload = doJSON(t, h.SignUp, http.MethodPost, "/api/auth/signup", body)
	if e, g := http.StatusConflict, rec.Code; e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}
	if e, g := "User already exists", payload["error"]; e != g {
		t.Errorf("error: expected %q, got %q", e, g)
	}
}

func TestSignInAndSignOut(t *testing.T) {
	h, _ := setupHandler(t)

	signup := `{"email": "a@b.com", "password": "secret1", "name": "Ada", "userRole": "employee"}`
	if rec, _ := doJSON(t, h.SignUp, http.MethodPost, "/api/auth/signup", signup); rec.Code != http.StatusCreated {
		t.Fatalf("signup failed: %s", rec.Body.String())
	}

	rec, payload := doJSON(t, h.SignIn, http.MethodPost, "/api/auth/signin", `{"email": "a@b.com", "password": "secret1"}`)
	if e, g := http.StatusOK, rec.Code; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, rec.Body.String())
	}
	if payload["success"] != true {
		t.Errorf("expected success result, got %v", payload)
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("sign-in should set a session cookie")
	}

	rec, payload = doJSON(t, h.SignIn, http.MethodPost, "/api/auth/signin", `{"email": "a@b.com", "password": "wrong-password"}`)
	if e, g := http.StatusUnauthorized, rec.Code; e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}
	if e, g := "Invalid email or password", payload["error"]; e != g {
		t.Errorf("error: expected %q, got %q", e, g)
	}

	rec, payload = doJSON(t, h.SignOut, http.MethodPost, "/api/auth/signout", "")
	if e, g := http.StatusOK, rec.Code; e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}
	if payload["success"] != true {
		t.Errorf("expected success result, got %v", payload)
	}
}

func TestUserExists(t *testing.T) {
	h, _ := setupHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/exists?email=a@b.com", nil)
	rec := httptest.NewRecorder()
	if err := h.UserExists(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if payload["success"] != false || payload["message"] != "User does not exist" {
		t.Errorf("expected does-not-exist probe result, got %v", payload)
	}

	signup := `{"email": "a@b.com", "password": "secret1", "name": "Ada", "userRole": "editor"}`
	if rec, _ := doJSON(t, h.SignUp, http.MethodPost, "/api/auth/signup", signup); rec.Code != http.StatusCreated {
		t.Fatalf("signup failed: %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/users/exists?email=A@B.com", nil)
	rec = httptest.NewRecorder()
	if err := h.UserExists(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if payload["success"] != true || payload["message"] != "User exists" {
		t.Errorf("expected exists probe result, got %v", payload)
	}
}

func TestGetTask_NotFound(t *testing.T) {
	h, _ := setupHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("no-such-task")

	if err := h.GetTask(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if e, g := http.StatusNotFound, rec.Code; e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}
}
