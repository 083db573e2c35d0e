package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/hirepath/internal/config"
	"github.com/hirepath/hirepath/internal/database"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	cfg := &config.Config{
		Env:        config.Development,
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		CorsOrigin: "http://localhost:3000",
	}
	return NewRouter(cfg, db)
}

type client struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func register(t *testing.T, c *client, fullName, email, role string) {
	t.Helper()
	w := c.do(http.MethodPost, "/api/v1/users/register", gin.H{
		"fullName":    fullName,
		"email":       email,
		"password":    "password123",
		"phoneNumber": "555-0100",
		"role":        role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func login(t *testing.T, c *client, email string) {
	t.Helper()
	w := c.do(http.MethodPost, "/api/v1/users/login", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	token, ok := body["token"].(string)
	require.True(t, ok, "login response must carry a token")
	c.token = token
}

// Full recruiter/seeker scenario: recruiter posts a job at a new company,
// seeker applies, recruiter reviews and advances the status, seeker
// withdraws, pipeline ends up empty.
func Test_EndToEnd_ApplicationLifecycle(t *testing.T) {
	router := newTestRouter(t)
	recruiter := &client{t: t, router: router}
	seeker := &client{t: t, router: router}

	register(t, recruiter, "Rita Recruiter", "rita@acme.com", "recruiter")
	login(t, recruiter, "rita@acme.com")
	register(t, seeker, "Sam Seeker", "sam@example.com", "seeker")
	login(t, seeker, "sam@example.com")

	// recruiter creates the company
	w := recruiter.do(http.MethodPost, "/api/v1/companies", gin.H{"name": "Acme"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	companyID := decode(t, w)["company"].(map[string]any)["id"].(string)

	// and posts a job; numeric fields arrive as strings like form clients send
	w = recruiter.do(http.MethodPost, "/api/v1/jobs", gin.H{
		"title":           "Backend Engineer",
		"description":     "Build the API",
		"requirements":    "golang",
		"salary":          "90000",
		"experienceLevel": "3",
		"location":        "Remote",
		"jobType":         "full-time",
		"position":        2,
		"company":         companyID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	job := decode(t, w)["job"].(map[string]any)
	jobID := job["id"].(string)
	assert.Equal(t, []any{"golang"}, job["requirements"].([]any))

	// seeker applies
	w = seeker.do(http.MethodPost, "/api/v1/applications/apply/"+jobID, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	application := decode(t, w)["application"].(map[string]any)
	applicationID := application["id"].(string)
	assert.Equal(t, "applied", application["status"])

	// applying again conflicts
	w = seeker.do(http.MethodPost, "/api/v1/applications/apply/"+jobID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// recruiter sees exactly one applicant
	w = recruiter.do(http.MethodGet, "/api/v1/applications/job/"+jobID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	applicants := decode(t, w)["applications"].([]any)
	require.Len(t, applicants, 1)
	entry := applicants[0].(map[string]any)
	assert.Equal(t, "sam@example.com", entry["applicant"].(map[string]any)["email"])

	// seeker may not view the pipeline
	w = seeker.do(http.MethodGet, "/api/v1/applications/job/"+jobID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// recruiter advances the status
	w = recruiter.do(http.MethodPut, "/api/v1/applications/"+applicationID+"/status", gin.H{"status": "interview"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// seeker sees the application with the job and company join
	w = seeker.do(http.MethodGet, "/api/v1/applications/my-applications", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	mine := decode(t, w)["applications"].([]any)
	require.Len(t, mine, 1)
	view := mine[0].(map[string]any)
	assert.Equal(t, "interview", view["status"])
	assert.Equal(t, "Acme", view["job"].(map[string]any)["company"].(map[string]any)["name"])

	// seeker withdraws
	w = seeker.do(http.MethodDelete, "/api/v1/applications/"+applicationID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// pipeline is empty again
	w = recruiter.do(http.MethodGet, "/api/v1/applications/job/"+jobID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, decode(t, w)["applications"])
}

func Test_UnauthenticatedRequestsRejected(t *testing.T) {
	router := newTestRouter(t)
	anonymous := &client{t: t, router: router}

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/jobs"},
		{http.MethodGet, "/api/v1/companies"},
		{http.MethodGet, "/api/v1/users/profile"},
		{http.MethodGet, "/api/v1/applications/my-applications"},
		{http.MethodPost, "/api/v1/applications/apply/507f1f77bcf86cd799439011"},
	} {
		w := anonymous.do(route.method, route.path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}

// Malformed ids are rejected with 400 before any lookup happens.
func Test_MalformedIdsRejectedEverywhere(t *testing.T) {
	router := newTestRouter(t)
	c := &client{t: t, router: router}
	register(t, c, "Rita Recruiter", "rita@acme.com", "recruiter")
	login(t, c, "rita@acme.com")

	for _, route := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/v1/companies/not-an-id", nil},
		{http.MethodPut, "/api/v1/companies/not-an-id", gin.H{"name": "X"}},
		{http.MethodDelete, "/api/v1/companies/not-an-id", nil},
		{http.MethodGet, "/api/v1/jobs/not-an-id", nil},
		{http.MethodPut, "/api/v1/jobs/not-an-id", gin.H{}},
		{http.MethodDelete, "/api/v1/jobs/not-an-id", nil},
		{http.MethodPost, "/api/v1/applications/apply/not-an-id", nil},
		{http.MethodGet, "/api/v1/applications/job/not-an-id", nil},
		{http.MethodPut, "/api/v1/applications/not-an-id/status", gin.H{"status": "hired"}},
		{http.MethodDelete, "/api/v1/applications/not-an-id", nil},
	} {
		w := c.do(route.method, route.path, route.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, fmt.Sprintf("%s %s", route.method, route.path))
	}
}

func Test_Login_SetsAuthCookie(t *testing.T) {
	router := newTestRouter(t)
	c := &client{t: t, router: router}
	register(t, c, "Rita Recruiter", "rita@acme.com", "recruiter")

	w := c.do(http.MethodPost, "/api/v1/users/login", gin.H{
		"email":    "rita@acme.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == "token" {
			found = true
			assert.True(t, cookie.HttpOnly)
			assert.NotEmpty(t, cookie.Value)
		}
	}
	assert.True(t, found, "login must set the token cookie")
}

func Test_Logout_ClearsAuthCookie(t *testing.T) {
	router := newTestRouter(t)
	c := &client{t: t, router: router}
	register(t, c, "Rita Recruiter", "rita@acme.com", "recruiter")
	login(t, c, "rita@acme.com")

	w := c.do(http.MethodPost, "/api/v1/users/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			assert.Empty(t, cookie.Value)
			assert.Negative(t, cookie.MaxAge)
		}
	}
}

func Test_ListOwnCompanies_EmptyAnswers404(t *testing.T) {
	router := newTestRouter(t)
	c := &client{t: t, router: router}
	register(t, c, "Rita Recruiter", "rita@acme.com", "recruiter")
	login(t, c, "rita@acme.com")

	w := c.do(http.MethodGet, "/api/v1/companies", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodGet, "/api/v1/jobs/my-jobs", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_HealthCheck(t *testing.T) {
	router := newTestRouter(t)
	c := &client{t: t, router: router}

	w := c.do(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
