package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-studio-backend/config"
	v1 "go-studio-backend/internal/delivery/http/v1"
	"go-studio-backend/internal/usecase"
	"go-studio-backend/pkg/email"
	"go-studio-backend/pkg/logger"
	"go-studio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	m.Run()
}

// outboxSender captures messages instead of dialing a relay.
type outboxSender struct {
	outbox  []*email.Message
	failMsg string // when set, every send fails with this message
}

func (s *outboxSender) Send(ctx context.Context, msg *email.Message) (string, error) {
	if s.failMsg != "" {
		return "", errors.New(s.failMsg)
	}
	s.outbox = append(s.outbox, msg)
	return fmt.Sprintf("<msg-%d@test>", len(s.outbox)), nil
}

func (s *outboxSender) IsConfigured() bool { return true }

func testConfig() *config.Config {
	return &config.Config{
		Port:                   "8080",
		FrontendURL:            "http://localhost:3000",
		SMTPHost:               "smtp.example.com",
		SMTPPort:               "587",
		SMTPUser:               "relay@example.com",
		SMTPPassword:           "secret",
		SMTPFrom:               "noreply@aakararchitects.example",
		BusinessEmail:          "studio@aakararchitects.example",
		HREmail:                "hr@aakararchitects.example",
		EmailTimezone:          "Asia/Kolkata",
		RateLimitWindowSeconds: 60,
		RateLimitFormThreshold: 1000,
	}
}

func newTestRouter(cfg *config.Config, sender email.Sender) *gin.Engine {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return v1.NewRouter(v1.RouterDeps{
		SubmissionUC: usecase.NewSubmissionUsecase(cfg, sender, email.NewRenderer(cfg.EmailTimezone), validate),
		HealthUC:     usecase.NewHealthUsecase(),
		Config:       cfg,
	})
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(testConfig(), &outboxSender{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Server is running", decode(t, w)["status"])
}

func TestQuoteSuccess(t *testing.T) {
	sender := &outboxSender{}
	router := newTestRouter(testConfig(), sender)

	w := postJSON(router, "/api/quote",
		`{"projectType":"residential","name":"Asha","email":"asha@example.com","phone":"9999999999"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Quote email sent successfully", body["message"])

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["businessEmailId"])
	assert.NotEmpty(t, data["customerEmailId"])
	assert.Len(t, sender.outbox, 2)
}

func TestQuoteMissingEmail(t *testing.T) {
	sender := &outboxSender{}
	router := newTestRouter(testConfig(), sender)

	w := postJSON(router, "/api/quote",
		`{"projectType":"residential","name":"Asha","phone":"9999999999"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "Missing required fields")
	assert.Contains(t, body["error"], "email")
	assert.Empty(t, sender.outbox)
}

func TestWorkApplicationInvalidEmail(t *testing.T) {
	sender := &outboxSender{}
	router := newTestRouter(testConfig(), sender)

	w := postJSON(router, "/api/work-application",
		`{"fullName":"Meera","email":"not-an-email","institution":"CEPT","yearOfGraduation":"2024"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid email format", body["error"])
	assert.Empty(t, sender.outbox)
}

func TestInternshipApplicationTransportFailure(t *testing.T) {
	sender := &outboxSender{failMsg: "relay unreachable"}
	router := newTestRouter(testConfig(), sender)

	w := postJSON(router, "/api/internship-application",
		`{"fullName":"Dev","email":"dev@example.com","institution":"CEPT","portfolioUrl":"https://example.com/p"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
	assert.Nil(t, body["data"])
	assert.Empty(t, sender.outbox)
}

func TestQuoteWithoutMailConfiguration(t *testing.T) {
	cfg := testConfig()
	cfg.SMTPHost = ""
	cfg.SMTPUser = ""
	sender := &outboxSender{}
	router := newTestRouter(cfg, sender)

	w := postJSON(router, "/api/quote",
		`{"projectType":"residential","name":"Asha","email":"asha@example.com","phone":"9999999999"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Contains(t, body["error"], "Email service not configured")
	assert.Empty(t, sender.outbox)
}

func TestContactRouteWired(t *testing.T) {
	sender := &outboxSender{}
	router := newTestRouter(testConfig(), sender)

	w := postJSON(router, "/api/contact",
		`{"name":"Ravi","email":"ravi@example.com","phone":"8888888888","message":"Bungalow renovation enquiry"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.NotEmpty(t, data["businessEmailId"])
	assert.NotEmpty(t, data["userEmailId"])
}

func TestLegacyInternshipInterestsFlattened(t *testing.T) {
	sender := &outboxSender{}
	router := newTestRouter(testConfig(), sender)

	w := postJSON(router, "/api/internship",
		`{"fullName":"Dev","email":"dev@example.com","phone":"7777777777","city":"Pune","interests":["Urban Design","Landscape"]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, sender.outbox, 2)
	assert.Contains(t, sender.outbox[0].HTML, "Urban Design, Landscape")
}

func TestMalformedJSON(t *testing.T) {
	router := newTestRouter(testConfig(), &outboxSender{})

	w := postJSON(router, "/api/contact", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

func TestUnmatchedRoute(t *testing.T) {
	router := newTestRouter(testConfig(), &outboxSender{})

	req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", decode(t, w)["error"])
}

func TestFormRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitFormThreshold = 1
	router := newTestRouter(cfg, &outboxSender{})

	// Distinct forwarded IP so the shared limiter store does not bleed
	// into other tests.
	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			strings.NewReader(`{"name":"Ravi","email":"ravi@example.com","phone":"8888888888","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", "203.0.113.77")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := do()
	assert.Equal(t, http.StatusOK, first.Code)

	second := do()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(testConfig(), &outboxSender{})

	req := httptest.NewRequest(http.MethodOptions, "/api/quote", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
