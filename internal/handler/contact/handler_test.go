package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
	authService "github.com/medicore/hospital-api/internal/service/auth"
	contactService "github.com/medicore/hospital-api/internal/service/contact"
	"github.com/medicore/hospital-api/internal/service/event"
	"github.com/medicore/hospital-api/pkg/auth"
	"github.com/medicore/hospital-api/pkg/security"
)

type fakeContactRepo struct {
	messages []*model.ContactMessage
}

func (r *fakeContactRepo) Create(_ context.Context, m *model.ContactMessage) error {
	m.ID = int64(len(r.messages) + 1)
	r.messages = append(r.messages, m)
	return nil
}

func (r *fakeContactRepo) List(_ context.Context) ([]*model.ContactMessage, error) {
	return r.messages, nil
}

type fakeOutboxRepo struct{}

func (fakeOutboxRepo) Create(_ context.Context, evt *model.OutboxEvent) error {
	evt.ID = uuid.New()
	return nil
}
func (fakeOutboxRepo) GetPendingEvents(context.Context, int) ([]*model.OutboxEvent, error) {
	return nil, nil
}
func (fakeOutboxRepo) UpdateStatus(context.Context, uuid.UUID, model.OutboxStatus, *string) error {
	return nil
}
func (fakeOutboxRepo) DeleteProcessedBefore(context.Context, int) (int64, error) { return 0, nil }

type fakeUserRepo struct{}

func (fakeUserRepo) Create(context.Context, *model.User) error { return nil }
func (fakeUserRepo) Get(context.Context, int64) (*model.User, error) {
	return nil, repository.ErrNotFound
}
func (fakeUserRepo) GetByEmail(context.Context, string) (*model.User, error) {
	return nil, repository.ErrNotFound
}

func newTestEngine(t *testing.T) (*gin.Engine, *fakeContactRepo, auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &fakeContactRepo{}
	svc := contactService.NewService(repo, event.NewService(fakeOutboxRepo{}))

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	authSvc := authService.NewService(fakeUserRepo{}, jwtSvc, security.NewBcryptHasher(0))
	authMW := middleware.NewAuthMiddleware(authSvc)

	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group(""), authMW)
	return engine, repo, jwtSvc
}

func postJSON(engine *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateContactMessage(t *testing.T) {
	engine, repo, _ := newTestEngine(t)

	w := postJSON(engine, "/contacts", map[string]string{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": "Do you take walk-ins?",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	require.Len(t, repo.messages, 1)
	assert.Equal(t, "Jane", repo.messages[0].Name)
}

func TestCreateContactMessageValidation(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	w := postJSON(engine, "/contacts", map[string]string{
		"name":  "Jane",
		"email": "jane@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "message is required", resp["error"])

	w = postJSON(engine, "/contacts", map[string]string{
		"name":    "Jane",
		"email":   "not-an-email",
		"message": "hello",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMessagesRequiresAuth(t *testing.T) {
	engine, repo, jwtSvc := newTestEngine(t)
	repo.messages = append(repo.messages, &model.ContactMessage{ID: 1, Name: "Jane"})

	req := httptest.NewRequest(http.MethodGet, "/contact/messages", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := jwtSvc.GenerateAccessToken(&model.User{ID: 1, Email: "admin@example.com", Role: model.RoleAdmin})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/contact/messages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}
