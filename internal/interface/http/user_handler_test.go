package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/spookymotion/signup-api/internal/application"
	"github.com/spookymotion/signup-api/internal/domain/entity"
	"github.com/spookymotion/signup-api/pkg/validation"
)

type memRepo struct {
	users map[string]*entity.User
}

func (r *memRepo) Save(_ context.Context, u *entity.User) error {
	for id, existing := range r.users {
		if id != u.ID() && existing.Email() == u.Email() {
			return entity.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID()] = u
	return nil
}

func (r *memRepo) FindByEmail(_ context.Context, email entity.Email) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *memRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return u, nil
}

type noopSender struct{}

func (noopSender) SendActivationCode(context.Context, entity.Email, string) error { return nil }

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestRouter(repo *memRepo, now time.Time) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	clock := fixedClock{now: now}
	reg := application.NewRegistrationService(repo, noopSender{}, plainHasher{}, nil, clock)
	act := application.NewActivationService(repo, clock)
	h := NewUserHandler(reg, act, nil)

	r := gin.New()
	users := r.Group("/api/v1/users")
	users.POST("/register", h.Register)
	users.POST("/activate", h.Activate)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestRegisterEndpoint(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &memRepo{users: make(map[string]*entity.User)}
	r := newTestRouter(repo, now)

	t.Run("created", func(t *testing.T) {
		w := doJSON(t, r, "/api/v1/users/register", gin.H{"email": "a@b.com", "password": "password123"})
		require.Equal(t, http.StatusCreated, w.Code)

		env := decodeEnvelope(t, w)
		require.True(t, env.Success)
		var data userResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Equal(t, "a@b.com", data.Email)
		require.False(t, data.IsActive)
		require.NotEmpty(t, data.ID)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		w := doJSON(t, r, "/api/v1/users/register", gin.H{"email": "a@b.com", "password": "password123"})
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		w := doJSON(t, r, "/api/v1/users/register", gin.H{"email": "nonsense", "password": "password123"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short password rejected by binding", func(t *testing.T) {
		w := doJSON(t, r, "/api/v1/users/register", gin.H{"email": "c@d.com", "password": "short"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestActivateEndpoint(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &memRepo{users: make(map[string]*entity.User)}
	r := newTestRouter(repo, now)

	w := doJSON(t, r, "/api/v1/users/register", gin.H{"email": "a@b.com", "password": "password123"})
	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	var created userResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	code := stored.ActivationCode().Value()

	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(t, r, "/api/v1/users/activate", gin.H{"user_id": "nope", "code": code})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("wrong code", func(t *testing.T) {
		wrong := "0000"
		if code == wrong {
			wrong = "0001"
		}
		w := doJSON(t, r, "/api/v1/users/activate", gin.H{"user_id": created.ID, "code": wrong})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("activated", func(t *testing.T) {
		w := doJSON(t, r, "/api/v1/users/activate", gin.H{"user_id": created.ID, "code": code})
		require.Equal(t, http.StatusOK, w.Code)

		env := decodeEnvelope(t, w)
		var data userResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.True(t, data.IsActive)
	})

	t.Run("second activation conflicts", func(t *testing.T) {
		w := doJSON(t, r, "/api/v1/users/activate", gin.H{"user_id": created.ID, "code": code})
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestActivateEndpoint_ExpiredCode(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &memRepo{users: make(map[string]*entity.User)}

	// Register at t0, activate on a router whose clock sits past the TTL.
	r0 := newTestRouter(repo, now)
	w := doJSON(t, r0, "/api/v1/users/register", gin.H{"email": "a@b.com", "password": "password123"})
	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	var created userResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	code := stored.ActivationCode().Value()

	rLate := newTestRouter(repo, now.Add(entity.CodeTTL+time.Second))
	w = doJSON(t, rLate, "/api/v1/users/activate", gin.H{"user_id": created.ID, "code": code})
	require.Equal(t, http.StatusGone, w.Code)
}
