package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
	authService "github.com/clinicdesk/clinic-api/internal/service/auth"
	"github.com/clinicdesk/clinic-api/pkg/security"
	"github.com/clinicdesk/clinic-api/pkg/token"
)

type fakeDoctorRepo struct {
	doctors map[string]*model.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[string]*model.Doctor)}
}

func (r *fakeDoctorRepo) Create(_ context.Context, d *model.Doctor) error {
	d.ID = primitive.NewObjectID()
	r.doctors[d.ID.Hex()] = d
	return nil
}

func (r *fakeDoctorRepo) Get(_ context.Context, id string) (*model.Doctor, error) {
	if d, ok := r.doctors[id]; ok {
		return d, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeDoctorRepo) GetByEmail(_ context.Context, email string) (*model.Doctor, error) {
	for _, d := range r.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeDoctorRepo) List(_ context.Context) ([]*model.Doctor, error) {
	out := []*model.Doctor{}
	for _, d := range r.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDoctorRepo) UpdateImage(_ context.Context, id, imageURL string) (*model.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	d.ImageURL = imageURL
	return d, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := authService.NewService(newFakeDoctorRepo(), security.NewBcryptHasher(4), token.NewService("test-secret"))
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/"))
	return r
}

func doJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignup(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "/signup", map[string]string{
		"fullName": "Jane Doe",
		"email":    "jane@clinic.example",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "doctor registered successfully")
}

func TestSignupValidation(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name    string
		payload map[string]string
		message string
	}{
		{
			name:    "missing full name",
			payload: map[string]string{"email": "jane@clinic.example", "password": "s3cret-pass"},
			message: "FullName is required",
		},
		{
			name:    "bad email",
			payload: map[string]string{"fullName": "Jane Doe", "email": "not-an-email", "password": "s3cret-pass"},
			message: "Email must be a valid email",
		},
		{
			name:    "short password",
			payload: map[string]string{"fullName": "Jane Doe", "email": "jane@clinic.example", "password": "short"},
			message: "Password must be at least 8 characters long",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, "/signup", tc.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	r := newTestRouter()

	payload := map[string]string{
		"fullName": "Jane Doe",
		"email":    "jane@clinic.example",
		"password": "s3cret-pass",
	}
	w := doJSON(r, "/signup", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, "/signup", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "/signup", map[string]string{
		"fullName": "Jane Doe",
		"email":    "jane@clinic.example",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, "/auth", map[string]string{
		"email":    "jane@clinic.example",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data)
}

func TestLoginBadCredentials(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "/signup", map[string]string{
		"fullName": "Jane Doe",
		"email":    "jane@clinic.example",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	for _, payload := range []map[string]string{
		{"email": "jane@clinic.example", "password": "wrong-pass"},
		{"email": "nobody@clinic.example", "password": "s3cret-pass"},
	} {
		w := doJSON(r, "/auth", payload)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
	}
}
