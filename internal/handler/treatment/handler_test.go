package treatment

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
	treatmentService "github.com/clinicdesk/clinic-api/internal/service/treatment"
)

type fakeTreatmentRepo struct {
	treatments map[string]*model.Treatment
}

func newFakeTreatmentRepo() *fakeTreatmentRepo {
	return &fakeTreatmentRepo{treatments: make(map[string]*model.Treatment)}
}

func (r *fakeTreatmentRepo) Create(_ context.Context, t *model.Treatment) error {
	t.ID = primitive.NewObjectID()
	r.treatments[t.ID.Hex()] = t
	return nil
}

func (r *fakeTreatmentRepo) Get(_ context.Context, id string) (*model.Treatment, error) {
	if t, ok := r.treatments[id]; ok {
		return t, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeTreatmentRepo) List(_ context.Context) ([]*model.Treatment, error) {
	out := []*model.Treatment{}
	for _, t := range r.treatments {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTreatmentRepo) Update(_ context.Context, t *model.Treatment) error {
	if _, ok := r.treatments[t.ID.Hex()]; !ok {
		return repository.ErrNotFound
	}
	r.treatments[t.ID.Hex()] = t
	return nil
}

func (r *fakeTreatmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.treatments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.treatments, id)
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(treatmentService.NewService(newFakeTreatmentRepo()))
	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTreatmentRoundTrip(t *testing.T) {
	r := newTestRouter()

	payload := map[string]string{
		"disease":     "Influenza",
		"medication":  "Oseltamivir",
		"description": "Twice daily for five days",
		"doctor":      "Dr. Jane Doe",
	}
	w := doJSON(r, http.MethodPost, "/api/treatments", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Treatment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.ID.IsZero())

	w = doJSON(r, http.MethodGet, "/api/treatment/"+created.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched model.Treatment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Influenza", fetched.Disease)
	assert.Equal(t, "Oseltamivir", fetched.Medication)
}

func TestCreateTreatmentDescriptionOptional(t *testing.T) {
	r := newTestRouter()

	payload := map[string]string{
		"disease":    "Migraine",
		"medication": "Sumatriptan",
		"doctor":     "Dr. Jane Doe",
	}
	w := doJSON(r, http.MethodPost, "/api/treatments", payload)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateTreatmentMissingFieldFails(t *testing.T) {
	r := newTestRouter()

	payload := map[string]string{
		"disease": "Influenza",
		"doctor":  "Dr. Jane Doe",
	}
	w := doJSON(r, http.MethodPost, "/api/treatments", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Medication is required")
}

func TestListTreatments(t *testing.T) {
	r := newTestRouter()

	for _, disease := range []string{"Influenza", "Migraine"} {
		w := doJSON(r, http.MethodPost, "/api/treatments", map[string]string{
			"disease":    disease,
			"medication": "Placebo",
			"doctor":     "Dr. Jane Doe",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/treatments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int               `json:"count"`
		Data  []model.Treatment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Data, 2)
}

func TestUpdateTreatment(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/treatments", map[string]string{
		"disease":    "Influenza",
		"medication": "Oseltamivir",
		"doctor":     "Dr. Jane Doe",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Treatment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPut, "/api/treatment/"+created.ID.Hex(), map[string]string{
		"disease":    "Influenza",
		"medication": "Zanamivir",
		"doctor":     "Dr. Jane Doe",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "treatment updated successfully")

	w = doJSON(r, http.MethodGet, "/api/treatment/"+created.ID.Hex(), nil)
	var fetched model.Treatment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Zanamivir", fetched.Medication)
}

func TestUpdateTreatmentNotFound(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPut, "/api/treatment/"+primitive.NewObjectID().Hex(), map[string]string{
		"disease":    "Influenza",
		"medication": "Oseltamivir",
		"doctor":     "Dr. Jane Doe",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTreatmentThenGetNotFound(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/treatments", map[string]string{
		"disease":    "Influenza",
		"medication": "Oseltamivir",
		"doctor":     "Dr. Jane Doe",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Treatment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodDelete, "/api/treatment/"+created.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "treatment deleted successfully")

	w = doJSON(r, http.MethodGet, "/api/treatment/"+created.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
