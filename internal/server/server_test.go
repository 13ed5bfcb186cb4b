package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinnorin/iris-api/internal/dataset"
	"github.com/martinnorin/iris-api/internal/handlers"
	"github.com/martinnorin/iris-api/internal/model"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	iris, err := dataset.Iris()
	require.NoError(t, err)

	clf, err := model.NewClassifier(iris.Samples, iris.Labels, model.DefaultNeighbors)
	require.NoError(t, err)

	dir := t.TempDir()
	modelPath := filepath.Join(dir, "knn.gob")
	metaPath := filepath.Join(dir, "knn_metadata.json")
	require.NoError(t, model.SaveArtifact(modelPath, clf))
	require.NoError(t, model.SaveMetadata(metaPath, model.Metadata{
		InputWidth: clf.InputWidth(),
		Classes:    dataset.ClassNames,
		Neighbors:  clf.K,
	}))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return Routes(handlers.NewHandler(model.NewLoader(modelPath, metaPath), log), log)
}

func TestEndpointContracts(t *testing.T) {
	router := testRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "root greeting",
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
			wantBody:   "Hello World!",
		},
		{
			name:       "echo",
			method:     http.MethodPost,
			path:       "/do_post",
			body:       `{"name": "John", "age": 23}`,
			wantStatus: http.StatusOK,
			wantBody:   "Hello John. You're 23 years old.",
		},
		{
			name:       "predict",
			method:     http.MethodPost,
			path:       "/predict_iris",
			body:       `{"X": [[5.1, 3.5, 1.4, 0.2]]}`,
			wantStatus: http.StatusOK,
			wantBody:   "[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/do_post", "/predict_iris"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
	}
}

func TestCORSHeaders(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSPreflight(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/predict_iris", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthRoute(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}
