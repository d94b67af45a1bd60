package mazeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BartekFo/maze-lab/service"
	"github.com/BartekFo/maze-lab/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryMazeStore()
	svc, err := service.NewMazeService(store, store, &service.Options{
		MaxDimension: 63,
		Logger:       log.New(io.Discard, "", 0),
	})
	require.NoError(t, err)
	controller, err := NewMazeController(svc)
	require.NoError(t, err)

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createMaze(t *testing.T, router *gin.Engine, width, height int) *MazeResponse {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/mazes", CreateMazeRequest{
		Width:  width,
		Height: height,
		Seed:   42,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response MazeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return &response
}

func TestMazeController(t *testing.T) {
	t.Run("create returns the generated maze", func(t *testing.T) {
		router := newTestRouter(t)
		response := createMaze(t, router, 15, 11)

		assert.NotEmpty(t, response.ID)
		assert.Equal(t, 15, response.Width)
		assert.Equal(t, 11, response.Height)
		assert.Len(t, response.Grid, 11)
		assert.Len(t, response.Grid[0], 15)
		assert.Equal(t, PositionResponse{Row: 0, Col: 1}, response.Entrance)
	})

	t.Run("create rejects invalid dimensions", func(t *testing.T) {
		router := newTestRouter(t)
		w := doJSON(t, router, http.MethodPost, "/api/v1/mazes", CreateMazeRequest{Width: 2, Height: 2})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create rejects oversized dimensions", func(t *testing.T) {
		router := newTestRouter(t)
		w := doJSON(t, router, http.MethodPost, "/api/v1/mazes", CreateMazeRequest{Width: 65, Height: 15})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create rejects a missing body", func(t *testing.T) {
		router := newTestRouter(t)
		w := doJSON(t, router, http.MethodPost, "/api/v1/mazes", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get returns a stored maze", func(t *testing.T) {
		router := newTestRouter(t)
		created := createMaze(t, router, 15, 15)

		w := doJSON(t, router, http.MethodGet, "/api/v1/mazes/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, created.Grid, response.Grid)
	})

	t.Run("get unknown maze is a 404", func(t *testing.T) {
		router := newTestRouter(t)
		w := doJSON(t, router, http.MethodGet, "/api/v1/mazes/00000000-0000-0000-0000-000000000001", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("get malformed id is a 400", func(t *testing.T) {
		router := newTestRouter(t)
		w := doJSON(t, router, http.MethodGet, "/api/v1/mazes/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("solve returns the path", func(t *testing.T) {
		router := newTestRouter(t)
		created := createMaze(t, router, 31, 31)

		w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/mazes/%s/solve", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response SolveMazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, len(response.Path), response.Length)
		assert.Equal(t, created.Entrance, response.Path[0])
		assert.Equal(t, created.Exit, response.Path[len(response.Path)-1])
	})

	t.Run("image returns a png", func(t *testing.T) {
		router := newTestRouter(t)
		created := createMaze(t, router, 15, 15)

		w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/mazes/%s/image?scale=2", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, w.Body.Bytes()[:4])
	})

	t.Run("delete removes the maze", func(t *testing.T) {
		router := newTestRouter(t)
		created := createMaze(t, router, 15, 15)

		w := doJSON(t, router, http.MethodDelete, "/api/v1/mazes/"+created.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/v1/mazes/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
