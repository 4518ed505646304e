package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/cb17225/huffman-compression/internal/handler"
	"github.com/cb17225/huffman-compression/internal/repo"
	"github.com/cb17225/huffman-compression/internal/router"
	"github.com/cb17225/huffman-compression/internal/service"
	"github.com/cb17225/huffman-compression/pkg/logger"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewCodecService(repo.NewWeightRepoInMemory(), logger.NewNop(), true)
	r := gin.New()
	router.Register(r, router.Dependencies{CodecHandler: handler.NewCodecHandler(svc)})
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := do(t, newEngine(), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestEncodeDecode(t *testing.T) {
	r := newEngine()

	w := do(t, r, http.MethodPost, "/api/v1/encode", handler.EncodeReq{Text: "ABCABBA"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var enc handler.EncodeResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enc))
	require.True(t, enc.Minimize)
	require.Equal(t, 3, enc.Weights['A'])
	require.Equal(t, 1, enc.Weights[0])
	require.Len(t, enc.Codes, 4)

	w = do(t, r, http.MethodPost, "/api/v1/decode", handler.DecodeReq{
		Data: enc.Data, Weights: &enc.Weights, Minimize: &enc.Minimize,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var dec handler.DecodeResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dec))
	require.Equal(t, "ABCABBA", dec.Text)
}

func TestProfiles(t *testing.T) {
	r := newEngine()

	w := do(t, r, http.MethodPost, "/api/v1/profiles", handler.ProfileReq{Name: "abc", Text: "aaaabbc"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/v1/profiles/abc/codes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var codes map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &codes))
	// 0(1) c(1) b(2) a(4): 0+c → (2), b 먼저 → (4), a 먼저 → 루트
	require.Equal(t, map[string]string{"97": "0", "98": "10", "0": "110", "99": "111"}, codes)

	w = do(t, r, http.MethodGet, "/api/v1/profiles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"abc"`)

	w = do(t, r, http.MethodGet, "/api/v1/profiles/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/profiles", map[string]string{"text": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorStatus(t *testing.T) {
	r := newEngine()
	do(t, r, http.MethodPost, "/api/v1/profiles", handler.ProfileReq{Name: "ab", Text: "ab"})

	w := do(t, r, http.MethodPost, "/api/v1/encode", handler.EncodeReq{Text: "abc", Profile: "ab"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/decode", handler.DecodeReq{Data: []byte{0xff}})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/encode", handler.EncodeReq{Text: "é"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStats(t *testing.T) {
	w := do(t, newEngine(), http.MethodPost, "/api/v1/stats", handler.StatsReq{Text: "aaaaaaaabbbbcc"})
	require.Equal(t, http.StatusOK, w.Code)
	var st service.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	require.Equal(t, 14*8, st.RawBits)
	require.Equal(t, 4, st.Symbols)
}

func weightsOfLen(n int) []int {
	ws := make([]int, n)
	for i := range ws {
		ws[i] = 1
	}
	return ws
}

func TestWeightsWrongLength(t *testing.T) {
	r := newEngine()
	for _, n := range []int{3, 200} {
		w := do(t, r, http.MethodPost, "/api/v1/profiles", map[string]any{
			"name": "bad", "weights": weightsOfLen(n),
		})
		require.Equal(t, http.StatusBadRequest, w.Code, "%d entries: %s", n, w.Body.String())

		w = do(t, r, http.MethodPost, "/api/v1/decode", map[string]any{
			"data": []byte{0x01}, "weights": weightsOfLen(n),
		})
		require.Equal(t, http.StatusBadRequest, w.Code, "%d entries: %s", n, w.Body.String())
	}

	// 잘못된 요청은 저장되지 않는다
	w := do(t, r, http.MethodGet, "/api/v1/profiles/bad", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/profiles", map[string]any{
		"name": "ok", "weights": weightsOfLen(128),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
