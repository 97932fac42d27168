package api

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/bitmark-inc/taskbridge-api/mocks"
	"github.com/bitmark-inc/taskbridge-api/schema"
)

var (
	testKey     *rsa.PrivateKey
	testKeyOnce sync.Once
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jwtTestKey(t *testing.T) *rsa.PrivateKey {
	testKeyOnce.Do(func() {
		k, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatal(err)
		}
		testKey = k
	})
	return testKey
}

type testServer struct {
	*Server
	ctl    *gomock.Controller
	core   *mocks.MockTaskBridgeCore
	mongo  *mocks.MockMongoStore
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	ctl := gomock.NewController(t)
	core := mocks.NewMockTaskBridgeCore(ctl)
	mongo := mocks.NewMockMongoStore(ctl)

	s := &Server{
		store:         core,
		mongoStore:    mongo,
		jwtPrivateKey: jwtTestKey(t),
	}

	return &testServer{
		Server: s,
		ctl:    ctl,
		core:   core,
		mongo:  mongo,
		router: s.setupRouter(),
	}
}

func (ts *testServer) tokenFor(t *testing.T, email string) string {
	token, err := ts.issueJWT(&schema.Account{ID: uuid.New(), Email: email}, time.Now(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

type request struct {
	method  string
	path    string
	body    interface{}
	token   string
	headers map[string]string
}

func (ts *testServer) do(r request) *httptest.ResponseRecorder {
	var body io.Reader
	if r.body != nil {
		b, _ := json.Marshal(r.body)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(r.method, r.path, body)
	req.Header.Set("Client-Type", "cli")
	req.Header.Set("Client-Version", "1")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("wrong json unmarshal: %s", err)
	}
	return resp
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("wrong status code: want %d, got %d: %s", code, w.Code, w.Body.String())
	}
}
