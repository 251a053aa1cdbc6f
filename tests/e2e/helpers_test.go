//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/entomoguide-backend/internal/adapter/storage/local"
	"github.com/heartmarshall/entomoguide-backend/internal/app"
	"github.com/heartmarshall/entomoguide-backend/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// sentMail is one message handed to the fake relay.
type sentMail struct {
	To, Subject, Body string
}

// fakeMailer records messages instead of talking SMTP. Setting fail makes
// every send return an error.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail atomic.Bool
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if m.fail.Load() {
		return fmt.Errorf("smtp: connection refused")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) sentTo(addr string) []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []sentMail
	for _, s := range m.sent {
		if s.To == addr {
			out = append(out, s)
		}
	}
	return out
}

type testServer struct {
	URL        string
	Client     *http.Client
	Pool       *pgxpool.Pool
	Mail       *fakeMailer
	UploadsDir string
	AdminEmail string
}

type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

var emailSeq atomic.Int64

func uniqueEmail(name string) string {
	return fmt.Sprintf("%s-%d-%d@example.com", name, time.Now().UnixNano()%1_000_000, emailSeq.Add(1))
}

// setupTestServer runs the full API against the shared PostgreSQL
// container, a temporary uploads directory and a fake mail relay.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	uploads := t.TempDir()
	adminInbox := uniqueEmail("inbox")

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "e2e-secret-that-is-at-least-32-characters",
			JWTIssuer:        "entomoguide-e2e",
			TokenTTL:         time.Hour,
			PasswordHashCost: 4,
			PublicRateLimit:  1000,
		},
		Storage: config.StorageConfig{Driver: "local", UploadsDir: uploads, MaxUploadSize: 1 << 20},
		Mail: config.MailConfig{
			Enabled:        true,
			AdminRecipient: adminInbox,
			ReviewURL:      "http://front/solicitacoes",
			LoginURL:       "http://front/login",
		},
		CORS: config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,PATCH,DELETE", AllowedHeaders: "Authorization,Content-Type"},
	}

	store, err := local.New(uploads)
	require.NoError(t, err)

	mail := &fakeMailer{}
	application, err := app.New(app.Deps{Config: cfg, Logger: logger, Pool: pool, Store: store, Mailer: mail})
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		application.Close()
	})

	return &testServer{
		URL:        srv.URL,
		Client:     srv.Client(),
		Pool:       pool,
		Mail:       mail,
		UploadsDir: uploads,
		AdminEmail: adminInbox,
	}
}

// do sends a JSON request and decodes the JSON answer into out when given.
func (ts *testServer) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.send(t, req, token, out)
}

type upload struct {
	field, filename string
	data            []byte
}

// upload sends a multipart form with files and text fields.
func (ts *testServer) upload(t *testing.T, method, path, token string, fields map[string]string, files []upload, out any) int {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = fw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return ts.send(t, req, token, out)
}

func (ts *testServer) send(t *testing.T, req *http.Request, token string, out any) int {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type registerResp struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type loginResp struct {
	Token string `json:"token"`
	User  struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Tipo  string `json:"tipo"`
	} `json:"user"`
	Error string `json:"error"`
}

func (ts *testServer) register(t *testing.T, name, email, password string) int64 {
	t.Helper()
	var resp registerResp
	code := ts.do(t, http.MethodPost, "/clientes", "",
		map[string]string{"nome": name, "email": email, "senha": password}, &resp)
	require.Equal(t, http.StatusCreated, code)
	require.Positive(t, resp.ID)
	return resp.ID
}

func (ts *testServer) login(t *testing.T, email, password string) (int, loginResp) {
	t.Helper()
	var resp loginResp
	code := ts.do(t, http.MethodPost, "/login", "", map[string]string{"email": email, "senha": password}, &resp)
	return code, resp
}

// adminToken registers an account, promotes it the way cmd/promote does and
// logs in.
func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	email := uniqueEmail("admin")
	ts.register(t, "Admin", email, "admin-pass")

	n, err := account.New(ts.Pool).PromoteToAdmin(context.Background(), email)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	code, resp := ts.login(t, email, "admin-pass")
	require.Equal(t, http.StatusOK, code, resp.Error)
	require.Equal(t, "admin", resp.User.Tipo)
	return resp.Token
}

func countUploads(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake-image")
