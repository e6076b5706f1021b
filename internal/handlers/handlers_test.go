package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Prithwiraj731/Money-Miners/internal/config"
	"github.com/Prithwiraj731/Money-Miners/internal/database"
	"github.com/Prithwiraj731/Money-Miners/internal/mailer"
	"github.com/Prithwiraj731/Money-Miners/internal/routes"
	"github.com/Prithwiraj731/Money-Miners/internal/server"
)

// recorderMailer captures delivered messages for assertions.
type recorderMailer struct {
	mu       sync.Mutex
	messages []mailer.Message
	fail     int
}

func (r *recorderMailer) Send(_ context.Context, msg mailer.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fail > 0 {
		r.fail--
		return fmt.Errorf("transient smtp failure")
	}

	r.messages = append(r.messages, msg)
	return nil
}

func (r *recorderMailer) Close() error { return nil }

func (r *recorderMailer) sent() []mailer.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]mailer.Message, len(r.messages))
	copy(out, r.messages)
	return out
}

type testEnv struct {
	app  *fiber.App
	db   *gorm.DB
	cfg  *config.Config
	mail *recorderMailer
	disp *mailer.Dispatcher
}

func testConfig() *config.Config {
	relaxed := config.RateLimit{Window: time.Minute, Max: 1000}
	return &config.Config{
		JWTSecret:      "test-secret",
		AllowedOrigins: []string{"http://localhost:5173"},
		TokenExpires:   time.Hour,
		AdminTokenTTL:  time.Hour,
		AdminEmail:     "admin@example.com",
		AdminPass:      "admin-pass",
		APILimit:       relaxed,
		LoginLimit:     relaxed,
		OTPLimit:       relaxed,
		RegisterLimit:  relaxed,
		AdminLimit:     relaxed,
		ContactLimit:   relaxed,
	}
}

func newTestEnv(t *testing.T, mailMock bool) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	rec := &recorderMailer{}
	disp := mailer.NewDispatcher(rec, log)

	cfg := testConfig()
	app := server.New(routes.Deps{
		DB:       db,
		Cfg:      cfg,
		Mail:     disp,
		MailMock: mailMock,
		Log:      log,
	})

	return &testEnv{app: app, db: db, cfg: cfg, mail: rec, disp: disp}
}

// waitForMail flushes the dispatcher queue. The dispatcher may no
// longer be used afterwards.
func (e *testEnv) waitForMail() {
	e.disp.Close()
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	var decoded map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("response is not JSON: %v (%s)", err, raw)
		}
	}

	return resp, decoded
}
