package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velora-hq/frontdesk/internal/config"
	"github.com/velora-hq/frontdesk/internal/flow"
	"github.com/velora-hq/frontdesk/internal/handler"
	mw "github.com/velora-hq/frontdesk/internal/middleware"
	"github.com/velora-hq/frontdesk/internal/model"
	"github.com/velora-hq/frontdesk/internal/router"
	"github.com/velora-hq/frontdesk/internal/session"
)

type fakeCreator struct {
	created []model.Visitor
	nextID  uint64
}

func (f *fakeCreator) Create(_ context.Context, v *model.Visitor) (uint64, error) {
	f.nextID++
	v.ID = f.nextID
	f.created = append(f.created, *v)
	return f.nextID, nil
}

// client drives the API with a persistent workflow session cookie, the way
// a browser would.
type client struct {
	t      *testing.T
	e      *echo.Echo
	cookie *http.Cookie
}

func newClient(t *testing.T) (*client, *fakeCreator) {
	t.Helper()
	creator := &fakeCreator{}
	cfg := config.Config{JWTSecret: "test-secret", AccessTTLMin: 5, BcryptCost: 4, RecentWindowH: 48}

	e := echo.New()
	h := router.Handlers{
		Pages:      handler.NewPageHandler(),
		Checkin:    handler.NewCheckinHandler(flow.New(creator)),
		Auth:       handler.NewAuthHandler(cfg, nil),
		Dashboard:  handler.NewDashboardHandler(cfg, nil),
		Conference: handler.NewConferenceHandler(nil),
	}
	store := session.NewMemoryStore(time.Minute)
	router.Register(e, cfg, h, store, nil)
	return &client{t: t, e: e}, creator
}

func (c *client) do(method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == mw.SessionCookie {
			c.cookie = ck
		}
	}
	var resp map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			c.t.Fatalf("decode %s %s response: %v (%s)", method, path, err, rec.Body.String())
		}
	}
	return rec, resp
}

func TestCheckinEndToEnd(t *testing.T) {
	c, creator := newClient(t)

	rec, resp := c.do(http.MethodPost, "/v1/checkin/step1",
		`{"full_name":"Jane Doe","email":"jane@x.com","phone":"9999999999"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("step1: %d %s", rec.Code, rec.Body)
	}
	if resp["step"].(float64) != flow.Step2 {
		t.Fatalf("step after step1 = %v", resp["step"])
	}

	rec, resp = c.do(http.MethodPost, "/v1/checkin/step2", `{"host":"Bob"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("step2: %d %s", rec.Code, rec.Body)
	}

	rec, resp = c.do(http.MethodPost, "/v1/checkin/step3", `{"signature":"Jane Doe"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("step3: %d %s", rec.Code, rec.Body)
	}
	if resp["welcome"] != "Jane Doe" {
		t.Fatalf("welcome = %v", resp["welcome"])
	}
	if resp["visitor_id"].(float64) != 1 {
		t.Fatalf("visitor_id = %v", resp["visitor_id"])
	}

	if len(creator.created) != 1 {
		t.Fatalf("created = %d, want exactly 1", len(creator.created))
	}
	v := creator.created[0]
	if v.FullName != "Jane Doe" || v.Host != "Bob" || v.Signature != "Jane Doe" {
		t.Fatalf("committed record = %+v", v)
	}
	if v.CheckoutAt != nil {
		t.Fatal("checkout timestamp must be null on creation")
	}
}

func TestCheckinValidationKeepsStateAndData(t *testing.T) {
	c, creator := newClient(t)

	// Missing phone: inline field error, still on step 1.
	rec, resp := c.do(http.MethodPost, "/v1/checkin/step1",
		`{"full_name":"Jane Doe","email":"jane@x.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rec.Code)
	}
	if resp["field"] != "phone" {
		t.Fatalf("field = %v", resp["field"])
	}

	_, page := c.do(http.MethodGet, "/v1/pages/visitor-step1", "")
	if page["step"].(float64) != flow.Step1 {
		t.Fatalf("step = %v, want unchanged Step1", page["step"])
	}
	if len(creator.created) != 0 {
		t.Fatal("nothing may be persisted on a validation error")
	}
}

func TestBackRetainsStepTwoFields(t *testing.T) {
	c, _ := newClient(t)

	c.do(http.MethodPost, "/v1/checkin/step1",
		`{"full_name":"Jane Doe","email":"jane@x.com","phone":"1"}`)
	c.do(http.MethodPost, "/v1/checkin/step2",
		`{"host":"Bob","company":"Acme","belongings":{"laptop":true}}`)

	rec, resp := c.do(http.MethodPost, "/v1/checkin/back", "")
	if rec.Code != http.StatusOK || resp["step"].(float64) != flow.Step2 {
		t.Fatalf("back: %d step=%v", rec.Code, resp["step"])
	}

	// Going forward again only needs the host: prior values were kept.
	rec, _ = c.do(http.MethodPost, "/v1/checkin/step2", `{"host":"Bob","company":"Acme"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("resubmit step2: %d %s", rec.Code, rec.Body)
	}
}

func TestPageRouterFailsOpen(t *testing.T) {
	c, _ := newClient(t)

	rec, resp := c.do(http.MethodGet, "/v1/pages/definitely-not-a-page", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown page must not fail: %d", rec.Code)
	}
	if resp["page"] != string(model.PageHome) {
		t.Fatalf("page = %v, want home", resp["page"])
	}
	if resp["notice"] == nil {
		t.Fatal("missing not-found notice")
	}

	rec, resp = c.do(http.MethodGet, "/v1/pages/visitor-dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	if resp["requires_login"] != true {
		t.Fatal("protected page must flag requires_login for anonymous sessions")
	}
}

func TestDashboardRequiresToken(t *testing.T) {
	c, _ := newClient(t)
	rec, _ := c.do(http.MethodGet, "/v1/dashboard/visitors", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
}

func TestLogoutClearsWorkflow(t *testing.T) {
	c, _ := newClient(t)

	c.do(http.MethodPost, "/v1/checkin/step1",
		`{"full_name":"Jane Doe","email":"jane@x.com","phone":"1"}`)
	rec, _ := c.do(http.MethodPost, "/v1/checkin/logout", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: %d", rec.Code)
	}

	_, page := c.do(http.MethodGet, "/v1/pages/home", "")
	if page["step"].(float64) != flow.Step1 {
		t.Fatalf("step = %v after logout", page["step"])
	}
	if page["logged_in"] != false {
		t.Fatalf("logged_in = %v after logout", page["logged_in"])
	}
}
