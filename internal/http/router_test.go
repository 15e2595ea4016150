package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/live-arena-service/internal/http/handlers"
	"github.com/preston-bernstein/live-arena-service/internal/testutil"
)

func newRouterUnderTest(admin *handlers.AdminHandler) http.Handler {
	svc := testutil.NewServiceWithSnapshot(testutil.SampleSnapshot(testutil.SampleMatch(7)))
	return NewRouter(handlers.NewHandler(svc, nil, nil), admin)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newRouterUnderTest(nil)

	cases := map[string]int{
		"/health":                        http.StatusOK,
		"/ready":                         http.StatusOK,
		"/matches":                       http.StatusOK,
		"/matches/categories":            http.StatusOK,
		"/matches/live":                  http.StatusOK,
		"/matches/live/by-competition":   http.StatusOK,
		"/matches/schedule":              http.StatusOK,
		"/matches/featured":              http.StatusOK,
		"/matches/7":                     http.StatusOK,
		"/matches/8":                     http.StatusNotFound,
		"/competitions/10932509/matches": http.StatusOK,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newRouterUnderTest(nil)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}

func TestRouterAdminMountedOnlyWhenConfigured(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/admin/matchlist/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")

	rr := httptest.NewRecorder()
	newRouterUnderTest(nil).ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected admin route unmounted, got %d", rr.Code)
	}

	stub := &testutil.StubPoller{}
	rr = httptest.NewRecorder()
	newRouterUnderTest(handlers.NewAdminHandler(stub, "secret", nil)).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected admin refresh 200, got %d", rr.Code)
	}
	if stub.PollCalls != 1 {
		t.Fatalf("expected one poll, got %d", stub.PollCalls)
	}
}
