package rapidapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/live-arena-service/internal/providers"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func respond(status int, body string, header http.Header) roundTripperFunc {
	return func(req *http.Request) (*http.Response, error) {
		_ = req
		if header == nil {
			header = make(http.Header)
		}
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     header,
		}, nil
	}
}

const sampleBody = `{
	"success": true,
	"msg": "Success",
	"status": 200,
	"data": {
		"t1": [
			{
				"gmid": 509853657,
				"ename": "Newcastle v PSV",
				"etid": 1,
				"cid": 7846996,
				"cname": "EUROPE CHAMPIONS LEAGUE",
				"iplay": true,
				"stime": "1/22/2026 12:30:00 AM",
				"status": "OPEN",
				"section": [
					{"sid": 781680, "sno": 1, "gstatus": "ACTIVE", "nat": "Newcastle", "odds": [{"sid": 781680, "odds": 1.35, "otype": "back", "oname": "back1", "size": 17608.52}]},
					{"sid": 781681, "sno": 3, "gstatus": "ACTIVE", "nat": "PSV", "odds": []}
				]
			},
			{
				"GMID": 509853658,
				"Ename": "Leeds v Hull",
				"Cid": 10932509,
				"Cname": "ENGLAND Championship",
				"Iplay": false,
				"Status": "OPEN"
			}
		]
	}
}`

func TestFetchMatchListSendsHeadersAndDecodes(t *testing.T) {
	fixed := time.Date(2026, 1, 22, 1, 23, 36, 0, time.FixedZone("X", 3600))
	var captured *http.Request

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return respond(http.StatusOK, sampleBody, nil)(req)
	})

	client := NewClient(Config{
		BaseURL:    "https://feed.example.com/",
		APIHost:    "all-sport-live-stream.p.rapidapi.com",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
	})
	client.now = func() time.Time { return fixed }

	snap, err := client.FetchMatchList(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.Method != http.MethodGet {
		t.Fatalf("expected GET, got %s", captured.Method)
	}
	if captured.URL.Path != defaultPath {
		t.Fatalf("expected %s path, got %s", defaultPath, captured.URL.Path)
	}
	if captured.URL.Query().Get("sportId") != "1" {
		t.Fatalf("expected sportId=1, got %s", captured.URL.RawQuery)
	}
	if got := captured.Header.Get(headerAPIHost); got != "all-sport-live-stream.p.rapidapi.com" {
		t.Fatalf("expected api host header, got %q", got)
	}
	if got := captured.Header.Get(headerAPIKey); got != "secret" {
		t.Fatalf("expected api key header, got %q", got)
	}

	if !snap.Success || snap.Msg != "Success" || snap.Status != 200 {
		t.Fatalf("unexpected envelope %+v", snap)
	}
	if snap.Len() != 2 {
		t.Fatalf("expected 2 matches, got %d", snap.Len())
	}
	first := snap.Matches()[0]
	if first.Gmid != 509853657 || first.Cid != 7846996 || !first.Iplay {
		t.Fatalf("unexpected first match %+v", first)
	}
	if first.HomeTeam() != "Newcastle" || first.AwayTeam() != "PSV" {
		t.Fatalf("unexpected teams %q v %q", first.HomeTeam(), first.AwayTeam())
	}
	if second := snap.Matches()[1]; second.Gmid != 509853658 || second.Cname != "ENGLAND Championship" {
		t.Fatalf("expected case-insensitive decode, got %+v", second)
	}
	if !snap.LastUpdatedAt.Equal(fixed) || snap.LastUpdatedAt.Location() != time.UTC {
		t.Fatalf("expected last updated stamped in UTC, got %s", snap.LastUpdatedAt)
	}
}

func TestFetchMatchListRateLimited(t *testing.T) {
	header := make(http.Header)
	header.Set(headerRetryAfter, "7")
	header.Set(headerRemaining, "0")
	client := NewClient(Config{HTTPClient: &http.Client{Transport: respond(http.StatusTooManyRequests, "slow down", header)}})

	_, err := client.FetchMatchList(context.Background())
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rlErr.RetryAfter != 7*time.Second || rlErr.Remaining != "0" || rlErr.StatusCode != 429 {
		t.Fatalf("unexpected rate limit details %+v", rlErr)
	}
	if rlErr.Provider != providerName || rlErr.Message != "slow down" {
		t.Fatalf("unexpected rate limit identity %+v", rlErr)
	}
}

func TestFetchMatchListHandlesNon200(t *testing.T) {
	client := NewClient(Config{HTTPClient: &http.Client{Transport: respond(http.StatusBadGateway, "boom", nil)}})

	_, err := client.FetchMatchList(context.Background())
	if err == nil || !strings.Contains(err.Error(), "502") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected status error, got %v", err)
	}
	if _, ok := providers.AsRateLimitError(err); ok {
		t.Fatalf("502 must not be treated as rate limit")
	}
}

func TestFetchMatchListHandlesMalformedBody(t *testing.T) {
	client := NewClient(Config{HTTPClient: &http.Client{Transport: respond(http.StatusOK, `{"success": tru`, nil)}})

	if _, err := client.FetchMatchList(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFetchMatchListHandlesTransportError(t *testing.T) {
	dialErr := errors.New("dial tcp: connection refused")
	client := NewClient(Config{HTTPClient: &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, dialErr
	})}})

	_, err := client.FetchMatchList(context.Background())
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestFetchMatchListEmptyDataYieldsEmptyList(t *testing.T) {
	client := NewClient(Config{HTTPClient: &http.Client{Transport: respond(http.StatusOK, `{"success":true,"msg":"Success","status":200,"data":{}}`, nil)}})

	snap, err := client.FetchMatchList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if snap.Data.T1 == nil || snap.Len() != 0 {
		t.Fatalf("expected empty non-nil match list, got %+v", snap.Data.T1)
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{})
	if client.baseURL != defaultBaseURL || client.path != defaultPath || client.sportID != defaultSportID {
		t.Fatalf("unexpected defaults %+v", client)
	}
	if client.apiHost != "all-sport-live-stream.p.rapidapi.com" {
		t.Fatalf("expected api host derived from base url, got %q", client.apiHost)
	}
	if client.Name() != providerName {
		t.Fatalf("unexpected name %s", client.Name())
	}
}
