package yahoo

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/juvenalculino/carteira/date"
)

const chartPayload = `{
  "chart": {
    "result": [
      {
        "meta": {"currency": "BRL", "symbol": "PETR4.SA"},
        "timestamp": [1735776000, 1735862400, 1736121600],
        "indicators": {
          "quote": [{"close": [38.0, 38.5, 39.0]}],
          "adjclose": [{"adjclose": [38.21, null, 39.02]}]
        }
      }
    ],
    "error": null
  }
}`

const errorPayload = `{
  "chart": {
    "result": null,
    "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	// A plain client: the disk cache is pointless against httptest.
	return &Client{BaseURL: srv.URL, HTTP: srv.Client()}
}

func TestAdjustedCloses(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, chartPayload)
	})

	from, to := date.MustParse("2025-01-02"), date.MustParse("2025-01-06")
	hist, err := client.AdjustedCloses("PETR4.SA", from, to)
	if err != nil {
		t.Fatalf("AdjustedCloses: %v", err)
	}

	if gotPath != "/v8/finance/chart/PETR4.SA" {
		t.Errorf("request path = %q", gotPath)
	}
	for _, want := range []string{"interval=1d", "period1=", "period2=", "includeAdjustedClose=true"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q is missing %q", gotQuery, want)
		}
	}

	// The null observation is skipped.
	if hist.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", hist.Len())
	}
	if day, v := hist.First(); day != date.MustParse("2025-01-02") || v != 38.21 {
		t.Errorf("First() = %v %v, want 2025-01-02 38.21", day, v)
	}
	if day, v := hist.Latest(); day != date.MustParse("2025-01-06") || v != 39.02 {
		t.Errorf("Latest() = %v %v, want 2025-01-06 39.02", day, v)
	}
}

func TestAdjustedCloses_ChartError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, errorPayload)
	})

	_, err := client.AdjustedCloses("NOPE.SA", date.MustParse("2025-01-02"), date.MustParse("2025-01-06"))
	if err == nil {
		t.Fatal("want an error when yahoo reports one")
	}
	if !strings.Contains(err.Error(), "No data found") {
		t.Errorf("error %q should surface yahoo's description", err)
	}
}

func TestAdjustedCloses_HTTPFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	})

	if _, err := client.AdjustedCloses("PETR4.SA", date.MustParse("2025-01-02"), date.MustParse("2025-01-06")); err == nil {
		t.Fatal("want an error on a non-200 response")
	}
}

func TestAdjustedCloses_AllNullSeries(t *testing.T) {
	payload := `{"chart":{"result":[{"timestamp":[1735776000],"indicators":{"adjclose":[{"adjclose":[null]}]}}],"error":null}}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	})

	if _, err := client.AdjustedCloses("PETR4.SA", date.MustParse("2025-01-02"), date.MustParse("2025-01-06")); err == nil {
		t.Fatal("want an error when every observation is null")
	}
}
