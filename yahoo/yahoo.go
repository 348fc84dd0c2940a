// Package yahoo fetches daily adjusted closes from the Yahoo Finance v8
// chart API.
package yahoo

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/juvenalculino/carteira"
	"github.com/juvenalculino/carteira/date"
)

const defaultBaseURL = "https://query2.finance.yahoo.com"

// Client is a carteira.Quoter over the Yahoo Finance chart endpoint.
//
// Responses are cached on disk with a daily expiry, so repeated valuation
// passes within the same day hit the network once per ticker.
type Client struct {
	BaseURL string       // defaults to the public Yahoo endpoint
	HTTP    *http.Client // defaults to a daily-caching client
}

var _ carteira.Quoter = (*Client)(nil)

// NewClient returns a client over the public Yahoo endpoint with the
// daily-expiring disk cache.
func NewClient() *Client {
	return &Client{BaseURL: defaultBaseURL, HTTP: newDailyCachingClient()}
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultBaseURL
}

func (c *Client) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return newDailyCachingClient()
}

/*
	{
	  "chart": {
	    "result": [
	      {
	        "meta": { "currency": "BRL", "symbol": "PETR4.SA", ... },
	        "timestamp": [1719840600, ...],
	        "indicators": {
	          "quote": [ { "close": [...], ... } ],
	          "adjclose": [ { "adjclose": [38.21, ...] } ]
	        }
	      }
	    ],
	    "error": null
	  }
	}
*/

// AdjustedCloses returns the daily adjusted-close series for the ticker over
// [from, to], bounds included. An empty range, an unknown ticker or a chart
// error from Yahoo are all errors.
func (c *Client) AdjustedCloses(ticker string, from, to date.Date) (*date.History[float64], error) {
	// period2 is exclusive, push it one day to include 'to'.
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d&includeAdjustedClose=true",
		c.baseURL(), url.PathEscape(ticker), from.Unix(), to.Add(1).Unix())

	var jobj any
	if err := jwget(c.client(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("could not fetch prices for %s: %w", ticker, err)
	}

	// Yahoo reports business errors in-band.
	if desc, err := jsonpath.Get("$.chart.error.description", jobj); err == nil {
		if msg, ok := desc.(string); ok && msg != "" {
			return nil, fmt.Errorf("yahoo error for %s: %s", ticker, msg)
		}
	}

	timestamps, err := jsonArray("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return nil, fmt.Errorf("no price data found for %s: %w", ticker, err)
	}
	closes, err := jsonArray("$.chart.result[0].indicators.adjclose[0].adjclose", jobj)
	if err != nil {
		return nil, fmt.Errorf("no adjusted close for %s: %w", ticker, err)
	}
	if len(closes) != len(timestamps) {
		return nil, fmt.Errorf("inconsistent series for %s: %d timestamps, %d closes", ticker, len(timestamps), len(closes))
	}

	hist := &date.History[float64]{}
	for i, jts := range timestamps {
		ts, ok := jts.(float64)
		if !ok {
			continue
		}
		// Yahoo pads the series with nulls on non-trading days.
		value, ok := closes[i].(float64)
		if !ok {
			continue
		}
		hist.Append(date.FromUnix(int64(ts)), value)
	}
	if hist.Len() == 0 {
		return nil, fmt.Errorf("no price data found for %s in [%s, %s]", ticker, from, to)
	}
	return hist, nil
}

// jsonArray extracts a JSON array at the given path.
func jsonArray(path string, jobj any) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q is not an array", path)
	}
	return jlist, nil
}
