package recipes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestFetchPageListingPath(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = flatten(r)
		fmt.Fprint(w, `{"recipes":[{"id":1,"name":"Pasta"}],"total":50,"skip":12,"limit":6}`)
	})

	page, err := client.FetchPage(context.Background(), Query{
		Limit:  6,
		Skip:   12,
		SortBy: "rating",
		Order:  "desc",
	})
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}

	if gotPath != "/recipes" {
		t.Fatalf("request path = %q, want /recipes", gotPath)
	}
	if gotQuery["limit"] != "6" || gotQuery["skip"] != "12" {
		t.Fatalf("pagination params = %v, want limit=6 skip=12", gotQuery)
	}
	if gotQuery["sortBy"] != "rating" || gotQuery["order"] != "desc" {
		t.Fatalf("sort params = %v, want sortBy=rating order=desc", gotQuery)
	}
	if _, ok := gotQuery["q"]; ok {
		t.Fatalf("listing request should not carry a q parameter")
	}
	if page.Total != 50 || len(page.Recipes) != 1 {
		t.Fatalf("page = %+v, want 1 recipe and total 50", page)
	}
}

func TestFetchPageSearchPath(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = flatten(r)
		fmt.Fprint(w, `{"recipes":[{"id":3,"name":"Margherita Pizza"}],"total":3,"skip":0,"limit":6}`)
	})

	page, err := client.FetchPage(context.Background(), Query{Limit: 6, Search: "pizza"})
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}

	// Search rides a dedicated provider path, distinct from the listing.
	if gotPath != "/recipes/search" {
		t.Fatalf("request path = %q, want /recipes/search", gotPath)
	}
	if gotQuery["q"] != "pizza" {
		t.Fatalf("q param = %q, want pizza", gotQuery["q"])
	}
	if page.Total != 3 {
		t.Fatalf("page total = %d, want 3", page.Total)
	}
}

func TestFetchPageHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.FetchPage(context.Background(), Query{Limit: 6})
	if err == nil {
		t.Fatalf("FetchPage() should fail on HTTP 500")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("error %q should carry the status code", err)
	}
}

func TestFetchPageDecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"recipes": not json`)
	})

	_, err := client.FetchPage(context.Background(), Query{Limit: 6})
	if err == nil {
		t.Fatalf("FetchPage() should fail on a malformed body")
	}
	if !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("error %q should indicate a decode failure", err)
	}
}

func TestFetchPageDropsInvalidRecords(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"recipes":[{"id":1,"name":"Pasta"},{"id":0,"name":"No ID"},{"id":2,"name":""}],"total":3}`)
	})

	page, err := client.FetchPage(context.Background(), Query{Limit: 6})
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if len(page.Recipes) != 1 || page.Recipes[0].ID != 1 {
		t.Fatalf("valid records = %+v, want only id 1", page.Recipes)
	}
}

func TestFetchPageAllInvalid(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"recipes":[{"id":0},{"name":""}],"total":2}`)
	})

	_, err := client.FetchPage(context.Background(), Query{Limit: 6})
	if err == nil {
		t.Fatalf("FetchPage() should fail when no record is valid")
	}
}

func TestFetchPageEmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"recipes":[],"total":0}`)
	})

	page, err := client.FetchPage(context.Background(), Query{Limit: 6, Search: "zzzz"})
	if err != nil {
		t.Fatalf("empty result is not an error, got %v", err)
	}
	if len(page.Recipes) != 0 || page.Total != 0 {
		t.Fatalf("page = %+v, want empty", page)
	}
}

func TestFetchAllUsesZeroLimit(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = flatten(r)
		fmt.Fprint(w, `{"recipes":[{"id":1,"name":"Pasta"}],"total":1}`)
	})

	_, err := client.FetchAll(context.Background(), Query{Limit: 6, Skip: 12, Search: "pasta"})
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if gotQuery["limit"] != "0" || gotQuery["skip"] != "0" {
		t.Fatalf("FetchAll params = %v, want limit=0 skip=0", gotQuery)
	}
}

func TestParseBaseURL(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL empty error = %v", err)
	}
	if u.String() != "https://dummyjson.com" {
		t.Fatalf("default base = %q", u.String())
	}

	u, err = parseBaseURL("example.com")
	if err != nil {
		t.Fatalf("parseBaseURL error = %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("bare host should default to https, got %q", u.Scheme)
	}

	if _, err := parseBaseURL("http://bad url"); err == nil {
		t.Fatalf("parseBaseURL should reject an unparsable URL")
	}
}

func flatten(r *http.Request) map[string]string {
	out := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
