// Package recipes provides an HTTP client for a DummyJSON-style recipe API.
//
// # Overview
//
// The package defines the API client used to list and search recipes along
// with type-safe representations of the provider's JSON payloads. It handles
// HTTP communication, query-parameter construction for pagination and
// sorting, and validation of the records it receives.
//
// # Client Usage
//
// Create a client with the API base URL from configuration:
//
//	client, err := recipes.NewClient("https://dummyjson.com", 0)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	page, err := client.FetchPage(ctx, recipes.Query{
//		Limit:  6,
//		Skip:   0,
//		Search: "pizza",
//	})
//
// # Endpoints
//
// Two read-only provider endpoints are used:
//
//   - GET /recipes: paginated listing (limit, skip, sortBy, order)
//   - GET /recipes/search: same parameters plus a free-text q parameter
//
// The search endpoint is selected whenever Query.Search is non-empty; this
// split is a constraint of the provider's API surface.
//
// # Error Semantics
//
// A non-2xx response is an error carrying the HTTP status code. Transport
// and decode failures are wrapped errors. Every call is a single attempt:
// no retries, no timeouts beyond the http.Client deadline, no caching.
package recipes
