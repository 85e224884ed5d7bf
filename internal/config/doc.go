// Package config loads Ladle's TOML configuration.
//
// The file lives at ~/.config/ladle/config.toml by default and every field
// is optional:
//
//	base_url = "https://dummyjson.com"
//	page_size = 6
//	pagination = "server"   # or "client"
//	timeout_seconds = 10
//
// A missing file yields the defaults; a malformed file is an error.
// The pagination field resolves an otherwise ambiguous design point: with
// "server" the API is asked for each page via limit/skip, with "client" the
// full result set is fetched once per query change and sliced locally.
package config
