// Package app wires Ladle's components together: configuration, saved
// preferences, the recipe API client, and the terminal UI. Fetching is
// query-driven: there is no background poller; the UI issues one fetch per
// query change.
package app
