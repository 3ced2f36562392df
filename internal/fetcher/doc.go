// Package fetcher retrieves the Broadway League weekly grosses page.
//
// The fetcher issues a single GET request with a desktop-browser User-Agent
// (the site rejects default client identifiers) and returns the raw response
// body. There is no retry: any transport or HTTP failure surfaces as a
// *TransportError and ends the run with an empty result.
package fetcher
