// Package redump is the HTTP client for the disc catalog website.
//
// It logs in through the forum form, pages through quicksearch results, and
// downloads disc detail pages. Pages are scraped with goquery, requests are
// paced by a token bucket, and the session cookie lives in a public-suffix
// aware jar. Every failure wraps services.ErrTransport, services.ErrParse or
// services.ErrAuth.
package redump
