// Package catalog holds the catalog entities and the fallback policy that
// decides, per request, whether a live registry listing or an embedded static
// catalog is returned. Resolve never fails: it is the error boundary for
// marketplace browsing.
package catalog
