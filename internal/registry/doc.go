// Package registry describes the GitHub repositories that publish skills and
// MCP servers: where each one lists its entries through the contents API,
// where raw entry files are downloaded from, and the headers both requests
// carry.
package registry
