// Package normalize maps provider-specific JSON into catalog entities. Every
// body is validated against an embedded JSON Schema before decoding, so a
// missing or mistyped field is reported as a DecodeError rather than being
// silently zero-valued.
package normalize
