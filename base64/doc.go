// Package base64 implements the standard padded Base64 encoding of
// RFC 4648 Section 4 on top of package blockcodec.
//
// The alphabet is A-Z, a-z, 0-9, '+' and '/', with '=' as padding. Three
// input bytes become four symbols; a final group of one or two bytes is
// padded with two or one '=' respectively.
//
// Decoding is strict. Decode accepts text with embedded whitespace and line
// breaks, which are removed before decoding; DecodeBytes expects clean
// symbols. Both reject input that Encode could not have produced, including
// final symbols whose unused low bits are set, so every accepted string is
// the unique encoding of its result.
//
// The URL-safe alphabet of Section 5 is not provided.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-4
package base64
