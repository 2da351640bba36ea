// Package base32 implements the standard padded Base32 encoding of
// RFC 4648 Section 6 on top of package blockcodec.
//
// Five input bytes become eight symbols from A-Z and 2-7. A final group of
// one to four bytes is padded with six, four, three or one '='. The
// extended hex alphabet of Section 7 is not provided.
//
// Decode removes whitespace before decoding; DecodeBytes does not. Both
// reject non-canonical input.
package base32
