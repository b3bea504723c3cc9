// Package phrase implements the checksum-protected codec between raw
// entropy bytes and human-readable keyphrases.
//
// Contents
//
//   - Length, the closed catalog of valid phrase lengths with their
//     entropy, checksum and total bit widths
//   - Keyphrase, an immutable phrase/entropy pair constructed through
//     Generate, FromEntropy or FromPhrase
//   - Validate, checksum validation of untrusted phrase text
//
// # Encoding
//
// Entropy bytes are followed by one checksum byte (the first byte of the
// entropy's SHA-256 digest) and regrouped into 11-bit indices in strict
// big-endian bit order; each index selects a catalog word and the words
// are joined with single ASCII spaces. Decoding inverts the packing and
// rejects the phrase unless the embedded checksum matches the checksum
// recomputed from the decoded entropy.
package phrase
