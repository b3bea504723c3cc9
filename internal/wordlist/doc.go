// Package wordlist exposes the per-language word catalogs used to encode
// keyphrases.
//
// Each catalog is a bijection between the 2048 words of a standard list
// and their 11-bit indices. Catalogs are built once at init from the
// published lists and are immutable afterwards; lookups are case-sensitive
// and exact, with no normalization or trimming.
package wordlist
