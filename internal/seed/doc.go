// Package seed derives the downstream secret from a validated keyphrase
// and an optional password.
package seed
