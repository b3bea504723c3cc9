// Package commands defines the keyphrase CLI.
//
// Commands
//
//   - generate   Create a new keyphrase from fresh or supplied entropy
//   - validate   Check a phrase against the word catalog and checksum
//   - entropy    Decode a phrase back to its entropy bytes
//   - seed       Derive the seed from a phrase and optional password
//
// # Implementation
//
// The root command resolves the --language flag to a word catalog before
// any subcommand runs, so handlers share a parsed language value. Phrase
// arguments may be passed quoted as one argument or unquoted as one
// argument per word; either way they are joined with single spaces before
// validation.
package commands
