// Package cli implements the interactive terminal frontend: the
// read–eval–print loop, prompt helpers, and the account, profile and
// contact commands.
package cli
