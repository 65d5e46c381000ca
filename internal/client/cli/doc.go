// Package cli provides the interactive reflections command-line client.
//
// It wires configuration, the API gateway, the record stores and the session
// guard into an interactive REPL. Typical flow: verify any existing admin
// session, start a background connectivity watcher, and execute user
// commands.
//
// Key features:
//   - Browse published reflections, filtered by category
//   - Read a single reflection rendered as markdown
//   - Admin: create, edit, delete reflections (drafts included)
//   - Submit the contact form; admin inbox and dashboard stats
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
