// Package cli provides the interactive HR management command-line client.
//
// It wires configuration, the backend gateway, backup sinks and an
// interactive REPL. Typical flow: prompt for credentials, open the local
// store, probe the backend, then execute user commands. Every change is
// applied locally first and mirrored to the backend when it is reachable.
//
// Key features:
//   - Login / Logout (any non-empty credentials open a session)
//   - Employees, attendance and leave requests: list, add, edit, delete
//   - Dashboard summary over a period, optionally per department
//   - Settings, notifications
//   - Export / import backups (local directory or S3), reset, xlsx report
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
