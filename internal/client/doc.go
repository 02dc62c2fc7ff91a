// Package client implements the interactive dashboard client runtime.
//
// It wires the terminal UI, the API adapter, and the session manager into a
// single process lifecycle: restore the persisted session, run the login
// flow when needed, and keep the dashboard loop alive across logouts and
// backend-forced session expiries.
package client
