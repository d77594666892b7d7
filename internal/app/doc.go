// Package app contains the core application logic. It defines the App
// struct, its configuration, and the dump pipeline (bounded read, then hex
// formatting), decoupled from the command-line entrypoint.
package app
