// Package application provides function initialization and dependency wiring.
// It resolves parameter sources, initializes the functions, and builds the
// router and HTTP server, keeping the main package focused on CLI parsing and
// orchestration.
package application
