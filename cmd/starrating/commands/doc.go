// Package commands implements the starrating command line: render, svg,
// simulate and serve.
package commands
