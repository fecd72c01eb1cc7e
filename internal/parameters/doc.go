// Package parameters resolves named text parameters from in-memory stores,
// YAML files, and the process environment. Sources can be chained so that
// earlier sources shadow later ones.
package parameters
