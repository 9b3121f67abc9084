// Package game holds the snake's positional state machine: facing, grid points and the
// fixed-length body that advances one cell per step.
package game
