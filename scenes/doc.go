// Package scenes holds ready-made scenes used by the example programs.
package scenes
