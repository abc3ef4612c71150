// Package culture provides the closed enumerations the sixty-cycle engine
// indexes into: the five elements, yin and yang, directions, zodiac animals,
// the twelve terrains, the thirty nayin sounds, the six xun, the ten stars,
// hidden stem roles and the PengZu taboo sayings.
//
// Every cycle-backed type is an immutable value built from a package-level
// table; values are comparable with ==.
package culture
