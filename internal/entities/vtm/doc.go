// Package vtm implements the Vampire: The Masquerade (5th edition) character
// record: traits, blood-related value types and the stats derived from them.
//
// The record is data plus a handful of pure calculations. Persistence lives in
// internal/repositories/character; this package only defines the JSON shape.
package vtm
