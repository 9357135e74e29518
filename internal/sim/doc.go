// Package sim is the column simulator behind the rain.
//
// The screen is modelled as one slot per terminal column; each slot holds
// at most one [Stream]. Every call to [Simulator.Advance] moves each stream
// one row down, retires streams whose whole trail is below the last row,
// and spawns new streams into empty columns:
//
//   - empty columns are visited in a fresh random order each tick
//   - each is accepted with probability DensityPct/100
//   - no more than MaxSpawns streams start in one tick
//   - a new stream starts at row 0 with a length drawn from 1..MaxLength
//
// All randomness comes from the injected [Source], so tests can script the
// exact sequence of draws.
package sim
