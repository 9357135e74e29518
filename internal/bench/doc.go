// Package bench runs the rain off-screen and summarizes per-tick counters.
package bench
