// Package render turns simulator state into terminal draw commands.
//
// [Compose] is pure: it takes the current streams and the [Frame] it
// returned last time and yields the commands that change the screen from
// one to the other. A cell left behind by a stream's tail becomes an
// [OpClear]; a cell whose glyph or colour changed becomes an [OpDraw];
// unchanged cells produce nothing.
package render
