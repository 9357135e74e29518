// Package palette maps a colour scheme and a fade level to a display colour.
//
// Six schemes are available, selectable at runtime with the keys 1-6:
//
//	1 green   2 blue   3 red   4 purple   5 cyan   6 rainbow
//
// Every scheme has a distinct head colour, a near-head glow and a linear
// fade toward the tail. Rainbow keeps the fade in brightness but derives
// the hue from the column, so neighbouring streams cycle through the
// spectrum.
package palette
