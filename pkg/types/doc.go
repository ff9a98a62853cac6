// Package types defines the Board interface, the dashboard entity types
// (Item, LayoutEntry, Page, Change), configuration, and standard errors for
// quadboard.
//
// A board owns a pool of unplaced items and an append-only sequence of pages.
// Each page has four quadrants; each quadrant holds the items dropped into it
// and a grid geometry that can be rearranged freely.
package types
