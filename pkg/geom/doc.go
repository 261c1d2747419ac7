// Package geom provides the integer geometry primitives shared by the grid
// layout engine and its hosts.
//
// All coordinates are in pixels with the origin at the top-left corner of the
// container. Rectangles are half-open: Right and Bottom are exclusive.
package geom
