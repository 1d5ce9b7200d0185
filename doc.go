// Package lvgl provides the shared primitives for an embedded-style widget
// toolkit: colors, draw-space points, integer widget areas, and the widget
// dispatch contract hosts use to drive redraw and lifecycle.
//
// Widgets live in subpackages (see scale for the linear scale gauge) and
// emit drawing primitives through the draw package rather than rasterizing
// anything themselves. Text measurement is provided by the text package.
//
// By default the toolkit produces no log output; call SetLogger to enable
// structured logging.
package lvgl
