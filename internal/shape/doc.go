// Package shape rasterizes the aliased drawing primitives used by images:
// rectangles, circles and pie slices, stroked or filled.
//
// All primitives write straight into a pixel buffer. Opaque colors replace
// the destination pixel, translucent colors are composited source-over.
// Every pixel of a primitive is written exactly once, so a translucent
// outline never darkens where its segments meet. Pixels outside the buffer
// are clipped silently.
//
// # Coordinates
//
// Coordinates are integer pixel positions with y pointing down. Rectangle
// corners are inclusive.
//
// # Pie Angles
//
// Pie and FillPie take angles in degrees measured clockwise from east,
// the convention of the classic SDL_gfx primitives. Angles are reduced
// modulo 360 with the sign of the dividend kept, and a start angle greater
// than the end angle wraps the slice through east. Callers that think in
// counter-clockwise angles convert with start' = 360-end, end' = 360-start.
package shape
