// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides drawing operations for 2D graphics.

RectOp fills a rectangle and strokes its border, TextOp draws a
single line of text. Both are expressed in window pixels: unit
conversion and style resolution happen in the widgets that add them.
*/
package paint
