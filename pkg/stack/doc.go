// Package stack provides the ordered focus collection consumed by layout
// algorithms.
//
// A [Stack] holds unique elements in tiling order together with a focused
// element. The window manager that drives the layout engine owns the stack
// and mutates it as windows open, close, and change focus; layouts only read
// it. Algorithms must not assume the focused element comes first in
// iteration order.
package stack
