// Package crest provides a retained-mode terminal UI toolkit for Go.
//
// Applications build a tree of views that negotiate their own size against
// available space, paint themselves through clipped viewports, and react to
// mouse, keyboard, and tick events. Users import this single package for the
// complete public API: the view contract, viewports, containers, the screen
// driver, and the basic widget set.
package crest
