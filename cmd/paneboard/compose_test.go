package main

import (
	"strings"
	"testing"
)

func TestCanvasOverlay(t *testing.T) {
	cv := newCanvas(10, 3)
	cv.overlay("ab\ncd", 2, 1)

	want := strings.Join([]string{
		"          ",
		"  ab      ",
		"  cd      ",
	}, "\n")
	if got := cv.String(); got != want {
		t.Errorf("canvas:\n%q\nwant:\n%q", got, want)
	}
}

func TestCanvasOverlayPaintsOver(t *testing.T) {
	cv := newCanvas(8, 1)
	cv.overlay("aaaa", 0, 0)
	cv.overlay("bb", 1, 0)

	if got, want := cv.String(), "abba    "; got != want {
		t.Errorf("canvas = %q, want %q", got, want)
	}
}

func TestCanvasOverlayClips(t *testing.T) {
	cv := newCanvas(6, 2)
	cv.overlay("123456789", 3, 0)
	cv.overlay("x", 2, 5)
	cv.overlay("y", 7, 1)

	want := strings.Join([]string{
		"   123",
		"      ",
	}, "\n")
	if got := cv.String(); got != want {
		t.Errorf("canvas:\n%q\nwant:\n%q", got, want)
	}
}
