package domain

import (
	"path/filepath"
	"testing"
)

func TestFileRef_Local(t *testing.T) {
	bare := NewFileRef("images/logo.png")
	if got := bare.Local("/srv/res"); got != filepath.Join("/srv/res", "images", "logo.png") {
		t.Errorf("unexpected local path: %q", got)
	}

	override := FileRef{Path: "logo.png", LocalBase: "/srv/skin"}
	if got := override.Local("/srv/res"); got != filepath.Join("/srv/skin", "logo.png") {
		t.Errorf("base override ignored: %q", got)
	}
}

func TestFileRef_Remote(t *testing.T) {
	ref := NewFileRef("images/logo.png")
	if got := ref.Remote("w/res"); got != "w/res/images/logo.png" {
		t.Errorf("unexpected remote path: %q", got)
	}
}

func TestFileRef_EqualUnder(t *testing.T) {
	a := NewFileRef("a.js")
	b := FileRef{Path: "a.js", LocalBase: "/srv/res"}

	if !a.EqualUnder("/srv/res", b, "/other") {
		t.Error("refs resolving to the same local path must be equal")
	}
	if a.EqualUnder("/srv/other", b, "/other") {
		t.Error("refs resolving to different local paths must not be equal")
	}
}

func TestStyleFile_MediaOrAll(t *testing.T) {
	if got := (StyleFile{Ref: NewFileRef("a.css")}).MediaOrAll(); got != MediaAll {
		t.Errorf("expected %q, got %q", MediaAll, got)
	}
	if got := (StyleFile{Ref: NewFileRef("a.css"), Media: "print"}).MediaOrAll(); got != "print" {
		t.Errorf("expected print, got %q", got)
	}
}
