package config

import (
	"testing"

	"github.com/lbatteau/gazette/internal/gallery"
)

func TestGalleryParamsDefaults(t *testing.T) {
	cfg := &Config{}
	p := cfg.GalleryParams()
	if p.RowHeight != gallery.DefaultRowHeight {
		t.Errorf("RowHeight = %v, want %v", p.RowHeight, gallery.DefaultRowHeight)
	}
	if p.RowGap != gallery.DefaultRowGap {
		t.Errorf("RowGap = %v, want %v", p.RowGap, gallery.DefaultRowGap)
	}
}

func TestGalleryParamsConfigured(t *testing.T) {
	cfg := &Config{Layout: LayoutConfig{RowHeight: 10, RowGap: 4}}
	p := cfg.GalleryParams()
	if p.RowHeight != 10 || p.RowGap != 4 {
		t.Errorf("params = %+v, want 10/4", p)
	}
}

func TestColumnsDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.Columns(); got != 3 {
		t.Errorf("Columns() = %d, want 3", got)
	}
	cfg.Layout.Columns = 5
	if got := cfg.Columns(); got != 5 {
		t.Errorf("Columns() = %d, want 5", got)
	}
}

func TestScrollDurationDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.ScrollDuration(); got != 300 {
		t.Errorf("ScrollDuration() = %d, want 300", got)
	}
}

func TestExpandPath(t *testing.T) {
	if got := expandPath("/absolute/path"); got != "/absolute/path" {
		t.Errorf("expandPath changed absolute path: %s", got)
	}
	if got := expandPath(""); got != "" {
		t.Errorf("expandPath(\"\") = %q", got)
	}
}
