package gallery

import "testing"

func TestProgress(t *testing.T) {
	tests := []struct {
		name    string
		scrollY float64
		docH    float64
		viewH   float64
		want    float64
	}{
		{"top of document", 0, 2000, 500, 0},
		{"halfway", 750, 2000, 500, 0.5},
		{"bottom", 1500, 2000, 500, 1},
		{"negative offset clamps", -50, 2000, 500, 0},
		{"overshoot clamps", 9999, 2000, 500, 1},
		{"content shorter than viewport", 100, 300, 500, 0},
		{"content equals viewport", 0, 500, 500, 0},
		{"zero document", 0, 0, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.scrollY, tt.docH, tt.viewH)
			if got != tt.want {
				t.Errorf("Progress(%v, %v, %v) = %v, want %v", tt.scrollY, tt.docH, tt.viewH, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Progress out of [0,1]: %v", got)
			}
		})
	}
}

func TestCoverStrategies(t *testing.T) {
	dims := []ImageDims{
		{Width: 400, Height: 600},
		{Width: 1600, Height: 900},
		{Width: 800, Height: 800},
	}

	if got := FirstImageCover(dims); got != 0 {
		t.Errorf("FirstImageCover = %d, want 0", got)
	}
	if got := WidestImageCover(dims); got != 1 {
		t.Errorf("WidestImageCover = %d, want 1", got)
	}

	// Nothing decoded yet: fall back to the first image.
	unknown := []ImageDims{{}, {}, {}}
	if got := WidestImageCover(unknown); got != 0 {
		t.Errorf("WidestImageCover with unknown dims = %d, want 0", got)
	}
}
