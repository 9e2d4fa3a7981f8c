package imgproto

import (
	"image"
	"strings"
	"testing"
)

func TestPlaceholder(t *testing.T) {
	got := Placeholder(4, 2)
	if got != "    \n    " {
		t.Errorf("Placeholder(4,2) = %q", got)
	}
	if Placeholder(0, 2) != "" || Placeholder(4, 0) != "" {
		t.Error("degenerate placeholder should be empty")
	}
}

func TestTransmitChunksLargeImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	cmd, err := Transmit(img, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(cmd, "a=t,f=100,i=7,q=2") {
		t.Errorf("transmit command missing header: %.80s", cmd)
	}
	if !strings.Contains(cmd, escStart) || !strings.HasSuffix(cmd, escEnd) {
		t.Error("transmit command not wrapped in protocol escapes")
	}
}

func TestPlaceAndDelete(t *testing.T) {
	place := Place(3, 10, 5, 20, 8)
	if !strings.Contains(place, "\x1b[10;5H") {
		t.Errorf("place does not position cursor: %q", place)
	}
	if !strings.Contains(place, "a=p,i=3,p=1,c=20,r=8") {
		t.Errorf("place command malformed: %q", place)
	}

	del := Delete(3)
	if !strings.Contains(del, "a=d,d=i,i=3") {
		t.Errorf("delete command malformed: %q", del)
	}
}

func TestRendererDisabledDegrades(t *testing.T) {
	r := &Renderer{enabled: false, entries: make(map[sizedKey]uint32)}
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	if got := r.Prepare("a.jpg", img, 10, 5); got != "" {
		t.Errorf("disabled Prepare = %q, want empty", got)
	}
	if got := r.PlaceCmd("a.jpg", 1, 1, 10, 5); got != "" {
		t.Errorf("disabled PlaceCmd = %q, want empty", got)
	}
}

func TestRendererCachesPerSourceAndSize(t *testing.T) {
	r := &Renderer{enabled: true, entries: make(map[sizedKey]uint32)}
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	first := r.Prepare("a.jpg", img, 10, 5)
	if first == "" {
		t.Fatal("first Prepare returned nothing")
	}
	if again := r.Prepare("a.jpg", img, 10, 5); again != "" {
		t.Error("same source and size re-transmitted")
	}
	if resized := r.Prepare("a.jpg", img, 20, 10); resized == "" {
		t.Error("new size should re-transmit")
	}

	if r.PlaceCmd("a.jpg", 1, 1, 10, 5) == "" {
		t.Error("prepared image has no placement command")
	}
	if r.PlaceCmd("missing.jpg", 1, 1, 10, 5) != "" {
		t.Error("unprepared source should yield no placement")
	}

	clear := r.Clear()
	if !strings.Contains(clear, "a=d") {
		t.Errorf("Clear did not delete images: %q", clear)
	}
	if r.PlaceCmd("a.jpg", 1, 1, 10, 5) != "" {
		t.Error("placement survived Clear")
	}
}
