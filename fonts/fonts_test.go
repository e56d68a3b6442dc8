package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFont(t *testing.T) {
	if err := LoadFont(HUD, goregular.TTF, 24); err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if !Loaded(HUD) {
		t.Fatal("expected HUD font to be registered")
	}
	if HUD.Get() == nil {
		t.Fatal("expected a face")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font"), 12); err == nil {
		t.Fatal("expected parse error")
	}
	if Loaded("broken") {
		t.Fatal("broken font must not be registered")
	}
}

func TestGetMissingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
