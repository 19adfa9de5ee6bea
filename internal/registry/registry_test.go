package registry

import (
	"errors"
	"testing"
)

func TestBuiltinVariants(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d variants, want at least 2", len(list))
	}
	if list[0].ID != "2048" || list[1].ID != "2048_vehicles" {
		t.Errorf("List() order = %s, %s", list[0].ID, list[1].ID)
	}

	classic, err := Get(Default)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", Default, err)
	}
	if classic.BestKey != "bestScore" || classic.Theme != ThemeNumbers || !classic.TrackTiles {
		t.Errorf("classic variant = %+v", classic)
	}

	vehicles, _ := Get("2048_vehicles")
	if !vehicles.TrackTiles || vehicles.Theme != ThemeVehicles {
		t.Errorf("vehicles variant = %+v", vehicles)
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("tetris")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Get(unknown) error = %v, want ErrUnknownVariant", err)
	}
	if Exists("tetris") {
		t.Error("Exists(unknown) should be false")
	}
}

func TestRegisterDefaultsBestKey(t *testing.T) {
	Register(Variant{ID: "test_variant", Title: "Test"})

	v, err := Get("test_variant")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v.BestKey != "bestScore:test_variant" {
		t.Errorf("BestKey = %q", v.BestKey)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register(Variant{ID: "2048"})
}
