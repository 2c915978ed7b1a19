// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "testing"

func TestSeed(t *testing.T) {
	store := setupStore(t)

	if err := store.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	sections, err := store.AllSections()
	if err != nil {
		t.Fatalf("AllSections failed: %v", err)
	}
	if len(sections) != 7 {
		t.Fatalf("Expected 7 seeded sections, got %d", len(sections))
	}
	if sections[0].Key != "especiales" {
		t.Errorf("Expected especiales first, got %s", sections[0].Key)
	}

	t.Run("sinLicor sizes", func(t *testing.T) {
		sizes, err := store.SizesBySection("sinLicor")
		if err != nil {
			t.Fatalf("SizesBySection failed: %v", err)
		}
		if len(sizes) != 4 {
			t.Errorf("Expected 4 sinLicor sizes, got %d", len(sizes))
		}
	})

	t.Run("especiales subsections", func(t *testing.T) {
		subs, err := store.SubsectionsBySection("especiales")
		if err != nil {
			t.Fatalf("SubsectionsBySection failed: %v", err)
		}
		if len(subs) != 2 {
			t.Fatalf("Expected 2 especiales subsections, got %d", len(subs))
		}
		if subs[0].Title != "Con Licor (16 Oz)" {
			t.Errorf("Expected Con Licor subsection first, got %s", subs[0].Title)
		}

		conLicor, err := store.ItemsBySubsection(subs[0].ID)
		if err != nil {
			t.Fatalf("ItemsBySubsection failed: %v", err)
		}
		if len(conLicor) != 4 {
			t.Errorf("Expected 4 items in Con Licor subsection, got %d", len(conLicor))
		}

		sinLicor, err := store.ItemsBySubsection(subs[1].ID)
		if err != nil {
			t.Fatalf("ItemsBySubsection failed: %v", err)
		}
		if len(sinLicor) != 3 {
			t.Errorf("Expected 3 items in Sin Licor subsection, got %d", len(sinLicor))
		}
	})

	t.Run("inactive sections seeded", func(t *testing.T) {
		for _, key := range []string{"gaseosas", "cervezas"} {
			sec, err := store.GetSection(key)
			if err != nil {
				t.Fatalf("GetSection(%s) failed: %v", key, err)
			}
			if sec.Active {
				t.Errorf("Expected %s to be seeded inactive", key)
			}
		}
	})

	t.Run("inactive item seeded", func(t *testing.T) {
		items, err := store.ItemsBySection("cervezas")
		if err != nil {
			t.Fatalf("ItemsBySection failed: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("Expected 3 cervezas items, got %d", len(items))
		}
		if items[2].Name != "Corona" || items[2].Active {
			t.Errorf("Expected Corona seeded inactive, got %+v", items[2])
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		if err := store.Seed(); err != nil {
			t.Fatalf("Second Seed failed: %v", err)
		}

		sections, err := store.AllSections()
		if err != nil {
			t.Fatalf("AllSections failed: %v", err)
		}
		if len(sections) != 7 {
			t.Errorf("Expected seed to be a no-op, got %d sections", len(sections))
		}
	})
}
