package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	banks, err := Default()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	if len(banks) != 35 {
		t.Fatalf("expected 35 banks, got %d", len(banks))
	}
	if banks[0].Name != "Vietcombank" || banks[len(banks)-1].Name != "PG Bank" {
		t.Fatalf("registry order not preserved: first %s last %s", banks[0].Name, banks[len(banks)-1].Name)
	}

	vcb, ok := Lookup(banks, "Vietcombank")
	if !ok || !vcb.HasAppStoreApp() || *vcb.AppStoreID != 561433133 {
		t.Fatalf("unexpected Vietcombank entry %+v", vcb)
	}
	if !vcb.HasPlayStoreApp() || *vcb.PlayPackageID != "com.VCB" {
		t.Fatalf("unexpected Vietcombank package id")
	}

	vrb, ok := Lookup(banks, "VRB")
	if !ok {
		t.Fatalf("VRB missing from registry")
	}
	if vrb.HasAppStoreApp() || vrb.HasPlayStoreApp() {
		t.Fatalf("VRB must have no store ids, got %+v", vrb)
	}

	shb, _ := Lookup(banks, "SHB")
	if !shb.HasAppStoreApp() || shb.HasPlayStoreApp() {
		t.Fatalf("SHB must only have an app store id")
	}
}

func TestParseRejectsEmptyRegistry(t *testing.T) {
	_, err := Parse([]byte("banks: []\n"))
	if !errors.Is(err, ErrEmptyRegistry) {
		t.Fatalf("expected ErrEmptyRegistry, got %v", err)
	}
}

func TestParseValidation(t *testing.T) {
	cases := map[string]string{
		"missing name":   "banks:\n  - app_store_id: 1\n",
		"duplicate name": "banks:\n  - name: ACB\n  - name: ACB\n",
		"negative id":    "banks:\n  - name: ACB\n    app_store_id: -4\n",
		"bad package id": "banks:\n  - name: ACB\n    play_package_id: not a package\n",
		"malformed yaml": "banks: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestParseAllowsAbsentIdentifiers(t *testing.T) {
	banks, err := Parse([]byte("banks:\n  - name: VRB\n    app_store_id: null\n  - name: ACB\n    play_package_id: com.acb.acbonline\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if banks[0].AppStoreID != nil || banks[0].PlayPackageID != nil {
		t.Fatalf("expected absent ids for VRB")
	}
	if banks[1].AppStoreID != nil || !banks[1].HasPlayStoreApp() {
		t.Fatalf("unexpected ACB entry %+v", banks[1])
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banks.yaml")
	if err := os.WriteFile(path, []byte("banks:\n  - name: ACB\n    app_store_id: 950141024\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	banks, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(banks) != 1 || *banks[0].AppStoreID != 950141024 {
		t.Fatalf("unexpected banks %+v", banks)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
