package settings

import (
	"errors"
	"testing"

	"github.com/flexigpt/assethost-go/spec"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	id, ms, err := Split(spec.SettingsMap{
		spec.KeyManagerIdentifier: "org.manager",
		"k":                       "v",
	})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if id != "org.manager" {
		t.Fatalf("identifier: %q", id)
	}
	if len(ms) != 1 || ms["k"] != "v" {
		t.Fatalf("manager settings: %+v", ms)
	}
	if _, ok := ms[spec.KeyManagerIdentifier]; ok {
		t.Fatal("reserved key leaked into manager settings")
	}
}

func TestSplit_AbsentNilAndEmptyIdentifier(t *testing.T) {
	t.Parallel()

	for name, in := range map[string]spec.SettingsMap{
		"absent": {"k": "v"},
		"nil":    {spec.KeyManagerIdentifier: nil, "k": "v"},
		"empty":  {spec.KeyManagerIdentifier: "", "k": "v"},
	} {
		id, ms, err := Split(in)
		if err != nil {
			t.Fatalf("%s: Split: %v", name, err)
		}
		if id != "" {
			t.Fatalf("%s: identifier: %q, want empty", name, id)
		}
		if len(ms) != 1 || ms["k"] != "v" {
			t.Fatalf("%s: manager settings: %+v", name, ms)
		}
	}
}

func TestSplit_NonStringIdentifier(t *testing.T) {
	t.Parallel()

	_, _, err := Split(spec.SettingsMap{spec.KeyManagerIdentifier: 7})
	if !errors.Is(err, spec.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestSplit_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := spec.SettingsMap{spec.KeyManagerIdentifier: "org.manager", "k": "v"}
	if _, _, err := Split(in); err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(in) != 2 || in[spec.KeyManagerIdentifier] != "org.manager" {
		t.Fatalf("input mutated: %+v", in)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	got := Merge("org.manager", spec.SettingsMap{"k": "v"})
	if len(got) != 2 || got["k"] != "v" || got[spec.KeyManagerIdentifier] != "org.manager" {
		t.Fatalf("Merge: %+v", got)
	}

	empty := Merge("", nil)
	if len(empty) != 1 || empty[spec.KeyManagerIdentifier] != "" {
		t.Fatalf("Merge with no manager: %+v", empty)
	}
}

func TestStripReserved(t *testing.T) {
	t.Parallel()

	got := StripReserved(spec.SettingsMap{spec.KeyManagerIdentifier: "org.manager", "k": "v"})
	if len(got) != 1 || got["k"] != "v" {
		t.Fatalf("StripReserved: %+v", got)
	}
	if StripReserved(nil) != nil {
		t.Fatal("StripReserved(nil) must stay nil")
	}
}
