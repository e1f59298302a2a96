package testutil

import (
	"os"
	"reflect"
	"testing"

	"github.com/atomicstack/cheatmenu/internal/store"
)

func TestWriteEntriesRoundTrips(t *testing.T) {
	path := WriteEntries(t, SampleGroups())
	got, err := store.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, SampleGroups()) {
		t.Fatalf("expected %#v, got %#v", SampleGroups(), got)
	}
}

func TestMissingPathDoesNotExist(t *testing.T) {
	if _, err := os.Stat(MissingPath(t)); !os.IsNotExist(err) {
		t.Fatalf("expected missing path, got %v", err)
	}
}
