package checker

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/vael-lang/vael/internal/diagnostics"
	"github.com/vael-lang/vael/internal/fixture"
	"github.com/vael-lang/vael/internal/strstore"
)

// archiveFile returns the contents of the named file in ar, or fails
// the test if it is absent.
func archiveFile(t *testing.T, ar *txtar.Archive, name string) []byte {
	t.Helper()
	for _, f := range ar.Files {
		if f.Name == name {
			return f.Data
		}
	}
	t.Fatalf("archive missing %q section", name)
	return nil
}

// TestGoldenScenarios runs every testdata/*.txtar archive end to end:
// parse its fixture.yaml through the demo front end, run Check, and
// compare the outcome against its want section ("ok" or "err <code>").
func TestGoldenScenarios(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("Glob() found no golden archives")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatalf("txtar.ParseFile(%s) error = %v", path, err)
			}
			yamlSrc := archiveFile(t, ar, "fixture.yaml")
			want := strings.TrimSpace(string(archiveFile(t, ar, "want")))

			store := strstore.New()
			topDecs, err := fixture.Parse(yamlSrc, store)
			if err != nil {
				t.Fatalf("fixture.Parse() error = %v", err)
			}

			checkErr := Check(store, topDecs)

			if want == "ok" {
				if checkErr != nil {
					t.Fatalf("Check() error = %v, want ok", checkErr)
				}
				return
			}

			code, ok := strings.CutPrefix(want, "err ")
			if !ok {
				t.Fatalf("unrecognized want section %q", want)
			}
			derr, ok := checkErr.(*diagnostics.Error)
			if !ok {
				t.Fatalf("Check() error = %v, want *diagnostics.Error with code %s", checkErr, code)
			}
			if string(derr.Code) != code {
				t.Errorf("Check() code = %s, want %s", derr.Code, code)
			}
		})
	}
}
