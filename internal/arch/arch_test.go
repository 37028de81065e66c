// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// TestImportBoundaries keeps the layering honest: the pure core stays free
// of collaborators, collaborators stay free of the app, and nothing reaches
// back into cmd.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.." // module root
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// wormod-core is a separate module with no path back into wormod, so
	// the core boundary is enforced by the module split itself.
	bans := map[string][]string{
		"wormod/internal/lineio": {
			"wormod/internal/app", "wormod/internal/cli",
			"wormod/internal/appshell", "wormod/cmd/",
		},
		"wormod/internal/cli": {
			"wormod/internal/app", "wormod/internal/lineio",
			"wormod/internal/appshell", "wormod/cmd/",
		},
		"wormod/internal/memcheck": {
			"wormod/internal/app", "wormod/internal/cli",
			"wormod/internal/lineio", "wormod/cmd/",
		},
		"wormod/internal/app": {
			"wormod/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if p.Standard {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, bad := range forbidden {
					if strings.HasPrefix(dep, bad) {
						violations = append(violations, imp+" imports "+dep)
					}
				}
			}
		}
	}
	if len(violations) > 0 {
		t.Fatalf("layering violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
