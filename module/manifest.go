package module

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"kyfoo/report"
)

// ManifestFileName is the module manifest kyfoo looks for at a module root,
// mirroring the teacher's ChaiModuleFileName convention.
const ManifestFileName = "kyfoo.toml"

// tomlManifest is a module manifest as encoded on disk, grounded on the
// teacher's tomlModule (depm/load_mod.go).
type tomlManifest struct {
	Name          string   `toml:"name"`
	KyfooVersion  string   `toml:"kyfoo-version"`
	Imports       []string `toml:"imports"`
	RootFileNames []string `toml:"sources"`
}

// Manifest is the validated, in-memory form of a module's kyfoo.toml.
type Manifest struct {
	Name        string
	AbsPath     string
	Imports     []string
	SourceFiles []string
}

// LoadManifest reads and validates the manifest at absPath/kyfoo.toml.
func LoadManifest(absPath string) (*Manifest, error) {
	buf, err := os.ReadFile(filepath.Join(absPath, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to read module manifest at %q: %w", absPath, err)
	}

	var tm tomlManifest
	if err := toml.Unmarshal(buf, &tm); err != nil {
		return nil, fmt.Errorf("malformed module manifest at %q: %w", absPath, err)
	}

	if tm.Name == "" {
		return nil, fmt.Errorf("module manifest at %q is missing a name", absPath)
	}

	return &Manifest{
		Name:        tm.Name,
		AbsPath:     absPath,
		Imports:     tm.Imports,
		SourceFiles: tm.RootFileNames,
	}, nil
}

// WarnVersionMismatch logs a non-fatal diagnostic when a manifest names a
// kyfoo-version different from this build's, mirroring the teacher's
// ReportModuleWarning.
func WarnVersionMismatch(r *report.Reporter, moduleName, manifestVersion, buildVersion string) {
	if manifestVersion == "" || manifestVersion == buildVersion {
		return
	}
	diag := report.NewDiagnostics(r, moduleName)
	diag.Warn(nil, "module %q targets kyfoo v%s, this build is v%s", moduleName, manifestVersion, buildVersion)
}
