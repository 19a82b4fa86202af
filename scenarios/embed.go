package scenarios

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var scenariosFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// readScenario returns the raw bytes of the named scenario. A file under
// scenarios/ on disk wins over the embedded copy so scenarios can be
// edited without rebuilding.
func readScenario(name string) ([]byte, error) {
	clean := cleanScenarioPath(name)
	if data, err := os.ReadFile(filepath.Join("scenarios", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return scenariosFS.ReadFile(clean)
}

// LoadScript returns the raw bytes of a spawn script, disk copy first.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("scenarios", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

func cleanScenarioPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "scenarios/")
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "scenarios/")
	s = strings.TrimPrefix(s, "scripts/")
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return fmt.Sprintf("scripts/%s", s)
}
