package detector

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/qwickapps/tsfix/internal/domain"
)

// ProjectDetector implements domain.ProjectDetector for TypeScript/React
// trees by inspecting the usual marker files at the project root.
type ProjectDetector struct{}

func New() *ProjectDetector {
	return &ProjectDetector{}
}

// packageJSON is the subset of package.json the detector cares about.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func (d *ProjectDetector) Detect(projectPath string) (domain.ProjectInfo, error) {
	info := domain.ProjectInfo{SourceRoot: "."}

	if data, err := os.ReadFile(filepath.Join(projectPath, "package.json")); err == nil {
		info.HasPackageJSON = true

		var pkg packageJSON
		if err := json.Unmarshal(data, &pkg); err == nil {
			_, inDeps := pkg.Dependencies["react"]
			_, inDevDeps := pkg.DevDependencies["react"]
			info.UsesReact = inDeps || inDevDeps
		}
	}

	if _, err := os.Stat(filepath.Join(projectPath, "tsconfig.json")); err == nil {
		info.HasTSConfig = true
	}

	if st, err := os.Stat(filepath.Join(projectPath, "src")); err == nil && st.IsDir() {
		info.SourceRoot = "src"
	}

	return info, nil
}
