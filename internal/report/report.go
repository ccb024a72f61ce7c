// Package report writes the documents and messages produced alongside
// generated microfrontends.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// ChecklistFileName is written into every prepared microfrontend.
const ChecklistFileName = "INTEGRATION_CHECKLIST.md"

//go:embed checklist.md.tmpl
var checklistSource string

var checklistTemplate = template.Must(template.New("checklist").Parse(checklistSource))

// ChecklistData fills the checklist template.
type ChecklistData struct {
	// Name is the microfrontend name.
	Name string
	// PackageName is the scoped package name, e.g. @growth-blocks/<name>.
	PackageName string
	// StubVersion is the version written to the manifest.
	StubVersion string
	// MicrofrontendsDir is where the host project keeps microfrontends.
	MicrofrontendsDir string
}

// RenderChecklist renders the checklist text.
func RenderChecklist(data ChecklistData) ([]byte, error) {
	var buf bytes.Buffer
	if err := checklistTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering checklist: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteChecklist writes INTEGRATION_CHECKLIST.md into outputDir and returns
// its path.
func WriteChecklist(outputDir string, data ChecklistData) (string, error) {
	text, err := RenderChecklist(data)
	if err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, ChecklistFileName)
	if err := os.WriteFile(path, text, 0o644); err != nil {
		return "", fmt.Errorf("writing checklist: %w", err)
	}
	return path, nil
}

// CreateNextSteps lists the manual steps after creating a microfrontend.
func CreateNextSteps(targetDir string) []string {
	return []string{
		"Go to the directory: cd " + filepath.ToSlash(targetDir),
		"Install dependencies: npm install",
		"Implement the component logic",
		"Add tests and stories",
		"Start Storybook: npm run storybook",
	}
}

// PrepareNextSteps lists the manual steps after preparing an integration.
func PrepareNextSteps(outputDir string) []string {
	return []string{
		"Review the files in: " + filepath.ToSlash(outputDir),
		"Read the integration checklist: " + ChecklistFileName,
		"Copy the directory into the host project",
		"Follow the checklist",
	}
}
