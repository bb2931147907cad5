package batch

import (
	"encoding/json"
	"os"

	"golang.org/x/image/math/f32"
)

// ManifestEntry represents one frame in the output manifest. Matrices
// are row-major flat arrays, the layout a uniform upload expects.
type ManifestEntry struct {
	Frame  int        `json:"frame"`
	Image  string     `json:"image"`
	Angle  float32    `json:"angle"`
	View   f32.Mat4   `json:"view"`
	Models []f32.Mat4 `json:"models"`
}

// Manifest lists the successfully written frames.
func Manifest(results []Result) []ManifestEntry {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		e := ManifestEntry{
			Frame:  r.Frame,
			Image:  r.Image,
			Angle:  r.Angle,
			View:   r.View.F32(),
			Models: make([]f32.Mat4, len(r.Models)),
		}
		for i, m := range r.Models {
			e.Models[i] = m.F32()
		}
		entries = append(entries, e)
	}
	return entries
}

// WriteManifest writes manifest.json for the results to path.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(Manifest(results), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
