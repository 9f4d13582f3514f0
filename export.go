package appicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nativetranslator/appicon/utils"
)

// ManifestName is the file name of the asset catalog manifest.
const ManifestName = "Contents.json"

// Errors returned by the export pipeline.
var (
	ErrUpscale       = errors.New("target is larger than the reference image")
	ErrInvalidTarget = errors.New("invalid export target")
)

// Target describes one required output image and its manifest descriptor.
type Target struct {
	Filename string
	Pixels   int
	Idiom    string
	Scale    string
	Size     string
}

// DefaultTargets are the iPhone and App Store icon slots of an iOS app icon set.
var DefaultTargets = []Target{
	{Filename: "Icon-20@2x.png", Pixels: 40, Idiom: "iphone", Scale: "2x", Size: "20x20"},
	{Filename: "Icon-20@3x.png", Pixels: 60, Idiom: "iphone", Scale: "3x", Size: "20x20"},
	{Filename: "Icon-29@2x.png", Pixels: 58, Idiom: "iphone", Scale: "2x", Size: "29x29"},
	{Filename: "Icon-29@3x.png", Pixels: 87, Idiom: "iphone", Scale: "3x", Size: "29x29"},
	{Filename: "Icon-40@2x.png", Pixels: 80, Idiom: "iphone", Scale: "2x", Size: "40x40"},
	{Filename: "Icon-40@3x.png", Pixels: 120, Idiom: "iphone", Scale: "3x", Size: "40x40"},
	{Filename: "Icon-60@2x.png", Pixels: 120, Idiom: "iphone", Scale: "2x", Size: "60x60"},
	{Filename: "Icon-60@3x.png", Pixels: 180, Idiom: "iphone", Scale: "3x", Size: "60x60"},
	{Filename: "Icon-1024.png", Pixels: 1024, Idiom: "ios-marketing", Scale: "1x", Size: "1024x1024"},
}

// ManifestImage is one image record of the manifest.
type ManifestImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

// ManifestInfo holds the authoring metadata of the manifest.
type ManifestInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Manifest is the asset catalog description of an exported icon set.
type Manifest struct {
	Images []ManifestImage `json:"images"`
	Info   ManifestInfo    `json:"info"`
}

// NewManifest builds the manifest describing the targets, in the same order.
func NewManifest(targets []Target) *Manifest {
	m := &Manifest{
		Images: make([]ManifestImage, 0, len(targets)),
		Info:   ManifestInfo{Author: "xcode", Version: 1},
	}
	for _, t := range targets {
		m.Images = append(m.Images, ManifestImage{
			Filename: t.Filename,
			Idiom:    t.Idiom,
			Scale:    t.Scale,
			Size:     t.Size,
		})
	}
	return m
}

// ReadManifest loads the manifest stored in dir.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("could not read the manifest: %w", err)
	}
	m := new(Manifest)
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("could not decode the manifest: %w", err)
	}
	return m, nil
}

// Validate checks that the image records of the manifest and the image files
// stored in dir match one to one.
func (m *Manifest) Validate(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not list %s: %w", dir, err)
	}

	onDisk := make(map[string]bool)
	for _, e := range entries {
		if e.Type().IsRegular() && e.Name() != ManifestName {
			onDisk[e.Name()] = true
		}
	}

	var missing, extra []string
	listed := make(map[string]bool)
	for _, img := range m.Images {
		if listed[img.Filename] {
			return fmt.Errorf("%w: %s is listed twice", ErrInvalidTarget, img.Filename)
		}
		listed[img.Filename] = true
		if !onDisk[img.Filename] {
			missing = append(missing, img.Filename)
		}
	}
	for name := range onDisk {
		if !listed[name] {
			extra = append(extra, name)
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(extra)
		return fmt.Errorf("manifest does not match %s: missing %v, unlisted %v", dir, missing, extra)
	}
	return nil
}

// write serializes the manifest into dir, replacing any previous one.
func (m *Manifest) write(dir string) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not encode the manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("could not write the manifest: %w", err)
	}
	return path, nil
}

// Exporter options
type Exporter struct {
	Filter Filter
	// OnWrite, when set, is called after each file has been written.
	OnWrite func(path string, px int)
}

// ExportAll downscales img to every target, writes the images into dir
// followed by the manifest, and returns the written paths in that order.
// The targets are checked before anything touches the disk; afterwards the
// first failure aborts the remaining exports.
func (e *Exporter) ExportAll(img image.Image, targets []Target, dir string) ([]string, error) {
	if err := checkTargets(img, targets); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create the output directory: %w", err)
	}

	paths := make([]string, 0, len(targets)+1)
	for _, t := range targets {
		res, err := e.Filter.Resample(img, t.Pixels)
		if err != nil {
			return paths, fmt.Errorf("could not resample %s: %w", t.Filename, err)
		}

		path := filepath.Join(dir, t.Filename)
		if err := writeImage(path, res); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		e.notify(path, t.Pixels)
	}

	path, err := NewManifest(targets).write(dir)
	if err != nil {
		return paths, err
	}
	paths = append(paths, path)
	e.notify(path, 0)

	return paths, nil
}

func (e *Exporter) notify(path string, px int) {
	if e.OnWrite != nil {
		e.OnWrite(path, px)
	}
}

// checkTargets verifies that every target can be produced by downscaling img
// and that the file names are unique, plain PNG file names.
func checkTargets(img image.Image, targets []Target) error {
	ref := utils.Min(img.Bounds().Dx(), img.Bounds().Dy())

	seen := make(map[string]bool, len(targets))
	for _, t := range targets {
		switch {
		case t.Filename == "" || t.Filename != filepath.Base(t.Filename):
			return fmt.Errorf("%w: bad file name %q", ErrInvalidTarget, t.Filename)
		case !strings.EqualFold(filepath.Ext(t.Filename), ".png"):
			return fmt.Errorf("%w: %s is not a PNG file", ErrInvalidTarget, t.Filename)
		case seen[t.Filename]:
			return fmt.Errorf("%w: %s is listed twice", ErrInvalidTarget, t.Filename)
		case t.Pixels <= 0:
			return fmt.Errorf("%w: %s has size %d", ErrInvalidTarget, t.Filename, t.Pixels)
		case t.Pixels > ref:
			return fmt.Errorf("%w: %s needs %dpx, the reference is %dpx", ErrUpscale, t.Filename, t.Pixels, ref)
		}
		seen[t.Filename] = true
	}
	return nil
}
