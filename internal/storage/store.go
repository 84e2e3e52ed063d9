package storage

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/fractview/internal/fractal"
)

// Store keeps finished renders on disk, one directory per render with
// the PNG image next to its metadata.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RenderMetadata struct {
	ID            string         `json:"id"`
	Region        string         `json:"region"`
	Timestamp     time.Time      `json:"timestamp"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	MaxIterations int            `json:"max_iterations"`
	Palette       string         `json:"palette"`
	Window        fractal.Window `json:"window"`
	ElapsedMS     float64        `json:"elapsed_ms"`
}

// Save writes img and meta under a fresh render directory and returns
// the render id. The id in meta is overwritten.
func (s *Store) Save(img *image.RGBA, meta RenderMetadata) (string, error) {
	renderID := fmt.Sprintf("%s_%d", meta.Region, time.Now().Unix())
	renderDir := filepath.Join(s.baseDir, renderID)

	if err := os.MkdirAll(renderDir, 0755); err != nil {
		return "", err
	}

	meta.ID = renderID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(renderDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	imgFile, err := os.Create(filepath.Join(renderDir, "render.png"))
	if err != nil {
		return "", err
	}
	defer imgFile.Close()

	if err := png.Encode(imgFile, img); err != nil {
		return "", err
	}

	return renderID, nil
}

func (s *Store) Load(renderID string) (*RenderMetadata, error) {
	metaPath := filepath.Join(s.baseDir, renderID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", renderID, err)
	}

	var meta RenderMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// List returns metadata for every stored render, newest first.
func (s *Store) List() ([]RenderMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var renders []RenderMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		renders = append(renders, *meta)
	}

	sort.Slice(renders, func(i, j int) bool {
		return renders[i].Timestamp.After(renders[j].Timestamp)
	})
	return renders, nil
}

// ImagePath returns the path of the PNG for a stored render.
func (s *Store) ImagePath(renderID string) string {
	return filepath.Join(s.baseDir, renderID, "render.png")
}
