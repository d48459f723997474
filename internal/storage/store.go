package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/lindsim/internal/curve"
	"github.com/san-kum/lindsim/internal/turtle"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	System     string    `json:"system"`
	Timestamp  time.Time `json:"timestamp"`
	Iterations int       `json:"iterations"`
	Symbols    int       `json:"symbols"`
	Points     int       `json:"points"`
	Distance   float64   `json:"distance"`
}

// Save writes one generated curve as a run directory: metadata.json next to
// a points.csv with x,y rows.
func (s *Store) Save(result *curve.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", result.System, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	distance := 0.0
	if len(result.Commands) > 0 {
		distance = result.Commands[0].Distance
	}

	meta := RunMetadata{
		ID:         runID,
		System:     result.System,
		Timestamp:  time.Now(),
		Iterations: result.Iterations,
		Symbols:    len(result.Symbols),
		Points:     len(result.Points),
		Distance:   distance,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "points.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "y"}); err != nil {
		return "", err
	}
	for _, p := range result.Points {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 9, 64),
			strconv.FormatFloat(p.Y, 'f', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadPoints(runID string) ([]turtle.Point, error) {
	csvPath := filepath.Join(s.baseDir, runID, "points.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []turtle.Point{}, nil
	}

	points := make([]turtle.Point, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		x, err := strconv.ParseFloat(records[i][0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		points = append(points, turtle.Point{X: x, Y: y})
	}

	return points, nil
}

type runExport struct {
	Meta   RunMetadata    `json:"meta"`
	Points []turtle.Point `json:"points"`
}

// ExportJSONStdout writes the full run (metadata plus point data) to stdout.
func ExportJSONStdout(meta *RunMetadata, points []turtle.Point) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{Meta: *meta, Points: points})
}
