package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"screener/internal/domain"
)

// Header is the first row of every exported ranking.
var Header = []string{"Resume", "Score", "Rank"}

// WriteCSV writes entries as Resume,Score,Rank rows in their given order.
func WriteCSV(w io.Writer, entries []domain.RankedEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{e.Name, strconv.FormatFloat(e.Score, 'g', -1, 64), strconv.Itoa(e.Rank)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes entries to path, creating parent directories as needed.
func SaveCSV(path string, entries []domain.RankedEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
