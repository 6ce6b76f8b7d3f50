package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"stylepulse/internal/domain/post"
)

// WritePosts writes posts in the input CSV format. Used by the fetch
// command so its output can feed straight into the pipeline.
func WritePosts(path string, posts []post.Post) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating posts file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(requiredColumns); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	for _, p := range posts {
		record := []string{
			p.Date.Format("2006-01-02"),
			p.Platform,
			p.PostID,
			p.Text,
			strconv.Itoa(p.Likes),
			strconv.Itoa(p.Views),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("error writing post %s: %w", p.PostID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("error flushing posts file: %w", err)
	}
	return nil
}
