// internal/adapter/storage/post_reader.go

package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"stylepulse/internal/domain/post"
)

// requiredColumns are the columns the input CSV must provide. Extra
// columns are ignored.
var requiredColumns = []string{"date", "platform", "post_id", "text", "likes", "views"}

// dateLayouts are the accepted date formats, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// PostReader loads posts from the input CSV. Malformed rows fail the
// run with an error naming the offending row; silent skipping would
// corrupt the trend counts downstream.
type PostReader struct {
}

// NewPostReader creates a new post reader
func NewPostReader() *PostReader {
	return &PostReader{}
}

// ReadFile loads all posts from the CSV at path.
func (r *PostReader) ReadFile(path string) ([]post.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	defer f.Close()

	posts, err := r.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return posts, nil
}

// Read loads all posts from CSV data.
func (r *PostReader) Read(src io.Reader) ([]post.Post, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input is empty, expected a header row")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var posts []post.Post
	seen := map[string]int{}
	row := 1 // header was row 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		p, err := parsePost(record, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		if prev, ok := seen[p.PostID]; ok {
			return nil, fmt.Errorf("row %d: duplicate post_id %q (first seen at row %d)", row, p.PostID, prev)
		}
		seen[p.PostID] = row

		posts = append(posts, p)
	}

	return posts, nil
}

func parsePost(record []string, columns map[string]int) (post.Post, error) {
	field := func(name string) string {
		i := columns[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	for _, name := range requiredColumns {
		if name == "text" {
			continue // empty captions are allowed
		}
		if field(name) == "" {
			return post.Post{}, fmt.Errorf("missing required field %q", name)
		}
	}

	date, err := parseDate(field("date"))
	if err != nil {
		return post.Post{}, err
	}

	likes, err := parseCount("likes", field("likes"))
	if err != nil {
		return post.Post{}, err
	}
	views, err := parseCount("views", field("views"))
	if err != nil {
		return post.Post{}, err
	}

	return post.Post{
		Date:     date,
		Platform: field("platform"),
		PostID:   field("post_id"),
		Text:     field("text"),
		Likes:    likes,
		Views:    views,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

func parseCount(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("non-numeric %s %q", name, value)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative %s %d", name, n)
	}
	return n, nil
}
