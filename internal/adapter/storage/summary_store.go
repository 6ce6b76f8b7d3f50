// internal/adapter/storage/summary_store.go

package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"stylepulse/internal/domain/trend"
)

// SummaryStore reads and writes the weekly tag summary CSV. Floats are
// written with shortest round-trip precision, so reading the file back
// reproduces the in-memory aggregation table exactly.
type SummaryStore struct {
}

// NewSummaryStore creates a new summary store
func NewSummaryStore() *SummaryStore {
	return &SummaryStore{}
}

// WriteFile writes the buckets to the CSV at path. When sentiment is
// disabled the avg_sentiment column is omitted entirely. An empty
// bucket list still produces a valid header-only file.
func (s *SummaryStore) WriteFile(path string, buckets []trend.WeekBucket, sentiment bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating summary file: %w", err)
	}
	defer f.Close()

	if err := s.Write(f, buckets, sentiment); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Write writes the buckets as CSV.
func (s *SummaryStore) Write(dst io.Writer, buckets []trend.WeekBucket, sentiment bool) error {
	w := csv.NewWriter(dst)

	header := []string{"week", "tag", "posts", "avg_engagement"}
	if sentiment {
		header = append(header, "avg_sentiment")
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	for _, b := range buckets {
		record := []string{
			b.Week,
			b.Tag,
			strconv.Itoa(b.Posts),
			strconv.FormatFloat(b.AvgEngagement, 'f', -1, 64),
		}
		if sentiment {
			value := ""
			if b.AvgSentiment != nil {
				value = strconv.FormatFloat(*b.AvgSentiment, 'f', -1, 64)
			}
			record = append(record, value)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("error writing bucket %s/%s: %w", b.Week, b.Tag, err)
		}
	}

	w.Flush()
	return w.Error()
}

// ReadFile loads a previously written summary CSV back into memory.
func (s *SummaryStore) ReadFile(path string) ([]trend.WeekBucket, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening summary file: %w", err)
	}
	defer f.Close()

	buckets, err := s.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buckets, nil
}

// Read parses summary CSV data.
func (s *SummaryStore) Read(src io.Reader) ([]trend.WeekBucket, error) {
	reader := csv.NewReader(src)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("summary is empty, expected a header row")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	hasSentiment := false
	switch len(header) {
	case 4:
	case 5:
		hasSentiment = true
	default:
		return nil, fmt.Errorf("unexpected summary header %v", header)
	}

	buckets := []trend.WeekBucket{}
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		posts, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: non-numeric posts %q", row, record[2])
		}
		engagement, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: non-numeric avg_engagement %q", row, record[3])
		}

		bucket := trend.WeekBucket{
			Week:          record[0],
			Tag:           record[1],
			Posts:         posts,
			AvgEngagement: engagement,
		}
		if hasSentiment && record[4] != "" {
			sentiment, err := strconv.ParseFloat(record[4], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: non-numeric avg_sentiment %q", row, record[4])
			}
			bucket.AvgSentiment = &sentiment
		}
		buckets = append(buckets, bucket)
	}

	return buckets, nil
}
