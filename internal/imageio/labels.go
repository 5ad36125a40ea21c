package imageio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteLabels writes labels as CSV, one image row per line.
func WriteLabels(w io.Writer, labels []int, width int) error {
	if width < 1 || len(labels)%width != 0 {
		return errors.Errorf("%d labels do not fill rows of width %d", len(labels), width)
	}

	cw := csv.NewWriter(w)
	row := make([]string, width)
	for start := 0; start < len(labels); start += width {
		for x, l := range labels[start : start+width] {
			row[x] = strconv.Itoa(l)
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "write labels")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "write labels")
}

// ReadLabels parses a CSV written by WriteLabels and returns the labels
// with the row width.
func ReadLabels(r io.Reader) ([]int, int, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, 0, errors.Wrap(err, "read labels")
	}
	if len(records) == 0 {
		return nil, 0, errors.New("read labels: no rows")
	}

	width := len(records[0])
	labels := make([]int, 0, width*len(records))
	for y, rec := range records {
		for x, field := range rec {
			l, err := strconv.Atoi(field)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "read labels: row %d column %d", y, x)
			}
			labels = append(labels, l)
		}
	}
	return labels, width, nil
}
