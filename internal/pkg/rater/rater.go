package rater

import (
	"io"
	"time"
)

// Rater counts bytes flowing through an io.Reader and the wall time between
// the first Read and io.EOF.
type Rater struct {
	r          io.Reader
	start, end time.Time
	now        func() time.Time
	count      int64
}

func NewRater(r io.Reader) *Rater { return &Rater{r: r, now: time.Now} }

func (r *Rater) Read(b []byte) (n int, err error) {
	if r.start.IsZero() {
		r.start = r.now()
	}

	n, err = r.r.Read(b) // underlying io.Reader read

	r.count += int64(n)

	if err == io.EOF && r.end.IsZero() {
		r.end = r.now()
	}

	return
}

// Count returns the number of bytes read so far.
func (r *Rater) Count() int64 {
	return r.count
}

// Rate returns the bytes read and the elapsed time. Before EOF the elapsed
// time runs up to now.
func (r *Rater) Rate() (n int64, d time.Duration) {
	if r.start.IsZero() {
		return 0, 0
	}

	end := r.end
	if end.IsZero() {
		end = r.now()
	}

	return r.count, end.Sub(r.start)
}
