package sampling

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// Record is the mapping-of-arrays persistence form shared by SampleSet and
// the clustering specialization. Samples is always shaped (M, m); Values,
// when present, has length M. Centroids/Clusters are only populated by the
// cluster package.
//
// Checksum is an xxhash64 digest over the coordinate payload; a zero
// checksum disables verification on load.
type Record struct {
	M         int         `json:"M"`
	Dim       int         `json:"m"`
	Samples   [][]float64 `json:"samples"`
	Values    []float64   `json:"values,omitempty"`
	Centroids [][]float64 `json:"centroids,omitempty"`
	Clusters  [][]int     `json:"clusters,omitempty"`
	Checksum  uint64      `json:"checksum,omitempty"`
}

// checksumSamples digests the coordinate array row-major, each float64 as
// its little-endian IEEE-754 bits.
func checksumSamples(samples [][]float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, row := range samples {
		for _, v := range row {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}

// Snapshot captures the set's arrays into a fresh Record, including the
// integrity checksum. The record shares no memory with the set.
func (s *SampleSet) Snapshot() *Record {
	rec := &Record{
		M:       s.m,
		Dim:     s.dim,
		Samples: make([][]float64, s.m),
	}
	for i := 0; i < s.m; i++ {
		row := make([]float64, s.dim)
		copy(row, s.coords[i*s.dim:(i+1)*s.dim])
		rec.Samples[i] = row
	}
	if s.values != nil {
		rec.Values = make([]float64, len(s.values))
		copy(rec.Values, s.values)
	}
	rec.Checksum = checksumSamples(rec.Samples)

	return rec
}

// Load copies a record's arrays into the set.
//
// The record shape must match the configured (M, m) exactly (ErrShape).
// Existing in-memory samples are never overwritten unless overwrite is true
// (ErrSamplesExist). A non-zero record checksum is verified against the
// coordinate payload (ErrChecksum).
func (s *SampleSet) Load(rec *Record, overwrite bool) error {
	if rec == nil || len(rec.Samples) != s.m {
		return ErrShape
	}
	for _, row := range rec.Samples {
		if len(row) != s.dim {
			return ErrShape
		}
	}
	if rec.Values != nil && len(rec.Values) != s.m {
		return ErrShape
	}
	if s.populated && !overwrite {
		return ErrSamplesExist
	}
	if rec.Checksum != 0 && checksumSamples(rec.Samples) != rec.Checksum {
		return ErrChecksum
	}
	for i, row := range rec.Samples {
		copy(s.coords[i*s.dim:(i+1)*s.dim], row)
	}
	if rec.Values != nil {
		s.values = make([]float64, s.m)
		copy(s.values, rec.Values)
	}
	s.populated = true

	return nil
}

// Save writes the set's snapshot to path via WriteRecord.
func (s *SampleSet) Save(path string) error {
	return WriteRecord(path, s.Snapshot())
}

// WriteRecord serializes rec as indented JSON to path. Paths ending in
// ".zst" are transparently zstd-compressed.
func WriteRecord(path string, rec *Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sampling: create %s: %w", path, err)
	}
	defer f.Close()

	var w io.Writer = f
	var zw *zstd.Encoder
	if strings.HasSuffix(path, ".zst") {
		zw, err = zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("sampling: zstd writer: %w", err)
		}
		w = zw
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(rec); err != nil {
		return fmt.Errorf("sampling: encode %s: %w", path, err)
	}
	if zw != nil {
		if err = zw.Close(); err != nil {
			return fmt.Errorf("sampling: zstd close: %w", err)
		}
	}

	return nil
}

// ReadRecord deserializes a Record from path, decompressing ".zst" files
// transparently. Shape and checksum validation happens in Load, not here.
func ReadRecord(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sampling: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, zerr := zstd.NewReader(f)
		if zerr != nil {
			return nil, fmt.Errorf("sampling: zstd reader: %w", zerr)
		}
		defer zr.Close()
		r = zr
	}

	rec := new(Record)
	if err = json.NewDecoder(r).Decode(rec); err != nil {
		return nil, fmt.Errorf("sampling: decode %s: %w", path, err)
	}

	return rec, nil
}
