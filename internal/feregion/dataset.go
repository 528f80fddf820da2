package feregion

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

const (
	namesFile   = "names.asc"
	indexFile   = "quadsidx.asc"
	seismicFile = "seisrdef.asc"
)

func sectFile(q Quadrant) string { return q.Code() + "sect.asc" }

// LoadDir loads the dataset from a directory on disk.
func LoadDir(dir string) (*Index, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, &DatasetFormatError{Resource: dir, Err: err}
	}
	return Load(os.DirFS(dir))
}

// Load parses the fe_1995 ASCII files found at the root of fsys. Either a
// complete Index is returned or an error; missing or malformed files yield a
// *DatasetFormatError.
func Load(fsys fs.FS) (*Index, error) {
	names, err := readNames(fsys)
	if err != nil {
		return nil, err
	}

	counts, err := readInts(fsys, indexFile)
	if err != nil {
		return nil, err
	}
	if want := len(Quadrants) * Tiers; len(counts) != want {
		return nil, formatErr(indexFile, 0, "%d tier counts, want %d", len(counts), want)
	}

	var quads [len(Quadrants)]QuadrantTable
	for _, q := range Quadrants {
		pairs, err := readInts(fsys, sectFile(q))
		if err != nil {
			return nil, err
		}
		if len(pairs)%2 != 0 {
			return nil, formatErr(sectFile(q), 0, "odd number of values (%d)", len(pairs))
		}
		t := QuadrantTable{
			LonCounts: counts[int(q)*Tiers : (int(q)+1)*Tiers],
			Lons:      make([]int, 0, len(pairs)/2),
			Fenums:    make([]int, 0, len(pairs)/2),
		}
		for i := 0; i < len(pairs); i += 2 {
			t.Lons = append(t.Lons, pairs[i])
			t.Fenums = append(t.Fenums, pairs[i+1])
		}
		quads[q] = t
	}

	seismic, err := readInts(fsys, seismicFile)
	if err != nil {
		return nil, err
	}

	return NewIndex(quads, names, seismic)
}

func readNames(fsys fs.FS) ([]string, error) {
	var names []string
	err := scanLines(fsys, namesFile, func(_ int, line string) error {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
		return nil
	})
	return names, err
}

func readInts(fsys fs.FS, name string) ([]int, error) {
	var out []int
	err := scanLines(fsys, name, func(n int, line string) error {
		for _, field := range strings.Fields(line) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return formatErr(name, n, "bad integer %q", field)
			}
			out = append(out, v)
		}
		return nil
	})
	return out, err
}

func scanLines(fsys fs.FS, name string, fn func(n int, line string) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return &DatasetFormatError{Resource: name, Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		if err := fn(n, sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return &DatasetFormatError{Resource: name, Line: n, Err: err}
	}
	if n == 0 {
		return &DatasetFormatError{Resource: name, Err: errors.New("empty resource")}
	}
	return nil
}
