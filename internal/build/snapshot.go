package build

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"sort"
	"time"
)

// FileState represents input file metadata used for change detection.
type FileState struct {
	Path    string
	Size    int64
	ModTime time.Time
	SHA256  string
}

// Snapshot records the state of a set of source files, keyed by path.
// Files that do not exist are absent from the snapshot.
type Snapshot map[string]FileState

// HashBytes returns the hex SHA-256 of data.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// TakeSnapshot records the current state of paths.
func TakeSnapshot(paths []string) (Snapshot, error) {
	out := make(Snapshot, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		out[p] = FileState{Path: p, Size: info.Size(), ModTime: info.ModTime().UTC(), SHA256: HashBytes(data)}
	}
	return out, nil
}

// Changed returns the sorted paths whose content differs between s and
// curr, including files that appeared or disappeared. A touch that leaves
// the content alone is not a change.
func (s Snapshot) Changed(curr Snapshot) []string {
	seen := make(map[string]bool, len(s)+len(curr))
	for p := range s {
		seen[p] = true
	}
	for p := range curr {
		seen[p] = true
	}

	var changed []string
	for p := range seen {
		a, inPrev := s[p]
		b, inCurr := curr[p]
		if inPrev != inCurr || a.Size != b.Size || a.SHA256 != b.SHA256 {
			changed = append(changed, p)
		}
	}
	sort.Strings(changed)
	return changed
}
