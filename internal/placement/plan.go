package placement

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"mediaorg/internal/media"
	"mediaorg/internal/textutil"
)

// Plan is the destination chosen for one file.
type Plan struct {
	Dir  string
	Name string
}

// Path joins Dir and Name.
func (p Plan) Path() string {
	return filepath.Join(p.Dir, p.Name)
}

// Exists reports whether an entry already occupies path. Comparison is
// case-sensitive; the predicate must not change during a single Plan call.
type Exists func(path string) bool

// PlanFile computes the destination for file. relFolder is the file's directory
// relative to the scan root ("" or "." for root-level files).
func PlanFile(file media.File, date time.Time, relFolder, destRoot string, exists Exists) Plan {
	dir := Directory(destRoot, date)
	datedBase := DatedBase(date, FolderPrefix(relFolder), file.Base)

	name := datedBase + file.Ext
	if exists == nil {
		return Plan{Dir: dir, Name: name}
	}
	for counter := 1; exists(filepath.Join(dir, name)); counter++ {
		name = fmt.Sprintf("%s_%d%s", datedBase, counter, file.Ext)
	}
	return Plan{Dir: dir, Name: name}
}

// Directory returns destRoot/YYYY/YYYY_MM.
func Directory(destRoot string, date time.Time) string {
	year := date.Format("2006")
	return filepath.Join(destRoot, year, year+"_"+date.Format("01"))
}

// DatedBase returns YYYY_MM_DD{prefix}_{base}.
func DatedBase(date time.Time, prefix, base string) string {
	return date.Format("2006_01_02") + prefix + "_" + base
}

// FolderPrefix turns a relative folder into the "_Seg1_Seg2" fragment embedded
// in file names. Segments that sanitize to nothing are dropped; a root-level
// folder yields "".
func FolderPrefix(relFolder string) string {
	var cleaned []string
	for _, segment := range textutil.SplitPath(relFolder) {
		if c := textutil.CleanSegment(segment); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return ""
	}
	return "_" + strings.Join(cleaned, "_")
}
