package media

import (
	"path/filepath"
	"sort"
	"strings"
)

// Category groups accepted extensions into the two kinds of media the
// organizer understands.
type Category string

const (
	CategoryImage Category = "image"
	CategoryVideo Category = "video"
)

// extensions maps lowercase extensions (with leading dot) to their category.
var extensions = map[string]Category{
	".jpg":  CategoryImage,
	".jpeg": CategoryImage,
	".png":  CategoryImage,
	".gif":  CategoryImage,
	".bmp":  CategoryImage,
	".tif":  CategoryImage,
	".tiff": CategoryImage,
	".heic": CategoryImage,
	".mp4":  CategoryVideo,
	".mov":  CategoryVideo,
	".avi":  CategoryVideo,
	".wmv":  CategoryVideo,
	".mkv":  CategoryVideo,
	".flv":  CategoryVideo,
	".webm": CategoryVideo,
}

// Classify reports the category for ext. Matching ignores case.
func Classify(ext string) (Category, bool) {
	cat, ok := extensions[strings.ToLower(ext)]
	return cat, ok
}

// Extensions returns the allowlist for a category, sorted.
func Extensions(cat Category) []string {
	var out []string
	for ext, c := range extensions {
		if c == cat {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}

// File is a media file discovered under the source root.
type File struct {
	Path     string
	Base     string
	Ext      string
	Category Category
}

// NewFile builds a File for path. ok is false when the extension is not
// allowlisted.
func NewFile(path string) (File, bool) {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	cat, ok := Classify(ext)
	if !ok {
		return File{}, false
	}
	return File{
		Path:     path,
		Base:     strings.TrimSuffix(name, ext),
		Ext:      ext,
		Category: cat,
	}, true
}

// IsImage reports whether embedded capture metadata may be consulted.
func (f File) IsImage() bool {
	return f.Category == CategoryImage
}

// Name returns the original file name.
func (f File) Name() string {
	return f.Base + f.Ext
}
