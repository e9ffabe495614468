package dating

import (
	"errors"
	"fmt"
	"time"

	"mediaorg/internal/media"
)

// CaptureLayout is the on-disk text format of the DateTimeOriginal tag.
const CaptureLayout = "2006:01:02 15:04:05"

// MetadataReader returns the raw capture-time text embedded in a file. ok is
// false for any failure: missing tag, corrupt metadata, unsupported format, or
// an unreadable file.
type MetadataReader interface {
	CaptureTime(path string) (raw string, ok bool)
}

// TimestampReader reads filesystem timestamps. Either method may fail.
type TimestampReader interface {
	Created(path string) (time.Time, error)
	Modified(path string) (time.Time, error)
}

// Source names the tier that produced a resolved date.
type Source string

const (
	SourceMetadata Source = "exif"
	SourceCreated  Source = "created"
	SourceModified Source = "modified"
)

// Resolved is the outcome of a successful resolution.
type Resolved struct {
	Time   time.Time
	Source Source
}

// Resolver binds the readers used by the fallback chain.
type Resolver struct {
	Metadata   MetadataReader
	Timestamps TimestampReader
	// Location is the zone used to interpret embedded capture text and to
	// present filesystem times. Nil means time.Local.
	Location *time.Location
}

// NewResolver returns a Resolver backed by EXIF metadata and the real
// filesystem.
func NewResolver(policy CreatedPolicy) Resolver {
	return Resolver{
		Metadata:   ExifReader{},
		Timestamps: FSTimestamps{Policy: policy},
	}
}

// Resolve returns the best-available date for file.
func (r Resolver) Resolve(file media.File) (Resolved, error) {
	return resolve(file, r.Metadata, r.Timestamps, r.location())
}

// Resolve is the functional form of Resolver.Resolve.
func Resolve(path string, category media.Category, meta MetadataReader, ts TimestampReader) (Resolved, error) {
	return resolve(media.File{Path: path, Category: category}, meta, ts, time.Local)
}

func resolve(file media.File, meta MetadataReader, ts TimestampReader, loc *time.Location) (Resolved, error) {
	path := file.Path
	if file.IsImage() && meta != nil {
		if raw, ok := meta.CaptureTime(path); ok {
			if t, err := ParseCaptureTime(raw, loc); err == nil {
				return Resolved{Time: t, Source: SourceMetadata}, nil
			}
		}
	}
	if ts == nil {
		return Resolved{}, fmt.Errorf("%w: %s: no timestamp reader", ErrDateUnavailable, path)
	}

	created, createdErr := ts.Created(path)
	if createdErr == nil {
		return Resolved{Time: created.In(loc), Source: SourceCreated}, nil
	}
	createdErr = fmt.Errorf("%w: created: %w", ErrTimestampUnreadable, createdErr)

	modified, modErr := ts.Modified(path)
	if modErr == nil {
		return Resolved{Time: modified.In(loc), Source: SourceModified}, nil
	}
	modErr = fmt.Errorf("%w: modified: %w", ErrTimestampUnreadable, modErr)

	return Resolved{}, fmt.Errorf("%w: %s: %w", ErrDateUnavailable, path, errors.Join(createdErr, modErr))
}

// ParseCaptureTime parses raw strictly against CaptureLayout in loc.
func ParseCaptureTime(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(CaptureLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMetadataUnreadable, err)
	}
	return t, nil
}

func (r Resolver) location() *time.Location {
	if r.Location == nil {
		return time.Local
	}
	return r.Location
}
