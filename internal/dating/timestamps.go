package dating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/djherbis/times"
)

// CreatedPolicy selects what "creation time" means for tier 2.
type CreatedPolicy string

const (
	// CreatedAuto uses the birth time when the platform reports one and the
	// inode status-change time otherwise.
	CreatedAuto CreatedPolicy = "auto"
	// CreatedBirth only accepts a reported birth time.
	CreatedBirth CreatedPolicy = "birth"
	// CreatedChange always uses the status-change time, which is what Unix
	// ctime reports.
	CreatedChange CreatedPolicy = "change"
)

// ParseCreatedPolicy maps a config value to a policy. Empty means auto.
func ParseCreatedPolicy(value string) (CreatedPolicy, error) {
	switch p := CreatedPolicy(strings.ToLower(strings.TrimSpace(value))); p {
	case "":
		return CreatedAuto, nil
	case CreatedAuto, CreatedBirth, CreatedChange:
		return p, nil
	default:
		return "", fmt.Errorf("unknown created time policy %q (want auto, birth, or change)", value)
	}
}

var (
	errNoBirthTime  = errors.New("platform reports no birth time")
	errNoChangeTime = errors.New("platform reports no change time")
)

// FSTimestamps reads timestamps from the filesystem.
type FSTimestamps struct {
	Policy CreatedPolicy
}

// Created implements TimestampReader.
func (fs FSTimestamps) Created(path string) (time.Time, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	switch fs.Policy {
	case CreatedBirth:
		if ts.HasBirthTime() {
			return ts.BirthTime(), nil
		}
		return time.Time{}, errNoBirthTime
	case CreatedChange:
		if ts.HasChangeTime() {
			return ts.ChangeTime(), nil
		}
		return time.Time{}, errNoChangeTime
	default:
		if ts.HasBirthTime() {
			return ts.BirthTime(), nil
		}
		if ts.HasChangeTime() {
			return ts.ChangeTime(), nil
		}
		return time.Time{}, errNoBirthTime
	}
}

// Modified implements TimestampReader.
func (FSTimestamps) Modified(path string) (time.Time, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return ts.ModTime(), nil
}
