// Package discovery implements the dashboard's video filter/sort engine:
// a pure function from a catalog sequence and a filter specification to a
// new ordered sequence.
package discovery

import (
	"sort"
	"strings"

	"github.com/example/studyshare-platform/internal/store"
)

// SortKey selects the ordering of the filtered result.
type SortKey string

const (
	SortRecent   SortKey = "recent"
	SortPopular  SortKey = "popular"
	SortTrending SortKey = "trending"
)

// DurationBucket is a coarse classification of video length.
type DurationBucket string

const (
	DurationShort  DurationBucket = "short"  // under 10 minutes
	DurationMedium DurationBucket = "medium" // 10 to 30 minutes inclusive
	DurationLong   DurationBucket = "long"   // over 30 minutes
)

const (
	shortUpperSec  = 600
	mediumUpperSec = 1800
)

// FilterSpec is the set of optional constraints applied to a listing.
// Zero-valued fields impose no constraint on their axis.
type FilterSpec struct {
	Subject    string
	Difficulty store.Difficulty
	University string
	Duration   DurationBucket
	SortBy     SortKey
}

// BucketFor classifies a duration in seconds. Every duration falls into
// exactly one bucket; 600 and 1800 both belong to medium.
func BucketFor(durationSec int) DurationBucket {
	switch {
	case durationSec < shortUpperSec:
		return DurationShort
	case durationSec <= mediumUpperSec:
		return DurationMedium
	default:
		return DurationLong
	}
}

// Filter applies spec and the free-text query to videos and returns a new
// ordered sequence. The input is never modified. Predicates compose as a
// logical AND; the search matches case-insensitively against title,
// description and tags, and an empty query matches everything. The final
// sort is stable so that equal keys keep their input order.
func Filter(videos []store.Video, spec FilterSpec, query string) []store.Video {
	out := make([]store.Video, 0, len(videos))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, v := range videos {
		if !matches(v, spec) {
			continue
		}
		if q != "" && !matchesQuery(v, q) {
			continue
		}
		out = append(out, v)
	}

	switch spec.SortBy {
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	case SortTrending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	default:
		// recent, absent and unrecognized keys all sort by upload date.
		sort.SliceStable(out, func(i, j int) bool { return out[i].UploadDate.After(out[j].UploadDate) })
	}
	return out
}

func matches(v store.Video, spec FilterSpec) bool {
	if spec.Subject != "" && v.Subject != spec.Subject {
		return false
	}
	if spec.Difficulty != "" && v.Difficulty != spec.Difficulty {
		return false
	}
	if spec.University != "" {
		if v.Author == nil || v.Author.University != spec.University {
			return false
		}
	}
	if spec.Duration != "" && BucketFor(v.Duration) != spec.Duration {
		return false
	}
	return true
}

func matchesQuery(v store.Video, q string) bool {
	if strings.Contains(strings.ToLower(v.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(v.Description), q) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
