package discovery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/studyshare-platform/internal/store"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func video(id string, mutate func(*store.Video)) store.Video {
	v := store.Video{
		ID:         id,
		Title:      "Video " + id,
		Duration:   900,
		UploadDate: day("2024-09-01"),
		Subject:    "Mathematics",
		Difficulty: store.DifficultyBeginner,
		Author:     &store.User{ID: "u-" + id, University: "MIT"},
	}
	if mutate != nil {
		mutate(&v)
	}
	return v
}

func ids(videos []store.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}

func TestFilter_EmptySpec_IsPermutationSortedByRecency(t *testing.T) {
	in := []store.Video{
		video("a", func(v *store.Video) { v.UploadDate = day("2024-09-10") }),
		video("b", func(v *store.Video) { v.UploadDate = day("2024-09-20") }),
		video("c", func(v *store.Video) { v.UploadDate = day("2024-09-15") }),
	}

	out := Filter(in, FilterSpec{}, "")
	require.Len(t, out, len(in))
	assert.Equal(t, []string{"b", "c", "a"}, ids(out))

	seen := map[string]int{}
	for _, v := range out {
		seen[v.ID]++
	}
	for _, v := range in {
		assert.Equal(t, 1, seen[v.ID], "every input element appears exactly once")
	}
}

func TestFilter_InputUnmodified(t *testing.T) {
	in := []store.Video{
		video("a", func(v *store.Video) { v.UploadDate = day("2024-09-01") }),
		video("b", func(v *store.Video) { v.UploadDate = day("2024-09-09") }),
	}
	_ = Filter(in, FilterSpec{SortBy: SortPopular}, "")
	assert.Equal(t, []string{"a", "b"}, ids(in), "input order must be preserved")
}

func TestFilter_EmptyInput(t *testing.T) {
	out := Filter(nil, FilterSpec{Subject: "Physics"}, "anything")
	assert.Empty(t, out)
}

func TestFilter_Predicates(t *testing.T) {
	in := []store.Video{
		video("math-adv", func(v *store.Video) { v.Difficulty = store.DifficultyAdvanced }),
		video("math-beg", nil),
		video("phys", func(v *store.Video) {
			v.Subject = "Physics"
			v.Author = &store.User{ID: "u", University: "Stanford University"}
		}),
	}

	tests := []struct {
		name string
		spec FilterSpec
		want []string
	}{
		{"subject", FilterSpec{Subject: "Physics"}, []string{"phys"}},
		{"difficulty", FilterSpec{Difficulty: store.DifficultyAdvanced}, []string{"math-adv"}},
		{"university", FilterSpec{University: "Stanford University"}, []string{"phys"}},
		{"subject and difficulty compose", FilterSpec{Subject: "Mathematics", Difficulty: store.DifficultyBeginner}, []string{"math-beg"}},
		{"no match", FilterSpec{Subject: "Physics", Difficulty: store.DifficultyBeginner}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(in, tt.spec, "")))
		})
	}
}

func TestFilter_DifficultyAlwaysIncludesSelf(t *testing.T) {
	for _, d := range []store.Difficulty{store.DifficultyBeginner, store.DifficultyIntermediate, store.DifficultyAdvanced} {
		v := video("self", func(v *store.Video) { v.Difficulty = d })
		out := Filter([]store.Video{v}, FilterSpec{Difficulty: d}, "")
		require.Len(t, out, 1, "difficulty %s must include a matching video", d)
	}
}

func TestFilter_DurationBuckets(t *testing.T) {
	in := []store.Video{
		video("v599", func(v *store.Video) { v.Duration = 599 }),
		video("v600", func(v *store.Video) { v.Duration = 600 }),
		video("v1800", func(v *store.Video) { v.Duration = 1800 }),
		video("v1801", func(v *store.Video) { v.Duration = 1801 }),
	}

	assert.Equal(t, []string{"v599"}, ids(Filter(in, FilterSpec{Duration: DurationShort}, "")))
	assert.Equal(t, []string{"v600", "v1800"}, ids(Filter(in, FilterSpec{Duration: DurationMedium}, "")))
	assert.Equal(t, []string{"v1801"}, ids(Filter(in, FilterSpec{Duration: DurationLong}, "")))
}

func TestBucketFor_IsPartition(t *testing.T) {
	for _, sec := range []int{0, 1, 599, 600, 601, 1799, 1800, 1801, 7200} {
		b := BucketFor(sec)
		require.Contains(t, []DurationBucket{DurationShort, DurationMedium, DurationLong}, b)
	}
	assert.Equal(t, DurationMedium, BucketFor(600))
	assert.Equal(t, DurationMedium, BucketFor(1800))
	assert.Equal(t, DurationShort, BucketFor(599))
	assert.Equal(t, DurationLong, BucketFor(1801))
}

func TestFilter_Search_CaseInsensitive(t *testing.T) {
	in := []store.Video{
		video("calc", func(v *store.Video) { v.Title = "Calculus Integration Explained" }),
		video("chem", func(v *store.Video) { v.Title = "Chemistry Lab Techniques" }),
	}

	for _, q := range []string{"calculus", "CALCULUS", "CalcULus"} {
		out := Filter(in, FilterSpec{}, q)
		require.Len(t, out, 1, "query %q", q)
		assert.Equal(t, "calc", out[0].ID)
	}
}

func TestFilter_Search_DescriptionAndTags(t *testing.T) {
	in := []store.Video{
		video("a", func(v *store.Video) { v.Description = "covers the Uncertainty Principle" }),
		video("b", func(v *store.Video) { v.Tags = []string{"quantum", "mechanics"} }),
		video("c", nil),
	}

	assert.Equal(t, []string{"a"}, ids(Filter(in, FilterSpec{}, "uncertainty")))
	assert.Equal(t, []string{"b"}, ids(Filter(in, FilterSpec{}, "QUANTUM")))
	assert.Len(t, Filter(in, FilterSpec{}, ""), 3, "empty query matches everything")
}

func TestFilter_SortModes(t *testing.T) {
	a := video("A", func(v *store.Video) {
		v.UploadDate = day("2024-09-20")
		v.Views = 100
		v.Likes = 5
	})
	b := video("B", func(v *store.Video) {
		v.UploadDate = day("2024-09-18")
		v.Views = 50
		v.Likes = 20
	})
	in := []store.Video{a, b}

	assert.Equal(t, []string{"A", "B"}, ids(Filter(in, FilterSpec{SortBy: SortPopular}, "")))
	assert.Equal(t, []string{"B", "A"}, ids(Filter(in, FilterSpec{SortBy: SortTrending}, "")))
	assert.Equal(t, []string{"A", "B"}, ids(Filter(in, FilterSpec{SortBy: SortRecent}, "")))
	assert.Equal(t, []string{"A", "B"}, ids(Filter(in, FilterSpec{}, "")), "absent sort defaults to recent")
	assert.Equal(t, []string{"A", "B"}, ids(Filter(in, FilterSpec{SortBy: "bogus"}, "")), "unrecognized sort defaults to recent")
}

func TestFilter_SortIsStable(t *testing.T) {
	shared := day("2024-09-01")
	in := []store.Video{
		video("first", func(v *store.Video) { v.UploadDate = shared; v.Views = 7; v.Likes = 3 }),
		video("second", func(v *store.Video) { v.UploadDate = shared; v.Views = 7; v.Likes = 3 }),
		video("third", func(v *store.Video) { v.UploadDate = shared; v.Views = 7; v.Likes = 3 }),
	}

	for _, key := range []SortKey{SortRecent, SortPopular, SortTrending} {
		out := Filter(in, FilterSpec{SortBy: key}, "")
		assert.Equal(t, []string{"first", "second", "third"}, ids(out), "sort %s must preserve input order on ties", key)
	}
}
