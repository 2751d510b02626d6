package store

import "time"

// Difficulty is the closed set of video difficulty levels.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ValidDifficulty reports whether d is one of the three allowed levels.
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Badge is earned once and owned by exactly one user.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	EarnedAt    time.Time
}

// User is a platform member. ContributionCount and StudyHours are authored
// display values seeded once; they are not recomputed from the video set and
// may drift from it.
type User struct {
	ID                string
	Name              string
	University        string
	Major             string
	Year              int
	Avatar            string
	ContributionCount int
	StudyHours        int
	Badges            []Badge
}

// Category is a subject bucket. Count is an independent seed value, not a
// live aggregate over the catalog.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
	Count int
}

// Video is a catalog entry. Author is a shared reference, so profile updates
// are visible through every video pointing at the same user. Bookmarked is
// viewer-local state layered over the shared record.
type Video struct {
	ID          string
	Title       string
	Description string
	Thumbnail   string
	VideoURL    string
	Duration    int // seconds
	UploadDate  time.Time
	Views       int
	Likes       int
	Subject     string
	Topic       string
	Difficulty  Difficulty
	Tags        []string
	Author      *User
	University  string
	Course      string
	Bookmarked  bool
}

// StudyNote is anchored to a point in a video, owned by (video, user).
type StudyNote struct {
	ID        string
	VideoID   string
	UserID    string
	Timestamp int // seconds into the video
	Content   string
	CreatedAt time.Time
	IsPublic  bool
}

// Comment carries a snapshot of the commenting user's profile at comment
// time, not a reference. Replies are held as ordered child ids in the
// comment arena; the nested view is assembled on read.
type Comment struct {
	ID        string
	VideoID   string
	UserID    string
	User      User
	Content   string
	Timestamp *int // optional anchor, seconds into the video
	CreatedAt time.Time
	Likes     int
	ReplyIDs  []string
}

// CommentNode is a comment with its replies materialized as a subtree.
type CommentNode struct {
	Comment Comment
	Replies []CommentNode
}
