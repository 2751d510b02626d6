package handlers

import (
	"time"

	"github.com/example/studyshare-platform/internal/store"
)

type badgeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earned_at"`
}

type userResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	University        string          `json:"university"`
	Major             string          `json:"major"`
	Year              int             `json:"year"`
	Avatar            string          `json:"avatar,omitempty"`
	ContributionCount int             `json:"contribution_count"`
	StudyHours        int             `json:"study_hours"`
	Badges            []badgeResponse `json:"badges"`
}

type categoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

type videoResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Thumbnail   string       `json:"thumbnail,omitempty"`
	VideoURL    string       `json:"video_url,omitempty"`
	Duration    int          `json:"duration"`
	UploadDate  time.Time    `json:"upload_date"`
	Views       int          `json:"views"`
	Likes       int          `json:"likes"`
	Subject     string       `json:"subject"`
	Topic       string       `json:"topic,omitempty"`
	Difficulty  string       `json:"difficulty"`
	Tags        []string     `json:"tags,omitempty"`
	Author      userResponse `json:"author"`
	University  string       `json:"university,omitempty"`
	Course      string       `json:"course,omitempty"`
	Bookmarked  bool         `json:"bookmarked"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	UserID    string    `json:"user_id"`
	Timestamp int       `json:"timestamp"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	IsPublic  bool      `json:"is_public"`
}

type commentResponse struct {
	ID        string            `json:"id"`
	VideoID   string            `json:"video_id"`
	UserID    string            `json:"user_id"`
	User      userResponse      `json:"user"`
	Content   string            `json:"content"`
	Timestamp *int              `json:"timestamp,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Likes     int               `json:"likes"`
	Replies   []commentResponse `json:"replies"`
}

func toBadgeResponse(b store.Badge) badgeResponse {
	return badgeResponse{ID: b.ID, Name: b.Name, Description: b.Description, Icon: b.Icon, EarnedAt: b.EarnedAt}
}

func toUserResponse(u store.User) userResponse {
	badges := make([]badgeResponse, 0, len(u.Badges))
	for _, b := range u.Badges {
		badges = append(badges, toBadgeResponse(b))
	}
	return userResponse{
		ID:                u.ID,
		Name:              u.Name,
		University:        u.University,
		Major:             u.Major,
		Year:              u.Year,
		Avatar:            u.Avatar,
		ContributionCount: u.ContributionCount,
		StudyHours:        u.StudyHours,
		Badges:            badges,
	}
}

func toCategoryResponse(c store.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color, Count: c.Count}
}

func toVideoResponse(v store.Video) videoResponse {
	var author userResponse
	if v.Author != nil {
		author = toUserResponse(*v.Author)
	}
	return videoResponse{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Thumbnail:   v.Thumbnail,
		VideoURL:    v.VideoURL,
		Duration:    v.Duration,
		UploadDate:  v.UploadDate,
		Views:       v.Views,
		Likes:       v.Likes,
		Subject:     v.Subject,
		Topic:       v.Topic,
		Difficulty:  string(v.Difficulty),
		Tags:        v.Tags,
		Author:      author,
		University:  v.University,
		Course:      v.Course,
		Bookmarked:  v.Bookmarked,
	}
}

func toNoteResponse(n store.StudyNote) noteResponse {
	return noteResponse{
		ID:        n.ID,
		VideoID:   n.VideoID,
		UserID:    n.UserID,
		Timestamp: n.Timestamp,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		IsPublic:  n.IsPublic,
	}
}

func toCommentResponse(node store.CommentNode) commentResponse {
	replies := make([]commentResponse, 0, len(node.Replies))
	for _, r := range node.Replies {
		replies = append(replies, toCommentResponse(r))
	}
	c := node.Comment
	return commentResponse{
		ID:        c.ID,
		VideoID:   c.VideoID,
		UserID:    c.UserID,
		User:      toUserResponse(c.User),
		Content:   c.Content,
		Timestamp: c.Timestamp,
		CreatedAt: c.CreatedAt,
		Likes:     c.Likes,
		Replies:   replies,
	}
}
