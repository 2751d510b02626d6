package store

import "time"

// SeedData is the fixed startup dataset. Denormalized counters (contribution
// counts, study hours, category counts) and the initial bookmark flags are
// authored display values; nothing recomputes them from the live collections.
type SeedData struct {
	Users       []*User
	CurrentUser *User
	Categories  []Category
	Videos      []Video
	Notes       []StudyNote
	Comments    []SeedComment
}

// SeedComment is a top-level comment with its direct replies, the shape the
// seed data is authored in. The comment store flattens it into the arena.
type SeedComment struct {
	Comment Comment
	Replies []Comment
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic("store: bad seed date " + value)
	}
	return t
}

// Seed returns the startup dataset: five authors, the viewer identity, eight
// subject categories, six videos, three study notes and three comment threads.
func Seed() SeedData {
	users := []*User{
		{
			ID:                "user-1",
			Name:              "Sarah Chen",
			University:        "Stanford University",
			Major:             "Computer Science",
			Year:              3,
			Avatar:            "https://images.unsplash.com/photo-1494790108755-2616b02e0e5e?w=150&h=150&fit=crop&crop=face",
			ContributionCount: 23,
			StudyHours:        245,
			Badges: []Badge{
				{ID: "badge-1", Name: "Star Contributor", Description: "Contributed 20+ educational videos", Icon: "⭐", EarnedAt: date("2024-01-15")},
				{ID: "badge-2", Name: "Top Educator", Description: "Videos have 10k+ total views", Icon: "🏆", EarnedAt: date("2024-03-20")},
			},
		},
		{
			ID:                "user-2",
			Name:              "Marcus Johnson",
			University:        "MIT",
			Major:             "Mechanical Engineering",
			Year:              4,
			Avatar:            "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			ContributionCount: 18,
			StudyHours:        189,
			Badges: []Badge{
				{ID: "badge-3", Name: "Rising Star", Description: "Rapid growth in contribution quality", Icon: "🌟", EarnedAt: date("2024-02-10")},
			},
		},
		{
			ID:                "user-3",
			Name:              "Priya Patel",
			University:        "UC Berkeley",
			Major:             "Mathematics",
			Year:              2,
			Avatar:            "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			ContributionCount: 31,
			StudyHours:        312,
			Badges: []Badge{
				{ID: "badge-4", Name: "Star Contributor", Description: "Contributed 20+ educational videos", Icon: "⭐", EarnedAt: date("2024-01-08")},
				{ID: "badge-5", Name: "Math Wizard", Description: "Expert in mathematical concepts", Icon: "🧮", EarnedAt: date("2024-04-15")},
			},
		},
		{
			ID:                "user-4",
			Name:              "Alex Rivera",
			University:        "Harvard University",
			Major:             "Physics",
			Year:              3,
			Avatar:            "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			ContributionCount: 15,
			StudyHours:        178,
			Badges: []Badge{
				{ID: "badge-6", Name: "Physics Pro", Description: "Advanced physics content creator", Icon: "⚛️", EarnedAt: date("2024-03-05")},
			},
		},
		{
			ID:                "user-5",
			Name:              "Emma Thompson",
			University:        "Yale University",
			Major:             "Chemistry",
			Year:              4,
			Avatar:            "https://images.unsplash.com/photo-1489424731084-a5d8b219a5bb?w=150&h=150&fit=crop&crop=face",
			ContributionCount: 22,
			StudyHours:        267,
			Badges: []Badge{
				{ID: "badge-7", Name: "Chemistry Champion", Description: "Excellence in chemistry education", Icon: "🧪", EarnedAt: date("2024-02-28")},
			},
		},
	}

	currentUser := &User{
		ID:                "current-user",
		Name:              "Jordan Smith",
		University:        "University of California",
		Major:             "Biology",
		Year:              2,
		Avatar:            "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=150&h=150&fit=crop&crop=face",
		ContributionCount: 5,
		StudyHours:        67,
		Badges: []Badge{
			{ID: "badge-8", Name: "New Scholar", Description: "Welcome to StudyShare!", Icon: "🎓", EarnedAt: date("2024-08-15")},
		},
	}

	categories := []Category{
		{ID: "cat-1", Name: "Mathematics", Icon: "📐", Color: "#3B82F6", Count: 156},
		{ID: "cat-2", Name: "Physics", Icon: "⚛️", Color: "#8B5CF6", Count: 89},
		{ID: "cat-3", Name: "Chemistry", Icon: "🧪", Color: "#10B981", Count: 74},
		{ID: "cat-4", Name: "Biology", Icon: "🧬", Color: "#F59E0B", Count: 92},
		{ID: "cat-5", Name: "Computer Science", Icon: "💻", Color: "#EF4444", Count: 203},
		{ID: "cat-6", Name: "Engineering", Icon: "⚙️", Color: "#6B7280", Count: 127},
		{ID: "cat-7", Name: "Economics", Icon: "📊", Color: "#14B8A6", Count: 45},
		{ID: "cat-8", Name: "Psychology", Icon: "🧠", Color: "#F97316", Count: 38},
	}

	videos := []Video{
		{
			ID:          "video-1",
			Title:       "Calculus Integration Explained",
			Description: "Understanding the fundamentals of calculus integration with step-by-step examples. Perfect for beginners who want to grasp the core concepts.",
			Thumbnail:   "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=400&h=225&fit=crop",
			VideoURL:    "https://example.com/video1.mp4",
			Duration:    1247,
			UploadDate:  date("2024-09-20"),
			Views:       15420,
			Likes:       892,
			Subject:     "Mathematics",
			Topic:       "Calculus Integration",
			Difficulty:  DifficultyIntermediate,
			Tags:        []string{"calculus", "integration", "math", "fundamentals"},
			Author:      users[2],
			University:  "UC Berkeley",
			Course:      "MATH 1B",
		},
		{
			ID:          "video-2",
			Title:       "Chemistry Lab Techniques",
			Description: "Essential laboratory techniques every chemistry student should master. Covers safety protocols, measurement precision, and common procedures.",
			Thumbnail:   "https://images.unsplash.com/photo-1532187863486-abf9dbad1b69?w=400&h=225&fit=crop",
			VideoURL:    "https://example.com/video2.mp4",
			Duration:    934,
			UploadDate:  date("2024-09-18"),
			Views:       8934,
			Likes:       567,
			Subject:     "Chemistry",
			Topic:       "Lab Techniques",
			Difficulty:  DifficultyBeginner,
			Tags:        []string{"chemistry", "lab", "techniques", "safety"},
			Author:      users[4],
			University:  "Yale University",
			Course:      "CHEM 101",
			Bookmarked:  true,
		},
		{
			ID:          "video-3",
			Title:       "History Essay Writing Tips",
			Description: "Master the art of writing compelling history essays. Learn structure, argumentation, and source analysis techniques from a senior history major.",
			Thumbnail:   "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=225&fit=crop",
			VideoURL:    "https://example.com/video3.mp4",
			Duration:    1156,
			UploadDate:  date("2024-09-15"),
			Views:       12056,
			Likes:       743,
			Subject:     "History",
			Topic:       "Essay Writing",
			Difficulty:  DifficultyIntermediate,
			Tags:        []string{"history", "writing", "essays", "research"},
			Author:      users[0],
			University:  "Stanford University",
			Course:      "HIST 103",
		},
		{
			ID:          "video-4",
			Title:       "Physics: Quantum Mechanics",
			Description: "An introduction to quantum mechanics principles. Explore wave-particle duality, uncertainty principle, and quantum states with clear explanations.",
			Thumbnail:   "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=400&h=225&fit=crop",
			VideoURL:    "https://example.com/video4.mp4",
			Duration:    1823,
			UploadDate:  date("2024-09-12"),
			Views:       23145,
			Likes:       1456,
			Subject:     "Physics",
			Topic:       "Quantum Mechanics",
			Difficulty:  DifficultyAdvanced,
			Tags:        []string{"physics", "quantum", "mechanics", "theory"},
			Author:      users[3],
			University:  "Harvard University",
			Course:      "PHYS 143a",
			Bookmarked:  true,
		},
		{
			ID:          "video-5",
			Title:       "Microeconomics Principles",
			Description: "Core microeconomics concepts including supply and demand, market equilibrium, and consumer behavior. Perfect for economics beginners.",
			Thumbnail:   "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=400&h=225&fit=crop",
			VideoURL:    "https://example.com/video5.mp4",
			Duration:    1456,
			UploadDate:  date("2024-09-10"),
			Views:       9876,
			Likes:       634,
			Subject:     "Economics",
			Topic:       "Microeconomics",
			Difficulty:  DifficultyBeginner,
			Tags:        []string{"economics", "microeconomics", "supply", "demand"},
			Author:      users[1],
			University:  "MIT",
			Course:      "ECON 101",
		},
		{
			ID:          "video-6",
			Title:       "Creative Writing Foundations",
			Description: "Develop your creative writing skills with exercises in character development, plot structure, and narrative techniques.",
			Thumbnail:   "https://images.unsplash.com/photo-1455390582262-044cdead277a?w=400&h=225&fit=crop",
			VideoURL:    "https://example.com/video6.mp4",
			Duration:    987,
			UploadDate:  date("2024-09-08"),
			Views:       6543,
			Likes:       421,
			Subject:     "Literature",
			Topic:       "Creative Writing",
			Difficulty:  DifficultyIntermediate,
			Tags:        []string{"writing", "creative", "literature", "storytelling"},
			Author:      users[0],
			University:  "Stanford University",
			Course:      "ENG 90",
		},
	}

	notes := []StudyNote{
		{
			ID:        "note-1",
			VideoID:   "video-1",
			UserID:    "current-user",
			Timestamp: 456,
			Content:   "Key concept: Integration is the reverse process of differentiation. Remember to add the constant C!",
			CreatedAt: date("2024-09-21"),
		},
		{
			ID:        "note-2",
			VideoID:   "video-1",
			UserID:    "current-user",
			Timestamp: 789,
			Content:   "Integration by parts formula: ∫u dv = uv - ∫v du. Practice with polynomial examples.",
			CreatedAt: date("2024-09-21"),
		},
		{
			ID:        "note-3",
			VideoID:   "video-4",
			UserID:    "current-user",
			Timestamp: 234,
			Content:   "Wave-particle duality: Light behaves as both a wave and particle depending on the experiment.",
			CreatedAt: date("2024-09-13"),
			IsPublic:  true,
		},
	}

	anchor := 1100
	comments := []SeedComment{
		{
			Comment: Comment{
				ID:        "comment-1",
				VideoID:   "video-1",
				UserID:    "user-2",
				User:      *users[1],
				Content:   "This explanation of integration really helped me understand the concept! The step-by-step approach is perfect.",
				CreatedAt: date("2024-09-21"),
				Likes:     12,
			},
		},
		{
			Comment: Comment{
				ID:        "comment-2",
				VideoID:   "video-1",
				UserID:    "user-4",
				User:      *users[3],
				Content:   "Great video! Could you do a follow-up on integration by substitution?",
				Timestamp: &anchor,
				CreatedAt: date("2024-09-20"),
				Likes:     8,
			},
			Replies: []Comment{
				{
					ID:        "reply-1",
					VideoID:   "video-1",
					UserID:    "user-3",
					User:      *users[2],
					Content:   "Thanks for the suggestion! I'll definitely consider that for my next video.",
					CreatedAt: date("2024-09-21"),
					Likes:     5,
				},
			},
		},
		{
			Comment: Comment{
				ID:        "comment-3",
				VideoID:   "video-4",
				UserID:    "user-1",
				User:      *users[0],
				Content:   "The quantum mechanics explanation is incredibly clear. This helped me prepare for my physics exam!",
				CreatedAt: date("2024-09-14"),
				Likes:     23,
			},
		},
	}

	return SeedData{
		Users:       users,
		CurrentUser: currentUser,
		Categories:  categories,
		Videos:      videos,
		Notes:       notes,
		Comments:    comments,
	}
}
