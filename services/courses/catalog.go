package courses

import (
	"sort"
	"strings"
)

// StaticCatalog serves a fixed in-memory catalog. It stands in for a real
// course-search integration (Coursera, Udemy, ...) which would otherwise
// require provider registration.
type StaticCatalog struct {
	courses []Course
}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{courses: catalogData}
}

func (s *StaticCatalog) Search(params SearchParams) SearchResult {
	results := make([]Course, 0, len(s.courses))

	query := strings.ToLower(strings.TrimSpace(params.Query))
	for _, course := range s.courses {
		if query != "" && !matchesQuery(course, query) {
			continue
		}
		if params.Provider != "" && !strings.EqualFold(course.Provider, params.Provider) {
			continue
		}
		if params.Level != "" && course.Level != params.Level {
			continue
		}
		results = append(results, course)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	total := len(results)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return SearchResult{
		Courses: results[offset:end],
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: end < total,
	}
}

func (s *StaticCatalog) GetByID(id string) (*Course, bool) {
	for i := range s.courses {
		if s.courses[i].ID == id {
			course := s.courses[i]
			return &course, true
		}
	}
	return nil, false
}

// Recommended picks courses whose text matches any of the user's goal
// categories, falling back to the top-rated courses when nothing matches.
func (s *StaticCatalog) Recommended(categories []string) []Course {
	lowered := make([]string, 0, len(categories))
	for _, category := range categories {
		if c := strings.ToLower(strings.TrimSpace(category)); c != "" {
			lowered = append(lowered, c)
		}
	}

	var recommended []Course
	for _, course := range s.courses {
		text := courseText(course)
		for _, category := range lowered {
			if strings.Contains(text, category) {
				recommended = append(recommended, course)
				break
			}
		}
	}

	if len(recommended) == 0 {
		recommended = append(recommended, s.courses...)
		sort.SliceStable(recommended, func(i, j int) bool {
			return recommended[i].Rating > recommended[j].Rating
		})
		if len(recommended) > 4 {
			recommended = recommended[:4]
		}
	}

	if len(recommended) > 6 {
		recommended = recommended[:6]
	}
	return recommended
}

func matchesQuery(course Course, query string) bool {
	if strings.Contains(strings.ToLower(course.Title), query) ||
		strings.Contains(strings.ToLower(course.Description), query) {
		return true
	}
	for _, skill := range course.Skills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}

func courseText(course Course) string {
	return strings.ToLower(course.Title + " " + course.Description + " " + strings.Join(course.Skills, " "))
}

var catalogData = []Course{
	{
		ID:           "course-1",
		Title:        "Introduction to Python Programming",
		Provider:     "Coursera",
		Description:  "Learn Python basics including variables, loops, and functions.",
		URL:          "https://www.coursera.org/learn/python",
		ThumbnailURL: "https://via.placeholder.com/300x200/4F46E5/FFFFFF?text=Python",
		Duration:     "4 weeks",
		Level:        "Beginner",
		Rating:       4.8,
		Enrollments:  1200000,
		Skills:       []string{"Python", "Programming Basics", "Problem Solving"},
	},
	{
		ID:           "course-2",
		Title:        "Full Stack Web Development",
		Provider:     "Udemy",
		Description:  "Complete guide to building web applications with React and Node.js.",
		URL:          "https://www.udemy.com/course/fullstack-webdev",
		ThumbnailURL: "https://via.placeholder.com/300x200/10B981/FFFFFF?text=Web+Dev",
		Duration:     "40 hours",
		Level:        "Intermediate",
		Rating:       4.6,
		Enrollments:  450000,
		Skills:       []string{"React", "Node.js", "JavaScript", "HTML/CSS"},
	},
	{
		ID:           "course-3",
		Title:        "Machine Learning Fundamentals",
		Provider:     "Coursera",
		Description:  "Master machine learning algorithms and their applications.",
		URL:          "https://www.coursera.org/learn/machine-learning",
		ThumbnailURL: "https://via.placeholder.com/300x200/F59E0B/FFFFFF?text=ML",
		Duration:     "11 weeks",
		Level:        "Intermediate",
		Rating:       4.9,
		Enrollments:  800000,
		Skills:       []string{"Machine Learning", "Python", "Statistics", "Neural Networks"},
	},
	{
		ID:           "course-4",
		Title:        "Data Structures and Algorithms",
		Provider:     "edX",
		Description:  "Learn essential data structures and algorithmic techniques.",
		URL:          "https://www.edx.org/course/data-structures",
		ThumbnailURL: "https://via.placeholder.com/300x200/EF4444/FFFFFF?text=DSA",
		Duration:     "8 weeks",
		Level:        "Intermediate",
		Rating:       4.7,
		Enrollments:  300000,
		Skills:       []string{"Algorithms", "Data Structures", "Java", "Problem Solving"},
	},
	{
		ID:           "course-5",
		Title:        "UI/UX Design Principles",
		Provider:     "Coursera",
		Description:  "Learn to design beautiful and user-friendly interfaces.",
		URL:          "https://www.coursera.org/learn/ux-design",
		ThumbnailURL: "https://via.placeholder.com/300x200/8B5CF6/FFFFFF?text=UX+Design",
		Duration:     "6 weeks",
		Level:        "Beginner",
		Rating:       4.5,
		Enrollments:  250000,
		Skills:       []string{"UX Design", "UI Design", "Figma", "User Research"},
	},
	{
		ID:           "course-6",
		Title:        "Cloud Computing with AWS",
		Provider:     "Udemy",
		Description:  "Master Amazon Web Services and cloud architecture.",
		URL:          "https://www.udemy.com/course/aws-certified",
		ThumbnailURL: "https://via.placeholder.com/300x200/FF9900/FFFFFF?text=AWS",
		Duration:     "30 hours",
		Level:        "Intermediate",
		Rating:       4.8,
		Enrollments:  500000,
		Skills:       []string{"AWS", "Cloud Computing", "DevOps", "Serverless"},
	},
	{
		ID:           "course-7",
		Title:        "JavaScript: The Complete Guide",
		Provider:     "Udemy",
		Description:  "From beginner to advanced JavaScript developer.",
		URL:          "https://www.udemy.com/course/javascript-complete",
		ThumbnailURL: "https://via.placeholder.com/300x200/F7DF1E/000000?text=JavaScript",
		Duration:     "52 hours",
		Level:        "All Levels",
		Rating:       4.7,
		Enrollments:  700000,
		Skills:       []string{"JavaScript", "ES6+", "DOM", "Async Programming"},
	},
	{
		ID:           "course-8",
		Title:        "Cybersecurity Fundamentals",
		Provider:     "edX",
		Description:  "Learn to protect systems and networks from cyber threats.",
		URL:          "https://www.edx.org/course/cybersecurity",
		ThumbnailURL: "https://via.placeholder.com/300x200/1F2937/FFFFFF?text=Security",
		Duration:     "10 weeks",
		Level:        "Beginner",
		Rating:       4.6,
		Enrollments:  200000,
		Skills:       []string{"Cybersecurity", "Network Security", "Ethical Hacking"},
	},
}
