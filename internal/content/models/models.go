// Package models defines the portfolio content resources and the form
// binders that build them from client input.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Store kinds, one per resource.
const (
	KindProject             = "project"
	KindSkill               = "skill"
	KindAchievement         = "achievement"
	KindEducation           = "education"
	KindBlogPost            = "blog_post"
	KindCourseCertification = "course_certification"
	KindLeetCodeEntry       = "leetcode_entry"
	KindMessage             = "message"
	KindProfile             = "profile"
)

// ProfileID is the fixed id of the profile singleton. There is exactly one
// profile document; using a constant id makes every write an upsert.
var ProfileID = uuid.MustParse("9b1b5f0a-0000-4000-8000-000000000001")

// Meta carries the identity and creation time every resource shares. It
// satisfies the store's Document contract; resources whose listings sort by
// a domain date override SortKey.
type Meta struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *Meta) DocID() uuid.UUID            { return m.ID }
func (m *Meta) SetDocID(id uuid.UUID)       { m.ID = id }
func (m *Meta) DocCreatedAt() time.Time     { return m.CreatedAt }
func (m *Meta) SetDocCreatedAt(t time.Time) { m.CreatedAt = t }
func (m *Meta) SortKey() time.Time          { return m.CreatedAt }

// Project is a portfolio project entry.
type Project struct {
	Meta
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	TechStack   []string `json:"techStack"`
	GithubURL   string   `json:"githubUrl"`
	DemoURL     string   `json:"demoUrl"`
	Featured    bool     `json:"featured"`
}

// Skill is one technology or competency, grouped by category.
type Skill struct {
	Meta
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Icon        string     `json:"icon"`
	Level       SkillLevel `json:"level"`
	Description string     `json:"description"`
}

// Achievement is an award or milestone; listings sort by its date.
type Achievement struct {
	Meta
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Date        time.Time `json:"date"`
}

func (a *Achievement) SortKey() time.Time { return a.Date }

// Education is one schooling entry; listings sort by start date.
type Education struct {
	Meta
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate,omitzero"`
	Description string    `json:"description"`
}

func (e *Education) SortKey() time.Time { return e.StartDate }

// BlogPost is an article. Slug is unique-by-construction from the title
// unless the client supplies one; Published gates the public listing.
type BlogPost struct {
	Meta
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	FeaturedImage string    `json:"featuredImage"`
	Tags          []string  `json:"tags"`
	Published     bool      `json:"published"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CourseCertification is a completed course or an earned certification;
// listings sort by completion date.
type CourseCertification struct {
	Meta
	Title           string         `json:"title"`
	Provider        string         `json:"provider"`
	Type            CredentialType `json:"type"`
	Date            time.Time      `json:"date"`
	CertificateLink string         `json:"certificateLink"`
	CredentialID    string         `json:"credentialId"`
	Description     string         `json:"description"`
	SkillsLearnt    []string       `json:"skillsLearnt"`
	BadgeImage      string         `json:"badgeImage"`
}

func (c *CourseCertification) SortKey() time.Time { return c.Date }

// LeetCodeEntry tracks one problem; listings sort by the solve date.
type LeetCodeEntry struct {
	Meta
	Title        string         `json:"title"`
	Difficulty   Difficulty     `json:"difficulty"`
	Tags         []string       `json:"tags"`
	Status       ProgressStatus `json:"status"`
	SolutionLink string         `json:"solutionLink"`
	DateSolved   time.Time      `json:"dateSolved"`
	Notes        string         `json:"notes"`
}

func (e *LeetCodeEntry) SortKey() time.Time { return e.DateSolved }

// Message is a contact-form submission.
type Message struct {
	Meta
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
	Read    bool   `json:"read"`
}

// SocialLinks is the profile's contact surface.
type SocialLinks struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Profile is the site owner's bio. A single document exists, keyed by
// ProfileID.
type Profile struct {
	Meta
	Name         string      `json:"name"`
	Tagline      string      `json:"tagline"`
	Bio          string      `json:"bio"`
	ProfileImage string      `json:"profileImage"`
	CVUrl        string      `json:"cvUrl"`
	SocialLinks  SocialLinks `json:"socialLinks"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// DefaultProfile is the document served when no profile has been saved yet.
func DefaultProfile() *Profile {
	return &Profile{
		Name:    "Muhammad Asad Jamil",
		Tagline: "AI & Software Engineer | Building Intelligent and Scalable Systems",
		Bio: "I am a Computer Science graduate passionate about Artificial Intelligence and intelligent systems. " +
			"I specialize in Python, machine learning frameworks, and full-stack development. " +
			"I love solving real-world problems with code, from building AI-powered applications to deploying production-ready systems.",
	}
}
