package models

import (
	"encoding/json"
	"fmt"
	"time"

	dErrors "folio/pkg/domain-errors"
	"folio/pkg/formval"
)

// Form is the flattened client input for a create or replace: multipart
// fields, urlencoded fields or a JSON object, reduced to one string per
// key by the transport layer.
type Form map[string]string

func (f Form) Get(key string) string { return f[key] }

// Binder builds a resource from form input. attachment is the public path
// of a file stored for this request, empty when none was sent; prev is the
// current document on replace and nil on create. Replace is wholesale: a
// field absent from the form resets to its zero value, except the
// attachment field, which keeps its previous value when no new file
// arrives.
type Binder[T any] func(f Form, attachment string, prev T) (T, error)

func required(f Form, keys ...string) error {
	for _, key := range keys {
		if f.Get(key) == "" {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s is required", key))
		}
	}
	return nil
}

func date(f Form, key string, req bool) (time.Time, error) {
	raw := f.Get(key)
	if raw == "" && req {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s is required", key))
	}
	t, ok := formval.ParseDate(raw)
	if !ok {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid %s", key))
	}
	return t, nil
}

// keepAttachment resolves the stored-file field: a fresh upload wins,
// otherwise the previous document's path survives the replace.
func keepAttachment(attachment, prev string) string {
	if attachment != "" {
		return attachment
	}
	return prev
}

func BindProject(f Form, attachment string, prev *Project) (*Project, error) {
	if err := required(f, "title", "description"); err != nil {
		return nil, err
	}
	p := &Project{
		Title:       f.Get("title"),
		Description: f.Get("description"),
		TechStack:   formval.SplitList(f.Get("techStack")),
		GithubURL:   f.Get("githubUrl"),
		DemoURL:     f.Get("demoUrl"),
		Featured:    formval.ParseBool(f.Get("featured")),
	}
	if prev != nil {
		p.Image = keepAttachment(attachment, prev.Image)
	} else {
		p.Image = attachment
	}
	return p, nil
}

func BindSkill(f Form, attachment string, prev *Skill) (*Skill, error) {
	if err := required(f, "name", "category"); err != nil {
		return nil, err
	}
	level := SkillLevel(f.Get("level"))
	if level == "" {
		level = LevelIntermediate
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	s := &Skill{
		Name:        f.Get("name"),
		Category:    f.Get("category"),
		Level:       level,
		Description: f.Get("description"),
	}
	if prev != nil {
		s.Icon = keepAttachment(attachment, prev.Icon)
	} else {
		s.Icon = attachment
	}
	return s, nil
}

func BindAchievement(f Form, attachment string, prev *Achievement) (*Achievement, error) {
	if err := required(f, "title", "description"); err != nil {
		return nil, err
	}
	when, err := date(f, "date", true)
	if err != nil {
		return nil, err
	}
	a := &Achievement{
		Title:       f.Get("title"),
		Description: f.Get("description"),
		Date:        when,
	}
	if prev != nil {
		a.Icon = keepAttachment(attachment, prev.Icon)
	} else {
		a.Icon = attachment
	}
	return a, nil
}

func BindEducation(f Form, _ string, _ *Education) (*Education, error) {
	if err := required(f, "institution", "degree", "field"); err != nil {
		return nil, err
	}
	start, err := date(f, "startDate", true)
	if err != nil {
		return nil, err
	}
	end, err := date(f, "endDate", false)
	if err != nil {
		return nil, err
	}
	return &Education{
		Institution: f.Get("institution"),
		Degree:      f.Get("degree"),
		Field:       f.Get("field"),
		StartDate:   start,
		EndDate:     end,
		Description: f.Get("description"),
	}, nil
}

func BindBlogPost(f Form, attachment string, prev *BlogPost) (*BlogPost, error) {
	if err := required(f, "title", "content"); err != nil {
		return nil, err
	}
	slug := f.Get("slug")
	if slug == "" {
		slug = formval.Slugify(f.Get("title"))
	}
	p := &BlogPost{
		Title:     f.Get("title"),
		Slug:      slug,
		Content:   f.Get("content"),
		Excerpt:   f.Get("excerpt"),
		Tags:      formval.SplitList(f.Get("tags")),
		Published: formval.ParseBool(f.Get("published")),
		UpdatedAt: time.Now().UTC(),
	}
	if prev != nil {
		p.FeaturedImage = keepAttachment(attachment, prev.FeaturedImage)
	} else {
		p.FeaturedImage = attachment
	}
	return p, nil
}

func BindCourseCertification(f Form, attachment string, prev *CourseCertification) (*CourseCertification, error) {
	if err := required(f, "title", "provider", "type"); err != nil {
		return nil, err
	}
	credType := CredentialType(f.Get("type"))
	if err := credType.Validate(); err != nil {
		return nil, err
	}
	when, err := date(f, "date", true)
	if err != nil {
		return nil, err
	}
	c := &CourseCertification{
		Title:           f.Get("title"),
		Provider:        f.Get("provider"),
		Type:            credType,
		Date:            when,
		CertificateLink: f.Get("certificateLink"),
		CredentialID:    f.Get("credentialId"),
		Description:     f.Get("description"),
		SkillsLearnt:    formval.SplitList(f.Get("skillsLearnt")),
	}
	if prev != nil {
		c.BadgeImage = keepAttachment(attachment, prev.BadgeImage)
	} else {
		c.BadgeImage = attachment
	}
	return c, nil
}

func BindLeetCodeEntry(f Form, _ string, _ *LeetCodeEntry) (*LeetCodeEntry, error) {
	if err := required(f, "title"); err != nil {
		return nil, err
	}
	difficulty := Difficulty(f.Get("difficulty"))
	if err := difficulty.Validate(); err != nil {
		return nil, err
	}
	status := ProgressStatus(f.Get("status"))
	if err := status.Validate(); err != nil {
		return nil, err
	}
	solved, err := date(f, "dateSolved", false)
	if err != nil {
		return nil, err
	}
	if solved.IsZero() {
		solved = time.Now().UTC()
	}
	return &LeetCodeEntry{
		Title:        f.Get("title"),
		Difficulty:   difficulty,
		Tags:         formval.SplitList(f.Get("tags")),
		Status:       status,
		SolutionLink: f.Get("solutionLink"),
		DateSolved:   solved,
		Notes:        f.Get("notes"),
	}, nil
}

func BindProfile(f Form, attachment string, prev *Profile) (*Profile, error) {
	if err := required(f, "name", "tagline", "bio"); err != nil {
		return nil, err
	}
	var links SocialLinks
	if raw := f.Get("socialLinks"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &links); err != nil {
			return nil, dErrors.New(dErrors.CodeValidation, "invalid socialLinks")
		}
	}
	p := &Profile{
		Name:        f.Get("name"),
		Tagline:     f.Get("tagline"),
		Bio:         f.Get("bio"),
		CVUrl:       f.Get("cvUrl"),
		SocialLinks: links,
		UpdatedAt:   time.Now().UTC(),
	}
	if prev != nil {
		p.ProfileImage = keepAttachment(attachment, prev.ProfileImage)
	} else {
		p.ProfileImage = attachment
	}
	return p, nil
}
