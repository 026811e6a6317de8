// Package types provides type definitions for structured data used throughout the smartresume system.
package types

// JobRole describes a target role selected at the start of the builder wizard.
// The selection is immutable for the lifetime of a ResumeRecord.
type JobRole struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Template        string   `json:"template"`
	Icon            string   `json:"icon,omitempty"`
	SuggestedSkills []string `json:"suggestedSkills,omitempty"`
}

// PersonalInfo holds the free-text contact and summary fields of a resume.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
	Objective string `json:"objective,omitempty"`
}

// FullName returns the first and last name joined with a space.
func (p PersonalInfo) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Experience is a single work history entry. Dates use the "YYYY-MM" form
// produced by month inputs.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// Complete reports whether the entry carries enough data to be rendered or
// scored. Entries missing a title or company are skipped everywhere.
func (e Experience) Complete() bool {
	return e.Title != "" && e.Company != ""
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Complete reports whether the entry should be included in output.
func (e Education) Complete() bool {
	return e.Degree != "" && e.Institution != ""
}

// Skills groups technical and soft skills. Order is preserved and duplicates
// are kept as supplied; deduplication is the caller's responsibility.
type Skills struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
}

// Certification is a single certification entry; only Name is required.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

// Complete reports whether the entry should be included in output.
func (c Certification) Complete() bool {
	return c.Name != ""
}

// Language is a spoken-language entry. Level is one of native, fluent,
// intermediate, basic, or empty.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Complete reports whether the entry should be included in output.
func (l Language) Complete() bool {
	return l.Name != ""
}

// ResumeRecord is the structured, in-memory representation of one user's
// resume content. It is assembled incrementally by the builder UI, frozen at
// preview/generate time, and read-only from then on: the renderer and the
// analyzer derive output from it without mutating it.
type ResumeRecord struct {
	JobRole        *JobRole        `json:"jobRole,omitempty"`
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         Skills          `json:"skills"`
	Certifications []Certification `json:"certifications,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
}

// CompleteExperience returns the experience entries that pass the inclusion
// guard, in their original order.
func (r *ResumeRecord) CompleteExperience() []Experience {
	out := make([]Experience, 0, len(r.Experience))
	for _, e := range r.Experience {
		if e.Complete() {
			out = append(out, e)
		}
	}
	return out
}

// CompleteEducation returns the education entries that pass the inclusion guard.
func (r *ResumeRecord) CompleteEducation() []Education {
	out := make([]Education, 0, len(r.Education))
	for _, e := range r.Education {
		if e.Complete() {
			out = append(out, e)
		}
	}
	return out
}

// CompleteCertifications returns the certification entries with a name.
func (r *ResumeRecord) CompleteCertifications() []Certification {
	out := make([]Certification, 0, len(r.Certifications))
	for _, c := range r.Certifications {
		if c.Complete() {
			out = append(out, c)
		}
	}
	return out
}

// CompleteLanguages returns the language entries with a name.
func (r *ResumeRecord) CompleteLanguages() []Language {
	out := make([]Language, 0, len(r.Languages))
	for _, l := range r.Languages {
		if l.Complete() {
			out = append(out, l)
		}
	}
	return out
}

// RoleID returns the selected job role id, or "" when no role is set.
func (r *ResumeRecord) RoleID() string {
	if r.JobRole == nil {
		return ""
	}
	return r.JobRole.ID
}

// TemplateID returns the template identifier of the selected role, or "" when
// no role is set. The renderer falls back to its built-in template in that case.
func (r *ResumeRecord) TemplateID() string {
	if r.JobRole == nil {
		return ""
	}
	return r.JobRole.Template
}
