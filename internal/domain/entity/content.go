package entity

import (
	"strings"
	"time"
)

// Kind is one of the four content kinds managed from the admin area.
type Kind string

const (
	KindEvent   Kind = "event"
	KindBlog    Kind = "blog"
	KindProject Kind = "project"
	KindPost    Kind = "post"
)

// Kinds returns every content kind.
func Kinds() []Kind {
	return []Kind{KindEvent, KindBlog, KindProject, KindPost}
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is a valid value.
func (k Kind) IsValid() bool {
	switch k {
	case KindEvent, KindBlog, KindProject, KindPost:
		return true
	default:
		return false
	}
}

// Collection returns the collection a kind is stored in.
func (k Kind) Collection() Collection {
	switch k {
	case KindEvent:
		return CollectionEvents
	case KindBlog:
		return CollectionBlogs
	case KindProject:
		return CollectionProjects
	case KindPost:
		return CollectionPosts
	default:
		return ""
	}
}

// ParseKind accepts both the singular kind and its collection name.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if k := Kind(s); k.IsValid() {
		return k, true
	}

	return Collection(s).Kind()
}

// RegistrationStatus is the registration state of an event.
type RegistrationStatus string

const (
	RegistrationOpen   RegistrationStatus = "Open"
	RegistrationClosed RegistrationStatus = "Closed"
	RegistrationEnded  RegistrationStatus = "Ended"
)

// ContentItem is the closed set of content documents: *Event, *Blog, *Project and *Post.
type ContentItem interface {
	Document
	Kind() Kind
	Meta() *ContentMeta
	sealedContent()
}

// ContentMeta holds the fields shared by every content kind.
type ContentMeta struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required,notblank"`
	Description string    `json:"description" validate:"required,notblank"`
	Date        string    `json:"date" validate:"required,isodate"`
	Tags        []string  `json:"tags"`
	Image       string    `json:"image,omitempty"`
	Slug        string    `json:"slug,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Version     int64     `json:"version"`
}

// Meta returns the shared fields.
func (m *ContentMeta) Meta() *ContentMeta {
	return m
}

// DocumentID implements Document.
func (m *ContentMeta) DocumentID() string {
	return m.ID
}

// FieldValue implements Document for the shared fields.
func (m *ContentMeta) FieldValue(field string) (any, bool) {
	switch field {
	case "id":
		return m.ID, true
	case "title":
		return m.Title, true
	case "description":
		return m.Description, true
	case "date":
		return m.Date, m.Date != ""
	case "slug":
		return m.Slug, m.Slug != ""
	case "createdAt":
		return m.CreatedAt, !m.CreatedAt.IsZero()
	case "updatedAt":
		return m.UpdatedAt, !m.UpdatedAt.IsZero()
	case "version":
		return m.Version, true
	default:
		return nil, false
	}
}

// Normalize cleans tags and derives the slug from the title when none is set.
func (m *ContentMeta) Normalize() {
	m.Tags = NormalizeTags(m.Tags)
	m.Slug = strings.TrimSpace(m.Slug)
	if m.Slug == "" {
		m.Slug = Slugify(m.Title)
	}
}

// Event is a club event.
type Event struct {
	ContentMeta

	Agenda             []AgendaItem       `json:"agenda,omitempty" validate:"dive"`
	Speakers           []Speaker          `json:"speakers,omitempty" validate:"dive"`
	RegistrationStatus RegistrationStatus `json:"registrationStatus" validate:"omitempty,oneof=Open Closed Ended"`
	Status             RegistrationStatus `json:"status" validate:"omitempty,oneof=Open Closed Ended"` // Legacy mirror of RegistrationStatus.
	Location           string             `json:"location,omitempty"`
	Time               string             `json:"time,omitempty"`
	RegistrationURL    string             `json:"registrationUrl,omitempty" validate:"omitempty,url"`
}

// AgendaItem is one slot of an event agenda.
type AgendaItem struct {
	Time        string `json:"time"`
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description,omitempty"`
}

// Speaker is a person presenting at an event.
type Speaker struct {
	Name     string `json:"name" validate:"required,notblank"`
	Title    string `json:"title,omitempty"`
	Image    string `json:"image,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" validate:"omitempty,url"`
}

// Kind implements ContentItem.
func (*Event) Kind() Kind { return KindEvent }

func (*Event) sealedContent() {}

// FieldValue implements Document.
func (e *Event) FieldValue(field string) (any, bool) {
	switch field {
	case "registrationStatus":
		return string(e.RegistrationStatus), e.RegistrationStatus != ""
	case "location":
		return e.Location, e.Location != ""
	default:
		return e.ContentMeta.FieldValue(field)
	}
}

// SyncStatus keeps the legacy status equal to the registration status.
// preferLegacy makes a caller-supplied status win over the stored registration status.
func (e *Event) SyncStatus(preferLegacy bool) {
	if preferLegacy && e.Status != "" {
		e.RegistrationStatus = e.Status
	}
	if e.RegistrationStatus == "" {
		e.RegistrationStatus = e.Status
	}
	if e.RegistrationStatus == "" {
		e.RegistrationStatus = RegistrationOpen
	}
	e.Status = e.RegistrationStatus
}

// Blog is a published article.
type Blog struct {
	ContentMeta

	Content       string `json:"content" validate:"required,notblank"` // HTML body.
	ContentWriter string `json:"contentWriter,omitempty"`
}

// Kind implements ContentItem.
func (*Blog) Kind() Kind { return KindBlog }

func (*Blog) sealedContent() {}

// FieldValue implements Document.
func (b *Blog) FieldValue(field string) (any, bool) {
	if field == "contentWriter" {
		return b.ContentWriter, b.ContentWriter != ""
	}

	return b.ContentMeta.FieldValue(field)
}

// Project is a club project showcase entry.
type Project struct {
	ContentMeta

	WebsiteURL string `json:"websiteUrl,omitempty" validate:"omitempty,url"`
	GithubURL  string `json:"githubUrl,omitempty" validate:"omitempty,url"`
}

// Kind implements ContentItem.
func (*Project) Kind() Kind { return KindProject }

func (*Project) sealedContent() {}

// Post is a social media post mirrored on the site.
type Post struct {
	ContentMeta

	SocialMedia *SocialLinks `json:"socialMedia,omitempty"`
}

// SocialLinks are the per-network links of a Post.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`
	LinkedIn  string `json:"linkedin,omitempty" validate:"omitempty,url"`
	Twitter   string `json:"twitter,omitempty" validate:"omitempty,url"`
	Facebook  string `json:"facebook,omitempty" validate:"omitempty,url"`
}

// Kind implements ContentItem.
func (*Post) Kind() Kind { return KindPost }

func (*Post) sealedContent() {}

// NewContentItem returns an empty item of the given kind, or nil for an unknown kind.
func NewContentItem(kind Kind) ContentItem {
	switch kind {
	case KindEvent:
		return &Event{}
	case KindBlog:
		return &Blog{}
	case KindProject:
		return &Project{}
	case KindPost:
		return &Post{}
	default:
		return nil
	}
}

// NormalizeTags trims every tag and drops empty and repeated ones, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	return result
}

// Slugify lowercases s and replaces every whitespace run with a single hyphen.
func Slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
