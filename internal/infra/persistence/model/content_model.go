package model

import (
	"time"

	"aiclub/internal/domain/entity"
)

// ContentDocument is a stored content document of any kind.
type ContentDocument interface {
	Base() *ContentModel
	ToDomain() entity.ContentItem
}

// ContentModel holds the fields shared by every content collection.
// The id lives in the document name, so it is excluded from the Firestore payload.
type ContentModel struct {
	ID          string    `firestore:"-" docstore:"id"`
	Title       string    `firestore:"title" docstore:"title"`
	Description string    `firestore:"description" docstore:"description"`
	Date        string    `firestore:"date" docstore:"date"`
	Tags        []string  `firestore:"tags" docstore:"tags"`
	Image       string    `firestore:"image,omitempty" docstore:"image"`
	Slug        string    `firestore:"slug" docstore:"slug"`
	CreatedAt   time.Time `firestore:"createdAt" docstore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" docstore:"updatedAt"`
	Version     int64     `firestore:"version" docstore:"version"`
}

// Base returns the shared fields.
func (m *ContentModel) Base() *ContentModel {
	return m
}

func newContentModel(meta *entity.ContentMeta) ContentModel {
	return ContentModel{
		ID:          meta.ID,
		Title:       meta.Title,
		Description: meta.Description,
		Date:        meta.Date,
		Tags:        meta.Tags,
		Image:       meta.Image,
		Slug:        meta.Slug,
		CreatedAt:   meta.CreatedAt,
		UpdatedAt:   meta.UpdatedAt,
		Version:     meta.Version,
	}
}

func (m *ContentModel) toMeta() entity.ContentMeta {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}

	return entity.ContentMeta{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		Tags:        tags,
		Image:       m.Image,
		Slug:        m.Slug,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Version:     m.Version,
	}
}

// EventModel mirrors a document of the 'events' collection.
type EventModel struct {
	ContentModel

	Agenda             []AgendaItemModel `firestore:"agenda" docstore:"agenda"`
	Speakers           []SpeakerModel    `firestore:"speakers" docstore:"speakers"`
	RegistrationStatus string            `firestore:"registrationStatus" docstore:"registrationStatus"`
	Status             string            `firestore:"status" docstore:"status"`
	Location           string            `firestore:"location,omitempty" docstore:"location"`
	Time               string            `firestore:"time,omitempty" docstore:"time"`
	RegistrationURL    string            `firestore:"registrationUrl,omitempty" docstore:"registrationUrl"`
}

type AgendaItemModel struct {
	Time        string `firestore:"time" docstore:"time"`
	Title       string `firestore:"title" docstore:"title"`
	Description string `firestore:"description,omitempty" docstore:"description"`
}

type SpeakerModel struct {
	Name     string `firestore:"name" docstore:"name"`
	Title    string `firestore:"title,omitempty" docstore:"title"`
	Image    string `firestore:"image,omitempty" docstore:"image"`
	LinkedIn string `firestore:"linkedin,omitempty" docstore:"linkedin"`
}

// ToDomain converts the model to an *entity.Event. Documents written before
// registrationStatus existed are read through SyncStatus.
func (m *EventModel) ToDomain() entity.ContentItem {
	event := &entity.Event{
		ContentMeta:        m.toMeta(),
		RegistrationStatus: entity.RegistrationStatus(m.RegistrationStatus),
		Status:             entity.RegistrationStatus(m.Status),
		Location:           m.Location,
		Time:               m.Time,
		RegistrationURL:    m.RegistrationURL,
	}
	for _, a := range m.Agenda {
		event.Agenda = append(event.Agenda, entity.AgendaItem(a))
	}
	for _, s := range m.Speakers {
		event.Speakers = append(event.Speakers, entity.Speaker(s))
	}
	event.SyncStatus(false)

	return event
}

// BlogModel mirrors a document of the 'blogs' collection.
type BlogModel struct {
	ContentModel

	Content       string `firestore:"content" docstore:"content"`
	ContentWriter string `firestore:"contentWriter,omitempty" docstore:"contentWriter"`
}

// ToDomain converts the model to an *entity.Blog.
func (m *BlogModel) ToDomain() entity.ContentItem {
	return &entity.Blog{
		ContentMeta:   m.toMeta(),
		Content:       m.Content,
		ContentWriter: m.ContentWriter,
	}
}

// ProjectModel mirrors a document of the 'projects' collection.
type ProjectModel struct {
	ContentModel

	WebsiteURL string `firestore:"websiteUrl,omitempty" docstore:"websiteUrl"`
	GithubURL  string `firestore:"githubUrl,omitempty" docstore:"githubUrl"`
}

// ToDomain converts the model to an *entity.Project.
func (m *ProjectModel) ToDomain() entity.ContentItem {
	return &entity.Project{
		ContentMeta: m.toMeta(),
		WebsiteURL:  m.WebsiteURL,
		GithubURL:   m.GithubURL,
	}
}

// PostModel mirrors a document of the 'posts' collection.
type PostModel struct {
	ContentModel

	SocialMedia *SocialLinksModel `firestore:"socialMedia,omitempty" docstore:"socialMedia"`
}

type SocialLinksModel struct {
	Instagram string `firestore:"instagram,omitempty" docstore:"instagram"`
	LinkedIn  string `firestore:"linkedin,omitempty" docstore:"linkedin"`
	Twitter   string `firestore:"twitter,omitempty" docstore:"twitter"`
	Facebook  string `firestore:"facebook,omitempty" docstore:"facebook"`
}

// ToDomain converts the model to an *entity.Post.
func (m *PostModel) ToDomain() entity.ContentItem {
	post := &entity.Post{ContentMeta: m.toMeta()}
	if m.SocialMedia != nil {
		links := entity.SocialLinks(*m.SocialMedia)
		post.SocialMedia = &links
	}

	return post
}

// NewContentDocument returns an empty model for decoding documents of kind.
func NewContentDocument(kind entity.Kind) ContentDocument {
	switch kind {
	case entity.KindEvent:
		return &EventModel{}
	case entity.KindBlog:
		return &BlogModel{}
	case entity.KindProject:
		return &ProjectModel{}
	case entity.KindPost:
		return &PostModel{}
	default:
		return nil
	}
}

// FromContentItem converts a domain item to its storage model.
func FromContentItem(item entity.ContentItem) ContentDocument {
	switch v := item.(type) {
	case *entity.Event:
		m := &EventModel{
			ContentModel:       newContentModel(&v.ContentMeta),
			RegistrationStatus: string(v.RegistrationStatus),
			Status:             string(v.Status),
			Location:           v.Location,
			Time:               v.Time,
			RegistrationURL:    v.RegistrationURL,
		}
		for _, a := range v.Agenda {
			m.Agenda = append(m.Agenda, AgendaItemModel(a))
		}
		for _, s := range v.Speakers {
			m.Speakers = append(m.Speakers, SpeakerModel(s))
		}

		return m
	case *entity.Blog:
		return &BlogModel{
			ContentModel:  newContentModel(&v.ContentMeta),
			Content:       v.Content,
			ContentWriter: v.ContentWriter,
		}
	case *entity.Project:
		return &ProjectModel{
			ContentModel: newContentModel(&v.ContentMeta),
			WebsiteURL:   v.WebsiteURL,
			GithubURL:    v.GithubURL,
		}
	case *entity.Post:
		m := &PostModel{ContentModel: newContentModel(&v.ContentMeta)}
		if v.SocialMedia != nil {
			links := SocialLinksModel(*v.SocialMedia)
			m.SocialMedia = &links
		}

		return m
	default:
		return nil
	}
}
