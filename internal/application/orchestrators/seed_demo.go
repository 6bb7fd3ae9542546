package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nexus/internal/application/panel"
	"nexus/internal/domain/event"
	"nexus/internal/domain/faq"
	"nexus/internal/domain/gallery"
	"nexus/internal/domain/icon"
	"nexus/internal/domain/member"
	"nexus/internal/domain/message"
	"nexus/internal/domain/meta"
	"nexus/internal/domain/segment"
	"nexus/internal/domain/slide"
)

// SeedDemoDeps holds the dev-mode stores to seed. Seeding is explicit and
// logged; it never happens as a silent fallback of a failed fetch.
type SeedDemoDeps struct {
	Segments panel.Store[segment.Segment]
	Messages panel.Store[message.Message]
	Slides   panel.Store[slide.Slide]
	FAQs     panel.Store[faq.FAQ]
	Gallery  panel.Store[gallery.Item]
	Members  panel.Store[member.Member]
	Events   panel.Store[event.Event]

	Now func() time.Time
}

// ExecuteSeedDemo fills each empty dev store with demo content so a fresh
// checkout renders a populated site. Stores that already hold records are
// left untouched.
func ExecuteSeedDemo(ctx context.Context, deps SeedDemoDeps) error {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	seededBy := meta.Metadata{CreatedBy: "seed"}

	if err := seedCollection(ctx, "segments", deps.Segments, demoSegments(seededBy)); err != nil {
		return err
	}
	if err := seedCollection(ctx, "messages", deps.Messages, demoMessages(seededBy)); err != nil {
		return err
	}
	if err := seedCollection(ctx, "slides", deps.Slides, demoSlides(seededBy)); err != nil {
		return err
	}
	if err := seedCollection(ctx, "faqs", deps.FAQs, demoFAQs(seededBy)); err != nil {
		return err
	}
	if err := seedCollection(ctx, "gallery", deps.Gallery, demoGallery(seededBy)); err != nil {
		return err
	}
	if err := seedCollection(ctx, "members", deps.Members, demoMembers(seededBy)); err != nil {
		return err
	}
	if err := seedCollection(ctx, "events", deps.Events, demoEvents(seededBy, now())); err != nil {
		return err
	}
	return nil
}

// seedCollection creates the records if the store is empty.
func seedCollection[T any](ctx context.Context, name string, store panel.Store[T], records []T) error {
	existing, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: list: %w", name, err)
	}
	if len(existing) > 0 {
		return nil // Already seeded
	}
	for _, rec := range records {
		if _, err := store.Create(ctx, rec); err != nil {
			return fmt.Errorf("seed %s: create: %w", name, err)
		}
	}
	slog.Info("seed_event", "event", "collection_seeded", "collection", name, "count", len(records))
	return nil
}

func demoSegments(m meta.Metadata) []segment.Segment {
	return []segment.Segment{
		{Title: "Machine Learning", Slug: "machine-learning", Description: "Models, data pipelines, and a reading group.", Category: segment.CategoryCore, Icon: icon.Robot, Features: []string{"weekly labs", "paper club"}, Order: 1, IsActive: true, Meta: m},
		{Title: "Web Development", Slug: "web-development", Description: "From first HTML page to deployed full-stack apps.", Category: segment.CategoryCore, Icon: icon.Code, Features: []string{"project teams"}, Order: 2, IsActive: true, Meta: m},
		{Title: "Cloud & DevOps", Slug: "cloud-devops", Description: "Infrastructure, pipelines, and certification study jams.", Category: segment.CategorySpecialized, Icon: icon.Cloud, Order: 3, IsActive: true, Meta: m},
	}
}

func demoMessages(m meta.Metadata) []message.Message {
	return []message.Message{
		{Type: message.TypeAdvisor, AuthorName: "Dr. Priya Nair", AuthorRole: "Faculty Advisor", Body: "This society turns curiosity into shipped projects. Come build with us.", Order: 1, IsActive: true, Meta: m},
		{Type: message.TypeLeader, AuthorName: "Avery Lin", AuthorRole: "President", Body: "Every project team here started with someone showing up to one meeting.", Order: 2, IsActive: true, Meta: m},
	}
}

func demoSlides(m meta.Metadata) []slide.Slide {
	return []slide.Slide{
		{Title: "Build Something Real", Subtitle: "Project teams form every semester", ImageURL: "/static/img/hero-build.jpg", CTALabel: "Join us", CTAURL: "/contact", Order: 1, IsActive: true, Meta: m},
		{Title: "Hackathon Season", Subtitle: "Train, team up, compete", ImageURL: "/static/img/hero-hack.jpg", Order: 2, IsActive: true, Meta: m},
	}
}

func demoFAQs(m meta.Metadata) []faq.FAQ {
	return []faq.FAQ{
		{Question: "How do I become a member?", Answer: "Come to any weekly meeting and sign up there. Membership is free for students.", Category: faq.CategoryMembership, Order: 1, IsActive: true, Meta: m},
		{Question: "Do I need to know how to code?", Answer: "No. Several of our core areas run beginner tracks that start from zero.", Category: faq.CategoryGeneral, Order: 2, IsActive: true, Meta: m},
		{Question: "How are event teams formed?", Answer: "Team formation happens in the first session of each event; solo signups are matched on the spot.", Category: faq.CategoryEvents, Order: 3, IsActive: true, Meta: m},
	}
}

func demoGallery(m meta.Metadata) []gallery.Item {
	return []gallery.Item{
		{Title: "Hackathon 2025", Description: "36 hours, 14 teams, too much pizza.", ImageURL: "/static/img/gallery-hack.jpg", Category: gallery.CategoryEvent, Order: 1, IsActive: true, Meta: m},
		{Title: "Robotics Lab Tour", ImageURL: "/static/img/gallery-lab.jpg", Category: gallery.CategoryWorkshop, Order: 2, IsActive: true, Meta: m},
	}
}

func demoMembers(m meta.Metadata) []member.Member {
	return []member.Member{
		{Name: "Avery Lin", Role: "President", Year: "2026", Socials: []member.SocialLink{{Platform: member.PlatformGitHub, URL: "https://github.com/averylin"}}, Order: 1, IsActive: true, Meta: m},
		{Name: "Sam Okafor", Role: "Events Lead", Year: "2027", Order: 2, IsActive: true, Meta: m},
	}
}

func demoEvents(m meta.Metadata, now time.Time) []event.Event {
	return []event.Event{
		{
			Title: "Intro to Go Workshop", Slug: "intro-to-go-workshop",
			Description: "A hands-on session for complete beginners.",
			Body:        "## Bring a laptop\n\nWe start from zero and end with a small web service.",
			Category:    event.CategoryWorkshop,
			Date:        now.AddDate(0, 0, 14), StartTime: "18:00", EndTime: "20:00",
			Venue: "Lab 204", Capacity: 40,
			Agenda:   []event.AgendaItem{{Time: "18:00", Activity: "Setup"}, {Time: "18:30", Activity: "Live coding"}},
			Speakers: []event.Speaker{{Name: "Dana Ruiz", Topic: "tooling"}},
			Order:    1, IsActive: true, Meta: m,
		},
		{
			Title: "Spring Gala", Slug: "spring-gala",
			Description: "End-of-semester celebration and project showcase.",
			Category:    event.CategorySocial,
			Date:        now.AddDate(0, 0, -30),
			Venue:       "Main Hall",
			Order:       2, IsActive: true, Meta: m,
		},
	}
}
