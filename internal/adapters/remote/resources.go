package remote

import (
	"nexus/internal/domain/event"
	"nexus/internal/domain/faq"
	"nexus/internal/domain/gallery"
	"nexus/internal/domain/member"
	"nexus/internal/domain/message"
	"nexus/internal/domain/segment"
	"nexus/internal/domain/slide"
)

// One constructor per managed resource, pinning the path segment, operation
// suffix, and envelope keys the API uses for it.

func Segments(c *Client) *Resource[segment.Segment] {
	return newResource[segment.Segment](c, "segments", "Segment", "segments", "segment")
}

func Messages(c *Client) *Resource[message.Message] {
	return newResource[message.Message](c, "messages", "Message", "messages", "message")
}

func Slides(c *Client) *Resource[slide.Slide] {
	return newResource[slide.Slide](c, "carousel", "Slide", "slides", "slide")
}

func FAQs(c *Client) *Resource[faq.FAQ] {
	return newResource[faq.FAQ](c, "faqs", "Faq", "faqs", "faq")
}

func Gallery(c *Client) *Resource[gallery.Item] {
	return newResource[gallery.Item](c, "gallery", "GalleryItem", "galleryItems", "galleryItem")
}

func Members(c *Client) *Resource[member.Member] {
	return newResource[member.Member](c, "members", "Member", "members", "member")
}

func Events(c *Client) *Resource[event.Event] {
	return newResource[event.Event](c, "events", "Event", "events", "event")
}
