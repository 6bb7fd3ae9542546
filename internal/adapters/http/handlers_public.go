package web

import (
	"errors"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"time"

	"nexus/internal/application/listutil"
	"nexus/internal/application/orchestrators"
	"nexus/internal/application/panel"
	"nexus/internal/application/textutil"
	"nexus/internal/domain/event"
	"nexus/internal/domain/faq"
	"nexus/internal/domain/gallery"
	"nexus/internal/domain/member"
	"nexus/internal/domain/message"
	"nexus/internal/domain/segment"
	"nexus/internal/domain/slide"
)

// themeCookie stores the visitor's colour-scheme preference.
const themeCookie = "nexus_theme"

// Event list tabs.
const (
	tabUpcoming = "upcoming"
	tabPast     = "past"
)

// registerPublic mounts the read-only site endpoints, the theme cookie, and
// the contact form.
func registerPublic(mux *http.ServeMux, deps Deps) {
	mux.HandleFunc("GET /api/segments", publicSegments(deps))
	mux.HandleFunc("GET /api/messages", publicMessages(deps))
	mux.HandleFunc("GET /api/slides", publicSlides(deps))
	mux.HandleFunc("GET /api/faqs", publicFAQs(deps))
	mux.HandleFunc("GET /api/gallery", publicGallery(deps))
	mux.HandleFunc("GET /api/members", publicMembers(deps))
	mux.HandleFunc("GET /api/events", publicEvents(deps))

	mux.HandleFunc("GET /api/theme", getTheme(deps))
	mux.HandleFunc("POST /api/theme", setTheme(deps))
	mux.HandleFunc("POST /api/theme/toggle", toggleTheme(deps))

	mux.HandleFunc("POST /api/contact", submitContact(deps))
}

// publicSegments returns the active segments split into the core display
// group and the rest, each sorted by order.
func publicSegments(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := deps.Stores.Segments.List(r.Context())
		if err != nil {
			apiError(w, http.StatusBadGateway, "failed to load segments")
			return
		}
		active := panel.Filter(items, func(s segment.Segment) bool { return s.IsActive })
		sorted := panel.SortByOrder(active, func(s segment.Segment) int { return s.Order })
		core, other := panel.Partition(sorted, func(s segment.Segment) bool { return s.IsCore() })
		writeJSON(w, http.StatusOK, map[string]any{
			"core":  emptyNotNull(core),
			"other": emptyNotNull(other),
		})
	}
}

// publicMessages returns the active messages split into the advisor column
// and the student-leader column.
func publicMessages(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := deps.Stores.Messages.List(r.Context())
		if err != nil {
			apiError(w, http.StatusBadGateway, "failed to load messages")
			return
		}
		active := panel.Filter(items, func(m message.Message) bool { return m.IsActive })
		sorted := panel.SortByOrder(active, func(m message.Message) int { return m.Order })
		advisors, leaders := panel.Partition(sorted, func(m message.Message) bool {
			return m.Type == message.TypeAdvisor
		})
		writeJSON(w, http.StatusOK, map[string]any{
			"advisors": emptyNotNull(advisors),
			"leaders":  emptyNotNull(leaders),
		})
	}
}

func publicSlides(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := deps.Stores.Slides.List(r.Context())
		if err != nil {
			apiError(w, http.StatusBadGateway, "failed to load slides")
			return
		}
		active := panel.Filter(items, func(s slide.Slide) bool { return s.IsActive })
		sorted := panel.SortByOrder(active, func(s slide.Slide) int { return s.Order })
		writeJSON(w, http.StatusOK, map[string]any{"slides": emptyNotNull(sorted)})
	}
}

// publicFAQs returns the active FAQs, optionally narrowed to one category.
func publicFAQs(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := deps.Stores.FAQs.List(r.Context())
		if err != nil {
			apiError(w, http.StatusBadGateway, "failed to load faqs")
			return
		}
		params := listutil.ParseViewParams(r.URL.Query(), []string{"all"}, faq.ValidCategories)
		active := panel.Filter(items, func(f faq.FAQ) bool { return f.IsActive })
		if params.Category != "" {
			active = panel.Filter(active, func(f faq.FAQ) bool { return f.Category == params.Category })
		}
		sorted := panel.SortByOrder(active, func(f faq.FAQ) int { return f.Order })
		writeJSON(w, http.StatusOK, map[string]any{
			"faqs":       emptyNotNull(sorted),
			"categories": faq.ValidCategories,
			"category":   params.Category,
		})
	}
}

// publicGallery returns the active gallery items for the requested category
// tab. The "all" tab shows everything.
func publicGallery(deps Deps) http.HandlerFunc {
	tabs := append([]string{"all"}, gallery.ValidCategories...)
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := deps.Stores.Gallery.List(r.Context())
		if err != nil {
			apiError(w, http.StatusBadGateway, "failed to load gallery")
			return
		}
		params := listutil.ParseViewParams(r.URL.Query(), tabs, nil)
		active := panel.Filter(items, func(i gallery.Item) bool { return i.IsActive })
		if params.Tab != "all" {
			active = panel.Filter(active, func(i gallery.Item) bool { return i.Category == params.Tab })
		}
		sorted := panel.SortByOrder(active, func(i gallery.Item) int { return i.Order })
		writeJSON(w, http.StatusOK, map[string]any{
			"items": emptyNotNull(sorted),
			"tab":   params.Tab,
			"tabs":  tabs,
		})
	}
}

func publicMembers(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := deps.Stores.Members.List(r.Context())
		if err != nil {
			apiError(w, http.StatusBadGateway, "failed to load members")
			return
		}
		active := panel.Filter(items, func(m member.Member) bool { return m.IsActive })
		sorted := panel.SortByOrder(active, func(m member.Member) int { return m.Order })
		writeJSON(w, http.StatusOK, map[string]any{"members": emptyNotNull(sorted)})
	}
}

// eventView is an event decorated for display: 12-hour clock strings and
// the Markdown body rendered to sanitized HTML.
type eventView struct {
	event.Event
	StartTime12 string        `json:"startTime12,omitempty"`
	EndTime12   string        `json:"endTime12,omitempty"`
	BodyHTML    template.HTML `json:"bodyHtml,omitempty"`
}

// publicEvents returns the active events on the requested tab. Upcoming
// events are listed soonest first, past events most recent first. A search
// query matches title and description; a category narrows further.
func publicEvents(deps Deps) http.HandlerFunc {
	tabs := []string{tabUpcoming, tabPast}
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := deps.Stores.Events.List(r.Context())
		if err != nil {
			apiError(w, http.StatusBadGateway, "failed to load events")
			return
		}
		params := listutil.ParseViewParams(r.URL.Query(), tabs, event.ValidCategories)
		now := deps.Now()

		active := panel.Filter(items, func(e event.Event) bool { return e.IsActive })
		upcoming, past := panel.Partition(active, func(e event.Event) bool { return e.IsUpcoming(now) })

		shown := upcoming
		if params.Tab == tabPast {
			shown = past
		}
		if params.Category != "" {
			shown = panel.Filter(shown, func(e event.Event) bool { return e.Category == params.Category })
		}
		shown = panel.Search(shown, params.Search, func(e event.Event) string {
			return e.Title + " " + e.Description
		})
		sort.SliceStable(shown, func(i, j int) bool {
			if params.Tab == tabPast {
				return shown[i].Date.After(shown[j].Date)
			}
			return shown[i].Date.Before(shown[j].Date)
		})

		views := make([]eventView, 0, len(shown))
		for _, e := range shown {
			v := eventView{
				Event:       e,
				StartTime12: format12(e.StartTime),
				EndTime12:   format12(e.EndTime),
			}
			if html, err := deps.Markdown.Render(e.Body); err == nil {
				v.BodyHTML = html
			}
			views = append(views, v)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"events": views,
			"tab":    params.Tab,
			"query":  params.Search,
		})
	}
}

func format12(hhmm string) string {
	if hhmm == "" {
		return ""
	}
	return textutil.Format12Hour(hhmm)
}

func getTheme(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"theme": themeFromCookie(deps, r)})
	}
}

func setTheme(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Theme string `json:"theme"`
		}
		if err := strictDecode(r, &body); err != nil {
			apiError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		t := deps.Theme.Normalize(body.Theme)
		writeThemeCookie(w, t)
		writeJSON(w, http.StatusOK, map[string]string{"theme": t})
	}
}

func toggleTheme(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := deps.Theme.Toggle(themeFromCookie(deps, r))
		writeThemeCookie(w, t)
		writeJSON(w, http.StatusOK, map[string]string{"theme": t})
	}
}

func themeFromCookie(deps Deps, r *http.Request) string {
	c, err := r.Cookie(themeCookie)
	if err != nil {
		return deps.Theme.Normalize("")
	}
	return deps.Theme.Normalize(c.Value)
}

func writeThemeCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// submitContact accepts a public contact-form submission.
func submitContact(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Subject string `json:"subject"`
			Body    string `json:"body"`
		}
		if err := strictDecode(r, &body); err != nil {
			apiError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		cmd := orchestrators.SubmitContactCommand{
			Name:    strings.TrimSpace(body.Name),
			Email:   strings.TrimSpace(body.Email),
			Subject: strings.TrimSpace(body.Subject),
			Body:    body.Body,
		}
		result, err := orchestrators.ExecuteSubmitContact(r.Context(), cmd, orchestrators.SubmitContactDeps{
			InquiryStore: deps.Inquiries,
			Sender:       deps.Sender,
			NotifyTo:     deps.NotifyTo,
		})
		switch {
		case errors.Is(err, orchestrators.ErrContactValidation):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"fieldErrors": result.FieldErrs,
			})
		case err != nil:
			internalError(w, err)
		default:
			writeJSON(w, http.StatusCreated, map[string]any{"inquiryId": result.InquiryID})
		}
	}
}

// emptyNotNull keeps empty collections encoding as [] instead of null.
func emptyNotNull[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
