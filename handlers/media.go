package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/noorus/mediacms"
	"github.com/noorus/mediacms/middlewares"
	"github.com/noorus/mediacms/pkg/content"
)

// Acknowledgment bodies the page editor expects.
const (
	ackCreated = "OK"
	ackChanged = "OK!"
)

// DefaultMountPath is where the media routes are mounted.
const DefaultMountPath = "/media"

type introService interface {
	Get(ctx context.Context) (content.Entry, error)
	UpdateText(ctx context.Context, text string) error
}

type iframeService interface {
	List(ctx context.Context) ([]content.Entry, error)
	Create(ctx context.Context) (content.Entry, error)
	Update(ctx context.Context, pos content.Position, body string) error
	UpdateMany(ctx context.Context, updates map[content.Position]string) error
	Delete(ctx context.Context, pos content.Position) error
}

type sectionService interface {
	List(ctx context.Context) ([]content.Entry, error)
	Create(ctx context.Context) (content.Entry, error)
	Update(ctx context.Context, pos content.Position, body string) error
	Delete(ctx context.Context, pos content.Position) error
}

// Media serves the editable parts of the media page.
type Media struct {
	intros    introService
	iframes   iframeService
	sections  sectionService
	mountPath string
	upload    []middlewares.UploadOption
}

// MediaOption configures the Media handler.
type MediaOption func(*Media)

// WithMountPath changes the prefix the routes are mounted under.
func WithMountPath(path string) MediaOption {
	return func(h *Media) {
		if path != "" {
			h.mountPath = path
		}
	}
}

// WithUploadOptions configures the form parser used by the write routes.
func WithUploadOptions(opts ...middlewares.UploadOption) MediaOption {
	return func(h *Media) {
		h.upload = append(h.upload, opts...)
	}
}

// NewMedia creates the media handler. The services are usually
// *content.Intros, *content.Iframes and *content.Sections.
func NewMedia(intros introService, iframes iframeService, sections sectionService, opts ...MediaOption) *Media {
	h := &Media{
		intros:    intros,
		iframes:   iframes,
		sections:  sections,
		mountPath: DefaultMountPath,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements mediacms.Handler.
func (h *Media) Routes(r mediacms.Router) {
	form := middlewares.Upload(h.upload...)

	r.Route(h.mountPath, func(r mediacms.Router) {
		r.GET("/intro", h.getIntro)
		r.PUT("/intro", h.updateIntro, form)

		r.GET("/iframes", h.listIframes)
		r.PUT("/iframes", h.updateIframes, form)
		r.POST("/iframes", h.createIframe)
		r.PUT("/iframes/{id}", h.updateIframe, form)
		r.DELETE("/iframes/{id}", h.deleteIframe)

		r.GET("/sections", h.listSections)
		r.POST("/sections", h.createSection)
		r.PUT("/sections/{id}", h.updateSection, form)
		r.DELETE("/sections/{id}", h.deleteSection)
	})
}

func (h *Media) getIntro(c mediacms.Context) error {
	e, err := h.intros.Get(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newEntryView(e))
}

func (h *Media) updateIntro(c mediacms.Context) error {
	text, err := formField(c, "text")
	if err != nil {
		return err
	}
	if err := h.intros.UpdateText(c, text); err != nil {
		return err
	}
	return c.String(http.StatusOK, ackChanged)
}

func (h *Media) listIframes(c mediacms.Context) error {
	entries, err := h.iframes.List(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newEntryViews(entries))
}

// updateIframes takes one form field per iframe, keyed by its 1-based id.
func (h *Media) updateIframes(c mediacms.Context) error {
	body := middlewares.FormBody(c)
	updates := make(map[content.Position]string, len(body))
	for key, value := range body {
		pos, err := content.ParseID(key)
		if err != nil {
			return err
		}
		updates[pos] = value
	}

	if err := h.iframes.UpdateMany(c, updates); err != nil {
		return err
	}
	return c.String(http.StatusOK, ackChanged)
}

func (h *Media) createIframe(c mediacms.Context) error {
	e, err := h.iframes.Create(c)
	if err != nil {
		return err
	}
	c.Logger().InfoContext(c, "iframe created", "key", e.ID.String())
	return c.String(http.StatusOK, ackCreated)
}

func (h *Media) updateIframe(c mediacms.Context) error {
	pos, err := content.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	body, err := formField(c, "content")
	if err != nil {
		return err
	}
	if err := h.iframes.Update(c, pos, body); err != nil {
		return err
	}
	return c.String(http.StatusOK, ackChanged)
}

func (h *Media) deleteIframe(c mediacms.Context) error {
	pos, err := content.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.iframes.Delete(c, pos); err != nil {
		return err
	}
	return c.String(http.StatusOK, ackChanged)
}

func (h *Media) listSections(c mediacms.Context) error {
	entries, err := h.sections.List(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newEntryViews(entries))
}

func (h *Media) createSection(c mediacms.Context) error {
	e, err := h.sections.Create(c)
	if err != nil {
		return err
	}
	c.Logger().InfoContext(c, "section created", "key", e.ID.String())
	return c.String(http.StatusOK, ackCreated)
}

func (h *Media) updateSection(c mediacms.Context) error {
	pos, err := content.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	body, err := formField(c, "content")
	if err != nil {
		return err
	}
	if err := h.sections.Update(c, pos, body); err != nil {
		return err
	}
	return c.String(http.StatusOK, ackChanged)
}

func (h *Media) deleteSection(c mediacms.Context) error {
	pos, err := content.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.sections.Delete(c, pos); err != nil {
		return err
	}
	return c.String(http.StatusOK, ackChanged)
}

// formField returns a required field from the parsed form. An empty value
// is allowed; a missing key is a bad request.
func formField(c mediacms.Context, name string) (string, error) {
	v, ok := middlewares.FormBody(c)[name]
	if !ok {
		return "", mediacms.NewHTTPError(http.StatusBadRequest, "missing form field "+name)
	}
	return v, nil
}

type entryView struct {
	UpdatedAt time.Time `json:"updated_at"`
	Content   string    `json:"content"`
	ID        int       `json:"id"`
	Key       uuid.UUID `json:"key"`
}

func newEntryView(e content.Entry) entryView {
	return entryView{
		ID:        e.Position.ID(),
		Key:       e.ID,
		Content:   e.Content,
		UpdatedAt: e.UpdatedAt,
	}
}

func newEntryViews(entries []content.Entry) []entryView {
	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, newEntryView(e))
	}
	return views
}
