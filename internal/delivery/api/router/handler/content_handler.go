package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"aiclub/config"
	"aiclub/internal/delivery/api/middleware"
	"aiclub/internal/delivery/api/response"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	Content usecase.ContentUsecase
	Live    usecase.LiveUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// ContentHandler serves events, blogs, projects and posts.
type ContentHandler struct {
	content usecase.ContentUsecase
	live    usecase.LiveUsecase
	cfg     *config.Config
	logger  *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		content: params.Content,
		live:    params.Live,
		cfg:     params.Config,
		logger:  params.Logger,
	}
}

// List returns every item of a kind in the collection default order.
func (h *ContentHandler) List(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}

	items, err := h.content.List(c.Request().Context(), kind)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, items)
}

// Get returns one item by id.
func (h *ContentHandler) Get(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}

	item, err := h.content.Get(c.Request().Context(), kind, c.Param("id"))
	if err != nil {
		return err
	}
	setETag(c, item)

	return response.Success(c, http.StatusOK, item)
}

// GetBySlug returns one item by slug.
func (h *ContentHandler) GetBySlug(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}

	item, err := h.content.GetBySlug(c.Request().Context(), kind, c.Param("slug"))
	if err != nil {
		return err
	}
	setETag(c, item)

	return response.Success(c, http.StatusOK, item)
}

// Stream pushes the ordered list of a kind as server-sent events.
func (h *ContentHandler) Stream(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}

	order, err := parseOrder(c)
	if err != nil {
		return err
	}

	return streamCollection(c, h.live, kind.Collection(), order, h.cfg.Live.Heartbeat, h.logger)
}

// Create adds an item. The body is the raw field map of the kind.
func (h *ContentHandler) Create(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}

	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	item, err := h.content.Create(c.Request().Context(), middleware.CurrentSession(c), kind, fields)
	if err != nil {
		return err
	}
	setETag(c, item)

	return response.Success(c, http.StatusCreated, item)
}

// Update merges the provided fields into an item. An If-Match header carrying
// the expected version turns on the version check.
func (h *ContentHandler) Update(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}

	expected, err := ifMatchVersion(c)
	if err != nil {
		return err
	}

	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	item, err := h.content.Update(c.Request().Context(), middleware.CurrentSession(c), usecase.UpdateContentInput{
		Kind:            kind,
		ID:              c.Param("id"),
		Fields:          fields,
		ExpectedVersion: expected,
	})
	if err != nil {
		return err
	}
	setETag(c, item)

	return response.Success(c, http.StatusOK, item)
}

// Delete removes an item.
func (h *ContentHandler) Delete(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}

	if err := h.content.Delete(c.Request().Context(), middleware.CurrentSession(c), kind, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// RegistrationQR renders the registration link of an open event as a PNG.
func (h *ContentHandler) RegistrationQR(c echo.Context) error {
	png, err := h.content.RegistrationQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func kindParam(c echo.Context) (entity.Kind, error) {
	raw := c.Param("kind")
	kind, ok := entity.ParseKind(raw)
	if !ok {
		return "", domainerrors.ErrUnknownKind.WithDetails(raw)
	}

	return kind, nil
}

// bindFields decodes the JSON object body without touching path or query values.
func bindFields(c echo.Context) (map[string]any, error) {
	fields := map[string]any{}
	if err := c.Echo().JSONSerializer.Deserialize(c, &fields); err != nil {
		return nil, &domainerrors.ValidationError{Invalid: map[string]string{"body": "object"}}
	}

	return fields, nil
}

// ifMatchVersion parses If-Match as a version number, accepting quoted and weak forms.
func ifMatchVersion(c echo.Context) (*int64, error) {
	raw := strings.TrimSpace(c.Request().Header.Get("If-Match"))
	if raw == "" || raw == "*" {
		return nil, nil
	}

	raw = strings.Trim(strings.TrimPrefix(raw, "W/"), `"`)
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || version < 1 {
		return nil, &domainerrors.ValidationError{Invalid: map[string]string{"If-Match": "version"}}
	}

	return &version, nil
}

func setETag(c echo.Context, item entity.ContentItem) {
	c.Response().Header().Set("ETag", strconv.Quote(strconv.FormatInt(item.Meta().Version, 10)))
}
