package impl

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"

	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// reservedFields are owned by the store and the service, never by callers.
var reservedFields = []string{"id", "createdAt", "updatedAt", "version"}

// decodeContent builds a typed item of kind from a loosely typed field map.
// Keys that match no field of the kind are reported in ValidationError.Unknown.
func decodeContent(kind entity.Kind, fields map[string]any) (entity.ContentItem, error) {
	item := entity.NewContentItem(kind)
	if item == nil {
		return nil, domainerrors.ErrUnknownKind.WithDetails(string(kind))
	}

	input := make(map[string]any, len(fields))
	for k, v := range fields {
		input[k] = v
	}
	for _, k := range reservedFields {
		delete(input, k)
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:  "json",
		Squash:   true,
		Metadata: &md,
		Result:   item,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create field decoder")
	}

	if err := dec.Decode(input); err != nil {
		return nil, &domainerrors.ValidationError{
			Invalid: map[string]string{"fields": err.Error()},
		}
	}

	if len(md.Unused) > 0 {
		unknown := append([]string(nil), md.Unused...)
		sort.Strings(unknown)

		return nil, &domainerrors.ValidationError{Unknown: unknown}
	}

	return item, nil
}

// mergeContent overlays fields on the stored item and decodes the result.
func mergeContent(existing entity.ContentItem, fields map[string]any) (entity.ContentItem, error) {
	raw, err := json.Marshal(existing)
	if err != nil {
		return nil, errors.Wrap(err, "encode stored item")
	}

	merged := make(map[string]any)
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, errors.Wrap(err, "decode stored item")
	}
	for k, v := range fields {
		merged[k] = v
	}

	// Unknown keys of the patch are reported; the stored document has none.
	return decodeContent(existing.Kind(), merged)
}

// contentValidator checks decoded items against their validate tags.
type contentValidator struct {
	validate *validator.Validate
}

func newContentValidator() *contentValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
	// Registration of a fixed tag name cannot fail.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseDate(fl.Field().String())

		return err == nil
	})

	return &contentValidator{validate: v}
}

// Validate returns a ValidationError listing missing and malformed fields.
func (cv *contentValidator) Validate(item entity.ContentItem) error {
	err := cv.validate.Struct(item)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate content")
	}

	verr := &domainerrors.ValidationError{}
	for _, fe := range fieldErrs {
		name := fieldPath(fe.Namespace())
		if fe.Tag() == "required" || fe.Tag() == "notblank" {
			verr.Missing = append(verr.Missing, name)

			continue
		}
		if verr.Invalid == nil {
			verr.Invalid = make(map[string]string)
		}
		verr.Invalid[name] = fe.Tag()
	}

	return verr
}

// fieldPath drops the struct name and embedded struct segments from a
// validator namespace, e.g. "Event.ContentMeta.title" becomes "title".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	out := parts[:0]
	for _, p := range parts {
		if p == "ContentMeta" {
			continue
		}
		out = append(out, p)
	}

	return strings.Join(out, ".")
}
