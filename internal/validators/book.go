package validators

import (
	"context"
	"math"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-book-share/models"
)

const (
	FieldTitle   = "title"
	FieldCaption = "caption"
	FieldImage   = "image"
	FieldRating  = "rating"

	dataURIPrefix = "data:"
)

// BookValidator checks book creation requests.
type BookValidator struct {
}

func NewBookValidator() Validator {
	return &BookValidator{}
}

func (v *BookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateBookRequest:
		return v.validateCreateBookRequest(ctx, value, fields...)
	case *models.CreateBookRequest:
		return v.validateCreateBookRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BookValidator) validateCreateBookRequest(_ context.Context, req models.CreateBookRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldCaption, FieldImage, FieldRating}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(req.Title) {
				return ErrMissingField
			}
		case FieldCaption:
			if isBlank(req.Caption) {
				return ErrMissingField
			}
		case FieldImage:
			if isBlank(req.Image) {
				return ErrMissingField
			}
		case FieldRating:
			if req.Rating == nil {
				return ErrMissingField
			}
		default:
			return ErrUnknownField
		}
	}

	for _, f := range fields {
		switch f {
		case FieldImage:
			if !IsDataURI(req.Image) && !IsHTTPURL(req.Image) {
				return ErrInvalidImage
			}
		case FieldRating:
			rating := req.Rating.Float64()
			if math.IsNaN(rating) || rating < models.MinRating || rating > models.MaxRating {
				return ErrRatingOutOfRange
			}
		}
	}

	return nil
}

// IsDataURI reports whether s looks like "data:<mime>;base64,<payload>".
func IsDataURI(s string) bool {
	if !strings.HasPrefix(s, dataURIPrefix) {
		return false
	}
	meta, payload, found := strings.Cut(s[len(dataURIPrefix):], ",")
	return found && payload != "" && strings.HasSuffix(meta, ";base64")
}

// IsHTTPURL reports whether s is an absolute http or https URL with a host.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
