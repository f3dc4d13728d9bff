package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fileuploader/internal/model"
)

// Request bodies use pointers so a missing field can be told apart from a zero value.

type refPayload struct {
	ID *int64 `json:"id"`
}

type carPayload struct {
	ID    *int64  `json:"id"`
	Model *string `json:"model" validate:"required"`
}

type documentPayload struct {
	ID       *int64      `json:"id"`
	Title    *string     `json:"title" validate:"required"`
	Size     *int64      `json:"size" validate:"required,gte=0"`
	MimeType *string     `json:"mimeType"`
	Content  *refPayload `json:"content"`
	Car      *refPayload `json:"car" validate:"required"`
}

type contentPayload struct {
	ID              *int64      `json:"id"`
	Data            []byte      `json:"data" validate:"required" swaggertype:"string" format:"base64"`
	DataContentType *string     `json:"dataContentType" validate:"required"`
	Document        *refPayload `json:"document"`
}

type documentPatchPayload struct {
	ID       *int64      `json:"id"`
	Title    *string     `json:"title"`
	Size     *int64      `json:"size"`
	MimeType *string     `json:"mimeType"`
	Content  *refPayload `json:"content"`
	Car      *refPayload `json:"car"`
}

type contentPatchPayload struct {
	ID              *int64  `json:"id"`
	Data            []byte  `json:"data" swaggertype:"string" format:"base64"`
	DataContentType *string `json:"dataContentType"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var errMalformedBody = errors.New("malformed JSON body")

// bind decodes the request body into v and, when check is set, validates it.
func bind(c *fiber.Ctx, v any, check bool) error {
	if err := json.Unmarshal(c.Body(), v); err != nil {
		return errMalformedBody
	}
	if !check {
		return nil
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", model.ErrValidation, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" must not be null")
		case "gte":
			msgs = append(msgs, fe.Field()+" must be greater than or equal to "+fe.Param())
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return strings.Join(msgs, ", ")
}

func (p *carPayload) toModel() *model.Car {
	return &model.Car{ID: p.ID, Model: deref(p.Model)}
}

func (p *documentPayload) toModel() *model.Document {
	d := &model.Document{
		ID:       p.ID,
		Title:    deref(p.Title),
		MimeType: p.MimeType,
	}
	if p.Size != nil {
		d.Size = *p.Size
	}
	if p.Content != nil {
		d.SetContent(&model.Content{ID: p.Content.ID})
	}
	if p.Car != nil {
		d.SetCar(&model.Car{ID: p.Car.ID})
	}
	return d
}

func (p *contentPayload) toModel() *model.Content {
	c := &model.Content{
		ID:              p.ID,
		Data:            p.Data,
		DataContentType: deref(p.DataContentType),
	}
	if p.Document != nil {
		c.SetDocument(&model.Document{ID: p.Document.ID})
	}
	return c
}

func (p *carPayload) toPatch() model.CarPatch {
	return model.CarPatch{ID: p.ID, Model: p.Model}
}

func (p *documentPatchPayload) toPatch() model.DocumentPatch {
	patch := model.DocumentPatch{
		ID:       p.ID,
		Title:    p.Title,
		Size:     p.Size,
		MimeType: p.MimeType,
	}
	if p.Content != nil {
		patch.ContentID = p.Content.ID
	}
	if p.Car != nil {
		patch.CarID = p.Car.ID
	}
	return patch
}

func (p *contentPatchPayload) toPatch() model.ContentPatch {
	return model.ContentPatch{ID: p.ID, Data: p.Data, DataContentType: p.DataContentType}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
