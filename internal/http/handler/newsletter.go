package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"newsletterapi/internal/config"
	"newsletterapi/internal/model"
	"newsletterapi/internal/service"
)

// WelcomeMessage is the body of GET /.
const WelcomeMessage = "Welcome to the Newsletter RESTful API"

// Home returns the static welcome message.
//
// @Summary  Welcome message
// @Tags     home
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   / [get]
func Home() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": WelcomeMessage})
	}
}

// ListNewsletters returns every newsletter as an array of field mappings.
//
// @Summary  List newsletters
// @Tags     newsletters
// @Produce  json
// @Success  200 {array}  map[string]interface{}
// @Failure  500 {object} errorPayload
// @Router   /newsletters [get]
func ListNewsletters(svc service.NewsletterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeInternal(c)
		}
		return c.Status(fiber.StatusOK).JSON(model.FieldMaps(items))
	}
}

// CreateNewsletter stores a newsletter from the form fields title and body.
//
// @Summary  Create newsletter
// @Tags     newsletters
// @Accept   x-www-form-urlencoded
// @Produce  json
// @Param    title formData string true "Newsletter title"
// @Param    body  formData string true "Newsletter body"
// @Success  201 {object} map[string]interface{}
// @Failure  400 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /newsletters [post]
func CreateNewsletter(svc service.NewsletterService, mode config.ErrorMode) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.CreateInput{
			Title: formValue(c, "title"),
			Body:  formValue(c, "body"),
		}
		n, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, mode, err)
		}
		return c.Status(fiber.StatusCreated).JSON(n.Fields())
	}
}

// GetNewsletter returns one newsletter by its integer ID.
//
// @Summary  Get newsletter
// @Tags     newsletters
// @Produce  json
// @Param    id path int true "Newsletter ID"
// @Success  200 {object} map[string]interface{}
// @Failure  404 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /newsletters/{id} [get]
func GetNewsletter(svc service.NewsletterService, mode config.ErrorMode) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id < 0 {
			return fiber.ErrNotFound
		}
		n, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, mode, err)
		}
		return c.Status(fiber.StatusOK).JSON(n.Fields())
	}
}

// formValue returns the submitted value of a form field, or nil when the
// field is absent. Both urlencoded and multipart bodies are read.
func formValue(c *fiber.Ctx, key string) *string {
	if form, err := c.MultipartForm(); err == nil {
		if vs, ok := form.Value[key]; ok && len(vs) > 0 {
			v := vs[0]
			return &v
		}
		return nil
	}

	args := c.Request().PostArgs()
	if !args.Has(key) {
		return nil
	}
	v := string(args.Peek(key))
	return &v
}
