package handler

import (
	"context"
	"database/sql"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"artikled/internal/service"
)

// HealthCheck reports whether the database dependency is reachable.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// articleRedirect builds the canonical location of an article page, the
// target every mutating operation points the client back to.
func articleRedirect(id int64) string {
	return fmt.Sprintf("/articles/%d", id)
}

// mediaUpload converts a multipart file header into a service upload,
// leaving the open file for the caller to close.
func mediaUpload(fh *multipart.FileHeader) (*service.MediaUpload, multipart.File, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	up := &service.MediaUpload{
		Filename:    fh.Filename,
		ContentType: ct,
		Size:        fh.Size,
		Reader:      f,
	}
	return up, f, nil
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal: parsing and response shaping only, no business logic.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	articleSvc service.ArticleService,
	commentSvc service.CommentService,
	editWf *service.EditWorkflow,
	deleteWf *service.DeleteWorkflow,
) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint: checks DB connectivity only
	app.Get("/health", HealthCheck(db))

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// List articles, most recently bumped first
	app.Get("/articles", func(c *fiber.Ctx) error {
		items, err := articleSvc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"articles": items})
	})

	// Create article (multipart/form-data: title, body, one or more media files)
	app.Post("/articles", func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "MULTIPART_REQUIRED", "multipart form is required")
		}

		uploads := make([]service.MediaUpload, 0, len(form.File["media"]))
		for _, fh := range form.File["media"] {
			up, f, err := mediaUpload(fh)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()
			uploads = append(uploads, *up)
		}

		a, err := articleSvc.Create(c.UserContext(), c.FormValue("title"), c.FormValue("body"), uploads)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"article":  a,
			"redirect": articleRedirect(a.ID),
		})
	})

	// Get article by ID, with its comments
	app.Get("/articles/:id", func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		a, err := articleSvc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		comments, err := commentSvc.ListForArticle(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"article":  a,
			"comments": comments,
		})
	})

	// Add comment to article; bumps the article
	app.Post("/articles/:id/comments", func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		cm, err := commentSvc.Create(c.UserContext(), id, c.FormValue("comment"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"comment":  cm,
			"redirect": articleRedirect(id),
		})
	})

	// Two-phase edit: mode=check returns current data for confirmation,
	// mode=save applies the new values. Both phases carry the password.
	app.Post("/articles/:id/edit", func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var media *service.MediaUpload
		if fh, err := c.FormFile("media"); err == nil && fh.Size > 0 {
			up, f, err := mediaUpload(fh)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()
			media = up
		}

		res, err := editWf.Run(
			c.UserContext(),
			id,
			c.FormValue("password"),
			c.FormValue("mode"),
			c.FormValue("title"),
			c.FormValue("body"),
			media,
		)
		if err != nil {
			return writeServiceError(c, err)
		}
		if res != nil {
			return c.JSON(res)
		}
		return c.JSON(fiber.Map{"redirect": articleRedirect(id)})
	})

	// Delete article; password-gated
	app.Post("/articles/:id/delete", func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := deleteWf.DeleteArticle(c.UserContext(), id, c.FormValue("password")); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"redirect": "/articles"})
	})

	// Delete comment; password-gated. Redirects back to the owning article
	// when it can be resolved, otherwise to the listing.
	app.Post("/comments/:id/delete", func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		articleID, hasArticle, err := deleteWf.DeleteComment(c.UserContext(), id, c.FormValue("password"))
		if err != nil {
			return writeServiceError(c, err)
		}
		redirect := "/articles"
		if hasArticle {
			redirect = articleRedirect(articleID)
		}
		return c.JSON(fiber.Map{"redirect": redirect})
	})
}
