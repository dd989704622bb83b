package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"wchub/internal/delivery/http/middleware"
	"wchub/internal/delivery/http/response"
	"wchub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// projectImageField is the multipart field listings upload their image under.
const projectImageField = "projectImage"

// ProjectHandler holds dependencies for project listing handlers.
type ProjectHandler struct {
	uc     usecase.ProjectUsecase
	logger *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the project creation request. Accepts JSON or multipart
// with an optional image file.
func (h *ProjectHandler) Create(c echo.Context) error {
	// Bind into an allocated struct; echo's form binder cannot fill a nil
	// pointer, and these routes take multipart as well as JSON.
	input := new(usecase.CreateProjectInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}

	image, err := readImageUpload(c)
	if err != nil {
		return errors.WithStack(err)
	}
	input.Image = image

	project, err := h.uc.CreateProject(c.Request().Context(), middleware.UserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project, "Project created successfully")
}

// Get returns a single project listing.
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project id")
	}

	project, err := h.uc.GetProject(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "")
}

// List returns project listings, optionally filtered by owner.
func (h *ProjectHandler) List(c echo.Context) error {
	var ownerID *int64
	if raw := c.QueryParam("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid userId filter")
		}
		ownerID = &id
	}

	projects, err := h.uc.ListProjects(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "")
}

// Update handles the project update request.
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project id")
	}

	input := new(usecase.UpdateProjectInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}

	image, err := readImageUpload(c)
	if err != nil {
		return errors.WithStack(err)
	}
	input.Image = image

	project, err := h.uc.UpdateProject(c.Request().Context(),
		middleware.UserID(c), middleware.UserRole(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "Project updated successfully")
}

// Delete handles the project deletion request.
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project id")
	}

	if err := h.uc.DeleteProject(c.Request().Context(),
		middleware.UserID(c), middleware.UserRole(c), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ShareQR renders a PNG QR code linking to the project's public page.
func (h *ProjectHandler) ShareQR(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project id")
	}

	png, err := h.uc.ProjectShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// readImageUpload pulls the optional image file out of a multipart request.
// JSON requests and multipart requests without the field return nil.
func readImageUpload(c echo.Context) (*usecase.ImageUpload, error) {
	fileHeader, err := c.FormFile(projectImageField)
	if err != nil {
		// Absent file is fine; the image is optional.
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded image")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &usecase.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
