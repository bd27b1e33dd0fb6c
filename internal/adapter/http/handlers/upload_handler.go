package handlers

import (
	"fmt"
	"log"
	"net/http"

	response "techmend/internal/adapter/http/dto/response"
	"techmend/internal/adapter/http/middleware"
	"techmend/internal/usecase/interfaces"
	"techmend/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadBytes bounds a single multipart upload (all parts together).
const maxUploadBytes = 32 << 20

type UploadHandler struct {
	store interfaces.IMediaStore
	gate  interfaces.IAccessGate
}

func NewUploadHandler(store interfaces.IMediaStore, gate interfaces.IAccessGate) *UploadHandler {
	return &UploadHandler{store: store, gate: gate}
}

// UploadImages godoc
// @Summary  Upload issue evidence images
// @Tags     uploads
// @Accept   multipart/form-data
// @Produce  json
// @Param    images formData file true "Image files (repeatable)"
// @Success  201 {object} response.UploadMediaResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /uploads [post]
func (h *UploadHandler) UploadImages(c *gin.Context) {
	if h.store == nil {
		appErr := pkg.NewDomainErrorSimple("MEDIA_STORE_UNAVAILABLE", "Media storage is not configured", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := h.gate.Authorize(middleware.ActorFromContext(c), interfaces.CapabilityUploadMedia); err != nil {
		appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Actor lacks the required capability", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		appErr := pkg.NewDomainErrorSimple("NO_FILES", "At least one image file is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var total int64
	resp := response.UploadMediaResponse{Images: make([]response.UploadedMediaResponse, 0, len(files))}
	for _, file := range files {
		total += file.Size
		if total > maxUploadBytes {
			appErr := pkg.NewDomainErrorSimple("UPLOAD_TOO_LARGE", "Upload exceeds the size limit", http.StatusRequestEntityTooLarge)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
			return
		}

		id := uuid.NewString()
		key := fmt.Sprintf("issues/%s/%s", id, file.Filename)
		url, err := h.store.Put(c.Request.Context(), key, file.Header.Get("Content-Type"), src, file.Size)
		src.Close()
		if err != nil {
			log.Printf("[upload][handler] storing image failed key=%s err=%v", key, err)
			appErr := pkg.NewDomainError("UPLOAD_FAILED", "Could not store image", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		resp.Images = append(resp.Images, response.UploadedMediaResponse{ID: id, URL: url})
	}

	c.JSON(http.StatusCreated, resp)
}
