package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"maintenance-hub-backend/internal/auth"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/logger"
	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// respondError writes err with the status its type maps to. Unexpected
// errors keep the underlying message in details.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
		c.JSON(status, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// currentActor returns the authenticated actor or writes a 401
func currentActor(c *gin.Context) (*service.Actor, bool) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return nil, false
	}
	return actor, true
}

// pathID parses the :id parameter or writes a 400
func pathID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid %s ID", entity)})
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional UUID query parameter or writes a 400
func queryUUID(c *gin.Context, key string) (*uuid.UUID, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + key})
		return nil, false
	}
	return &id, true
}

// queryTime parses an optional RFC 3339 or YYYY-MM-DD query parameter
func queryTime(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + key + ", expected RFC 3339 or YYYY-MM-DD"})
	return nil, false
}

// queryInt parses an optional integer query parameter, falling back to def
func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + key})
		return 0, false
	}
	return v, true
}

// pagination reads page and page_size. Out of range values fall back to the
// defaults.
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// formUpload opens a multipart file field. The returned close func must be
// called once the upload has been consumed.
func formUpload(c *gin.Context, field string) (*service.Upload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}

	contentType := header.Header.Get("Content-Type")
	return &service.Upload{
		Reader:      file,
		Size:        header.Size,
		FileName:    header.Filename,
		ContentType: contentType,
	}, func() { _ = file.Close() }, nil
}

// sendSpreadsheet writes an xlsx attachment
func sendSpreadsheet(c *gin.Context, name string, data []byte) {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
