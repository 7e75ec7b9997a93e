package file

import (
	"net/http"

	"cloudpix/files-api/internal"
	"cloudpix/files-api/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// FileFetchBulk returns all of the user's files, newest first
func FileFetchBulk(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	files, err := d.Files.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{
			"error":     apperr.Message(err, "Failed to get files"),
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"files": files,
	})
}
