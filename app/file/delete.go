package file

import (
	"net/http"

	"cloudpix/files-api/internal"
	"cloudpix/files-api/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func FileDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	fileID := c.Param("id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No file ID provided",
			"requestID": requestID,
		})
		return
	}

	err := d.Files.Delete(c.Request.Context(), fileID, userID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{
			"error":     apperr.Message(err, "Failed to delete file"),
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File deleted successfully",
	})
}
