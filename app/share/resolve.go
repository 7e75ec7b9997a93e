package share

import (
	"net/http"

	"cloudpix/files-api/internal"
	"cloudpix/files-api/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// ShareResolve is the only unauthenticated entry point: anyone holding a
// valid link token gets the file metadata and a time-boxed download URL
func ShareResolve(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	linkID := c.Param("linkId")
	if linkID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Link ID is required",
			"requestID": requestID,
		})
		return
	}

	resolved, err := d.ShareLinks.Resolve(c.Request.Context(), linkID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{
			"error":     apperr.Message(err, "Failed to access share link"),
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, resolved)
}
