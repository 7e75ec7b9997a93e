package share

import (
	"net/http"

	"cloudpix/files-api/internal"
	"cloudpix/files-api/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// ShareList returns every non-revoked link of a file the user owns
func ShareList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	fileID := c.Param("id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "File ID is required",
			"requestID": requestID,
		})
		return
	}

	links, err := d.ShareLinks.ListByFile(c.Request.Context(), fileID, userID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{
			"error":     apperr.Message(err, "Failed to get share links"),
			"requestID": requestID,
		})
		return
	}

	out := make([]shareLinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, shareLinkResponse{
			ShareLink: link,
			ShareURL:  shareURL(link.LinkID),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"shareLinks": out,
	})
}
