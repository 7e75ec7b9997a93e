// Package share contains the share-link endpoints
package share

import (
	"errors"
	"io"
	"net/http"

	"cloudpix/files-api/internal"
	"cloudpix/files-api/internal/model"
	"cloudpix/files-api/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type createBody struct {
	// 0 or absent means the link never expires
	ExpirationDays int `json:"expirationDays"`
}

// shareLinkResponse is a ShareLink plus the public URL a user can hand out
type shareLinkResponse struct {
	model.ShareLink
	ShareURL string `json:"shareUrl"`
}

func shareURL(linkID string) string {
	return viper.GetString("host.frontend_url") + "/share/" + linkID
}

func ShareCreate(c *gin.Context, d *internal.Deps) {
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

	// An empty body is fine, expirationDays is optional
	var data createBody
	if err := c.ShouldBind(&data); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	link, err := d.ShareLinks.Create(c.Request.Context(), fileID, userID, data.ExpirationDays)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{
			"error":     apperr.Message(err, "Failed to create share link"),
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusCreated, shareLinkResponse{
		ShareLink: *link,
		ShareURL:  shareURL(link.LinkID),
	})
}
