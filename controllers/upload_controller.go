package controllers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/farhatamiine/restaurent-menu/pkg/apperr"
	"github.com/farhatamiine/restaurent-menu/pkg/resp"
	"github.com/farhatamiine/restaurent-menu/utils"
)

type UploadController struct {
	Dir string
	// BaseURL prefixes returned upload URLs (PUBLIC_BASE_URL). Empty means
	// relative paths, for clients served from the same origin.
	BaseURL string
}

func NewUploadController(dir, baseURL string) *UploadController {
	return &UploadController{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

// POST /owner/uploads
//
// Multipart field "image". Saved under a random filename; the returned URL is
// what item forms submit as imageUrl. Failures surface as a user-facing
// message, no retry.
func (ctl *UploadController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		resp.Error(c, fmt.Errorf("%w: missing image file", apperr.ErrUploadFailed))
		return
	}

	path, err := utils.SaveImage(file, ctl.Dir)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"url": ctl.BaseURL + path})
}
