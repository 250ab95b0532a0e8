package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeboard/src/app/http/response"
	"jokeboard/src/app/web"
)

// Index renders the landing page.
// GET /
func Index(c *gin.Context) {
	response.HTML(c, http.StatusOK, web.PageIndex, nil)
}
