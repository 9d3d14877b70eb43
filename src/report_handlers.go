package main

import (
	"ems/src/types"
	"ems/src/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

func reportHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/reports", func(ctx *gin.Context) {
			role := ctx.GetString("role")
			if role != string(types.ROLE_ORGANIZER) {
				utils.FlashRedirect(ctx, "/home", "You do not have permission to access reports.")
				return
			}
			userId := ctx.GetUint("id")
			report, err := utils.BuildEventReport(userId)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": report})
		})
	return g
}
