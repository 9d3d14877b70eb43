package main

import (
	"ems/src/db"
	"ems/src/models"
	"ems/src/models/scopes"
	"ems/src/types"
	"ems/src/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func feedbackHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/tickets/:id/feedback", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var ticket models.Ticket
			db := db.GetDb()
			if err := db.
				Scopes(scopes.WithID(params.ID)).
				First(&ticket).
				Error; err != nil {
				log.Printf("Error retrieving ticket %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Ticket does not exist"})
				return
			}
			userId := ctx.GetUint("id")
			if ticket.UserID != userId {
				utils.FlashRedirect(ctx, "/home", "You do not have permission to submit feedback for this ticket.")
				return
			}
			var body types.SubmitFeedbackRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			feedback := models.Feedback{
				Rating:  body.Rating,
				Comment: body.Comment,
				EventID: ticket.EventID,
				UserID:  userId,
			}
			if err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&feedback).Error; err != nil {
					return err
				}
				return nil
			}); err != nil {
				log.Printf("Error creating feedback for ticket %d: %s\n", ticket.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": feedback.ID})
		})
	return g
}
