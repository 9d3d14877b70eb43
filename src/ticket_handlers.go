package main

import (
	"ems/src/db"
	"ems/src/lib"
	"ems/src/lib/mailer"
	"ems/src/models"
	"ems/src/models/scopes"
	"ems/src/types"
	"ems/src/utils"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/yeqown/go-qrcode"
	"gorm.io/gorm"
)

func ticketHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/events/:id/buy", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var event models.Event
			db := db.GetDb()
			if err := db.
				Model(&models.Event{}).
				Scopes(scopes.WithID(params.ID)).
				First(&event).
				Error; err != nil {
				log.Printf("Error finding event %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Event does not exist"})
				return
			}
			var body types.BuyTicketRequestBody
			if ctx.Request.ContentLength > 0 {
				if err := ctx.ShouldBindJSON(&body); err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
			}
			meal := types.MealOption(body.MealOption)
			if meal == "" {
				meal = types.MEAL_NONE
			}
			userId := ctx.GetUint("id")
			ticket := models.Ticket{
				EventID:    event.ID,
				UserID:     userId,
				MealOption: meal,
			}
			if err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&ticket).Error; err != nil {
					return err
				}
				return nil
			}); err != nil {
				log.Printf("Error creating ticket for event %d: %s\n", event.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			email := ctx.GetString("email")
			if err := mailer.NewMailerMessage(&lib.SendMailInput{
				To:      []string{email},
				Subject: "Ticket Confirmation",
				Body:    fmt.Sprintf("Your ticket for %s has been confirmed.", event.Name),
			}); err != nil {
				log.Printf("[mailer] Error sending confirmation: %s\n", err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": ticket.ID, "reference": ticket.Reference})
		}).
		GET("/tickets", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			tickets, err := utils.GetOwnTickets(userId)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": tickets, "count": len(tickets)})
		}).
		GET("/tickets/:id/eticket", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			var ticket models.Ticket
			db := db.GetDb()
			if err := db.
				Scopes(scopes.WithID(params.ID), scopes.ForUser(userId)).
				First(&ticket).
				Error; err != nil {
				log.Printf("Error retrieving ticket %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Ticket does not exist"})
				return
			}
			qrc, err := qrcode.New(ticket.Reference)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tempdir := os.Getenv("TEMP_DIR")
			if tempdir == "" {
				tempdir = os.TempDir()
			}
			filepath := path.Join(tempdir, fmt.Sprintf("%s.jpeg", ticket.Reference))
			if err := qrc.Save(filepath); err != nil {
				log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.FileAttachment(filepath, "eticket.jpeg")
		})
	return g
}
