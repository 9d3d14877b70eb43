package main

import (
	"ems/src/db"
	"ems/src/models"
	"ems/src/models/scopes"
	"ems/src/types"
	"ems/src/utils"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func listEvents(page int) ([]models.Event, int64, error) {
	db := db.GetDb()
	var total int64
	if err := db.Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var events []models.Event
	if err := db.
		Scopes(scopes.Paginate(page)).
		Order("date asc").
		Find(&events).
		Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func pageCount(total int64) int64 {
	pages := (total + scopes.PageSize - 1) / scopes.PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

func saveEventImage(ctx *gin.Context) (*string, error) {
	file, err := ctx.FormFile("image")
	if err != nil {
		return nil, nil
	}
	uploads := os.Getenv("UPLOAD_DIR")
	if uploads == "" {
		uploads = "uploads"
	}
	dst := path.Join(uploads, "event_images", fmt.Sprintf("%d_%s", time.Now().UnixNano(), file.Filename))
	if err := ctx.SaveUploadedFile(file, dst); err != nil {
		log.Printf("Error saving uploaded image: %s\n", err.Error())
		return nil, err
	}
	return &dst, nil
}

func eventHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/home", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			role := ctx.GetString("role")
			message := utils.ConsumeFlash(ctx)
			if role == string(types.ROLE_ORGANIZER) {
				var events []models.Event
				db := db.GetDb()
				if err := db.
					Where(&models.Event{OrganizerID: userId}).
					Order("date asc").
					Find(&events).
					Error; err != nil {
					log.Printf("Error retrieving events: %s\n", err.Error())
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusOK, gin.H{"data": events, "message": message})
				return
			}
			page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
			events, total, err := listEvents(page)
			if err != nil {
				log.Printf("Error retrieving events: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": events, "page": page, "pages": pageCount(total), "message": message})
		}).
		GET("/events", func(ctx *gin.Context) {
			page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
			events, total, err := listEvents(page)
			if err != nil {
				log.Printf("Error retrieving events: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": events, "page": page, "pages": pageCount(total)})
		}).
		GET("/events/:id", func(ctx *gin.Context) {
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
			ctx.JSON(http.StatusOK, gin.H{"data": event})
		}).
		POST("/events", func(ctx *gin.Context) {
			role := ctx.GetString("role")
			if role != string(types.ROLE_ORGANIZER) {
				utils.FlashRedirect(ctx, "/home", "You do not have permission to create events.")
				return
			}
			var body types.CreateEventRequestBody
			if err := ctx.ShouldBind(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			imagePath, err := saveEventImage(ctx)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			eventId, err := utils.CreateNewEvent(&body, imagePath, userId)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": eventId})
		}).
		PUT("/events/:id", func(ctx *gin.Context) {
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
			userId := ctx.GetUint("id")
			if event.OrganizerID != userId {
				utils.FlashRedirect(ctx, fmt.Sprintf("/events/%d", event.ID), "You do not have permission to edit this event.")
				return
			}
			var body types.CreateEventRequestBody
			if err := ctx.ShouldBind(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			imagePath, err := saveEventImage(ctx)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := utils.UpdateEvent(event.ID, &body, imagePath); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": event.ID})
		})
	return g
}
