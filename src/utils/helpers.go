package utils

import (
	"database/sql"
	"ems/src/config"
	"ems/src/db"
	"ems/src/models"
	"ems/src/models/scopes"
	"ems/src/types"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func GenerateJWT(email string, userId uint, role types.UserRole) (string, error) {
	claims := types.Claims{
		Email: email,
		Role:  string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userId), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseEventDate accepts a datetime with an explicit offset, or a naive one
// which is then interpreted in the server timezone.
func ParseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse(config.TIME_PARSE_FORMAT, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation(config.TIME_PARSE_FORMAT_NAIVE, value, config.GetTimezone())
}

// FlashRedirect stores a user-visible message in a cookie and redirects.
// Permission failures never surface as hard errors.
func FlashRedirect(ctx *gin.Context, location string, message string) {
	ctx.SetCookie("flash", message, 300, "/", "", false, true)
	ctx.Redirect(http.StatusFound, location)
}

// ConsumeFlash returns the pending flash message, if any, and clears it.
func ConsumeFlash(ctx *gin.Context) string {
	message, err := ctx.Cookie("flash")
	if err != nil {
		return ""
	}
	ctx.SetCookie("flash", "", -1, "/", "", false, true)
	return message
}

func CreateNewEvent(params *types.CreateEventRequestBody, imagePath *string, organizerId uint) (uint, error) {
	date, err := ParseEventDate(params.Date)
	if err != nil {
		log.Printf("Error parsing date: %s\n", err.Error())
		return 0, err
	}
	event := models.Event{
		Name:        params.Name,
		Date:        date,
		Venue:       params.Venue,
		Description: params.Description,
		Image:       imagePath,
		OrganizerID: organizerId,
	}
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("Error creating event: %s\n", err.Error())
		return 0, err
	}
	return event.ID, nil
}

func UpdateEvent(eventId uint, params *types.CreateEventRequestBody, imagePath *string) error {
	date, err := ParseEventDate(params.Date)
	if err != nil {
		log.Printf("Error parsing date: %s\n", err.Error())
		return err
	}
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		// A struct would skip zero values and keep a cleared description.
		updates := map[string]any{
			"name":        params.Name,
			"date":        date,
			"venue":       params.Venue,
			"description": params.Description,
		}
		if imagePath != nil {
			updates["image"] = *imagePath
		}
		if err := tx.
			Model(&models.Event{}).
			Scopes(scopes.WithID(eventId)).
			Updates(updates).
			Error; err != nil {
			return err
		}
		return nil
	})
}

// BuildEventReport aggregates tickets sold and the mean feedback rating for
// every event owned by the organizer. Nothing is cached; each call recomputes
// from the database.
func BuildEventReport(organizerId uint) ([]models.EventReport, error) {
	db := db.GetDb()
	var events []models.Event
	if err := db.
		Where(&models.Event{OrganizerID: organizerId}).
		Order("date asc").
		Find(&events).
		Error; err != nil {
		log.Printf("Error retrieving events for report: %s\n", err.Error())
		return nil, err
	}
	report := make([]models.EventReport, 0, len(events))
	for _, event := range events {
		var sold int64
		if err := db.
			Model(&models.Ticket{}).
			Scopes(scopes.ForEvent(event.ID)).
			Count(&sold).
			Error; err != nil {
			return nil, err
		}
		var avg sql.NullFloat64
		row := db.
			Model(&models.Feedback{}).
			Scopes(scopes.ForEvent(event.ID)).
			Select("AVG(rating)").
			Row()
		if err := row.Scan(&avg); err != nil {
			return nil, err
		}
		var rating *float64
		if avg.Valid {
			rating = &avg.Float64
		}
		report = append(report, models.EventReport{
			Event:       event,
			TicketsSold: sold,
			AvgRating:   rating,
		})
	}
	return report, nil
}

func GetOwnTickets(userId uint) ([]models.Ticket, error) {
	db := db.GetDb()
	var tickets []models.Ticket
	if err := db.
		Scopes(scopes.ForUser(userId)).
		Order("purchase_date desc").
		Preload("Event").
		Find(&tickets).
		Error; err != nil {
		log.Printf("Error retrieving tickets: %s\n", err.Error())
		return nil, err
	}
	return tickets, nil
}
