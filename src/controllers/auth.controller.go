package controllers

import (
	"context"
	"ems/src/db"
	"ems/src/lib"
	"ems/src/models"
	"ems/src/types"
	"ems/src/utils"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthRegister creates a User and logs it in. Email uniqueness is checked
// here, at registration time, the only place it is enforced.
func AuthRegister(ctx *gin.Context) (token *string, userId uint, status int, err error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, 0, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var count int64
	if err := db.
		Model(&models.User{}).
		Where("email = ?", body.Email).
		Count(&count).
		Error; err != nil {
		log.Printf("Error checking email: %s\n", err.Error())
		return nil, 0, http.StatusBadRequest, err
	}
	if count > 0 {
		return nil, 0, http.StatusBadRequest, errors.New("this email address is already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %s\n", err.Error())
		return nil, 0, http.StatusInternalServerError, err
	}
	role := types.ROLE_ATTENDEE
	if body.IsOrganizer {
		role = types.ROLE_ORGANIZER
	}
	user := models.User{
		Username: body.Username,
		Email:    body.Email,
		Password: string(hashed),
		Role:     role,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return nil
	}); err != nil {
		log.Printf("Error creating user: %s\n", err.Error())
		return nil, 0, http.StatusBadRequest, err
	}

	jwt, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
	if err != nil {
		return nil, 0, http.StatusInternalServerError, err
	}
	cacheToken(user.ID, jwt)
	return &jwt, user.ID, http.StatusOK, nil
}

func AuthLogin(ctx *gin.Context) (token *string, status int, err error) {
	var body types.LoginUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var user models.User
	if err := db.
		Model(&models.User{}).
		Where(&models.User{Email: body.Email}).
		First(&user).
		Error; err != nil {
		log.Printf("error: %s\n", err.Error())
		return nil, http.StatusNotFound, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return nil, http.StatusUnauthorized, errors.New("invalid credentials")
	}

	jwt, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	cacheToken(user.ID, jwt)
	return &jwt, http.StatusOK, nil
}

func AuthLogout(ctx *gin.Context) {
	userId := ctx.GetUint("id")
	rd := lib.GetRedisClient()
	if rd != nil {
		if err := rd.Del(context.Background(), fmt.Sprintf("%d:token", userId)).Err(); err != nil {
			log.Printf("[redis] Error dropping token: %s\n", err.Error())
		}
	}
}

func cacheToken(userId uint, token string) {
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	if err := rd.Set(context.Background(), fmt.Sprintf("%d:token", userId), token, 24*time.Hour).Err(); err != nil {
		log.Printf("[redis] Error caching token: %s\n", err.Error())
	}
}
