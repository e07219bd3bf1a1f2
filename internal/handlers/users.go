package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"bonsai-backend/internal/models"
	"bonsai-backend/internal/store"
)

// GetAdminFlag reports whether the user behind the email carries the
// admin role. Advisory only: the client uses it to show or hide the admin
// dashboard, nothing here enforces it. An unknown email is simply
// admin=false.
func GetAdminFlag(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /users/:email"

		doc, err := s.FindOneByField(c.Request.Context(), store.Users, "email", c.Param("email"))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		user := models.UserFromDocument(doc)
		c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
	}
}

func CreateUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /users"

		var user bson.M
		if err := c.ShouldBindJSON(&user); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		res, err := s.InsertOne(c.Request.Context(), store.Users, user)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, insertResponse(res))
	}
}

// UpsertUser merges the whole body into the user document keyed by the
// body's email, creating the user on first contact (social logins hit
// this on every sign-in).
func UpsertUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /users"

		var user bson.M
		if err := c.ShouldBindJSON(&user); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		res, err := s.SetFields(c.Request.Context(), store.Users,
			bson.M{"email": user["email"]}, user, true)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, updateResponse(res))
	}
}

// MakeAdmin sets role=admin on the user keyed by the body's email. Strict
// update: granting the role to an unknown email touches nothing.
func MakeAdmin(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /users/admin"

		var user bson.M
		if err := c.ShouldBindJSON(&user); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		res, err := s.SetFields(c.Request.Context(), store.Users,
			bson.M{"email": user["email"]}, bson.M{"role": models.RoleAdmin}, false)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, updateResponse(res))
	}
}
