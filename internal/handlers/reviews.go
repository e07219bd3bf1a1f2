package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"bonsai-backend/internal/store"
)

func GetReviews(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /reviews"

		reviews, err := s.ListAll(c.Request.Context(), store.Reviews)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

func CreateReview(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /reviews"

		var review bson.M
		if err := c.ShouldBindJSON(&review); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		res, err := s.InsertOne(c.Request.Context(), store.Reviews, review)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, insertResponse(res))
	}
}
