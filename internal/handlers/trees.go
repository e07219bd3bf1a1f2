package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"bonsai-backend/internal/store"
)

func GetTrees(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /trees"

		trees, err := s.ListAll(c.Request.Context(), store.Trees)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, trees)
	}
}

func GetTree(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /trees/:id"

		id, ok := objectIDParam(c, route, "id")
		if !ok {
			return
		}

		tree, err := s.FindByID(c.Request.Context(), store.Trees, id)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		// An absent tree is a JSON null with a 200, not a 404; the
		// storefront client tells the two apart itself.
		c.JSON(http.StatusOK, tree)
	}
}

func CreateTree(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /trees"

		var tree bson.M
		if err := c.ShouldBindJSON(&tree); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		res, err := s.InsertOne(c.Request.Context(), store.Trees, tree)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, insertResponse(res))
	}
}

func DeleteTree(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /trees/:id"

		id, ok := objectIDParam(c, route, "id")
		if !ok {
			return
		}

		res, err := s.DeleteByID(c.Request.Context(), store.Trees, id)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"deletedCount": res.DeletedCount})
	}
}
