package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"bonsai-backend/internal/models"
	"bonsai-backend/internal/store"
)

func GetOrders(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"

		orders, err := s.ListAll(c.Request.Context(), store.Orders)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrder(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id"

		id, ok := objectIDParam(c, route, "id")
		if !ok {
			return
		}

		order, err := s.FindByID(c.Request.Context(), store.Orders, id)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func CreateOrder(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"

		var order bson.M
		if err := c.ShouldBindJSON(&order); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		res, err := s.InsertOne(c.Request.Context(), store.Orders, order)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, insertResponse(res))
	}
}

// ShipOrder sets the order status. The request body is ignored: whatever
// status the client sends, the stored value is always "Shipped". That is
// the contract the storefront was built against, almost certainly by
// accident (see DESIGN.md); changing it breaks the deployed client.
func ShipOrder(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /orders/:id"

		id, ok := objectIDParam(c, route, "id")
		if !ok {
			return
		}

		res, err := s.SetFields(c.Request.Context(), store.Orders,
			bson.M{"_id": id}, bson.M{"status": models.StatusShipped}, true)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, updateResponse(res))
	}
}

// AttachPayment stores the payment confirmation payload on an existing
// order. Strict update: an unknown order id is a no-op, not an upsert.
func AttachPayment(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /order/:id"

		id, ok := objectIDParam(c, route, "id")
		if !ok {
			return
		}

		var payment bson.M
		if err := c.ShouldBindJSON(&payment); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		res, err := s.SetFields(c.Request.Context(), store.Orders,
			bson.M{"_id": id}, bson.M{"payment": payment}, false)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, updateResponse(res))
	}
}

func DeleteOrder(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /orders/:id"

		id, ok := objectIDParam(c, route, "id")
		if !ok {
			return
		}

		res, err := s.DeleteByID(c.Request.Context(), store.Orders, id)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"deletedCount": res.DeletedCount})
	}
}
