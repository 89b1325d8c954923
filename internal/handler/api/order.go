package api

import (
	"errors"
	"net/http"

	reqdto "lesson-booking/internal/handler/dto/request"
	resdto "lesson-booking/internal/handler/dto/response"
	"lesson-booking/internal/handler/httperr"
	"lesson-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// @Summary Place order
// @Description Reserve seats across one or more lessons
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	input := usecase.PlaceOrderInput{
		Name:  req.CustomerName(),
		Phone: req.Phone,
		Cart:  req.ToCart(),
	}

	placed, err := h.orderUseCase.PlaceOrder(c.Request.Context(), input)
	if err != nil {
		h.abortPlaceOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrder(placed))
}

// @Summary List orders
// @Description List every placed order
// @Tags orders
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Failure 500 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderUseCase.ListOrders(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrders(orders))
}

func (h *OrderHandler) abortPlaceOrderError(c *gin.Context, err error) {
	var notFound *usecase.LessonNotFoundError
	var noSpace *usecase.InsufficientSpaceError

	switch {
	case errors.As(err, &notFound):
		httperr.AbortWithError(c, http.StatusNotFound,
			err, "Lesson with ID "+notFound.LessonID.String()+" not found", nil)
	case errors.As(err, &noSpace):
		httperr.AbortWithError(c, http.StatusBadRequest,
			err, "Not enough spaces available for lesson "+noSpace.Topic, nil)
	case errors.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
