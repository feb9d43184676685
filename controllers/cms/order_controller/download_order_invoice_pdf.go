package order_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/VibeCart-Commerce/vibecart-backend/services"
	"github.com/gin-gonic/gin"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download order invoice PDF
// @Description Generate and download an invoice PDF for the order
// @Tags Admin - Orders
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[admin.order.invoice] request for order: %s", id)

	order, found := ds.OrderByID(id)
	if !found {
		log.Printf("[admin.order.invoice] order not found: %s", id)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	customer, _ := ds.UserByID(order.UserID)

	pdfBuffer, err := services.GenerateOrderInvoicePDF(order, customer)
	if err != nil {
		log.Printf("[admin.order.invoice] failed to render PDF: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[admin.order.invoice] invoice PDF downloaded for order %s", id)
}
