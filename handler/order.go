package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
)

func loadOwnedOrder(c *fiber.Ctx, orderId uint) (*model.Order, error) {
	info, isAdmin, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return nil, err
	}

	var order model.Order
	query := database.DB.Preload("Tickets.Seat").
		Preload("Tickets.Screening.Movie").
		Preload("Tickets.Screening.Hall").
		Preload("Items.Product")
	if isAdmin {
		err = query.First(&order, orderId).Error
	} else {
		err = query.Where("user_id = ?", info.UserId).First(&order, orderId).Error
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// AddOrderItem attaches a concession product to a pending order. Repeating
// the same product bumps its quantity.
func AddOrderItem(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("AddOrderItem").(model.AddOrderItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}
	orderId, ok := c.Locals("inputOrderId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	order, err := loadOwnedOrder(c, orderId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}
	if order.Status != model.OrderPending {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Պատվերն այլևս փոփոխելի չէ", errors.New("order not pending"))
	}

	var product model.Product
	if err := db.First(&product, input.ProductId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if !product.IsAvailable {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Ապրանքը հասանելի չէ", errors.New("product unavailable"))
	}

	var item model.OrderItem
	err = db.Where("order_id = ? AND product_id = ?", order.ID, product.ID).First(&item).Error
	if err == nil {
		item.Quantity += input.Quantity
		item.UnitPrice = product.Price
		if err := db.Save(&item).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	} else {
		item = model.OrderItem{
			OrderId:   order.ID,
			ProductId: product.ID,
			Quantity:  input.Quantity,
			UnitPrice: product.Price,
		}
		if err := db.Create(&item).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
	}

	return refreshOrderTotal(c, order.ID)
}

func refreshOrderTotal(c *fiber.Ctx, orderId uint) error {
	db := database.DB

	var order model.Order
	if err := db.Preload("Tickets").Preload("Items.Product").First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	order.TotalAmount = helper.ComputeOrderTotal(order.Tickets, order.Items)
	if err := db.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// PayOrder settles a pending order: tickets flip to paid, the order to
// COMPLETED, and the confirmation mail with the check-in QR goes out.
func PayOrder(c *fiber.Ctx) error {
	db := database.DB

	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	order, err := loadOwnedOrder(c, uint(id))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}
	if order.Status != model.OrderPending {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Պատվերն արդեն փակված է", errors.New("order not pending"))
	}

	tx := db.Begin()

	for i := range order.Tickets {
		if order.Tickets[i].Status == model.TicketCancelled {
			continue
		}
		if !model.CanTransition(order.Tickets[i].Status, model.TicketPaid) {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ERROR_EDIT, errors.New("ticket not payable"))
		}
		order.Tickets[i].Status = model.TicketPaid
		if err := tx.Save(&order.Tickets[i]).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	}

	now := time.Now()
	order.Status = model.OrderCompleted
	order.PaidAt = &now
	order.TotalAmount = helper.ComputeOrderTotal(order.Tickets, order.Items)
	if err := tx.Save(order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	tx.Commit()

	helper.PublishSeatUpdate(order.Tickets)
	sendOrderConfirmation(order)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func sendOrderConfirmation(order *model.Order) {
	to := order.CustomerEmail
	if order.UserId != nil {
		var user model.User
		if err := database.DB.First(&user, *order.UserId).Error; err != nil || user.Email == nil {
			return
		}
		to = *user.Email
	}
	if to == "" {
		return
	}

	data := utils.OrderConfirmationData{
		OrderCode:   order.Code,
		TotalAmount: order.TotalAmount,
		Seats:       helper.FormatSeatLabels(order.Tickets),
	}
	if len(order.Tickets) > 0 {
		screening := order.Tickets[0].Screening
		data.MovieTitle = screening.Movie.Title
		data.HallName = screening.Hall.Name
		data.Screening = screening.StartTime.Format("02.01.2006 15:04")
	}
	var products []string
	for _, item := range order.Items {
		products = append(products, item.Product.Name)
	}
	data.Products = joinComma(products)

	qrPNG, err := utils.GenerateQRCode(order.Code, 256)
	if err != nil {
		qrPNG = nil
	}
	utils.SendOrderConfirmationEmail(to, data, qrPNG)
}

func joinComma(values []string) string {
	result := ""
	for i, v := range values {
		if i > 0 {
			result += ", "
		}
		result += v
	}
	return result
}

// CancelOrder releases every live ticket of a pending or completed order.
func CancelOrder(c *fiber.Ctx) error {
	db := database.DB

	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	order, err := loadOwnedOrder(c, uint(id))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}
	if order.Status == model.OrderCancelled {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Պատվերն արդեն չեղարկված է", errors.New("order cancelled"))
	}

	tx := db.Begin()

	for i := range order.Tickets {
		status := order.Tickets[i].Status
		if status == model.TicketCancelled {
			continue
		}
		if !model.CanTransition(status, model.TicketCancelled) {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKET_ALREADY_USED, errors.New("ticket used"))
		}
		order.Tickets[i].Status = model.TicketCancelled
		if err := tx.Save(&order.Tickets[i]).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	}

	order.Status = model.OrderCancelled
	order.TotalAmount = helper.ComputeOrderTotal(order.Tickets, order.Items)
	if err := tx.Save(order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	tx.Commit()

	helper.PublishSeatUpdate(order.Tickets)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetMyOrders(c *fiber.Ctx) error {
	db := database.DB

	info, _, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_FOUND_RECORDS, err)
	}

	var orders model.Orders
	if err := db.Where("user_id = ?", info.UserId).
		Preload("Tickets.Seat").
		Preload("Tickets.Screening.Movie").
		Preload("Items.Product").
		Order("id DESC").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

func GetOrderById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	order, err := loadOwnedOrder(c, uint(id))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// GetOrders is the admin listing with status filter and pagination.
func GetOrders(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterOrder
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := db.Model(&model.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserId != nil {
		query = query.Where("user_id = ?", *filter.UserId)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var orders model.Orders
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Preload("Tickets").Preload("Items").Order("id DESC").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}
