// Package http provides the inbound REST adapter of the fulfillment workflow.
// Handlers translate requests into commands and queries, and render rule
// outcomes using the outcome's own rule code as the HTTP status.
package http

import (
	"errors"
	"net/http"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler     commands.CreateShipmentCommandHandler
	packItemHandler           commands.PackItemCommandHandler
	unpackItemHandler         commands.UnpackItemCommandHandler
	verifyItemHandler         commands.VerifyItemCommandHandler
	cancelVerificationHandler commands.CancelVerificationCommandHandler
	removeItemHandler         commands.RemoveItemCommandHandler
	completeShipmentHandler   commands.CompleteShipmentCommandHandler

	// Query handlers
	getShipmentsHandler       queries.GetShipmentsQueryHandler
	getShipmentDetailsHandler queries.GetShipmentDetailsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	packItemHandler commands.PackItemCommandHandler,
	unpackItemHandler commands.UnpackItemCommandHandler,
	verifyItemHandler commands.VerifyItemCommandHandler,
	cancelVerificationHandler commands.CancelVerificationCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	completeShipmentHandler commands.CompleteShipmentCommandHandler,
	getShipmentsHandler queries.GetShipmentsQueryHandler,
	getShipmentDetailsHandler queries.GetShipmentDetailsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:     createShipmentHandler,
		packItemHandler:           packItemHandler,
		unpackItemHandler:         unpackItemHandler,
		verifyItemHandler:         verifyItemHandler,
		cancelVerificationHandler: cancelVerificationHandler,
		removeItemHandler:         removeItemHandler,
		completeShipmentHandler:   completeShipmentHandler,
		getShipmentsHandler:       getShipmentsHandler,
		getShipmentDetailsHandler: getShipmentDetailsHandler,
	}
}

// RegisterRoutes wires the fulfillment endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.GetShipments)
	api.GET("/shipments/:shipmentId", s.GetShipmentDetails)

	api.POST("/shipments/items/:itemId/pack", s.PackItem)
	api.POST("/shipments/items/:itemId/unpack", s.UnpackItem)

	api.POST("/shipments/:shipmentId/verify", s.VerifyItem)
	api.POST("/shipments/:shipmentId/verify/cancel", s.CancelVerification)
	api.POST("/shipments/:shipmentId/verify/cancel/confirm", s.ConfirmCancelVerification)

	api.POST("/shipments/:shipmentId/removed-items", s.RemoveItem)
	api.POST("/shipments/:shipmentId/complete", s.CompleteShipment)
}

// ErrorResponse is the error body for non-outcome failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewShipmentItem is one demand line in the shipment creation request.
type NewShipmentItem struct {
	ProductFamily     string                `json:"productFamily"`
	BloodType         string                `json:"bloodType"`
	Quantity          int                   `json:"quantity"`
	Comments          string                `json:"comments"`
	ShortDateProducts []NewShortDateProduct `json:"shortDateProducts"`
}

// NewShortDateProduct is one short-date flag in the shipment creation request.
type NewShortDateProduct struct {
	UnitNumber     string     `json:"unitNumber"`
	ProductCode    string     `json:"productCode"`
	ExpirationDate *time.Time `json:"expirationDate"`
}

// NewShipment is the shipment creation request sent by the order service.
type NewShipment struct {
	OrderNumber         int64             `json:"orderNumber"`
	ExternalID          string            `json:"externalId"`
	Priority            string            `json:"priority"`
	ShipmentType        string            `json:"shipmentType"`
	LabelStatus         string            `json:"labelStatus"`
	LocationCode        string            `json:"locationCode"`
	ProductCategory     string            `json:"productCategory"`
	QuarantinedProducts bool              `json:"quarantinedProducts"`
	Comments            string            `json:"comments"`
	Items               []NewShipmentItem `json:"items"`
}

// PackRequest carries the scanned pair and operator identity for packing.
type PackRequest struct {
	UnitNumber       string `json:"unitNumber"`
	ProductCode      string `json:"productCode"`
	EmployeeID       string `json:"employeeId"`
	VisualInspection *bool  `json:"visualInspection"`
}

// UnitRequest carries the scanned pair and operator identity for the
// unit-level operations.
type UnitRequest struct {
	UnitNumber  string `json:"unitNumber"`
	ProductCode string `json:"productCode"`
	EmployeeID  string `json:"employeeId"`
}

// EmployeeRequest carries the operator identity for shipment-level operations.
type EmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
}

// CreateShipment handles POST /api/v1/shipments - opens a shipment from an
// order header.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req NewShipment
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.CreateShipmentItemData, 0, len(req.Items))
	for _, item := range req.Items {
		shortDates := make([]commands.CreateShortDateProductData, 0, len(item.ShortDateProducts))
		for _, flag := range item.ShortDateProducts {
			shortDates = append(shortDates, commands.CreateShortDateProductData{
				UnitNumber:     flag.UnitNumber,
				ProductCode:    flag.ProductCode,
				ExpirationDate: flag.ExpirationDate,
			})
		}
		items = append(items, commands.CreateShipmentItemData{
			ProductFamily:     item.ProductFamily,
			BloodType:         item.BloodType,
			Quantity:          item.Quantity,
			Comments:          item.Comments,
			ShortDateProducts: shortDates,
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(),
		req.OrderNumber,
		req.ExternalID,
		req.Priority,
		req.ShipmentType,
		req.LabelStatus,
		req.LocationCode,
		req.ProductCategory,
		req.QuarantinedProducts,
		req.Comments,
		items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create shipment")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetShipments handles GET /api/v1/shipments - retrieves the worklist,
// optionally filtered by status.
func (s *Server) GetShipments(ctx echo.Context) error {
	query := queries.NewGetShipmentsQuery(ctx.QueryParam("status"))

	shipments, err := s.getShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve shipments")
	}

	return ctx.JSON(http.StatusOK, shipments)
}

// GetShipmentDetails handles GET /api/v1/shipments/:shipmentId.
func (s *Server) GetShipmentDetails(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentDetailsQuery(shipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	details, err := s.getShipmentDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Shipment not found",
			})
		}
		return internalError(ctx, "Failed to retrieve shipment details")
	}

	return ctx.JSON(http.StatusOK, details)
}

// PackItem handles POST /api/v1/shipments/items/:itemId/pack.
func (s *Server) PackItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment item id")
	}

	var req PackRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	// The prompt is not shown when the visual inspection flag is inactive
	visualInspectionPassed := req.VisualInspection == nil || *req.VisualInspection

	cmd, err := commands.NewPackItemCommand(
		itemID, req.UnitNumber, req.ProductCode, req.EmployeeID, visualInspectionPassed)
	if err != nil {
		return badRequest(ctx, "Invalid pack data: "+err.Error())
	}

	outcome, err := s.packItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to pack product")
	}

	return ctx.JSON(outcome.RuleCode, outcome)
}

// UnpackItem handles POST /api/v1/shipments/items/:itemId/unpack.
func (s *Server) UnpackItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment item id")
	}

	var req UnitRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUnpackItemCommand(itemID, req.UnitNumber, req.ProductCode, req.EmployeeID)
	if err != nil {
		return badRequest(ctx, "Invalid unpack data: "+err.Error())
	}

	outcome, err := s.unpackItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to unpack product")
	}

	return ctx.JSON(outcome.RuleCode, outcome)
}

// VerifyItem handles POST /api/v1/shipments/:shipmentId/verify.
func (s *Server) VerifyItem(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req UnitRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyItemCommand(shipmentID, req.UnitNumber, req.ProductCode, req.EmployeeID)
	if err != nil {
		return badRequest(ctx, "Invalid verify data: "+err.Error())
	}

	outcome, err := s.verifyItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to verify product")
	}

	return ctx.JSON(outcome.RuleCode, outcome)
}

// CancelVerification handles POST /api/v1/shipments/:shipmentId/verify/cancel.
// Answers with a confirmation prompt; nothing is reset yet.
func (s *Server) CancelVerification(ctx echo.Context) error {
	cmd, ok, err := s.bindCancelVerification(ctx)
	if err != nil || !ok {
		return err
	}

	outcome, err := s.cancelVerificationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to cancel verification")
	}

	return ctx.JSON(outcome.RuleCode, outcome)
}

// ConfirmCancelVerification handles
// POST /api/v1/shipments/:shipmentId/verify/cancel/confirm - resets the
// verification round after the operator confirmed.
func (s *Server) ConfirmCancelVerification(ctx echo.Context) error {
	cmd, ok, err := s.bindCancelVerification(ctx)
	if err != nil || !ok {
		return err
	}

	outcome, err := s.cancelVerificationHandler.HandleConfirm(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to cancel verification")
	}

	return ctx.JSON(outcome.RuleCode, outcome)
}

// RemoveItem handles POST /api/v1/shipments/:shipmentId/removed-items.
func (s *Server) RemoveItem(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req UnitRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRemoveItemCommand(shipmentID, req.UnitNumber, req.ProductCode, req.EmployeeID)
	if err != nil {
		return badRequest(ctx, "Invalid removal data: "+err.Error())
	}

	outcome, err := s.removeItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to remove product")
	}

	return ctx.JSON(outcome.RuleCode, outcome)
}

// CompleteShipment handles POST /api/v1/shipments/:shipmentId/complete.
func (s *Server) CompleteShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req EmployeeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteShipmentCommand(shipmentID, req.EmployeeID)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	outcome, err := s.completeShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to complete shipment")
	}

	return ctx.JSON(outcome.RuleCode, outcome)
}

func (s *Server) bindCancelVerification(ctx echo.Context) (commands.CancelVerificationCommand, bool, error) {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return commands.CancelVerificationCommand{}, false, badRequest(ctx, "Invalid shipment id")
	}

	var req EmployeeRequest
	if err = ctx.Bind(&req); err != nil {
		return commands.CancelVerificationCommand{}, false, badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelVerificationCommand(shipmentID, req.EmployeeID)
	if err != nil {
		return commands.CancelVerificationCommand{}, false, badRequest(ctx, "Invalid cancel data: "+err.Error())
	}

	return cmd, true, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
