// Package messages holds the operator-facing message catalog and the
// notification names shared by the fulfillment operations.
package messages

// Notification names carried in rule outcomes. The inventory authority's own
// notification names pass through unchanged; these cover the names this
// service raises itself.
const (
	NameShipmentNotFound           = "SHIPMENT_NOT_FOUND_ERROR"
	NameShipmentItemNotFound       = "SHIPMENT_ITEM_NOT_FOUND_ERROR"
	NameShipmentCompleted          = "SHIPMENT_COMPLETED_ERROR"
	NameShipmentValidationFailed   = "SHIPMENT_VALIDATION_COMPLETED_ERROR"
	NameShipmentUnlabeled          = "SHIPMENT_UNLABELED_ERROR"
	NameOrderCriteriaDoesNotMatch  = "ORDER_CRITERIA_DOES_NOT_MATCH_ERROR"
	NameProductCriteriaFamily      = "PRODUCT_CRITERIA_FAMILY_ERROR"
	NameProductCriteriaBloodType   = "PRODUCT_CRITERIA_BLOOD_TYPE_ERROR"
	NameProductCriteriaTemperature = "PRODUCT_CRITERIA_TEMPERATURE_CATEGORY_ERROR"
	NameProductCriteriaQuarantined = "PRODUCT_CRITERIA_ONLY_QUARANTINED_PRODUCT_ERROR"
	NameProductCriteriaInspection  = "PRODUCT_CRITERIA_VISUAL_INSPECTION_ERROR"
	NameProductCriteriaQuantity    = "PRODUCT_CRITERIA_QUANTITY_ERROR"
	NameProductAlreadyUsed         = "PRODUCT_ALREADY_USED_ERROR"
	NameInventoryServiceIsDown     = "INVENTORY_SERVICE_IS_DOWN"
	NameVerificationUnitNotPacked  = "SECOND_VERIFICATION_UNIT_NOT_PACKED_ERROR"
	NameVerificationCompleted      = "SECOND_VERIFICATION_ALREADY_COMPLETED_ERROR"
	NameVerificationNotCompleted   = "SECOND_VERIFICATION_NOT_COMPLETED_ERROR"
	NameVerificationShipmentDone   = "SECOND_VERIFICATION_WITH_SHIPMENT_COMPLETED_ERROR"
	NameVerificationIneligible     = "SECOND_VERIFICATION_WITH_INELIGIBLE_PRODUCTS_ERROR"
	NameUnpackProductNotFound      = "UNPACK_PRODUCT_NOT_FOUND_ERROR"
	NameBadRequest                 = "BAD_REQUEST"
)

// Operator-facing message texts.
const (
	ShipmentNotFound      = "The shipment was not found."
	ShipmentItemNotFound  = "The shipment item was not found."
	ShipmentCompleted     = "The shipment is already completed."
	ShipmentCompletedOK   = "Shipment completed successfully."
	InventoryServiceDown  = "The inventory service is not available at the moment. Please try again later."
	OrderCriteriaMismatch = "The scanned product does not match the order criteria."

	ProductCriteriaFamily      = "The scanned product does not match the product family for this order item."
	ProductCriteriaBloodType   = "The scanned product does not match the blood type for this order item."
	ProductCriteriaTemperature = "The scanned product does not match the temperature category for this order."
	ProductCriteriaQuarantined = "Only quarantined products can be packed into this shipment."
	ShipmentUnlabeled          = "Only unlabeled products can be packed into this shipment."
	ProductCriteriaInspection  = "The product did not pass the visual inspection and must be discarded."
	ProductCriteriaQuantity    = "The requested quantity for this order item has already been packed."
	ProductAlreadyUsed         = "This product is already used in this order."

	VerificationUnitNotPacked = "The scanned product is not packed in this order."
	VerificationCompleted     = "The scanned product has already been verified."
	VerificationNotCompleted  = "The second verification is not completed for all products in this order."
	VerificationIneligible    = "The verification cannot be canceled while ineligible products remain in this order. Please remove them first."
	VerificationShipmentDone  = "The verification cannot be canceled because the shipment is already completed."
	VerificationCancelPrompt  = "Canceling the verification will reset the verification status of all products in this order. Do you want to continue?"
	VerificationCancelDone    = "The verification has been canceled. All products in this order must be re-verified."
	VerificationStaleView     = "The verification does not match all products in this order. Please re-scan all the products."

	ShipmentValidationFailed = "Some products in this shipment are no longer eligible for shipping. Please remove them before completing the shipment."

	UnpackSuccess        = "The product has been removed from the shipment."
	RemoveItemSuccess    = "The ineligible product has been removed from the shipment."
	UnpackProductMissing = "The product was not found in this shipment."
)

// Navigation link templates; the placeholder is the shipment ID.
const (
	ShipmentDetailsURL      = "/shipment/%s/shipment-details"
	ShipmentVerificationURL = "/shipment/%s/verify-products"
)
