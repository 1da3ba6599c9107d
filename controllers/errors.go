package controllers

import "errors"

var (
	ErrNoPermission = errors.New("you don't have permission for this action")

	errMissingFields         = errors.New("missing required fields")
	errMissingDeliveryFields = errors.New("missing required delivery fields")
	errInvalidToken          = errors.New("invalid token or table number")
	errTokenAlreadyUsed      = errors.New("this token has already been used for an order")
	errInvalidQuantity       = errors.New("item quantity must be a positive integer")
	errTotalMismatch         = errors.New("order total does not match item prices")
)
