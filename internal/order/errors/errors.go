// Package errors provides custom error types for order-related operations.
package errors

import "errors"

var ErrNoItems = errors.New("order must contain at least one item")
var ErrInvalidItem = errors.New("order item is invalid")
var ErrInvalidTotal = errors.New("order total is invalid")
var ErrCustomerRequired = errors.New("customer information is required")

var ErrCreateOrder = errors.New("failed to create order")
