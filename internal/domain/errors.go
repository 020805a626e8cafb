package domain

import "errors"

var (
	// ErrDuplicateSKU — SKU уже занят другим товаром каталога.
	ErrDuplicateSKU = errors.New(`the value of attribute "SKU" must be unique`)

	// ErrMerchantNotFound — продавец по owner_id не найден.
	ErrMerchantNotFound = errors.New("merchant not found")

	// ErrInvalidProduct — постоянная ошибка обработки товара (повтор не поможет).
	ErrInvalidProduct = errors.New("product validation failed")
)
