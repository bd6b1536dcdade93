package service

import "errors"

// Guard violations are surfaced as sentinel errors so handlers can map them to
// 4xx responses and tests can assert on them. None of these mutate state.
var (
	ErrRegisterAlreadyOpen = errors.New("ya hay una caja registradora abierta, ciérrala antes de abrir una nueva")
	ErrNoOpenRegister      = errors.New("no hay una caja registradora abierta")
	ErrRegisterClosed      = errors.New("la caja ya está cerrada")
	ErrInsufficientStock   = errors.New("stock insuficiente para preparar la venta")
	ErrInsufficientCash    = errors.New("el dinero recibido es menor al total de la venta")
	ErrMenuItemUnavailable = errors.New("el producto del menú no está disponible")
	ErrEmptySale           = errors.New("la venta debe tener al menos un item")
)
