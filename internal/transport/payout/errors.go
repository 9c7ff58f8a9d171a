package payout

import "errors"

var (
	ErrNoWithdrawals = errors.New("no withdrawals")

	// ErrGatewayDegraded итерация закончилась временными сбоями шлюза; перед
	// повтором нужна пауза.
	ErrGatewayDegraded = errors.New("transient gateway failures")
)
