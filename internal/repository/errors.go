package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrMemberNotFound возвращается, если участник не найден.
	ErrMemberNotFound = errors.New("member not found")

	// ErrTeamNotFound возвращается, если команда не найдена.
	ErrTeamNotFound = errors.New("team not found")

	// ErrTeamExists возвращается при попытке создать дубликат команды.
	ErrTeamExists = errors.New("team already exists")

	// ErrStore: общий вид ошибок хранилища (потеря соединения, таймаут запроса и т.п.).
	ErrStore = errors.New("store error")
)

// StoreError оборачивает ошибку драйвера с названием операции.
// errors.Is(err, ErrStore) истинно для любой StoreError.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
