package timeoff

import "errors"

var (
	// ErrTimeOffNotFound возвращается, когда выходной не найден
	ErrTimeOffNotFound = errors.New("timeoff.repository: time off not found")

	// ErrTimeOffExists возвращается при попытке добавить второй выходной
	// на ту же пару (барбер, дата)
	ErrTimeOffExists = errors.New("timeoff.repository: time off already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timeoff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timeoff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timeoff.repository: failed to scan row")
)
