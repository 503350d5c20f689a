package workinghours

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило для (барбер, день недели)
	// не настроено. Вызывающий слой применяет правило по умолчанию.
	ErrRuleNotFound = errors.New("workinghours.repository: rule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workinghours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workinghours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workinghours.repository: failed to scan row")
)
