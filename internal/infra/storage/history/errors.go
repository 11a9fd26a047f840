package history

import "errors"

var (
	// ErrEmptySession возвращается, когда не передан идентификатор сессии
	ErrEmptySession = errors.New("history.repository: empty session id")

	// ErrEncodeSnapshot возвращается при ошибке сериализации снимка бронирования
	ErrEncodeSnapshot = errors.New("history.repository: failed to encode snapshot")

	// ErrDecodeSnapshot возвращается при ошибке чтения сохраненного снимка
	ErrDecodeSnapshot = errors.New("history.repository: failed to decode snapshot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("history.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("history.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("history.repository: failed to scan row")
)
