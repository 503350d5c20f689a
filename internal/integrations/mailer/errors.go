package mailer

import "errors"

var (
	// ErrDisabled возвращается, когда SMTP не сконфигурирован (пустой хост)
	ErrDisabled = errors.New("mailer: smtp is not configured")

	// ErrSendFailed возвращается при ошибке доставки письма
	ErrSendFailed = errors.New("mailer: failed to send message")
)
