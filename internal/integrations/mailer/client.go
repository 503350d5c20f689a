package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/barbernet/booking-service/internal/domain"
)

// Client клиент для отправки писем клиентам через SMTP.
// При пустом хосте работает в режиме заглушки: письма не отправляются,
// а только логируются.
type Client struct {
	host     string
	port     int
	username string
	password string
	from     string
	log      Logger

	// для подмены в тестах
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(host string, port int, username, password, from string, log Logger) *Client {
	return &Client{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		log:      log,
		sendMail: smtp.SendMail,
	}
}

// Enabled сообщает, сконфигурирован ли SMTP
func (c *Client) Enabled() bool {
	return c.host != ""
}

// SendAppointmentConfirmation отправляет письмо о подтверждении записи
func (c *Client) SendAppointmentConfirmation(m AppointmentMail) error {
	subject := fmt.Sprintf("Запись подтверждена: %s", m.Date.Format(domain.DateFormat))
	body := fmt.Sprintf(
		"Здравствуйте!\r\n\r\n"+
			"Ваша запись подтверждена.\r\n\r\n"+
			"Услуга: %s\r\n"+
			"Мастер: %s\r\n"+
			"Дата: %s\r\n"+
			"Время: %s - %s\r\n"+
			"Номер записи: %s\r\n\r\n"+
			"Ждем вас!\r\n",
		m.ServiceName, m.BarberName, m.Date.Format(domain.DateFormat),
		m.StartTime, m.EndTime, m.Reference,
	)

	return c.send(m.CustomerEmail, subject, body)
}

// SendAppointmentCancellation отправляет письмо об отмене записи
func (c *Client) SendAppointmentCancellation(m AppointmentMail) error {
	subject := fmt.Sprintf("Запись отменена: %s", m.Date.Format(domain.DateFormat))
	body := fmt.Sprintf(
		"Здравствуйте!\r\n\r\n"+
			"Ваша запись отменена.\r\n\r\n"+
			"Услуга: %s\r\n"+
			"Мастер: %s\r\n"+
			"Дата: %s\r\n"+
			"Время: %s\r\n"+
			"Номер записи: %s\r\n\r\n"+
			"Будем рады видеть вас снова.\r\n",
		m.ServiceName, m.BarberName, m.Date.Format(domain.DateFormat),
		m.StartTime, m.Reference,
	)

	return c.send(m.CustomerEmail, subject, body)
}

// SendAppointmentReschedule отправляет письмо о переносе записи
func (c *Client) SendAppointmentReschedule(m RescheduleMail) error {
	subject := fmt.Sprintf("Запись перенесена: %s", m.Date.Format(domain.DateFormat))
	body := fmt.Sprintf(
		"Здравствуйте!\r\n\r\n"+
			"Ваша запись перенесена.\r\n\r\n"+
			"Было: %s %s\r\n"+
			"Стало: %s %s - %s\r\n\r\n"+
			"Услуга: %s\r\n"+
			"Мастер: %s\r\n"+
			"Номер записи: %s\r\n\r\n"+
			"Ждем вас!\r\n",
		m.OldDate.Format(domain.DateFormat), m.OldStartTime,
		m.Date.Format(domain.DateFormat), m.StartTime, m.EndTime,
		m.ServiceName, m.BarberName, m.Reference,
	)

	return c.send(m.CustomerEmail, subject, body)
}

func (c *Client) send(to, subject, body string) error {
	if !c.Enabled() {
		c.log.Info("Mailer disabled, skipping email to=%s subject=%q", to, subject)
		return ErrDisabled
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", c.from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if c.username != "" {
		auth = smtp.PlainAuth("", c.username, c.password, c.host)
	}

	addr := fmt.Sprintf("%s:%d", c.host, c.port)
	if err := c.sendMail(addr, auth, c.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, to, err)
	}

	c.log.Info("Email sent to=%s subject=%q", to, subject)
	return nil
}
