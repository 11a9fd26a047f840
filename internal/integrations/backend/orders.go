package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/DMar-BookingService/internal/domain"
)

// CreateBooking отправляет бронирование. Один запрос, без повторов.
//
// Ошибки:
//   - ErrConnectivity: запрос не завершился
//   - *RejectedError (errors.Is ErrRejected): non-2xx ответ
//   - ErrInvalidResponse: 2xx ответ, который не разбирается как JSON
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*BookingResult, error) {
	c.log.Info("CreateBooking: sending booking_type=%s", req.BookingType())

	resp, err := c.do(ctx, "bookings", http.MethodPost, "/bookings", nil, req)
	if err != nil {
		return nil, err
	}

	if resp.status < 200 || resp.status > 299 {
		var errBody errorResponseDTO
		_ = json.Unmarshal(resp.body, &errBody)
		c.log.Warn("CreateBooking: backend rejected booking, status=%d, body=%s", resp.status, truncate(resp.body))
		return nil, &RejectedError{StatusCode: resp.status, Message: errBody.text()}
	}

	var dto bookingResponseDTO
	if err := json.Unmarshal(resp.body, &dto); err != nil {
		c.log.Error("CreateBooking: undecodable success response, status=%d: %v", resp.status, err)
		return nil, fmt.Errorf("%w: failed to decode booking response: %v", ErrInvalidResponse, err)
	}

	return &BookingResult{
		OrderNumber: dto.orderNumber(),
		Message:     dto.Message,
		Raw:         json.RawMessage(resp.body),
	}, nil
}

// GetOrder получает заказ по номеру
func (c *Client) GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error) {
	body, err := c.get(ctx, "orders", "/orders/"+url.PathEscape(orderNumber), nil)
	if err != nil {
		return nil, err
	}

	var dto orderDTO
	if err := decodeObject(body, &dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode order: %v", ErrInvalidResponse, err)
	}

	order := dto.toDomain()
	return &order, nil
}
