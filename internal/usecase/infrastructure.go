package usecase

import "context"

// MessageProducer публикует события изменения категорий во внешний брокер.
type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
