package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository — хранилище анкет. Записи создаются лениво: GetByUserID для
// неизвестного пользователя возвращает пустой Profile с проставленным UserID.
type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	Save(ctx context.Context, p Profile) error
}
