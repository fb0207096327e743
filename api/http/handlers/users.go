package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/resume-profiler/api/http/presenter"
	"github.com/artem13815/resume-profiler/pkg/user"
)

// UsersHandler отдаёт анкету пользователя, дополняемую извлечением.
type UsersHandler struct {
	repo user.Repository
}

func NewUsersHandler(repo user.Repository) *UsersHandler {
	return &UsersHandler{repo: repo}
}

// GetProfile возвращает анкету. Чужая анкета доступна только администратору.
func (h *UsersHandler) GetProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	if id != callerID(c) && !isAdmin {
		return presenter.Error(c, http.StatusForbidden, "access denied")
	}
	p, err := h.repo.GetByUserID(c.Context(), id)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, p)
}
