package user

import (
	"time"

	"github.com/google/uuid"
)

// Profile — долгоживущая анкета пользователя. Извлечение резюме может
// дописывать ограниченный набор её полей через pkg/enhance, но никогда
// не затирает уже заполненные значения пустыми.
type Profile struct {
	UserID                 uuid.UUID `json:"userId"`
	FullName               string    `json:"fullName"`
	Phone                  string    `json:"phone"`
	Bio                    string    `json:"bio"`
	Location               string    `json:"location"`
	JobTitle               string    `json:"jobTitle"`
	Company                string    `json:"company"`
	Website                string    `json:"website"`
	Skills                 []string  `json:"skills"`
	ExperienceSummary      string    `json:"experienceSummary"`
	LinkedIn               string    `json:"linkedin"`
	GitHub                 string    `json:"github"`
	TotalExperienceYears   float64   `json:"totalExperienceYears"`
	CurrentRole            string    `json:"currentRole"`
	Availability           string    `json:"availability"`
	EnhancedFromExtraction bool      `json:"enhancedFromExtraction"`
	UpdatedAt              time.Time `json:"updatedAt"`
}
