package staffservice

// Роли пользователей в StaffService
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleGuide   = "guide"
)

// User модель пользователя из StaffService
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	GuideID   *int64 `json:"guide_id,omitempty"` // Привязка к гиду для роли guide
}

// CanProcessRefunds возвращает true, если пользователь может обрабатывать возвраты
func (u *User) CanProcessRefunds() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

// CanModerateRatings возвращает true, если пользователь может модерировать оценки
func (u *User) CanModerateRatings() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

// CanModifyVisit возвращает true, если пользователь может менять визит.
// Менеджеры и администраторы меняют любой визит, гид - только свои.
func (u *User) CanModifyVisit(visitGuideID int64) bool {
	if u.Role == RoleAdmin || u.Role == RoleManager {
		return true
	}
	return u.Role == RoleGuide && u.GuideID != nil && *u.GuideID == visitGuideID
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
