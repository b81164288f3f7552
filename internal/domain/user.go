package domain

// Role роль пользователя системы
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
)

// User сотрудник (администратор или техник)
type User struct {
	ID      int64
	Name    string
	Email   string
	Phone   *string
	IsAdmin bool
}

// Role возвращает роль пользователя
func (u *User) Role() Role {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleTechnician
}

// IsTechnician returns true if the user can be assigned installation tasks
func (u *User) IsTechnician() bool {
	return !u.IsAdmin
}
