package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role — роль пользователя. Председатели видят админку только своего поселка.
type Role string

const (
	RoleAdmin              Role = "admin"
	RoleChairmanZapovednoe Role = "chairman_zapovednoe"
	RoleChairmanKolosok    Role = "chairman_kolosok"
	RoleResidentZapovednoe Role = "resident_zapovednoe"
	RoleResidentKolosok    Role = "resident_kolosok"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleChairmanZapovednoe, RoleChairmanKolosok,
		RoleResidentZapovednoe, RoleResidentKolosok:
		return Role(s), nil
	}
	return "", NewValidationError("role", "unknown role: "+s)
}

// CanManage отвечает, разрешено ли роли управлять данными поселка.
func (r Role) CanManage(s Settlement) bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleChairmanZapovednoe:
		return s == SettlementZapovednoe
	case RoleChairmanKolosok:
		return s == SettlementKolosok
	}
	return false
}

// Profile — публичный профиль пользователя. Аутентификацией владеет
// внешний identity-сервис, здесь хранится только дополнение к нему.
type Profile struct {
	UserID    uuid.UUID
	Email     string
	FullName  string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserWithRoles — строка списка пользователей в админке.
type UserWithRoles struct {
	Profile Profile
	Roles   []Role
}

// HouseCard — карточка дома для списков избранного и просмотренного.
type HouseCard struct {
	ID       uuid.UUID
	Title    string
	PriceRub int64
	Status   ObjectStatus
	Image    string
	AddedAt  time.Time
}
