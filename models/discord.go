package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Permission, Discord yetkilerini bit flag olarak temsil eder.
//
// Kontrol: (permissions & PermAdministrator) != 0 → yetki var mı?
type Permission int64

// PermAdministrator, Discord'un ADMINISTRATOR yetki biti (0x8).
const PermAdministrator Permission = 0x8

// Has, belirli bir yetkinin var olup olmadığını kontrol eder.
func (p Permission) Has(perm Permission) bool {
	return p&perm != 0
}

// UnmarshalJSON, Discord'un string olarak gönderdiği bitmask'i ("2147483647")
// parse eder. Eski API sürümlerindeki sayısal değerler de kabul edilir.
func (p *Permission) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*p = 0
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid permissions value %q: %w", raw, err)
	}
	*p = Permission(v)
	return nil
}

// DiscordUser, GET /users/@me yanıtının kullandığımız alanları.
type DiscordUser struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar"`
}

// DiscordGuild, GET /users/@me/guilds yanıtındaki tek kayıt.
type DiscordGuild struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Icon        *string    `json:"icon"`
	Owner       bool       `json:"owner"`
	Permissions Permission `json:"permissions"`
}
